package models

// Project view modes.
const (
	ViewList     = "list"
	ViewKanban   = "kanban"
	ViewTimeline = "timeline"
)

type Project struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	IsOwner      bool       `json:"isOwner"`
	Color        *string    `json:"color,omitempty"`
	SortOrder    int64      `json:"sortOrder"`
	SortType     string     `json:"sortType,omitempty"`
	SortOption   SortOption `json:"sortOption"`
	UserCount    int        `json:"userCount,omitempty"`
	Etag         string     `json:"etag,omitempty"`
	ModifiedTime *Time      `json:"modifiedTime,omitempty"`
	InAll        bool       `json:"inAll"`
	ShowType     int        `json:"showType,omitempty"`
	Muted        bool       `json:"muted,omitempty"`
	Closed       *bool      `json:"closed,omitempty"`
	GroupID      *string    `json:"groupId,omitempty"`
	ViewMode     string     `json:"viewMode,omitempty"`
	Kind         string     `json:"kind,omitempty"`
	TeamID       *string    `json:"teamId,omitempty"`
	Source       int        `json:"source,omitempty"`
	Background   *string    `json:"background,omitempty"`
}

// Archived reports whether the project is closed (archived).
func (p Project) Archived() bool {
	return p.Closed != nil && *p.Closed
}

// SortOption describes how a view groups and orders its tasks.
type SortOption struct {
	GroupBy string  `json:"groupBy"`
	OrderBy string  `json:"orderBy"`
	Order   *string `json:"order,omitempty"`
}

// DefaultSortOption is the service default for new views.
func DefaultSortOption() SortOption {
	return SortOption{GroupBy: "sortOrder", OrderBy: "sortOrder"}
}

// ProjectGroup is a folder grouping projects in the sidebar.
type ProjectGroup struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	ShowAll   bool    `json:"showAll"`
	SortOrder int64   `json:"sortOrder"`
	ViewMode  *string `json:"viewMode,omitempty"`
	SortType  *string `json:"sortType,omitempty"`
	Etag      string  `json:"etag,omitempty"`
}

// ProjectData is the aggregate returned by the project data endpoint:
// the project itself plus its open tasks and kanban columns.
type ProjectData struct {
	Project Project  `json:"project"`
	Tasks   []Task   `json:"tasks"`
	Columns []Column `json:"columns"`
}

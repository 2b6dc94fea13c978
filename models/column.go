package models

// Column is a kanban section within a project.
type Column struct {
	ID        string `json:"id"`
	ProjectID string `json:"projectId"`
	Name      string `json:"name"`
	SortOrder int64  `json:"sortOrder"`
	Etag      string `json:"etag,omitempty"`
}

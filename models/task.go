package models

// Task kinds.
const (
	KindText = "TEXT"
	KindNote = "NOTE"
)

// Task and checklist item statuses.
const (
	StatusOpen      = 0
	StatusCompleted = 2
)

// Task priorities. The service accepts no values outside this set.
const (
	PriorityNone   = 0
	PriorityLow    = 1
	PriorityMedium = 3
	PriorityHigh   = 5
)

// SortOrderStep is the gap the service leaves between adjacent sortOrder
// values so records can be inserted without renumbering neighbors.
const SortOrderStep int64 = 1 << 40

// ValidPriority reports whether p is one of the accepted priority levels.
func ValidPriority(p int) bool {
	switch p {
	case PriorityNone, PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type Task struct {
	ID           string           `json:"id"`
	ProjectID    string           `json:"projectId"`
	Title        string           `json:"title"`
	Content      string           `json:"content,omitempty"`
	Desc         string           `json:"desc,omitempty"`
	Priority     int              `json:"priority"`
	Status       int              `json:"status"`
	Tags         []string         `json:"tags,omitempty"`
	Items        []ChecklistItem  `json:"items,omitempty"`
	Reminders    []Reminder       `json:"reminders,omitempty"`
	StartDate    *Time            `json:"startDate,omitempty"`
	DueDate      *Time            `json:"dueDate,omitempty"`
	IsAllDay     bool             `json:"isAllDay"`
	IsFloating   bool             `json:"isFloating"`
	TimeZone     string           `json:"timeZone,omitempty"`
	RepeatFlag   string           `json:"repeatFlag,omitempty"`
	RepeatFrom   string           `json:"repeatFrom,omitempty"`
	SortOrder    int64            `json:"sortOrder"`
	Progress     int              `json:"progress"`
	Kind         string           `json:"kind,omitempty"`
	ParentID     string           `json:"parentId,omitempty"`
	ColumnID     string           `json:"columnId,omitempty"`
	Etag         string           `json:"etag,omitempty"`
	Deleted      int              `json:"deleted,omitempty"`
	CreatedTime  *Time            `json:"createdTime,omitempty"`
	ModifiedTime *Time            `json:"modifiedTime,omitempty"`
	Creator      int64            `json:"creator,omitempty"`
	CommentCount int              `json:"commentCount,omitempty"`
	Attachments  []map[string]any `json:"attachments,omitempty"`
	ChildIDs     []string         `json:"childIds,omitempty"`
}

// Completed reports whether the task is closed.
func (t Task) Completed() bool {
	return t.Status == StatusCompleted
}

// ChecklistItem is a subtask line inside a checklist-kind task.
type ChecklistItem struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Status        int    `json:"status"`
	SortOrder     int64  `json:"sortOrder"`
	StartDate     *Time  `json:"startDate,omitempty"`
	IsAllDay      bool   `json:"isAllDay"`
	TimeZone      string `json:"timeZone,omitempty"`
	CompletedTime *Time  `json:"completedTime,omitempty"`
}

// Reminder is an iCal-style trigger attached to a task,
// e.g. "TRIGGER:P0DT9H0M0S".
type Reminder struct {
	ID      string `json:"id,omitempty"`
	Trigger string `json:"trigger"`
}

// TaskKey identifies a task in batch delete and move payloads. Tasks are
// addressed by the (task, project) pair everywhere in the protocol.
type TaskKey struct {
	TaskID    string `json:"taskId"`
	ProjectID string `json:"projectId"`
}

// TaskParent describes one entry of a parent assignment. An empty ParentID
// clears the parent.
type TaskParent struct {
	TaskID    string `json:"taskId"`
	ProjectID string `json:"projectId"`
	ParentID  string `json:"parentId,omitempty"`
}

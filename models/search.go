package models

// SearchResults is the payload of the cloud search endpoint. The service
// matches across tasks and tags; other sections of the response are not
// interpreted by this SDK.
type SearchResults struct {
	Tasks []Task `json:"tasks"`
	Tags  []Tag  `json:"tags"`
}

// TaskQuery filters a task list client-side. Nil fields match everything.
type TaskQuery struct {
	ProjectID  *string
	Tag        *string
	Priority   *int
	Status     *int
	HasDueDate *bool
}

// Match reports whether the task satisfies every set criterion.
func (q TaskQuery) Match(t Task) bool {
	if q.ProjectID != nil && t.ProjectID != *q.ProjectID {
		return false
	}
	if q.Tag != nil {
		found := false
		for _, tag := range t.Tags {
			if FoldTagName(tag) == FoldTagName(*q.Tag) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if q.Priority != nil && t.Priority != *q.Priority {
		return false
	}
	if q.Status != nil && t.Status != *q.Status {
		return false
	}
	if q.HasDueDate != nil && (t.DueDate != nil) != *q.HasDueDate {
		return false
	}
	return true
}

package models

import (
	"encoding/json"
	"strconv"
)

// Filter is a saved smart list. Rule holds the criteria as a JSON string in
// the service's condition format; FilterRule builds it.
type Filter struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Rule         string     `json:"rule,omitempty"`
	SortOrder    int64      `json:"sortOrder"`
	SortType     string     `json:"sortType,omitempty"`
	ViewMode     string     `json:"viewMode,omitempty"`
	Etag         string     `json:"etag,omitempty"`
	CreatedTime  *Time      `json:"createdTime,omitempty"`
	ModifiedTime *Time      `json:"modifiedTime,omitempty"`
	SortOption   SortOption `json:"sortOption"`
}

// Filter status criteria.
const (
	FilterStatusCompleted   = "completed"
	FilterStatusUncompleted = "uncompleted"
)

// FilterRule collects filter criteria and renders the rule JSON the service
// expects, so callers never assemble condition objects by hand. The zero
// value matches every task.
type FilterRule struct {
	ProjectIDs []string
	TagNames   []string
	Priorities []int
	Status     string
	TaskType   string
}

type filterCondition struct {
	ConditionType int    `json:"conditionType"`
	Or            []any  `json:"or"`
	ConditionName string `json:"conditionName"`
}

// Encode renders the rule as the JSON string stored in Filter.Rule.
func (r FilterRule) Encode() (string, error) {
	conditions := make([]filterCondition, 0, 5)

	if len(r.ProjectIDs) > 0 {
		ids := make([]any, len(r.ProjectIDs))
		for i, id := range r.ProjectIDs {
			ids[i] = id
		}
		conditions = append(conditions, filterCondition{
			ConditionType: 1,
			Or:            []any{map[string]any{"or": ids, "conditionName": "list"}},
			ConditionName: "listOrGroup",
		})
	}

	if len(r.TagNames) > 0 {
		names := make([]any, len(r.TagNames))
		for i, name := range r.TagNames {
			names[i] = FoldTagName(name)
		}
		conditions = append(conditions, filterCondition{
			ConditionType: 1,
			Or:            names,
			ConditionName: "tag",
		})
	}

	if len(r.Priorities) > 0 {
		levels := make([]any, len(r.Priorities))
		for i, p := range r.Priorities {
			levels[i] = strconv.Itoa(p)
		}
		conditions = append(conditions, filterCondition{
			ConditionType: 1,
			Or:            levels,
			ConditionName: "priority",
		})
	}

	if r.Status != "" {
		conditions = append(conditions, filterCondition{
			ConditionType: 1,
			Or:            []any{r.Status},
			ConditionName: "status",
		})
	}

	taskType := r.TaskType
	if taskType == "" {
		taskType = "task"
	}
	conditions = append(conditions, filterCondition{
		ConditionType: 1,
		Or:            []any{taskType},
		ConditionName: "taskType",
	})

	rule := map[string]any{"type": 0, "and": conditions, "version": 3}
	raw, err := json.Marshal(rule)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

package validators

import "errors"

var (
	ErrEmptyTaskTitle  = errors.New("task title is required")
	ErrInvalidPriority = errors.New("invalid task priority")
	ErrInvalidStatus   = errors.New("invalid task status")
	ErrInvalidTaskKind = errors.New("invalid task kind")

	ErrEmptyTagName   = errors.New("tag name is required")
	ErrInvalidTagName = errors.New("invalid tag name")

	ErrEmptyFilterName = errors.New("filter name is required")

	ErrEmptyHabitName   = errors.New("habit name is required")
	ErrInvalidHabitType = errors.New("invalid habit goal type")
	ErrInvalidHabitGoal = errors.New("invalid habit goal")
)

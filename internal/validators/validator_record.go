package validators

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-tick-sdk/models"
)

type recordValidator struct {
}

// NewRecordValidator returns the stateless validator used by the service
// façades.
func NewRecordValidator() RecordValidator {
	return &recordValidator{}
}

func (v *recordValidator) Task(t models.Task) error {
	if strings.TrimSpace(t.Title) == "" {
		return ErrEmptyTaskTitle
	}
	if !models.ValidPriority(t.Priority) {
		return fmt.Errorf("%w: %d", ErrInvalidPriority, t.Priority)
	}
	if t.Status != models.StatusOpen && t.Status != models.StatusCompleted {
		return fmt.Errorf("%w: %d", ErrInvalidStatus, t.Status)
	}
	if t.Kind != "" && t.Kind != models.KindText && t.Kind != models.KindNote {
		return fmt.Errorf("%w: %q", ErrInvalidTaskKind, t.Kind)
	}

	return v.tagNames(t.Tags)
}

func (v *recordValidator) Tag(t models.Tag) error {
	name := strings.TrimSpace(t.Name)
	if name == "" {
		return ErrEmptyTagName
	}
	// A leading or trailing separator would produce an empty hierarchy
	// segment the server cannot address.
	if strings.HasPrefix(name, models.TagSeparator) || strings.HasSuffix(name, models.TagSeparator) {
		return fmt.Errorf("%w: %q", ErrInvalidTagName, t.Name)
	}

	return nil
}

func (v *recordValidator) Filter(f models.Filter) error {
	if strings.TrimSpace(f.Name) == "" {
		return ErrEmptyFilterName
	}

	return nil
}

func (v *recordValidator) Habit(h models.Habit) error {
	if strings.TrimSpace(h.Name) == "" {
		return ErrEmptyHabitName
	}
	if h.Type != "" && h.Type != models.HabitTypeBoolean && h.Type != models.HabitTypeReal {
		return fmt.Errorf("%w: %q", ErrInvalidHabitType, h.Type)
	}
	if h.Type == models.HabitTypeReal && h.Goal <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidHabitGoal, h.Goal)
	}

	return nil
}

func (v *recordValidator) tagNames(names []string) error {
	for _, name := range names {
		if err := v.Tag(models.Tag{Name: name}); err != nil {
			return err
		}
	}
	return nil
}

package validators

import (
	"testing"

	"github.com/MKhiriev/go-tick-sdk/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordValidator_Task(t *testing.T) {
	v := NewRecordValidator()

	tests := []struct {
		name    string
		task    models.Task
		wantErr error
	}{
		{
			name: "valid minimal task",
			task: models.Task{Title: "buy milk"},
		},
		{
			name: "valid task with everything set",
			task: models.Task{
				Title:    "report",
				Priority: models.PriorityHigh,
				Status:   models.StatusCompleted,
				Kind:     models.KindNote,
				Tags:     []string{"work", "work/urgent"},
			},
		},
		{
			name:    "empty title",
			task:    models.Task{Title: "   "},
			wantErr: ErrEmptyTaskTitle,
		},
		{
			name:    "priority outside the accepted levels",
			task:    models.Task{Title: "x", Priority: 2},
			wantErr: ErrInvalidPriority,
		},
		{
			name:    "status outside open and completed",
			task:    models.Task{Title: "x", Status: 1},
			wantErr: ErrInvalidStatus,
		},
		{
			name:    "unknown kind",
			task:    models.Task{Title: "x", Kind: "CHECKLIST"},
			wantErr: ErrInvalidTaskKind,
		},
		{
			name:    "tag name with trailing separator",
			task:    models.Task{Title: "x", Tags: []string{"work/"}},
			wantErr: ErrInvalidTagName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Task(tt.task)

			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRecordValidator_Tag(t *testing.T) {
	v := NewRecordValidator()

	assert.NoError(t, v.Tag(models.Tag{Name: "work"}))
	assert.NoError(t, v.Tag(models.Tag{Name: "work/urgent"}))
	assert.ErrorIs(t, v.Tag(models.Tag{}), ErrEmptyTagName)
	assert.ErrorIs(t, v.Tag(models.Tag{Name: "/work"}), ErrInvalidTagName)
	assert.ErrorIs(t, v.Tag(models.Tag{Name: "work/"}), ErrInvalidTagName)
}

func TestRecordValidator_Filter(t *testing.T) {
	v := NewRecordValidator()

	assert.NoError(t, v.Filter(models.Filter{Name: "high priority"}))
	assert.ErrorIs(t, v.Filter(models.Filter{Name: ""}), ErrEmptyFilterName)
}

func TestRecordValidator_Habit(t *testing.T) {
	v := NewRecordValidator()

	assert.NoError(t, v.Habit(models.Habit{Name: "read"}))
	assert.NoError(t, v.Habit(models.Habit{Name: "run", Type: models.HabitTypeReal, Goal: 5}))
	assert.ErrorIs(t, v.Habit(models.Habit{}), ErrEmptyHabitName)
	assert.ErrorIs(t, v.Habit(models.Habit{Name: "x", Type: "Counter"}), ErrInvalidHabitType)
	assert.ErrorIs(t, v.Habit(models.Habit{Name: "x", Type: models.HabitTypeReal}), ErrInvalidHabitGoal)
}

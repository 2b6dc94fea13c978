// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-tick-sdk/internal/adapter"
	"github.com/MKhiriev/go-tick-sdk/internal/logger"
	"github.com/MKhiriev/go-tick-sdk/internal/mock"
	"github.com/MKhiriev/go-tick-sdk/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestHabitSvc(t *testing.T, ctrl *gomock.Controller) (HabitService, *mock.MockServerAdapter) {
	t.Helper()

	mockAdapter := mock.NewMockServerAdapter(ctrl)
	batchSvc := NewBatchService(mockAdapter, logger.Nop())

	return NewHabitService(mockAdapter, batchSvc, logger.Nop()), mockAdapter
}

// ── listing ──────────────────────────────────────────────────────────────────

func TestHabitService_ActiveAndArchived(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestHabitSvc(t, ctrl)
	ctx := context.Background()

	habits := []models.Habit{
		{ID: "h1", Name: "read", Status: models.HabitActive},
		{ID: "h2", Name: "run", Status: models.HabitArchived},
		{ID: "h3", Name: "water", Status: models.HabitActive},
	}
	mockAdapter.EXPECT().GetHabits(gomock.Any()).Return(habits, nil).Times(2)

	active, err := svc.Active(ctx)
	require.NoError(t, err)
	assert.Len(t, active, 2)

	archived, err := svc.Archived(ctx)
	require.NoError(t, err)
	require.Len(t, archived, 1)
	assert.Equal(t, "h2", archived[0].ID)
}

// ── writes under auth modes ──────────────────────────────────────────────────

func TestHabitService_Create_RejectedUnderAPIToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestHabitSvc(t, ctrl)

	mockAdapter.EXPECT().AuthMode().Return(models.AuthModeAPIToken)

	_, err := svc.Create(context.Background(), models.Habit{Name: "read"})

	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrWriteRejected)
}

func TestHabitService_Create_DefaultsBooleanGoal(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestHabitSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().AuthMode().Return(models.AuthModeWeb)
	mockAdapter.EXPECT().
		CreateHabit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, h models.Habit) (models.Habit, error) {
			assert.Len(t, h.ID, 24)
			assert.Equal(t, models.HabitTypeBoolean, h.Type)
			assert.Equal(t, float64(1), h.Goal)
			return h, nil
		})

	created, err := svc.Create(ctx, models.Habit{Name: "read"})

	require.NoError(t, err)
	assert.Equal(t, "read", created.Name)
}

func TestHabitService_Archive_ReadsThenUpdates(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestHabitSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().
		GetHabits(gomock.Any()).
		Return([]models.Habit{{ID: "h1", Name: "read", Status: models.HabitActive}}, nil)
	mockAdapter.EXPECT().AuthMode().Return(models.AuthModeWeb)
	mockAdapter.EXPECT().
		UpdateHabit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, h models.Habit) (models.Habit, error) {
			assert.Equal(t, models.HabitArchived, h.Status)
			return h, nil
		})

	archived, err := svc.Archive(ctx, "h1")

	require.NoError(t, err)
	assert.Equal(t, models.HabitArchived, archived.Status)
}

func TestHabitService_Delete_OfMissingHabitIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestHabitSvc(t, ctrl)

	mockAdapter.EXPECT().AuthMode().Return(models.AuthModeWeb)
	mockAdapter.EXPECT().DeleteHabit(gomock.Any(), "gone").Return(adapter.ErrNotFound)

	err := svc.Delete(context.Background(), "gone")

	require.NoError(t, err)
}

// ── check-ins ────────────────────────────────────────────────────────────────

func TestHabitService_Checkin_AllowedUnderAPIToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestHabitSvc(t, ctrl)
	ctx := context.Background()

	// Check-ins never consult the auth mode: they are not a restricted
	// write surface.
	mockAdapter.EXPECT().
		Checkin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c models.HabitCheckin) (models.HabitCheckin, error) {
			assert.Equal(t, "h1", c.HabitID)
			assert.Len(t, c.CheckinStamp, 8, "stamp must default to today")
			assert.Equal(t, models.CheckinChecked, c.Status)
			return c, nil
		})

	recorded, err := svc.Checkin(ctx, models.HabitCheckin{HabitID: "h1"})

	require.NoError(t, err)
	assert.Equal(t, "h1", recorded.HabitID)
}

func TestHabitService_Checkin_RequiresHabitID(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestHabitSvc(t, ctrl)

	_, err := svc.Checkin(context.Background(), models.HabitCheckin{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidRecord)
}

func TestHabitService_CheckinsSince(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestHabitSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().
		QueryHabitCheckins(gomock.Any(), models.HabitCheckinQuery{
			HabitIDs:   []string{"h1"},
			AfterStamp: "20260801",
		}).
		Return(models.HabitCheckinResult{
			Checkins: map[string][]models.HabitCheckin{"h1": {{HabitID: "h1", CheckinStamp: "20260815"}}},
		}, nil)

	since, err := models.ParseDateStamp("20260801")
	require.NoError(t, err)

	byHabit, err := svc.CheckinsSince(ctx, []string{"h1"}, since)

	require.NoError(t, err)
	require.Len(t, byHabit["h1"], 1)
}

func TestHabitService_BatchCheckin_FillsDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestHabitSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().
		BatchCheckin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, batch models.HabitCheckinBatch) error {
			require.Len(t, batch.Checkins, 2)
			for _, c := range batch.Checkins {
				assert.Len(t, c.ID, 24)
				assert.Len(t, c.CheckinStamp, 8)
			}
			return nil
		})

	err := svc.BatchCheckin(ctx, []models.HabitCheckin{{HabitID: "h1"}, {HabitID: "h2"}})

	require.NoError(t, err)
}

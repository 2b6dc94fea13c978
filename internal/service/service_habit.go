// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-tick-sdk/internal/adapter"
	"github.com/MKhiriev/go-tick-sdk/internal/logger"
	"github.com/MKhiriev/go-tick-sdk/internal/utils"
	"github.com/MKhiriev/go-tick-sdk/internal/validators"
	"github.com/MKhiriev/go-tick-sdk/models"
)

type habitService struct {
	adapter   adapter.ServerAdapter
	batch     BatchService
	validator validators.RecordValidator
	logger    *logger.Logger
}

// NewHabitService builds the habit façade. Habit CRUD goes through the
// write coordinator so the api-token restriction applies; check-ins talk
// to the adapter directly because they are allowed under both auth modes.
func NewHabitService(serverAdapter adapter.ServerAdapter, batchSvc BatchService, log *logger.Logger) HabitService {
	return &habitService{
		adapter:   serverAdapter,
		batch:     batchSvc,
		validator: validators.NewRecordValidator(),
		logger:    log,
	}
}

// GetAll implements [HabitService].
func (s *habitService) GetAll(ctx context.Context) ([]models.Habit, error) {
	return s.adapter.GetHabits(ctx)
}

// Active implements [HabitService].
func (s *habitService) Active(ctx context.Context) ([]models.Habit, error) {
	return s.byStatus(ctx, models.HabitActive)
}

// Archived implements [HabitService].
func (s *habitService) Archived(ctx context.Context) ([]models.Habit, error) {
	return s.byStatus(ctx, models.HabitArchived)
}

func (s *habitService) byStatus(ctx context.Context, status int) ([]models.Habit, error) {
	all, err := s.adapter.GetHabits(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]models.Habit, 0, len(all))
	for _, h := range all {
		if h.Status == status {
			matched = append(matched, h)
		}
	}
	return matched, nil
}

// Get implements [HabitService].
func (s *habitService) Get(ctx context.Context, habitID string) (models.Habit, error) {
	all, err := s.adapter.GetHabits(ctx)
	if err != nil {
		return models.Habit{}, err
	}

	for _, h := range all {
		if h.ID == habitID {
			return h, nil
		}
	}
	return models.Habit{}, fmt.Errorf("%w: %s", ErrHabitNotFound, habitID)
}

// Create implements [HabitService].
func (s *habitService) Create(ctx context.Context, h models.Habit) (models.Habit, error) {
	if err := s.validator.Habit(h); err != nil {
		return models.Habit{}, err
	}

	if h.ID == "" {
		h.ID = utils.ObjectID()
	}
	if h.Type == "" {
		h.Type = models.HabitTypeBoolean
		h.Goal = 1
	}

	result, err := s.batch.Submit(ctx, models.EntityHabit, models.BatchRequest{Add: []any{h}})
	if err != nil {
		return models.Habit{}, err
	}
	return onlyHabit(result)
}

// Update implements [HabitService].
func (s *habitService) Update(ctx context.Context, h models.Habit) (models.Habit, error) {
	if err := s.validator.Habit(h); err != nil {
		return models.Habit{}, err
	}

	result, err := s.batch.Submit(ctx, models.EntityHabit, models.BatchRequest{Update: []any{h}})
	if err != nil {
		return models.Habit{}, err
	}
	return onlyHabit(result)
}

// Archive implements [HabitService].
func (s *habitService) Archive(ctx context.Context, habitID string) (models.Habit, error) {
	return s.setStatus(ctx, habitID, models.HabitArchived)
}

// Unarchive implements [HabitService].
func (s *habitService) Unarchive(ctx context.Context, habitID string) (models.Habit, error) {
	return s.setStatus(ctx, habitID, models.HabitActive)
}

func (s *habitService) setStatus(ctx context.Context, habitID string, status int) (models.Habit, error) {
	h, err := s.Get(ctx, habitID)
	if err != nil {
		return models.Habit{}, err
	}

	h.Status = status
	return s.Update(ctx, h)
}

// Delete implements [HabitService].
func (s *habitService) Delete(ctx context.Context, habitID string) error {
	_, err := s.batch.Submit(ctx, models.EntityHabit, models.BatchRequest{Delete: []any{habitID}})
	if err != nil {
		return fmt.Errorf("delete habit %s: %w", habitID, err)
	}
	return nil
}

// CheckinsSince implements [HabitService].
func (s *habitService) CheckinsSince(ctx context.Context, habitIDs []string, since models.Time) (map[string][]models.HabitCheckin, error) {
	q := models.HabitCheckinQuery{HabitIDs: habitIDs}
	if !since.IsZero() {
		q.AfterStamp = since.DateStamp()
	}

	result, err := s.adapter.QueryHabitCheckins(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query habit check-ins: %w", err)
	}
	return result.Checkins, nil
}

// Checkin implements [HabitService]. A missing stamp defaults to today.
func (s *habitService) Checkin(ctx context.Context, c models.HabitCheckin) (models.HabitCheckin, error) {
	if c.HabitID == "" {
		return models.HabitCheckin{}, fmt.Errorf("%w: check-in carries no habit id", ErrInvalidRecord)
	}
	if c.CheckinStamp == "" {
		c.CheckinStamp = utils.TodayStamp()
	}
	if c.ID == "" {
		c.ID = utils.ObjectID()
	}
	if c.Status == models.CheckinUnchecked {
		c.Status = models.CheckinChecked
	}

	recorded, err := s.adapter.Checkin(ctx, c)
	if err != nil {
		return models.HabitCheckin{}, fmt.Errorf("check in habit %s: %w", c.HabitID, err)
	}
	return recorded, nil
}

// BatchCheckin implements [HabitService].
func (s *habitService) BatchCheckin(ctx context.Context, checkins []models.HabitCheckin) error {
	if len(checkins) == 0 {
		return nil
	}

	for i := range checkins {
		if checkins[i].HabitID == "" {
			return fmt.Errorf("%w: check-in %d carries no habit id", ErrInvalidRecord, i)
		}
		if checkins[i].CheckinStamp == "" {
			checkins[i].CheckinStamp = utils.TodayStamp()
		}
		if checkins[i].ID == "" {
			checkins[i].ID = utils.ObjectID()
		}
	}

	if err := s.adapter.BatchCheckin(ctx, models.HabitCheckinBatch{Checkins: checkins}); err != nil {
		return fmt.Errorf("batch check-in: %w", err)
	}
	return nil
}

func onlyHabit(result models.BatchResult) (models.Habit, error) {
	for _, rec := range result.Records {
		if h, ok := rec.(models.Habit); ok {
			return h, nil
		}
	}
	return models.Habit{}, errors.New("batch result carries no habit record")
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-tick-sdk/internal/adapter"
	"github.com/MKhiriev/go-tick-sdk/internal/logger"
	"github.com/MKhiriev/go-tick-sdk/internal/utils"
	"github.com/MKhiriev/go-tick-sdk/internal/validators"
	"github.com/MKhiriev/go-tick-sdk/models"
)

type filterService struct {
	adapter   adapter.ServerAdapter
	sync      SyncService
	batch     BatchService
	validator validators.RecordValidator
	logger    *logger.Logger
}

// NewFilterService builds the saved-filter façade.
func NewFilterService(serverAdapter adapter.ServerAdapter, syncSvc SyncService, batchSvc BatchService, log *logger.Logger) FilterService {
	return &filterService{
		adapter:   serverAdapter,
		sync:      syncSvc,
		batch:     batchSvc,
		validator: validators.NewRecordValidator(),
		logger:    log,
	}
}

// GetAll implements [FilterService].
func (s *filterService) GetAll(ctx context.Context) ([]models.Filter, error) {
	snap, err := s.sync.Resolve(ctx, models.CollectionFilters, true)
	if err != nil {
		return nil, err
	}
	return snap.Filters.Items(), nil
}

// Get implements [FilterService].
func (s *filterService) Get(ctx context.Context, filterID string) (models.Filter, error) {
	all, err := s.GetAll(ctx)
	if err != nil {
		return models.Filter{}, err
	}

	for _, f := range all {
		if f.ID == filterID {
			return f, nil
		}
	}
	return models.Filter{}, fmt.Errorf("%w: %s", ErrFilterNotFound, filterID)
}

// Create implements [FilterService]. The id is assigned client-side so the
// materialized record can be recovered after the receipt-only batch write.
func (s *filterService) Create(ctx context.Context, name string, rule models.FilterRule) (models.Filter, error) {
	encoded, err := rule.Encode()
	if err != nil {
		return models.Filter{}, fmt.Errorf("encode filter rule: %w", err)
	}

	f := models.Filter{
		ID:       utils.ObjectID(),
		Name:     name,
		Rule:     encoded,
		SortType: "sortOrder",
		ViewMode: "list",
	}
	if err = s.validator.Filter(f); err != nil {
		return models.Filter{}, err
	}

	if _, err = s.batch.Submit(ctx, models.EntityFilter, models.BatchRequest{Add: []any{f}}); err != nil {
		return models.Filter{}, err
	}

	return s.Get(ctx, f.ID)
}

// Update implements [FilterService].
func (s *filterService) Update(ctx context.Context, f models.Filter) (models.Filter, error) {
	if err := s.validator.Filter(f); err != nil {
		return models.Filter{}, err
	}
	if _, err := s.batch.Submit(ctx, models.EntityFilter, models.BatchRequest{Update: []any{f}}); err != nil {
		return models.Filter{}, err
	}
	return s.Get(ctx, f.ID)
}

// Delete implements [FilterService].
func (s *filterService) Delete(ctx context.Context, filterID string) error {
	_, err := s.batch.Submit(ctx, models.EntityFilter, models.BatchRequest{Delete: []any{filterID}})
	if err != nil {
		return fmt.Errorf("delete filter %s: %w", filterID, err)
	}
	return nil
}

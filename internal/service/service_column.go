// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-tick-sdk/internal/adapter"
	"github.com/MKhiriev/go-tick-sdk/internal/logger"
	"github.com/MKhiriev/go-tick-sdk/models"
)

type columnService struct {
	adapter adapter.ServerAdapter
	batch   BatchService
	logger  *logger.Logger
}

// NewColumnService builds the kanban-column façade.
func NewColumnService(serverAdapter adapter.ServerAdapter, batchSvc BatchService, log *logger.Logger) ColumnService {
	return &columnService{adapter: serverAdapter, batch: batchSvc, logger: log}
}

// ByProject implements [ColumnService].
func (s *columnService) ByProject(ctx context.Context, projectID string) ([]models.Column, error) {
	return s.adapter.GetProjectColumns(ctx, projectID)
}

// Create implements [ColumnService].
func (s *columnService) Create(ctx context.Context, projectID, name string) (models.Column, error) {
	result, err := s.batch.Submit(ctx, models.EntityColumn, models.BatchRequest{
		Add: []any{models.Column{ProjectID: projectID, Name: name}},
	})
	if err != nil {
		return models.Column{}, err
	}
	return onlyColumn(result)
}

// Update implements [ColumnService].
func (s *columnService) Update(ctx context.Context, c models.Column) (models.Column, error) {
	result, err := s.batch.Submit(ctx, models.EntityColumn, models.BatchRequest{Update: []any{c}})
	if err != nil {
		return models.Column{}, err
	}
	return onlyColumn(result)
}

// Rename implements [ColumnService].
func (s *columnService) Rename(ctx context.Context, projectID, columnID, name string) (models.Column, error) {
	c, err := s.get(ctx, projectID, columnID)
	if err != nil {
		return models.Column{}, err
	}

	c.Name = name
	return s.Update(ctx, c)
}

// Move implements [ColumnService].
func (s *columnService) Move(ctx context.Context, projectID, columnID string, sortOrder int64) (models.Column, error) {
	c, err := s.get(ctx, projectID, columnID)
	if err != nil {
		return models.Column{}, err
	}

	c.SortOrder = sortOrder
	return s.Update(ctx, c)
}

func (s *columnService) get(ctx context.Context, projectID, columnID string) (models.Column, error) {
	cols, err := s.adapter.GetProjectColumns(ctx, projectID)
	if err != nil {
		return models.Column{}, err
	}

	for _, c := range cols {
		if c.ID == columnID {
			return c, nil
		}
	}
	return models.Column{}, fmt.Errorf("%w: %s in project %s", ErrColumnNotFound, columnID, projectID)
}

func onlyColumn(result models.BatchResult) (models.Column, error) {
	for _, rec := range result.Records {
		if c, ok := rec.(models.Column); ok {
			return c, nil
		}
	}
	return models.Column{}, errors.New("batch result carries no column record")
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-tick-sdk/internal/adapter"
	"github.com/MKhiriev/go-tick-sdk/internal/logger"
	"github.com/MKhiriev/go-tick-sdk/models"
)

type searchService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

// NewSearchService builds the server-side search façade.
func NewSearchService(serverAdapter adapter.ServerAdapter, log *logger.Logger) SearchService {
	return &searchService{adapter: serverAdapter, logger: log}
}

// All implements [SearchService].
func (s *searchService) All(ctx context.Context, keywords string) (models.SearchResults, error) {
	keywords = strings.TrimSpace(keywords)
	if keywords == "" {
		return models.SearchResults{}, fmt.Errorf("%w: empty search keywords", ErrInvalidRecord)
	}
	return s.adapter.Search(ctx, keywords)
}

// Tasks implements [SearchService].
func (s *searchService) Tasks(ctx context.Context, keywords string) ([]models.Task, error) {
	results, err := s.All(ctx, keywords)
	if err != nil {
		return nil, err
	}
	return results.Tasks, nil
}

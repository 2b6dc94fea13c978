// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-tick-sdk/internal/adapter"
	"github.com/MKhiriev/go-tick-sdk/internal/logger"
	"github.com/MKhiriev/go-tick-sdk/internal/validators"
	"github.com/MKhiriev/go-tick-sdk/models"
)

type tagService struct {
	adapter   adapter.ServerAdapter
	sync      SyncService
	batch     BatchService
	validator validators.RecordValidator
	logger    *logger.Logger
}

// NewTagService builds the tag façade. Every name crossing this boundary
// is case-folded; the remote store is case-insensitive and keeps case for
// display only.
func NewTagService(serverAdapter adapter.ServerAdapter, syncSvc SyncService, batchSvc BatchService, log *logger.Logger) TagService {
	return &tagService{
		adapter:   serverAdapter,
		sync:      syncSvc,
		batch:     batchSvc,
		validator: validators.NewRecordValidator(),
		logger:    log,
	}
}

// GetAll implements [TagService].
func (s *tagService) GetAll(ctx context.Context) ([]models.Tag, error) {
	snap, err := s.sync.Resolve(ctx, models.CollectionTags, true)
	if err != nil {
		return nil, err
	}
	return snap.Tags.Items(), nil
}

// Get implements [TagService].
func (s *tagService) Get(ctx context.Context, name string) (models.Tag, error) {
	folded := models.FoldTagName(name)

	all, err := s.GetAll(ctx)
	if err != nil {
		return models.Tag{}, err
	}

	for _, t := range all {
		if models.FoldTagName(t.Name) == folded {
			return t, nil
		}
	}
	return models.Tag{}, fmt.Errorf("%w: %s", ErrTagNotFound, folded)
}

// Children implements [TagService].
func (s *tagService) Children(ctx context.Context, name string) ([]models.Tag, error) {
	folded := models.FoldTagName(name)

	all, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	children := make([]models.Tag, 0)
	for _, t := range all {
		if models.FoldTagName(t.ParentName()) == folded && t.Name != folded {
			children = append(children, t)
		}
	}
	return children, nil
}

// Create implements [TagService]. The batch endpoint answers with a
// receipt, not the record, so the materialized tag is recovered with one
// full sync and a folded-name lookup.
func (s *tagService) Create(ctx context.Context, t models.Tag) (models.Tag, error) {
	if err := s.validator.Tag(t); err != nil {
		return models.Tag{}, err
	}
	if t.Label == "" {
		t.Label = t.Name
	}

	if _, err := s.batch.Submit(ctx, models.EntityTag, models.BatchRequest{Add: []any{t}}); err != nil {
		return models.Tag{}, err
	}

	return s.Get(ctx, t.Name)
}

// CreateChild implements [TagService].
func (s *tagService) CreateChild(ctx context.Context, parent, name string) (models.Tag, error) {
	full := models.JoinTagName(models.FoldTagName(parent), models.FoldTagName(name))
	return s.Create(ctx, models.Tag{Name: full, Label: name, Parent: models.FoldTagName(parent)})
}

// Update implements [TagService].
func (s *tagService) Update(ctx context.Context, t models.Tag) (models.Tag, error) {
	if err := s.validator.Tag(t); err != nil {
		return models.Tag{}, err
	}

	if _, err := s.batch.Submit(ctx, models.EntityTag, models.BatchRequest{Update: []any{t}}); err != nil {
		return models.Tag{}, err
	}

	return s.Get(ctx, t.Name)
}

// Rename implements [TagService]. Renaming onto a name that already exists
// is refused by the server; that refusal surfaces unchanged rather than
// being second-guessed here (the server merges only through the explicit
// Merge call).
func (s *tagService) Rename(ctx context.Context, name, newName string) (models.Tag, error) {
	rename := models.TagRename{
		Name:    models.FoldTagName(name),
		NewName: models.FoldTagName(newName),
	}

	if err := s.adapter.RenameTag(ctx, rename); err != nil {
		return models.Tag{}, fmt.Errorf("rename tag %s: %w", rename.Name, err)
	}

	return s.Get(ctx, rename.NewName)
}

// Merge implements [TagService].
func (s *tagService) Merge(ctx context.Context, source, target string) error {
	rename := models.TagRename{
		Name:    models.FoldTagName(source),
		NewName: models.FoldTagName(target),
	}

	if err := s.adapter.MergeTags(ctx, rename); err != nil {
		return fmt.Errorf("merge tag %s into %s: %w", rename.Name, rename.NewName, err)
	}
	return nil
}

// Delete implements [TagService]. Names carrying the hierarchy separator
// cannot travel in the path of the narrow delete endpoint, so sub-tags
// route through the batch endpoint instead.
func (s *tagService) Delete(ctx context.Context, name string) error {
	folded := models.FoldTagName(name)

	if strings.Contains(folded, models.TagSeparator) {
		_, err := s.batch.Submit(ctx, models.EntityTag, models.BatchRequest{Delete: []any{folded}})
		return err
	}

	err := s.adapter.DeleteTag(ctx, folded)
	if err != nil && !errors.Is(err, adapter.ErrNotFound) {
		return fmt.Errorf("delete tag %s: %w", folded, err)
	}
	return nil
}

// CompletedTasks implements [TagService].
func (s *tagService) CompletedTasks(ctx context.Context, names []string, limit int) ([]models.Task, error) {
	folded := make([]string, len(names))
	for i, n := range names {
		folded[i] = models.FoldTagName(n)
	}
	return s.adapter.GetCompletedByTags(ctx, folded, limit, "")
}

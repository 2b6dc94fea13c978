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

type projectService struct {
	adapter adapter.ServerAdapter
	sync    SyncService
	batch   BatchService
	logger  *logger.Logger
}

// NewProjectService builds the project and project-group façade.
func NewProjectService(serverAdapter adapter.ServerAdapter, syncSvc SyncService, batchSvc BatchService, log *logger.Logger) ProjectService {
	return &projectService{adapter: serverAdapter, sync: syncSvc, batch: batchSvc, logger: log}
}

// GetAll implements [ProjectService].
func (s *projectService) GetAll(ctx context.Context) ([]models.Project, error) {
	snap, err := s.sync.Resolve(ctx, models.CollectionProjects, true)
	if err != nil {
		return nil, err
	}
	return snap.Projects.Items(), nil
}

// Get implements [ProjectService].
func (s *projectService) Get(ctx context.Context, projectID string) (models.Project, error) {
	all, err := s.GetAll(ctx)
	if err != nil {
		return models.Project{}, err
	}

	for _, p := range all {
		if p.ID == projectID {
			return p, nil
		}
	}
	return models.Project{}, fmt.Errorf("%w: %s", ErrProjectNotFound, projectID)
}

// Data implements [ProjectService].
func (s *projectService) Data(ctx context.Context, projectID string) (models.ProjectData, error) {
	return s.adapter.GetProjectData(ctx, projectID)
}

// Create implements [ProjectService].
func (s *projectService) Create(ctx context.Context, p models.Project) (models.Project, error) {
	result, err := s.batch.Submit(ctx, models.EntityProject, models.BatchRequest{Add: []any{p}})
	if err != nil {
		return models.Project{}, err
	}
	return onlyProject(result)
}

// Update implements [ProjectService]. The update endpoint may answer with
// an empty body; the coordinator's refetch guarantees a materialized record
// either way.
func (s *projectService) Update(ctx context.Context, p models.Project) (models.Project, error) {
	result, err := s.batch.Submit(ctx, models.EntityProject, models.BatchRequest{Update: []any{p}})
	if err != nil {
		return models.Project{}, err
	}
	return onlyProject(result)
}

// Rename implements [ProjectService].
func (s *projectService) Rename(ctx context.Context, projectID, name string) (models.Project, error) {
	p, err := s.Get(ctx, projectID)
	if err != nil {
		return models.Project{}, err
	}

	p.Name = name
	return s.Update(ctx, p)
}

// Archive implements [ProjectService].
func (s *projectService) Archive(ctx context.Context, projectID string) (models.Project, error) {
	return s.setClosed(ctx, projectID, true)
}

// Unarchive implements [ProjectService].
func (s *projectService) Unarchive(ctx context.Context, projectID string) (models.Project, error) {
	return s.setClosed(ctx, projectID, false)
}

func (s *projectService) setClosed(ctx context.Context, projectID string, closed bool) (models.Project, error) {
	p, err := s.Get(ctx, projectID)
	if err != nil {
		return models.Project{}, err
	}

	p.Closed = &closed
	return s.Update(ctx, p)
}

// Delete implements [ProjectService].
func (s *projectService) Delete(ctx context.Context, projectID string) error {
	_, err := s.batch.Submit(ctx, models.EntityProject, models.BatchRequest{Delete: []any{projectID}})
	return err
}

// Groups implements [ProjectService].
func (s *projectService) Groups(ctx context.Context) ([]models.ProjectGroup, error) {
	snap, err := s.sync.Resolve(ctx, models.CollectionGroups, true)
	if err != nil {
		return nil, err
	}
	return snap.Groups.Items(), nil
}

// CreateGroup implements [ProjectService].
func (s *projectService) CreateGroup(ctx context.Context, name string) (models.ProjectGroup, error) {
	result, err := s.batch.Submit(ctx, models.EntityProjectGroup, models.BatchRequest{
		Add: []any{models.ProjectGroup{Name: name, ShowAll: true}},
	})
	if err != nil {
		return models.ProjectGroup{}, err
	}
	return onlyGroup(result)
}

// RenameGroup implements [ProjectService].
func (s *projectService) RenameGroup(ctx context.Context, groupID, name string) (models.ProjectGroup, error) {
	groups, err := s.Groups(ctx)
	if err != nil {
		return models.ProjectGroup{}, err
	}

	var target *models.ProjectGroup
	for i := range groups {
		if groups[i].ID == groupID {
			target = &groups[i]
			break
		}
	}
	if target == nil {
		return models.ProjectGroup{}, fmt.Errorf("%w: %s", ErrGroupNotFound, groupID)
	}

	target.Name = name
	result, err := s.batch.Submit(ctx, models.EntityProjectGroup, models.BatchRequest{Update: []any{*target}})
	if err != nil {
		return models.ProjectGroup{}, err
	}
	return onlyGroup(result)
}

// DeleteGroup implements [ProjectService].
func (s *projectService) DeleteGroup(ctx context.Context, groupID string) error {
	_, err := s.batch.Submit(ctx, models.EntityProjectGroup, models.BatchRequest{Delete: []any{groupID}})
	return err
}

// MoveToGroup implements [ProjectService].
func (s *projectService) MoveToGroup(ctx context.Context, projectID, groupID string) (models.Project, error) {
	p, err := s.Get(ctx, projectID)
	if err != nil {
		return models.Project{}, err
	}

	p.GroupID = &groupID
	return s.Update(ctx, p)
}

// RemoveFromGroup implements [ProjectService].
func (s *projectService) RemoveFromGroup(ctx context.Context, projectID string) (models.Project, error) {
	p, err := s.Get(ctx, projectID)
	if err != nil {
		return models.Project{}, err
	}

	none := ""
	p.GroupID = &none
	return s.Update(ctx, p)
}

// onlyProject unwraps the single materialized project of a batch result.
func onlyProject(result models.BatchResult) (models.Project, error) {
	for _, rec := range result.Records {
		if p, ok := rec.(models.Project); ok {
			return p, nil
		}
	}
	return models.Project{}, errors.New("batch result carries no project record")
}

func onlyGroup(result models.BatchResult) (models.ProjectGroup, error) {
	for _, rec := range result.Records {
		if g, ok := rec.(models.ProjectGroup); ok {
			return g, nil
		}
	}
	return models.ProjectGroup{}, errors.New("batch result carries no project group record")
}

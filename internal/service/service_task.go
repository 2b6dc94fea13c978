// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"

	"dario.cat/mergo"
	"github.com/MKhiriev/go-tick-sdk/internal/adapter"
	"github.com/MKhiriev/go-tick-sdk/internal/logger"
	"github.com/MKhiriev/go-tick-sdk/internal/store"
	"github.com/MKhiriev/go-tick-sdk/internal/utils"
	"github.com/MKhiriev/go-tick-sdk/internal/validators"
	"github.com/MKhiriev/go-tick-sdk/models"
)

type taskService struct {
	adapter   adapter.ServerAdapter
	sync      SyncService
	batch     BatchService
	sessions  store.SessionRepository
	validator validators.RecordValidator
	logger    *logger.Logger

	mu      sync.Mutex
	inboxID string
}

// NewTaskService builds the task façade over the engine.
func NewTaskService(serverAdapter adapter.ServerAdapter, syncSvc SyncService, batchSvc BatchService, sessions store.SessionRepository, log *logger.Logger) TaskService {
	return &taskService{
		adapter:   serverAdapter,
		sync:      syncSvc,
		batch:     batchSvc,
		sessions:  sessions,
		validator: validators.NewRecordValidator(),
		logger:    log,
	}
}

// Create implements [TaskService].
func (s *taskService) Create(ctx context.Context, t models.Task) (models.Task, error) {
	if err := s.validator.Task(t); err != nil {
		return models.Task{}, err
	}

	if t.ProjectID == "" {
		inbox, err := s.inbox(ctx)
		if err != nil {
			return models.Task{}, fmt.Errorf("resolve inbox project: %w", err)
		}
		t.ProjectID = inbox
	}
	if t.ID == "" {
		t.ID = utils.ObjectID()
	}
	if t.Kind == "" {
		t.Kind = models.KindText
	}

	created, err := s.adapter.CreateTask(ctx, t)
	if err != nil {
		return models.Task{}, fmt.Errorf("create task: %w", err)
	}
	return created, nil
}

// Get implements [TaskService].
func (s *taskService) Get(ctx context.Context, taskID, projectID string) (models.Task, error) {
	return s.adapter.GetTask(ctx, taskID, projectID)
}

// GetAll implements [TaskService]. The complete open-task list only exists
// in a full sync; a delta omitting the task set means "unchanged", which is
// useless for answering "what tasks do I have".
func (s *taskService) GetAll(ctx context.Context) ([]models.Task, error) {
	snap, err := s.sync.Resolve(ctx, models.CollectionTasks, true)
	if err != nil {
		return nil, err
	}
	return snap.Tasks.All(), nil
}

// Query implements [TaskService].
func (s *taskService) Query(ctx context.Context, q models.TaskQuery) ([]models.Task, error) {
	all, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]models.Task, 0, len(all))
	for _, t := range all {
		if q.Match(t) {
			matched = append(matched, t)
		}
	}
	return matched, nil
}

// Update implements [TaskService].
func (s *taskService) Update(ctx context.Context, t models.Task) (models.Task, error) {
	if err := s.validator.Task(t); err != nil {
		return models.Task{}, err
	}

	updated, err := s.adapter.UpdateTask(ctx, t)
	if err != nil {
		return models.Task{}, fmt.Errorf("update task %s: %w", t.ID, err)
	}
	return updated, nil
}

// UpdateFields implements [TaskService]. The patch's zero fields are filled
// from the current server record, so callers only set what they change.
func (s *taskService) UpdateFields(ctx context.Context, taskID, projectID string, patch models.Task) (models.Task, error) {
	current, err := s.adapter.GetTask(ctx, taskID, projectID)
	if err != nil {
		return models.Task{}, fmt.Errorf("read task %s before partial update: %w", taskID, err)
	}

	merged := patch
	merged.ID = current.ID
	merged.ProjectID = current.ProjectID
	merged.Etag = current.Etag
	if err = mergo.Merge(&merged, current); err != nil {
		return models.Task{}, fmt.Errorf("merge task fields: %w", err)
	}

	return s.Update(ctx, merged)
}

// Complete implements [TaskService].
func (s *taskService) Complete(ctx context.Context, taskID, projectID string) (models.Task, error) {
	return s.setStatus(ctx, taskID, projectID, models.StatusCompleted)
}

// Uncomplete implements [TaskService].
func (s *taskService) Uncomplete(ctx context.Context, taskID, projectID string) (models.Task, error) {
	return s.setStatus(ctx, taskID, projectID, models.StatusOpen)
}

func (s *taskService) setStatus(ctx context.Context, taskID, projectID string, status int) (models.Task, error) {
	t, err := s.adapter.GetTask(ctx, taskID, projectID)
	if err != nil {
		return models.Task{}, fmt.Errorf("read task %s before status change: %w", taskID, err)
	}

	t.Status = status
	updated, err := s.adapter.UpdateTask(ctx, t)
	if err != nil {
		return models.Task{}, fmt.Errorf("set task %s status: %w", taskID, err)
	}
	return updated, nil
}

// Delete implements [TaskService].
func (s *taskService) Delete(ctx context.Context, taskID, projectID string) error {
	_, err := s.batch.Submit(ctx, models.EntityTask, models.BatchRequest{
		Delete: []any{models.TaskKey{TaskID: taskID, ProjectID: projectID}},
	})
	if err != nil {
		return fmt.Errorf("delete task %s: %w", taskID, err)
	}
	return nil
}

// Move implements [TaskService]. There is no dedicated move endpoint: the
// task is read from its current project and written back with the new one.
func (s *taskService) Move(ctx context.Context, taskID, fromProjectID, toProjectID string) (models.Task, error) {
	t, err := s.adapter.GetTask(ctx, taskID, fromProjectID)
	if err != nil {
		return models.Task{}, fmt.Errorf("read task %s before move: %w", taskID, err)
	}

	t.ProjectID = toProjectID
	moved, err := s.adapter.UpdateTask(ctx, t)
	if err != nil {
		return models.Task{}, fmt.Errorf("move task %s to %s: %w", taskID, toProjectID, err)
	}
	return moved, nil
}

// SetParent implements [TaskService].
func (s *taskService) SetParent(ctx context.Context, taskID, projectID, parentID string) error {
	_, err := s.adapter.SetTaskParents(ctx, []models.TaskParent{
		{TaskID: taskID, ProjectID: projectID, ParentID: parentID},
	})
	if err != nil {
		return fmt.Errorf("set parent of task %s: %w", taskID, err)
	}
	return nil
}

// ClearParent implements [TaskService].
func (s *taskService) ClearParent(ctx context.Context, taskID, projectID string) error {
	return s.SetParent(ctx, taskID, projectID, "")
}

// Completed implements [TaskService].
func (s *taskService) Completed(ctx context.Context, projectID string, from, to models.Time, limit int) ([]models.Task, error) {
	return s.adapter.GetCompletedTasks(ctx, projectID, from, to, limit)
}

// CompletedInAll implements [TaskService].
func (s *taskService) CompletedInAll(ctx context.Context, from, to models.Time, limit int) ([]models.Task, error) {
	return s.adapter.GetCompletedInAll(ctx, from, to, limit)
}

// Trash implements [TaskService].
func (s *taskService) Trash(ctx context.Context, limit int) ([]models.Task, error) {
	return s.adapter.GetTrashedTasks(ctx, limit)
}

// AddChecklistItem implements [TaskService].
func (s *taskService) AddChecklistItem(ctx context.Context, taskID, projectID, title string) (models.Task, error) {
	t, err := s.adapter.GetTask(ctx, taskID, projectID)
	if err != nil {
		return models.Task{}, fmt.Errorf("read task %s before checklist change: %w", taskID, err)
	}

	var order int64
	if n := len(t.Items); n > 0 {
		order = t.Items[n-1].SortOrder + models.SortOrderStep
	}
	t.Items = append(t.Items, models.ChecklistItem{
		ID:        utils.ObjectID(),
		Title:     title,
		Status:    models.StatusOpen,
		SortOrder: order,
	})

	return s.Update(ctx, t)
}

// CompleteChecklistItem implements [TaskService].
func (s *taskService) CompleteChecklistItem(ctx context.Context, taskID, projectID, itemID string) (models.Task, error) {
	t, err := s.adapter.GetTask(ctx, taskID, projectID)
	if err != nil {
		return models.Task{}, fmt.Errorf("read task %s before checklist change: %w", taskID, err)
	}

	found := false
	for i := range t.Items {
		if t.Items[i].ID == itemID {
			t.Items[i].Status = models.StatusCompleted
			found = true
			break
		}
	}
	if !found {
		return models.Task{}, fmt.Errorf("checklist item %s: %w", itemID, adapter.ErrNotFound)
	}

	return s.Update(ctx, t)
}

// RemoveChecklistItem implements [TaskService].
func (s *taskService) RemoveChecklistItem(ctx context.Context, taskID, projectID, itemID string) (models.Task, error) {
	t, err := s.adapter.GetTask(ctx, taskID, projectID)
	if err != nil {
		return models.Task{}, fmt.Errorf("read task %s before checklist change: %w", taskID, err)
	}

	kept := t.Items[:0]
	for _, item := range t.Items {
		if item.ID != itemID {
			kept = append(kept, item)
		}
	}
	t.Items = kept

	return s.Update(ctx, t)
}

// inbox resolves the account's inbox project id, preferring the persisted
// session and falling back to the status endpoint. Cached for the life of
// the service.
func (s *taskService) inbox(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inboxID != "" {
		return s.inboxID, nil
	}

	if s.sessions != nil {
		if session, err := s.sessions.Load(ctx); err == nil && session.InboxID != "" {
			s.inboxID = session.InboxID
			return s.inboxID, nil
		}
	}

	status, err := s.adapter.GetUserStatus(ctx)
	if err != nil {
		return "", err
	}
	if status.InboxID == "" {
		return "", fmt.Errorf("%w: user status carries no inbox id", adapter.ErrProtocol)
	}

	s.inboxID = status.InboxID
	return s.inboxID, nil
}

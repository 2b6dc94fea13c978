// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for communicating with the
// task service.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) speaking the service's v2/v3 web
// API.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401, [ErrWriteRejected] for 405,
// [ErrRateLimited] for 429).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-tick-sdk/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the task
// service. Implementations are responsible for serialisation, credential
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
//
// Methods never interpret collection semantics: a delta snapshot that omits
// a collection is returned with that collection absent, and deciding what
// absence means belongs to the sync engine.
type ServerAdapter interface {
	// SetToken stores the session token attached to all subsequent
	// authenticated requests. For web sessions the token travels as the "t"
	// cookie; for Open API tokens as an Authorization bearer header.
	SetToken(token string)

	// Token returns the token currently stored in the adapter, or an empty
	// string if none has been set yet.
	Token() string

	// AuthMode reports how the adapter authenticates. Write policies consult
	// this to reject restricted operations before anything goes on the wire.
	AuthMode() models.AuthMode

	// Signon authenticates with username and password. On success the
	// returned session token is stored via SetToken and the adapter switches
	// to [models.AuthModeWeb].
	Signon(ctx context.Context, req models.SignonRequest) (models.SignonResponse, error)

	// Check fetches the state snapshot for the given checkpoint. Checkpoint 0
	// returns the full account state; any other value returns changes since
	// that checkpoint, with unchanged collections absent.
	Check(ctx context.Context, checkpoint int64) (*models.Snapshot, error)

	// BatchTask submits task adds, updates, and deletes in one request and
	// returns the per-record receipt.
	BatchTask(ctx context.Context, req models.BatchRequest) (models.BatchResponse, error)

	// BatchTag submits tag adds, updates, and deletes in one request.
	// Deletes are tag names, not ids.
	BatchTag(ctx context.Context, req models.BatchRequest) (models.BatchResponse, error)

	// BatchFilter submits filter adds, updates, and deletes in one request.
	BatchFilter(ctx context.Context, req models.BatchRequest) (models.BatchResponse, error)

	// CreateTask creates a single task through the per-resource endpoint and
	// returns the materialized record. The caller assigns the task id.
	CreateTask(ctx context.Context, t models.Task) (models.Task, error)

	// UpdateTask replaces a single task through the per-resource endpoint and
	// returns the materialized record. The task's ProjectID routes the
	// request, so moving a task is an update with a changed ProjectID.
	UpdateTask(ctx context.Context, t models.Task) (models.Task, error)

	// SetTaskParents re-parents tasks in bulk. Passing an empty ParentID
	// detaches a subtask.
	SetTaskParents(ctx context.Context, parents []models.TaskParent) (models.BatchResponse, error)

	// GetTask fetches a single task by id within its project.
	GetTask(ctx context.Context, taskID, projectID string) (models.Task, error)

	// GetCompletedTasks pages through completed tasks of one project, or of
	// all projects when projectID is empty. from and to bound the completion
	// time; zero values are omitted.
	GetCompletedTasks(ctx context.Context, projectID string, from, to models.Time, limit int) ([]models.Task, error)

	// GetCompletedInAll fetches completed tasks across every list through the
	// broader completedInAll query, which also covers lists excluded from the
	// default completed view.
	GetCompletedInAll(ctx context.Context, from, to models.Time, limit int) ([]models.Task, error)

	// GetCompletedByTags fetches completed tasks carrying any of the given
	// tag names. token is the pagination cursor from a previous call, empty
	// for the first page.
	GetCompletedByTags(ctx context.Context, tagNames []string, limit int, token string) ([]models.Task, error)

	// GetTrashedTasks fetches up to limit tasks currently in the trash.
	GetTrashedTasks(ctx context.Context, limit int) ([]models.Task, error)

	// GetProjectData fetches one project together with its open tasks and
	// kanban columns.
	GetProjectData(ctx context.Context, projectID string) (models.ProjectData, error)

	// CreateProject creates a project and returns the materialized record.
	CreateProject(ctx context.Context, p models.Project) (models.Project, error)

	// UpdateProject updates a project. The service may answer with an empty
	// body on success; the returned pointer is nil in that case and callers
	// are expected to refetch.
	UpdateProject(ctx context.Context, p models.Project) (*models.Project, error)

	// DeleteProject deletes a project and all tasks in it.
	DeleteProject(ctx context.Context, projectID string) error

	// CreateProjectGroup creates a project group (folder) and returns the
	// materialized record.
	CreateProjectGroup(ctx context.Context, g models.ProjectGroup) (models.ProjectGroup, error)

	// UpdateProjectGroup updates a project group and returns the materialized
	// record.
	UpdateProjectGroup(ctx context.Context, g models.ProjectGroup) (models.ProjectGroup, error)

	// DeleteProjectGroup deletes a project group. Projects inside it survive
	// and fall back to the top level.
	DeleteProjectGroup(ctx context.Context, groupID string) error

	// RenameTag renames a tag account-wide.
	RenameTag(ctx context.Context, rename models.TagRename) error

	// MergeTags folds the tag named rename.Name into rename.NewName: tasks
	// are retagged and the source tag is removed.
	MergeTags(ctx context.Context, rename models.TagRename) error

	// DeleteTag deletes a tag by exact name through the name-in-path
	// endpoint. Names containing the hierarchy separator must go through
	// BatchTag instead; the path form cannot carry them.
	DeleteTag(ctx context.Context, name string) error

	// GetColumns fetches kanban columns modified since the given timestamp,
	// 0 for all.
	GetColumns(ctx context.Context, since int64) ([]models.Column, error)

	// GetProjectColumns fetches the kanban columns of one project.
	GetProjectColumns(ctx context.Context, projectID string) ([]models.Column, error)

	// SaveColumn creates or updates a column; the service dispatches on the
	// id. The response is a receipt, not the column record.
	SaveColumn(ctx context.Context, c models.Column) (models.BatchResponse, error)

	// GetHabits fetches all habits.
	GetHabits(ctx context.Context) ([]models.Habit, error)

	// CreateHabit creates a habit and returns the materialized record.
	CreateHabit(ctx context.Context, h models.Habit) (models.Habit, error)

	// UpdateHabit updates a habit and returns the materialized record.
	UpdateHabit(ctx context.Context, h models.Habit) (models.Habit, error)

	// DeleteHabit permanently deletes a habit.
	DeleteHabit(ctx context.Context, habitID string) error

	// QueryHabitCheckins fetches check-in records for the queried habits.
	QueryHabitCheckins(ctx context.Context, q models.HabitCheckinQuery) (models.HabitCheckinResult, error)

	// Checkin records a single habit check-in and returns the materialized
	// record.
	Checkin(ctx context.Context, c models.HabitCheckin) (models.HabitCheckin, error)

	// BatchCheckin records check-ins for several habits at once.
	BatchCheckin(ctx context.Context, batch models.HabitCheckinBatch) error

	// GetUserProfile fetches the account profile.
	GetUserProfile(ctx context.Context) (models.UserProfile, error)

	// GetUserStatus fetches account status, including the inbox project id.
	GetUserStatus(ctx context.Context) (models.UserStatus, error)

	// GetUserSettings fetches account preferences.
	GetUserSettings(ctx context.Context) (models.UserSettings, error)

	// GetUserLimits fetches account quota limits.
	GetUserLimits(ctx context.Context) (models.UserLimits, error)

	// Search runs a server-side keyword search over tasks and tags.
	Search(ctx context.Context, keywords string) (models.SearchResults, error)
}

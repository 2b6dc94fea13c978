// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service contains the sync engine and the typed resource façades
// of the SDK.
//
// The engine is three small pieces: a [CheckpointStore] holding the last
// sync cursor, a [SyncService] deciding between full and delta
// synchronisation, and a [BatchService] coordinating add/update/delete
// submissions against the service's asymmetric write endpoints. Everything
// else in the package is a façade translating typed domain calls into
// engine operations.
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-tick-sdk/models"
)

// CheckpointStore holds the last-seen sync cursor. The value 0 is reserved:
// it means "start of time" and forces full-sync semantics downstream.
//
// The store itself is a dumb state holder; [SyncService] serialises the
// read-sync-store sequence around it.
type CheckpointStore interface {
	// Checkpoint returns the stored cursor, 0 when no sync has succeeded yet.
	Checkpoint() int64

	// SetCheckpoint overwrites the stored cursor.
	SetCheckpoint(checkpoint int64)

	// Reset sets the cursor back to 0, forcing the next sync to be full.
	Reset()
}

// SyncService is the reconciliation engine: it issues checkpoint syncs and
// owns the single rule that makes delta responses safe to consume — an
// absent collection in a delta snapshot means "unchanged", never "empty",
// and only a full sync may be trusted to answer "give me the complete list".
type SyncService interface {
	// FullSync fetches the complete account state (checkpoint 0) regardless
	// of the stored cursor, advances the checkpoint, and returns a snapshot
	// in which every collection is present, possibly empty. This is the only
	// call path that answers completeness questions.
	FullSync(ctx context.Context) (*models.Snapshot, error)

	// DeltaSync fetches changes since the stored checkpoint and advances it.
	// The returned snapshot makes no presence guarantees: collections the
	// server omitted stay absent and must be read as "no change".
	DeltaSync(ctx context.Context) (*models.Snapshot, error)

	// Resolve is the completeness guard. When requireComplete is true it
	// forces a FullSync so the named collection is guaranteed present;
	// otherwise it returns a DeltaSync result as-is, absent collections
	// included. Callers that need an authoritative list must pass true —
	// synthesizing an empty collection from an absent delta field is the
	// one mistake this engine exists to prevent.
	Resolve(ctx context.Context, key models.CollectionKey, requireComplete bool) (*models.Snapshot, error)

	// Checkpoint returns the engine's current cursor.
	Checkpoint() int64

	// ResetCheckpoint sets the cursor back to 0. The next DeltaSync then
	// behaves as a full sync at the wire level.
	ResetCheckpoint()
}

// BatchService is the write coordinator. One Submit call is one logical
// write: a single request per route, never split, with post-processing
// driven by the per-entity-type policy table (materialized response, empty
// body requiring a follow-up read, or locally rejected under a
// write-restricted auth mode).
type BatchService interface {
	// Submit sends the add/update/delete sets for one entity type and
	// reconciles the response shape. Tag-name fields are case-folded here,
	// so no call site can bypass the folding rule. Delete of an
	// already-deleted record is success, not an error.
	Submit(ctx context.Context, entity models.EntityType, req models.BatchRequest) (models.BatchResult, error)
}

// AuthService handles sign-on and the persisted session.
type AuthService interface {
	// Signon authenticates with username and password, persists the
	// resulting session, and leaves the adapter ready for authenticated
	// calls. The stored checkpoint starts at 0 so the first sync is full.
	Signon(ctx context.Context, username, password string) (models.Session, error)

	// RestoreSession loads the persisted session, applies its token to the
	// adapter, and seeds the checkpoint store. Returns
	// [store.ErrSessionNotFound] when no session has been saved.
	RestoreSession(ctx context.Context) (models.Session, error)

	// Logout clears the persisted session, the adapter token, and the
	// checkpoint.
	Logout(ctx context.Context) error
}

// TaskService is the task façade.
type TaskService interface {
	// Create validates and creates a task. An empty ProjectID defaults to
	// the account inbox; an empty ID is assigned client-side.
	Create(ctx context.Context, t models.Task) (models.Task, error)

	// Get fetches a single task by id within its project.
	Get(ctx context.Context, taskID, projectID string) (models.Task, error)

	// GetAll returns the complete list of open tasks. Backed by a full sync:
	// a delta response omitting the task collection would be
	// indistinguishable from an empty account.
	GetAll(ctx context.Context) ([]models.Task, error)

	// Query returns the open tasks matching q, filtered client-side over a
	// GetAll result.
	Query(ctx context.Context, q models.TaskQuery) ([]models.Task, error)

	// Update replaces the task and returns the materialized record.
	Update(ctx context.Context, t models.Task) (models.Task, error)

	// UpdateFields is a partial update: the non-zero fields of patch are
	// merged over the task's current server state in one
	// read-merge-write round trip.
	UpdateFields(ctx context.Context, taskID, projectID string, patch models.Task) (models.Task, error)

	// Complete marks the task done.
	Complete(ctx context.Context, taskID, projectID string) (models.Task, error)

	// Uncomplete reopens a completed task.
	Uncomplete(ctx context.Context, taskID, projectID string) (models.Task, error)

	// Delete removes the task through the batch endpoint. Deleting an
	// already-deleted task is a no-op success.
	Delete(ctx context.Context, taskID, projectID string) error

	// Move transfers the task to another project and returns the updated
	// record.
	Move(ctx context.Context, taskID, fromProjectID, toProjectID string) (models.Task, error)

	// SetParent makes the task a subtask of parentID.
	SetParent(ctx context.Context, taskID, projectID, parentID string) error

	// ClearParent detaches the task from its parent.
	ClearParent(ctx context.Context, taskID, projectID string) error

	// Completed pages through completed tasks of one project, or of all
	// projects when projectID is empty.
	Completed(ctx context.Context, projectID string, from, to models.Time, limit int) ([]models.Task, error)

	// CompletedInAll fetches completed tasks across every list, including
	// lists excluded from the default completed view.
	CompletedInAll(ctx context.Context, from, to models.Time, limit int) ([]models.Task, error)

	// Trash fetches up to limit tasks currently in the trash.
	Trash(ctx context.Context, limit int) ([]models.Task, error)

	// AddChecklistItem appends a checklist line to the task.
	AddChecklistItem(ctx context.Context, taskID, projectID, title string) (models.Task, error)

	// CompleteChecklistItem marks one checklist line done.
	CompleteChecklistItem(ctx context.Context, taskID, projectID, itemID string) (models.Task, error)

	// RemoveChecklistItem deletes one checklist line.
	RemoveChecklistItem(ctx context.Context, taskID, projectID, itemID string) (models.Task, error)
}

// ProjectService is the project and project-group façade.
type ProjectService interface {
	// GetAll returns the complete project list, backed by a full sync.
	GetAll(ctx context.Context) ([]models.Project, error)

	// Get returns one project by id, or [ErrProjectNotFound].
	Get(ctx context.Context, projectID string) (models.Project, error)

	// Data fetches the project together with its open tasks and columns.
	Data(ctx context.Context, projectID string) (models.ProjectData, error)

	// Create creates a project and returns the materialized record.
	Create(ctx context.Context, p models.Project) (models.Project, error)

	// Update updates a project. The service may answer the update with an
	// empty body; the coordinator then refetches, so the returned record is
	// always materialized.
	Update(ctx context.Context, p models.Project) (models.Project, error)

	// Rename changes only the project name.
	Rename(ctx context.Context, projectID, name string) (models.Project, error)

	// Archive closes the project; Unarchive reopens it.
	Archive(ctx context.Context, projectID string) (models.Project, error)
	Unarchive(ctx context.Context, projectID string) (models.Project, error)

	// Delete removes the project and every task in it. Idempotent.
	Delete(ctx context.Context, projectID string) error

	// Groups returns the complete folder list, backed by a full sync.
	Groups(ctx context.Context) ([]models.ProjectGroup, error)

	// CreateGroup creates a sidebar folder.
	CreateGroup(ctx context.Context, name string) (models.ProjectGroup, error)

	// RenameGroup changes a folder's name.
	RenameGroup(ctx context.Context, groupID, name string) (models.ProjectGroup, error)

	// DeleteGroup removes a folder; projects inside fall back to the top
	// level. Idempotent.
	DeleteGroup(ctx context.Context, groupID string) error

	// MoveToGroup puts the project into the folder; RemoveFromGroup takes
	// it back out.
	MoveToGroup(ctx context.Context, projectID, groupID string) (models.Project, error)
	RemoveFromGroup(ctx context.Context, projectID string) (models.Project, error)
}

// TagService is the tag façade. All names are case-folded on the way in;
// results always carry folded names.
type TagService interface {
	// GetAll returns the complete tag list, backed by a full sync.
	GetAll(ctx context.Context) ([]models.Tag, error)

	// Get returns one tag by (folded) name, or [ErrTagNotFound].
	Get(ctx context.Context, name string) (models.Tag, error)

	// Children returns the direct sub-tags of the named tag.
	Children(ctx context.Context, name string) ([]models.Tag, error)

	// Create creates a tag and returns the materialized record.
	Create(ctx context.Context, t models.Tag) (models.Tag, error)

	// CreateChild creates a sub-tag "parent/name" under the named parent.
	CreateChild(ctx context.Context, parent, name string) (models.Tag, error)

	// Update updates a tag's display attributes (color, sort order).
	Update(ctx context.Context, t models.Tag) (models.Tag, error)

	// Rename renames the tag account-wide. Renaming onto an existing tag
	// name is refused by the server and surfaced unchanged.
	Rename(ctx context.Context, name, newName string) (models.Tag, error)

	// Merge folds the source tag into target: tasks are retagged and the
	// source tag disappears.
	Merge(ctx context.Context, source, target string) error

	// Delete removes the tag. Hierarchical names route through the batch
	// endpoint because the name-in-path form cannot carry the separator.
	// Deleting a missing tag is a no-op success.
	Delete(ctx context.Context, name string) error

	// CompletedTasks fetches completed tasks carrying any of the names.
	CompletedTasks(ctx context.Context, names []string, limit int) ([]models.Task, error)
}

// FilterService is the saved-filter façade.
type FilterService interface {
	// GetAll returns the complete filter list, backed by a full sync.
	GetAll(ctx context.Context) ([]models.Filter, error)

	// Get returns one filter by id, or [ErrFilterNotFound].
	Get(ctx context.Context, filterID string) (models.Filter, error)

	// Create builds a filter from the typed rule, submits it, and returns
	// the materialized record (the batch endpoint answers with a receipt,
	// so creation refetches).
	Create(ctx context.Context, name string, rule models.FilterRule) (models.Filter, error)

	// Update replaces the filter and returns the refetched record.
	Update(ctx context.Context, f models.Filter) (models.Filter, error)

	// Delete removes the filter. Idempotent.
	Delete(ctx context.Context, filterID string) error
}

// HabitService is the habit façade. All habit writes are policy-restricted
// under API-token sessions; check-ins are allowed under both auth modes.
type HabitService interface {
	GetAll(ctx context.Context) ([]models.Habit, error)
	Active(ctx context.Context) ([]models.Habit, error)
	Archived(ctx context.Context) ([]models.Habit, error)

	// Get returns one habit by id, or [ErrHabitNotFound].
	Get(ctx context.Context, habitID string) (models.Habit, error)

	Create(ctx context.Context, h models.Habit) (models.Habit, error)
	Update(ctx context.Context, h models.Habit) (models.Habit, error)
	Archive(ctx context.Context, habitID string) (models.Habit, error)
	Unarchive(ctx context.Context, habitID string) (models.Habit, error)
	Delete(ctx context.Context, habitID string) error

	// CheckinsSince fetches check-ins per habit recorded on or after the
	// given day. A zero time returns the full history.
	CheckinsSince(ctx context.Context, habitIDs []string, since models.Time) (map[string][]models.HabitCheckin, error)

	// Checkin records today's (or the stamped day's) check-in for a habit.
	Checkin(ctx context.Context, c models.HabitCheckin) (models.HabitCheckin, error)

	// BatchCheckin records check-ins for several habits in one call.
	BatchCheckin(ctx context.Context, checkins []models.HabitCheckin) error
}

// ColumnService is the kanban-column façade. The service exposes no column
// delete; Delete-shaped calls return [ErrColumnDeleteUnsupported].
type ColumnService interface {
	// ByProject returns the columns of one project.
	ByProject(ctx context.Context, projectID string) ([]models.Column, error)

	// Create adds a column to the project and returns the materialized
	// record (the save endpoint answers with a receipt, so creation
	// refetches through the project's column list).
	Create(ctx context.Context, projectID, name string) (models.Column, error)

	// Update replaces the column and returns the refetched record.
	Update(ctx context.Context, c models.Column) (models.Column, error)

	// Rename changes only the column name.
	Rename(ctx context.Context, projectID, columnID, name string) (models.Column, error)

	// Move changes the column's sort position within its project.
	Move(ctx context.Context, projectID, columnID string, sortOrder int64) (models.Column, error)
}

// SearchService runs server-side keyword searches.
type SearchService interface {
	// All searches tasks and tags.
	All(ctx context.Context, keywords string) (models.SearchResults, error)

	// Tasks searches tasks only.
	Tasks(ctx context.Context, keywords string) ([]models.Task, error)
}

// UserService reads account information.
type UserService interface {
	Profile(ctx context.Context) (models.UserProfile, error)
	Status(ctx context.Context) (models.UserStatus, error)
	Settings(ctx context.Context) (models.UserSettings, error)
	Limits(ctx context.Context) (models.UserLimits, error)
}

// SyncJob is an optional background worker that keeps the checkpoint warm
// by running periodic delta syncs. It is a consumer of the engine, not part
// of it: sync failures are logged and retried on the next tick.
type SyncJob interface {
	// Start launches the background goroutine, stopping any previous run
	// first. A non-positive interval falls back to the configured default.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the goroutine to exit and blocks until it has.
	Stop()

	// Run starts the job with the configured default interval. It satisfies
	// the background worker contract of the workers package.
	Run()
}

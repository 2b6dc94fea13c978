// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-tick-sdk/internal/adapter"
	"github.com/MKhiriev/go-tick-sdk/internal/config"
	"github.com/MKhiriev/go-tick-sdk/internal/logger"
	"github.com/MKhiriev/go-tick-sdk/internal/store"
)

// Services aggregates every façade of the SDK over one shared engine.
type Services struct {
	Auth     AuthService
	Sync     SyncService
	Batch    BatchService
	Tasks    TaskService
	Projects ProjectService
	Tags     TagService
	Filters  FilterService
	Habits   HabitService
	Columns  ColumnService
	Search   SearchService
	User     UserService
	SyncJob  SyncJob
}

// NewServices wires the engine and all façades over the given transport and
// session store. Every façade shares one checkpoint store, one sync engine,
// and one write coordinator, so checkpoint and policy decisions are made in
// exactly one place.
func NewServices(serverAdapter adapter.ServerAdapter, sessions store.SessionRepository, cfg *config.StructuredConfig, log *logger.Logger) *Services {
	checkpoints := NewCheckpointStore(0)
	syncSvc := NewSyncService(serverAdapter, checkpoints, sessions, log)
	batchSvc := NewBatchService(serverAdapter, log)

	return &Services{
		Auth:     NewAuthService(serverAdapter, sessions, checkpoints, log),
		Sync:     syncSvc,
		Batch:    batchSvc,
		Tasks:    NewTaskService(serverAdapter, syncSvc, batchSvc, sessions, log),
		Projects: NewProjectService(serverAdapter, syncSvc, batchSvc, log),
		Tags:     NewTagService(serverAdapter, syncSvc, batchSvc, log),
		Filters:  NewFilterService(serverAdapter, syncSvc, batchSvc, log),
		Habits:   NewHabitService(serverAdapter, batchSvc, log),
		Columns:  NewColumnService(serverAdapter, batchSvc, log),
		Search:   NewSearchService(serverAdapter, log),
		User:     NewUserService(serverAdapter, log),
		SyncJob:  NewSyncJob(syncSvc, cfg.Workers.SyncInterval, log),
	}
}

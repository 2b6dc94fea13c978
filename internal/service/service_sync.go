// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-tick-sdk/internal/adapter"
	"github.com/MKhiriev/go-tick-sdk/internal/logger"
	"github.com/MKhiriev/go-tick-sdk/internal/store"
	"github.com/MKhiriev/go-tick-sdk/internal/utils"
	"github.com/MKhiriev/go-tick-sdk/models"
)

type syncService struct {
	adapter     adapter.ServerAdapter
	checkpoints CheckpointStore
	sessions    store.SessionRepository
	ids         *utils.UUIDGenerator
	logger      *logger.Logger

	// mu serialises the checkpoint read-sync-store sequence. Two concurrent
	// delta syncs from the same cursor would both advance the checkpoint
	// with the last writer winning, which breaks the "last successful sync"
	// invariant.
	mu sync.Mutex
}

// NewSyncService builds the reconciliation engine around the given
// transport and checkpoint store. sessions may be nil; when set, every
// advanced checkpoint is also written through to the persisted session so
// the next process start resumes with delta syncs.
func NewSyncService(serverAdapter adapter.ServerAdapter, checkpoints CheckpointStore, sessions store.SessionRepository, log *logger.Logger) SyncService {
	return &syncService{
		adapter:     serverAdapter,
		checkpoints: checkpoints,
		sessions:    sessions,
		ids:         utils.NewUUIDGenerator(),
		logger:      log,
	}
}

// FullSync implements [SyncService]. It always asks for checkpoint 0, so
// the response is the complete account state; absent collections in a full
// response carry no information and are normalised to present-and-empty.
func (s *syncService) FullSync(ctx context.Context) (*models.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx = utils.WithTraceID(ctx, s.ids.Generate())

	snap, err := s.adapter.Check(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("full sync: %w", err)
	}

	snap.FillAbsent()
	s.advance(ctx, snap.Checkpoint)

	s.log(ctx).Debug().
		Int64("checkpoint", snap.Checkpoint).
		Int("projects", snap.Projects.Len()).
		Int("tags", snap.Tags.Len()).
		Int("filters", snap.Filters.Len()).
		Msg("full sync complete")

	return snap, nil
}

// DeltaSync implements [SyncService]. The snapshot is returned exactly as
// the server shaped it: collections omitted from the response stay absent,
// and no normalisation happens here. A failed or malformed sync leaves the
// stored checkpoint untouched.
func (s *syncService) DeltaSync(ctx context.Context) (*models.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx = utils.WithTraceID(ctx, s.ids.Generate())
	since := s.checkpoints.Checkpoint()

	snap, err := s.adapter.Check(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("delta sync from %d: %w", since, err)
	}

	s.advance(ctx, snap.Checkpoint)

	s.log(ctx).Debug().
		Int64("since", since).
		Int64("checkpoint", snap.Checkpoint).
		Msg("delta sync complete")

	return snap, nil
}

// Resolve implements [SyncService].
func (s *syncService) Resolve(ctx context.Context, key models.CollectionKey, requireComplete bool) (*models.Snapshot, error) {
	if requireComplete {
		snap, err := s.FullSync(ctx)
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", key, err)
		}
		return snap, nil
	}

	snap, err := s.DeltaSync(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", key, err)
	}
	return snap, nil
}

// Checkpoint implements [SyncService].
func (s *syncService) Checkpoint() int64 {
	return s.checkpoints.Checkpoint()
}

// ResetCheckpoint implements [SyncService].
func (s *syncService) ResetCheckpoint() {
	s.checkpoints.Reset()
}

// advance stores the new checkpoint and writes it through to the persisted
// session. Persistence is best-effort: a session write failure costs a
// redundant delta after the next restart, not correctness.
func (s *syncService) advance(ctx context.Context, checkpoint int64) {
	s.checkpoints.SetCheckpoint(checkpoint)

	if s.sessions == nil {
		return
	}
	if err := s.sessions.UpdateCheckpoint(ctx, checkpoint); err != nil && !errors.Is(err, store.ErrSessionNotFound) {
		s.log(ctx).Warn().Err(err).Int64("checkpoint", checkpoint).Msg("failed to persist checkpoint")
	}
}

func (s *syncService) log(ctx context.Context) *logger.Logger {
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		child := s.logger.GetChildLogger()
		child.Logger = child.With().Str("trace", traceID).Logger()
		return child
	}
	return s.logger
}

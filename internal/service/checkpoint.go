// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "sync"

// checkpointStore is the in-memory [CheckpointStore]. One instance belongs
// to one client session; the value survives process restarts only through
// the persisted session, which seeds the initial value here.
type checkpointStore struct {
	mu    sync.RWMutex
	value int64
}

// NewCheckpointStore builds a [CheckpointStore] starting at initial.
// Pass 0 for a fresh session so the first sync is full.
func NewCheckpointStore(initial int64) CheckpointStore {
	return &checkpointStore{value: initial}
}

func (s *checkpointStore) Checkpoint() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

func (s *checkpointStore) SetCheckpoint(checkpoint int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = checkpoint
}

func (s *checkpointStore) Reset() {
	s.SetCheckpoint(0)
}

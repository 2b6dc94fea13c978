// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-tick-sdk/internal/logger"
)

// defaultSyncInterval applies when Start is called with a non-positive
// interval and no configured default.
const defaultSyncInterval = 5 * time.Minute

type syncJob struct {
	sync            SyncService
	defaultInterval time.Duration
	logger          *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSyncJob creates a background job that calls DeltaSync on a ticker.
// The job is idle until Start is called; defaultInterval is used when
// Start receives a non-positive interval.
func NewSyncJob(syncSvc SyncService, defaultInterval time.Duration, log *logger.Logger) SyncJob {
	if defaultInterval <= 0 {
		defaultInterval = defaultSyncInterval
	}
	return &syncJob{sync: syncSvc, defaultInterval: defaultInterval, logger: log}
}

// Start implements [SyncJob]. It stops any previously running job, then
// launches a goroutine that runs DeltaSync every interval. The goroutine
// exits when ctx is cancelled or Stop is called. Sync failures are logged
// and retried on the next tick; the checkpoint only advances on success,
// so a failed tick loses nothing.
func (j *syncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = j.defaultInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if _, err := j.sync.DeltaSync(jobCtx); err != nil {
					j.logger.Warn().Err(err).Msg("background delta sync failed")
				}
			}
		}
	}()
}

// Run implements [SyncJob] and the workers package's Worker contract.
func (j *syncJob) Run() {
	j.Start(context.Background(), j.defaultInterval)
}

// Stop implements [SyncJob]. It cancels the background goroutine's context
// and blocks until the goroutine has exited. Safe to call when the job is
// not running.
func (j *syncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

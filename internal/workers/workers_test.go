// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// recordingWorker appends its id to a shared log on every Run call.
type recordingWorker struct {
	id  int
	log *[]int
}

func (r *recordingWorker) Run() { *r.log = append(*r.log, r.id) }

func TestWorkers_Run_StartsInRegistrationOrder(t *testing.T) {
	var log []int

	ws := NewWorkers(
		&recordingWorker{id: 1, log: &log},
		&recordingWorker{id: 2, log: &log},
		&recordingWorker{id: 3, log: &log},
	)
	ws.Run()

	assert.Equal(t, []int{1, 2, 3}, log)
}

func TestWorkers_Run_RepeatedRunsStartWorkersAgain(t *testing.T) {
	var log []int
	ws := NewWorkers(&recordingWorker{id: 7, log: &log})

	ws.Run()
	ws.Run()

	assert.Equal(t, []int{7, 7}, log)
}

func TestWorkers_Run_EmptyAndNilAreSafe(t *testing.T) {
	NewWorkers().Run()
	(&Workers{}).Run()
}

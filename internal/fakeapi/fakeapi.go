// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package fakeapi is an in-process stand-in for the task service, used by
// integration tests to exercise the real HTTP adapter and the service layer
// end to end. It keeps all state in memory and reproduces the protocol
// quirks the SDK has to handle: the checkpoint-delta check endpoint that
// omits unchanged collections, receipt-only batch responses, the empty-body
// project update, and the 405 answered to tag, filter, and habit writes on
// API-token sessions.
package fakeapi

import (
	"fmt"
	"sort"
	"sync"

	"github.com/MKhiriev/go-tick-sdk/internal/logger"
	"github.com/MKhiriev/go-tick-sdk/models"
)

// Config carries the account the fake accepts credentials for.
type Config struct {
	Username string
	Password string

	// APIToken, when non-empty, is accepted as a bearer token and marks the
	// request as an Open API session with the reduced write surface.
	APIToken string

	// InboxID is the account's inbox project id. Defaults to "inbox1".
	InboxID string

	// SignKey signs the session JWT issued on signon.
	SignKey string
}

// Server holds the fake's state. All handlers lock s.mu; there is no
// finer-grained locking because test traffic is tiny.
type Server struct {
	cfg    Config
	logger *logger.Logger

	mu       sync.Mutex
	webToken string

	checkpoint int64
	changed    map[models.CollectionKey]int64
	etagSeq    int64

	tasks     map[string]models.Task
	completed []models.Task
	trashed   []models.Task
	projects  map[string]models.Project
	groups    map[string]models.ProjectGroup
	tags      map[string]models.Tag // keyed by folded name
	filters   map[string]models.Filter
	columns   map[string]models.Column
	habits    map[string]models.Habit
	checkins  map[string][]models.HabitCheckin
}

// NewServer builds an empty fake for the given account.
func NewServer(cfg Config, log *logger.Logger) *Server {
	if cfg.InboxID == "" {
		cfg.InboxID = "inbox1"
	}
	if cfg.SignKey == "" {
		cfg.SignKey = "fakeapi-sign-key"
	}
	return &Server{
		cfg:      cfg,
		logger:   log,
		changed:  make(map[models.CollectionKey]int64),
		tasks:    make(map[string]models.Task),
		projects: make(map[string]models.Project),
		groups:   make(map[string]models.ProjectGroup),
		tags:     make(map[string]models.Tag),
		filters:  make(map[string]models.Filter),
		columns:  make(map[string]models.Column),
		habits:   make(map[string]models.Habit),
		checkins: make(map[string][]models.HabitCheckin),
	}
}

// Checkpoint returns the current change counter.
func (s *Server) Checkpoint() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.checkpoint
}

// SeedProject installs a project without advancing the checkpoint, for test
// fixtures that want pre-existing state.
func (s *Server) SeedProject(p models.Project) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.Etag == "" {
		p.Etag = s.nextEtag()
	}
	s.projects[p.ID] = p
	s.changed[models.CollectionProjects] = s.checkpoint
}

// SeedTask installs a task without advancing the checkpoint.
func (s *Server) SeedTask(t models.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t.Etag == "" {
		t.Etag = s.nextEtag()
	}
	s.tasks[t.ID] = t
	s.changed[models.CollectionTasks] = s.checkpoint
}

// bump advances the checkpoint and records the given collections as changed
// at the new value. Callers hold s.mu.
func (s *Server) bump(keys ...models.CollectionKey) {
	s.checkpoint++
	for _, k := range keys {
		s.changed[k] = s.checkpoint
	}
}

// nextEtag returns a fresh 8-char version tag. Callers hold s.mu.
func (s *Server) nextEtag() string {
	s.etagSeq++
	return fmt.Sprintf("%08x", s.etagSeq)
}

// ── sorted state views ──────────────────────────────────────────────────────
//
// Map iteration order would make responses flap between calls; every list
// leaving the fake is sorted so tests see stable output. Callers hold s.mu.

func (s *Server) taskList() []models.Task {
	out := make([]models.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Server) projectList() []models.Project {
	out := make([]models.Project, 0, len(s.projects))
	for _, p := range s.projects {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Server) groupList() []models.ProjectGroup {
	out := make([]models.ProjectGroup, 0, len(s.groups))
	for _, g := range s.groups {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Server) tagList() []models.Tag {
	out := make([]models.Tag, 0, len(s.tags))
	for _, t := range s.tags {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (s *Server) filterList() []models.Filter {
	out := make([]models.Filter, 0, len(s.filters))
	for _, f := range s.filters {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Server) habitList() []models.Habit {
	out := make([]models.Habit, 0, len(s.habits))
	for _, h := range s.habits {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Server) columnsOf(projectID string) []models.Column {
	var out []models.Column
	for _, c := range s.columns {
		if c.ProjectID == projectID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Server) openTasksOf(projectID string) []models.Task {
	var out []models.Task
	for _, t := range s.tasks {
		if t.ProjectID == projectID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fakeapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-tick-sdk/internal/utils"
	"github.com/MKhiriev/go-tick-sdk/models"
	"github.com/go-chi/chi/v5"
)

func (s *Server) createTask(w http.ResponseWriter, r *http.Request) {
	var t models.Task
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	if t.ID == "" {
		t.ID = utils.ObjectID()
	}
	if t.ProjectID == "" {
		t.ProjectID = s.cfg.InboxID
	}
	t.Etag = s.nextEtag()
	s.storeTask(t)
	s.bump(models.CollectionTasks)
	s.mu.Unlock()

	utils.WriteJSON(w, t, http.StatusOK)
}

func (s *Server) updateTask(w http.ResponseWriter, r *http.Request) {
	taskID := chi.URLParam(r, "taskID")

	var t models.Task
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	t.ID = taskID

	s.mu.Lock()
	if _, ok := s.tasks[taskID]; !ok {
		s.mu.Unlock()
		http.Error(w, "task_not_found", http.StatusNotFound)
		return
	}
	t.Etag = s.nextEtag()
	s.storeTask(t)
	s.bump(models.CollectionTasks)
	s.mu.Unlock()

	utils.WriteJSON(w, t, http.StatusOK)
}

func (s *Server) getTask(w http.ResponseWriter, r *http.Request) {
	taskID := chi.URLParam(r, "taskID")

	s.mu.Lock()
	t, ok := s.tasks[taskID]
	s.mu.Unlock()
	if !ok {
		http.Error(w, "task_not_found", http.StatusNotFound)
		return
	}

	utils.WriteJSON(w, t, http.StatusOK)
}

// completedTasks serves all three completed views. The per-project route
// filters by the path's project id; the all and completedInAll routes do
// not.
func (s *Server) completedTasks(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "projectID")
	limit := queryLimit(r, 50)

	s.mu.Lock()
	out := make([]models.Task, 0, len(s.completed))
	for _, t := range s.completed {
		if projectID != "" && t.ProjectID != projectID {
			continue
		}
		out = append(out, t)
		if len(out) == limit {
			break
		}
	}
	s.mu.Unlock()

	utils.WriteJSON(w, out, http.StatusOK)
}

// trashedTasks answers with the wrapped {"tasks": [...]} page shape, the
// variant the endpoint currently uses.
func (s *Server) trashedTasks(w http.ResponseWriter, r *http.Request) {
	limit := queryLimit(r, 50)

	s.mu.Lock()
	out := s.trashed
	if len(out) > limit {
		out = out[:limit]
	}
	page := struct {
		Tasks []models.Task `json:"tasks"`
	}{Tasks: append([]models.Task{}, out...)}
	s.mu.Unlock()

	utils.WriteJSON(w, page, http.StatusOK)
}

func queryLimit(r *http.Request, fallback int) int {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		return fallback
	}
	return limit
}

// ── projects ────────────────────────────────────────────────────────────────

func (s *Server) projectData(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "projectID")

	s.mu.Lock()
	p, ok := s.projects[projectID]
	if !ok {
		s.mu.Unlock()
		http.Error(w, "project_not_found", http.StatusNotFound)
		return
	}
	data := models.ProjectData{
		Project: p,
		Tasks:   s.openTasksOf(projectID),
		Columns: s.columnsOf(projectID),
	}
	s.mu.Unlock()

	utils.WriteJSON(w, data, http.StatusOK)
}

func (s *Server) createProject(w http.ResponseWriter, r *http.Request) {
	var p models.Project
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	if p.ID == "" {
		p.ID = utils.ObjectID()
	}
	p.IsOwner = true
	p.Etag = s.nextEtag()
	s.projects[p.ID] = p
	s.bump(models.CollectionProjects)
	s.mu.Unlock()

	utils.WriteJSON(w, p, http.StatusOK)
}

// updateProject stores the update but answers 200 with an empty body, which
// is what the real endpoint does and what forces clients into a follow-up
// read.
func (s *Server) updateProject(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "projectID")

	var p models.Project
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	p.ID = projectID

	s.mu.Lock()
	if _, ok := s.projects[projectID]; !ok {
		s.mu.Unlock()
		http.Error(w, "project_not_found", http.StatusNotFound)
		return
	}
	p.Etag = s.nextEtag()
	s.projects[projectID] = p
	s.bump(models.CollectionProjects)
	s.mu.Unlock()

	w.WriteHeader(http.StatusOK)
}

func (s *Server) deleteProject(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "projectID")

	s.mu.Lock()
	if _, ok := s.projects[projectID]; !ok {
		s.mu.Unlock()
		http.Error(w, "project_not_found", http.StatusNotFound)
		return
	}
	delete(s.projects, projectID)
	for id, t := range s.tasks {
		if t.ProjectID == projectID {
			delete(s.tasks, id)
			t.Deleted = 1
			s.trashed = append(s.trashed, t)
		}
	}
	s.bump(models.CollectionProjects, models.CollectionTasks)
	s.mu.Unlock()

	w.WriteHeader(http.StatusOK)
}

// ── project groups ──────────────────────────────────────────────────────────

func (s *Server) createProjectGroup(w http.ResponseWriter, r *http.Request) {
	var g models.ProjectGroup
	if err := json.NewDecoder(r.Body).Decode(&g); err != nil {
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	if g.ID == "" {
		g.ID = utils.ObjectID()
	}
	g.Etag = s.nextEtag()
	s.groups[g.ID] = g
	s.bump(models.CollectionGroups)
	s.mu.Unlock()

	utils.WriteJSON(w, g, http.StatusOK)
}

func (s *Server) updateProjectGroup(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "groupID")

	var g models.ProjectGroup
	if err := json.NewDecoder(r.Body).Decode(&g); err != nil {
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	g.ID = groupID

	s.mu.Lock()
	if _, ok := s.groups[groupID]; !ok {
		s.mu.Unlock()
		http.Error(w, "group_not_found", http.StatusNotFound)
		return
	}
	g.Etag = s.nextEtag()
	s.groups[groupID] = g
	s.bump(models.CollectionGroups)
	s.mu.Unlock()

	utils.WriteJSON(w, g, http.StatusOK)
}

func (s *Server) deleteProjectGroup(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "groupID")

	s.mu.Lock()
	if _, ok := s.groups[groupID]; !ok {
		s.mu.Unlock()
		http.Error(w, "group_not_found", http.StatusNotFound)
		return
	}
	delete(s.groups, groupID)
	// Projects of a deleted folder fall back to the top level.
	for id, p := range s.projects {
		if p.GroupID != nil && *p.GroupID == groupID {
			p.GroupID = nil
			s.projects[id] = p
		}
	}
	s.bump(models.CollectionGroups, models.CollectionProjects)
	s.mu.Unlock()

	w.WriteHeader(http.StatusOK)
}

// ── columns ─────────────────────────────────────────────────────────────────

func (s *Server) allColumns(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	out := make([]models.Column, 0, len(s.columns))
	for _, c := range s.columns {
		out = append(out, c)
	}
	s.mu.Unlock()

	utils.WriteJSON(w, out, http.StatusOK)
}

func (s *Server) projectColumns(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "projectID")

	s.mu.Lock()
	out := s.columnsOf(projectID)
	s.mu.Unlock()

	if out == nil {
		out = []models.Column{}
	}
	utils.WriteJSON(w, out, http.StatusOK)
}

// saveColumn answers with a receipt only; the materialized record is read
// back through the column list.
func (s *Server) saveColumn(w http.ResponseWriter, r *http.Request) {
	var c models.Column
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	if c.ID == "" || c.ProjectID == "" {
		http.Error(w, "column id and projectId are required", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	c.Etag = s.nextEtag()
	s.columns[c.ID] = c
	resp := models.BatchResponse{
		ID2Etag:  map[string]string{c.ID: c.Etag},
		ID2Error: map[string]string{},
	}
	s.mu.Unlock()

	utils.WriteJSON(w, resp, http.StatusOK)
}

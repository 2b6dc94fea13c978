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

// check answers the sync probe. Checkpoint 0 is a full sync and carries
// every collection; any other value is a delta and carries only the
// collections changed after it. Omission is the whole point: an absent
// collection means "unchanged", and clients must not read it as empty.
func (s *Server) check(w http.ResponseWriter, r *http.Request) {
	checkpoint, err := strconv.ParseInt(chi.URLParam(r, "checkpoint"), 10, 64)
	if err != nil || checkpoint < 0 {
		http.Error(w, "invalid checkpoint", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	full := checkpoint == 0
	snap := models.Snapshot{
		Checkpoint: s.checkpoint,
		InboxID:    s.cfg.InboxID,
	}

	if full || s.changed[models.CollectionTasks] > checkpoint {
		tasks := s.taskList()
		snap.Tasks = &models.TaskSet{Update: tasks, Empty: len(tasks) == 0}
	}
	if full || s.changed[models.CollectionProjects] > checkpoint {
		snap.Projects = models.NewCollection(s.projectList()...)
	}
	if full || s.changed[models.CollectionGroups] > checkpoint {
		snap.Groups = models.NewCollection(s.groupList()...)
	}
	if full || s.changed[models.CollectionTags] > checkpoint {
		snap.Tags = models.NewCollection(s.tagList()...)
	}
	if full || s.changed[models.CollectionFilters] > checkpoint {
		snap.Filters = models.NewCollection(s.filterList()...)
	}
	if full {
		snap.TaskOrder = &models.TaskOrder{}
		snap.RemindChanges = models.NewCollection[models.RemindChange]()
	}

	utils.WriteJSON(w, snap, http.StatusOK)
}

func (s *Server) batchTask(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Add    []models.Task    `json:"add"`
		Update []models.Task    `json:"update"`
		Delete []models.TaskKey `json:"delete"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	resp := models.BatchResponse{
		ID2Etag:  map[string]string{},
		ID2Error: map[string]string{},
	}

	for _, t := range req.Add {
		if t.ID == "" {
			t.ID = utils.ObjectID()
		}
		t.Etag = s.nextEtag()
		s.storeTask(t)
		resp.ID2Etag[t.ID] = t.Etag
	}

	for _, t := range req.Update {
		if _, ok := s.tasks[t.ID]; !ok {
			resp.ID2Error[t.ID] = "NOT_EXISTED"
			continue
		}
		t.Etag = s.nextEtag()
		s.storeTask(t)
		resp.ID2Etag[t.ID] = t.Etag
	}

	for _, key := range req.Delete {
		t, ok := s.tasks[key.TaskID]
		if !ok {
			resp.ID2Error[key.TaskID] = "NOT_EXISTED"
			continue
		}
		delete(s.tasks, key.TaskID)
		t.Deleted = 1
		s.trashed = append(s.trashed, t)
		resp.ID2Etag[key.TaskID] = s.nextEtag()
	}

	s.bump(models.CollectionTasks)
	utils.WriteJSON(w, resp, http.StatusOK)
}

// storeTask files the task by status: completed tasks leave the live set
// and show up on the completed endpoints instead. Callers hold s.mu.
func (s *Server) storeTask(t models.Task) {
	if t.Completed() {
		delete(s.tasks, t.ID)
		s.completed = append(s.completed, t)
		return
	}
	s.tasks[t.ID] = t
}

func (s *Server) batchTaskParent(w http.ResponseWriter, r *http.Request) {
	var parents []models.TaskParent
	if err := json.NewDecoder(r.Body).Decode(&parents); err != nil {
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	resp := models.BatchResponse{
		ID2Etag:  map[string]string{},
		ID2Error: map[string]string{},
	}
	for _, p := range parents {
		t, ok := s.tasks[p.TaskID]
		if !ok {
			resp.ID2Error[p.TaskID] = "NOT_EXISTED"
			continue
		}
		t.ParentID = p.ParentID
		t.Etag = s.nextEtag()
		s.tasks[t.ID] = t
		resp.ID2Etag[t.ID] = t.Etag
	}

	s.bump(models.CollectionTasks)
	utils.WriteJSON(w, resp, http.StatusOK)
}

// batchTag rejects unfolded names instead of folding them itself: case
// folding is the client's job, and a fake that quietly fixed it would hide
// exactly the bug the tests are after.
func (s *Server) batchTag(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Add    []models.Tag `json:"add"`
		Update []models.Tag `json:"update"`
		Delete []string     `json:"delete"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	resp := models.BatchResponse{
		ID2Etag:  map[string]string{},
		ID2Error: map[string]string{},
	}

	for _, tag := range append(append([]models.Tag{}, req.Add...), req.Update...) {
		if tag.Name != models.FoldTagName(tag.Name) {
			resp.ID2Error[tag.Name] = "NOT_FOLDED"
			continue
		}
		if tag.Label == "" {
			tag.Label = tag.Name
		}
		tag.Etag = s.nextEtag()
		s.tags[tag.Name] = tag
		resp.ID2Etag[tag.Name] = tag.Etag
	}

	for _, name := range req.Delete {
		if _, ok := s.tags[name]; !ok {
			resp.ID2Error[name] = "NOT_EXISTED"
			continue
		}
		delete(s.tags, name)
		s.removeTagFromTasks(name)
		resp.ID2Etag[name] = s.nextEtag()
	}

	s.bump(models.CollectionTags, models.CollectionTasks)
	utils.WriteJSON(w, resp, http.StatusOK)
}

func (s *Server) batchFilter(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Add    []models.Filter `json:"add"`
		Update []models.Filter `json:"update"`
		Delete []string        `json:"delete"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	resp := models.BatchResponse{
		ID2Etag:  map[string]string{},
		ID2Error: map[string]string{},
	}

	for _, f := range append(append([]models.Filter{}, req.Add...), req.Update...) {
		if f.ID == "" {
			f.ID = utils.ObjectID()
		}
		f.Etag = s.nextEtag()
		s.filters[f.ID] = f
		resp.ID2Etag[f.ID] = f.Etag
	}

	for _, id := range req.Delete {
		if _, ok := s.filters[id]; !ok {
			resp.ID2Error[id] = "NOT_EXISTED"
			continue
		}
		delete(s.filters, id)
		resp.ID2Etag[id] = s.nextEtag()
	}

	s.bump(models.CollectionFilters)
	utils.WriteJSON(w, resp, http.StatusOK)
}

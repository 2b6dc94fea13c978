// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fakeapi

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-tick-sdk/internal/utils"
	"github.com/MKhiriev/go-tick-sdk/models"
	"github.com/go-chi/chi/v5"
)

func (s *Server) renameTag(w http.ResponseWriter, r *http.Request) {
	var rename models.TagRename
	if err := json.NewDecoder(r.Body).Decode(&rename); err != nil {
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	tag, ok := s.tags[rename.Name]
	if !ok {
		s.mu.Unlock()
		http.Error(w, "tag_not_found", http.StatusNotFound)
		return
	}

	delete(s.tags, rename.Name)
	tag.Name = rename.NewName
	tag.Label = rename.NewName
	tag.Etag = s.nextEtag()
	s.tags[rename.NewName] = tag
	s.retagTasks(rename.Name, rename.NewName)
	s.bump(models.CollectionTags, models.CollectionTasks)
	s.mu.Unlock()

	w.WriteHeader(http.StatusOK)
}

// mergeTags folds the source tag into the target: tasks move over, the
// source tag record is gone afterwards.
func (s *Server) mergeTags(w http.ResponseWriter, r *http.Request) {
	var merge models.TagRename
	if err := json.NewDecoder(r.Body).Decode(&merge); err != nil {
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	if _, ok := s.tags[merge.Name]; !ok {
		s.mu.Unlock()
		http.Error(w, "tag_not_found", http.StatusNotFound)
		return
	}
	if _, ok := s.tags[merge.NewName]; !ok {
		s.mu.Unlock()
		http.Error(w, "tag_not_found", http.StatusNotFound)
		return
	}

	delete(s.tags, merge.Name)
	s.retagTasks(merge.Name, merge.NewName)
	s.bump(models.CollectionTags, models.CollectionTasks)
	s.mu.Unlock()

	w.WriteHeader(http.StatusOK)
}

// deleteTag serves the name-in-path delete. Hierarchical names never reach
// it: their separator breaks the path, which is why clients route them
// through the batch endpoint.
func (s *Server) deleteTag(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	s.mu.Lock()
	if _, ok := s.tags[name]; !ok {
		s.mu.Unlock()
		http.Error(w, "tag_not_found", http.StatusNotFound)
		return
	}
	delete(s.tags, name)
	s.removeTagFromTasks(name)
	s.bump(models.CollectionTags, models.CollectionTasks)
	s.mu.Unlock()

	w.WriteHeader(http.StatusOK)
}

func (s *Server) completedByTags(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Tags  []string `json:"tags"`
		Limit int      `json:"limit"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	wanted := make(map[string]bool, len(req.Tags))
	for _, name := range req.Tags {
		wanted[models.FoldTagName(name)] = true
	}

	s.mu.Lock()
	out := make([]models.Task, 0)
	for _, t := range s.completed {
		for _, tag := range t.Tags {
			if wanted[models.FoldTagName(tag)] {
				out = append(out, t)
				break
			}
		}
		if req.Limit > 0 && len(out) == req.Limit {
			break
		}
	}
	s.mu.Unlock()

	utils.WriteJSON(w, out, http.StatusOK)
}

// retagTasks rewrites oldName to newName on every live task. Callers hold
// s.mu.
func (s *Server) retagTasks(oldName, newName string) {
	for id, t := range s.tasks {
		changed := false
		for i, tag := range t.Tags {
			if models.FoldTagName(tag) == oldName {
				t.Tags[i] = newName
				changed = true
			}
		}
		if changed {
			t.Etag = s.nextEtag()
			s.tasks[id] = t
		}
	}
}

// removeTagFromTasks drops the tag from every live task. Callers hold s.mu.
func (s *Server) removeTagFromTasks(name string) {
	for id, t := range s.tasks {
		kept := t.Tags[:0]
		for _, tag := range t.Tags {
			if models.FoldTagName(tag) != name {
				kept = append(kept, tag)
			}
		}
		if len(kept) != len(t.Tags) {
			t.Tags = kept
			t.Etag = s.nextEtag()
			s.tasks[id] = t
		}
	}
}

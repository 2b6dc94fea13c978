// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fakeapi

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-tick-sdk/internal/utils"
	"github.com/MKhiriev/go-tick-sdk/models"
)

func (s *Server) userProfile(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.UserProfile{
		Username: s.cfg.Username,
		Name:     s.cfg.Username,
	}, http.StatusOK)
}

func (s *Server) userStatus(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.UserStatus{
		UserID:   "1",
		Username: s.cfg.Username,
		InboxID:  s.cfg.InboxID,
		Pro:      true,
	}, http.StatusOK)
}

func (s *Server) userSettings(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.UserSettings{
		TimeZone:    "UTC",
		Locale:      "en_US",
		StartOfWeek: 1,
	}, http.StatusOK)
}

func (s *Server) userLimits(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.UserLimits{
		ProjectNumber:    499,
		ProjectTaskCount: 9999,
		SubtaskNumber:    999,
		HabitNumber:      999,
		KanbanNumber:     499,
		ReminderNumber:   5,
	}, http.StatusOK)
}

// search matches the keywords as a case-insensitive substring over task
// titles and contents and over tag names.
func (s *Server) search(w http.ResponseWriter, r *http.Request) {
	keywords := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("keywords")))
	if keywords == "" {
		http.Error(w, "keywords are required", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	results := models.SearchResults{Tasks: []models.Task{}, Tags: []models.Tag{}}
	for _, t := range s.taskList() {
		if strings.Contains(strings.ToLower(t.Title), keywords) ||
			strings.Contains(strings.ToLower(t.Content), keywords) {
			results.Tasks = append(results.Tasks, t)
		}
	}
	for _, tag := range s.tagList() {
		if strings.Contains(tag.Name, keywords) {
			results.Tags = append(results.Tags, tag)
		}
	}
	s.mu.Unlock()

	utils.WriteJSON(w, results, http.StatusOK)
}

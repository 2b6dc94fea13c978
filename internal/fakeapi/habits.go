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

func (s *Server) listHabits(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	out := s.habitList()
	s.mu.Unlock()

	utils.WriteJSON(w, out, http.StatusOK)
}

func (s *Server) createHabit(w http.ResponseWriter, r *http.Request) {
	var h models.Habit
	if err := json.NewDecoder(r.Body).Decode(&h); err != nil {
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	if h.ID == "" {
		h.ID = utils.ObjectID()
	}
	h.Etag = s.nextEtag()
	s.habits[h.ID] = h
	s.mu.Unlock()

	utils.WriteJSON(w, h, http.StatusOK)
}

func (s *Server) updateHabit(w http.ResponseWriter, r *http.Request) {
	habitID := chi.URLParam(r, "habitID")

	var h models.Habit
	if err := json.NewDecoder(r.Body).Decode(&h); err != nil {
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	h.ID = habitID

	s.mu.Lock()
	if _, ok := s.habits[habitID]; !ok {
		s.mu.Unlock()
		http.Error(w, "habit_not_found", http.StatusNotFound)
		return
	}
	h.Etag = s.nextEtag()
	s.habits[habitID] = h
	s.mu.Unlock()

	utils.WriteJSON(w, h, http.StatusOK)
}

func (s *Server) deleteHabit(w http.ResponseWriter, r *http.Request) {
	habitID := chi.URLParam(r, "habitID")

	s.mu.Lock()
	if _, ok := s.habits[habitID]; !ok {
		s.mu.Unlock()
		http.Error(w, "habit_not_found", http.StatusNotFound)
		return
	}
	delete(s.habits, habitID)
	delete(s.checkins, habitID)
	s.mu.Unlock()

	w.WriteHeader(http.StatusOK)
}

func (s *Server) queryCheckins(w http.ResponseWriter, r *http.Request) {
	var q models.HabitCheckinQuery
	if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	result := models.HabitCheckinResult{Checkins: map[string][]models.HabitCheckin{}}
	for _, habitID := range q.HabitIDs {
		for _, c := range s.checkins[habitID] {
			// Stamps are YYYYMMDD, so string order is date order.
			if q.AfterStamp != "" && c.CheckinStamp <= q.AfterStamp {
				continue
			}
			result.Checkins[habitID] = append(result.Checkins[habitID], c)
		}
	}
	s.mu.Unlock()

	utils.WriteJSON(w, result, http.StatusOK)
}

// checkin records one day's entry. Check-ins stay writable for Open API
// sessions even though habit CRUD is not.
func (s *Server) checkin(w http.ResponseWriter, r *http.Request) {
	var c models.HabitCheckin
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	if c.HabitID == "" || c.CheckinStamp == "" {
		http.Error(w, "habitId and checkinStamp are required", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	if _, ok := s.habits[c.HabitID]; !ok {
		s.mu.Unlock()
		http.Error(w, "habit_not_found", http.StatusNotFound)
		return
	}
	if c.ID == "" {
		c.ID = utils.ObjectID()
	}
	c.Etag = s.nextEtag()
	s.checkins[c.HabitID] = append(s.checkins[c.HabitID], c)

	h := s.habits[c.HabitID]
	h.TotalCheckIns++
	s.habits[c.HabitID] = h
	s.mu.Unlock()

	utils.WriteJSON(w, c, http.StatusOK)
}

func (s *Server) batchCheckin(w http.ResponseWriter, r *http.Request) {
	var batch models.HabitCheckinBatch
	if err := json.NewDecoder(r.Body).Decode(&batch); err != nil {
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	for _, c := range batch.Checkins {
		if c.HabitID == "" || c.CheckinStamp == "" {
			continue
		}
		if c.ID == "" {
			c.ID = utils.ObjectID()
		}
		c.Etag = s.nextEtag()
		s.checkins[c.HabitID] = append(s.checkins[c.HabitID], c)
	}
	s.mu.Unlock()

	w.WriteHeader(http.StatusOK)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fakeapi

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Router builds the fake's route table. Paths mirror the real service; the
// handlers behind them are the in-memory fakes.
func (s *Server) Router() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/v2/user/signon", s.signon)
	})

	router.Group(func(r chi.Router) {
		r.Use(s.authenticate)

		r.Get("/api/v3/batch/check/{checkpoint}", s.check)

		r.Post("/api/v2/batch/task", s.batchTask)
		r.Post("/api/v2/batch/taskParent", s.batchTaskParent)
		r.Post("/api/v2/task", s.createTask)
		r.Post("/api/v2/task/{taskID}", s.updateTask)
		r.Get("/api/v2/task/{taskID}", s.getTask)
		r.Get("/api/v2/project/all/completed/", s.completedTasks)
		r.Get("/api/v2/project/{projectID}/completed/", s.completedTasks)
		r.Get("/api/v2/project/all/completedInAll/", s.completedTasks)
		r.Get("/api/v2/project/all/trash/pagination", s.trashedTasks)

		r.Get("/api/v2/project/{projectID}/data", s.projectData)
		r.Post("/api/v2/project", s.createProject)
		r.Put("/api/v2/project/{projectID}", s.updateProject)
		r.Delete("/api/v2/project/{projectID}", s.deleteProject)

		r.Post("/api/v2/projectGroup", s.createProjectGroup)
		r.Put("/api/v2/projectGroup/{groupID}", s.updateProjectGroup)
		r.Delete("/api/v2/projectGroup/{groupID}", s.deleteProjectGroup)

		r.Get("/api/v2/column", s.allColumns)
		r.Get("/api/v2/column/project/{projectID}", s.projectColumns)
		r.Post("/api/v2/column", s.saveColumn)

		r.Post("/api/v2/tag/completedTask", s.completedByTags)

		r.Get("/api/v2/habits", s.listHabits)
		r.Post("/api/v2/habitCheckins/query", s.queryCheckins)
		r.Post("/api/v2/habitCheckins", s.checkin)
		r.Post("/api/v2/habits/batch", s.batchCheckin)

		r.Get("/api/v2/user/profile", s.userProfile)
		r.Get("/api/v2/user/status", s.userStatus)
		r.Get("/api/v2/user/preferences/settings", s.userSettings)
		r.Get("/api/v2/configs/limits", s.userLimits)
		r.Get("/api/v2/search/all", s.search)

		// The service refuses these for Open API sessions with 405.
		r.Group(func(web chi.Router) {
			web.Use(s.webSessionOnly)

			web.Post("/api/v2/batch/tag", s.batchTag)
			web.Post("/api/v2/batch/filter", s.batchFilter)
			web.Put("/api/v2/tag/rename", s.renameTag)
			web.Put("/api/v2/tag/merge", s.mergeTags)
			web.Delete("/api/v2/tag/{name}", s.deleteTag)
			web.Post("/api/v2/habits", s.createHabit)
			web.Put("/api/v2/habits/{habitID}", s.updateHabit)
			web.Delete("/api/v2/habits/{habitID}", s.deleteHabit)
		})
	})

	return router
}

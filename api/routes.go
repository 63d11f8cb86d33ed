package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes registers every endpoint
func setupRoutes(r chi.Router, handlers *routeHandlers) {
	r.Get("/health", handlers.healthHandler.getHealth())

	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		// Project Handler endpoints
		r.Get("/projects", handlers.projectHandler.getProjects())
		r.Delete("/projects", handlers.projectHandler.deleteAllProjects())
		r.Get("/projects/external", handlers.projectHandler.fetchExternalProjects())
		r.Get("/project/{projectID}", handlers.projectHandler.getProject())
		r.Post("/project", handlers.projectHandler.createProject())
		r.Put("/project/{projectID}", handlers.projectHandler.updateProject())
		r.Delete("/project/{projectID}", handlers.projectHandler.deleteProject())
		r.Post("/teacher/{teacherID}/project", handlers.projectHandler.createProjectForSchool())
		r.Get("/teacher/{teacherID}/projects", handlers.projectHandler.getTeacherProjects())

		// School, teacher and donation endpoints
		r.Get("/schools", handlers.directoryHandler.getAllSchools())
		r.Post("/school", handlers.directoryHandler.createSchool())
		r.Get("/teachers", handlers.directoryHandler.getAllTeachers())
		r.Get("/teacher/{teacherID}", handlers.directoryHandler.getTeacher())
		r.Post("/teacher", handlers.directoryHandler.createTeacher())
		r.Get("/donations", handlers.directoryHandler.getAllDonations())
		r.Post("/donation", handlers.directoryHandler.createDonation())
	})
}

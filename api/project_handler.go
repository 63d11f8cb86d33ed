package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/rpupo63/emp-classrooms-backend/errs"
	"github.com/rpupo63/emp-classrooms-backend/models"
	"github.com/rpupo63/emp-classrooms-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type projectHandler struct {
	responder Responder
	logger    zerolog.Logger
	service   *services.ProjectService
}

func newProjectHandler(service *services.ProjectService) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder: NewResponder(logger),
		logger:    logger,
		service:   service,
	}
}

// parseApproval reads the tri-state approved filter: true, false, or unset/null
func parseApproval(raw string) (*bool, error) {
	value := strings.ToLower(strings.TrimSpace(raw))
	switch value {
	case "unset", "null", "none":
		return nil, nil
	}
	approved, err := strconv.ParseBool(value)
	if err != nil {
		return nil, errs.NewInvalidFieldError("approved", "must be true, false or unset")
	}
	return &approved, nil
}

// getProjects lists projects.
// Query parameters, checked in order:
//   - teacherId: projects owned by the teacher
//   - q: case-insensitive search, restricted to approved projects unless approved is given
//   - approved: true, false or unset
//
// @Router /projects [get]
func (h projectHandler) getProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		var (
			projects []*models.Project
			err      error
		)
		switch {
		case query.Has("teacherId"):
			teacherID, perr := strconv.ParseUint(query.Get("teacherId"), 10, 64)
			if perr != nil {
				h.responder.WriteError(w, errs.NewInvalidFieldError("teacherId", "must be a positive integer"))
				return
			}
			projects, err = h.service.FindAllProjectsByTeacherID(r.Context(), uint(teacherID))

		case query.Has("q"):
			approved := true
			approvedFilter := &approved
			if query.Has("approved") {
				if approvedFilter, err = parseApproval(query.Get("approved")); err != nil {
					h.responder.WriteError(w, err)
					return
				}
			}
			projects, err = h.service.FindAllProjectsBySearchQueryAndApproval(r.Context(), query.Get("q"), approvedFilter)

		case query.Has("approved"):
			approvedFilter, perr := parseApproval(query.Get("approved"))
			if perr != nil {
				h.responder.WriteError(w, perr)
				return
			}
			projects, err = h.service.FindAllProjectsByApproval(r.Context(), approvedFilter)

		default:
			projects, err = h.service.FindAllProjects(r.Context())
		}
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, ProjectCollection{Projects: projects, Total: len(projects)})
	}
}

// getTeacherProjects lists the projects of one teacher
// @Router /teacher/{teacherID}/projects [get]
func (h projectHandler) getTeacherProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teacherID, err := urlParamID(r, "teacherID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		projects, err := h.service.FindAllProjectsByTeacherID(r.Context(), teacherID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, ProjectCollection{Projects: projects, Total: len(projects)})
	}
}

// getProject retrieves a specific project by ID
// @Router /project/{projectID} [get]
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := urlParamID(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.service.FindProjectByID(r.Context(), projectID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

// createProject stores a project exactly as submitted
// @Router /project [post]
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var project models.Project
		if body, err := decodeBody(w, r, &project); err != nil {
			h.logger.Error().Err(err).Str("body", string(body)).Msg("Failed to decode project request body")
			h.responder.WriteError(w, err)
			return
		}

		created, err := h.service.CreateProject(r.Context(), &project)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, created)
	}
}

// createProjectForSchool creates a project for the teacher and the teacher's school
// @Router /teacher/{teacherID}/project [post]
func (h projectHandler) createProjectForSchool() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teacherID, err := urlParamID(r, "teacherID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var draft models.Project
		if body, err := decodeBody(w, r, &draft); err != nil {
			h.logger.Error().Err(err).Str("body", string(body)).Msg("Failed to decode project request body")
			h.responder.WriteError(w, err)
			return
		}

		created, err := h.service.CreateProjectForSchool(r.Context(), teacherID, &draft)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, created)
	}
}

// updateProject merges the submitted fields into an existing project
// @Router /project/{projectID} [put]
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := urlParamID(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var update models.ProjectUpdate
		if body, err := decodeBody(w, r, &update); err != nil {
			h.logger.Error().Err(err).Str("body", string(body)).Msg("Failed to decode project update body")
			h.responder.WriteError(w, err)
			return
		}

		updated, err := h.service.UpdateProject(r.Context(), projectID, update)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if updated == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}

// deleteProject deletes a project by ID after detaching its donations
// @Router /project/{projectID} [delete]
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := urlParamID(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.service.DeleteProjectByID(r.Context(), projectID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "project deleted successfully",
		})
	}
}

// @Router /projects [delete]
func (h projectHandler) deleteAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.service.DeleteAllProjects(r.Context()); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "all projects deleted successfully",
		})
	}
}

// fetchExternalProjects relays a DonorsChoose keyword search, status and body unchanged
// @Router /projects/external [get]
func (h projectHandler) fetchExternalProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		searchQuery := r.URL.Query().Get("q")
		if searchQuery == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("q"))
			return
		}

		feed, err := h.service.FetchExternalProjects(r.Context(), searchQuery)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteRaw(w, feed.StatusCode, feed.ContentType, feed.Body)
	}
}

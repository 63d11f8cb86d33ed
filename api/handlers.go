package api

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rpupo63/emp-classrooms-backend/database"
	"github.com/rpupo63/emp-classrooms-backend/errs"
	"github.com/rpupo63/emp-classrooms-backend/services"
)

const maxBodyBytes = 1 << 20

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, external services.ExternalProjectFetcher, startupTime time.Time) *routeHandlers {
	projectService := services.NewProjectService(
		database.ProjectRepo(),
		database.TeacherRepo(),
		database.SchoolRepo(),
		database.DonationRepo(),
		external,
	)

	return &routeHandlers{
		projectHandler:   newProjectHandler(projectService),
		directoryHandler: newDirectoryHandler(database.SchoolRepo(), database.TeacherRepo(), database.DonationRepo()),
		healthHandler:    newHealthHandler(startupTime),
	}
}

// urlParamID parses a positive integer path parameter
func urlParamID(r *http.Request, name string) (uint, error) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		return 0, errs.NewMissingRequiredFieldError(name)
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errs.NewInvalidFieldError(name, "must be a positive integer")
	}
	return uint(id), nil
}

// decodeBody reads a size-limited JSON request body into v
func decodeBody(w http.ResponseWriter, r *http.Request, v any) ([]byte, error) {
	bodyBytes, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, errs.NewBadRequestError("failed to read request body")
	}
	if err := json.Unmarshal(bodyBytes, v); err != nil {
		return bodyBytes, errs.NewInvalidJSONError(err)
	}
	return bodyBytes, nil
}

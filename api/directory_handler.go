package api

import (
	"net/http"

	"github.com/rpupo63/emp-classrooms-backend/database"
	"github.com/rpupo63/emp-classrooms-backend/errs"
	"github.com/rpupo63/emp-classrooms-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// directoryHandler serves the schools, teachers and donations that projects hang off
type directoryHandler struct {
	responder    Responder
	logger       zerolog.Logger
	schoolRepo   *database.SchoolRepo
	teacherRepo  *database.TeacherRepo
	donationRepo *database.DonationRepo
}

func newDirectoryHandler(schoolRepo *database.SchoolRepo, teacherRepo *database.TeacherRepo, donationRepo *database.DonationRepo) directoryHandler {
	logger := log.With().Str("handlerName", "directoryHandler").Logger()

	return directoryHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		schoolRepo:   schoolRepo,
		teacherRepo:  teacherRepo,
		donationRepo: donationRepo,
	}
}

// @Router /schools [get]
func (h directoryHandler) getAllSchools() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		schools, err := h.schoolRepo.FindAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "schools", err))
			return
		}
		h.responder.WriteJSON(w, schools)
	}
}

// @Router /school [post]
func (h directoryHandler) createSchool() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var school models.School
		if _, err := decodeBody(w, r, &school); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if school.Name == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("name"))
			return
		}

		school.ID = 0
		school.Projects = nil
		if err := h.schoolRepo.Add(r.Context(), &school); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("create", "school", err))
			return
		}
		h.responder.WriteJSONStatus(w, http.StatusCreated, school)
	}
}

// @Router /teachers [get]
func (h directoryHandler) getAllTeachers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teachers, err := h.teacherRepo.FindAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "teachers", err))
			return
		}
		h.responder.WriteJSON(w, teachers)
	}
}

// @Router /teacher/{teacherID} [get]
func (h directoryHandler) getTeacher() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teacherID, err := urlParamID(r, "teacherID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		teacher, err := h.teacherRepo.FindByID(r.Context(), teacherID)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "teacher", err))
			return
		}
		if teacher == nil {
			h.responder.WriteError(w, errs.NewNotFound("teacher"))
			return
		}
		h.responder.WriteJSON(w, teacher)
	}
}

// @Router /teacher [post]
func (h directoryHandler) createTeacher() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var teacher models.Teacher
		if _, err := decodeBody(w, r, &teacher); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if teacher.SchoolID != nil {
			school, err := h.schoolRepo.FindByID(r.Context(), *teacher.SchoolID)
			if err != nil {
				h.responder.WriteError(w, errs.NewDatabaseError("find", "school", err))
				return
			}
			if school == nil {
				h.responder.WriteError(w, errs.NewInvalidFieldError("schoolId", "school does not exist"))
				return
			}
		}

		teacher.ID = 0
		teacher.School = nil
		teacher.Projects = nil
		if err := h.teacherRepo.Add(r.Context(), &teacher); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("create", "teacher", err))
			return
		}
		h.responder.WriteJSONStatus(w, http.StatusCreated, teacher)
	}
}

// @Router /donations [get]
func (h directoryHandler) getAllDonations() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		donations, err := h.donationRepo.FindAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "donations", err))
			return
		}
		h.responder.WriteJSON(w, donations)
	}
}

// @Router /donation [post]
func (h directoryHandler) createDonation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var donation models.Donation
		if _, err := decodeBody(w, r, &donation); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if donation.Amount <= 0 {
			h.responder.WriteError(w, errs.NewInvalidFieldError("amount", "must be positive"))
			return
		}

		donation.ID = 0
		donation.Project = nil
		if err := h.donationRepo.Add(r.Context(), &donation); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("create", "donation", err))
			return
		}
		h.responder.WriteJSONStatus(w, http.StatusCreated, donation)
	}
}

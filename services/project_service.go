package services

import (
	"context"
	"strings"

	"github.com/rpupo63/emp-classrooms-backend/errs"
	"github.com/rpupo63/emp-classrooms-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ProjectStore is the project persistence used by ProjectService
type ProjectStore interface {
	FindAll(ctx context.Context) ([]*models.Project, error)
	FindByID(ctx context.Context, id uint) (*models.Project, error)
	FindByApproval(ctx context.Context, approved *bool) ([]*models.Project, error)
	Search(ctx context.Context, query string, approved *bool) ([]*models.Project, error)
	FindByTeacherID(ctx context.Context, teacherID uint) ([]*models.Project, error)
	Add(ctx context.Context, project *models.Project) error
	Update(ctx context.Context, project *models.Project) error
	Delete(ctx context.Context, id uint) error
}

type TeacherStore interface {
	FindByID(ctx context.Context, id uint) (*models.Teacher, error)
	Update(ctx context.Context, teacher *models.Teacher) error
}

type SchoolStore interface {
	Update(ctx context.Context, school *models.School) error
}

type DonationStore interface {
	FindByProjectID(ctx context.Context, projectID uint) ([]*models.Donation, error)
	Update(ctx context.Context, donation *models.Donation) error
}

// ExternalProjectFetcher searches a third-party project catalogue
type ExternalProjectFetcher interface {
	FetchProjects(ctx context.Context, searchQuery string) (*ExternalFeed, error)
}

type ProjectService struct {
	projects  ProjectStore
	teachers  TeacherStore
	schools   SchoolStore
	donations DonationStore
	external  ExternalProjectFetcher
	logger    zerolog.Logger
}

func NewProjectService(projects ProjectStore, teachers TeacherStore, schools SchoolStore, donations DonationStore, external ExternalProjectFetcher) *ProjectService {
	return &ProjectService{
		projects:  projects,
		teachers:  teachers,
		schools:   schools,
		donations: donations,
		external:  external,
		logger:    log.With().Str("service", "projectService").Logger(),
	}
}

// CreateProjectForSchool creates a project owned by the teacher and the teacher's school.
// The saved project is appended to both project collections.
func (s *ProjectService) CreateProjectForSchool(ctx context.Context, teacherID uint, draft *models.Project) (*models.Project, error) {
	teacher, err := s.teachers.FindByID(ctx, teacherID)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "teacher", err)
	}
	if teacher == nil {
		return nil, errs.NewNotFound("teacher")
	}
	school := teacher.School

	draft.ID = 0
	draft.CostToComplete = draft.TotalPrice
	draft.TeacherID = &teacher.ID
	draft.SchoolID = nil
	if school != nil {
		draft.SchoolID = &school.ID
	}
	draft.Teacher = nil
	draft.School = nil
	draft.Donations = nil

	if err := s.projects.Add(ctx, draft); err != nil {
		return nil, errs.NewDatabaseError("create", "project", err)
	}

	if teacher.Projects == nil {
		teacher.Projects = []models.Project{}
	}
	teacher.Projects = append(teacher.Projects, *draft)
	if err := s.teachers.Update(ctx, teacher); err != nil {
		return nil, errs.NewDatabaseError("update", "teacher", err)
	}

	if school != nil {
		if school.Projects == nil {
			school.Projects = []models.Project{}
		}
		school.Projects = append(school.Projects, *draft)
		if err := s.schools.Update(ctx, school); err != nil {
			return nil, errs.NewDatabaseError("update", "school", err)
		}
	}

	draft.Teacher = teacher
	draft.School = school

	s.logger.Info().
		Uint("projectID", draft.ID).
		Uint("teacherID", teacher.ID).
		Msg("Project created for school")
	return draft, nil
}

// FindAllProjectsByApproval returns the projects whose approval flag equals approved.
// A nil approved selects projects that have not been reviewed.
func (s *ProjectService) FindAllProjectsByApproval(ctx context.Context, approved *bool) ([]*models.Project, error) {
	projects, err := s.projects.FindByApproval(ctx, approved)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "projects", err)
	}
	return projects, nil
}

// FindAllProjectsBySearchQueryAndApproval narrows FindAllProjectsByApproval to projects
// whose short description, synopsis or title contains query, ignoring case
func (s *ProjectService) FindAllProjectsBySearchQueryAndApproval(ctx context.Context, query string, approved *bool) ([]*models.Project, error) {
	projects, err := s.projects.Search(ctx, strings.ToLower(query), approved)
	if err != nil {
		return nil, errs.NewDatabaseError("search", "projects", err)
	}
	return projects, nil
}

func (s *ProjectService) FindAllProjectsByTeacherID(ctx context.Context, teacherID uint) ([]*models.Project, error) {
	projects, err := s.projects.FindByTeacherID(ctx, teacherID)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "projects", err)
	}
	return projects, nil
}

func (s *ProjectService) CreateProject(ctx context.Context, project *models.Project) (*models.Project, error) {
	project.ID = 0
	if err := s.projects.Add(ctx, project); err != nil {
		return nil, errs.NewDatabaseError("create", "project", err)
	}
	return project, nil
}

func (s *ProjectService) FindAllProjects(ctx context.Context) ([]*models.Project, error) {
	projects, err := s.projects.FindAll(ctx)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "projects", err)
	}
	return projects, nil
}

// FindProjectByID returns nil without error when the project does not exist
func (s *ProjectService) FindProjectByID(ctx context.Context, id uint) (*models.Project, error) {
	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "project", err)
	}
	return project, nil
}

// UpdateProject merges the present fields of update into the stored project.
// It returns nil without error when the project does not exist.
func (s *ProjectService) UpdateProject(ctx context.Context, id uint, update models.ProjectUpdate) (*models.Project, error) {
	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "project", err)
	}
	if project == nil {
		return nil, nil
	}

	update.ApplyTo(project)
	if err := s.projects.Update(ctx, project); err != nil {
		return nil, errs.NewDatabaseError("update", "project", err)
	}
	return project, nil
}

// DeleteProjectByID detaches every donation from the project, then deletes the project.
// Donations are kept. Deleting a missing project is a no-op.
func (s *ProjectService) DeleteProjectByID(ctx context.Context, id uint) error {
	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return errs.NewDatabaseError("find", "project", err)
	}
	if project == nil {
		return nil
	}

	donations, err := s.donations.FindByProjectID(ctx, id)
	if err != nil {
		return errs.NewDatabaseError("find", "donations", err)
	}
	for _, donation := range donations {
		donation.ProjectID = nil
		donation.Project = nil
		if err := s.donations.Update(ctx, donation); err != nil {
			return errs.NewDatabaseError("detach", "donation", err)
		}
	}

	if err := s.projects.Delete(ctx, id); err != nil {
		return errs.NewDatabaseError("delete", "project", err)
	}

	s.logger.Info().Uint("projectID", id).Int("detachedDonations", len(donations)).Msg("Project deleted")
	return nil
}

// DeleteAllProjects deletes every project one at a time. A failure stops the
// loop and leaves the already deleted projects deleted.
func (s *ProjectService) DeleteAllProjects(ctx context.Context) error {
	projects, err := s.projects.FindAll(ctx)
	if err != nil {
		return errs.NewDatabaseError("find", "projects", err)
	}
	for _, project := range projects {
		if err := s.DeleteProjectByID(ctx, project.ID); err != nil {
			return err
		}
	}
	return nil
}

// FetchExternalProjects relays a keyword search to the external catalogue
func (s *ProjectService) FetchExternalProjects(ctx context.Context, searchQuery string) (*ExternalFeed, error) {
	return s.external.FetchProjects(ctx, searchQuery)
}

package database

import (
	"context"
	"errors"
	"strings"

	"github.com/rpupo63/emp-classrooms-backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

func (r *ProjectRepo) withAssociations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Teacher").
		Preload("School").
		Preload("Donations").
		Order("projects.id")
}

// FindAll returns all projects from the database
func (r *ProjectRepo) FindAll(ctx context.Context) ([]*models.Project, error) {
	var projects []*models.Project
	err := r.withAssociations(ctx).Find(&projects).Error
	return projects, err
}

// FindByID returns a project by its ID, or nil when it does not exist
func (r *ProjectRepo) FindByID(ctx context.Context, id uint) (*models.Project, error) {
	var project models.Project
	err := r.withAssociations(ctx).First(&project, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// FindByApproval returns the projects whose approval flag equals approved.
// A nil approved matches projects that were never reviewed.
func (r *ProjectRepo) FindByApproval(ctx context.Context, approved *bool) ([]*models.Project, error) {
	var projects []*models.Project
	err := approvalScope(r.withAssociations(ctx), approved).Find(&projects).Error
	return projects, err
}

// Search returns the projects matching approved whose title, short description
// or synopsis contains query, ignoring case. The substring match runs in Go so
// case folding covers non-ASCII text regardless of the database collation.
func (r *ProjectRepo) Search(ctx context.Context, query string, approved *bool) ([]*models.Project, error) {
	candidates, err := r.FindByApproval(ctx, approved)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(query)
	projects := make([]*models.Project, 0, len(candidates))
	for _, p := range candidates {
		if matchesQuery(p, query) {
			projects = append(projects, p)
		}
	}
	return projects, nil
}

// FindByTeacherID returns every project owned by the teacher
func (r *ProjectRepo) FindByTeacherID(ctx context.Context, teacherID uint) ([]*models.Project, error) {
	var projects []*models.Project
	err := r.withAssociations(ctx).Where("projects.teacher_id = ?", teacherID).Find(&projects).Error
	return projects, err
}

// Add inserts a new project into the database. Associated rows are not written.
func (r *ProjectRepo) Add(ctx context.Context, project *models.Project) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(project).Error
}

// Update updates an existing project in the database
func (r *ProjectRepo) Update(ctx context.Context, project *models.Project) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(project).Error
}

// Delete removes a project from the database by id
func (r *ProjectRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Project{}, id).Error
}

func approvalScope(db *gorm.DB, approved *bool) *gorm.DB {
	if approved == nil {
		return db.Where("projects.is_approved IS NULL")
	}
	return db.Where("projects.is_approved = ?", *approved)
}

// matchesQuery reports whether a lower-cased query occurs in any searchable field
func matchesQuery(p *models.Project, query string) bool {
	return strings.Contains(strings.ToLower(p.ShortDescription), query) ||
		strings.Contains(strings.ToLower(p.Synopsis), query) ||
		strings.Contains(strings.ToLower(p.Title), query)
}

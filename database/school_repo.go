package database

import (
	"context"
	"errors"

	"github.com/rpupo63/emp-classrooms-backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SchoolRepo struct {
	db *gorm.DB
}

func NewSchoolRepo(db *gorm.DB) *SchoolRepo {
	return &SchoolRepo{db}
}

func (r *SchoolRepo) FindAll(ctx context.Context) ([]*models.School, error) {
	var schools []*models.School
	err := r.db.WithContext(ctx).Order("id").Find(&schools).Error
	return schools, err
}

// FindByID returns a school with its projects, or nil when absent
func (r *SchoolRepo) FindByID(ctx context.Context, id uint) (*models.School, error) {
	var school models.School
	err := r.db.WithContext(ctx).
		Preload("Projects", func(db *gorm.DB) *gorm.DB { return db.Order("projects.id") }).
		First(&school, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &school, nil
}

func (r *SchoolRepo) Add(ctx context.Context, school *models.School) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(school).Error
}

// Update saves the school row. Project membership lives on projects.school_id.
func (r *SchoolRepo) Update(ctx context.Context, school *models.School) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(school).Error
}

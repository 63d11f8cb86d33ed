package database

import (
	"context"
	"errors"

	"github.com/rpupo63/emp-classrooms-backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TeacherRepo struct {
	db *gorm.DB
}

func NewTeacherRepo(db *gorm.DB) *TeacherRepo {
	return &TeacherRepo{db}
}

// FindAll returns all teachers with their school
func (r *TeacherRepo) FindAll(ctx context.Context) ([]*models.Teacher, error) {
	var teachers []*models.Teacher
	err := r.db.WithContext(ctx).Preload("School").Order("id").Find(&teachers).Error
	return teachers, err
}

// FindByID returns a teacher with their school and projects, or nil when absent
func (r *TeacherRepo) FindByID(ctx context.Context, id uint) (*models.Teacher, error) {
	var teacher models.Teacher
	err := r.db.WithContext(ctx).
		Preload("School").
		Preload("Projects", func(db *gorm.DB) *gorm.DB { return db.Order("projects.id") }).
		First(&teacher, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &teacher, nil
}

// Add inserts a new teacher into the database
func (r *TeacherRepo) Add(ctx context.Context, teacher *models.Teacher) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(teacher).Error
}

// Update saves the teacher row. Project membership lives on projects.teacher_id.
func (r *TeacherRepo) Update(ctx context.Context, teacher *models.Teacher) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(teacher).Error
}

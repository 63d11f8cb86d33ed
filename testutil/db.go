// Package testutil holds shared fixtures for package tests.
package testutil

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/rpupo63/emp-classrooms-backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB creates an in-memory SQLite database with the full schema and
// foreign keys enforced
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	// every pooled connection would otherwise get its own empty :memory: database
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return db
}

// CreateSchool inserts a school row
func CreateSchool(t *testing.T, db *gorm.DB, name string) *models.School {
	t.Helper()
	school := &models.School{Name: name}
	if err := db.WithContext(context.Background()).Create(school).Error; err != nil {
		t.Fatalf("Failed to create school: %v", err)
	}
	return school
}

// CreateTeacher inserts a teacher attached to school (which may be nil)
func CreateTeacher(t *testing.T, db *gorm.DB, firstName string, school *models.School) *models.Teacher {
	t.Helper()
	teacher := &models.Teacher{FirstName: firstName, LastName: "Teacher"}
	if school != nil {
		teacher.SchoolID = &school.ID
	}
	if err := db.WithContext(context.Background()).Omit("School", "Projects").Create(teacher).Error; err != nil {
		t.Fatalf("Failed to create teacher: %v", err)
	}
	return teacher
}

// CreateProject inserts a project row as-is
func CreateProject(t *testing.T, db *gorm.DB, project *models.Project) *models.Project {
	t.Helper()
	if err := db.WithContext(context.Background()).Omit("Teacher", "School", "Donations").Create(project).Error; err != nil {
		t.Fatalf("Failed to create project: %v", err)
	}
	return project
}

// CreateDonation inserts a donation pointing at project
func CreateDonation(t *testing.T, db *gorm.DB, amount float64, project *models.Project) *models.Donation {
	t.Helper()
	donation := &models.Donation{Amount: amount, DonorName: "donor"}
	if project != nil {
		donation.ProjectID = &project.ID
	}
	if err := db.WithContext(context.Background()).Omit("Project").Create(donation).Error; err != nil {
		t.Fatalf("Failed to create donation: %v", err)
	}
	return donation
}

// Bool returns a pointer to b
func Bool(b bool) *bool {
	return &b
}

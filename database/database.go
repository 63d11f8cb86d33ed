package database

import (
	"fmt"

	"github.com/rpupo63/emp-classrooms-backend/errs"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

type Database struct {
	projectRepo  *ProjectRepo
	teacherRepo  *TeacherRepo
	schoolRepo   *SchoolRepo
	donationRepo *DonationRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		projectRepo:  NewProjectRepo(db),
		teacherRepo:  NewTeacherRepo(db),
		schoolRepo:   NewSchoolRepo(db),
		donationRepo: NewDonationRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) TeacherRepo() *TeacherRepo {
	return d.teacherRepo
}

func (d Database) SchoolRepo() *SchoolRepo {
	return d.schoolRepo
}

func (d Database) DonationRepo() *DonationRepo {
	return d.donationRepo
}

// UseReplicas routes reads to the given replica dialectors while writes stay on the primary
func UseReplicas(db *gorm.DB, replicas ...gorm.Dialector) error {
	if len(replicas) == 0 {
		return errs.NewBadRequestError("at least one replica is required")
	}
	if err := db.Use(dbresolver.Register(dbresolver.Config{
		Replicas: replicas,
		Policy:   dbresolver.RandomPolicy{},
	})); err != nil {
		return fmt.Errorf("registering read replicas: %w", err)
	}
	return nil
}

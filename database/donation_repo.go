package database

import (
	"context"

	"github.com/rpupo63/emp-classrooms-backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DonationRepo struct {
	db *gorm.DB
}

func NewDonationRepo(db *gorm.DB) *DonationRepo {
	return &DonationRepo{db}
}

func (r *DonationRepo) FindAll(ctx context.Context) ([]*models.Donation, error) {
	var donations []*models.Donation
	err := r.db.WithContext(ctx).Order("id").Find(&donations).Error
	return donations, err
}

// FindByProjectID returns the donations that reference the project
func (r *DonationRepo) FindByProjectID(ctx context.Context, projectID uint) ([]*models.Donation, error) {
	var donations []*models.Donation
	err := r.db.WithContext(ctx).Where("project_id = ?", projectID).Order("id").Find(&donations).Error
	return donations, err
}

func (r *DonationRepo) Add(ctx context.Context, donation *models.Donation) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(donation).Error
}

// Update saves every column, so a nil ProjectID is written as NULL
func (r *DonationRepo) Update(ctx context.Context, donation *models.Donation) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(donation).Error
}

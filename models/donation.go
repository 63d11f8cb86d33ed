package models

// Donation is a donor contribution. ProjectID is nil once its project has been deleted.
type Donation struct {
	ID        uint     `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Amount    float64  `json:"amount" db:"amount" gorm:"not null"`
	DonorName string   `json:"donorName" db:"donor_name" gorm:"type:text"`
	ProjectID *uint    `json:"projectId" db:"project_id" gorm:"index:idx_donation_project_id"`
	Project   *Project `json:"-" gorm:"foreignKey:ProjectID;references:ID"`
}

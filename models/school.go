package models

type School struct {
	ID       uint      `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Name     string    `json:"name" db:"name" gorm:"type:text;not null"`
	City     string    `json:"city" db:"city" gorm:"type:text"`
	State    string    `json:"state" db:"state" gorm:"type:text"`
	Projects []Project `json:"-" gorm:"foreignKey:SchoolID;references:ID"`
}

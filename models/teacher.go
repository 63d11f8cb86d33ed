package models

// Teacher belongs to a school and owns the projects they create
type Teacher struct {
	ID        uint      `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	FirstName string    `json:"firstName" db:"first_name" gorm:"type:text;not null"`
	LastName  string    `json:"lastName" db:"last_name" gorm:"type:text;not null"`
	Email     string    `json:"email" db:"email" gorm:"type:text"`
	SchoolID  *uint     `json:"schoolId,omitempty" db:"school_id" gorm:"index:idx_teacher_school_id"`
	School    *School   `json:"school,omitempty" gorm:"foreignKey:SchoolID;references:ID"`
	Projects  []Project `json:"-" gorm:"foreignKey:TeacherID;references:ID"`
}

package models

// Project is a classroom funding request created by a teacher on behalf of their school
type Project struct {
	ID               uint       `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Title            string     `json:"title" db:"title" gorm:"type:text;not null"`
	ShortDescription string     `json:"shortDescription" db:"short_description" gorm:"type:text;not null"`
	Synopsis         string     `json:"synopsis" db:"synopsis" gorm:"type:text;not null"`
	TotalPrice       float64    `json:"totalPrice" db:"total_price" gorm:"not null"`
	CostToComplete   float64    `json:"costToComplete" db:"cost_to_complete" gorm:"not null"`
	IsApproved       *bool      `json:"isApproved" db:"is_approved"`
	TeacherID        *uint      `json:"teacherId,omitempty" db:"teacher_id" gorm:"index:idx_project_teacher_id"`
	SchoolID         *uint      `json:"schoolId,omitempty" db:"school_id" gorm:"index:idx_project_school_id"`
	Teacher          *Teacher   `json:"teacher,omitempty" gorm:"foreignKey:TeacherID;references:ID"`
	School           *School    `json:"school,omitempty" gorm:"foreignKey:SchoolID;references:ID"`
	Donations        []Donation `json:"donations,omitempty" gorm:"foreignKey:ProjectID;references:ID"`
}

// ProjectUpdate carries the fields of a partial project update.
// Nil fields leave the stored value untouched.
type ProjectUpdate struct {
	Title            *string  `json:"title"`
	ShortDescription *string  `json:"shortDescription"`
	Synopsis         *string  `json:"synopsis"`
	TotalPrice       *float64 `json:"totalPrice"`
	CostToComplete   *float64 `json:"costToComplete"`
	IsApproved       *bool    `json:"isApproved"`
}

// ApplyTo merges the non-nil fields of u into p
func (u ProjectUpdate) ApplyTo(p *Project) {
	if u.Title != nil {
		p.Title = *u.Title
	}
	if u.ShortDescription != nil {
		p.ShortDescription = *u.ShortDescription
	}
	if u.Synopsis != nil {
		p.Synopsis = *u.Synopsis
	}
	if u.IsApproved != nil {
		approved := *u.IsApproved
		p.IsApproved = &approved
	}
	if u.CostToComplete != nil {
		p.CostToComplete = *u.CostToComplete
	}
	if u.TotalPrice != nil {
		p.TotalPrice = *u.TotalPrice
	}
}

package course

import "gorm.io/gorm"

// Course is a canonical certification course. Certificate requests reference
// courses by ID but never own them.
type Course struct {
	gorm.Model
	Name            string `json:"name" gorm:"unique;not null"`
	Description     string `json:"description"`
	DurationHours   int    `json:"duration_hours" gorm:"default:0"`
	FirstAidLevel   string `json:"first_aid_level"`  // e.g. Standard, Emergency
	CPRLevel        string `json:"cpr_level"`        // e.g. A, C, BLS
	InstructorLevel string `json:"instructor_level"` // set for instructor-track courses
	ExpiryMonths    int    `json:"expiry_months" gorm:"default:36"`
	Status          string `json:"status" gorm:"default:'ACTIVE'"` // ACTIVE, RETIRED
	IsDeleted       bool   `gorm:"default:false"`
}

package course

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Roster statuses
const (
	RosterSubmitted = "SUBMITTED"
	RosterProcessed = "PROCESSED"
	RosterFailed    = "FAILED"
)

// Roster is a named batch of certificate requests submitted together for one
// location. Created in the same transaction as its requests; immutable after
// submission except for status transitions.
type Roster struct {
	gorm.Model
	Name        string         `json:"name" gorm:"not null"`
	LocationID  uint           `json:"location_id" gorm:"index;not null"`
	SubmittedBy uint           `json:"submitted_by" gorm:"index;not null"`
	Status      string         `json:"status" gorm:"default:'SUBMITTED'"`
	TotalCount  int            `json:"total_count" gorm:"default:0"` // equals the number of requests created with this roster
	ErrorRows   datatypes.JSON `json:"error_rows"`                   // rejected upload rows kept for operator review
	IsDeleted   bool           `gorm:"default:false"`
}

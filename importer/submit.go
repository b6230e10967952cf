package importer

import (
	"encoding/json"
	"fmt"
	"log"

	courseModels "certhub/models/course"

	"gorm.io/gorm"
)

// BatchInput describes one roster submission
type BatchInput struct {
	Rows       []MatchedRow
	ErrorRows  []Row // rejected rows kept on the roster for operator review
	LocationID uint
	BatchName  string
	UserID     uint
}

// SubmitBatch creates one roster plus one certificate request per valid row
// in a single transaction. Either every valid row becomes a request under the
// roster, or the rollback removes the roster too — no partial batch survives.
func SubmitBatch(db *gorm.DB, input BatchInput) (*courseModels.Roster, []courseModels.CertificateRequest, error) {
	if len(input.Rows) == 0 {
		return nil, nil, fmt.Errorf("no valid rows to submit")
	}

	roster := courseModels.Roster{
		Name:        input.BatchName,
		LocationID:  input.LocationID,
		SubmittedBy: input.UserID,
		Status:      courseModels.RosterSubmitted,
		TotalCount:  len(input.Rows),
	}
	if len(input.ErrorRows) > 0 {
		payload, err := json.Marshal(input.ErrorRows)
		if err != nil {
			log.Printf("Failed to marshal roster error rows: %v", err)
		} else {
			roster.ErrorRows = payload
		}
	}

	var requests []courseModels.CertificateRequest

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&roster).Error; err != nil {
			return fmt.Errorf("failed to create roster: %w", err)
		}

		requests = make([]courseModels.CertificateRequest, 0, len(input.Rows))
		for _, row := range input.Rows {
			expiry := row.IssueDate.AddDate(0, 0, row.Course.ExpiryMonths*30)
			rosterID := roster.ID
			requests = append(requests, courseModels.CertificateRequest{
				StudentName:  row.Get(ColStudentName),
				StudentEmail: row.Get(ColEmail),
				CourseID:     row.Course.ID,
				LocationID:   input.LocationID,
				RosterID:     &rosterID,
				BatchID:      &rosterID,
				IssueDate:    row.IssueDate,
				ExpiryDate:   expiry,
				Instructor:   row.Get(ColInstructor),
				Status:       courseModels.RequestPending,
				SubmittedBy:  input.UserID,
			})
		}

		if err := tx.Create(&requests).Error; err != nil {
			return fmt.Errorf("failed to create certificate requests: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return &roster, requests, nil
}

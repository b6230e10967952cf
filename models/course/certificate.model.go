package course

import (
	"time"

	"gorm.io/gorm"
)

// Request statuses
const (
	RequestPending  = "PENDING"
	RequestApproved = "APPROVED"
	RequestRejected = "REJECTED"
	RequestArchived = "ARCHIVED"
)

// CertificateRequest is a person/course/date combination awaiting review.
// Created one at a time from the request form or in bulk from a roster upload.
type CertificateRequest struct {
	gorm.Model
	StudentName      string     `json:"student_name" gorm:"not null"`
	StudentEmail     string     `json:"student_email"`
	CourseID         uint       `json:"course_id" gorm:"index;not null"`
	LocationID       uint       `json:"location_id" gorm:"index;not null"`
	RosterID         *uint      `json:"roster_id" gorm:"index"` // nil for single-form requests
	BatchID          *uint      `json:"batch_id" gorm:"index"`  // equals RosterID for batch-created rows
	IssueDate        time.Time  `json:"issue_date"`
	ExpiryDate       time.Time  `json:"expiry_date"`
	AssessmentStatus string     `json:"assessment_status" gorm:"default:'COMPLETED'"`
	Instructor       string     `json:"instructor"`
	Status           string     `json:"status" gorm:"default:'PENDING'"` // PENDING, APPROVED, REJECTED, ARCHIVED
	RejectionReason  string     `json:"rejection_reason"`
	ReviewedBy       *uint      `json:"reviewed_by"`
	ReviewedAt       *time.Time `json:"reviewed_at"`
	SubmittedBy      uint       `json:"submitted_by" gorm:"index"`
	IsDeleted        bool       `gorm:"default:false"`
}

// Certificate is the issued record behind an approved request. DocumentURL
// stays empty until the PDF is generated and uploaded, either at approval
// time or by the backfill sweep.
type Certificate struct {
	gorm.Model
	RequestID         uint      `json:"request_id" gorm:"index;not null"`
	CourseID          uint      `json:"course_id" gorm:"index;not null"`
	StudentName       string    `json:"student_name"`
	StudentEmail      string    `json:"student_email"`
	CertificateNumber string    `json:"certificate_number" gorm:"unique"`
	IssuedAt          time.Time `json:"issued_at"`
	ExpiresAt         time.Time `json:"expires_at"`
	DocumentURL       string    `json:"document_url"`
	IsDeleted         bool      `gorm:"default:false"`
}

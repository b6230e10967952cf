package models

import "gorm.io/gorm"

// Notification is a delivery-log row for every outbound email. Delivery is
// best-effort; this table exists so admins can see what was attempted.
type Notification struct {
	gorm.Model
	Recipient string `json:"recipient" gorm:"index"`
	Subject   string `json:"subject"`
	Kind      string `json:"kind"` // WELCOME, LOGIN_ALERT, ROSTER_SUBMITTED, REQUEST_APPROVED, REQUEST_REJECTED, TICKET_REPLY
	Status    string `json:"status" gorm:"default:'SENT'"` // SENT, FAILED
	Error     string `json:"error"`
	IsDeleted bool   `gorm:"default:false"`
}

package models

import "gorm.io/gorm"

type SupportTicket struct {
	gorm.Model
	UserID      uint   `json:"user_id" gorm:"index;not null"`
	LocationID  *uint  `json:"location_id" gorm:"index"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status" gorm:"default:'open'"` // open, in_progress, closed
	Priority    string `json:"priority" gorm:"default:'medium'"`
	Category    string `json:"category" gorm:"default:'general'"` // general, certificates, billing, rosters
	IsDeleted   bool   `json:"is_deleted" gorm:"default:false"`
}

// TicketReply is one message on a support ticket thread
type TicketReply struct {
	gorm.Model
	TicketID  uint   `json:"ticket_id" gorm:"index;not null"`
	UserID    uint   `json:"user_id" gorm:"index;not null"`
	Message   string `json:"message"`
	IsStaff   bool   `json:"is_staff" gorm:"default:false"`
	IsDeleted bool   `json:"is_deleted" gorm:"default:false"`
}

package models

import "gorm.io/gorm"

// Provider is a training provider organisation. Locations hang off a provider
// and users/rosters hang off a location.
type Provider struct {
	gorm.Model
	Name         string `json:"name" gorm:"unique;not null"`
	ContactEmail string `json:"contact_email"`
	ContactPhone string `json:"contact_phone"`
	Status       string `json:"status" gorm:"default:'ACTIVE'"` // ACTIVE, SUSPENDED
	IsDeleted    bool   `gorm:"default:false"`
}

// Location is a training site or team under a provider
type Location struct {
	gorm.Model
	ProviderID uint   `json:"provider_id" gorm:"index;not null"`
	Name       string `json:"name" gorm:"not null"`
	Address    string `json:"address"`
	City       string `json:"city"`
	Region     string `json:"region"`
	IsDeleted  bool   `gorm:"default:false"`
}

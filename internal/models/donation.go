package models

import (
	"time"

	"gorm.io/gorm"
)

type Donation struct {
	gorm.Model

	UserID       uint      `gorm:"not null;index"`
	BloodGroup   string    `gorm:"size:3"`
	DonationDate time.Time `gorm:"type:date;not null;index"`
	ContactInfo  string
	Notes        string

	// Relationships
	User User `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

package models

import (
	"time"

	"gorm.io/gorm"
)

type DonationInterest struct {
	gorm.Model

	UserID        uint      `gorm:"not null;index"`
	BloodGroup    string    `gorm:"size:3"`
	AvailableDate time.Time `gorm:"type:date;not null"`
	ContactInfo   string

	// Set exactly once when the interest is converted into a confirmed
	// donation; null until then.
	DonationID *uint `gorm:"uniqueIndex"`

	// Relationships
	User     User      `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Donation *Donation `gorm:"foreignKey:DonationID;constraint:OnUpdate:Cascade,OnDelete:SET NULL"`
}

package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model

	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Username     string
	FirstName    string
	LastName     string
	Phone        string
	BloodGroup   string `gorm:"size:3"`
	Address      string
	IsStaff      bool `gorm:"default:false"`
	IsSuperuser  bool `gorm:"default:false"`

	// Cache of the most recent donation date. Refreshed on every donation
	// write; the spacing rule itself always re-derives from donation rows.
	LastDonationDate *time.Time `gorm:"type:date"`

	// Relationships
	Donations     []Donation           `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Interests     []DonationInterest   `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	BloodRequests []BloodRequest       `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Comments      []BlogComment        `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	ResetTokens   []PasswordResetToken `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

// FullName combines the name parts, falling back to the email when unset.
func (u *User) FullName() string {
	name := u.FirstName
	if u.LastName != "" {
		if name != "" {
			name += " "
		}
		name += u.LastName
	}
	if name == "" {
		return u.Email
	}
	return name
}

package models

import "gorm.io/gorm"

// Image attaches an uploaded file to at most one owning entity.
type Image struct {
	gorm.Model

	Path string `gorm:"not null"`

	BlogID       *uint `gorm:"index"`
	EventID      *uint `gorm:"index"`
	TeamMemberID *uint `gorm:"index"`
	AboutID      *uint `gorm:"index"`
}

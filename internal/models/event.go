package models

import (
	"time"

	"gorm.io/gorm"
)

type Event struct {
	gorm.Model

	Title       string `gorm:"not null"`
	Description string
	Location    string
	Date        time.Time `gorm:"not null;index"`
	IsActive    bool      `gorm:"default:true"`

	// Relationships
	Images []Image `gorm:"foreignKey:EventID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

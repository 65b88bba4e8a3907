package models

import (
	"time"

	"gorm.io/gorm"
)

type BloodRequest struct {
	gorm.Model

	UserID             uint   `gorm:"not null;index"`
	BloodGroup         string `gorm:"size:3;not null"`
	Location           string `gorm:"not null"`
	Contact            string `gorm:"not null"`
	Reason             string
	DateRequired       time.Time `gorm:"type:date;not null"`
	CollectionLocation string

	// Relationships
	User User `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

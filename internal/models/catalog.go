package models

import "time"

// Catalog entities are read-mostly attribute bags served straight to the
// public site, so they carry json tags and skip the gorm.Model embedding
// that would leak soft-delete columns into responses.

type BloodInventory struct {
	ID        uint   `gorm:"primarykey" json:"id"`
	Group     string `gorm:"size:3;not null" json:"group" binding:"required"`
	Available bool   `gorm:"default:true" json:"available"`
}

type VaccineInventory struct {
	ID        uint   `gorm:"primarykey" json:"id"`
	Type      string `gorm:"not null" json:"type" binding:"required"`
	Available bool   `gorm:"default:true" json:"available"`
}

type Service struct {
	ID          uint   `gorm:"primarykey" json:"id"`
	Name        string `gorm:"not null" json:"name" binding:"required"`
	Description string `json:"description"`
}

type Activity struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Title       string    `gorm:"not null" json:"title" binding:"required"`
	Description string    `json:"description"`
	Date        time.Time `gorm:"not null" json:"date" binding:"required"`
}

type TopDonor struct {
	ID         uint   `gorm:"primarykey" json:"id"`
	Name       string `gorm:"not null" json:"name" binding:"required"`
	BloodGroup string `gorm:"size:3" json:"blood_group" binding:"required"`
	Donations  uint   `json:"donations"`
}

// BloodDonor is the legacy donor roster maintained by staff, separate from
// registered user accounts.
type BloodDonor struct {
	ID              uint       `gorm:"primarykey" json:"id"`
	Name            string     `gorm:"not null" json:"name" binding:"required"`
	Batch           string     `json:"batch"`
	BloodGroup      string     `gorm:"size:3" json:"blood_group" binding:"required"`
	Phone           string     `json:"phone"`
	LastDonatedDate *time.Time `gorm:"type:date" json:"last_donated_date"`
	Gender          string     `json:"gender"`
	CreatedAt       time.Time  `json:"created_at"`
}

type PDFDocument struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	File        string    `gorm:"not null" json:"file"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

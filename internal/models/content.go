package models

import (
	"time"

	"gorm.io/datatypes"
)

// Site content sections edited through the admin surface.

type About struct {
	ID               uint   `gorm:"primarykey" json:"id"`
	Title            string `gorm:"not null" json:"title" binding:"required"`
	Description      string `json:"description"`
	YearsExperience  uint   `json:"years_experience"`
	PatientsServed   string `json:"patients_served"`
	SatisfactionRate string `json:"satisfaction_rate"`

	// Relationships
	Images []Image `gorm:"foreignKey:AboutID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"images"`
}

type Achievement struct {
	ID          uint   `gorm:"primarykey" json:"id"`
	Title       string `gorm:"not null" json:"title" binding:"required"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type TeamMember struct {
	ID        uint   `gorm:"primarykey" json:"id"`
	Name      string `gorm:"not null" json:"name" binding:"required"`
	Role      string `json:"role"`
	Specialty string `json:"specialty"`

	// Relationships
	Images []Image `gorm:"foreignKey:TeamMemberID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"images"`
}

type Mission struct {
	ID          uint   `gorm:"primarykey" json:"id"`
	Title       string `gorm:"not null" json:"title" binding:"required"`
	Description string `json:"description"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Address     string `json:"address"`
}

type HomeAbout struct {
	ID               uint   `gorm:"primarykey" json:"id"`
	Title            string `gorm:"not null" json:"title" binding:"required"`
	Description      string `json:"description"`
	YearsExperience  uint   `json:"years_experience"`
	PatientsServed   string `json:"patients_served"`
	SatisfactionRate string `json:"satisfaction_rate"`

	// Free-form marketing counters rendered by the home page; shape varies
	// per campaign so it is stored as a JSON blob.
	Stats datatypes.JSON `gorm:"type:jsonb" json:"stats"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type MissionStatement struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Statement string    `gorm:"not null" json:"statement" binding:"required"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type HomeAboutAchievement struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Title       string    `gorm:"not null" json:"title" binding:"required"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

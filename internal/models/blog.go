package models

import "gorm.io/gorm"

type Blog struct {
	gorm.Model

	Title     string `gorm:"not null"`
	Slug      string `gorm:"uniqueIndex;not null"`
	Content   string
	Published bool `gorm:"default:false"`

	// Relationships
	Images   []Image       `gorm:"foreignKey:BlogID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Comments []BlogComment `gorm:"foreignKey:BlogID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

type BlogComment struct {
	gorm.Model

	UserID  uint   `gorm:"not null;index"`
	BlogID  uint   `gorm:"not null;index"`
	Comment string `gorm:"not null"`

	// Relationships
	User User `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Blog Blog `gorm:"foreignKey:BlogID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

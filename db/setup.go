package db

import (
	"time"

	"github.com/suhrawardy-med/lifeline/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDatabase(dsn string) error {
	var err error

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		return err
	}

	sqlDB, err := DB.DB()

	if err != nil {
		return err
	}

	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	return nil
}

func MigrateDatabase() error {
	models := []interface{}{
		&models.User{},
		&models.PasswordResetToken{},
		&models.Donation{},
		&models.DonationInterest{},
		&models.BloodRequest{},
		&models.Event{},
		&models.Blog{},
		&models.BlogComment{},
		&models.Image{},
		&models.BloodInventory{},
		&models.VaccineInventory{},
		&models.Service{},
		&models.Activity{},
		&models.TopDonor{},
		&models.BloodDonor{},
		&models.PDFDocument{},
		&models.About{},
		&models.Achievement{},
		&models.TeamMember{},
		&models.Mission{},
		&models.HomeAbout{},
		&models.MissionStatement{},
		&models.HomeAboutAchievement{},
	}

	migrator := DB.Migrator()

	for _, model := range models {
		if !migrator.HasTable(model) {
			if err := DB.AutoMigrate(model); err != nil {
				return err
			}
		}
	}

	return nil
}

package donations

import (
	"errors"
	"time"

	"github.com/suhrawardy-med/lifeline/internal/models"
	"gorm.io/gorm"
)

// CreateDonation validates the spacing rule against the user's existing
// donations and persists the new record. Validation and insert run in one
// transaction so two concurrent requests cannot both pass against a stale
// history.
func CreateDonation(gdb *gorm.DB, userID uint, bloodGroup string, donationDate time.Time, contactInfo, notes string, today time.Time) (*models.Donation, error) {
	var donation models.Donation

	err := gdb.Transaction(func(tx *gorm.DB) error {
		var history []time.Time

		if err := tx.Model(&models.Donation{}).
			Where("user_id = ?", userID).
			Pluck("donation_date", &history).Error; err != nil {
			return err
		}

		if err := CheckSpacing(history, donationDate, today); err != nil {
			return err
		}

		donation = models.Donation{
			UserID:       userID,
			BloodGroup:   bloodGroup,
			DonationDate: dateOnly(donationDate),
			ContactInfo:  contactInfo,
			Notes:        notes,
		}

		if err := tx.Create(&donation).Error; err != nil {
			return err
		}

		return refreshLastDonationDate(tx, userID, donation.DonationDate)
	})

	if err != nil {
		return nil, err
	}

	return &donation, nil
}

// LatestDonationDate returns the date of the user's most recent confirmed
// donation, or nil when none exist.
func LatestDonationDate(gdb *gorm.DB, userID uint) (*time.Time, error) {
	var latest models.Donation

	err := gdb.Where("user_id = ?", userID).
		Order("donation_date DESC").
		First(&latest).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	date := dateOnly(latest.DonationDate)

	return &date, nil
}

// refreshLastDonationDate bumps the user's cached last_donation_date when
// the new date is the most recent seen. The cache is never consulted by
// the spacing rule.
func refreshLastDonationDate(tx *gorm.DB, userID uint, date time.Time) error {
	var user models.User

	if err := tx.First(&user, userID).Error; err != nil {
		return err
	}

	if user.LastDonationDate == nil || date.After(*user.LastDonationDate) {
		return tx.Model(&user).Update("last_donation_date", date).Error
	}

	return nil
}

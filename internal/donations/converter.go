package donations

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/suhrawardy-med/lifeline/internal/models"
	"gorm.io/gorm"
)

var ErrAlreadyConverted = errors.New("interest is already linked to a donation")

// ConvertDueInterests materializes a confirmed donation for every interest
// whose available date has arrived and that has not been converted yet.
// Each interest runs in its own transaction: a failure rolls back that
// interest alone and the batch continues. Returns the number converted.
func ConvertDueInterests(gdb *gorm.DB, today time.Time) (int, error) {
	var due []models.DonationInterest

	err := gdb.Preload("User").
		Where("donation_id IS NULL AND available_date <= ?", dateOnly(today)).
		Order("available_date").
		Find(&due).Error

	if err != nil {
		return 0, err
	}

	converted := 0

	for _, interest := range due {
		if err := convertInterest(gdb, interest); err != nil {
			log.Printf("Failed to convert interest %d: %v", interest.ID, err)
			continue
		}
		converted++
	}

	return converted, nil
}

func convertInterest(gdb *gorm.DB, interest models.DonationInterest) error {
	return gdb.Transaction(func(tx *gorm.DB) error {
		bloodGroup := interest.BloodGroup
		if bloodGroup == "" {
			bloodGroup = interest.User.BloodGroup
		}

		donation := models.Donation{
			UserID:       interest.UserID,
			BloodGroup:   bloodGroup,
			DonationDate: dateOnly(interest.AvailableDate),
			ContactInfo:  interest.ContactInfo,
			Notes:        fmt.Sprintf("Auto-converted from donation interest #%d", interest.ID),
		}

		if err := tx.Create(&donation).Error; err != nil {
			return err
		}

		// The link is write-once: the conditional update refuses to touch
		// an interest that was linked since selection.
		result := tx.Model(&models.DonationInterest{}).
			Where("id = ? AND donation_id IS NULL", interest.ID).
			Update("donation_id", donation.ID)

		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return ErrAlreadyConverted
		}

		return refreshLastDonationDate(tx, interest.UserID, donation.DonationDate)
	})
}

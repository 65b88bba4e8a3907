package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/suhrawardy-med/lifeline/db"
	"github.com/suhrawardy-med/lifeline/internal/donations"
	"github.com/suhrawardy-med/lifeline/internal/models"
	"github.com/suhrawardy-med/lifeline/internal/types"
	"github.com/suhrawardy-med/lifeline/internal/utils"
	"gorm.io/gorm"
)

type CreateDonationRequest struct {
	BloodGroup   string `json:"blood_group"`
	DonationDate string `json:"donation_date" binding:"required"`
	ContactInfo  string `json:"contact_info"`
	Notes        string `json:"notes"`
}

type UpdateDonationRequest struct {
	BloodGroup   string `json:"blood_group"`
	DonationDate string `json:"donation_date" binding:"required"`
	ContactInfo  string `json:"contact_info"`
	Notes        string `json:"notes"`
}

type CreateInterestRequest struct {
	BloodGroup    string `json:"blood_group"`
	AvailableDate string `json:"available_date" binding:"required"`
	ContactInfo   string `json:"contact_info"`
}

type DonationResponse struct {
	ID           uint   `json:"id"`
	UserID       uint   `json:"user_id"`
	BloodGroup   string `json:"blood_group"`
	DonationDate string `json:"donation_date"`
	ContactInfo  string `json:"contact_info"`
	Notes        string `json:"notes"`
	CreatedAt    string `json:"created_at"`
}

type InterestResponse struct {
	ID            uint   `json:"id"`
	UserID        uint   `json:"user_id"`
	BloodGroup    string `json:"blood_group"`
	AvailableDate string `json:"available_date"`
	ContactInfo   string `json:"contact_info"`
	DonationID    *uint  `json:"donation_id"`
}

func newDonationResponse(d *models.Donation) DonationResponse {
	return DonationResponse{
		ID:           d.ID,
		UserID:       d.UserID,
		BloodGroup:   d.BloodGroup,
		DonationDate: d.DonationDate.Format(types.DateLayout),
		ContactInfo:  d.ContactInfo,
		Notes:        d.Notes,
		CreatedAt:    d.CreatedAt.Format(time.RFC3339),
	}
}

func newInterestResponse(i *models.DonationInterest) InterestResponse {
	return InterestResponse{
		ID:            i.ID,
		UserID:        i.UserID,
		BloodGroup:    i.BloodGroup,
		AvailableDate: i.AvailableDate.Format(types.DateLayout),
		ContactInfo:   i.ContactInfo,
		DonationID:    i.DonationID,
	}
}

// donationRuleError maps eligibility failures onto field-scoped 400s.
func donationRuleError(ctx *gin.Context, field string, err error) bool {
	var conflict *donations.ConflictError
	var interestConflict *donations.InterestConflictError

	switch {
	case errors.Is(err, donations.ErrFutureDate):
		fieldError(ctx, field, err.Error())
	case errors.As(err, &conflict):
		fieldError(ctx, field, conflict.Error())
	case errors.As(err, &interestConflict):
		fieldError(ctx, field, interestConflict.Error())
	default:
		return false
	}

	return true
}

func CreateDonation(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var body CreateDonationRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	donationDate, err := parseDate(body.DonationDate)

	if err != nil {
		fieldError(ctx, "donation_date", "Date must be in YYYY-MM-DD format")
		return
	}

	if !types.ValidBloodGroup(body.BloodGroup) {
		fieldError(ctx, "blood_group", "Invalid blood group")
		return
	}

	donation, err := donations.CreateDonation(db.DB, userID, body.BloodGroup, donationDate, body.ContactInfo, body.Notes, time.Now())

	if err != nil {
		if donationRuleError(ctx, "donation_date", err) {
			return
		}
		log.Printf("Failed to create donation: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, newDonationResponse(donation))
}

func MyDonations(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var list []models.Donation

	if err := db.DB.Where("user_id = ?", userID).Order("donation_date DESC").Find(&list).Error; err != nil {
		log.Printf("Failed to list donations: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]DonationResponse, 0, len(list))

	for i := range list {
		response = append(response, newDonationResponse(&list[i]))
	}

	ctx.JSON(http.StatusOK, response)
}

func CreateInterest(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var body CreateInterestRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	availableDate, err := parseDate(body.AvailableDate)

	if err != nil {
		fieldError(ctx, "available_date", "Date must be in YYYY-MM-DD format")
		return
	}

	if !types.ValidBloodGroup(body.BloodGroup) {
		fieldError(ctx, "blood_group", "Invalid blood group")
		return
	}

	latest, err := donations.LatestDonationDate(db.DB, userID)

	if err != nil {
		log.Printf("Failed to fetch latest donation: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if err := donations.CheckInterestDate(latest, availableDate); err != nil {
		donationRuleError(ctx, "available_date", err)
		return
	}

	bloodGroup := body.BloodGroup

	if bloodGroup == "" {
		var user models.User
		if err := db.DB.First(&user, userID).Error; err != nil {
			log.Printf("Failed to fetch user: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		bloodGroup = user.BloodGroup
	}

	interest := models.DonationInterest{
		UserID:        userID,
		BloodGroup:    bloodGroup,
		AvailableDate: availableDate,
		ContactInfo:   body.ContactInfo,
	}

	if err := db.DB.Create(&interest).Error; err != nil {
		log.Printf("Failed to create interest: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, newInterestResponse(&interest))
}

func MyInterests(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var list []models.DonationInterest

	if err := db.DB.Where("user_id = ?", userID).Order("available_date DESC").Find(&list).Error; err != nil {
		log.Printf("Failed to list interests: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]InterestResponse, 0, len(list))

	for i := range list {
		response = append(response, newInterestResponse(&list[i]))
	}

	ctx.JSON(http.StatusOK, response)
}

func AdminListDonations(ctx *gin.Context) {
	var list []models.Donation

	if err := db.DB.Order("donation_date DESC").Find(&list).Error; err != nil {
		log.Printf("Failed to list donations: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]DonationResponse, 0, len(list))

	for i := range list {
		response = append(response, newDonationResponse(&list[i]))
	}

	ctx.JSON(http.StatusOK, response)
}

// AdminUpdateDonation re-validates spacing against the user's other
// donations before moving a record.
func AdminUpdateDonation(ctx *gin.Context) {
	id, ok := paramID(ctx, "id")

	if !ok {
		return
	}

	var body UpdateDonationRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	donationDate, err := parseDate(body.DonationDate)

	if err != nil {
		fieldError(ctx, "donation_date", "Date must be in YYYY-MM-DD format")
		return
	}

	if !types.ValidBloodGroup(body.BloodGroup) {
		fieldError(ctx, "blood_group", "Invalid blood group")
		return
	}

	var donation models.Donation

	if err := db.DB.First(&donation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Donation not found"})
		} else {
			log.Printf("Failed to fetch donation: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		var history []time.Time

		if err := tx.Model(&models.Donation{}).
			Where("user_id = ? AND id != ?", donation.UserID, donation.ID).
			Pluck("donation_date", &history).Error; err != nil {
			return err
		}

		if err := donations.CheckSpacing(history, donationDate, time.Now()); err != nil {
			return err
		}

		donation.BloodGroup = body.BloodGroup
		donation.DonationDate = donationDate
		donation.ContactInfo = body.ContactInfo
		donation.Notes = body.Notes

		return tx.Save(&donation).Error
	})

	if err != nil {
		if donationRuleError(ctx, "donation_date", err) {
			return
		}
		log.Printf("Failed to update donation: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, newDonationResponse(&donation))
}

func AdminDeleteDonation(ctx *gin.Context) {
	id, ok := paramID(ctx, "id")

	if !ok {
		return
	}

	var donation models.Donation

	if err := db.DB.First(&donation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Donation not found"})
		} else {
			log.Printf("Failed to fetch donation: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	if err := db.DB.Delete(&donation).Error; err != nil {
		log.Printf("Failed to delete donation: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.Status(http.StatusNoContent)
}

func AdminListInterests(ctx *gin.Context) {
	var list []models.DonationInterest

	if err := db.DB.Order("available_date").Find(&list).Error; err != nil {
		log.Printf("Failed to list interests: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]InterestResponse, 0, len(list))

	for i := range list {
		response = append(response, newInterestResponse(&list[i]))
	}

	ctx.JSON(http.StatusOK, response)
}

// ConvertInterests promotes every due, unconverted interest into a
// confirmed donation and reports how many were converted.
func ConvertInterests(ctx *gin.Context) {
	count, err := donations.ConvertDueInterests(db.DB, time.Now())

	if err != nil {
		log.Printf("Failed to convert interests: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"converted": count})
}

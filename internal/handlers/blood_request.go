package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/suhrawardy-med/lifeline/db"
	"github.com/suhrawardy-med/lifeline/internal/models"
	"github.com/suhrawardy-med/lifeline/internal/types"
	"github.com/suhrawardy-med/lifeline/internal/utils"
	"gorm.io/gorm"
)

type CreateBloodRequestRequest struct {
	BloodGroup         string `json:"blood_group" binding:"required"`
	Location           string `json:"location" binding:"required"`
	Contact            string `json:"contact" binding:"required"`
	Reason             string `json:"reason"`
	DateRequired       string `json:"date_required" binding:"required"`
	CollectionLocation string `json:"collection_location"`
}

type BloodRequestResponse struct {
	ID                 uint   `json:"id"`
	UserID             uint   `json:"user_id"`
	BloodGroup         string `json:"blood_group"`
	Location           string `json:"location"`
	Contact            string `json:"contact"`
	Reason             string `json:"reason"`
	DateRequired       string `json:"date_required"`
	CollectionLocation string `json:"collection_location"`
	CreatedAt          string `json:"created_at"`
}

func newBloodRequestResponse(r *models.BloodRequest) BloodRequestResponse {
	return BloodRequestResponse{
		ID:                 r.ID,
		UserID:             r.UserID,
		BloodGroup:         r.BloodGroup,
		Location:           r.Location,
		Contact:            r.Contact,
		Reason:             r.Reason,
		DateRequired:       r.DateRequired.Format(types.DateLayout),
		CollectionLocation: r.CollectionLocation,
		CreatedAt:          r.CreatedAt.Format(time.RFC3339),
	}
}

func CreateBloodRequest(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var body CreateBloodRequestRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if !types.ValidBloodGroup(body.BloodGroup) {
		fieldError(ctx, "blood_group", "Invalid blood group")
		return
	}

	dateRequired, err := parseDate(body.DateRequired)

	if err != nil {
		fieldError(ctx, "date_required", "Date must be in YYYY-MM-DD format")
		return
	}

	request := models.BloodRequest{
		UserID:             userID,
		BloodGroup:         body.BloodGroup,
		Location:           body.Location,
		Contact:            body.Contact,
		Reason:             body.Reason,
		DateRequired:       dateRequired,
		CollectionLocation: body.CollectionLocation,
	}

	if err := db.DB.Create(&request).Error; err != nil {
		log.Printf("Failed to create blood request: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, newBloodRequestResponse(&request))
}

func MyBloodRequests(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var list []models.BloodRequest

	if err := db.DB.Where("user_id = ?", userID).Order("date_required").Find(&list).Error; err != nil {
		log.Printf("Failed to list blood requests: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]BloodRequestResponse, 0, len(list))

	for i := range list {
		response = append(response, newBloodRequestResponse(&list[i]))
	}

	ctx.JSON(http.StatusOK, response)
}

func AdminListBloodRequests(ctx *gin.Context) {
	var list []models.BloodRequest

	if err := db.DB.Order("date_required").Find(&list).Error; err != nil {
		log.Printf("Failed to list blood requests: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]BloodRequestResponse, 0, len(list))

	for i := range list {
		response = append(response, newBloodRequestResponse(&list[i]))
	}

	ctx.JSON(http.StatusOK, response)
}

func AdminDeleteBloodRequest(ctx *gin.Context) {
	id, ok := paramID(ctx, "id")

	if !ok {
		return
	}

	var request models.BloodRequest

	if err := db.DB.First(&request, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Blood request not found"})
		} else {
			log.Printf("Failed to fetch blood request: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	if err := db.DB.Delete(&request).Error; err != nil {
		log.Printf("Failed to delete blood request: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.Status(http.StatusNoContent)
}

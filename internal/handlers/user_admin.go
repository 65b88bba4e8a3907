package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/suhrawardy-med/lifeline/db"
	"github.com/suhrawardy-med/lifeline/internal/models"
	"github.com/suhrawardy-med/lifeline/internal/types"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AdminCreateUserRequest struct {
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
	Username        string `json:"username"`
	IsStaff         bool   `json:"is_staff"`
	IsSuperuser     bool   `json:"is_superuser"`
}

type AdminUpdateUserRequest struct {
	Username         *string `json:"username"`
	FirstName        *string `json:"first_name"`
	LastName         *string `json:"last_name"`
	Phone            *string `json:"phone"`
	BloodGroup       *string `json:"blood_group"`
	Address          *string `json:"address"`
	LastDonationDate *string `json:"last_donation_date"`
	IsStaff          *bool   `json:"is_staff"`
	IsSuperuser      *bool   `json:"is_superuser"`
	Password         *string `json:"password"`
}

func AdminListUsers(ctx *gin.Context) {
	var users []models.User

	if err := db.DB.Order("id").Find(&users).Error; err != nil {
		log.Printf("Failed to list users: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]types.UserResponse, 0, len(users))

	for i := range users {
		response = append(response, types.NewUserResponse(&users[i]))
	}

	ctx.JSON(http.StatusOK, response)
}

func AdminCreateUser(ctx *gin.Context) {
	var body AdminCreateUserRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if body.Password != body.ConfirmPassword {
		fieldError(ctx, "password", "Passwords do not match")
		return
	}

	body.Email = strings.ToLower(strings.TrimSpace(body.Email))

	var existing models.User

	err := db.DB.Where("email = ?", body.Email).First(&existing).Error

	if err == nil {
		fieldError(ctx, "email", "Email already exists")
		return
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Database error when checking existing user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)

	if err != nil {
		log.Printf("Failed to hash password: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	// A superuser is always staff.
	if body.IsSuperuser {
		body.IsStaff = true
	}

	user := models.User{
		Email:        body.Email,
		PasswordHash: string(passwordHash),
		Username:     body.Username,
		IsStaff:      body.IsStaff,
		IsSuperuser:  body.IsSuperuser,
	}

	if err := db.DB.Create(&user).Error; err != nil {
		log.Printf("Failed to create user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, types.NewUserResponse(&user))
}

func AdminUpdateUser(ctx *gin.Context) {
	id, ok := paramID(ctx, "id")

	if !ok {
		return
	}

	var user models.User

	if err := db.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			log.Printf("Failed to fetch user: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	var body AdminUpdateUserRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	updates := make(map[string]interface{})

	if body.Username != nil {
		updates["username"] = *body.Username
	}
	if body.FirstName != nil {
		updates["first_name"] = *body.FirstName
	}
	if body.LastName != nil {
		updates["last_name"] = *body.LastName
	}
	if body.Phone != nil {
		updates["phone"] = *body.Phone
	}
	if body.BloodGroup != nil {
		if !types.ValidBloodGroup(*body.BloodGroup) {
			fieldError(ctx, "blood_group", "Invalid blood group")
			return
		}
		updates["blood_group"] = *body.BloodGroup
	}
	if body.Address != nil {
		updates["address"] = *body.Address
	}
	if body.LastDonationDate != nil {
		date, err := parseDate(*body.LastDonationDate)

		if err != nil {
			fieldError(ctx, "last_donation_date", "Date must be in YYYY-MM-DD format")
			return
		}

		if date.After(time.Now()) {
			fieldError(ctx, "last_donation_date", "Last donation date cannot be in the future.")
			return
		}

		updates["last_donation_date"] = date
	}
	if body.IsStaff != nil {
		updates["is_staff"] = *body.IsStaff
	}
	if body.IsSuperuser != nil {
		updates["is_superuser"] = *body.IsSuperuser
		if *body.IsSuperuser {
			updates["is_staff"] = true
		}
	}
	if body.Password != nil {
		if len(*body.Password) < 8 {
			fieldError(ctx, "password", "Password must be at least 8 characters")
			return
		}

		passwordHash, err := bcrypt.GenerateFromPassword([]byte(*body.Password), bcrypt.DefaultCost)

		if err != nil {
			log.Printf("Failed to hash password: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		updates["password_hash"] = string(passwordHash)
	}

	if len(updates) == 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "No valid fields to update"})
		return
	}

	if err := db.DB.Model(&user).Updates(updates).Error; err != nil {
		log.Printf("Failed to update user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if err := db.DB.First(&user, user.ID).Error; err != nil {
		log.Printf("Failed to refresh user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, types.NewUserResponse(&user))
}

func AdminDeleteUser(ctx *gin.Context) {
	id, ok := paramID(ctx, "id")

	if !ok {
		return
	}

	var user models.User

	if err := db.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			log.Printf("Failed to fetch user: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	if err := db.DB.Delete(&user).Error; err != nil {
		log.Printf("Failed to delete user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.Status(http.StatusNoContent)
}

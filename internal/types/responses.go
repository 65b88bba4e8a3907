package types

import (
	"time"

	"github.com/suhrawardy-med/lifeline/internal/models"
)

const DateLayout = "2006-01-02"

type UserResponse struct {
	ID               uint    `json:"id"`
	Email            string  `json:"email"`
	Username         string  `json:"username"`
	FirstName        string  `json:"first_name"`
	LastName         string  `json:"last_name"`
	Name             string  `json:"name"`
	Phone            string  `json:"phone"`
	BloodGroup       string  `json:"blood_group"`
	Address          string  `json:"address"`
	LastDonationDate *string `json:"last_donation_date"`
	IsStaff          bool    `json:"is_staff"`
	IsSuperuser      bool    `json:"is_superuser"`
	DateJoined       string  `json:"date_joined"`
}

func NewUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:               user.ID,
		Email:            user.Email,
		Username:         user.Username,
		FirstName:        user.FirstName,
		LastName:         user.LastName,
		Name:             user.FullName(),
		Phone:            user.Phone,
		BloodGroup:       user.BloodGroup,
		Address:          user.Address,
		LastDonationDate: FormatDatePtr(user.LastDonationDate),
		IsStaff:          user.IsStaff,
		IsSuperuser:      user.IsSuperuser,
		DateJoined:       user.CreatedAt.Format(time.RFC3339),
	}
}

func FormatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateLayout)
	return &s
}

package handlers_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/suhrawardy-med/lifeline/db"
	"github.com/suhrawardy-med/lifeline/internal/models"
	"github.com/suhrawardy-med/lifeline/internal/types"
)

func TestCreateDonationEndpoint(t *testing.T) {
	r := setupAPI(t)
	user := createUser(t, "donor@example.com", false)
	token := tokenFor(t, user)

	first := time.Now().AddDate(0, 0, -100).Format(types.DateLayout)

	w := doJSON(t, r, http.MethodPost, "/api/donations", token, map[string]string{
		"blood_group":   "O+",
		"donation_date": first,
		"contact_info":  "01700000000",
	})

	expectStatus(t, w, http.StatusCreated)

	// 79 days after the first donation: rejected naming the conflict.
	tooSoon := time.Now().AddDate(0, 0, -21).Format(types.DateLayout)

	w = doJSON(t, r, http.MethodPost, "/api/donations", token, map[string]string{
		"blood_group":   "O+",
		"donation_date": tooSoon,
	})

	expectStatus(t, w, http.StatusBadRequest)

	body := decodeBody(t, w)
	errors, ok := body["errors"].(map[string]interface{})

	if !ok {
		t.Fatalf("expected field-scoped errors, got %v", body)
	}

	message, _ := errors["donation_date"].(string)

	if !strings.Contains(message, first) {
		t.Errorf("error %q does not name the conflicting date %s", message, first)
	}

	// 90 days after the first donation: accepted.
	allowed := time.Now().AddDate(0, 0, -10).Format(types.DateLayout)

	w = doJSON(t, r, http.MethodPost, "/api/donations", token, map[string]string{
		"blood_group":   "O+",
		"donation_date": allowed,
	})

	expectStatus(t, w, http.StatusCreated)

	// The cache follows the newest donation.
	if err := db.DB.First(&user, user.ID).Error; err != nil {
		t.Fatalf("failed to reload user: %v", err)
	}
	if got := user.LastDonationDate.Format(types.DateLayout); got != allowed {
		t.Errorf("last_donation_date = %s, want %s", got, allowed)
	}
}

func TestCreateDonationFutureDateEndpoint(t *testing.T) {
	r := setupAPI(t)
	user := createUser(t, "donor@example.com", false)
	token := tokenFor(t, user)

	future := time.Now().AddDate(0, 0, 5).Format(types.DateLayout)

	w := doJSON(t, r, http.MethodPost, "/api/donations", token, map[string]string{
		"donation_date": future,
	})

	expectStatus(t, w, http.StatusBadRequest)
}

func TestCreateInterestDefaultsBloodGroup(t *testing.T) {
	r := setupAPI(t)
	user := createUser(t, "donor@example.com", false)
	token := tokenFor(t, user)

	available := time.Now().AddDate(0, 0, 30).Format(types.DateLayout)

	w := doJSON(t, r, http.MethodPost, "/api/donate-interest", token, map[string]string{
		"available_date": available,
		"contact_info":   "01700000000",
	})

	expectStatus(t, w, http.StatusCreated)

	if body := decodeBody(t, w); body["blood_group"] != "O+" {
		t.Errorf("blood_group = %v, want profile default O+", body["blood_group"])
	}
}

func TestCreateInterestTooSoonAfterDonation(t *testing.T) {
	r := setupAPI(t)
	user := createUser(t, "donor@example.com", false)
	token := tokenFor(t, user)

	donation := models.Donation{
		UserID:       user.ID,
		BloodGroup:   "O+",
		DonationDate: time.Now().AddDate(0, 0, -10),
	}

	if err := db.DB.Create(&donation).Error; err != nil {
		t.Fatalf("failed to create donation: %v", err)
	}

	// 30 days out is still inside the 90-day window.
	available := time.Now().AddDate(0, 0, 30).Format(types.DateLayout)

	w := doJSON(t, r, http.MethodPost, "/api/donate-interest", token, map[string]string{
		"available_date": available,
	})

	expectStatus(t, w, http.StatusBadRequest)

	body := decodeBody(t, w)

	if _, ok := body["errors"].(map[string]interface{})["available_date"]; !ok {
		t.Errorf("expected available_date error, got %v", body)
	}
}

func TestMyDonationsScopedToCaller(t *testing.T) {
	r := setupAPI(t)
	owner := createUser(t, "owner@example.com", false)
	other := createUser(t, "other@example.com", false)

	for i, u := range []models.User{owner, other} {
		donation := models.Donation{
			UserID:       u.ID,
			DonationDate: time.Now().AddDate(0, 0, -10-i),
		}
		if err := db.DB.Create(&donation).Error; err != nil {
			t.Fatalf("failed to create donation: %v", err)
		}
	}

	w := doJSON(t, r, http.MethodGet, "/api/my/donations", tokenFor(t, owner), nil)

	expectStatus(t, w, http.StatusOK)

	if body := w.Body.String(); strings.Count(body, "\"user_id\"") != 1 {
		t.Errorf("expected exactly one donation in response, got %s", body)
	}
}

func TestConvertEndpointAdminOnly(t *testing.T) {
	r := setupAPI(t)
	user := createUser(t, "donor@example.com", false)
	staff := createUser(t, "staff@example.com", true)

	interest := models.DonationInterest{
		UserID:        user.ID,
		BloodGroup:    "O+",
		AvailableDate: time.Now().AddDate(0, 0, -1),
	}

	if err := db.DB.Create(&interest).Error; err != nil {
		t.Fatalf("failed to create interest: %v", err)
	}

	w := doJSON(t, r, http.MethodPost, "/api/admin/interests/convert", tokenFor(t, user), nil)

	expectStatus(t, w, http.StatusForbidden)

	w = doJSON(t, r, http.MethodPost, "/api/admin/interests/convert", tokenFor(t, staff), nil)

	expectStatus(t, w, http.StatusOK)

	if body := decodeBody(t, w); body["converted"] != float64(1) {
		t.Errorf("converted = %v, want 1", body["converted"])
	}

	// Idempotent: a second run finds nothing due.
	w = doJSON(t, r, http.MethodPost, "/api/admin/interests/convert", tokenFor(t, staff), nil)

	expectStatus(t, w, http.StatusOK)

	if body := decodeBody(t, w); body["converted"] != float64(0) {
		t.Errorf("second run converted = %v, want 0", body["converted"])
	}
}

func TestUpcomingEventsSweep(t *testing.T) {
	r := setupAPI(t)

	stale := models.Event{
		Title:    "Yesterday's drive",
		Date:     time.Now().AddDate(0, 0, -1),
		IsActive: true,
	}

	if err := db.DB.Create(&stale).Error; err != nil {
		t.Fatalf("failed to create event: %v", err)
	}

	w := doJSON(t, r, http.MethodGet, "/api/events/upcoming", "", nil)

	expectStatus(t, w, http.StatusOK)

	if strings.Contains(w.Body.String(), "Yesterday's drive") {
		t.Error("past event listed as upcoming")
	}

	if err := db.DB.First(&stale, stale.ID).Error; err != nil {
		t.Fatalf("failed to reload event: %v", err)
	}
	if stale.IsActive {
		t.Error("stale event still active after listing read")
	}
}

func TestAdminUsersGated(t *testing.T) {
	r := setupAPI(t)
	user := createUser(t, "donor@example.com", false)
	staff := createUser(t, "staff@example.com", true)

	w := doJSON(t, r, http.MethodGet, "/api/admin/users", tokenFor(t, user), nil)

	expectStatus(t, w, http.StatusForbidden)

	w = doJSON(t, r, http.MethodGet, "/api/admin/users", tokenFor(t, staff), nil)

	expectStatus(t, w, http.StatusOK)

	if got := strings.Count(w.Body.String(), "\"email\""); got != 2 {
		t.Errorf("expected 2 users in listing, found %d email fields", got)
	}
}

func TestAdminCatalogCRUD(t *testing.T) {
	r := setupAPI(t)
	staff := createUser(t, "staff@example.com", true)
	token := tokenFor(t, staff)

	w := doJSON(t, r, http.MethodPost, "/api/admin/services", token, map[string]string{
		"name":        "Blood screening",
		"description": "Full panel screening",
	})

	expectStatus(t, w, http.StatusCreated)

	body := decodeBody(t, w)
	id := uint(body["id"].(float64))

	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/admin/services/%d", id), token, map[string]string{
		"name":        "Blood screening",
		"description": "Updated description",
	})

	expectStatus(t, w, http.StatusOK)

	// Public listing requires no auth.
	w = doJSON(t, r, http.MethodGet, "/api/services", "", nil)

	expectStatus(t, w, http.StatusOK)

	if !strings.Contains(w.Body.String(), "Updated description") {
		t.Errorf("public listing missing updated record: %s", w.Body.String())
	}

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/admin/services/%d", id), token, nil)

	expectStatus(t, w, http.StatusNoContent)
}

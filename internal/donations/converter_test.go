package donations

import (
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/suhrawardy-med/lifeline/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})

	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = gdb.AutoMigrate(&models.User{}, &models.Donation{}, &models.DonationInterest{})

	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return gdb
}

func testUser(t *testing.T, gdb *gorm.DB, bloodGroup string) models.User {
	t.Helper()

	user := models.User{
		Email:        "donor@example.com",
		PasswordHash: "x",
		BloodGroup:   bloodGroup,
	}

	if err := gdb.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user
}

// The scenario from the rulebook: an interest due yesterday converts once
// and only once.
func TestConvertDueInterests(t *testing.T) {
	gdb := testDB(t)
	user := testUser(t, gdb, "O+")

	interest := models.DonationInterest{
		UserID:        user.ID,
		BloodGroup:    "A+",
		AvailableDate: date("2024-06-01"),
		ContactInfo:   "01700000000",
	}

	if err := gdb.Create(&interest).Error; err != nil {
		t.Fatalf("failed to create interest: %v", err)
	}

	count, err := ConvertDueInterests(gdb, date("2024-06-02"))

	if err != nil {
		t.Fatalf("ConvertDueInterests: %v", err)
	}
	if count != 1 {
		t.Fatalf("converted = %d, want 1", count)
	}

	var donation models.Donation

	if err := gdb.Where("user_id = ?", user.ID).First(&donation).Error; err != nil {
		t.Fatalf("donation not created: %v", err)
	}
	if got := donation.DonationDate.Format(DateLayout); got != "2024-06-01" {
		t.Errorf("donation date = %s, want 2024-06-01", got)
	}
	if donation.BloodGroup != "A+" {
		t.Errorf("blood group = %s, want the interest's A+", donation.BloodGroup)
	}
	if donation.Notes == "" {
		t.Error("generated note referencing the interest is missing")
	}

	if err := gdb.First(&interest, interest.ID).Error; err != nil {
		t.Fatalf("failed to reload interest: %v", err)
	}
	if interest.DonationID == nil || *interest.DonationID != donation.ID {
		t.Errorf("interest link = %v, want %d", interest.DonationID, donation.ID)
	}

	// Second run selects nothing.
	count, err = ConvertDueInterests(gdb, date("2024-06-02"))

	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if count != 0 {
		t.Errorf("second run converted = %d, want 0", count)
	}

	var donationCount int64

	gdb.Model(&models.Donation{}).Count(&donationCount)

	if donationCount != 1 {
		t.Errorf("donation rows = %d, want 1", donationCount)
	}
}

func TestConvertSkipsNotDue(t *testing.T) {
	gdb := testDB(t)
	user := testUser(t, gdb, "O+")

	interest := models.DonationInterest{
		UserID:        user.ID,
		AvailableDate: date("2024-06-10"),
	}

	if err := gdb.Create(&interest).Error; err != nil {
		t.Fatalf("failed to create interest: %v", err)
	}

	count, err := ConvertDueInterests(gdb, date("2024-06-02"))

	if err != nil {
		t.Fatalf("ConvertDueInterests: %v", err)
	}
	if count != 0 {
		t.Errorf("converted = %d, want 0 for a future interest", count)
	}
}

func TestConvertBloodGroupFallback(t *testing.T) {
	gdb := testDB(t)
	user := testUser(t, gdb, "B-")

	interest := models.DonationInterest{
		UserID:        user.ID,
		AvailableDate: date("2024-06-01"),
	}

	if err := gdb.Create(&interest).Error; err != nil {
		t.Fatalf("failed to create interest: %v", err)
	}

	if _, err := ConvertDueInterests(gdb, date("2024-06-02")); err != nil {
		t.Fatalf("ConvertDueInterests: %v", err)
	}

	var donation models.Donation

	if err := gdb.Where("user_id = ?", user.ID).First(&donation).Error; err != nil {
		t.Fatalf("donation not created: %v", err)
	}
	if donation.BloodGroup != "B-" {
		t.Errorf("blood group = %s, want profile fallback B-", donation.BloodGroup)
	}
}

func TestConvertRefreshesLastDonationDate(t *testing.T) {
	gdb := testDB(t)
	user := testUser(t, gdb, "O+")

	earlier := date("2024-01-01")

	if err := gdb.Model(&user).Update("last_donation_date", earlier).Error; err != nil {
		t.Fatalf("failed to seed cache: %v", err)
	}

	interests := []models.DonationInterest{
		{UserID: user.ID, AvailableDate: date("2024-06-01")},
		{UserID: user.ID, AvailableDate: date("2024-01-15")},
	}

	for i := range interests {
		if err := gdb.Create(&interests[i]).Error; err != nil {
			t.Fatalf("failed to create interest: %v", err)
		}
	}

	count, err := ConvertDueInterests(gdb, date("2024-06-02"))

	if err != nil {
		t.Fatalf("ConvertDueInterests: %v", err)
	}
	if count != 2 {
		t.Fatalf("converted = %d, want 2", count)
	}

	if err := gdb.First(&user, user.ID).Error; err != nil {
		t.Fatalf("failed to reload user: %v", err)
	}
	if user.LastDonationDate == nil {
		t.Fatal("last_donation_date not set")
	}
	if got := user.LastDonationDate.Format(DateLayout); got != "2024-06-01" {
		t.Errorf("last_donation_date = %s, want the max donation date 2024-06-01", got)
	}
}

func TestConvertWriteOnceLink(t *testing.T) {
	gdb := testDB(t)
	user := testUser(t, gdb, "O+")

	existing := models.Donation{UserID: user.ID, DonationDate: date("2024-05-01")}

	if err := gdb.Create(&existing).Error; err != nil {
		t.Fatalf("failed to create donation: %v", err)
	}

	interest := models.DonationInterest{
		UserID:        user.ID,
		AvailableDate: date("2024-06-01"),
		DonationID:    &existing.ID,
	}

	if err := gdb.Create(&interest).Error; err != nil {
		t.Fatalf("failed to create interest: %v", err)
	}

	// Already-linked interests never reconvert, even when due.
	count, err := ConvertDueInterests(gdb, date("2024-06-02"))

	if err != nil {
		t.Fatalf("ConvertDueInterests: %v", err)
	}
	if count != 0 {
		t.Errorf("converted = %d, want 0 for a linked interest", count)
	}

	// The conditional update refuses to overwrite a link set after
	// selection.
	interest.DonationID = nil

	err = convertInterest(gdb, interest)

	if !errors.Is(err, ErrAlreadyConverted) {
		t.Errorf("expected ErrAlreadyConverted for a stale selection, got %v", err)
	}

	var donationCount int64

	gdb.Model(&models.Donation{}).Count(&donationCount)

	if donationCount != 1 {
		t.Errorf("donation rows = %d, want 1 (rolled back)", donationCount)
	}
}

package events

import (
	"testing"
	"time"

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

	if err := gdb.AutoMigrate(&models.Event{}, &models.Image{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return gdb
}

func TestUpcomingSweepsStaleEvents(t *testing.T) {
	gdb := testDB(t)
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	past := models.Event{Title: "Past drive", Date: now.AddDate(0, 0, -1), IsActive: true}
	future := models.Event{Title: "Future drive", Date: now.AddDate(0, 0, 7), IsActive: true}

	for _, e := range []*models.Event{&past, &future} {
		if err := gdb.Create(e).Error; err != nil {
			t.Fatalf("failed to create event: %v", err)
		}
	}

	upcoming, err := Upcoming(gdb, now)

	if err != nil {
		t.Fatalf("Upcoming: %v", err)
	}

	if len(upcoming) != 1 || upcoming[0].ID != future.ID {
		t.Fatalf("upcoming = %v, want only the future event", upcoming)
	}

	// The stale flag was rewritten, not just filtered out.
	if err := gdb.First(&past, past.ID).Error; err != nil {
		t.Fatalf("failed to reload event: %v", err)
	}
	if past.IsActive {
		t.Error("past event still marked active after sweep")
	}

	// And it never reappears in upcoming.
	upcoming, err = Upcoming(gdb, now)

	if err != nil {
		t.Fatalf("second Upcoming: %v", err)
	}
	for _, e := range upcoming {
		if e.ID == past.ID {
			t.Error("past event reappeared in upcoming")
		}
	}
}

func TestPastOrdering(t *testing.T) {
	gdb := testDB(t)
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	older := models.Event{Title: "Older", Date: now.AddDate(0, -2, 0), IsActive: true}
	newer := models.Event{Title: "Newer", Date: now.AddDate(0, 0, -3), IsActive: true}

	for _, e := range []*models.Event{&older, &newer} {
		if err := gdb.Create(e).Error; err != nil {
			t.Fatalf("failed to create event: %v", err)
		}
	}

	past, err := Past(gdb, now)

	if err != nil {
		t.Fatalf("Past: %v", err)
	}

	if len(past) != 2 {
		t.Fatalf("past = %d events, want 2", len(past))
	}
	if past[0].ID != newer.ID {
		t.Errorf("past listing must be most-recent-first, got %q first", past[0].Title)
	}
}

func TestRefreshActivityLeavesFutureAlone(t *testing.T) {
	gdb := testDB(t)
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	future := models.Event{Title: "Future", Date: now.AddDate(0, 1, 0), IsActive: true}

	if err := gdb.Create(&future).Error; err != nil {
		t.Fatalf("failed to create event: %v", err)
	}

	if err := RefreshActivity(gdb, now); err != nil {
		t.Fatalf("RefreshActivity: %v", err)
	}

	if err := gdb.First(&future, future.ID).Error; err != nil {
		t.Fatalf("failed to reload event: %v", err)
	}
	if !future.IsActive {
		t.Error("future event must stay active")
	}
}

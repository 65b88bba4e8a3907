// Package events derives an event's active flag from wall-clock time.
// There is no background scheduler: listings sweep stale flags before
// reading, so the flag reflects the date as of the last read.
package events

import (
	"time"

	"github.com/suhrawardy-med/lifeline/internal/models"
	"gorm.io/gorm"
)

// RefreshActivity marks every active event whose date has passed as
// inactive.
func RefreshActivity(gdb *gorm.DB, now time.Time) error {
	return gdb.Model(&models.Event{}).
		Where("is_active = ? AND date < ?", true, now).
		Update("is_active", false).Error
}

// Upcoming sweeps stale flags, then returns active events soonest-first.
func Upcoming(gdb *gorm.DB, now time.Time) ([]models.Event, error) {
	if err := RefreshActivity(gdb, now); err != nil {
		return nil, err
	}

	var list []models.Event

	err := gdb.Preload("Images").
		Where("is_active = ?", true).
		Order("date ASC").
		Find(&list).Error

	return list, err
}

// Past sweeps stale flags, then returns inactive events most-recent-first.
func Past(gdb *gorm.DB, now time.Time) ([]models.Event, error) {
	if err := RefreshActivity(gdb, now); err != nil {
		return nil, err
	}

	var list []models.Event

	err := gdb.Preload("Images").
		Where("is_active = ?", false).
		Order("date DESC").
		Find(&list).Error

	return list, err
}

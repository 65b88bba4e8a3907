// Package donations holds the donation-eligibility rule and the operations
// that write donation records. The spacing predicates are pure so they can
// be tested without a database.
package donations

import (
	"errors"
	"fmt"
	"time"
)

// MinGapDays is the minimum spacing between two donations by the same user.
const MinGapDays = 90

const DateLayout = "2006-01-02"

var ErrFutureDate = errors.New("Donation date cannot be in the future.")

// ConflictError reports the existing donation that a candidate date sits
// too close to.
type ConflictError struct {
	Conflict time.Time
	// Previous is true when the conflicting donation precedes the
	// candidate date.
	Previous bool
}

func (e *ConflictError) Error() string {
	date := e.Conflict.Format(DateLayout)
	if e.Previous {
		return fmt.Sprintf("You must wait 3 months after your previous donation on %s.", date)
	}
	return fmt.Sprintf("This date conflicts with an existing donation on %s (less than 3 months apart).", date)
}

// InterestConflictError reports a too-early available_date on a new
// donation interest.
type InterestConflictError struct {
	LastDonation time.Time
}

func (e *InterestConflictError) Error() string {
	return fmt.Sprintf("You can donate only after 3 months from your last donation on %s.", e.LastDonation.Format(DateLayout))
}

// CheckSpacing validates a candidate donation date against the user's full
// donation history. The check is symmetric: the candidate must clear
// MinGapDays from its nearest neighbor on both sides, so back-dating a
// donation between two existing ones is allowed as long as both gaps hold.
// history does not need to be sorted.
func CheckSpacing(history []time.Time, candidate, today time.Time) error {
	candidate = dateOnly(candidate)

	if candidate.After(dateOnly(today)) {
		return ErrFutureDate
	}

	var prev, next *time.Time

	for _, d := range history {
		d := dateOnly(d)
		switch {
		case d.Equal(candidate):
			return &ConflictError{Conflict: d, Previous: true}
		case d.Before(candidate):
			if prev == nil || d.After(*prev) {
				prev = &d
			}
		default:
			if next == nil || d.Before(*next) {
				next = &d
			}
		}
	}

	if prev != nil && candidate.Before(prev.AddDate(0, 0, MinGapDays)) {
		return &ConflictError{Conflict: *prev, Previous: true}
	}

	if next != nil && next.Before(candidate.AddDate(0, 0, MinGapDays)) {
		return &ConflictError{Conflict: *next}
	}

	return nil
}

// CheckInterestDate validates a new interest's available date. Only the
// latest confirmed donation is considered; pending interests do not count.
func CheckInterestDate(latestDonation *time.Time, availableDate time.Time) error {
	if latestDonation == nil {
		return nil
	}

	last := dateOnly(*latestDonation)

	if dateOnly(availableDate).Before(last.AddDate(0, 0, MinGapDays)) {
		return &InterestConflictError{LastDonation: last}
	}

	return nil
}

// CanDonate reports whether a user whose most recent donation was on
// lastDonation may donate today.
func CanDonate(lastDonation *time.Time, today time.Time) bool {
	if lastDonation == nil {
		return true
	}
	return !dateOnly(today).Before(dateOnly(*lastDonation).AddDate(0, 0, MinGapDays))
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

package donations

import (
	"errors"
	"testing"
	"time"
)

func date(value string) time.Time {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		panic(err)
	}
	return t
}

var today = date("2024-12-31")

func TestCheckSpacingEmptyHistory(t *testing.T) {
	if err := CheckSpacing(nil, date("2024-06-01"), today); err != nil {
		t.Fatalf("expected empty history to pass, got %v", err)
	}
}

func TestCheckSpacingFutureDate(t *testing.T) {
	err := CheckSpacing(nil, date("2025-01-01"), today)

	if !errors.Is(err, ErrFutureDate) {
		t.Fatalf("expected ErrFutureDate, got %v", err)
	}
}

func TestCheckSpacingTodayAllowed(t *testing.T) {
	if err := CheckSpacing(nil, today, today); err != nil {
		t.Fatalf("donating today must be allowed, got %v", err)
	}
}

// The scenario from the rulebook: one donation on 2024-01-01, a request 79
// days later is rejected naming that donation, a request 91 days later
// passes.
func TestCheckSpacingNinetyDayGap(t *testing.T) {
	history := []time.Time{date("2024-01-01")}

	err := CheckSpacing(history, date("2024-03-20"), today)

	var conflict *ConflictError

	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
	if !conflict.Conflict.Equal(date("2024-01-01")) {
		t.Errorf("conflict date = %v, want 2024-01-01", conflict.Conflict)
	}
	if !conflict.Previous {
		t.Error("conflict should point at the previous donation")
	}

	if err := CheckSpacing(history, date("2024-04-01"), today); err != nil {
		t.Fatalf("91-day gap must pass, got %v", err)
	}
}

func TestCheckSpacingExactBoundary(t *testing.T) {
	history := []time.Time{date("2024-01-01")}

	// Day 90 exactly is allowed; day 89 is not.
	if err := CheckSpacing(history, date("2024-03-31"), today); err != nil {
		t.Fatalf("exactly 90 days must pass, got %v", err)
	}
	if err := CheckSpacing(history, date("2024-03-30"), today); err == nil {
		t.Fatal("89 days must be rejected")
	}
}

func TestCheckSpacingSameDate(t *testing.T) {
	history := []time.Time{date("2024-01-01")}

	if err := CheckSpacing(history, date("2024-01-01"), today); err == nil {
		t.Fatal("duplicate date must be rejected")
	}
}

// Back-dating between two donations 200 days apart: only the interval
// clearing 90 days from both neighbors is allowed.
func TestCheckSpacingBetweenNeighbors(t *testing.T) {
	history := []time.Time{date("2024-01-01"), date("2024-07-19")}

	tests := []struct {
		candidate string
		wantOK    bool
		conflict  string
	}{
		{"2024-04-10", true, ""},
		{"2024-03-31", true, ""}, // lower bound: D1 + 90
		{"2024-04-20", true, ""}, // upper bound: D2 - 90
		{"2024-03-20", false, "2024-01-01"},
		{"2024-05-01", false, "2024-07-19"},
		{"2023-12-01", false, "2024-01-01"},
	}

	for _, tt := range tests {
		err := CheckSpacing(history, date(tt.candidate), today)

		if tt.wantOK {
			if err != nil {
				t.Errorf("candidate %s: expected ok, got %v", tt.candidate, err)
			}
			continue
		}

		var conflict *ConflictError

		if !errors.As(err, &conflict) {
			t.Errorf("candidate %s: expected ConflictError, got %v", tt.candidate, err)
			continue
		}

		if got := conflict.Conflict.Format(DateLayout); got != tt.conflict {
			t.Errorf("candidate %s: conflict = %s, want %s", tt.candidate, got, tt.conflict)
		}
	}
}

func TestCheckSpacingUnsortedHistory(t *testing.T) {
	history := []time.Time{date("2024-07-19"), date("2024-01-01")}

	if err := CheckSpacing(history, date("2024-04-10"), today); err != nil {
		t.Fatalf("expected ok with unsorted history, got %v", err)
	}
}

func TestCheckInterestDate(t *testing.T) {
	if err := CheckInterestDate(nil, date("2024-01-02")); err != nil {
		t.Fatalf("no prior donation must pass, got %v", err)
	}

	last := date("2024-01-01")

	err := CheckInterestDate(&last, date("2024-03-20"))

	var conflict *InterestConflictError

	if !errors.As(err, &conflict) {
		t.Fatalf("expected InterestConflictError, got %v", err)
	}
	if !conflict.LastDonation.Equal(last) {
		t.Errorf("conflict names %v, want %v", conflict.LastDonation, last)
	}

	if err := CheckInterestDate(&last, date("2024-03-31")); err != nil {
		t.Fatalf("available date at 90 days must pass, got %v", err)
	}
}

func TestCanDonate(t *testing.T) {
	if !CanDonate(nil, today) {
		t.Error("user with no donations can donate")
	}

	recent := date("2024-12-01")

	if CanDonate(&recent, today) {
		t.Error("donation 30 days ago must block donating")
	}

	old := date("2024-01-01")

	if !CanDonate(&old, today) {
		t.Error("donation a year ago must not block donating")
	}
}

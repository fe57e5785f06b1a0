package availability

import (
	"errors"
	"testing"

	"eventcraft/models"
)

func record() *models.Availability {
	return &models.Availability{
		ID:             SingletonID,
		AvailableDates: []string{},
		BookedDates:    []string{},
	}
}

func TestMarkAvailableThenBookedConflicts(t *testing.T) {
	a := record()

	if err := MarkAvailable(a, "2026-09-01"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := MarkAvailable(a, "2026-09-01"); !errors.Is(err, ErrAlreadyAvailable) {
		t.Fatalf("expected ErrAlreadyAvailable, got %v", err)
	}
	if err := MarkBooked(a, "2026-09-01"); !errors.Is(err, ErrConflictAvailable) {
		t.Fatalf("expected ErrConflictAvailable, got %v", err)
	}

	// unmarking frees the date for the other set
	UnmarkAvailable(a, "2026-09-01")
	if err := MarkBooked(a, "2026-09-01"); err != nil {
		t.Fatalf("unexpected error after unmark: %v", err)
	}
	if err := MarkAvailable(a, "2026-09-01"); !errors.Is(err, ErrConflictBooked) {
		t.Fatalf("expected ErrConflictBooked, got %v", err)
	}
}

func TestSetsStayDisjoint(t *testing.T) {
	a := record()
	ops := []struct {
		book bool
		date string
	}{
		{false, "2026-01-01"},
		{true, "2026-01-02"},
		{false, "2026-01-03"},
		{true, "2026-01-01"}, // conflicts, must not land
	}
	for _, op := range ops {
		if op.book {
			MarkBooked(a, op.date)
		} else {
			MarkAvailable(a, op.date)
		}
	}
	for _, d := range a.AvailableDates {
		for _, b := range a.BookedDates {
			if d == b {
				t.Fatalf("date %s is in both sets", d)
			}
		}
	}
}

func TestUnmarkIsIdempotent(t *testing.T) {
	a := record()
	UnmarkAvailable(a, "2026-09-01")
	UnmarkBooked(a, "2026-09-01")
	if len(a.AvailableDates) != 0 || len(a.BookedDates) != 0 {
		t.Fatal("unmark of absent date must be a no-op")
	}
}

// "available" means "not booked": a date in neither set still reports
// available=true.
func TestCheckDateAvailableMeansNotBooked(t *testing.T) {
	a := record()
	MarkAvailable(a, "2026-09-01")
	MarkBooked(a, "2026-09-02")

	unset := CheckDate(a, "2026-12-25")
	if !unset.Available || unset.IsBooked || unset.IsAvailable {
		t.Fatalf("unset date: got %+v", unset)
	}

	avail := CheckDate(a, "2026-09-01")
	if !avail.Available || avail.IsBooked || !avail.IsAvailable {
		t.Fatalf("available date: got %+v", avail)
	}

	booked := CheckDate(a, "2026-09-02")
	if booked.Available || !booked.IsBooked || booked.IsAvailable {
		t.Fatalf("booked date: got %+v", booked)
	}
}

func TestValidateDisjoint(t *testing.T) {
	if err := ValidateDisjoint([]string{"2026-01-01"}, []string{"2026-01-02"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidateDisjoint([]string{"2026-01-01"}, []string{"2026-01-01"}); !errors.Is(err, ErrSetsOverlap) {
		t.Fatalf("expected ErrSetsOverlap, got %v", err)
	}
}

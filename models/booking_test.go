package models

import "testing"

func TestValidStatusTransition(t *testing.T) {
	cases := []struct {
		from, next string
		want       bool
	}{
		{BookingPending, BookingApproved, true},
		{BookingPending, BookingRejected, true},
		{BookingApproved, BookingRejected, true},
		{BookingRejected, BookingApproved, true},
		{BookingApproved, BookingPending, false},
		{BookingRejected, BookingPending, false},
		{BookingPending, "cancelled", false},
		// same status is a notes-only update
		{BookingPending, BookingPending, true},
		{BookingApproved, BookingApproved, true},
		{BookingRejected, BookingRejected, true},
	}

	for _, c := range cases {
		if got := ValidStatusTransition(c.from, c.next); got != c.want {
			t.Errorf("ValidStatusTransition(%q, %q) = %v, want %v", c.from, c.next, got, c.want)
		}
	}
}

package availability

import (
	"errors"
	"slices"

	"eventcraft/models"
)

// SingletonID is the well-known id of the one availability record.
const SingletonID = "availability"

var (
	ErrAlreadyAvailable  = errors.New("Date is already in available dates")
	ErrAlreadyBooked     = errors.New("Date is already in booked dates")
	ErrConflictBooked    = errors.New("Date is already booked")
	ErrConflictAvailable = errors.New("Date is already available")
	ErrSetsOverlap       = errors.New("Available and booked dates must not overlap")
)

// A date is in exactly one of three states: available, booked, or unset.
// The mark/unmark functions below keep the two sets disjoint.

func MarkAvailable(a *models.Availability, date string) error {
	if slices.Contains(a.AvailableDates, date) {
		return ErrAlreadyAvailable
	}
	if slices.Contains(a.BookedDates, date) {
		return ErrConflictBooked
	}
	a.AvailableDates = append(a.AvailableDates, date)
	return nil
}

func MarkBooked(a *models.Availability, date string) error {
	if slices.Contains(a.BookedDates, date) {
		return ErrAlreadyBooked
	}
	if slices.Contains(a.AvailableDates, date) {
		return ErrConflictAvailable
	}
	a.BookedDates = append(a.BookedDates, date)
	return nil
}

// UnmarkAvailable removes a date from the available set. Absence is not an
// error.
func UnmarkAvailable(a *models.Availability, date string) {
	a.AvailableDates = slices.DeleteFunc(a.AvailableDates, func(d string) bool {
		return d == date
	})
}

func UnmarkBooked(a *models.Availability, date string) {
	a.BookedDates = slices.DeleteFunc(a.BookedDates, func(d string) bool {
		return d == date
	})
}

type DateStatus struct {
	Available   bool   `json:"available"`
	IsBooked    bool   `json:"isBooked"`
	IsAvailable bool   `json:"isAvailable"`
	Date        string `json:"date"`
}

// CheckDate reports the state of a date. "available" means "not booked":
// a date in neither set still reports available=true.
func CheckDate(a *models.Availability, date string) DateStatus {
	isBooked := slices.Contains(a.BookedDates, date)
	return DateStatus{
		Available:   !isBooked,
		IsBooked:    isBooked,
		IsAvailable: slices.Contains(a.AvailableDates, date),
		Date:        date,
	}
}

// ValidateDisjoint rejects bulk writes where a date appears in both sets.
func ValidateDisjoint(available, booked []string) error {
	for _, d := range available {
		if slices.Contains(booked, d) {
			return ErrSetsOverlap
		}
	}
	return nil
}

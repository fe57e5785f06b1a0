package models

import "time"

const (
	BookingPending  = "pending"
	BookingApproved = "approved"
	BookingRejected = "rejected"
)

// SelectedOption is a priced-option snapshot frozen into a customized
// booking at submission time. It is never re-derived from the live catalog.
type SelectedOption struct {
	Name      string  `json:"name" bson:"name"`
	Price     float64 `json:"price" bson:"price"`
	PerPerson bool    `json:"perPerson" bson:"perPerson"`
	Margin    float64 `json:"margin" bson:"margin"`
}

type PackageBooking struct {
	BookingID       string    `json:"bookingid" bson:"bookingid"`
	Name            string    `json:"name" bson:"name"`
	Email           string    `json:"email" bson:"email"`
	Phone           string    `json:"phone" bson:"phone"`
	EventType       string    `json:"eventType" bson:"eventType"`
	EventDate       string    `json:"eventDate" bson:"eventDate"`
	GuestCount      int       `json:"guestCount" bson:"guestCount"`
	SpecialRequests string    `json:"specialRequests,omitempty" bson:"specialRequests,omitempty"`
	PackageName     string    `json:"packageName" bson:"packageName"`
	PackagePrice    float64   `json:"packagePrice" bson:"packagePrice"`
	Status          string    `json:"status" bson:"status"`
	AdminNotes      string    `json:"adminNotes,omitempty" bson:"adminNotes,omitempty"`
	UserID          string    `json:"userId" bson:"userId"`
	SubmittedAt     time.Time `json:"submittedAt" bson:"submittedAt"`
}

type CustomizedBooking struct {
	BookingID        string                      `json:"bookingid" bson:"bookingid"`
	Name             string                      `json:"name" bson:"name"`
	Email            string                      `json:"email" bson:"email"`
	Phone            string                      `json:"phone" bson:"phone"`
	EventType        string                      `json:"eventType" bson:"eventType"`
	EventDate        string                      `json:"eventDate" bson:"eventDate"`
	GuestCount       int                         `json:"guestCount" bson:"guestCount"`
	SpecialRequests  string                      `json:"specialRequests,omitempty" bson:"specialRequests,omitempty"`
	Budget           float64                     `json:"budget" bson:"budget"`
	HasNegotiated    bool                        `json:"hasNegotiated" bson:"hasNegotiated"`
	SelectedServices map[string][]SelectedOption `json:"selectedServices" bson:"selectedServices"`
	Status           string                      `json:"status" bson:"status"`
	AdminNotes       string                      `json:"adminNotes,omitempty" bson:"adminNotes,omitempty"`
	UserID           string                      `json:"userId" bson:"userId"`
	SubmittedAt      time.Time                   `json:"submittedAt" bson:"submittedAt"`
}

// ValidStatusTransition reports whether a booking may move from to next.
// Pending may resolve either way and an admin may flip a resolved booking
// between approved and rejected, but nothing returns to pending. Keeping
// the same status is always fine; that is how a notes-only update looks.
func ValidStatusTransition(from, next string) bool {
	if from == next {
		return true
	}
	switch next {
	case BookingApproved, BookingRejected:
		return true
	default:
		return false
	}
}

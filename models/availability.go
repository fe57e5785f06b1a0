package models

import "time"

// Availability is the single shared record tracking which calendar dates
// are explicitly available vs. booked. Dates are canonical YYYY-MM-DD
// strings; the two sets must stay disjoint.
type Availability struct {
	ID             string    `json:"id" bson:"id"`
	AvailableDates []string  `json:"availableDates" bson:"availableDates"`
	BookedDates    []string  `json:"bookedDates" bson:"bookedDates"`
	Notes          string    `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt      time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt" bson:"updatedAt"`
}

package models

import "time"

// Deal is a fixed bundle of services at one price. Deletion is soft:
// IsActive flips to false and the document stays retrievable by id.
type Deal struct {
	DealID      string    `json:"dealid" bson:"dealid"`
	Name        string    `json:"name" bson:"name"`
	Price       float64   `json:"price" bson:"price"`
	Services    []string  `json:"services" bson:"services"`
	IsActive    bool      `json:"isActive" bson:"isActive"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}

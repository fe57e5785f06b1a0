package models

import "time"

type Service struct {
	ServiceID   string    `json:"serviceid" bson:"serviceid"`
	Icon        string    `json:"icon" bson:"icon"` // e.g. "Building"
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description" bson:"description"`
	Features    []string  `json:"features" bson:"features"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}

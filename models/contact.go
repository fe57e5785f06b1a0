package models

import "time"

type ContactSubmission struct {
	ContactID   string    `json:"contactid" bson:"contactid"`
	Name        string    `json:"name" bson:"name"`
	Email       string    `json:"email" bson:"email"`
	Phone       string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Subject     string    `json:"subject,omitempty" bson:"subject,omitempty"`
	Message     string    `json:"message" bson:"message"`
	SubmittedAt time.Time `json:"submittedAt" bson:"submittedAt"`
}

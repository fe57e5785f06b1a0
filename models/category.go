package models

import "time"

// ServiceOption is an a-la-carte priced service inside a category. Margin is
// the negotiable portion of the price.
type ServiceOption struct {
	OptionID  string  `json:"optionid" bson:"optionid"`
	Name      string  `json:"name" bson:"name"`
	Price     float64 `json:"price" bson:"price"`
	PerPerson bool    `json:"perPerson" bson:"perPerson"`
	Margin    float64 `json:"margin" bson:"margin"`
}

type ServiceCategory struct {
	CategoryID string          `json:"categoryid" bson:"categoryid"`
	Name       string          `json:"name" bson:"name"`
	Options    []ServiceOption `json:"options" bson:"options"`
	CreatedAt  time.Time       `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt" bson:"updatedAt"`
}

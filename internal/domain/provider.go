package domain

import "time"

type Provider struct {
	ID          string `json:"id"`
	UserID      string `json:"userId"`
	Specialty   string `json:"specialty" validate:"required"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location" validate:"required"`

	ServiceRadius int     `json:"serviceRadius"`
	HourlyRate    float64 `json:"hourlyRate" validate:"gte=0"`

	IsApproved  bool `json:"isApproved"`
	IsAvailable bool `json:"isAvailable"`

	// Rating and ReviewCount are maintained by the review aggregate
	// recomputation and never accepted from client input.
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"reviewCount"`

	// Categories holds canonical category IDs, normalized at write time.
	Categories []string `json:"categories"`

	YearsExperience int       `json:"yearsExperience,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

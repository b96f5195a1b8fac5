package booking

import "localfix/internal/domain"

// CreateBookingRequest is deliberately loose at the binding layer; the
// service validates presence field by field so each missing field gets its
// own error message.
type CreateBookingRequest struct {
	ProviderID         string `json:"providerId"`
	ServiceDescription string `json:"serviceDescription"`
	ScheduledDate      string `json:"scheduledDate"`
	ScheduledTime      string `json:"scheduledTime"`
	CustomerAddress    string `json:"customerAddress"`
	CustomerPhone      string `json:"customerPhone"`
	EstimatedDuration  int    `json:"estimatedDuration"`
	Notes              string `json:"notes"`
}

// UpdateBookingRequest is a partial patch; nil fields are untouched.
type UpdateBookingRequest struct {
	Status             *string `json:"status"`
	ServiceDescription *string `json:"serviceDescription"`
	ScheduledDate      *string `json:"scheduledDate"`
	ScheduledTime      *string `json:"scheduledTime"`
	CustomerAddress    *string `json:"customerAddress"`
	CustomerPhone      *string `json:"customerPhone"`
	EstimatedDuration  *int    `json:"estimatedDuration"`
	Notes              *string `json:"notes"`
}

// ProviderDetails is the provider row plus its user's names, as embedded
// in booking listings.
type ProviderDetails struct {
	domain.Provider
	User *domain.UserSummary `json:"user"`
}

// BookingDetails is a booking enriched with customer and provider
// summaries. Name and email fields only; never password material.
type BookingDetails struct {
	domain.Booking
	Customer *domain.UserSummary `json:"customer"`
	Provider *ProviderDetails    `json:"provider"`
}

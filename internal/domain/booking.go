package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// bookingTransitions is the full lifecycle table. Completed and cancelled
// are terminal: they have no outgoing transitions.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingPending:   {BookingConfirmed, BookingCancelled},
	BookingConfirmed: {BookingCompleted, BookingCancelled},
}

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

func (s BookingStatus) Terminal() bool {
	return s == BookingCompleted || s == BookingCancelled
}

// CanTransitionTo reports whether the status change is legal. A no-op
// transition to the same status is not a transition and is rejected.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range bookingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Booking struct {
	ID                 string        `json:"id"`
	CustomerID         string        `json:"customerId"`
	ProviderID         string        `json:"providerId"`
	ServiceDescription string        `json:"serviceDescription"`
	ScheduledDate      time.Time     `json:"scheduledDate"`
	ScheduledTime      string        `json:"scheduledTime"`
	Status             BookingStatus `json:"status"`
	CustomerAddress    string        `json:"customerAddress"`
	CustomerPhone      string        `json:"customerPhone"`
	EstimatedDuration  int           `json:"estimatedDuration"`
	Notes              string        `json:"notes,omitempty"`
	CreatedAt          time.Time     `json:"createdAt"`
}

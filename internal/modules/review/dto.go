package review

// CreateReviewRequest ties a review to the booking being rated. The
// provider is resolved from the booking row, never from the client.
type CreateReviewRequest struct {
	BookingID string `json:"bookingId" binding:"required"`
	Rating    int    `json:"rating" binding:"required"`
	Comment   string `json:"comment"`
}

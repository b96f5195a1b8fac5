package review

import "errors"

var (
	ErrBookingNotFound     = errors.New("booking not found")
	ErrForbidden           = errors.New("not allowed to review this booking")
	ErrBookingNotCompleted = errors.New("booking is not completed")
	ErrInvalidRating       = errors.New("rating must be between 1 and 5")
	ErrNotFound            = errors.New("review not found")
)

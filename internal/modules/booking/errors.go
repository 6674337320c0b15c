package booking

import "errors"

var (
	ErrNotFound         = errors.New("booking not found")
	ErrInvalidReference = errors.New("referenced record does not exist")
	ErrInvalidDates     = errors.New("checkout date must be after checkin date")
)

package review

import "errors"

var (
	ErrNotFound         = errors.New("review not found")
	ErrInvalidReference = errors.New("referenced record does not exist")
)

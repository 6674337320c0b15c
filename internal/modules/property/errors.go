package property

import "errors"

var (
	ErrNotFound = errors.New("property not found")
	// ErrInvalidReference means the host or one of the amenities does not exist.
	ErrInvalidReference = errors.New("referenced record does not exist")
)

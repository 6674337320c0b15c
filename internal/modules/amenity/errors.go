package amenity

import "errors"

var ErrNotFound = errors.New("amenity not found")

package host

import "errors"

var ErrNotFound = errors.New("host not found")

package availability

import "errors"

var ErrInvalidRange = errors.New("check-out must be after check-in")

package booking

import "errors"

var (
	ErrValidation        = errors.New("validation error")
	ErrInvalidRange      = errors.New("check-out must be after check-in")
	ErrDateInPast        = errors.New("dates before today are not bookable")
	ErrDatesNotConfirmed = errors.New("availability not confirmed for the selected dates")
	ErrUnknownRoomType   = errors.New("room type not in the confirmed availability")
	ErrRoomNotCandidate  = errors.New("room is not an available candidate")
	ErrNotSubmittable    = errors.New("form is not complete")
	ErrRoomConflict      = errors.New("room is already booked for an overlapping range")
	ErrSessionNotFound   = errors.New("form session not found or expired")
)

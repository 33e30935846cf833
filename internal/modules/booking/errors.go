package booking

import "errors"

var (
	ErrValidation         = errors.New("invalid booking request")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrRedundantStatus    = errors.New("booking is already in the requested state")
	ErrEquipmentNotFound  = errors.New("equipment not found")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrNotAvailable       = errors.New("equipment is not available")
	ErrForbidden          = errors.New("forbidden")
	ErrRevertWindowClosed = errors.New("cannot revert after 1 minute")
	ErrNoOutstanding      = errors.New("no outstanding penalty to collect")
)

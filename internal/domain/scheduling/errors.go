package scheduling

import "errors"

// Booking and availability outcomes. All are expected results that the
// HTTP layer maps to status codes; only ErrStoreUnavailable indicates a
// fault worth retrying.
var (
	ErrInvalidRequest      = errors.New("invalid booking request")
	ErrClosedDay           = errors.New("clinic is closed on that day")
	ErrSlotConflict        = errors.New("slot is already booked")
	ErrOutsideWorkingHours = errors.New("timestamp is outside working hours")
	ErrInThePast           = errors.New("timestamp is not in the future")
	ErrNotFound            = errors.New("not found")
	ErrStoreUnavailable    = errors.New("appointment store unavailable")
)

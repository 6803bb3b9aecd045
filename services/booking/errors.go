package booking

import (
	"errors"
	"fmt"
)

// Business-rule failures. These are terminal: the engine reports them
// immediately and never retries them.
var (
	// ErrAlreadyBooked signals the student already holds a booking on the slot.
	ErrAlreadyBooked = errors.New("student has already booked this slot")
	// ErrSlotFull signals the slot is at capacity.
	ErrSlotFull = errors.New("slot capacity is full")
	// ErrBookingNotFound signals the student holds no booking on the slot.
	ErrBookingNotFound = errors.New("no booking found for student in this slot")
)

// ValidationError signals malformed input rejected before any write.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

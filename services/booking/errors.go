package booking

import "errors"

var (
	// ErrInvalidID indicates the supplied booking id is not a valid
	// document id.
	ErrInvalidID = errors.New("invalid booking id")
	// ErrNotFound indicates no booking matched the supplied id.
	ErrNotFound = errors.New("booking not found")
	// ErrNoFields indicates a patch carried no updatable fields.
	ErrNoFields = errors.New("no updatable fields supplied")
	// ErrInvalidStatus indicates an unknown booking status value.
	ErrInvalidStatus = errors.New("invalid booking status")
	// ErrUnknownSlot indicates a requested time slot is not in the price table.
	ErrUnknownSlot = errors.New("unknown time slot")
	// ErrSlotTaken indicates a requested slot is already held by another
	// booking for the same venue and date.
	ErrSlotTaken = errors.New("time slot already booked")
)

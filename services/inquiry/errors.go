package inquiry

import "errors"

var (
	// ErrInvalidID indicates the supplied inquiry id is not a valid
	// document id.
	ErrInvalidID = errors.New("invalid inquiry id")
	// ErrNotFound indicates no inquiry matched the supplied id.
	ErrNotFound = errors.New("inquiry not found")
	// ErrInvalidStatus indicates an unknown inquiry status value.
	ErrInvalidStatus = errors.New("invalid inquiry status")
	// ErrInvalidTransition indicates a status move the transition table
	// does not allow (approved and denied are terminal).
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrBadDate indicates a date string that could not be parsed.
	ErrBadDate = errors.New("invalid date")
)

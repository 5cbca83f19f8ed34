package fsrs

import "errors"

// Sentinel errors for the fsrs package, organized by error kind rather than
// by name. Use errors.Is to check a returned error against a kind:
//
//	errors.Is(err, fsrs.ErrInvalidFormat)
//	errors.Is(err, fsrs.ErrContractViolation)
var (
	// ErrInvalidFormat marks a malformed decoded payload: an unparseable
	// ISO-8601 timestamp, or a rating/state string outside its closed
	// vocabulary. It is surfaced to the caller and never recovered
	// internally.
	ErrInvalidFormat = errors.New("fsrs: invalid format")

	// ErrContractViolation marks a programmer error detected at
	// construction time: a parameter vector of the wrong length, a
	// desired retention outside (0,1), or a step table with a
	// non-positive entry.
	ErrContractViolation = errors.New("fsrs: contract violation")

	// ErrCardIDMismatch is returned by RescheduleCard when a review log's
	// card ID does not match the card being rescheduled.
	ErrCardIDMismatch = errors.New("fsrs: card ID mismatch in review log")
)

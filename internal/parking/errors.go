package parking

import "errors"

// Sentinel errors for the operation surface; callers branch with errors.Is.
// Every one of them is reported at the console and none terminates the session.
var (
	ErrValidation      = errors.New("invalid input")
	ErrNoSlotAvailable = errors.New("no free slot available")
	ErrTicketNotFound  = errors.New("ticket not found or already closed")
	ErrInputFormat     = errors.New("invalid integer input")
)

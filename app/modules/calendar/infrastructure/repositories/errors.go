package calendardb

import "errors"

var (
	// ErrNotFound is returned when an event is not found.
	ErrNotFound = errors.New("event not found")

	// ErrParticipantNotFound is returned when an event participant is not found.
	ErrParticipantNotFound = errors.New("participant not found")
)

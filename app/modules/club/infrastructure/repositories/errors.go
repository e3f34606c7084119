package clubdb

import "errors"

var (
	// ErrNotFound is returned when a club is not found.
	ErrNotFound = errors.New("club not found")
	// ErrMembershipNotFound is returned when a user is not a member of the club.
	ErrMembershipNotFound = errors.New("membership not found")
)

package userservice

import "github.com/Black-And-White-Club/roomly/app/shared/apperr"

// Domain errors for the user service.
var (
	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = apperr.NotFound("user not found")

	// ErrInvalidRole indicates an unknown role was provided.
	ErrInvalidRole = apperr.Invalid("invalid role")
)

package botadminservice

import "github.com/Black-And-White-Club/roomly/app/shared/apperr"

var (
	ErrUserRefRequired   = apperr.Invalid("user_id, tg_id, or email required")
	ErrClubRefRequired   = apperr.Invalid("club_id or club_name required")
	ErrSetEmailTarget    = apperr.Invalid("user_id or tg_id required")
	ErrInvalidRole       = apperr.Invalid("invalid role")
	ErrUserNotFound      = apperr.NotFound("user not found")
	ErrClubNotFound      = apperr.NotFound("club not found")
	ErrEmailAlreadyInUse = apperr.Conflict("email already in use")
)

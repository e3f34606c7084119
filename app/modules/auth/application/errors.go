package authservice

import "github.com/Black-And-White-Club/roomly/app/shared/apperr"

var (
	// ErrBotTokenNotConfigured is returned when no Telegram bot token is set.
	ErrBotTokenNotConfigured = apperr.Unavailable("BOT_TOKEN is not configured")

	// ErrInvalidInitData is returned when the Telegram payload fails verification.
	ErrInvalidInitData = apperr.Unauthorized("invalid init data")

	// ErrEmailRequired is returned when the user has not linked an email yet.
	ErrEmailRequired = apperr.Forbidden("email_required")

	// ErrMissingToken is returned when no bearer token is provided.
	ErrMissingToken = apperr.Unauthorized("missing token")

	// ErrInvalidToken is returned when the token is malformed, expired or badly signed.
	ErrInvalidToken = apperr.Unauthorized("invalid token")

	// ErrUserNotFound is returned when the token subject no longer exists.
	ErrUserNotFound = apperr.Unauthorized("user not found")
)

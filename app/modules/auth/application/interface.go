package authservice

import (
	"context"

	authdomain "github.com/Black-And-White-Club/roomly/app/modules/auth/domain"
	authtelegram "github.com/Black-And-White-Club/roomly/app/modules/auth/infrastructure/telegram"
)

// Service defines the authentication service interface.
type Service interface {
	// LoginWithTelegram verifies WebApp init data, upserts the user and
	// issues a session token.
	LoginWithTelegram(ctx context.Context, initData string) (*LoginResponse, error)

	// Authenticate resolves a session token to the caller. The role comes
	// from the stored user.
	Authenticate(ctx context.Context, token string) (authdomain.Principal, error)
}

// InitDataVerifier checks Telegram WebApp init data.
type InitDataVerifier interface {
	Verify(initData string) (*authtelegram.User, error)
}

// LoginRequest is the body of POST /api/auth/telegram.
type LoginRequest struct {
	InitData string `json:"initData" validate:"required"`
}

// LoginResponse carries the session token and the user it was issued for.
type LoginResponse struct {
	AccessToken string  `json:"access_token"`
	TokenType   string  `json:"token_type"`
	User        UserOut `json:"user"`
}

// UserOut is the public shape of the logged in user.
type UserOut struct {
	ID       int64   `json:"id"`
	TgID     string  `json:"tg_id"`
	Email    *string `json:"email"`
	Username *string `json:"username"`
	FullName *string `json:"full_name"`
	Role     string  `json:"role"`
}

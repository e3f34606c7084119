package authhandlers

import (
	"context"

	authservice "github.com/Black-And-White-Club/roomly/app/modules/auth/application"
	authdomain "github.com/Black-And-White-Club/roomly/app/modules/auth/domain"
)

// ------------------------
// Fake Service
// ------------------------

type FakeService struct {
	LoginWithTelegramFunc func(ctx context.Context, initData string) (*authservice.LoginResponse, error)
	AuthenticateFunc      func(ctx context.Context, token string) (authdomain.Principal, error)
}

func (f *FakeService) LoginWithTelegram(ctx context.Context, initData string) (*authservice.LoginResponse, error) {
	if f.LoginWithTelegramFunc != nil {
		return f.LoginWithTelegramFunc(ctx, initData)
	}
	return &authservice.LoginResponse{AccessToken: "token", TokenType: "bearer"}, nil
}

func (f *FakeService) Authenticate(ctx context.Context, token string) (authdomain.Principal, error) {
	if f.AuthenticateFunc != nil {
		return f.AuthenticateFunc(ctx, token)
	}
	return authdomain.Principal{UserID: 1, Role: authdomain.RoleStudent}, nil
}

var _ authservice.Service = (*FakeService)(nil)

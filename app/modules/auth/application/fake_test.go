package authservice

import (
	"time"

	authdomain "github.com/Black-And-White-Club/roomly/app/modules/auth/domain"
	authtelegram "github.com/Black-And-White-Club/roomly/app/modules/auth/infrastructure/telegram"
)

// ------------------------
// Fake JWT Provider
// ------------------------

type FakeJWTProvider struct {
	trace []string

	GenerateTokenFunc func(userID int64, role authdomain.Role, ttl time.Duration) (string, error)
	ValidateTokenFunc func(tokenString string) (*authdomain.Claims, error)
}

func (f *FakeJWTProvider) Trace() []string {
	return f.trace
}

func (f *FakeJWTProvider) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeJWTProvider) GenerateToken(userID int64, role authdomain.Role, ttl time.Duration) (string, error) {
	f.record("GenerateToken")
	if f.GenerateTokenFunc != nil {
		return f.GenerateTokenFunc(userID, role, ttl)
	}
	return "fake-token", nil
}

func (f *FakeJWTProvider) ValidateToken(tokenString string) (*authdomain.Claims, error) {
	f.record("ValidateToken")
	if f.ValidateTokenFunc != nil {
		return f.ValidateTokenFunc(tokenString)
	}
	return &authdomain.Claims{UserID: 1, Role: authdomain.RoleStudent}, nil
}

// ------------------------
// Fake Init Data Verifier
// ------------------------

type FakeVerifier struct {
	VerifyFunc func(initData string) (*authtelegram.User, error)
}

func (f *FakeVerifier) Verify(initData string) (*authtelegram.User, error) {
	if f.VerifyFunc != nil {
		return f.VerifyFunc(initData)
	}
	return &authtelegram.User{ID: 1001, FirstName: "Ada", LastName: "Lovelace", Username: "ada"}, nil
}

package authjwt

import (
	"time"

	authdomain "github.com/Black-And-White-Club/roomly/app/modules/auth/domain"
)

// Provider defines the interface for session token operations.
type Provider interface {
	// GenerateToken signs a session token for the user with the given role.
	GenerateToken(userID int64, role authdomain.Role, ttl time.Duration) (string, error)

	// ValidateToken validates a session token and returns its claims.
	ValidateToken(tokenString string) (*authdomain.Claims, error)
}

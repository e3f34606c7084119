package authdomain

import "time"

// Claims is the decoded content of a session token.
type Claims struct {
	TokenID   string
	UserID    int64
	Role      Role
	ExpiresAt time.Time
	IssuedAt  time.Time
}

// IsExpired checks if the claims have expired.
func (c *Claims) IsExpired() bool {
	return time.Now().After(c.ExpiresAt)
}

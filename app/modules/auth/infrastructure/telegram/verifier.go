package authtelegram

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrNotConfigured is returned when no bot token is configured.
	ErrNotConfigured = errors.New("BOT_TOKEN is not configured")

	// ErrInvalidInitData covers a missing hash, a hash mismatch, a stale
	// auth_date and a missing or unreadable user field.
	ErrInvalidInitData = errors.New("invalid init data")
)

const webAppDataKey = "WebAppData"

// User is the Telegram profile embedded in WebApp init data.
type User struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
}

// FullName joins the non-empty name parts with a space.
func (u User) FullName() string {
	parts := make([]string, 0, 2)
	for _, p := range []string{u.FirstName, u.LastName} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// Verifier checks Telegram WebApp init data signed with the bot token.
type Verifier struct {
	botToken string
	maxAge   time.Duration
	now      func() time.Time
}

// NewVerifier creates a Verifier. A positive maxAge rejects payloads whose
// auth_date is older than that.
func NewVerifier(botToken string, maxAge time.Duration) *Verifier {
	return &Verifier{botToken: botToken, maxAge: maxAge, now: time.Now}
}

// Verify validates initData and returns the embedded user.
func (v *Verifier) Verify(initData string) (*User, error) {
	if v.botToken == "" {
		return nil, ErrNotConfigured
	}

	values, err := url.ParseQuery(initData)
	if err != nil {
		return nil, ErrInvalidInitData
	}
	fields := make(map[string]string, len(values))
	for k, vs := range values {
		if len(vs) > 0 {
			fields[k] = vs[len(vs)-1]
		}
	}

	received := fields["hash"]
	if received == "" {
		return nil, ErrInvalidInitData
	}

	expected := Sign(v.botToken, DataCheckString(fields))
	if !hmac.Equal([]byte(expected), []byte(received)) {
		return nil, ErrInvalidInitData
	}

	if v.maxAge > 0 {
		ts, err := strconv.ParseInt(fields["auth_date"], 10, 64)
		if err != nil || v.now().Sub(time.Unix(ts, 0)) > v.maxAge {
			return nil, ErrInvalidInitData
		}
	}

	raw := fields["user"]
	if raw == "" {
		return nil, ErrInvalidInitData
	}
	var u User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return nil, ErrInvalidInitData
	}
	return &u, nil
}

// DataCheckString renders every field except hash as key=value, sorted by
// key and joined by newlines.
func DataCheckString(fields map[string]string) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		if k != "hash" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+fields[k])
	}
	return strings.Join(pairs, "\n")
}

// Sign computes the hex WebApp hash of a data-check string.
func Sign(botToken, dataCheckString string) string {
	secret := hmac.New(sha256.New, []byte(webAppDataKey))
	secret.Write([]byte(botToken))

	mac := hmac.New(sha256.New, secret.Sum(nil))
	mac.Write([]byte(dataCheckString))
	return hex.EncodeToString(mac.Sum(nil))
}

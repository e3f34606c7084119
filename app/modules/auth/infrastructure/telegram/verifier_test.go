package authtelegram

import (
	"net/url"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const botToken = "123456:TEST-TOKEN"

func signedInitData(token string, fields map[string]string) string {
	q := url.Values{}
	for k, v := range fields {
		q.Set(k, v)
	}
	q.Set("hash", Sign(token, DataCheckString(fields)))
	return q.Encode()
}

func TestDataCheckString(t *testing.T) {
	got := DataCheckString(map[string]string{
		"user":      `{"id":1}`,
		"auth_date": "100",
		"hash":      "ignored",
		"query_id":  "",
	})
	assert.Equal(t, "auth_date=100\nquery_id=\nuser={\"id\":1}", got)
}

func TestVerifier_Verify(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	fresh := strconv.FormatInt(now.Add(-time.Minute).Unix(), 10)
	stale := strconv.FormatInt(now.Add(-48*time.Hour).Unix(), 10)

	tests := []struct {
		name     string
		token    string
		maxAge   time.Duration
		initData string
		wantErr  error
		wantUser *User
	}{
		{
			name:     "valid payload",
			token:    botToken,
			initData: signedInitData(botToken, map[string]string{"auth_date": fresh, "query_id": "", "user": `{"id":555,"first_name":"Ada","last_name":"L","username":"ada"}`}),
			wantUser: &User{ID: 555, FirstName: "Ada", LastName: "L", Username: "ada"},
		},
		{
			name:     "bot token not configured",
			token:    "",
			initData: "hash=abc",
			wantErr:  ErrNotConfigured,
		},
		{
			name:     "missing hash",
			token:    botToken,
			initData: "auth_date=1&user=%7B%22id%22%3A1%7D",
			wantErr:  ErrInvalidInitData,
		},
		{
			name:     "signed with another token",
			token:    botToken,
			initData: signedInitData("999:OTHER", map[string]string{"auth_date": fresh, "user": `{"id":1}`}),
			wantErr:  ErrInvalidInitData,
		},
		{
			name:     "missing user",
			token:    botToken,
			initData: signedInitData(botToken, map[string]string{"auth_date": fresh}),
			wantErr:  ErrInvalidInitData,
		},
		{
			name:     "stale auth_date with max age",
			token:    botToken,
			maxAge:   24 * time.Hour,
			initData: signedInitData(botToken, map[string]string{"auth_date": stale, "user": `{"id":1}`}),
			wantErr:  ErrInvalidInitData,
		},
		{
			name:     "stale auth_date without max age",
			token:    botToken,
			initData: signedInitData(botToken, map[string]string{"auth_date": stale, "user": `{"id":1}`}),
			wantUser: &User{ID: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewVerifier(tt.token, tt.maxAge)
			v.now = func() time.Time { return now }

			u, err := v.Verify(tt.initData)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantUser, u)
		})
	}
}

func TestUser_FullName(t *testing.T) {
	assert.Equal(t, "Ada Lovelace", User{FirstName: "Ada", LastName: "Lovelace"}.FullName())
	assert.Equal(t, "Ada", User{FirstName: "Ada"}.FullName())
	assert.Equal(t, "", User{}.FullName())
}

//go:build integration

package apiintegrationtests

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	authdomain "github.com/Black-And-White-Club/roomly/app/modules/auth/domain"
	authjwt "github.com/Black-And-White-Club/roomly/app/modules/auth/infrastructure/jwt"
	"github.com/Black-And-White-Club/roomly/integration_tests/testutils"
	"github.com/stretchr/testify/require"
)

// apiClient drives the real router over HTTP.
type apiClient struct {
	t   *testing.T
	srv *httptest.Server
}

func newAPIClient(t *testing.T) *apiClient {
	t.Helper()
	require.NoError(t, testEnv.Reset(testEnv.Ctx))
	srv := httptest.NewServer(testEnv.App.Router())
	t.Cleanup(srv.Close)
	return &apiClient{t: t, srv: srv}
}

func (c *apiClient) do(method, path string, body any, headers map[string]string) (int, []byte) {
	c.t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(c.t, err)
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequest(method, c.srv.URL+path, reader)
	require.NoError(c.t, err)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.srv.Client().Do(req)
	require.NoError(c.t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(c.t, err)
	return resp.StatusCode, data
}

// bot calls a bot endpoint with the relay secret.
func (c *apiClient) bot(path string, body any) (int, []byte) {
	return c.do(http.MethodPost, path, body, map[string]string{"X-Admin-Token": testutils.BotAdminToken})
}

// as calls an endpoint with a session token.
func (c *apiClient) as(token, method, path string, body any) (int, []byte) {
	return c.do(method, path, body, map[string]string{"Authorization": "Bearer " + token})
}

func tokenFor(t *testing.T, userID int64, role authdomain.Role) string {
	t.Helper()
	token, err := authjwt.NewProvider(testutils.JWTSecret).GenerateToken(userID, role, time.Hour)
	require.NoError(t, err)
	return token
}

func decode[T any](t *testing.T, data []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(data, &v), string(data))
	return v
}

type botUser struct {
	ID           int64   `json:"id"`
	TgID         string  `json:"tg_id"`
	Email        *string `json:"email"`
	BotIntroSeen bool    `json:"bot_intro_seen"`
}

type detail struct {
	Detail string `json:"detail"`
}

// onboard upserts a Telegram user and links their email through the bot endpoints.
func (c *apiClient) onboard(u testutils.TelegramUser) botUser {
	c.t.Helper()
	code, body := c.bot("/api/bot/upsert-user", map[string]any{
		"tg_id":     u.TgID,
		"username":  u.Username,
		"full_name": u.FirstName + " " + u.LastName,
	})
	require.Equal(c.t, http.StatusOK, code, string(body))

	code, body = c.bot("/api/bot/set-email", map[string]any{"tg_id": u.TgID, "email": u.Email})
	require.Equal(c.t, http.StatusOK, code, string(body))

	user := decode[botUser](c.t, body)
	user.TgID = u.TgID
	return user
}

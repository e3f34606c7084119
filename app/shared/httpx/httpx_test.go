package httpx

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	authdomain "github.com/Black-And-White-Club/roomly/app/modules/auth/domain"
	"github.com/Black-And-White-Club/roomly/app/shared/apperr"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roleRequest struct {
	Email string `json:"email" validate:"required"`
	Role  string `json:"role" validate:"required"`
}

func TestWriteError(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantDetail string
	}{
		{name: "not found", err: apperr.NotFound("room not found"), wantStatus: http.StatusNotFound, wantDetail: "room not found"},
		{name: "forbidden", err: apperr.Forbidden("admin required"), wantStatus: http.StatusForbidden, wantDetail: "admin required"},
		{name: "conflict", err: apperr.Conflict("room code exists"), wantStatus: http.StatusConflict, wantDetail: "room code exists"},
		{name: "unavailable", err: apperr.Unavailable("BOT_TOKEN is not configured"), wantStatus: http.StatusInternalServerError, wantDetail: "BOT_TOKEN is not configured"},
		{name: "unknown", err: errors.New("pq: connection refused"), wantStatus: http.StatusInternalServerError, wantDetail: "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/rooms/available", nil)

			WriteError(rr, req, logger, tt.err)

			assert.Equal(t, tt.wantStatus, rr.Code)
			var body ErrorBody
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
			assert.Equal(t, tt.wantDetail, body.Detail)
		})
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantDetail string
	}{
		{name: "valid", body: `{"email":"a@b.co","role":"admin"}`},
		{name: "missing field", body: `{"email":"a@b.co"}`, wantDetail: "role required"},
		{name: "empty body", body: ``, wantDetail: "request body required"},
		{name: "malformed", body: `{"email":`, wantDetail: "invalid request body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var dst roleRequest
			err := Decode(req, &dst)

			if tt.wantDetail == "" {
				assert.NoError(t, err)
				return
			}
			detail, ok := apperr.DetailOf(err)
			assert.True(t, ok)
			assert.Equal(t, tt.wantDetail, detail)
			assert.Equal(t, apperr.KindInvalid, apperr.KindOf(err))
		})
	}
}

func TestPathInt64(t *testing.T) {
	r := chi.NewRouter()
	var got int64
	var gotErr error
	r.Get("/events/{eventID}", func(w http.ResponseWriter, r *http.Request) {
		got, gotErr = PathInt64(r, "eventID")
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/events/42", nil))
	assert.NoError(t, gotErr)
	assert.Equal(t, int64(42), got)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/events/abc", nil))
	assert.Equal(t, apperr.KindInvalid, apperr.KindOf(gotErr))
}

func TestQueryInt64(t *testing.T) {
	req := httptest.NewRequest(http.MethodDelete, "/?club_id=7", nil)
	v, err := QueryInt64(req, "club_id")
	assert.NoError(t, err)
	assert.Equal(t, int64(7), v)

	_, err = QueryInt64(req, "user_id")
	detail, _ := apperr.DetailOf(err)
	assert.Equal(t, "user_id required", detail)
}

func TestPrincipal(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := Principal(req)
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))

	want := authdomain.Principal{UserID: 4, Role: authdomain.RoleAdmin}
	req = req.WithContext(authdomain.WithPrincipal(req.Context(), want))
	got, err := Principal(req)
	assert.NoError(t, err)
	assert.Equal(t, want, got)
}

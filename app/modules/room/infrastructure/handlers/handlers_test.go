package roomhandlers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	roomservice "github.com/Black-And-White-Club/roomly/app/modules/room/application"
	roomdb "github.com/Black-And-White-Club/roomly/app/modules/room/infrastructure/repositories"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(svc *FakeService) http.Handler {
	h := NewRoomHandlers(svc, slog.New(slog.NewTextHandler(io.Discard, nil)))
	r := chi.NewRouter()
	h.RegisterRoutes(r)
	h.RegisterAdminRoutes(r)
	return r
}

func serve(h http.Handler, method, url, body string) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(method, url, rd))
	return rr
}

func TestRoomHandlers_ListAvailable(t *testing.T) {
	capacity := 24
	svc := &FakeService{
		ListAvailableFunc: func(context.Context) ([]roomdb.Room, error) {
			return []roomdb.Room{{ID: 1, Code: "A-101", Capacity: &capacity, IsActive: true}}, nil
		},
	}
	rr := serve(newRouter(svc), http.MethodGet, "/api/rooms/available", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var body []map[string]any
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	require.Len(t, body, 1)
	assert.Equal(t, "A-101", body[0]["code"])
	assert.Equal(t, float64(24), body[0]["capacity"])
	assert.Nil(t, body[0]["building"])
	assert.Equal(t, true, body[0]["is_active"])
}

func TestRoomHandlers_Create(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		svcErr     error
		wantStatus int
		wantDetail string
	}{
		{name: "created", body: `{"code":"A-101","capacity":20}`, wantStatus: http.StatusOK},
		{name: "missing code", body: `{"capacity":20}`, wantStatus: http.StatusBadRequest, wantDetail: "code required"},
		{name: "duplicate", body: `{"code":"A-101"}`, svcErr: roomservice.ErrRoomCodeExists, wantStatus: http.StatusConflict, wantDetail: "room code exists"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &FakeService{
				CreateFunc: func(_ context.Context, req roomservice.CreateRoomRequest) (*roomdb.Room, error) {
					if tt.svcErr != nil {
						return nil, tt.svcErr
					}
					return &roomdb.Room{ID: 9, Code: req.Code, Capacity: req.Capacity, IsActive: true}, nil
				},
			}
			rr := serve(newRouter(svc), http.MethodPost, "/api/admin/rooms", tt.body)
			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantDetail != "" {
				assert.JSONEq(t, `{"detail":"`+tt.wantDetail+`"}`, rr.Body.String())
			}
		})
	}
}

func TestRoomHandlers_Update(t *testing.T) {
	var gotCode string
	var gotReq roomservice.UpdateRoomRequest
	svc := &FakeService{
		UpdateFunc: func(_ context.Context, code string, req roomservice.UpdateRoomRequest) (*roomdb.Room, error) {
			gotCode, gotReq = code, req
			return &roomdb.Room{ID: 2, Code: code, IsActive: false}, nil
		},
	}
	rr := serve(newRouter(svc), http.MethodPatch, "/api/admin/rooms/B-2", `{"is_active":false}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "B-2", gotCode)
	require.NotNil(t, gotReq.IsActive)
	assert.False(t, *gotReq.IsActive)
	assert.Nil(t, gotReq.Capacity)

	svc.UpdateFunc = func(context.Context, string, roomservice.UpdateRoomRequest) (*roomdb.Room, error) {
		return nil, roomservice.ErrRoomNotFound
	}
	rr = serve(newRouter(svc), http.MethodPatch, "/api/admin/rooms/Z-9", `{}`)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestRoomHandlers_Delete(t *testing.T) {
	var deleted string
	svc := &FakeService{
		DeleteFunc: func(_ context.Context, code string) error {
			deleted = code
			return nil
		},
	}
	rr := serve(newRouter(svc), http.MethodDelete, "/api/admin/rooms/C-3", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"code":"C-3","status":"deleted"}`, rr.Body.String())
	assert.Equal(t, "C-3", deleted)
}

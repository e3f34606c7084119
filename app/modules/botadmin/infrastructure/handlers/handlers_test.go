package botadminhandlers

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	botadminservice "github.com/Black-And-White-Club/roomly/app/modules/botadmin/application"
	clubservice "github.com/Black-And-White-Club/roomly/app/modules/club/application"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(svc *FakeService) http.Handler {
	r := chi.NewRouter()
	NewBotAdminHandlers(svc, slog.New(slog.NewTextHandler(io.Discard, nil))).RegisterBotRoutes(r)
	return r
}

func TestBotAdminHandlers(t *testing.T) {
	tests := []struct {
		name     string
		svc      *FakeService
		url      string
		body     string
		wantCode int
		wantBody string
	}{
		{
			name: "assign role by tg id",
			svc: &FakeService{AssignRoleFunc: func(_ context.Context, req botadminservice.AssignRoleRequest) (*botadminservice.RoleResult, error) {
				require.NotNil(t, req.TgID)
				assert.Equal(t, "1001", *req.TgID)
				return &botadminservice.RoleResult{ID: 7, Role: req.Role}, nil
			}},
			url:      "/api/bot/assign-role",
			body:     `{"tg_id":"1001","role":"admin"}`,
			wantCode: http.StatusOK,
			wantBody: `{"id":7,"role":"admin"}`,
		},
		{
			name:     "assign role missing role",
			svc:      &FakeService{},
			url:      "/api/bot/assign-role",
			body:     `{"user_id":7}`,
			wantCode: http.StatusBadRequest,
			wantBody: `{"detail":"role required"}`,
		},
		{
			name: "assign role without identifier",
			svc: &FakeService{AssignRoleFunc: func(context.Context, botadminservice.AssignRoleRequest) (*botadminservice.RoleResult, error) {
				return nil, botadminservice.ErrUserRefRequired
			}},
			url:      "/api/bot/assign-role",
			body:     `{"role":"admin"}`,
			wantCode: http.StatusBadRequest,
			wantBody: `{"detail":"user_id, tg_id, or email required"}`,
		},
		{
			name: "assign club leader",
			svc: &FakeService{AssignClubLeaderFunc: func(_ context.Context, req botadminservice.AssignClubLeaderRequest) (*clubservice.LeaderAssignment, error) {
				require.NotNil(t, req.ClubName)
				assert.Equal(t, "Chess", *req.ClubName)
				return &clubservice.LeaderAssignment{ClubID: 3, UserID: 7, Role: "leader"}, nil
			}},
			url:      "/api/bot/assign-club-leader",
			body:     `{"club_name":"Chess","email":"ada@example.com"}`,
			wantCode: http.StatusOK,
			wantBody: `{"club_id":3,"user_id":7,"role":"leader"}`,
		},
		{
			name: "assign club leader unknown club",
			svc: &FakeService{AssignClubLeaderFunc: func(context.Context, botadminservice.AssignClubLeaderRequest) (*clubservice.LeaderAssignment, error) {
				return nil, botadminservice.ErrClubNotFound
			}},
			url:      "/api/bot/assign-club-leader",
			body:     `{"club_id":9,"user_id":7}`,
			wantCode: http.StatusNotFound,
			wantBody: `{"detail":"club not found"}`,
		},
		{
			name:     "create club",
			svc:      &FakeService{},
			url:      "/api/bot/create-club",
			body:     `{"name":"Chess","owner_user_id":7}`,
			wantCode: http.StatusOK,
			wantBody: `{"id":1,"name":"Chess"}`,
		},
		{
			name: "create club duplicate",
			svc: &FakeService{CreateClubFunc: func(context.Context, botadminservice.CreateClubRequest) (*clubservice.ClubView, error) {
				return nil, clubservice.ErrClubNameExists
			}},
			url:      "/api/bot/create-club",
			body:     `{"name":"Chess"}`,
			wantCode: http.StatusConflict,
		},
		{
			name: "upsert user",
			svc: &FakeService{UpsertUserFunc: func(_ context.Context, req botadminservice.UpsertUserRequest) (*botadminservice.UpsertUserResult, error) {
				require.NotNil(t, req.MarkIntro)
				assert.True(t, *req.MarkIntro)
				return &botadminservice.UpsertUserResult{ID: 5, TgID: req.TgID, BotIntroSeen: true}, nil
			}},
			url:      "/api/bot/upsert-user",
			body:     `{"tg_id":"555","username":"grace","mark_intro":true}`,
			wantCode: http.StatusOK,
			wantBody: `{"id":5,"tg_id":"555","email":null,"bot_intro_seen":true}`,
		},
		{
			name:     "upsert user missing tg id",
			svc:      &FakeService{},
			url:      "/api/bot/upsert-user",
			body:     `{"username":"grace"}`,
			wantCode: http.StatusBadRequest,
			wantBody: `{"detail":"tg_id required"}`,
		},
		{
			name:     "set email",
			svc:      &FakeService{},
			url:      "/api/bot/set-email",
			body:     `{"tg_id":"555","email":"grace@example.com"}`,
			wantCode: http.StatusOK,
			wantBody: `{"id":1,"email":"grace@example.com"}`,
		},
		{
			name: "set email in use",
			svc: &FakeService{SetEmailFunc: func(context.Context, botadminservice.SetEmailRequest) (*botadminservice.SetEmailResult, error) {
				return nil, botadminservice.ErrEmailAlreadyInUse
			}},
			url:      "/api/bot/set-email",
			body:     `{"user_id":1,"email":"taken@example.com"}`,
			wantCode: http.StatusConflict,
			wantBody: `{"detail":"email already in use"}`,
		},
		{
			name:     "empty body",
			svc:      &FakeService{},
			url:      "/api/bot/set-email",
			wantCode: http.StatusBadRequest,
			wantBody: `{"detail":"request body required"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, tt.url, strings.NewReader(tt.body))
			newRouter(tt.svc).ServeHTTP(rr, req)
			assert.Equal(t, tt.wantCode, rr.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rr.Body.String())
			}
		})
	}
}

package clubservice

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	authdomain "github.com/Black-And-White-Club/roomly/app/modules/auth/domain"
	calendardb "github.com/Black-And-White-Club/roomly/app/modules/calendar/infrastructure/repositories"
	clubdomain "github.com/Black-And-White-Club/roomly/app/modules/club/domain"
	clubdb "github.com/Black-And-White-Club/roomly/app/modules/club/infrastructure/repositories"
	userdb "github.com/Black-And-White-Club/roomly/app/modules/user/infrastructure/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace/noop"
)

var (
	admin   = authdomain.Principal{UserID: 1, Role: authdomain.RoleAdmin}
	leader  = authdomain.Principal{UserID: 2, Role: authdomain.RoleClubLeader}
	student = authdomain.Principal{UserID: 3, Role: authdomain.RoleStudent}
)

func ptr[T any](v T) *T { return &v }

type fixture struct {
	clubs  *clubdb.FakeRepository
	users  *userdb.FakeRepository
	events *calendardb.FakeRepository
	svc    *ClubService
}

func newFixture() *fixture {
	f := &fixture{
		clubs:  &clubdb.FakeRepository{},
		users:  &userdb.FakeRepository{},
		events: &calendardb.FakeRepository{},
	}
	f.svc = NewClubService(f.clubs, f.users, f.events,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		noop.NewTracerProvider().Tracer("test"),
		nil,
	)
	return f
}

func (f *fixture) withClub(club clubdb.Club) {
	find := func(context.Context, bun.IDB, string) (*clubdb.Club, error) { c := club; return &c, nil }
	f.clubs.GetByIDFn = func(_ context.Context, _ bun.IDB, id int64) (*clubdb.Club, error) {
		if id != club.ID {
			return nil, clubdb.ErrNotFound
		}
		c := club
		return &c, nil
	}
	f.clubs.FindByNameFoldFn = find
	f.clubs.FindByNameLikeFn = find
}

func (f *fixture) withUser(user userdb.User) {
	get := func(context.Context, bun.IDB, string) (*userdb.User, error) { u := user; return &u, nil }
	f.users.GetByIDFn = func(_ context.Context, _ bun.IDB, id int64) (*userdb.User, error) {
		if id != user.ID {
			return nil, userdb.ErrNotFound
		}
		u := user
		return &u, nil
	}
	f.users.FindByEmailFoldFn = get
	f.users.FindByEmailLikeFn = get
}

func TestClubService_ListMine(t *testing.T) {
	f := newFixture()
	f.clubs.ListFn = func(context.Context, bun.IDB) ([]clubdb.Club, error) {
		return []clubdb.Club{{ID: 1, Name: "Chess"}, {ID: 2, Name: "Drama"}}, nil
	}
	f.clubs.ListLedByFn = func(_ context.Context, _ bun.IDB, userID int64) ([]clubdb.Club, error) {
		assert.Equal(t, leader.UserID, userID)
		return []clubdb.Club{{ID: 2, Name: "Drama"}}, nil
	}

	tests := []struct {
		name      string
		principal authdomain.Principal
		want      []ClubView
	}{
		{name: "admin", principal: admin, want: []ClubView{{ID: 1, Name: "Chess"}, {ID: 2, Name: "Drama"}}},
		{name: "leader", principal: leader, want: []ClubView{{ID: 2, Name: "Drama"}}},
		{name: "student", principal: student, want: []ClubView{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.svc.ListMine(context.Background(), tt.principal)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClubService_AddMember(t *testing.T) {
	tests := []struct {
		name       string
		principal  authdomain.Principal
		noClub     bool
		noUser     bool
		isLeader   bool
		existing   *clubdb.Member
		wantErr    error
		wantRole   clubdomain.MemberRole
		wantInsert bool
	}{
		{name: "club missing", principal: admin, noClub: true, wantErr: ErrClubNotFound},
		{name: "user missing", principal: admin, noUser: true, wantErr: ErrUserNotFound},
		{name: "student rejected", principal: student, wantErr: ErrClubLeaderRequired},
		{name: "leader of another club", principal: leader, wantErr: ErrNotLeaderForClub},
		{name: "leader adds member", principal: leader, isLeader: true, wantRole: clubdomain.MemberRoleMember, wantInsert: true},
		{name: "admin adds member", principal: admin, wantRole: clubdomain.MemberRoleMember, wantInsert: true},
		{
			name:      "existing membership kept",
			principal: admin,
			existing:  &clubdb.Member{ClubID: 5, UserID: 8, Role: clubdomain.MemberRoleLeader},
			wantRole:  clubdomain.MemberRoleLeader,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			if !tt.noClub {
				f.withClub(clubdb.Club{ID: 5, Name: "Chess"})
			}
			if !tt.noUser {
				f.withUser(userdb.User{ID: 8, Email: ptr("kim@example.com")})
			}
			f.clubs.IsLeaderFn = func(context.Context, bun.IDB, int64, int64) (bool, error) { return tt.isLeader, nil }
			if tt.existing != nil {
				f.clubs.GetMemberFn = func(context.Context, bun.IDB, int64, int64) (*clubdb.Member, error) {
					return tt.existing, nil
				}
			}
			var inserted *clubdb.Member
			f.clubs.AddMemberFn = func(_ context.Context, _ bun.IDB, m *clubdb.Member) error {
				inserted = m
				return nil
			}

			got, err := f.svc.AddMember(context.Background(), tt.principal, AddMemberRequest{ClubName: " chess ", UserEmail: "KIM@example.com"})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, inserted)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, &clubdb.Membership{ID: 5, Name: "Chess", Role: tt.wantRole}, got)
			assert.Equal(t, tt.wantInsert, inserted != nil)
		})
	}
}

func TestClubService_LeaveClub(t *testing.T) {
	tests := []struct {
		name     string
		clubName string
		member   *clubdb.Member
		wantErr  error
	}{
		{name: "blank name", clubName: "", wantErr: ErrClubNameRequired},
		{name: "not a member", clubName: "Chess", wantErr: ErrMembershipNotFound},
		{name: "leader", clubName: "Chess", member: &clubdb.Member{Role: clubdomain.MemberRoleLeader}, wantErr: ErrLeaderCannotLeave},
		{name: "member leaves", clubName: "chess", member: &clubdb.Member{Role: clubdomain.MemberRoleMember}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.withClub(clubdb.Club{ID: 5, Name: "Chess"})
			if tt.member != nil {
				f.clubs.GetMemberFn = func(context.Context, bun.IDB, int64, int64) (*clubdb.Member, error) {
					return tt.member, nil
				}
			}

			got, err := f.svc.LeaveClub(context.Background(), student, tt.clubName)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.NotContains(t, f.clubs.Calls, "DeleteMember")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, &LeaveResult{ClubName: "Chess", Status: "left"}, got)
			assert.Contains(t, f.clubs.Calls, "DeleteMember")
		})
	}
}

func TestClubService_ListRoster(t *testing.T) {
	f := newFixture()
	f.withClub(clubdb.Club{ID: 5, Name: "Chess"})
	f.clubs.ListRosterFn = func(_ context.Context, _ bun.IDB, clubID int64) ([]clubdb.Roster, error) {
		assert.Equal(t, int64(5), clubID)
		return []clubdb.Roster{{Email: ptr("a@example.com"), Role: clubdomain.MemberRoleMember}}, nil
	}

	_, err := f.svc.ListRoster(context.Background(), leader, "Chess")
	assert.ErrorIs(t, err, ErrNotLeaderForClub)

	roster, err := f.svc.ListRoster(context.Background(), admin, "Chess")
	require.NoError(t, err)
	assert.Len(t, roster, 1)
}

func TestClubService_CreateClub(t *testing.T) {
	t.Run("owner email resolves owner", func(t *testing.T) {
		f := newFixture()
		f.withUser(userdb.User{ID: 8})
		var created *clubdb.Club
		f.clubs.CreateFn = func(_ context.Context, _ bun.IDB, c *clubdb.Club) error {
			c.ID = 11
			created = c
			return nil
		}

		got, err := f.svc.CreateClub(context.Background(), CreateClubRequest{Name: "Chess", OwnerUserID: ptr(int64(3)), OwnerEmail: ptr("Kim@Example.com")})
		require.NoError(t, err)
		assert.Equal(t, &ClubView{ID: 11, Name: "Chess"}, got)
		assert.Equal(t, ptr(int64(8)), created.OwnerUserID)
	})

	t.Run("unknown owner", func(t *testing.T) {
		f := newFixture()
		_, err := f.svc.CreateClub(context.Background(), CreateClubRequest{Name: "Chess", OwnerEmail: ptr("ghost@example.com")})
		assert.ErrorIs(t, err, ErrOwnerNotFound)
		assert.NotContains(t, f.clubs.Calls, "Create")
	})

	t.Run("unknown owner id", func(t *testing.T) {
		f := newFixture()
		_, err := f.svc.CreateClub(context.Background(), CreateClubRequest{Name: "Chess", OwnerUserID: ptr(int64(42))})
		assert.ErrorIs(t, err, ErrOwnerNotFound)
		assert.NotContains(t, f.clubs.Calls, "Create")
	})

	t.Run("owner id checked before insert", func(t *testing.T) {
		f := newFixture()
		f.withUser(userdb.User{ID: 42})
		var created *clubdb.Club
		f.clubs.CreateFn = func(_ context.Context, _ bun.IDB, c *clubdb.Club) error {
			c.ID = 12
			created = c
			return nil
		}
		_, err := f.svc.CreateClub(context.Background(), CreateClubRequest{Name: "Chess", OwnerUserID: ptr(int64(42))})
		require.NoError(t, err)
		assert.Equal(t, ptr(int64(42)), created.OwnerUserID)
	})

	t.Run("repository failure", func(t *testing.T) {
		f := newFixture()
		boom := errors.New("boom")
		f.clubs.CreateFn = func(context.Context, bun.IDB, *clubdb.Club) error { return boom }
		_, err := f.svc.CreateClub(context.Background(), CreateClubRequest{Name: "Chess"})
		assert.ErrorIs(t, err, boom)
	})
}

func TestClubService_DeleteClub(t *testing.T) {
	t.Run("missing club", func(t *testing.T) {
		f := newFixture()
		assert.ErrorIs(t, f.svc.DeleteClub(context.Background(), 5), ErrClubNotFound)
		assert.Empty(t, f.events.Calls)
	})

	t.Run("cascades events and memberships", func(t *testing.T) {
		f := newFixture()
		f.withClub(clubdb.Club{ID: 5, Name: "Chess"})
		f.events.IDsByClubFn = func(context.Context, bun.IDB, int64) ([]int64, error) { return []int64{20, 21}, nil }
		var deletedEvents []int64
		f.events.DeleteWithParticipantsFn = func(_ context.Context, _ bun.IDB, ids []int64) error {
			deletedEvents = ids
			return nil
		}

		require.NoError(t, f.svc.DeleteClub(context.Background(), 5))
		assert.Equal(t, []int64{20, 21}, deletedEvents)
		assert.Equal(t, []string{"GetByID", "DeleteMembersByClub", "Delete"}, f.clubs.Calls)
	})

	t.Run("club without events", func(t *testing.T) {
		f := newFixture()
		f.withClub(clubdb.Club{ID: 5, Name: "Chess"})
		require.NoError(t, f.svc.DeleteClub(context.Background(), 5))
		assert.Equal(t, []string{"IDsByClub"}, f.events.Calls)
	})
}

func TestClubService_AssignLeader(t *testing.T) {
	tests := []struct {
		name         string
		user         userdb.User
		existing     bool
		wantClubCall string
		wantPromote  bool
	}{
		{name: "new leader student", user: userdb.User{ID: 8, Role: authdomain.RoleStudent}, wantClubCall: "AddMember", wantPromote: true},
		{name: "member upgraded", user: userdb.User{ID: 8, Role: authdomain.RoleStudent}, existing: true, wantClubCall: "UpdateMemberRole", wantPromote: true},
		{name: "admin keeps role", user: userdb.User{ID: 8, Role: authdomain.RoleAdmin}, wantClubCall: "AddMember"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.withClub(clubdb.Club{ID: 5, Name: "Chess"})
			f.withUser(tt.user)
			if tt.existing {
				f.clubs.GetMemberFn = func(context.Context, bun.IDB, int64, int64) (*clubdb.Member, error) {
					return &clubdb.Member{ClubID: 5, UserID: 8, Role: clubdomain.MemberRoleMember}, nil
				}
			}
			var promoted *authdomain.Role
			f.users.UpdateRoleFn = func(_ context.Context, _ bun.IDB, _ int64, role authdomain.Role) error {
				promoted = &role
				return nil
			}

			got, err := f.svc.AssignLeader(context.Background(), 5, 8)
			require.NoError(t, err)
			assert.Equal(t, &LeaderAssignment{ClubID: 5, UserID: 8, Role: clubdomain.MemberRoleLeader}, got)
			assert.Contains(t, f.clubs.Calls, tt.wantClubCall)
			if tt.wantPromote {
				require.NotNil(t, promoted)
				assert.Equal(t, authdomain.RoleClubLeader, *promoted)
			} else {
				assert.Nil(t, promoted)
			}
		})
	}

	t.Run("missing club then user", func(t *testing.T) {
		f := newFixture()
		_, err := f.svc.AssignLeader(context.Background(), 5, 8)
		assert.ErrorIs(t, err, ErrClubNotFound)

		f.withClub(clubdb.Club{ID: 5, Name: "Chess"})
		_, err = f.svc.AssignLeader(context.Background(), 5, 8)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("by name", func(t *testing.T) {
		f := newFixture()
		_, err := f.svc.AssignLeaderByName(context.Background(), "Chess", "kim@example.com")
		assert.ErrorIs(t, err, ErrClubNotFound)

		f.withClub(clubdb.Club{ID: 5, Name: "Chess"})
		f.withUser(userdb.User{ID: 8})
		got, err := f.svc.AssignLeaderByName(context.Background(), "Chess", "kim@example.com")
		require.NoError(t, err)
		assert.Equal(t, int64(8), got.UserID)
	})
}

func TestClubService_RemoveMember(t *testing.T) {
	f := newFixture()
	f.clubs.DeleteMemberFn = func(context.Context, bun.IDB, int64, int64) error { return clubdb.ErrMembershipNotFound }
	assert.ErrorIs(t, f.svc.RemoveMember(context.Background(), 5, 8), ErrMembershipNotFound)

	f.clubs.DeleteMemberFn = nil
	assert.NoError(t, f.svc.RemoveMember(context.Background(), 5, 8))
}

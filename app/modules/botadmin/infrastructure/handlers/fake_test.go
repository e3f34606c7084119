package botadminhandlers

import (
	"context"

	botadminservice "github.com/Black-And-White-Club/roomly/app/modules/botadmin/application"
	clubservice "github.com/Black-And-White-Club/roomly/app/modules/club/application"
)

// FakeService is a programmable botadminservice.Service.
type FakeService struct {
	AssignRoleFunc       func(ctx context.Context, req botadminservice.AssignRoleRequest) (*botadminservice.RoleResult, error)
	AssignClubLeaderFunc func(ctx context.Context, req botadminservice.AssignClubLeaderRequest) (*clubservice.LeaderAssignment, error)
	CreateClubFunc       func(ctx context.Context, req botadminservice.CreateClubRequest) (*clubservice.ClubView, error)
	UpsertUserFunc       func(ctx context.Context, req botadminservice.UpsertUserRequest) (*botadminservice.UpsertUserResult, error)
	SetEmailFunc         func(ctx context.Context, req botadminservice.SetEmailRequest) (*botadminservice.SetEmailResult, error)
}

func (f *FakeService) AssignRole(ctx context.Context, req botadminservice.AssignRoleRequest) (*botadminservice.RoleResult, error) {
	if f.AssignRoleFunc != nil {
		return f.AssignRoleFunc(ctx, req)
	}
	return &botadminservice.RoleResult{ID: 1, Role: req.Role}, nil
}

func (f *FakeService) AssignClubLeader(ctx context.Context, req botadminservice.AssignClubLeaderRequest) (*clubservice.LeaderAssignment, error) {
	if f.AssignClubLeaderFunc != nil {
		return f.AssignClubLeaderFunc(ctx, req)
	}
	return &clubservice.LeaderAssignment{ClubID: 1, UserID: 1, Role: "leader"}, nil
}

func (f *FakeService) CreateClub(ctx context.Context, req botadminservice.CreateClubRequest) (*clubservice.ClubView, error) {
	if f.CreateClubFunc != nil {
		return f.CreateClubFunc(ctx, req)
	}
	return &clubservice.ClubView{ID: 1, Name: req.Name}, nil
}

func (f *FakeService) UpsertUser(ctx context.Context, req botadminservice.UpsertUserRequest) (*botadminservice.UpsertUserResult, error) {
	if f.UpsertUserFunc != nil {
		return f.UpsertUserFunc(ctx, req)
	}
	return &botadminservice.UpsertUserResult{ID: 1, TgID: req.TgID}, nil
}

func (f *FakeService) SetEmail(ctx context.Context, req botadminservice.SetEmailRequest) (*botadminservice.SetEmailResult, error) {
	if f.SetEmailFunc != nil {
		return f.SetEmailFunc(ctx, req)
	}
	email := req.Email
	return &botadminservice.SetEmailResult{ID: 1, Email: &email}, nil
}

var _ botadminservice.Service = (*FakeService)(nil)

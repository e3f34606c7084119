package userhandlers

import (
	"context"

	authdomain "github.com/Black-And-White-Club/roomly/app/modules/auth/domain"
	userservice "github.com/Black-And-White-Club/roomly/app/modules/user/application"
)

// FakeService is a programmable userservice.Service.
type FakeService struct {
	SetRoleFunc        func(ctx context.Context, id int64, role authdomain.Role) (*userservice.RoleResult, error)
	SetRoleByEmailFunc func(ctx context.Context, email string, role authdomain.Role) (*userservice.RoleResult, error)
	ListUsersFunc      func(ctx context.Context) ([]userservice.UserSummary, error)
	DeleteUserFunc     func(ctx context.Context, id int64) error
}

func (f *FakeService) SetRole(ctx context.Context, id int64, role authdomain.Role) (*userservice.RoleResult, error) {
	if f.SetRoleFunc != nil {
		return f.SetRoleFunc(ctx, id, role)
	}
	return &userservice.RoleResult{ID: id, Role: role}, nil
}

func (f *FakeService) SetRoleByEmail(ctx context.Context, email string, role authdomain.Role) (*userservice.RoleResult, error) {
	if f.SetRoleByEmailFunc != nil {
		return f.SetRoleByEmailFunc(ctx, email, role)
	}
	return &userservice.RoleResult{Role: role}, nil
}

func (f *FakeService) ListUsers(ctx context.Context) ([]userservice.UserSummary, error) {
	if f.ListUsersFunc != nil {
		return f.ListUsersFunc(ctx)
	}
	return []userservice.UserSummary{}, nil
}

func (f *FakeService) DeleteUser(ctx context.Context, id int64) error {
	if f.DeleteUserFunc != nil {
		return f.DeleteUserFunc(ctx, id)
	}
	return nil
}

var _ userservice.Service = (*FakeService)(nil)

package userservice

import (
	"context"

	authdomain "github.com/Black-And-White-Club/roomly/app/modules/auth/domain"
)

// Service defines the admin user operations.
type Service interface {
	SetRole(ctx context.Context, id int64, role authdomain.Role) (*RoleResult, error)
	// SetRoleByEmail matches the email exactly.
	SetRoleByEmail(ctx context.Context, email string, role authdomain.Role) (*RoleResult, error)
	ListUsers(ctx context.Context) ([]UserSummary, error)
	// DeleteUser removes the user along with the events they created, their
	// participations and memberships.
	DeleteUser(ctx context.Context, id int64) error
}

// RoleRequest is the body of POST /api/admin/users/{id}/role.
type RoleRequest struct {
	Role authdomain.Role `json:"role" validate:"required"`
}

// RoleByEmailRequest is the body of POST /api/admin/users/role.
type RoleByEmailRequest struct {
	Email string          `json:"email" validate:"required"`
	Role  authdomain.Role `json:"role" validate:"required"`
}

// RoleResult reports a user's role after a change.
type RoleResult struct {
	ID   int64           `json:"id"`
	Role authdomain.Role `json:"role"`
}

// UserSummary is the admin listing shape of a user.
type UserSummary struct {
	ID       int64           `json:"id"`
	Email    *string         `json:"email"`
	FullName *string         `json:"full_name"`
	Role     authdomain.Role `json:"role"`
}

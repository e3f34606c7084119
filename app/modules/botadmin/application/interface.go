package botadminservice

import (
	"context"

	authdomain "github.com/Black-And-White-Club/roomly/app/modules/auth/domain"
	clubservice "github.com/Black-And-White-Club/roomly/app/modules/club/application"
)

// Service defines the operations the Telegram relay performs on behalf of
// bot admins.
type Service interface {
	AssignRole(ctx context.Context, req AssignRoleRequest) (*RoleResult, error)
	AssignClubLeader(ctx context.Context, req AssignClubLeaderRequest) (*clubservice.LeaderAssignment, error)
	CreateClub(ctx context.Context, req CreateClubRequest) (*clubservice.ClubView, error)
	UpsertUser(ctx context.Context, req UpsertUserRequest) (*UpsertUserResult, error)
	SetEmail(ctx context.Context, req SetEmailRequest) (*SetEmailResult, error)
}

// UserRef identifies a user by id, email or Telegram id. Zero values count
// as absent.
type UserRef struct {
	UserID *int64  `json:"user_id"`
	TgID   *string `json:"tg_id"`
	Email  *string `json:"email"`
}

// IsEmpty reports whether no identifier is set.
func (r UserRef) IsEmpty() bool {
	return !hasInt(r.UserID) && !hasString(r.TgID) && !hasString(r.Email)
}

func hasInt(v *int64) bool     { return v != nil && *v != 0 }
func hasString(v *string) bool { return v != nil && *v != "" }

type AssignRoleRequest struct {
	UserRef
	Role authdomain.Role `json:"role" validate:"required"`
}

type RoleResult struct {
	ID   int64           `json:"id"`
	Role authdomain.Role `json:"role"`
}

type AssignClubLeaderRequest struct {
	UserRef
	ClubID   *int64  `json:"club_id"`
	ClubName *string `json:"club_name"`
}

type CreateClubRequest struct {
	Name        string `json:"name" validate:"required"`
	OwnerUserID *int64 `json:"owner_user_id"`
}

type UpsertUserRequest struct {
	TgID     string  `json:"tg_id" validate:"required"`
	Username *string `json:"username"`
	FullName *string `json:"full_name"`
	// MarkIntro, when set, overwrites bot_intro_seen.
	MarkIntro *bool `json:"mark_intro"`
}

type UpsertUserResult struct {
	ID           int64   `json:"id"`
	TgID         string  `json:"tg_id"`
	Email        *string `json:"email"`
	BotIntroSeen bool    `json:"bot_intro_seen"`
}

type SetEmailRequest struct {
	UserID *int64  `json:"user_id"`
	TgID   *string `json:"tg_id"`
	Email  string  `json:"email" validate:"required"`
}

type SetEmailResult struct {
	ID    int64   `json:"id"`
	Email *string `json:"email"`
}

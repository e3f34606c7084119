package clubservice

import (
	clubdomain "github.com/Black-And-White-Club/roomly/app/modules/club/domain"
	"github.com/Black-And-White-Club/roomly/app/shared/apperr"
)

var (
	ErrClubNotFound       = apperr.NotFound("club not found")
	ErrUserNotFound       = apperr.NotFound("user not found")
	ErrOwnerNotFound      = apperr.NotFound("owner not found")
	ErrMembershipNotFound = apperr.NotFound("membership not found")
	ErrClubLeaderRequired = apperr.Forbidden("club leader required")
	ErrNotLeaderForClub   = apperr.Forbidden("not a leader for this club")
	ErrLeaderCannotLeave  = apperr.Invalid("leader cannot leave club")
	ErrClubNameExists     = apperr.Conflict("club name exists")
	ErrClubNameRequired   = apperr.Invalid("club_name required")
)

// ClubView is the public shape of a club.
type ClubView struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// AdminClubView adds the owner to ClubView.
type AdminClubView struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	OwnerUserID *int64 `json:"owner_user_id"`
}

// AddMemberRequest names the club and the user to add.
type AddMemberRequest struct {
	ClubName  string `json:"club_name" validate:"required"`
	UserEmail string `json:"user_email" validate:"required"`
}

// CreateClubRequest creates a club. OwnerEmail, when set, wins over OwnerUserID.
type CreateClubRequest struct {
	Name        string  `json:"name" validate:"required"`
	OwnerUserID *int64  `json:"owner_user_id"`
	OwnerEmail  *string `json:"owner_email"`
}

// AssignLeaderRequest is the body of POST /api/admin/clubs/{id}/leaders.
type AssignLeaderRequest struct {
	UserID int64 `json:"user_id" validate:"required"`
}

// AssignLeaderByNameRequest is the body of POST /api/admin/clubs/leader.
type AssignLeaderByNameRequest struct {
	ClubName  string `json:"club_name" validate:"required"`
	UserEmail string `json:"user_email" validate:"required"`
}

// LeaderAssignment reports the membership after a leader assignment.
type LeaderAssignment struct {
	ClubID int64                 `json:"club_id"`
	UserID int64                 `json:"user_id"`
	Role   clubdomain.MemberRole `json:"role"`
}

// LeaveResult confirms a member left a club.
type LeaveResult struct {
	ClubName string `json:"club_name"`
	Status   string `json:"status"`
}

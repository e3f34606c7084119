package clubservice

import (
	"context"

	authdomain "github.com/Black-And-White-Club/roomly/app/modules/auth/domain"
	clubdb "github.com/Black-And-White-Club/roomly/app/modules/club/infrastructure/repositories"
)

// Service defines the club and membership operations.
type Service interface {
	// ListMine returns every club for admins and the led clubs for leaders.
	ListMine(ctx context.Context, p authdomain.Principal) ([]ClubView, error)
	ListMemberships(ctx context.Context, p authdomain.Principal) ([]clubdb.Membership, error)
	AddMember(ctx context.Context, p authdomain.Principal, req AddMemberRequest) (*clubdb.Membership, error)
	LeaveClub(ctx context.Context, p authdomain.Principal, clubName string) (*LeaveResult, error)
	ListRoster(ctx context.Context, p authdomain.Principal, clubName string) ([]clubdb.Roster, error)

	CreateClub(ctx context.Context, req CreateClubRequest) (*ClubView, error)
	ListClubs(ctx context.Context) ([]AdminClubView, error)
	// DeleteClub removes the club with its events, their participants and memberships.
	DeleteClub(ctx context.Context, id int64) error
	AssignLeader(ctx context.Context, clubID, userID int64) (*LeaderAssignment, error)
	AssignLeaderByName(ctx context.Context, clubName, userEmail string) (*LeaderAssignment, error)
	ListAllMembers(ctx context.Context) ([]clubdb.MemberDetail, error)
	RemoveMember(ctx context.Context, clubID, userID int64) error
}

package botadminservice

import (
	"context"

	clubservice "github.com/Black-And-White-Club/roomly/app/modules/club/application"
	clubdomain "github.com/Black-And-White-Club/roomly/app/modules/club/domain"
)

// FakeClubService implements the club operations the bot service delegates
// to. The embedded interface panics for anything else.
type FakeClubService struct {
	clubservice.Service

	AssignLeaderFunc func(ctx context.Context, clubID, userID int64) (*clubservice.LeaderAssignment, error)
	CreateClubFunc   func(ctx context.Context, req clubservice.CreateClubRequest) (*clubservice.ClubView, error)
}

func (f *FakeClubService) AssignLeader(ctx context.Context, clubID, userID int64) (*clubservice.LeaderAssignment, error) {
	if f.AssignLeaderFunc != nil {
		return f.AssignLeaderFunc(ctx, clubID, userID)
	}
	return &clubservice.LeaderAssignment{ClubID: clubID, UserID: userID, Role: clubdomain.MemberRoleLeader}, nil
}

func (f *FakeClubService) CreateClub(ctx context.Context, req clubservice.CreateClubRequest) (*clubservice.ClubView, error) {
	if f.CreateClubFunc != nil {
		return f.CreateClubFunc(ctx, req)
	}
	return &clubservice.ClubView{ID: 1, Name: req.Name}, nil
}

var _ clubservice.Service = (*FakeClubService)(nil)

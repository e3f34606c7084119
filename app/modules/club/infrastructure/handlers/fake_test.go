package clubhandlers

import (
	"context"

	authdomain "github.com/Black-And-White-Club/roomly/app/modules/auth/domain"
	clubservice "github.com/Black-And-White-Club/roomly/app/modules/club/application"
	clubdb "github.com/Black-And-White-Club/roomly/app/modules/club/infrastructure/repositories"
)

// FakeService is a programmable clubservice.Service.
type FakeService struct {
	ListMineFunc           func(ctx context.Context, p authdomain.Principal) ([]clubservice.ClubView, error)
	ListMembershipsFunc    func(ctx context.Context, p authdomain.Principal) ([]clubdb.Membership, error)
	AddMemberFunc          func(ctx context.Context, p authdomain.Principal, req clubservice.AddMemberRequest) (*clubdb.Membership, error)
	LeaveClubFunc          func(ctx context.Context, p authdomain.Principal, clubName string) (*clubservice.LeaveResult, error)
	ListRosterFunc         func(ctx context.Context, p authdomain.Principal, clubName string) ([]clubdb.Roster, error)
	CreateClubFunc         func(ctx context.Context, req clubservice.CreateClubRequest) (*clubservice.ClubView, error)
	ListClubsFunc          func(ctx context.Context) ([]clubservice.AdminClubView, error)
	DeleteClubFunc         func(ctx context.Context, id int64) error
	AssignLeaderFunc       func(ctx context.Context, clubID, userID int64) (*clubservice.LeaderAssignment, error)
	AssignLeaderByNameFunc func(ctx context.Context, clubName, userEmail string) (*clubservice.LeaderAssignment, error)
	ListAllMembersFunc     func(ctx context.Context) ([]clubdb.MemberDetail, error)
	RemoveMemberFunc       func(ctx context.Context, clubID, userID int64) error
}

func (f *FakeService) ListMine(ctx context.Context, p authdomain.Principal) ([]clubservice.ClubView, error) {
	if f.ListMineFunc != nil {
		return f.ListMineFunc(ctx, p)
	}
	return []clubservice.ClubView{}, nil
}

func (f *FakeService) ListMemberships(ctx context.Context, p authdomain.Principal) ([]clubdb.Membership, error) {
	if f.ListMembershipsFunc != nil {
		return f.ListMembershipsFunc(ctx, p)
	}
	return []clubdb.Membership{}, nil
}

func (f *FakeService) AddMember(ctx context.Context, p authdomain.Principal, req clubservice.AddMemberRequest) (*clubdb.Membership, error) {
	if f.AddMemberFunc != nil {
		return f.AddMemberFunc(ctx, p, req)
	}
	return &clubdb.Membership{}, nil
}

func (f *FakeService) LeaveClub(ctx context.Context, p authdomain.Principal, clubName string) (*clubservice.LeaveResult, error) {
	if f.LeaveClubFunc != nil {
		return f.LeaveClubFunc(ctx, p, clubName)
	}
	return &clubservice.LeaveResult{ClubName: clubName, Status: "left"}, nil
}

func (f *FakeService) ListRoster(ctx context.Context, p authdomain.Principal, clubName string) ([]clubdb.Roster, error) {
	if f.ListRosterFunc != nil {
		return f.ListRosterFunc(ctx, p, clubName)
	}
	return []clubdb.Roster{}, nil
}

func (f *FakeService) CreateClub(ctx context.Context, req clubservice.CreateClubRequest) (*clubservice.ClubView, error) {
	if f.CreateClubFunc != nil {
		return f.CreateClubFunc(ctx, req)
	}
	return &clubservice.ClubView{Name: req.Name}, nil
}

func (f *FakeService) ListClubs(ctx context.Context) ([]clubservice.AdminClubView, error) {
	if f.ListClubsFunc != nil {
		return f.ListClubsFunc(ctx)
	}
	return []clubservice.AdminClubView{}, nil
}

func (f *FakeService) DeleteClub(ctx context.Context, id int64) error {
	if f.DeleteClubFunc != nil {
		return f.DeleteClubFunc(ctx, id)
	}
	return nil
}

func (f *FakeService) AssignLeader(ctx context.Context, clubID, userID int64) (*clubservice.LeaderAssignment, error) {
	if f.AssignLeaderFunc != nil {
		return f.AssignLeaderFunc(ctx, clubID, userID)
	}
	return &clubservice.LeaderAssignment{ClubID: clubID, UserID: userID, Role: "leader"}, nil
}

func (f *FakeService) AssignLeaderByName(ctx context.Context, clubName, userEmail string) (*clubservice.LeaderAssignment, error) {
	if f.AssignLeaderByNameFunc != nil {
		return f.AssignLeaderByNameFunc(ctx, clubName, userEmail)
	}
	return &clubservice.LeaderAssignment{Role: "leader"}, nil
}

func (f *FakeService) ListAllMembers(ctx context.Context) ([]clubdb.MemberDetail, error) {
	if f.ListAllMembersFunc != nil {
		return f.ListAllMembersFunc(ctx)
	}
	return []clubdb.MemberDetail{}, nil
}

func (f *FakeService) RemoveMember(ctx context.Context, clubID, userID int64) error {
	if f.RemoveMemberFunc != nil {
		return f.RemoveMemberFunc(ctx, clubID, userID)
	}
	return nil
}

var _ clubservice.Service = (*FakeService)(nil)

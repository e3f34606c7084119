package clubdb

import (
	"context"

	clubdomain "github.com/Black-And-White-Club/roomly/app/modules/club/domain"
	"github.com/uptrace/bun"
)

// FakeRepository is a fake implementation of Repository for testing. It
// records the name of every call in Calls.
type FakeRepository struct {
	Calls []string

	GetByIDFn             func(ctx context.Context, db bun.IDB, id int64) (*Club, error)
	FindByNameFoldFn      func(ctx context.Context, db bun.IDB, name string) (*Club, error)
	FindByNameLikeFn      func(ctx context.Context, db bun.IDB, name string) (*Club, error)
	ListFn                func(ctx context.Context, db bun.IDB) ([]Club, error)
	ListLedByFn           func(ctx context.Context, db bun.IDB, userID int64) ([]Club, error)
	LeaderClubIDsFn       func(ctx context.Context, db bun.IDB, userID int64) ([]int64, error)
	CreateFn              func(ctx context.Context, db bun.IDB, club *Club) error
	DeleteFn              func(ctx context.Context, db bun.IDB, id int64) error
	ClearOwnerFn          func(ctx context.Context, db bun.IDB, userID int64) error
	GetMemberFn           func(ctx context.Context, db bun.IDB, clubID, userID int64) (*Member, error)
	IsLeaderFn            func(ctx context.Context, db bun.IDB, clubID, userID int64) (bool, error)
	AddMemberFn           func(ctx context.Context, db bun.IDB, member *Member) error
	UpdateMemberRoleFn    func(ctx context.Context, db bun.IDB, clubID, userID int64, role clubdomain.MemberRole) error
	DeleteMemberFn        func(ctx context.Context, db bun.IDB, clubID, userID int64) error
	DeleteMembersByClubFn func(ctx context.Context, db bun.IDB, clubID int64) error
	DeleteMembersByUserFn func(ctx context.Context, db bun.IDB, userID int64) error
	ListMembershipsFn     func(ctx context.Context, db bun.IDB, userID int64) ([]Membership, error)
	ListRosterFn          func(ctx context.Context, db bun.IDB, clubID int64) ([]Roster, error)
	ListAllMembersFn      func(ctx context.Context, db bun.IDB) ([]MemberDetail, error)
}

func (f *FakeRepository) record(name string) {
	f.Calls = append(f.Calls, name)
}

func (f *FakeRepository) GetByID(ctx context.Context, db bun.IDB, id int64) (*Club, error) {
	f.record("GetByID")
	if f.GetByIDFn != nil {
		return f.GetByIDFn(ctx, db, id)
	}
	return nil, ErrNotFound
}

func (f *FakeRepository) FindByNameFold(ctx context.Context, db bun.IDB, name string) (*Club, error) {
	f.record("FindByNameFold")
	if f.FindByNameFoldFn != nil {
		return f.FindByNameFoldFn(ctx, db, name)
	}
	return nil, ErrNotFound
}

func (f *FakeRepository) FindByNameLike(ctx context.Context, db bun.IDB, name string) (*Club, error) {
	f.record("FindByNameLike")
	if f.FindByNameLikeFn != nil {
		return f.FindByNameLikeFn(ctx, db, name)
	}
	return nil, ErrNotFound
}

func (f *FakeRepository) List(ctx context.Context, db bun.IDB) ([]Club, error) {
	f.record("List")
	if f.ListFn != nil {
		return f.ListFn(ctx, db)
	}
	return []Club{}, nil
}

func (f *FakeRepository) ListLedBy(ctx context.Context, db bun.IDB, userID int64) ([]Club, error) {
	f.record("ListLedBy")
	if f.ListLedByFn != nil {
		return f.ListLedByFn(ctx, db, userID)
	}
	return []Club{}, nil
}

func (f *FakeRepository) LeaderClubIDs(ctx context.Context, db bun.IDB, userID int64) ([]int64, error) {
	f.record("LeaderClubIDs")
	if f.LeaderClubIDsFn != nil {
		return f.LeaderClubIDsFn(ctx, db, userID)
	}
	return []int64{}, nil
}

func (f *FakeRepository) Create(ctx context.Context, db bun.IDB, club *Club) error {
	f.record("Create")
	if f.CreateFn != nil {
		return f.CreateFn(ctx, db, club)
	}
	return nil
}

func (f *FakeRepository) Delete(ctx context.Context, db bun.IDB, id int64) error {
	f.record("Delete")
	if f.DeleteFn != nil {
		return f.DeleteFn(ctx, db, id)
	}
	return nil
}

func (f *FakeRepository) ClearOwner(ctx context.Context, db bun.IDB, userID int64) error {
	f.record("ClearOwner")
	if f.ClearOwnerFn != nil {
		return f.ClearOwnerFn(ctx, db, userID)
	}
	return nil
}

func (f *FakeRepository) GetMember(ctx context.Context, db bun.IDB, clubID, userID int64) (*Member, error) {
	f.record("GetMember")
	if f.GetMemberFn != nil {
		return f.GetMemberFn(ctx, db, clubID, userID)
	}
	return nil, ErrMembershipNotFound
}

func (f *FakeRepository) IsLeader(ctx context.Context, db bun.IDB, clubID, userID int64) (bool, error) {
	f.record("IsLeader")
	if f.IsLeaderFn != nil {
		return f.IsLeaderFn(ctx, db, clubID, userID)
	}
	return false, nil
}

func (f *FakeRepository) AddMember(ctx context.Context, db bun.IDB, member *Member) error {
	f.record("AddMember")
	if f.AddMemberFn != nil {
		return f.AddMemberFn(ctx, db, member)
	}
	return nil
}

func (f *FakeRepository) UpdateMemberRole(ctx context.Context, db bun.IDB, clubID, userID int64, role clubdomain.MemberRole) error {
	f.record("UpdateMemberRole")
	if f.UpdateMemberRoleFn != nil {
		return f.UpdateMemberRoleFn(ctx, db, clubID, userID, role)
	}
	return nil
}

func (f *FakeRepository) DeleteMember(ctx context.Context, db bun.IDB, clubID, userID int64) error {
	f.record("DeleteMember")
	if f.DeleteMemberFn != nil {
		return f.DeleteMemberFn(ctx, db, clubID, userID)
	}
	return nil
}

func (f *FakeRepository) DeleteMembersByClub(ctx context.Context, db bun.IDB, clubID int64) error {
	f.record("DeleteMembersByClub")
	if f.DeleteMembersByClubFn != nil {
		return f.DeleteMembersByClubFn(ctx, db, clubID)
	}
	return nil
}

func (f *FakeRepository) DeleteMembersByUser(ctx context.Context, db bun.IDB, userID int64) error {
	f.record("DeleteMembersByUser")
	if f.DeleteMembersByUserFn != nil {
		return f.DeleteMembersByUserFn(ctx, db, userID)
	}
	return nil
}

func (f *FakeRepository) ListMemberships(ctx context.Context, db bun.IDB, userID int64) ([]Membership, error) {
	f.record("ListMemberships")
	if f.ListMembershipsFn != nil {
		return f.ListMembershipsFn(ctx, db, userID)
	}
	return []Membership{}, nil
}

func (f *FakeRepository) ListRoster(ctx context.Context, db bun.IDB, clubID int64) ([]Roster, error) {
	f.record("ListRoster")
	if f.ListRosterFn != nil {
		return f.ListRosterFn(ctx, db, clubID)
	}
	return []Roster{}, nil
}

func (f *FakeRepository) ListAllMembers(ctx context.Context, db bun.IDB) ([]MemberDetail, error) {
	f.record("ListAllMembers")
	if f.ListAllMembersFn != nil {
		return f.ListAllMembersFn(ctx, db)
	}
	return []MemberDetail{}, nil
}

var _ Repository = (*FakeRepository)(nil)

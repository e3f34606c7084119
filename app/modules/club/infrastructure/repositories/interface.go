package clubdb

import (
	"context"

	clubdomain "github.com/Black-And-White-Club/roomly/app/modules/club/domain"
	"github.com/uptrace/bun"
)

// Repository defines the contract for club and membership persistence.
type Repository interface {
	GetByID(ctx context.Context, db bun.IDB, id int64) (*Club, error)
	// FindByNameFold matches the trimmed name case-insensitively.
	FindByNameFold(ctx context.Context, db bun.IDB, name string) (*Club, error)
	// FindByNameLike matches name with ILIKE as given.
	FindByNameLike(ctx context.Context, db bun.IDB, name string) (*Club, error)
	// List returns all clubs ordered by name.
	List(ctx context.Context, db bun.IDB) ([]Club, error)
	// ListLedBy returns the clubs the user leads ordered by name.
	ListLedBy(ctx context.Context, db bun.IDB, userID int64) ([]Club, error)
	LeaderClubIDs(ctx context.Context, db bun.IDB, userID int64) ([]int64, error)
	Create(ctx context.Context, db bun.IDB, club *Club) error
	Delete(ctx context.Context, db bun.IDB, id int64) error
	ClearOwner(ctx context.Context, db bun.IDB, userID int64) error

	GetMember(ctx context.Context, db bun.IDB, clubID, userID int64) (*Member, error)
	IsLeader(ctx context.Context, db bun.IDB, clubID, userID int64) (bool, error)
	AddMember(ctx context.Context, db bun.IDB, member *Member) error
	UpdateMemberRole(ctx context.Context, db bun.IDB, clubID, userID int64, role clubdomain.MemberRole) error
	DeleteMember(ctx context.Context, db bun.IDB, clubID, userID int64) error
	DeleteMembersByClub(ctx context.Context, db bun.IDB, clubID int64) error
	DeleteMembersByUser(ctx context.Context, db bun.IDB, userID int64) error

	// ListMemberships returns the user's clubs ordered by club name.
	ListMemberships(ctx context.Context, db bun.IDB, userID int64) ([]Membership, error)
	// ListRoster returns a club's members ordered by full name then email.
	ListRoster(ctx context.Context, db bun.IDB, clubID int64) ([]Roster, error)
	// ListAllMembers returns every membership ordered by club name then email.
	ListAllMembers(ctx context.Context, db bun.IDB) ([]MemberDetail, error)
}

package clubdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	clubdomain "github.com/Black-And-White-Club/roomly/app/modules/club/domain"
	"github.com/uptrace/bun"
)

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new club repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

// resolveDB returns the provided db handle, falling back to the repository's
// default connection if db is nil.
func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

func (r *Impl) getOne(ctx context.Context, db bun.IDB, where string, arg any) (*Club, error) {
	club := new(Club)
	err := r.resolveDB(db).NewSelect().
		Model(club).
		Where(where, arg).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get club: %w", err)
	}
	return club, nil
}

// GetByID retrieves a club by its id.
func (r *Impl) GetByID(ctx context.Context, db bun.IDB, id int64) (*Club, error) {
	return r.getOne(ctx, db, "c.id = ?", id)
}

func (r *Impl) FindByNameFold(ctx context.Context, db bun.IDB, name string) (*Club, error) {
	return r.getOne(ctx, db, "lower(c.name) = lower(?)", strings.TrimSpace(name))
}

func (r *Impl) FindByNameLike(ctx context.Context, db bun.IDB, name string) (*Club, error) {
	return r.getOne(ctx, db, "c.name ILIKE ?", name)
}

func (r *Impl) List(ctx context.Context, db bun.IDB) ([]Club, error) {
	clubs := make([]Club, 0)
	if err := r.resolveDB(db).NewSelect().
		Model(&clubs).
		Order("c.name ASC").
		Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list clubs: %w", err)
	}
	return clubs, nil
}

func (r *Impl) ListLedBy(ctx context.Context, db bun.IDB, userID int64) ([]Club, error) {
	clubs := make([]Club, 0)
	if err := r.resolveDB(db).NewSelect().
		Model(&clubs).
		Join("JOIN club_members AS cm ON cm.club_id = c.id").
		Where("cm.user_id = ?", userID).
		Where("cm.role = ?", clubdomain.MemberRoleLeader).
		Order("c.name ASC").
		Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list led clubs: %w", err)
	}
	return clubs, nil
}

func (r *Impl) LeaderClubIDs(ctx context.Context, db bun.IDB, userID int64) ([]int64, error) {
	ids := make([]int64, 0)
	if err := r.resolveDB(db).NewSelect().
		Model((*Member)(nil)).
		Column("club_id").
		Where("user_id = ?", userID).
		Where("role = ?", clubdomain.MemberRoleLeader).
		Scan(ctx, &ids); err != nil {
		return nil, fmt.Errorf("failed to select leader club ids: %w", err)
	}
	return ids, nil
}

func (r *Impl) Create(ctx context.Context, db bun.IDB, club *Club) error {
	if _, err := r.resolveDB(db).NewInsert().
		Model(club).
		Returning("id, created_at").
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to create club: %w", err)
	}
	return nil
}

func (r *Impl) Delete(ctx context.Context, db bun.IDB, id int64) error {
	result, err := r.resolveDB(db).NewDelete().
		Model((*Club)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete club: %w", err)
	}
	return requireRow(result, ErrNotFound)
}

func (r *Impl) ClearOwner(ctx context.Context, db bun.IDB, userID int64) error {
	if _, err := r.resolveDB(db).NewUpdate().
		Model((*Club)(nil)).
		Set("owner_user_id = NULL").
		Where("owner_user_id = ?", userID).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to clear club owner: %w", err)
	}
	return nil
}

func (r *Impl) GetMember(ctx context.Context, db bun.IDB, clubID, userID int64) (*Member, error) {
	member := new(Member)
	err := r.resolveDB(db).NewSelect().
		Model(member).
		Where("cm.club_id = ?", clubID).
		Where("cm.user_id = ?", userID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMembershipNotFound
		}
		return nil, fmt.Errorf("failed to get club member: %w", err)
	}
	return member, nil
}

func (r *Impl) IsLeader(ctx context.Context, db bun.IDB, clubID, userID int64) (bool, error) {
	ok, err := r.resolveDB(db).NewSelect().
		Model((*Member)(nil)).
		Where("club_id = ?", clubID).
		Where("user_id = ?", userID).
		Where("role = ?", clubdomain.MemberRoleLeader).
		Exists(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check club leader: %w", err)
	}
	return ok, nil
}

func (r *Impl) AddMember(ctx context.Context, db bun.IDB, member *Member) error {
	if member.Role == "" {
		member.Role = clubdomain.MemberRoleMember
	}
	if _, err := r.resolveDB(db).NewInsert().
		Model(member).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to add club member: %w", err)
	}
	return nil
}

func (r *Impl) UpdateMemberRole(ctx context.Context, db bun.IDB, clubID, userID int64, role clubdomain.MemberRole) error {
	result, err := r.resolveDB(db).NewUpdate().
		Model((*Member)(nil)).
		Set("role = ?", role).
		Where("club_id = ?", clubID).
		Where("user_id = ?", userID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update club member role: %w", err)
	}
	return requireRow(result, ErrMembershipNotFound)
}

func (r *Impl) DeleteMember(ctx context.Context, db bun.IDB, clubID, userID int64) error {
	result, err := r.resolveDB(db).NewDelete().
		Model((*Member)(nil)).
		Where("club_id = ?", clubID).
		Where("user_id = ?", userID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete club member: %w", err)
	}
	return requireRow(result, ErrMembershipNotFound)
}

func (r *Impl) DeleteMembersByClub(ctx context.Context, db bun.IDB, clubID int64) error {
	if _, err := r.resolveDB(db).NewDelete().
		Model((*Member)(nil)).
		Where("club_id = ?", clubID).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete club members: %w", err)
	}
	return nil
}

func (r *Impl) DeleteMembersByUser(ctx context.Context, db bun.IDB, userID int64) error {
	if _, err := r.resolveDB(db).NewDelete().
		Model((*Member)(nil)).
		Where("user_id = ?", userID).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete user memberships: %w", err)
	}
	return nil
}

func (r *Impl) ListMemberships(ctx context.Context, db bun.IDB, userID int64) ([]Membership, error) {
	rows := make([]Membership, 0)
	if err := r.resolveDB(db).NewSelect().
		TableExpr("club_members AS cm").
		ColumnExpr("c.id, c.name, cm.role").
		Join("JOIN clubs AS c ON c.id = cm.club_id").
		Where("cm.user_id = ?", userID).
		OrderExpr("c.name ASC").
		Scan(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}
	return rows, nil
}

func (r *Impl) ListRoster(ctx context.Context, db bun.IDB, clubID int64) ([]Roster, error) {
	rows := make([]Roster, 0)
	if err := r.resolveDB(db).NewSelect().
		TableExpr("club_members AS cm").
		ColumnExpr("u.email, u.full_name, cm.role").
		Join("JOIN users AS u ON u.id = cm.user_id").
		Where("cm.club_id = ?", clubID).
		OrderExpr("u.full_name ASC, u.email ASC").
		Scan(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to list club roster: %w", err)
	}
	return rows, nil
}

func (r *Impl) ListAllMembers(ctx context.Context, db bun.IDB) ([]MemberDetail, error) {
	rows := make([]MemberDetail, 0)
	if err := r.resolveDB(db).NewSelect().
		TableExpr("club_members AS cm").
		ColumnExpr("cm.club_id, c.name AS club_name, cm.user_id, u.email AS user_email, cm.role").
		Join("JOIN clubs AS c ON c.id = cm.club_id").
		Join("JOIN users AS u ON u.id = cm.user_id").
		OrderExpr("c.name ASC, u.email ASC").
		Scan(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to list club members: %w", err)
	}
	return rows, nil
}

func requireRow(result sql.Result, notFound error) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return notFound
	}
	return nil
}

package userdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	authdomain "github.com/Black-And-White-Club/roomly/app/modules/auth/domain"
	"github.com/uptrace/bun"
)

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new user repository.
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

func (r *Impl) getOne(ctx context.Context, db bun.IDB, what string, where string, args ...any) (*User, error) {
	user := new(User)
	err := r.resolveDB(db).NewSelect().
		Model(user).
		Where(where, args...).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by %s: %w", what, err)
	}
	return user, nil
}

func (r *Impl) GetByID(ctx context.Context, db bun.IDB, id int64) (*User, error) {
	return r.getOne(ctx, db, "id", "u.id = ?", id)
}

func (r *Impl) GetByTgID(ctx context.Context, db bun.IDB, tgID string) (*User, error) {
	return r.getOne(ctx, db, "tg_id", "u.tg_id = ?", tgID)
}

func (r *Impl) GetByEmail(ctx context.Context, db bun.IDB, email string) (*User, error) {
	return r.getOne(ctx, db, "email", "u.email = ?", email)
}

func (r *Impl) FindByEmailFold(ctx context.Context, db bun.IDB, email string) (*User, error) {
	return r.getOne(ctx, db, "email", "lower(u.email) = lower(?)", strings.TrimSpace(email))
}

func (r *Impl) FindByEmailLike(ctx context.Context, db bun.IDB, email string) (*User, error) {
	return r.getOne(ctx, db, "email", "u.email ILIKE ?", email)
}

func (r *Impl) List(ctx context.Context, db bun.IDB) ([]User, error) {
	var users []User
	err := r.resolveDB(db).NewSelect().
		Model(&users).
		Order("u.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (r *Impl) Create(ctx context.Context, db bun.IDB, user *User) error {
	if user.Role == "" {
		user.Role = authdomain.RoleStudent
	}
	_, err := r.resolveDB(db).NewInsert().
		Model(user).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *Impl) Update(ctx context.Context, db bun.IDB, user *User) error {
	result, err := r.resolveDB(db).NewUpdate().
		Model(user).
		Column("email", "username", "full_name", "role", "bot_intro_seen").
		WherePK().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return requireRow(result)
}

func (r *Impl) UpdateRole(ctx context.Context, db bun.IDB, id int64, role authdomain.Role) error {
	result, err := r.resolveDB(db).NewUpdate().
		Model((*User)(nil)).
		Set("role = ?", role).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update user role: %w", err)
	}
	return requireRow(result)
}

func (r *Impl) Delete(ctx context.Context, db bun.IDB, id int64) error {
	result, err := r.resolveDB(db).NewDelete().
		Model((*User)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return requireRow(result)
}

func requireRow(result sql.Result) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

package roomdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/uptrace/bun"
)

// ErrNotFound is returned when a room is not found.
var ErrNotFound = errors.New("room not found")

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new room repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

func (r *Impl) List(ctx context.Context, db bun.IDB, activeOnly bool) ([]Room, error) {
	rooms := make([]Room, 0)
	q := r.resolveDB(db).NewSelect().Model(&rooms)
	if activeOnly {
		q = q.Where("r.is_active = TRUE")
	}
	if err := q.Order("r.code ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	return rooms, nil
}

func (r *Impl) getOne(ctx context.Context, db bun.IDB, where string, arg any) (*Room, error) {
	room := new(Room)
	err := r.resolveDB(db).NewSelect().
		Model(room).
		Where(where, arg).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get room: %w", err)
	}
	return room, nil
}

func (r *Impl) GetByID(ctx context.Context, db bun.IDB, id int64) (*Room, error) {
	return r.getOne(ctx, db, "r.id = ?", id)
}

func (r *Impl) GetByCode(ctx context.Context, db bun.IDB, code string) (*Room, error) {
	return r.getOne(ctx, db, "r.code = ?", code)
}

func (r *Impl) FindByCodeFold(ctx context.Context, db bun.IDB, code string) (*Room, error) {
	return r.getOne(ctx, db, "lower(r.code) = lower(?)", strings.TrimSpace(code))
}

func (r *Impl) Create(ctx context.Context, db bun.IDB, room *Room) error {
	_, err := r.resolveDB(db).NewInsert().
		Model(room).
		Returning("id").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create room: %w", err)
	}
	return nil
}

func (r *Impl) Update(ctx context.Context, db bun.IDB, room *Room) error {
	result, err := r.resolveDB(db).NewUpdate().
		Model(room).
		Column("building", "floor", "room_type", "capacity", "is_active").
		WherePK().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update room: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Impl) Delete(ctx context.Context, db bun.IDB, id int64) error {
	_, err := r.resolveDB(db).NewDelete().
		Model((*Room)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}
	return nil
}

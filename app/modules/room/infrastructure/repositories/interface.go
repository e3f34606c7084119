package roomdb

import (
	"context"

	"github.com/uptrace/bun"
)

// Repository defines the contract for room persistence.
type Repository interface {
	// List returns rooms ordered by code; activeOnly skips inactive ones.
	List(ctx context.Context, db bun.IDB, activeOnly bool) ([]Room, error)
	GetByID(ctx context.Context, db bun.IDB, id int64) (*Room, error)
	// GetByCode matches the code exactly.
	GetByCode(ctx context.Context, db bun.IDB, code string) (*Room, error)
	// FindByCodeFold matches the trimmed code case-insensitively.
	FindByCodeFold(ctx context.Context, db bun.IDB, code string) (*Room, error)
	Create(ctx context.Context, db bun.IDB, room *Room) error
	Update(ctx context.Context, db bun.IDB, room *Room) error
	Delete(ctx context.Context, db bun.IDB, id int64) error
}

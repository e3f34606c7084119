package userdb

import (
	"context"

	authdomain "github.com/Black-And-White-Club/roomly/app/modules/auth/domain"
	"github.com/uptrace/bun"
)

// Repository defines the contract for user persistence. Every method takes an
// optional bun.IDB so callers can run it inside their transaction.
type Repository interface {
	GetByID(ctx context.Context, db bun.IDB, id int64) (*User, error)
	GetByTgID(ctx context.Context, db bun.IDB, tgID string) (*User, error)
	// GetByEmail matches the address exactly.
	GetByEmail(ctx context.Context, db bun.IDB, email string) (*User, error)
	// FindByEmailFold matches the trimmed address case-insensitively.
	FindByEmailFold(ctx context.Context, db bun.IDB, email string) (*User, error)
	// FindByEmailLike matches the address with ILIKE as given.
	FindByEmailLike(ctx context.Context, db bun.IDB, email string) (*User, error)
	List(ctx context.Context, db bun.IDB) ([]User, error)
	Create(ctx context.Context, db bun.IDB, user *User) error
	Update(ctx context.Context, db bun.IDB, user *User) error
	UpdateRole(ctx context.Context, db bun.IDB, id int64, role authdomain.Role) error
	Delete(ctx context.Context, db bun.IDB, id int64) error
}

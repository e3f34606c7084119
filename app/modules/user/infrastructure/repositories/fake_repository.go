package userdb

import (
	"context"

	authdomain "github.com/Black-And-White-Club/roomly/app/modules/auth/domain"
	"github.com/uptrace/bun"
)

// FakeRepository is a fake implementation of Repository for testing.
type FakeRepository struct {
	GetByIDFn         func(ctx context.Context, db bun.IDB, id int64) (*User, error)
	GetByTgIDFn       func(ctx context.Context, db bun.IDB, tgID string) (*User, error)
	GetByEmailFn      func(ctx context.Context, db bun.IDB, email string) (*User, error)
	FindByEmailFoldFn func(ctx context.Context, db bun.IDB, email string) (*User, error)
	FindByEmailLikeFn func(ctx context.Context, db bun.IDB, email string) (*User, error)
	ListFn            func(ctx context.Context, db bun.IDB) ([]User, error)
	CreateFn          func(ctx context.Context, db bun.IDB, user *User) error
	UpdateFn          func(ctx context.Context, db bun.IDB, user *User) error
	UpdateRoleFn      func(ctx context.Context, db bun.IDB, id int64, role authdomain.Role) error
	DeleteFn          func(ctx context.Context, db bun.IDB, id int64) error
}

func (f *FakeRepository) GetByID(ctx context.Context, db bun.IDB, id int64) (*User, error) {
	if f.GetByIDFn != nil {
		return f.GetByIDFn(ctx, db, id)
	}
	return nil, ErrNotFound
}

func (f *FakeRepository) GetByTgID(ctx context.Context, db bun.IDB, tgID string) (*User, error) {
	if f.GetByTgIDFn != nil {
		return f.GetByTgIDFn(ctx, db, tgID)
	}
	return nil, ErrNotFound
}

func (f *FakeRepository) GetByEmail(ctx context.Context, db bun.IDB, email string) (*User, error) {
	if f.GetByEmailFn != nil {
		return f.GetByEmailFn(ctx, db, email)
	}
	return nil, ErrNotFound
}

func (f *FakeRepository) FindByEmailFold(ctx context.Context, db bun.IDB, email string) (*User, error) {
	if f.FindByEmailFoldFn != nil {
		return f.FindByEmailFoldFn(ctx, db, email)
	}
	return nil, ErrNotFound
}

func (f *FakeRepository) FindByEmailLike(ctx context.Context, db bun.IDB, email string) (*User, error) {
	if f.FindByEmailLikeFn != nil {
		return f.FindByEmailLikeFn(ctx, db, email)
	}
	return nil, ErrNotFound
}

func (f *FakeRepository) List(ctx context.Context, db bun.IDB) ([]User, error) {
	if f.ListFn != nil {
		return f.ListFn(ctx, db)
	}
	return nil, nil
}

func (f *FakeRepository) Create(ctx context.Context, db bun.IDB, user *User) error {
	if f.CreateFn != nil {
		return f.CreateFn(ctx, db, user)
	}
	return nil
}

func (f *FakeRepository) Update(ctx context.Context, db bun.IDB, user *User) error {
	if f.UpdateFn != nil {
		return f.UpdateFn(ctx, db, user)
	}
	return nil
}

func (f *FakeRepository) UpdateRole(ctx context.Context, db bun.IDB, id int64, role authdomain.Role) error {
	if f.UpdateRoleFn != nil {
		return f.UpdateRoleFn(ctx, db, id, role)
	}
	return nil
}

func (f *FakeRepository) Delete(ctx context.Context, db bun.IDB, id int64) error {
	if f.DeleteFn != nil {
		return f.DeleteFn(ctx, db, id)
	}
	return nil
}

var _ Repository = (*FakeRepository)(nil)

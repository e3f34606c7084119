package roomdb

import (
	"context"

	"github.com/uptrace/bun"
)

// FakeRepository is a fake implementation of Repository for testing.
type FakeRepository struct {
	ListFn           func(ctx context.Context, db bun.IDB, activeOnly bool) ([]Room, error)
	GetByIDFn        func(ctx context.Context, db bun.IDB, id int64) (*Room, error)
	GetByCodeFn      func(ctx context.Context, db bun.IDB, code string) (*Room, error)
	FindByCodeFoldFn func(ctx context.Context, db bun.IDB, code string) (*Room, error)
	CreateFn         func(ctx context.Context, db bun.IDB, room *Room) error
	UpdateFn         func(ctx context.Context, db bun.IDB, room *Room) error
	DeleteFn         func(ctx context.Context, db bun.IDB, id int64) error
}

func (f *FakeRepository) List(ctx context.Context, db bun.IDB, activeOnly bool) ([]Room, error) {
	if f.ListFn != nil {
		return f.ListFn(ctx, db, activeOnly)
	}
	return []Room{}, nil
}

func (f *FakeRepository) GetByID(ctx context.Context, db bun.IDB, id int64) (*Room, error) {
	if f.GetByIDFn != nil {
		return f.GetByIDFn(ctx, db, id)
	}
	return nil, ErrNotFound
}

func (f *FakeRepository) GetByCode(ctx context.Context, db bun.IDB, code string) (*Room, error) {
	if f.GetByCodeFn != nil {
		return f.GetByCodeFn(ctx, db, code)
	}
	return nil, ErrNotFound
}

func (f *FakeRepository) FindByCodeFold(ctx context.Context, db bun.IDB, code string) (*Room, error) {
	if f.FindByCodeFoldFn != nil {
		return f.FindByCodeFoldFn(ctx, db, code)
	}
	return nil, ErrNotFound
}

func (f *FakeRepository) Create(ctx context.Context, db bun.IDB, room *Room) error {
	if f.CreateFn != nil {
		return f.CreateFn(ctx, db, room)
	}
	return nil
}

func (f *FakeRepository) Update(ctx context.Context, db bun.IDB, room *Room) error {
	if f.UpdateFn != nil {
		return f.UpdateFn(ctx, db, room)
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

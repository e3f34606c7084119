package roomhandlers

import (
	"context"

	roomservice "github.com/Black-And-White-Club/roomly/app/modules/room/application"
	roomdb "github.com/Black-And-White-Club/roomly/app/modules/room/infrastructure/repositories"
)

// FakeService is a programmable roomservice.Service.
type FakeService struct {
	ListAvailableFunc func(ctx context.Context) ([]roomdb.Room, error)
	ListAllFunc       func(ctx context.Context) ([]roomdb.Room, error)
	CreateFunc        func(ctx context.Context, req roomservice.CreateRoomRequest) (*roomdb.Room, error)
	UpdateFunc        func(ctx context.Context, code string, req roomservice.UpdateRoomRequest) (*roomdb.Room, error)
	DeleteFunc        func(ctx context.Context, code string) error
}

func (f *FakeService) ListAvailable(ctx context.Context) ([]roomdb.Room, error) {
	if f.ListAvailableFunc != nil {
		return f.ListAvailableFunc(ctx)
	}
	return []roomdb.Room{}, nil
}

func (f *FakeService) ListAll(ctx context.Context) ([]roomdb.Room, error) {
	if f.ListAllFunc != nil {
		return f.ListAllFunc(ctx)
	}
	return []roomdb.Room{}, nil
}

func (f *FakeService) Create(ctx context.Context, req roomservice.CreateRoomRequest) (*roomdb.Room, error) {
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, req)
	}
	return &roomdb.Room{Code: req.Code, IsActive: true}, nil
}

func (f *FakeService) Update(ctx context.Context, code string, req roomservice.UpdateRoomRequest) (*roomdb.Room, error) {
	if f.UpdateFunc != nil {
		return f.UpdateFunc(ctx, code, req)
	}
	return &roomdb.Room{Code: code}, nil
}

func (f *FakeService) Delete(ctx context.Context, code string) error {
	if f.DeleteFunc != nil {
		return f.DeleteFunc(ctx, code)
	}
	return nil
}

var _ roomservice.Service = (*FakeService)(nil)

package calendardb

import (
	"context"
	"time"

	calendardomain "github.com/Black-And-White-Club/roomly/app/modules/calendar/domain"
	"github.com/uptrace/bun"
)

// FakeRepository is a fake implementation of Repository for testing. It
// records the name of every call in Calls.
type FakeRepository struct {
	Calls []string

	GetByIDFn                    func(ctx context.Context, db bun.IDB, id int64) (*Event, error)
	ListFn                       func(ctx context.Context, db bun.IDB, filter ListFilter) ([]Event, error)
	CreateFn                     func(ctx context.Context, db bun.IDB, event *Event) error
	UpdateStatusFn               func(ctx context.Context, db bun.IDB, id int64, status calendardomain.Status) error
	ReviewFn                     func(ctx context.Context, db bun.IDB, id int64, status calendardomain.Status, reviewerID int64, at time.Time) error
	IDsByClubFn                  func(ctx context.Context, db bun.IDB, clubID int64) ([]int64, error)
	IDsByCreatorFn               func(ctx context.Context, db bun.IDB, userID int64) ([]int64, error)
	DeleteWithParticipantsFn     func(ctx context.Context, db bun.IDB, ids []int64) error
	ClearApproverFn              func(ctx context.Context, db bun.IDB, userID int64) error
	DetachRoomFn                 func(ctx context.Context, db bun.IDB, roomID int64) error
	AddParticipantsFn            func(ctx context.Context, db bun.IDB, eventID int64, userIDs []int64) error
	ListParticipantsFn           func(ctx context.Context, db bun.IDB) ([]ParticipantDetail, error)
	DeleteParticipantFn          func(ctx context.Context, db bun.IDB, eventID, userID int64) error
	DeleteParticipationsByUserFn func(ctx context.Context, db bun.IDB, userID int64) error
}

func (f *FakeRepository) record(name string) {
	f.Calls = append(f.Calls, name)
}

func (f *FakeRepository) GetByID(ctx context.Context, db bun.IDB, id int64) (*Event, error) {
	f.record("GetByID")
	if f.GetByIDFn != nil {
		return f.GetByIDFn(ctx, db, id)
	}
	return nil, ErrNotFound
}

func (f *FakeRepository) List(ctx context.Context, db bun.IDB, filter ListFilter) ([]Event, error) {
	f.record("List")
	if f.ListFn != nil {
		return f.ListFn(ctx, db, filter)
	}
	return []Event{}, nil
}

func (f *FakeRepository) Create(ctx context.Context, db bun.IDB, event *Event) error {
	f.record("Create")
	if f.CreateFn != nil {
		return f.CreateFn(ctx, db, event)
	}
	return nil
}

func (f *FakeRepository) UpdateStatus(ctx context.Context, db bun.IDB, id int64, status calendardomain.Status) error {
	f.record("UpdateStatus")
	if f.UpdateStatusFn != nil {
		return f.UpdateStatusFn(ctx, db, id, status)
	}
	return nil
}

func (f *FakeRepository) Review(ctx context.Context, db bun.IDB, id int64, status calendardomain.Status, reviewerID int64, at time.Time) error {
	f.record("Review")
	if f.ReviewFn != nil {
		return f.ReviewFn(ctx, db, id, status, reviewerID, at)
	}
	return nil
}

func (f *FakeRepository) IDsByClub(ctx context.Context, db bun.IDB, clubID int64) ([]int64, error) {
	f.record("IDsByClub")
	if f.IDsByClubFn != nil {
		return f.IDsByClubFn(ctx, db, clubID)
	}
	return nil, nil
}

func (f *FakeRepository) IDsByCreator(ctx context.Context, db bun.IDB, userID int64) ([]int64, error) {
	f.record("IDsByCreator")
	if f.IDsByCreatorFn != nil {
		return f.IDsByCreatorFn(ctx, db, userID)
	}
	return nil, nil
}

func (f *FakeRepository) DeleteWithParticipants(ctx context.Context, db bun.IDB, ids []int64) error {
	f.record("DeleteWithParticipants")
	if f.DeleteWithParticipantsFn != nil {
		return f.DeleteWithParticipantsFn(ctx, db, ids)
	}
	return nil
}

func (f *FakeRepository) ClearApprover(ctx context.Context, db bun.IDB, userID int64) error {
	f.record("ClearApprover")
	if f.ClearApproverFn != nil {
		return f.ClearApproverFn(ctx, db, userID)
	}
	return nil
}

func (f *FakeRepository) DetachRoom(ctx context.Context, db bun.IDB, roomID int64) error {
	f.record("DetachRoom")
	if f.DetachRoomFn != nil {
		return f.DetachRoomFn(ctx, db, roomID)
	}
	return nil
}

func (f *FakeRepository) AddParticipants(ctx context.Context, db bun.IDB, eventID int64, userIDs []int64) error {
	f.record("AddParticipants")
	if f.AddParticipantsFn != nil {
		return f.AddParticipantsFn(ctx, db, eventID, userIDs)
	}
	return nil
}

func (f *FakeRepository) ListParticipants(ctx context.Context, db bun.IDB) ([]ParticipantDetail, error) {
	f.record("ListParticipants")
	if f.ListParticipantsFn != nil {
		return f.ListParticipantsFn(ctx, db)
	}
	return []ParticipantDetail{}, nil
}

func (f *FakeRepository) DeleteParticipant(ctx context.Context, db bun.IDB, eventID, userID int64) error {
	f.record("DeleteParticipant")
	if f.DeleteParticipantFn != nil {
		return f.DeleteParticipantFn(ctx, db, eventID, userID)
	}
	return nil
}

func (f *FakeRepository) DeleteParticipationsByUser(ctx context.Context, db bun.IDB, userID int64) error {
	f.record("DeleteParticipationsByUser")
	if f.DeleteParticipationsByUserFn != nil {
		return f.DeleteParticipationsByUserFn(ctx, db, userID)
	}
	return nil
}

var _ Repository = (*FakeRepository)(nil)

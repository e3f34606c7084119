package calendardb

import (
	"context"
	"time"

	calendardomain "github.com/Black-And-White-Club/roomly/app/modules/calendar/domain"
	"github.com/uptrace/bun"
)

// Repository defines the contract for calendar persistence.
type Repository interface {
	GetByID(ctx context.Context, db bun.IDB, id int64) (*Event, error)
	// List returns events ordered by starts_at descending.
	List(ctx context.Context, db bun.IDB, filter ListFilter) ([]Event, error)
	Create(ctx context.Context, db bun.IDB, event *Event) error
	UpdateStatus(ctx context.Context, db bun.IDB, id int64, status calendardomain.Status) error
	// Review sets the status together with the reviewing admin.
	Review(ctx context.Context, db bun.IDB, id int64, status calendardomain.Status, reviewerID int64, at time.Time) error

	// IDsByClub and IDsByCreator feed the cascading deletes.
	IDsByClub(ctx context.Context, db bun.IDB, clubID int64) ([]int64, error)
	IDsByCreator(ctx context.Context, db bun.IDB, userID int64) ([]int64, error)
	// DeleteWithParticipants removes the events and their participant rows.
	DeleteWithParticipants(ctx context.Context, db bun.IDB, ids []int64) error
	ClearApprover(ctx context.Context, db bun.IDB, userID int64) error
	DetachRoom(ctx context.Context, db bun.IDB, roomID int64) error

	AddParticipants(ctx context.Context, db bun.IDB, eventID int64, userIDs []int64) error
	ListParticipants(ctx context.Context, db bun.IDB) ([]ParticipantDetail, error)
	DeleteParticipant(ctx context.Context, db bun.IDB, eventID, userID int64) error
	DeleteParticipationsByUser(ctx context.Context, db bun.IDB, userID int64) error
}

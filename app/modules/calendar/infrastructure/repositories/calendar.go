package calendardb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	calendardomain "github.com/Black-And-White-Club/roomly/app/modules/calendar/domain"
	"github.com/uptrace/bun"
)

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new calendar repository.
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

func selectEvents(db bun.IDB, dst any) *bun.SelectQuery {
	return db.NewSelect().
		Model(dst).
		ColumnExpr("ce.*").
		ColumnExpr("r.code AS room_code").
		Join("LEFT JOIN rooms AS r ON r.id = ce.room_id")
}

func (r *Impl) GetByID(ctx context.Context, db bun.IDB, id int64) (*Event, error) {
	event := new(Event)
	err := selectEvents(r.resolveDB(db), event).
		Where("ce.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return event, nil
}

func (r *Impl) List(ctx context.Context, db bun.IDB, filter ListFilter) ([]Event, error) {
	events := make([]Event, 0)
	q := selectEvents(r.resolveDB(db), &events)

	if filter.ClubIDs != nil {
		if len(filter.ClubIDs) == 0 {
			return events, nil
		}
		q = q.Where("ce.club_id IN (?)", bun.In(filter.ClubIDs))
	}
	if filter.ParticipantID != 0 {
		q = q.Join("JOIN event_participants AS ep ON ep.event_id = ce.id").
			Where("ep.user_id = ?", filter.ParticipantID)
	}
	if filter.Status != "" {
		q = q.Where("ce.status = ?", filter.Status)
	}
	if filter.Before != nil {
		q = q.WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("ce.rrule IS NOT NULL").
				WhereOr("ce.starts_at < ?", *filter.Before)
		})
	}

	if err := q.OrderExpr("ce.starts_at DESC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

func (r *Impl) Create(ctx context.Context, db bun.IDB, event *Event) error {
	_, err := r.resolveDB(db).NewInsert().
		Model(event).
		Returning("id, created_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	return nil
}

func (r *Impl) UpdateStatus(ctx context.Context, db bun.IDB, id int64, status calendardomain.Status) error {
	result, err := r.resolveDB(db).NewUpdate().
		Model((*Event)(nil)).
		Set("status = ?", status).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update event status: %w", err)
	}
	return requireRow(result, ErrNotFound)
}

func (r *Impl) Review(ctx context.Context, db bun.IDB, id int64, status calendardomain.Status, reviewerID int64, at time.Time) error {
	result, err := r.resolveDB(db).NewUpdate().
		Model((*Event)(nil)).
		Set("status = ?", status).
		Set("approved_by = ?", reviewerID).
		Set("approved_at = ?", at).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to review event: %w", err)
	}
	return requireRow(result, ErrNotFound)
}

func (r *Impl) idsWhere(ctx context.Context, db bun.IDB, where string, arg any) ([]int64, error) {
	ids := make([]int64, 0)
	err := r.resolveDB(db).NewSelect().
		Model((*Event)(nil)).
		Column("id").
		Where(where, arg).
		Scan(ctx, &ids)
	if err != nil {
		return nil, fmt.Errorf("failed to select event ids: %w", err)
	}
	return ids, nil
}

func (r *Impl) IDsByClub(ctx context.Context, db bun.IDB, clubID int64) ([]int64, error) {
	return r.idsWhere(ctx, db, "club_id = ?", clubID)
}

func (r *Impl) IDsByCreator(ctx context.Context, db bun.IDB, userID int64) ([]int64, error) {
	return r.idsWhere(ctx, db, "created_by = ?", userID)
}

func (r *Impl) DeleteWithParticipants(ctx context.Context, db bun.IDB, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	db = r.resolveDB(db)

	if _, err := db.NewDelete().
		Model((*Participant)(nil)).
		Where("event_id IN (?)", bun.In(ids)).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete event participants: %w", err)
	}
	if _, err := db.NewDelete().
		Model((*Event)(nil)).
		Where("id IN (?)", bun.In(ids)).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete events: %w", err)
	}
	return nil
}

func (r *Impl) ClearApprover(ctx context.Context, db bun.IDB, userID int64) error {
	_, err := r.resolveDB(db).NewUpdate().
		Model((*Event)(nil)).
		Set("approved_by = NULL").
		Where("approved_by = ?", userID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to clear event approver: %w", err)
	}
	return nil
}

func (r *Impl) DetachRoom(ctx context.Context, db bun.IDB, roomID int64) error {
	_, err := r.resolveDB(db).NewUpdate().
		Model((*Event)(nil)).
		Set("room_id = NULL").
		Where("room_id = ?", roomID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to detach room from events: %w", err)
	}
	return nil
}

func (r *Impl) AddParticipants(ctx context.Context, db bun.IDB, eventID int64, userIDs []int64) error {
	if len(userIDs) == 0 {
		return nil
	}
	rows := make([]Participant, 0, len(userIDs))
	for _, id := range userIDs {
		rows = append(rows, Participant{EventID: eventID, UserID: id})
	}
	_, err := r.resolveDB(db).NewInsert().
		Model(&rows).
		On("CONFLICT (event_id, user_id) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to add event participants: %w", err)
	}
	return nil
}

func (r *Impl) ListParticipants(ctx context.Context, db bun.IDB) ([]ParticipantDetail, error) {
	rows := make([]ParticipantDetail, 0)
	err := r.resolveDB(db).NewSelect().
		TableExpr("event_participants AS ep").
		ColumnExpr("ep.event_id, ep.user_id, u.email AS user_email").
		Join("JOIN users AS u ON u.id = ep.user_id").
		OrderExpr("ep.event_id ASC, u.email ASC").
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to list event participants: %w", err)
	}
	return rows, nil
}

func (r *Impl) DeleteParticipant(ctx context.Context, db bun.IDB, eventID, userID int64) error {
	result, err := r.resolveDB(db).NewDelete().
		Model((*Participant)(nil)).
		Where("event_id = ?", eventID).
		Where("user_id = ?", userID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete event participant: %w", err)
	}
	return requireRow(result, ErrParticipantNotFound)
}

func (r *Impl) DeleteParticipationsByUser(ctx context.Context, db bun.IDB, userID int64) error {
	_, err := r.resolveDB(db).NewDelete().
		Model((*Participant)(nil)).
		Where("user_id = ?", userID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete user participations: %w", err)
	}
	return nil
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

package calendardb

import (
	"time"

	calendardomain "github.com/Black-And-White-Club/roomly/app/modules/calendar/domain"
	"github.com/uptrace/bun"
)

// Event is a stored calendar entry. Recurring events carry an RRULE and are
// expanded into occurrences at read time.
type Event struct {
	bun.BaseModel   `bun:"table:calendar_events,alias:ce"`
	ID              int64                    `bun:"id,pk,autoincrement"`
	Title           string                   `bun:"title,notnull"`
	Description     *string                  `bun:"description"`
	EventType       calendardomain.EventType `bun:"event_type,notnull"`
	Status          calendardomain.Status    `bun:"status,notnull"`
	RoomID          *int64                   `bun:"room_id"`
	ClubID          *int64                   `bun:"club_id"`
	StartsAt        time.Time                `bun:"starts_at,notnull"`
	EndsAt          *time.Time               `bun:"ends_at"`
	RRule           *string                  `bun:"rrule"`
	DurationMinutes *int                     `bun:"duration_minutes"`
	Timezone        string                   `bun:"timezone"`
	CreatedBy       int64                    `bun:"created_by,notnull"`
	CreatedAt       time.Time                `bun:"created_at,notnull,default:current_timestamp"`
	ApprovedBy      *int64                   `bun:"approved_by"`
	ApprovedAt      *time.Time               `bun:"approved_at"`

	// RoomCode is filled by the LEFT JOIN on rooms.
	RoomCode *string `bun:"room_code,scanonly"`
}

// IsRecurring reports whether the event has a recurrence rule.
func (e *Event) IsRecurring() bool {
	return e.RRule != nil && *e.RRule != ""
}

// Participant links a user to an event.
type Participant struct {
	bun.BaseModel `bun:"table:event_participants,alias:ep"`
	EventID       int64 `bun:"event_id,pk"`
	UserID        int64 `bun:"user_id,pk"`
}

// ParticipantDetail is a participant row joined with the user's email.
type ParticipantDetail struct {
	EventID   int64   `bun:"event_id" json:"event_id"`
	UserID    int64   `bun:"user_id" json:"user_id"`
	UserEmail *string `bun:"user_email" json:"user_email"`
}

// ListFilter narrows an event listing. Zero values disable a condition.
type ListFilter struct {
	// ClubIDs restricts to these clubs when non-nil.
	ClubIDs []int64
	// ParticipantID restricts to events the user participates in.
	ParticipantID int64
	Status        calendardomain.Status
	// Before keeps recurring events plus one-off events starting before it.
	Before *time.Time
}

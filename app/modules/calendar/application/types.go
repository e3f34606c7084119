package calendarservice

import (
	"time"

	"github.com/Black-And-White-Club/roomly/app/shared/apperr"
)

// Window bounds an event listing. Expansion only happens when both ends are set.
type Window struct {
	Start *time.Time
	End   *time.Time
}

// Bounded reports whether both ends are set.
func (w Window) Bounded() bool {
	return w.Start != nil && w.End != nil
}

// EventView is an event, or one occurrence of a recurring event, as returned
// by the listing endpoints.
type EventView struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Start     *time.Time `json:"start"`
	End       *time.Time `json:"end"`
	RRule     *string    `json:"rrule"`
	Duration  *string    `json:"duration"`
	EventType string     `json:"event_type"`
	Status    string     `json:"status"`
	RoomID    *int64     `json:"room_id"`
	RoomCode  *string    `json:"room_code"`
	ClubID    *int64     `json:"club_id"`

	Description *string `json:"-"`
}

// AdminEventView is the row shape of the admin event listing.
type AdminEventView struct {
	ID        int64   `json:"id"`
	Title     string  `json:"title"`
	Status    string  `json:"status"`
	EventType string  `json:"event_type"`
	ClubID    *int64  `json:"club_id"`
	RoomCode  *string `json:"room_code"`
}

// ReviewResult is returned after approving or rejecting an event.
type ReviewResult struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

// CreateEventRequest is the body of an event creation. Times are RFC 3339 or
// wall-clock values read in the event timezone.
type CreateEventRequest struct {
	Title           string  `json:"title"`
	Description     *string `json:"description"`
	EventType       string  `json:"event_type"`
	StartsAt        string  `json:"starts_at"`
	EndsAt          *string `json:"ends_at"`
	RRule           *string `json:"rrule"`
	DurationMinutes *int    `json:"duration_minutes"`
	Timezone        *string `json:"timezone"`
	RoomID          *int64  `json:"room_id"`
	RoomCode        *string `json:"room_code"`
	ClubID          *int64  `json:"club_id"`
	ParticipantIDs  []int64 `json:"participant_ids"`
}

var (
	ErrEventNotFound       = apperr.NotFound("event not found")
	ErrParticipantNotFound = apperr.NotFound("participant not found")
	ErrRoomNotFound        = apperr.NotFound("room not found")
	ErrInvalidEventType    = apperr.Invalid("invalid event type")
	ErrLessonAdminOnly     = apperr.Forbidden("admin required for lessons")
	ErrDurationRequired    = apperr.Invalid("duration_minutes required for recurring events")
	ErrEndsAtRequired      = apperr.Invalid("ends_at required for one-off events")
	ErrTitleRequired       = apperr.Invalid("title required")
	ErrStartsAtRequired    = apperr.Invalid("starts_at required")
	ErrInvalidStartsAt     = apperr.Invalid("invalid starts_at")
	ErrInvalidEndsAt       = apperr.Invalid("invalid ends_at")
	ErrInvalidTimezone     = apperr.Invalid("invalid timezone")
	ErrInvalidRRule        = apperr.Invalid("invalid rrule")
	ErrClubIDRequired      = apperr.Invalid("club_id required")
	ErrNotClubLeader       = apperr.Forbidden("not a club leader")
	ErrForbidden           = apperr.Forbidden("forbidden")
)

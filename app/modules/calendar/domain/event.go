package calendardomain

// EventType distinguishes admin-scheduled lessons from club events.
type EventType string

const (
	EventTypeLesson EventType = "lesson"
	EventTypeEvent  EventType = "event"
)

// IsValid checks if the event type is known.
func (t EventType) IsValid() bool {
	return t == EventTypeLesson || t == EventTypeEvent
}

// Status is the review state of an event.
type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

// IsValid checks if the status is known.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCancelled:
		return true
	default:
		return false
	}
}

package events

import "time"

// Event is the JSON payload put on the RabbitMQ queue for every
// catalog mutation. Consumed by cmd/event_worker.
type Event struct {
	Type       string         `json:"type"`
	OccurredAt time.Time      `json:"occurred_at"`
	Data       map[string]any `json:"data,omitempty"`
}

const (
	TypeCourseAdded     = "course.added"
	TypeCourseUpdated   = "course.updated"
	TypeCourseDeleted   = "course.deleted"
	TypeUserCreated     = "user.created"
	TypeUserDeactivated = "user.deactivated"
	TypeEnrolled        = "enrollment.created"
)

func New(typ string, data map[string]any) Event {
	return Event{Type: typ, OccurredAt: time.Now().UTC(), Data: data}
}

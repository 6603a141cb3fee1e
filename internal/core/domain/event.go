package domain

import "time"

// EventType classifies a calendar event.
type EventType string

const (
	EventClass      EventType = "class"
	EventAssignment EventType = "assignment"
	EventExam       EventType = "exam"
	EventMeeting    EventType = "meeting"
	EventDeadline   EventType = "deadline"
	EventPersonal   EventType = "personal"
)

// Event is a calendar entry owned by the backend. The gateway only renders
// and filters; every mutation round-trips to the backend.
type Event struct {
	ID          string    `json:"_id,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Type        EventType `json:"type"`
	Priority    string    `json:"priority,omitempty"`
	Location    string    `json:"location,omitempty"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime,omitzero"`
	Completed   bool      `json:"completed"`
}

// OccursOn reports whether the event starts on the given calendar day,
// compared in day's location.
func (e Event) OccursOn(day time.Time) bool {
	y1, m1, d1 := e.StartTime.In(day.Location()).Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

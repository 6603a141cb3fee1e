package domain

import "time"

// TimetableEntry is a recurring class slot. DaysOfWeek uses time.Weekday
// numbering (0 = Sunday), matching the backend schema.
type TimetableEntry struct {
	ID         string `json:"_id,omitempty"`
	CourseName string `json:"courseName"`
	Instructor string `json:"instructor,omitempty"`
	Room       string `json:"room,omitempty"`
	DaysOfWeek []int  `json:"daysOfWeek"`
	StartTime  string `json:"startTime"` // "HH:mm"
	EndTime    string `json:"endTime"`   // "HH:mm"
}

// OccursOn reports whether the entry is scheduled on the given weekday.
func (t TimetableEntry) OccursOn(day time.Weekday) bool {
	for _, d := range t.DaysOfWeek {
		if d == int(day) {
			return true
		}
	}
	return false
}

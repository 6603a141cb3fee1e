package domain

import "time"

// AttendanceStatus is the recorded outcome of a single class session.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLate    AttendanceStatus = "late"
)

// AttendanceRecord is one marked class session.
type AttendanceRecord struct {
	ID      string           `json:"_id,omitempty"`
	Subject string           `json:"subject"`
	Status  AttendanceStatus `json:"status"`
	Date    time.Time        `json:"date"`
}

// SubjectTally is the backend's per-subject aggregate as returned by the
// attendance stats endpoint.
type SubjectTally struct {
	Total   int `json:"total"`
	Present int `json:"present"`
	Absent  int `json:"absent"`
	Late    int `json:"late"`
}

package model

import "time"

// Weekday is a fixed weekday enumeration for class schedules.
// Values match the tipo_dia enum in the database.
type Weekday string

const (
	Monday    Weekday = "Lunes"
	Tuesday   Weekday = "Martes"
	Wednesday Weekday = "Miércoles"
	Thursday  Weekday = "Jueves"
	Friday    Weekday = "Viernes"
	Saturday  Weekday = "Sábado"
)

// Weekdays lists every valid weekday value.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

// IsValid reports whether the weekday is a member of the enumeration.
func (d Weekday) IsValid() bool {
	for _, v := range Weekdays {
		if d == v {
			return true
		}
	}
	return false
}

// Schedule is a recurring weekly time block assigning a course to a classroom.
type Schedule struct {
	ID          int       `json:"id"`
	CourseID    int       `json:"course_id"`
	ClassroomID int       `json:"classroom_id"`
	Semester    Semester  `json:"semester"`
	Day         Weekday   `json:"day"`
	StartTime   TimeOfDay `json:"start_time"`
	EndTime     TimeOfDay `json:"end_time"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Overlaps reports whether two half-open intervals [start, end) on the
// same room and day share any non-zero-duration intersection. Touching
// intervals (endA == startB) do not overlap.
func (s *Schedule) Overlaps(start, end TimeOfDay) bool {
	return s.StartTime < end && s.EndTime > start
}

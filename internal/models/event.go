package models

import "time"

// EventType labels a domain event emitted by the ledger.
type EventType string

const (
	EventTeacherAdded      EventType = "teacher.added"
	EventTeacherRemoved    EventType = "teacher.removed"
	EventStudentRegistered EventType = "student.registered"
	EventCourseCreated     EventType = "course.created"
	EventStudentEnrolled   EventType = "student.enrolled"
	EventGradeAssigned     EventType = "grade.assigned"
)

// Event carries the facts of a single successful mutation. Exactly one
// event is emitted per mutating operation, after the state change commits.
// Fields not relevant to the event type are left zero and omitted from JSON.
type Event struct {
	ID         string    `json:"id"`
	Type       EventType `json:"type"`
	Identity   Identity  `json:"identity,omitempty"`
	Teacher    Identity  `json:"teacher,omitempty"`
	StudentID  int64     `json:"student_id,omitempty"`
	CourseID   int64     `json:"course_id,omitempty"`
	GradeID    int64     `json:"grade_id,omitempty"`
	Name       string    `json:"name,omitempty"`
	Score      *int      `json:"score,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

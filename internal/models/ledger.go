package models

import "time"

// Identity is an opaque principal handle supplied by the boundary layer.
// The ledger only ever compares identities; it never interprets them.
type Identity string

// IsZero reports whether the identity is unset.
func (i Identity) IsZero() bool {
	return i == ""
}

// Student represents a learner registered on the ledger.
type Student struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Age        int       `json:"age"`
	Active     bool      `json:"active"`
	EnrolledAt time.Time `json:"enrolled_at"`
	CourseIDs  []int64   `json:"course_ids"`
}

// Course represents a course offering with a fixed seat capacity.
type Course struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Teacher       Identity `json:"teacher"`
	Capacity      int      `json:"capacity"`
	EnrolledCount int      `json:"enrolled_count"`
	Active        bool     `json:"active"`
}

// Grade is an immutable grade record. Re-assignment for a student/course
// pair creates a new record and repoints the pair link; old records stay
// addressable by id.
type Grade struct {
	ID         int64     `json:"id"`
	StudentID  int64     `json:"student_id"`
	CourseID   int64     `json:"course_id"`
	Score      int       `json:"score"`
	Remarks    string    `json:"remarks"`
	AssignedAt time.Time `json:"assigned_at"`
}

// Totals reports how many records of each kind were ever created.
type Totals struct {
	Students int64 `json:"students"`
	Courses  int64 `json:"courses"`
	Grades   int64 `json:"grades"`
}

package ledger

import (
	"time"

	"github.com/noah-isme/acadledger-api/internal/models"
	appErrors "github.com/noah-isme/acadledger-api/pkg/errors"
)

// pair identifies a student/course combination. Membership in the
// enrollment set is the single source of truth for "is enrolled"; the
// student's CourseIDs sequence is a derived, append-only cache.
type pair struct {
	StudentID int64
	CourseID  int64
}

type enrollmentSet struct {
	pairs map[pair]struct{}
}

func newEnrollmentSet() enrollmentSet {
	return enrollmentSet{pairs: make(map[pair]struct{})}
}

func (e enrollmentSet) has(studentID, courseID int64) bool {
	_, ok := e.pairs[pair{StudentID: studentID, CourseID: courseID}]
	return ok
}

// EnrollStudent places a student into a course. Admin only. The check order
// is fixed (authorization, student, course, duplicate enrollment, capacity)
// and determines which error an invalid call surfaces. The three-part effect
// (relation insert, seat count increment, course-id append) commits as a
// unit under the write lock.
func (l *Ledger) EnrollStudent(caller models.Identity, studentID, courseID int64, at time.Time) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.requireAdmin(caller); err != nil {
		return err
	}
	student := l.students.lookup(studentID)
	if student == nil {
		return appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}
	course := l.courses.lookup(courseID)
	if course == nil {
		return appErrors.Clone(appErrors.ErrNotFound, "course not found")
	}
	if l.enrollments.has(studentID, courseID) {
		return appErrors.Clone(appErrors.ErrConflict, "student already enrolled in course")
	}
	if course.EnrolledCount >= course.Capacity {
		return appErrors.Clone(appErrors.ErrCapacityExceeded, "course is full")
	}

	l.enrollments.pairs[pair{StudentID: studentID, CourseID: courseID}] = struct{}{}
	course.EnrolledCount++
	student.CourseIDs = append(student.CourseIDs, courseID)
	l.emit(models.Event{Type: models.EventStudentEnrolled, StudentID: studentID, CourseID: courseID, OccurredAt: at})
	return nil
}

// IsEnrolled reports relation membership. Unknown or out-of-range ids
// return false rather than an error.
func (l *Ledger) IsEnrolled(studentID, courseID int64) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.enrollments.has(studentID, courseID)
}

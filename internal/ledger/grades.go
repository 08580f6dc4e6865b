package ledger

import (
	"time"

	"github.com/noah-isme/acadledger-api/internal/models"
	appErrors "github.com/noah-isme/acadledger-api/pkg/errors"
)

const maxScore = 100

// gradeBook stores every grade record ever created plus the link from each
// student/course pair to its current grade. Re-assignment repoints the link;
// superseded records remain addressable by id.
type gradeBook struct {
	records []models.Grade
	links   map[pair]int64
}

func newGradeBook() gradeBook {
	return gradeBook{links: make(map[pair]int64)}
}

func (g *gradeBook) count() int64 {
	return int64(len(g.records))
}

func (g *gradeBook) lookup(id int64) *models.Grade {
	if id < 1 || id > int64(len(g.records)) {
		return nil
	}
	return &g.records[id-1]
}

// AssignGrade records a score for an enrolled student. The coarse role gate
// runs before any existence check; the fine-grained ownership check (course
// teacher or admin) runs last, against the teacher bound to the course
// rather than the current teacher set.
func (l *Ledger) AssignGrade(caller models.Identity, studentID, courseID int64, score int, remarks string, at time.Time) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.requireAdminOrTeacher(caller); err != nil {
		return 0, err
	}
	if l.students.lookup(studentID) == nil {
		return 0, appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}
	course := l.courses.lookup(courseID)
	if course == nil {
		return 0, appErrors.Clone(appErrors.ErrNotFound, "course not found")
	}
	if !l.enrollments.has(studentID, courseID) {
		return 0, appErrors.Clone(appErrors.ErrNotEnrolled, "student not enrolled in course")
	}
	if score < 0 || score > maxScore {
		return 0, appErrors.Clone(appErrors.ErrValidation, "score out of range")
	}
	if caller != course.Teacher && caller != l.admin {
		return 0, appErrors.Clone(appErrors.ErrForbidden, "caller does not teach this course")
	}

	id := int64(len(l.grades.records)) + 1
	l.grades.records = append(l.grades.records, models.Grade{
		ID:         id,
		StudentID:  studentID,
		CourseID:   courseID,
		Score:      score,
		Remarks:    remarks,
		AssignedAt: at,
	})
	l.grades.links[pair{StudentID: studentID, CourseID: courseID}] = id
	s := score
	l.emit(models.Event{Type: models.EventGradeAssigned, StudentID: studentID, CourseID: courseID, GradeID: id, Score: &s, OccurredAt: at})
	return id, nil
}

// Grade returns a grade record by id, including superseded ones.
func (l *Ledger) Grade(id int64) (models.Grade, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	g := l.grades.lookup(id)
	if g == nil {
		return models.Grade{}, appErrors.Clone(appErrors.ErrNotFound, "grade not found")
	}
	return *g, nil
}

// GradeForCourse returns the current grade linked to a student/course pair.
// A pair that is not enrolled and a pair that is enrolled but ungraded fail
// distinctly.
func (l *Ledger) GradeForCourse(studentID, courseID int64) (models.Grade, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if !l.enrollments.has(studentID, courseID) {
		return models.Grade{}, appErrors.Clone(appErrors.ErrNotEnrolled, "student not enrolled in course")
	}
	id, ok := l.grades.links[pair{StudentID: studentID, CourseID: courseID}]
	if !ok {
		return models.Grade{}, appErrors.Clone(appErrors.ErrNotAssigned, "no grade assigned for course")
	}
	return l.grades.records[id-1], nil
}

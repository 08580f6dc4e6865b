package ledger

import (
	"strings"
	"time"

	"github.com/noah-isme/acadledger-api/internal/models"
	appErrors "github.com/noah-isme/acadledger-api/pkg/errors"
)

const (
	minStudentAge = 5
	maxStudentAge = 100
)

// studentRegistry stores student records in creation order. A record's id is
// its 1-based position; ids are never reused.
type studentRegistry struct {
	records []models.Student
}

func (r *studentRegistry) count() int64 {
	return int64(len(r.records))
}

// lookup returns the record when it is addressable: id within the counter
// range and the record still active.
func (r *studentRegistry) lookup(id int64) *models.Student {
	if id < 1 || id > int64(len(r.records)) {
		return nil
	}
	s := &r.records[id-1]
	if !s.Active {
		return nil
	}
	return s
}

// RegisterStudent assigns the next sequential student id. Admin only.
func (l *Ledger) RegisterStudent(caller models.Identity, name string, age int, at time.Time) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.requireAdmin(caller); err != nil {
		return 0, err
	}
	if strings.TrimSpace(name) == "" {
		return 0, appErrors.Clone(appErrors.ErrValidation, "student name required")
	}
	if age < minStudentAge || age > maxStudentAge {
		return 0, appErrors.Clone(appErrors.ErrValidation, "student age out of range")
	}

	id := int64(len(l.students.records)) + 1
	l.students.records = append(l.students.records, models.Student{
		ID:         id,
		Name:       name,
		Age:        age,
		Active:     true,
		EnrolledAt: at,
	})
	l.emit(models.Event{Type: models.EventStudentRegistered, StudentID: id, Name: name, OccurredAt: at})
	return id, nil
}

// Student returns a copy of an addressable student record.
func (l *Ledger) Student(id int64) (models.Student, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	s := l.students.lookup(id)
	if s == nil {
		return models.Student{}, appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}
	out := *s
	out.CourseIDs = append([]int64(nil), s.CourseIDs...)
	return out, nil
}

// StudentCourseCount returns how many courses the student is enrolled in.
func (l *Ledger) StudentCourseCount(id int64) (int, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	s := l.students.lookup(id)
	if s == nil {
		return 0, appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}
	return len(s.CourseIDs), nil
}

package ledger

import (
	"strings"
	"time"

	"github.com/noah-isme/acadledger-api/internal/models"
	appErrors "github.com/noah-isme/acadledger-api/pkg/errors"
)

// courseRegistry stores course records in creation order, ids 1-based.
type courseRegistry struct {
	records []models.Course
}

func (r *courseRegistry) count() int64 {
	return int64(len(r.records))
}

func (r *courseRegistry) lookup(id int64) *models.Course {
	if id < 1 || id > int64(len(r.records)) {
		return nil
	}
	c := &r.records[id-1]
	if !c.Active {
		return nil
	}
	return c
}

// CreateCourse assigns the next sequential course id. Admin only. The
// assigned teacher must hold a grading role at creation time; the binding is
// not re-validated when the teacher set changes later.
func (l *Ledger) CreateCourse(caller models.Identity, name, description string, teacher models.Identity, capacity int, at time.Time) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.requireAdmin(caller); err != nil {
		return 0, err
	}
	if strings.TrimSpace(name) == "" {
		return 0, appErrors.Clone(appErrors.ErrValidation, "course name required")
	}
	if capacity <= 0 {
		return 0, appErrors.Clone(appErrors.ErrValidation, "course capacity must be positive")
	}
	if teacher != l.admin && !l.roles.has(teacher) {
		return 0, appErrors.Clone(appErrors.ErrValidation, "course teacher must be the administrator or a registered teacher")
	}

	id := int64(len(l.courses.records)) + 1
	l.courses.records = append(l.courses.records, models.Course{
		ID:          id,
		Name:        name,
		Description: description,
		Teacher:     teacher,
		Capacity:    capacity,
		Active:      true,
	})
	l.emit(models.Event{Type: models.EventCourseCreated, CourseID: id, Name: name, Teacher: teacher, OccurredAt: at})
	return id, nil
}

// Course returns a copy of an addressable course record.
func (l *Ledger) Course(id int64) (models.Course, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	c := l.courses.lookup(id)
	if c == nil {
		return models.Course{}, appErrors.Clone(appErrors.ErrNotFound, "course not found")
	}
	return *c, nil
}

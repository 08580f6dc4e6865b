package ledger

import (
	"sort"
	"time"

	"github.com/noah-isme/acadledger-api/internal/models"
	appErrors "github.com/noah-isme/acadledger-api/pkg/errors"
)

// roleSet tracks the mutable teacher set. The administrator identity lives
// on the Ledger itself and is immutable.
type roleSet struct {
	teachers map[models.Identity]struct{}
}

func newRoleSet() roleSet {
	return roleSet{teachers: make(map[models.Identity]struct{})}
}

func (r roleSet) has(id models.Identity) bool {
	_, ok := r.teachers[id]
	return ok
}

// AddTeacher marks an identity as teacher. Admin only.
func (l *Ledger) AddTeacher(caller, teacher models.Identity, at time.Time) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.requireAdmin(caller); err != nil {
		return err
	}
	if teacher.IsZero() {
		return appErrors.Clone(appErrors.ErrValidation, "teacher identity required")
	}
	if l.roles.has(teacher) {
		return appErrors.Clone(appErrors.ErrConflict, "identity is already a teacher")
	}

	l.roles.teachers[teacher] = struct{}{}
	l.emit(models.Event{Type: models.EventTeacherAdded, Identity: teacher, OccurredAt: at})
	return nil
}

// RemoveTeacher unmarks a teacher identity. Admin only. Courses already
// assigned to the identity are not touched.
func (l *Ledger) RemoveTeacher(caller, teacher models.Identity, at time.Time) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.requireAdmin(caller); err != nil {
		return err
	}
	if !l.roles.has(teacher) {
		return appErrors.Clone(appErrors.ErrNotFound, "identity is not a teacher")
	}

	delete(l.roles.teachers, teacher)
	l.emit(models.Event{Type: models.EventTeacherRemoved, Identity: teacher, OccurredAt: at})
	return nil
}

// IsTeacher reports whether the identity is currently in the teacher set.
func (l *Ledger) IsTeacher(id models.Identity) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.roles.has(id)
}

// IsAdminOrTeacher reports whether the identity holds any grading role.
func (l *Ledger) IsAdminOrTeacher(id models.Identity) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return id == l.admin || l.roles.has(id)
}

// Teachers returns the current teacher set in stable order.
func (l *Ledger) Teachers() []models.Identity {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]models.Identity, 0, len(l.roles.teachers))
	for id := range l.roles.teachers {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

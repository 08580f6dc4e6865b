// Package ledger implements the access-controlled academic-record state
// machine: students, courses, enrollments and grades, with role-gated
// mutations and an injected event sink. All state lives in memory behind a
// single lock; every mutating operation is all-or-nothing and emits exactly
// one domain event after its state change commits. Caller identity and the
// operation timestamp are explicit arguments so the core stays deterministic.
package ledger

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/acadledger-api/internal/events"
	"github.com/noah-isme/acadledger-api/internal/models"
	appErrors "github.com/noah-isme/acadledger-api/pkg/errors"
)

// Ledger is the facade over the role registry and the student, course,
// enrollment and grade registries. Mutations take the write lock; queries
// take the read lock and return copies, so no caller ever observes a
// half-applied multi-step effect.
type Ledger struct {
	mu sync.RWMutex

	admin       models.Identity
	roles       roleSet
	students    studentRegistry
	courses     courseRegistry
	enrollments enrollmentSet
	grades      gradeBook

	sink   events.Sink
	logger *zap.Logger
}

// Option customises ledger construction.
type Option func(*Ledger)

// WithSink installs the domain event sink.
func WithSink(sink events.Sink) Option {
	return func(l *Ledger) { l.sink = sink }
}

// WithLogger installs the operational logger.
func WithLogger(logger *zap.Logger) Option {
	return func(l *Ledger) { l.logger = logger }
}

// New constructs a ledger owned by the given administrator identity. The
// administrator is fixed for the lifetime of the ledger.
func New(admin models.Identity, opts ...Option) (*Ledger, error) {
	if admin.IsZero() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "administrator identity required")
	}
	l := &Ledger{
		admin:       admin,
		roles:       newRoleSet(),
		enrollments: newEnrollmentSet(),
		grades:      newGradeBook(),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.sink == nil {
		l.sink = events.Discard{}
	}
	if l.logger == nil {
		l.logger = zap.NewNop()
	}
	return l, nil
}

// Admin returns the administrator identity.
func (l *Ledger) Admin() models.Identity {
	return l.admin
}

// Totals reports how many records of each kind were ever created.
func (l *Ledger) Totals() models.Totals {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return models.Totals{
		Students: l.students.count(),
		Courses:  l.courses.count(),
		Grades:   l.grades.count(),
	}
}

// requireAdmin is the coarse guard shared by admin-only operations.
func (l *Ledger) requireAdmin(caller models.Identity) error {
	if caller != l.admin {
		return appErrors.Clone(appErrors.ErrForbidden, "caller is not the administrator")
	}
	return nil
}

// requireAdminOrTeacher gates operations open to the admin or any currently
// registered teacher. Membership is checked against the current teacher set,
// so a removed teacher no longer passes even for courses it still owns.
func (l *Ledger) requireAdminOrTeacher(caller models.Identity) error {
	if caller != l.admin && !l.roles.has(caller) {
		return appErrors.Clone(appErrors.ErrForbidden, "caller is neither administrator nor teacher")
	}
	return nil
}

// emit hands the event to the sink. It is only called after the mutation
// committed, so rejected calls never produce events.
func (l *Ledger) emit(event models.Event) {
	event.ID = uuid.NewString()
	l.sink.Emit(event)
}

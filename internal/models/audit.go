package models

import (
	"time"

	"github.com/jmoiron/sqlx/types"
)

// AuditAction constants label mutating ledger operations in the journal.
const (
	AuditActionTeacherAdd      = "TEACHER_ADD"
	AuditActionTeacherRemove   = "TEACHER_REMOVE"
	AuditActionStudentRegister = "STUDENT_REGISTER"
	AuditActionCourseCreate    = "COURSE_CREATE"
	AuditActionEnroll          = "ENROLLMENT_CREATE"
	AuditActionGradeAssign     = "GRADE_ASSIGN"
	AuditActionTokenIssue      = "TOKEN_ISSUE"
)

// AuditEntry is an append-only journal record of a boundary call.
type AuditEntry struct {
	ID        string         `db:"id" json:"id"`
	Caller    *Identity      `db:"caller" json:"caller,omitempty"`
	Action    string         `db:"action" json:"action"`
	Resource  string         `db:"resource" json:"resource"`
	RequestID string         `db:"request_id" json:"request_id"`
	Status    int            `db:"status" json:"status"`
	Detail    types.JSONText `db:"detail" json:"detail,omitempty"`
	IPAddress string         `db:"ip_address" json:"ip_address"`
	UserAgent string         `db:"user_agent" json:"user_agent"`
	CreatedAt time.Time      `db:"created_at" json:"created_at"`
}

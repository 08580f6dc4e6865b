package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/acadledger-api/internal/models"
)

func newAuditRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(db, "postgres")
	return sqlxDB, mock, func() {
		sqlxDB.Close()
		db.Close()
	}
}

func TestAuditRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newAuditRepoMock(t)
	defer cleanup()

	repo := NewAuditRepository(db)
	mock.ExpectExec("INSERT INTO audit_entries").
		WillReturnResult(sqlmock.NewResult(1, 1))

	caller := models.Identity("admin")
	entry := &models.AuditEntry{
		Caller:   &caller,
		Action:   models.AuditActionStudentRegister,
		Resource: "student",
		Status:   201,
	}
	require.NoError(t, repo.Create(context.Background(), entry))

	// defaults are filled before the insert
	assert.NotEmpty(t, entry.ID)
	assert.False(t, entry.CreatedAt.IsZero())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepositoryCreateKeepsProvidedID(t *testing.T) {
	db, mock, cleanup := newAuditRepoMock(t)
	defer cleanup()

	repo := NewAuditRepository(db)
	mock.ExpectExec("INSERT INTO audit_entries").
		WillReturnResult(sqlmock.NewResult(1, 1))

	entry := &models.AuditEntry{
		ID:        "fixed-id",
		Action:    models.AuditActionTokenIssue,
		Resource:  "token",
		Status:    200,
		CreatedAt: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Create(context.Background(), entry))
	assert.Equal(t, "fixed-id", entry.ID)
}

func TestAuditRepositoryListByCaller(t *testing.T) {
	db, mock, cleanup := newAuditRepoMock(t)
	defer cleanup()

	repo := NewAuditRepository(db)
	caller := models.Identity("admin")
	rows := sqlmock.NewRows([]string{"id", "caller", "action", "resource", "request_id", "status", "detail", "ip_address", "user_agent", "created_at"}).
		AddRow("entry-1", "admin", models.AuditActionGradeAssign, "grade", "req-1", 201, []byte(`{}`), "127.0.0.1", "curl", time.Now())
	mock.ExpectQuery("SELECT id, caller").
		WithArgs(caller).
		WillReturnRows(rows)

	entries, err := repo.ListByCaller(context.Background(), caller, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, models.AuditActionGradeAssign, entries[0].Action)
	assert.Equal(t, 201, entries[0].Status)
}

func TestAuditRepositoryListByCallerClampsLimit(t *testing.T) {
	db, mock, cleanup := newAuditRepoMock(t)
	defer cleanup()

	repo := NewAuditRepository(db)
	mock.ExpectQuery("LIMIT 50").
		WithArgs(models.Identity("admin")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.ListByCaller(context.Background(), "admin", -1)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/acadledger-api/internal/models"
)

// AuditRepository persists the append-only journal of boundary calls.
type AuditRepository struct {
	db *sqlx.DB
}

// NewAuditRepository constructs the repository.
func NewAuditRepository(db *sqlx.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// Create appends a journal entry.
func (r *AuditRepository) Create(ctx context.Context, entry *models.AuditEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO audit_entries (id, caller, action, resource, request_id, status, detail, ip_address, user_agent, created_at)
        VALUES (:id, :caller, :action, :resource, :request_id, :status, :detail, :ip_address, :user_agent, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, entry); err != nil {
		return fmt.Errorf("create audit entry: %w", err)
	}
	return nil
}

// ListByCaller returns the journal entries recorded for a caller, newest first.
func (r *AuditRepository) ListByCaller(ctx context.Context, caller models.Identity, limit int) ([]models.AuditEntry, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	query := fmt.Sprintf(`SELECT id, caller, action, resource, request_id, status, detail, ip_address, user_agent, created_at
        FROM audit_entries WHERE caller = $1 ORDER BY created_at DESC LIMIT %d`, limit)
	var entries []models.AuditEntry
	if err := r.db.SelectContext(ctx, &entries, query, caller); err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}
	return entries, nil
}

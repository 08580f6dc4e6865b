package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/acadledger-api/internal/ledger"
	"github.com/noah-isme/acadledger-api/internal/middleware"
	"github.com/noah-isme/acadledger-api/internal/models"
	appErrors "github.com/noah-isme/acadledger-api/pkg/errors"
	"github.com/noah-isme/acadledger-api/pkg/response"
)

// AuditReader lists journalled entries for a caller identity.
type AuditReader interface {
	ListByCaller(ctx context.Context, caller models.Identity, limit int) ([]models.AuditEntry, error)
}

// AuditHandler exposes the audit journal to the admin.
type AuditHandler struct {
	ledger *ledger.Ledger
	repo   AuditReader
}

// NewAuditHandler constructs handler.
func NewAuditHandler(l *ledger.Ledger, repo AuditReader) *AuditHandler {
	return &AuditHandler{ledger: l, repo: repo}
}

// ListByCaller godoc
// @Summary List audit entries recorded for an identity
// @Tags Audit
// @Produce json
// @Param identity path string true "Caller identity"
// @Param limit query int false "Maximum entries" default(50)
// @Success 200 {object} response.Envelope
// @Router /audit/{identity} [get]
func (h *AuditHandler) ListByCaller(c *gin.Context) {
	if middleware.CallerIdentity(c) != h.ledger.Admin() {
		response.Error(c, appErrors.Clone(appErrors.ErrForbidden, "only the admin may read the audit journal"))
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	entries, err := h.repo.ListByCaller(c.Request.Context(), models.Identity(c.Param("identity")), limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, entries)
}

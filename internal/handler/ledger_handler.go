package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/acadledger-api/internal/ledger"
	"github.com/noah-isme/acadledger-api/pkg/response"
)

// LedgerHandler exposes ledger-wide queries.
type LedgerHandler struct {
	ledger *ledger.Ledger
}

// NewLedgerHandler constructs handler.
func NewLedgerHandler(l *ledger.Ledger) *LedgerHandler {
	return &LedgerHandler{ledger: l}
}

// Totals godoc
// @Summary Report record totals across the ledger
// @Tags Ledger
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /ledger/totals [get]
func (h *LedgerHandler) Totals(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.ledger.Totals())
}

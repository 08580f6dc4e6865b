package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/acadledger-api/internal/ledger"
	"github.com/noah-isme/acadledger-api/internal/middleware"
	"github.com/noah-isme/acadledger-api/internal/models"
	"github.com/noah-isme/acadledger-api/internal/service"
	appErrors "github.com/noah-isme/acadledger-api/pkg/errors"
	"github.com/noah-isme/acadledger-api/pkg/response"
)

// AddTeacherRequest marks an identity as teacher.
type AddTeacherRequest struct {
	Identity string `json:"identity"`
}

// TeacherHandler exposes the role registry.
type TeacherHandler struct {
	ledger  *ledger.Ledger
	metrics *service.MetricsService
}

// NewTeacherHandler constructs handler.
func NewTeacherHandler(l *ledger.Ledger, metrics *service.MetricsService) *TeacherHandler {
	return &TeacherHandler{ledger: l, metrics: metrics}
}

// Add godoc
// @Summary Register a teacher identity
// @Tags Teachers
// @Accept json
// @Produce json
// @Param payload body AddTeacherRequest true "Teacher payload"
// @Success 201 {object} response.Envelope
// @Router /teachers [post]
func (h *TeacherHandler) Add(c *gin.Context) {
	var req AddTeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	err := h.ledger.AddTeacher(middleware.CallerIdentity(c), models.Identity(req.Identity), time.Now().UTC())
	h.metrics.RecordLedgerOp("add_teacher", err)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, gin.H{"identity": req.Identity})
}

// Remove godoc
// @Summary Remove a teacher identity
// @Tags Teachers
// @Produce json
// @Param identity path string true "Teacher identity"
// @Success 204
// @Router /teachers/{identity} [delete]
func (h *TeacherHandler) Remove(c *gin.Context) {
	err := h.ledger.RemoveTeacher(middleware.CallerIdentity(c), models.Identity(c.Param("identity")), time.Now().UTC())
	h.metrics.RecordLedgerOp("remove_teacher", err)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// List godoc
// @Summary List current teacher identities
// @Tags Teachers
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /teachers [get]
func (h *TeacherHandler) List(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.ledger.Teachers())
}

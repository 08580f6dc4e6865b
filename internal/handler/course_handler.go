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

// CreateCourseRequest is the course creation payload.
type CreateCourseRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Teacher     string `json:"teacher"`
	Capacity    int    `json:"capacity"`
}

// CourseHandler exposes the course catalog.
type CourseHandler struct {
	ledger  *ledger.Ledger
	metrics *service.MetricsService
}

// NewCourseHandler constructs handler.
func NewCourseHandler(l *ledger.Ledger, metrics *service.MetricsService) *CourseHandler {
	return &CourseHandler{ledger: l, metrics: metrics}
}

// Create godoc
// @Summary Create a course
// @Tags Courses
// @Accept json
// @Produce json
// @Param payload body CreateCourseRequest true "Course payload"
// @Success 201 {object} response.Envelope
// @Router /courses [post]
func (h *CourseHandler) Create(c *gin.Context) {
	var req CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	id, err := h.ledger.CreateCourse(middleware.CallerIdentity(c), req.Name, req.Description, models.Identity(req.Teacher), req.Capacity, time.Now().UTC())
	h.metrics.RecordLedgerOp("create_course", err)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, gin.H{"id": id})
}

// Get godoc
// @Summary Fetch a course record
// @Tags Courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} response.Envelope
// @Router /courses/{id} [get]
func (h *CourseHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	course, err := h.ledger.Course(id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, course)
}

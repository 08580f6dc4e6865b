package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/acadledger-api/internal/ledger"
	"github.com/noah-isme/acadledger-api/internal/middleware"
	"github.com/noah-isme/acadledger-api/internal/service"
	appErrors "github.com/noah-isme/acadledger-api/pkg/errors"
	"github.com/noah-isme/acadledger-api/pkg/response"
)

// RegisterStudentRequest is the student registration payload.
type RegisterStudentRequest struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

// StudentHandler exposes the student registry.
type StudentHandler struct {
	ledger      *ledger.Ledger
	transcripts *service.TranscriptService
	metrics     *service.MetricsService
}

// NewStudentHandler constructs handler.
func NewStudentHandler(l *ledger.Ledger, transcripts *service.TranscriptService, metrics *service.MetricsService) *StudentHandler {
	return &StudentHandler{ledger: l, transcripts: transcripts, metrics: metrics}
}

// Register godoc
// @Summary Register a new student
// @Tags Students
// @Accept json
// @Produce json
// @Param payload body RegisterStudentRequest true "Student payload"
// @Success 201 {object} response.Envelope
// @Router /students [post]
func (h *StudentHandler) Register(c *gin.Context) {
	var req RegisterStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	id, err := h.ledger.RegisterStudent(middleware.CallerIdentity(c), req.Name, req.Age, time.Now().UTC())
	h.metrics.RecordLedgerOp("register_student", err)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, gin.H{"id": id})
}

// Get godoc
// @Summary Fetch a student record
// @Tags Students
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} response.Envelope
// @Router /students/{id} [get]
func (h *StudentHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	student, err := h.ledger.Student(id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, student)
}

// CourseCount godoc
// @Summary Count a student's enrolled courses
// @Tags Students
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} response.Envelope
// @Router /students/{id}/courses/count [get]
func (h *StudentHandler) CourseCount(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	count, err := h.ledger.StudentCourseCount(id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"student_id": id, "course_count": count})
}

// Transcript godoc
// @Summary Export a student's transcript
// @Tags Students
// @Produce text/csv
// @Produce application/pdf
// @Param id path int true "Student ID"
// @Param format query string false "Export format (csv or pdf)" default(csv)
// @Success 200 {file} binary
// @Router /students/{id}/transcript [get]
func (h *StudentHandler) Transcript(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	format := service.TranscriptFormat(c.DefaultQuery("format", "csv"))
	doc, err := h.transcripts.Export(middleware.CallerIdentity(c), id, format)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+doc.Filename+`"`)
	c.Data(http.StatusOK, doc.ContentType, doc.Content)
}

// pathID parses a positive int64 path parameter, writing the error response
// itself on failure.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid "+name+" parameter"))
		return 0, false
	}
	return id, true
}

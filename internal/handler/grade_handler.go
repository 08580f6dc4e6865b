package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/acadledger-api/internal/ledger"
	"github.com/noah-isme/acadledger-api/internal/middleware"
	"github.com/noah-isme/acadledger-api/internal/service"
	appErrors "github.com/noah-isme/acadledger-api/pkg/errors"
	"github.com/noah-isme/acadledger-api/pkg/response"
)

// AssignGradeRequest records a score for an enrolled student.
type AssignGradeRequest struct {
	StudentID int64  `json:"student_id"`
	CourseID  int64  `json:"course_id"`
	Score     int    `json:"score"`
	Remarks   string `json:"remarks"`
}

// GradeHandler exposes the grade book.
type GradeHandler struct {
	ledger  *ledger.Ledger
	metrics *service.MetricsService
}

// NewGradeHandler constructs handler.
func NewGradeHandler(l *ledger.Ledger, metrics *service.MetricsService) *GradeHandler {
	return &GradeHandler{ledger: l, metrics: metrics}
}

// Assign godoc
// @Summary Assign or overwrite a grade
// @Tags Grades
// @Accept json
// @Produce json
// @Param payload body AssignGradeRequest true "Grade payload"
// @Success 201 {object} response.Envelope
// @Router /grades [post]
func (h *GradeHandler) Assign(c *gin.Context) {
	var req AssignGradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	id, err := h.ledger.AssignGrade(middleware.CallerIdentity(c), req.StudentID, req.CourseID, req.Score, req.Remarks, time.Now().UTC())
	h.metrics.RecordLedgerOp("assign_grade", err)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, gin.H{"id": id})
}

// Get godoc
// @Summary Fetch a grade record by ID
// @Tags Grades
// @Produce json
// @Param id path int true "Grade ID"
// @Success 200 {object} response.Envelope
// @Router /grades/{id} [get]
func (h *GradeHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	grade, err := h.ledger.Grade(id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, grade)
}

// ForCourse godoc
// @Summary Fetch a student's current grade in a course
// @Tags Grades
// @Produce json
// @Param id path int true "Student ID"
// @Param courseId path int true "Course ID"
// @Success 200 {object} response.Envelope
// @Router /students/{id}/courses/{courseId}/grade [get]
func (h *GradeHandler) ForCourse(c *gin.Context) {
	studentID, ok := pathID(c, "id")
	if !ok {
		return
	}
	courseID, ok := pathID(c, "courseId")
	if !ok {
		return
	}
	grade, err := h.ledger.GradeForCourse(studentID, courseID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, grade)
}

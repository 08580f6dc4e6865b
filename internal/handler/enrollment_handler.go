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

// EnrollRequest links a student to a course.
type EnrollRequest struct {
	StudentID int64 `json:"student_id"`
	CourseID  int64 `json:"course_id"`
}

// EnrollmentHandler exposes enrollment operations.
type EnrollmentHandler struct {
	ledger  *ledger.Ledger
	metrics *service.MetricsService
}

// NewEnrollmentHandler constructs handler.
func NewEnrollmentHandler(l *ledger.Ledger, metrics *service.MetricsService) *EnrollmentHandler {
	return &EnrollmentHandler{ledger: l, metrics: metrics}
}

// Enroll godoc
// @Summary Enroll a student into a course
// @Tags Enrollments
// @Accept json
// @Produce json
// @Param payload body EnrollRequest true "Enrollment payload"
// @Success 201 {object} response.Envelope
// @Router /enrollments [post]
func (h *EnrollmentHandler) Enroll(c *gin.Context) {
	var req EnrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	err := h.ledger.EnrollStudent(middleware.CallerIdentity(c), req.StudentID, req.CourseID, time.Now().UTC())
	h.metrics.RecordLedgerOp("enroll_student", err)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, gin.H{"student_id": req.StudentID, "course_id": req.CourseID})
}

// Status godoc
// @Summary Check whether a student is enrolled in a course
// @Tags Enrollments
// @Produce json
// @Param studentId path int true "Student ID"
// @Param courseId path int true "Course ID"
// @Success 200 {object} response.Envelope
// @Router /enrollments/{studentId}/{courseId} [get]
func (h *EnrollmentHandler) Status(c *gin.Context) {
	studentID, ok := pathID(c, "studentId")
	if !ok {
		return
	}
	courseID, ok := pathID(c, "courseId")
	if !ok {
		return
	}
	response.JSON(c, http.StatusOK, gin.H{
		"student_id": studentID,
		"course_id":  courseID,
		"enrolled":   h.ledger.IsEnrolled(studentID, courseID),
	})
}

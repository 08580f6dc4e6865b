package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/acadledger-api/internal/ledger"
	"github.com/noah-isme/acadledger-api/internal/service"
	"github.com/noah-isme/acadledger-api/pkg/export"
)

func newTranscriptService(l *ledger.Ledger) *service.TranscriptService {
	return service.NewTranscriptService(l, export.NewCSVExporter(), export.NewPDFExporter(), nil)
}

func TestStudentHandlerRegister(t *testing.T) {
	l := newHandlerLedger(t)
	handler := NewStudentHandler(l, newTranscriptService(l), nil)

	c, w := testContext(t, http.MethodPost, "/students", RegisterStudentRequest{Name: "Ahmad", Age: 16}, "admin")
	handler.Register(c)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"id":1`)
}

func TestStudentHandlerRegisterInvalidAge(t *testing.T) {
	l := newHandlerLedger(t)
	handler := NewStudentHandler(l, newTranscriptService(l), nil)

	c, w := testContext(t, http.MethodPost, "/students", RegisterStudentRequest{Name: "Ahmad", Age: 3}, "admin")
	handler.Register(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStudentHandlerGet(t *testing.T) {
	l := newHandlerLedger(t)
	_, err := l.RegisterStudent("admin", "Ahmad", 16, time.Now().UTC())
	require.NoError(t, err)
	handler := NewStudentHandler(l, newTranscriptService(l), nil)

	c, w := testContext(t, http.MethodGet, "/students/1", nil, "admin")
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	handler.Get(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Ahmad")
}

func TestStudentHandlerGetBadID(t *testing.T) {
	l := newHandlerLedger(t)
	handler := NewStudentHandler(l, newTranscriptService(l), nil)

	c, w := testContext(t, http.MethodGet, "/students/abc", nil, "admin")
	c.Params = gin.Params{{Key: "id", Value: "abc"}}
	handler.Get(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStudentHandlerGetNotFound(t *testing.T) {
	l := newHandlerLedger(t)
	handler := NewStudentHandler(l, newTranscriptService(l), nil)

	c, w := testContext(t, http.MethodGet, "/students/9", nil, "admin")
	c.Params = gin.Params{{Key: "id", Value: "9"}}
	handler.Get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStudentHandlerCourseCount(t *testing.T) {
	now := time.Now().UTC()
	l := newHandlerLedger(t)
	studentID, err := l.RegisterStudent("admin", "Ahmad", 16, now)
	require.NoError(t, err)
	courseID, err := l.CreateCourse("admin", "Math", "", "admin", 30, now)
	require.NoError(t, err)
	require.NoError(t, l.EnrollStudent("admin", studentID, courseID, now))
	handler := NewStudentHandler(l, newTranscriptService(l), nil)

	c, w := testContext(t, http.MethodGet, "/students/1/courses/count", nil, "admin")
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	handler.CourseCount(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"course_count":1`)
}

func TestStudentHandlerTranscriptCSV(t *testing.T) {
	now := time.Now().UTC()
	l := newHandlerLedger(t)
	studentID, err := l.RegisterStudent("admin", "Ahmad", 16, now)
	require.NoError(t, err)
	courseID, err := l.CreateCourse("admin", "Math", "", "admin", 30, now)
	require.NoError(t, err)
	require.NoError(t, l.EnrollStudent("admin", studentID, courseID, now))
	_, err = l.AssignGrade("admin", studentID, courseID, 88, "good", now)
	require.NoError(t, err)
	handler := NewStudentHandler(l, newTranscriptService(l), nil)

	c, w := testContext(t, http.MethodGet, "/students/1/transcript?format=csv", nil, "admin")
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	handler.Transcript(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "transcript-1.csv")
	assert.Contains(t, w.Body.String(), "Math")
	assert.Contains(t, w.Body.String(), "88")
}

func TestStudentHandlerTranscriptForbidden(t *testing.T) {
	now := time.Now().UTC()
	l := newHandlerLedger(t)
	_, err := l.RegisterStudent("admin", "Ahmad", 16, now)
	require.NoError(t, err)
	handler := NewStudentHandler(l, newTranscriptService(l), nil)

	c, w := testContext(t, http.MethodGet, "/students/1/transcript", nil, "stranger")
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	handler.Transcript(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

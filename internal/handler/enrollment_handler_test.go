package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnrollmentHandlerEnroll(t *testing.T) {
	now := time.Now().UTC()
	l := newHandlerLedger(t)
	_, err := l.RegisterStudent("admin", "Ahmad", 16, now)
	require.NoError(t, err)
	_, err = l.CreateCourse("admin", "Math", "", "admin", 30, now)
	require.NoError(t, err)
	handler := NewEnrollmentHandler(l, nil)

	c, w := testContext(t, http.MethodPost, "/enrollments", EnrollRequest{StudentID: 1, CourseID: 1}, "admin")
	handler.Enroll(c)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, l.IsEnrolled(1, 1))
}

func TestEnrollmentHandlerEnrollDuplicate(t *testing.T) {
	now := time.Now().UTC()
	l := newHandlerLedger(t)
	_, err := l.RegisterStudent("admin", "Ahmad", 16, now)
	require.NoError(t, err)
	_, err = l.CreateCourse("admin", "Math", "", "admin", 30, now)
	require.NoError(t, err)
	require.NoError(t, l.EnrollStudent("admin", 1, 1, now))
	handler := NewEnrollmentHandler(l, nil)

	c, w := testContext(t, http.MethodPost, "/enrollments", EnrollRequest{StudentID: 1, CourseID: 1}, "admin")
	handler.Enroll(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestEnrollmentHandlerStatus(t *testing.T) {
	now := time.Now().UTC()
	l := newHandlerLedger(t)
	_, err := l.RegisterStudent("admin", "Ahmad", 16, now)
	require.NoError(t, err)
	_, err = l.CreateCourse("admin", "Math", "", "admin", 30, now)
	require.NoError(t, err)
	require.NoError(t, l.EnrollStudent("admin", 1, 1, now))
	handler := NewEnrollmentHandler(l, nil)

	c, w := testContext(t, http.MethodGet, "/enrollments/1/1", nil, "admin")
	c.Params = gin.Params{{Key: "studentId", Value: "1"}, {Key: "courseId", Value: "1"}}
	handler.Status(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"enrolled":true`)
}

func TestEnrollmentHandlerStatusUnknownPair(t *testing.T) {
	handler := NewEnrollmentHandler(newHandlerLedger(t), nil)

	c, w := testContext(t, http.MethodGet, "/enrollments/7/9", nil, "admin")
	c.Params = gin.Params{{Key: "studentId", Value: "7"}, {Key: "courseId", Value: "9"}}
	handler.Status(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"enrolled":false`)
}

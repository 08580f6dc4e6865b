package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/acadledger-api/internal/ledger"
)

func gradedLedger(t *testing.T) *ledger.Ledger {
	t.Helper()
	now := time.Now().UTC()
	l := newHandlerLedger(t)
	require.NoError(t, l.AddTeacher("admin", "t1", now))
	studentID, err := l.RegisterStudent("admin", "Ahmad", 16, now)
	require.NoError(t, err)
	courseID, err := l.CreateCourse("admin", "Math", "", "t1", 30, now)
	require.NoError(t, err)
	require.NoError(t, l.EnrollStudent("admin", studentID, courseID, now))
	return l
}

func TestGradeHandlerAssign(t *testing.T) {
	l := gradedLedger(t)
	handler := NewGradeHandler(l, nil)

	c, w := testContext(t, http.MethodPost, "/grades", AssignGradeRequest{StudentID: 1, CourseID: 1, Score: 88, Remarks: "good"}, "t1")
	handler.Assign(c)

	require.Equal(t, http.StatusCreated, w.Code)

	g, err := l.GradeForCourse(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 88, g.Score)
}

func TestGradeHandlerAssignForbiddenForOtherTeacher(t *testing.T) {
	l := gradedLedger(t)
	require.NoError(t, l.AddTeacher("admin", "t2", time.Now().UTC()))
	handler := NewGradeHandler(l, nil)

	c, w := testContext(t, http.MethodPost, "/grades", AssignGradeRequest{StudentID: 1, CourseID: 1, Score: 88}, "t2")
	handler.Assign(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGradeHandlerAssignNotEnrolled(t *testing.T) {
	now := time.Now().UTC()
	l := newHandlerLedger(t)
	_, err := l.RegisterStudent("admin", "Ahmad", 16, now)
	require.NoError(t, err)
	_, err = l.CreateCourse("admin", "Math", "", "admin", 30, now)
	require.NoError(t, err)
	handler := NewGradeHandler(l, nil)

	c, w := testContext(t, http.MethodPost, "/grades", AssignGradeRequest{StudentID: 1, CourseID: 1, Score: 88}, "admin")
	handler.Assign(c)

	assert.Equal(t, http.StatusPreconditionFailed, w.Code)
}

func TestGradeHandlerGet(t *testing.T) {
	l := gradedLedger(t)
	_, err := l.AssignGrade("t1", 1, 1, 70, "", time.Now().UTC())
	require.NoError(t, err)
	handler := NewGradeHandler(l, nil)

	c, w := testContext(t, http.MethodGet, "/grades/1", nil, "admin")
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	handler.Get(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"score":70`)
}

func TestGradeHandlerForCourseUngraded(t *testing.T) {
	l := gradedLedger(t)
	handler := NewGradeHandler(l, nil)

	c, w := testContext(t, http.MethodGet, "/students/1/courses/1/grade", nil, "admin")
	c.Params = gin.Params{{Key: "id", Value: "1"}, {Key: "courseId", Value: "1"}}
	handler.ForCourse(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

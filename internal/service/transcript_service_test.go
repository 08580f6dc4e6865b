package service

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/acadledger-api/internal/models"
	appErrors "github.com/noah-isme/acadledger-api/pkg/errors"
	"github.com/noah-isme/acadledger-api/pkg/export"
)

type ledgerReaderMock struct {
	admin    models.Identity
	teachers map[models.Identity]bool
	students map[int64]models.Student
	courses  map[int64]models.Course
	grades   map[[2]int64]models.Grade
}

func (m *ledgerReaderMock) Admin() models.Identity { return m.admin }

func (m *ledgerReaderMock) IsAdminOrTeacher(id models.Identity) bool {
	return id == m.admin || m.teachers[id]
}

func (m *ledgerReaderMock) Student(id int64) (models.Student, error) {
	s, ok := m.students[id]
	if !ok {
		return models.Student{}, appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}
	return s, nil
}

func (m *ledgerReaderMock) Course(id int64) (models.Course, error) {
	c, ok := m.courses[id]
	if !ok {
		return models.Course{}, appErrors.Clone(appErrors.ErrNotFound, "course not found")
	}
	return c, nil
}

func (m *ledgerReaderMock) GradeForCourse(studentID, courseID int64) (models.Grade, error) {
	g, ok := m.grades[[2]int64{studentID, courseID}]
	if !ok {
		return models.Grade{}, appErrors.Clone(appErrors.ErrNotAssigned, "no grade assigned")
	}
	return g, nil
}

type renderMock struct {
	content []byte
	err     error
	last    export.Transcript
}

func (m *renderMock) Render(t export.Transcript) ([]byte, error) {
	m.last = t
	return m.content, m.err
}

func newReaderMock() *ledgerReaderMock {
	return &ledgerReaderMock{
		admin:    "admin",
		teachers: map[models.Identity]bool{"t1": true},
		students: map[int64]models.Student{
			1: {ID: 1, Name: "Ahmad", Age: 16, Active: true, CourseIDs: []int64{1, 2}},
		},
		courses: map[int64]models.Course{
			1: {ID: 1, Name: "Math", Teacher: "t1", Capacity: 30, Active: true},
			2: {ID: 2, Name: "Physics", Teacher: "t1", Capacity: 30, Active: true},
		},
		grades: map[[2]int64]models.Grade{
			{1, 1}: {ID: 1, StudentID: 1, CourseID: 1, Score: 88, Remarks: "good", AssignedAt: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)},
		},
	}
}

func TestTranscriptExportCSV(t *testing.T) {
	csv := &renderMock{content: []byte("csv-bytes")}
	svc := NewTranscriptService(newReaderMock(), csv, &renderMock{}, nil)

	doc, err := svc.Export("t1", 1, TranscriptCSV)
	require.NoError(t, err)
	assert.Equal(t, []byte("csv-bytes"), doc.Content)
	assert.Equal(t, "text/csv", doc.ContentType)
	assert.Equal(t, "transcript-1.csv", doc.Filename)

	require.Len(t, csv.last.Rows, 2)
	assert.Equal(t, "Math", csv.last.Rows[0].CourseName)
	assert.Equal(t, "88", csv.last.Rows[0].Score)
	// second course has no grade yet
	assert.Equal(t, "-", csv.last.Rows[1].Score)
}

func TestTranscriptExportDefaultsToCSV(t *testing.T) {
	csv := &renderMock{content: []byte("csv-bytes")}
	svc := NewTranscriptService(newReaderMock(), csv, &renderMock{}, nil)

	doc, err := svc.Export("admin", 1, "")
	require.NoError(t, err)
	assert.Equal(t, "text/csv", doc.ContentType)
}

func TestTranscriptExportPDF(t *testing.T) {
	pdf := &renderMock{content: []byte("%PDF")}
	svc := NewTranscriptService(newReaderMock(), &renderMock{}, pdf, nil)

	doc, err := svc.Export("admin", 1, TranscriptPDF)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", doc.ContentType)
	assert.Equal(t, "transcript-1.pdf", doc.Filename)
}

func TestTranscriptExportRejectsUnprivilegedCaller(t *testing.T) {
	svc := NewTranscriptService(newReaderMock(), &renderMock{}, &renderMock{}, nil)

	_, err := svc.Export("student-17", 1, TranscriptCSV)
	require.ErrorIs(t, err, appErrors.ErrForbidden)
}

func TestTranscriptExportUnknownStudent(t *testing.T) {
	svc := NewTranscriptService(newReaderMock(), &renderMock{}, &renderMock{}, nil)

	_, err := svc.Export("admin", 42, TranscriptCSV)
	require.ErrorIs(t, err, appErrors.ErrNotFound)
}

func TestTranscriptExportUnknownFormat(t *testing.T) {
	svc := NewTranscriptService(newReaderMock(), &renderMock{}, &renderMock{}, nil)

	_, err := svc.Export("admin", 1, "xml")
	require.ErrorIs(t, err, appErrors.ErrValidation)
}

func TestTranscriptExportRenderFailure(t *testing.T) {
	csv := &renderMock{err: errors.New("disk full")}
	svc := NewTranscriptService(newReaderMock(), csv, &renderMock{}, nil)

	_, err := svc.Export("admin", 1, TranscriptCSV)
	require.ErrorIs(t, err, appErrors.ErrInternal)
}

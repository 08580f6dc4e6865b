package service

import (
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/acadledger-api/internal/models"
	appErrors "github.com/noah-isme/acadledger-api/pkg/errors"
	"github.com/noah-isme/acadledger-api/pkg/export"
)

// TranscriptFormat selects the export encoding.
type TranscriptFormat string

const (
	TranscriptCSV TranscriptFormat = "csv"
	TranscriptPDF TranscriptFormat = "pdf"
)

type ledgerReader interface {
	Admin() models.Identity
	IsAdminOrTeacher(id models.Identity) bool
	Student(id int64) (models.Student, error)
	Course(id int64) (models.Course, error)
	GradeForCourse(studentID, courseID int64) (models.Grade, error)
}

type csvRenderer interface {
	Render(t export.Transcript) ([]byte, error)
}

type pdfRenderer interface {
	Render(t export.Transcript) ([]byte, error)
}

// TranscriptExport is the rendered document plus its content type.
type TranscriptExport struct {
	Content     []byte
	ContentType string
	Filename    string
}

// TranscriptService flattens a student's courses and grades into an export
// document. Read-only over the ledger.
type TranscriptService struct {
	ledger ledgerReader
	csv    csvRenderer
	pdf    pdfRenderer
	logger *zap.Logger
}

// NewTranscriptService constructs TranscriptService.
func NewTranscriptService(ledger ledgerReader, csv csvRenderer, pdf pdfRenderer, logger *zap.Logger) *TranscriptService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TranscriptService{ledger: ledger, csv: csv, pdf: pdf, logger: logger}
}

// Export renders the transcript for a student. Restricted to the admin and
// current teachers.
func (s *TranscriptService) Export(caller models.Identity, studentID int64, format TranscriptFormat) (*TranscriptExport, error) {
	if !s.ledger.IsAdminOrTeacher(caller) {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "caller may not export transcripts")
	}

	student, err := s.ledger.Student(studentID)
	if err != nil {
		return nil, err
	}

	transcript := export.Transcript{
		StudentID:   student.ID,
		StudentName: student.Name,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}
	for _, courseID := range student.CourseIDs {
		row := export.TranscriptRow{CourseID: courseID}
		if course, err := s.ledger.Course(courseID); err == nil {
			row.CourseName = course.Name
			row.Teacher = string(course.Teacher)
		}
		grade, err := s.ledger.GradeForCourse(student.ID, courseID)
		switch {
		case err == nil:
			row.Score = strconv.Itoa(grade.Score)
			row.Remarks = grade.Remarks
			row.AssignedAt = grade.AssignedAt.UTC().Format(time.RFC3339)
		default:
			row.Score = "-"
		}
		transcript.Rows = append(transcript.Rows, row)
	}

	switch format {
	case TranscriptCSV, "":
		content, err := s.csv.Render(transcript)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render transcript csv")
		}
		return &TranscriptExport{
			Content:     content,
			ContentType: "text/csv",
			Filename:    "transcript-" + strconv.FormatInt(student.ID, 10) + ".csv",
		}, nil
	case TranscriptPDF:
		content, err := s.pdf.Render(transcript)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render transcript pdf")
		}
		return &TranscriptExport{
			Content:     content,
			ContentType: "application/pdf",
			Filename:    "transcript-" + strconv.FormatInt(student.ID, 10) + ".pdf",
		}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, "unsupported transcript format")
	}
}

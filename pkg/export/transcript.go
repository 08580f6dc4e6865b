// Package export renders student transcripts into portable formats.
package export

// Transcript is the flattened view of a student's record handed to the
// renderers. Rows appear in enrollment order.
type Transcript struct {
	StudentID   int64
	StudentName string
	GeneratedAt string
	Rows        []TranscriptRow
}

// TranscriptRow is one enrolled course with its current grade, if any.
type TranscriptRow struct {
	CourseID   int64
	CourseName string
	Teacher    string
	Score      string
	Remarks    string
	AssignedAt string
}

var transcriptHeaders = []string{"Course ID", "Course", "Teacher", "Score", "Remarks", "Assigned At"}

func (r TranscriptRow) cells() []string {
	return []string{
		formatID(r.CourseID),
		r.CourseName,
		r.Teacher,
		r.Score,
		r.Remarks,
		r.AssignedAt,
	}
}

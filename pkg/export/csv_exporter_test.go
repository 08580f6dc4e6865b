package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVExporterRender(t *testing.T) {
	exporter := NewCSVExporter()

	content, err := exporter.Render(Transcript{
		StudentID:   1,
		StudentName: "Ahmad",
		Rows: []TranscriptRow{
			{CourseID: 1, CourseName: "Math", Teacher: "t1", Score: "88", Remarks: "good", AssignedAt: "2026-03-10T09:00:00Z"},
			{CourseID: 2, CourseName: "Physics", Teacher: "t1", Score: "-"},
		},
	})
	require.NoError(t, err)

	out := string(content)
	assert.Contains(t, out, "Course ID,Course,Teacher,Score,Remarks,Assigned At")
	assert.Contains(t, out, "1,Math,t1,88,good,2026-03-10T09:00:00Z")
	assert.Contains(t, out, "2,Physics,t1,-,,")
}

func TestCSVExporterRenderEmptyTranscript(t *testing.T) {
	exporter := NewCSVExporter()

	content, err := exporter.Render(Transcript{StudentID: 1, StudentName: "Ahmad"})
	require.NoError(t, err)
	assert.Equal(t, "Course ID,Course,Teacher,Score,Remarks,Assigned At\n", string(content))
}

func TestPDFExporterRender(t *testing.T) {
	exporter := NewPDFExporter()

	content, err := exporter.Render(Transcript{
		StudentID:   1,
		StudentName: "Ahmad",
		GeneratedAt: "2026-03-10T09:00:00Z",
		Rows: []TranscriptRow{
			{CourseID: 1, CourseName: "Math", Teacher: "t1", Score: "88"},
		},
	})
	require.NoError(t, err)
	assert.True(t, len(content) > 0)
	assert.Equal(t, "%PDF", string(content[:4]))
}

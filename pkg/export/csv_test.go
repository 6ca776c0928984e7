package export

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func TestBuildFMRExport(t *testing.T) {
	now := time.Date(2025, 7, 16, 10, 0, 0, 0, time.UTC)
	created := time.Date(2025, 6, 1, 8, 30, 0, 0, time.UTC)
	resolved := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	rows := []FMRExportRow{
		{
			ID:             42,
			Title:          `Radar fault, "intermittent" dropouts`,
			Description:    strPtr("Line 1\nLine 2"),
			Status:         "Resolved",
			CreationDate:   created,
			ResolutionDate: &resolved,
			CreatedAt:      created,
			UpdatedAt:      resolved,
		},
		{
			ID:           43,
			Title:        "Power supply failure",
			Status:       "Unresolved",
			CreationDate: created,
			CreatedAt:    created,
			UpdatedAt:    created,
		},
	}

	response, err := BuildFMRExport(rows, now)
	require.NoError(t, err)

	assert.Equal(t, "fmr_export_2025-07-16.csv", response.Filename)
	assert.Equal(t, "text/csv", response.ContentType)

	// The document must survive a round trip through a standard CSV reader
	// despite embedded commas, quotes and newlines.
	records, err := csv.NewReader(strings.NewReader(response.Data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"ID", "Title", "Description", "Status", "Creation Date", "Resolution Date", "Created At", "Updated At"}, records[0])

	assert.Equal(t, "42", records[1][0])
	assert.Equal(t, `Radar fault, "intermittent" dropouts`, records[1][1])
	assert.Equal(t, "Line 1\nLine 2", records[1][2])
	assert.Equal(t, "Resolved", records[1][3])
	assert.Equal(t, "2025-06-01T08:30:00Z", records[1][4])
	assert.Equal(t, "2025-06-15T12:00:00Z", records[1][5])

	// Missing description and resolution date are empty cells, not "null".
	assert.Equal(t, "", records[2][2])
	assert.Equal(t, "", records[2][5])
}

func TestBuildFMRExport_Empty(t *testing.T) {
	now := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)

	response, err := BuildFMRExport(nil, now)
	require.NoError(t, err)

	assert.Equal(t, "fmr_export_2025-01-02.csv", response.Filename)

	records, err := csv.NewReader(strings.NewReader(response.Data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1, "headers only")
}

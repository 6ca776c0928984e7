package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wfullmer-filius/fmr-tracking-system/pkg/models"
)

func TestResolveDateRange_Defaults(t *testing.T) {
	// A Wednesday afternoon, mid-month, mid-year.
	now := time.Date(2025, 7, 16, 15, 30, 45, 0, time.UTC)

	tests := []struct {
		name          string
		reportType    models.ReportType
		expectedStart time.Time
	}{
		{
			name:          "daily starts at local midnight",
			reportType:    models.ReportTypeDaily,
			expectedStart: time.Date(2025, 7, 16, 0, 0, 0, 0, time.UTC),
		},
		{
			name:          "weekly is a rolling seven days",
			reportType:    models.ReportTypeWeekly,
			expectedStart: now.Add(-7 * 24 * time.Hour),
		},
		{
			name:          "monthly starts at the first of the month",
			reportType:    models.ReportTypeMonthly,
			expectedStart: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:          "annual starts at January first",
			reportType:    models.ReportTypeAnnual,
			expectedStart: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:          "unknown type falls back to thirty days",
			reportType:    models.ReportType("quarterly"),
			expectedStart: now.Add(-30 * 24 * time.Hour),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := ResolveDateRange(tt.reportType, nil, nil, now)
			assert.Equal(t, tt.expectedStart, rng.Start)
			assert.Nil(t, rng.End, "default windows are open-ended")
		})
	}
}

func TestResolveDateRange_ExplicitBounds(t *testing.T) {
	now := time.Date(2025, 7, 16, 15, 30, 45, 0, time.UTC)
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 31, 23, 59, 59, 0, time.UTC)

	t.Run("both bounds override the report type", func(t *testing.T) {
		rng := ResolveDateRange(models.ReportTypeDaily, &start, &end, now)
		assert.Equal(t, start, rng.Start)
		require.NotNil(t, rng.End)
		assert.Equal(t, end, *rng.End)
	})

	t.Run("start without end falls back to the type default", func(t *testing.T) {
		rng := ResolveDateRange(models.ReportTypeMonthly, &start, nil, now)
		assert.Equal(t, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), rng.Start)
		assert.Nil(t, rng.End)
	})

	t.Run("end without start falls back to the type default", func(t *testing.T) {
		rng := ResolveDateRange(models.ReportTypeAnnual, nil, &end, now)
		assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), rng.Start)
		assert.Nil(t, rng.End)
	})
}

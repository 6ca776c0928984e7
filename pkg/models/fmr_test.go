package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestFMRRecord_TierLevel(t *testing.T) {
	early := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	late := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		record   FMRRecord
		expected TierLevel
	}{
		{
			name:     "no tier dates",
			record:   FMRRecord{},
			expected: TierLevelNone,
		},
		{
			name:     "only tier 1",
			record:   FMRRecord{Tier1Date: timePtr(early)},
			expected: TierLevel1,
		},
		{
			name:     "tier 1 and 2",
			record:   FMRRecord{Tier1Date: timePtr(early), Tier2Date: timePtr(late)},
			expected: TierLevel2,
		},
		{
			name:     "all three tiers",
			record:   FMRRecord{Tier1Date: timePtr(early), Tier2Date: timePtr(early), Tier3Date: timePtr(late)},
			expected: TierLevel3,
		},
		{
			name: "tier 3 without lower tiers",
			// Presence wins; the escalation does not have to be sequential.
			record:   FMRRecord{Tier3Date: timePtr(early)},
			expected: TierLevel3,
		},
		{
			name: "tier 2 date after tier 3 date",
			// Chronology is irrelevant; only which tiers are dated matters.
			record:   FMRRecord{Tier2Date: timePtr(late), Tier3Date: timePtr(early)},
			expected: TierLevel3,
		},
		{
			name:     "tier 2 only",
			record:   FMRRecord{Tier2Date: timePtr(early)},
			expected: TierLevel2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.record.TierLevel())
		})
	}
}

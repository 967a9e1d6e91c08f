package roster_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/sysu-ecnc-dev/roster-board/backend/internal/roster"
)

func TestComputeNavBounds(t *testing.T) {
	// 日程区间为 01.03.2024 到 31.03.2024
	schedule := testSchedule()

	tests := map[string]struct {
		visibleStart string
		visibleEnd   string
		expected     roster.NavBounds
	}{
		"Whole_Schedule_Visible": {
			visibleStart: "01.03.2024", visibleEnd: "31.03.2024",
			expected: roster.NavBounds{},
		},
		"Middle_Week": {
			visibleStart: "11.03.2024", visibleEnd: "17.03.2024",
			expected: roster.NavBounds{CanPrev: true, CanNext: true},
		},
		"First_Week": {
			visibleStart: "01.03.2024", visibleEnd: "07.03.2024",
			expected: roster.NavBounds{CanNext: true},
		},
		"Last_Week": {
			visibleStart: "25.03.2024", visibleEnd: "31.03.2024",
			expected: roster.NavBounds{CanPrev: true},
		},
		"Before_Schedule": {
			visibleStart: "01.02.2024", visibleEnd: "29.02.2024",
			expected: roster.NavBounds{CanNext: true},
		},
		"After_Schedule": {
			visibleStart: "01.04.2024", visibleEnd: "30.04.2024",
			expected: roster.NavBounds{CanPrev: true},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			bounds := roster.ComputeNavBounds(mustDay(t, tc.visibleStart), mustDay(t, tc.visibleEnd), schedule)
			assert.Equal(t, tc.expected, bounds)
		})
	}
}

package roster_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sysu-ecnc-dev/roster-board/backend/internal/roster"
)

func TestProject_ShiftEventsThenPairEvents(t *testing.T) {
	schedule := testSchedule()

	events := roster.Project(schedule, "chenwei01", roster.Filters{Kind: roster.FilterAll})

	// a4 引用了不存在的班次，应被静默丢弃；结对区间逐日展开成三个事件
	require.Len(t, events, 5)

	assert.Equal(t, "a1", events[0].ID)
	assert.Equal(t, "2024-03-04", events[0].Date)
	assert.Equal(t, "Morning Shift", events[0].Title)
	assert.False(t, events[0].IsPair)
	assert.Equal(t, "陈伟", events[0].StaffName)

	assert.Equal(t, "a2", events[1].ID)
	assert.Equal(t, "2024-03-05", events[1].Date)

	// 结对事件按日期升序排在班次事件之后
	pairDates := []string{"2024-03-01", "2024-03-02", "2024-03-03"}
	for i, date := range pairDates {
		event := events[2+i]
		assert.Equal(t, "pair-lijing02-"+date, event.ID)
		assert.Equal(t, date, event.Date)
		assert.True(t, event.IsPair)
		assert.Equal(t, "李静", event.PairName)
		assert.Equal(t, "01.03.2024", event.IntervalStart)
		assert.Equal(t, "03.03.2024", event.IntervalEnd)
	}
}

func TestProject_IsPure(t *testing.T) {
	schedule := testSchedule()
	filters := roster.Filters{Kind: roster.FilterAll}

	first := roster.Project(schedule, "chenwei01", filters)
	second := roster.Project(schedule, "chenwei01", filters)

	assert.Equal(t, first, second)
	// 投影不得改动日程本身
	assert.Equal(t, testSchedule(), schedule)
}

func TestProject_UnknownStaffReturnsEmpty(t *testing.T) {
	events := roster.Project(testSchedule(), "nobody", roster.Filters{Kind: roster.FilterAll})

	assert.NotNil(t, events)
	assert.Empty(t, events)
}

func TestProject_InvalidPairIntervalsAreSkipped(t *testing.T) {
	// 李静的三个结对区间全部非法（倒置、宽松格式、同伴不存在），
	// 投影结果里只剩她自己的班次事件
	events := roster.Project(testSchedule(), "lijing02", roster.Filters{Kind: roster.FilterAll})

	require.Len(t, events, 1)
	assert.Equal(t, "a3", events[0].ID)
}

func TestProject_KindFilterOnlyAffectsShiftEvents(t *testing.T) {
	tests := map[string]struct {
		filter        roster.KindFilter
		expectedShift []string
	}{
		"All":     {filter: roster.FilterAll, expectedShift: []string{"a1", "a2"}},
		"Morning": {filter: roster.FilterMorning, expectedShift: []string{"a1"}},
		"Night":   {filter: roster.FilterNight, expectedShift: []string{"a2"}},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			events := roster.Project(testSchedule(), "chenwei01", roster.Filters{Kind: tc.filter})

			shiftIDs := []string{}
			pairCount := 0
			for _, event := range events {
				if event.IsPair {
					pairCount++
					continue
				}
				shiftIDs = append(shiftIDs, event.ID)
			}

			assert.Equal(t, tc.expectedShift, shiftIDs)
			// 结对事件不参与类型过滤
			assert.Equal(t, 3, pairCount)
		})
	}
}

func TestProject_DateRangeFilter(t *testing.T) {
	schedule := testSchedule()
	rng := &roster.DateRange{
		Start: mustDay(t, "05.03.2024"),
		End:   mustDay(t, "31.03.2024"),
	}

	events := roster.Project(schedule, "chenwei01", roster.Filters{Kind: roster.FilterAll, Range: rng})

	shiftIDs := []string{}
	for _, event := range events {
		if !event.IsPair {
			shiftIDs = append(shiftIDs, event.ID)
		}
	}
	// a1 在 04.03，落在区间外
	assert.Equal(t, []string{"a2"}, shiftIDs)
}

func TestIsPairEventID(t *testing.T) {
	assert.True(t, roster.IsPairEventID("pair-lijing02-2024-03-01"))
	assert.False(t, roster.IsPairEventID("a1"))
	assert.False(t, roster.IsPairEventID("pair-"))
	assert.False(t, roster.IsPairEventID(""))
}

func mustDay(t *testing.T, s string) time.Time {
	t.Helper()
	day, err := roster.ParseDay(s)
	require.NoError(t, err)
	return day
}

package roster_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/sysu-ecnc-dev/roster-board/backend/internal/roster"
)

func TestMatchesDateRange(t *testing.T) {
	rng := &roster.DateRange{
		Start: mustDay(t, "05.03.2024"),
		End:   mustDay(t, "10.03.2024"),
	}

	tests := map[string]struct {
		at       time.Time
		rng      *roster.DateRange
		expected bool
	}{
		"Inside":            {at: time.Date(2024, 3, 7, 12, 0, 0, 0, time.UTC), rng: rng, expected: true},
		"Start_Inclusive":   {at: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), rng: rng, expected: true},
		"End_Inclusive":     {at: time.Date(2024, 3, 10, 23, 59, 0, 0, time.UTC), rng: rng, expected: true},
		"Before_Start":      {at: time.Date(2024, 3, 4, 23, 59, 0, 0, time.UTC), rng: rng, expected: false},
		"After_End":         {at: time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), rng: rng, expected: false},
		"Nil_Range_Matches": {at: time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC), rng: nil, expected: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, roster.MatchesDateRange(tc.at, tc.rng))
		})
	}
}

// 列表徽标和投影使用同一套分类规则：员工带某类徽标，
// 当且仅当该类型过滤下投影能产出至少一个班次事件
func TestStaffHasShiftKindAgreesWithProjection(t *testing.T) {
	schedule := testSchedule()
	filters := []roster.KindFilter{roster.FilterAll, roster.FilterMorning, roster.FilterNight}

	for _, staff := range schedule.Staffs {
		for _, filter := range filters {
			hasKind := roster.StaffHasShiftKind(schedule, staff.ID, filter)

			shiftEvents := 0
			for _, event := range roster.Project(schedule, staff.ID, roster.Filters{Kind: filter}) {
				if !event.IsPair {
					shiftEvents++
				}
			}

			assert.Equal(t, hasKind, shiftEvents > 0,
				"员工 %s 在过滤器 %s 下徽标与投影不一致", staff.ID, filter)
		}
	}
}

func TestStaffHasOffDayInRange(t *testing.T) {
	schedule := testSchedule()

	tests := map[string]struct {
		staffID  string
		rng      *roster.DateRange
		expected bool
	}{
		"Nil_Range_Any_OffDay": {staffID: "chenwei01", rng: nil, expected: true},
		"OffDay_Inside_Range": {
			staffID:  "chenwei01",
			rng:      &roster.DateRange{Start: mustDay(t, "08.03.2024"), End: mustDay(t, "12.03.2024")},
			expected: true,
		},
		"OffDay_Outside_Range": {
			staffID:  "chenwei01",
			rng:      &roster.DateRange{Start: mustDay(t, "20.03.2024"), End: mustDay(t, "25.03.2024")},
			expected: false,
		},
		// 李静唯一的休息日格式非法，应当像没有休息日一样
		"Invalid_OffDay_Skipped": {staffID: "lijing02", rng: nil, expected: false},
		"No_OffDays":             {staffID: "zhanglei03", rng: nil, expected: false},
		"Unknown_Staff":          {staffID: "nobody", rng: nil, expected: false},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, roster.StaffHasOffDayInRange(schedule, tc.staffID, tc.rng))
		})
	}
}

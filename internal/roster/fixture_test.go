package roster_test

import (
	"time"

	"github.com/sysu-ecnc-dev/roster-board/backend/internal/domain"
)

// testSchedule 构造一份 2024 年 3 月的固定日程，每个测试拿到的都是全新的副本。
// 其中故意埋了几条脏数据：引用不存在班次的分配、起止倒置和格式宽松的结对区间、
// 格式非法的休息日，用来验证各处的静默跳过行为
func testSchedule() *domain.Schedule {
	at := func(day, hour, minute int) time.Time {
		return time.Date(2024, time.March, day, hour, minute, 0, 0, time.UTC)
	}

	return &domain.Schedule{
		ScheduleID:        "schedule-2024-03",
		ScheduleStartDate: at(1, 0, 0),
		ScheduleEndDate:   at(31, 0, 0),
		Staffs: []domain.Staff{
			{
				ID:      "chenwei01",
				Name:    "陈伟",
				OffDays: []string{"10.03.2024"},
				PairList: []domain.PairInterval{
					{StaffID: "lijing02", StartDate: "01.03.2024", EndDate: "03.03.2024"},
				},
			},
			{
				ID:      "lijing02",
				Name:    "李静",
				OffDays: []string{"15.3.2024"}, // 格式非法，所有消费方都应跳过
				PairList: []domain.PairInterval{
					{StaffID: "chenwei01", StartDate: "05.03.2024", EndDate: "04.03.2024"}, // 起止倒置
					{StaffID: "chenwei01", StartDate: "7.3.2024", EndDate: "09.03.2024"},   // 宽松格式
					{StaffID: "ghost", StartDate: "01.03.2024", EndDate: "01.03.2024"},     // 同伴不存在
				},
			},
			{
				ID:   "zhanglei03",
				Name: "张磊",
			},
		},
		Shifts: []domain.Shift{
			{ID: "shift-morning", Name: "Morning Shift", ShiftStart: "08:00", ShiftEnd: "16:00"},
			{ID: "shift-night", Name: "Night Shift", ShiftStart: "22:00", ShiftEnd: "06:00", IsEndFollowingDay: true},
		},
		Assignments: []domain.Assignment{
			{ID: "a1", StaffID: "chenwei01", ShiftID: "shift-morning", ShiftStart: at(4, 8, 0), ShiftEnd: at(4, 16, 0)},
			{ID: "a2", StaffID: "chenwei01", ShiftID: "shift-night", ShiftStart: at(5, 22, 0), ShiftEnd: at(6, 6, 0)},
			{ID: "a3", StaffID: "lijing02", ShiftID: "shift-morning", ShiftStart: at(6, 8, 0), ShiftEnd: at(6, 16, 0)},
			{ID: "a4", StaffID: "chenwei01", ShiftID: "ghost-shift", ShiftStart: at(7, 8, 0), ShiftEnd: at(7, 16, 0)},
		},
	}
}

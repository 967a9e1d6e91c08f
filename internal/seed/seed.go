package seed

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/sysu-ecnc-dev/roster-board/backend/internal/domain"
	"github.com/sysu-ecnc-dev/roster-board/backend/internal/utils"
)

// DefaultSchedule 是持久化槽位为空时使用的默认日程来源。
// 内容是确定性的，保证每次冷启动看到的都是同一份日程
func DefaultSchedule() *domain.Schedule {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC)

	schedule := &domain.Schedule{
		ScheduleID:        "default-2024-03",
		ScheduleStartDate: start,
		ScheduleEndDate:   end,
		Staffs: []domain.Staff{
			{
				ID:      "chenwei01",
				Name:    "陈伟",
				OffDays: []string{"10.03.2024", "24.03.2024"},
				PairList: []domain.PairInterval{
					{StaffID: "lijing02", StartDate: "05.03.2024", EndDate: "07.03.2024"},
				},
			},
			{
				ID:      "lijing02",
				Name:    "李静",
				OffDays: []string{"15.03.2024"},
				PairList: []domain.PairInterval{
					{StaffID: "chenwei01", StartDate: "05.03.2024", EndDate: "07.03.2024"},
				},
			},
			{
				ID:       "zhanglei03",
				Name:     "张磊",
				OffDays:  []string{"03.03.2024", "17.03.2024", "31.03.2024"},
				PairList: []domain.PairInterval{},
			},
		},
		Shifts: []domain.Shift{
			{ID: "shift-morning", Name: "Morning Shift", ShiftStart: "08:00", ShiftEnd: "16:00"},
			{ID: "shift-night", Name: "Night Shift", ShiftStart: "22:00", ShiftEnd: "06:00", IsEndFollowingDay: true},
		},
	}

	// 每个员工隔天轮换早班和夜班，休息日跳过
	seq := 0
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		for i, staff := range schedule.Staffs {
			if (day.Day()+i)%2 == 0 {
				continue
			}
			if staff.HasOffDay(day.Format(domain.DayLayout)) {
				continue
			}

			shift := schedule.Shifts[(day.Day()+i)/2%len(schedule.Shifts)]
			seq++
			schedule.Assignments = append(schedule.Assignments, newAssignment(
				fmt.Sprintf("a-%03d", seq), staff.ID, shift, day,
			))
		}
	}

	return schedule
}

// GenerateRandomSchedule 生成一份随机的演示日程，用于填充测试环境
func GenerateRandomSchedule(staffCount int, days int) *domain.Schedule {
	start := time.Now().UTC().Truncate(24 * time.Hour)
	end := start.AddDate(0, 0, days-1)

	schedule := &domain.Schedule{
		ScheduleID:        "demo-" + utils.GenerateRandomID(4, 4),
		ScheduleStartDate: start,
		ScheduleEndDate:   end.Add(24*time.Hour - time.Second),
		Shifts: []domain.Shift{
			{ID: "shift-morning", Name: "Morning Shift", ShiftStart: "08:00", ShiftEnd: "16:00"},
			{ID: "shift-evening", Name: "Evening Shift", ShiftStart: "16:00", ShiftEnd: "00:00", IsEndFollowingDay: true},
			{ID: "shift-night", Name: "Night Shift", ShiftStart: "22:00", ShiftEnd: "06:00", IsEndFollowingDay: true},
		},
	}

	for i := 0; i < staffCount; i++ {
		name := utils.GenerateRandomChineseName()
		staff := domain.Staff{
			ID:       utils.StaffIDFromName(name),
			Name:     name,
			OffDays:  []string{},
			PairList: []domain.PairInterval{},
		}

		// 随机挑 2~4 个休息日
		for j := 0; j < rand.Intn(3)+2; j++ {
			offDay := start.AddDate(0, 0, rand.Intn(days))
			staff.OffDays = append(staff.OffDays, offDay.Format(domain.DayLayout))
		}

		schedule.Staffs = append(schedule.Staffs, staff)
	}

	// 给一部分员工安排结对区间
	for i := 0; i+1 < len(schedule.Staffs); i += 2 {
		if rand.Float64() < 0.5 {
			continue
		}

		first := start.AddDate(0, 0, rand.Intn(days/2))
		last := first.AddDate(0, 0, rand.Intn(5))
		if last.After(end) {
			last = end
		}

		interval := domain.PairInterval{
			StartDate: first.Format(domain.DayLayout),
			EndDate:   last.Format(domain.DayLayout),
		}

		a := &schedule.Staffs[i]
		b := &schedule.Staffs[i+1]
		a.PairList = append(a.PairList, domain.PairInterval{StaffID: b.ID, StartDate: interval.StartDate, EndDate: interval.EndDate})
		b.PairList = append(b.PairList, domain.PairInterval{StaffID: a.ID, StartDate: interval.StartDate, EndDate: interval.EndDate})
	}

	seq := 0
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		for i := range schedule.Staffs {
			staff := &schedule.Staffs[i]
			if rand.Float64() < 0.4 {
				continue
			}
			if staff.HasOffDay(day.Format(domain.DayLayout)) {
				continue
			}

			shift := schedule.Shifts[rand.Intn(len(schedule.Shifts))]
			seq++
			schedule.Assignments = append(schedule.Assignments, newAssignment(
				fmt.Sprintf("a-%03d", seq), staff.ID, shift, day,
			))
		}
	}

	return schedule
}

// newAssignment 把班次的当天时刻落到具体日期上，生成绝对时间戳
func newAssignment(id string, staffID string, shift domain.Shift, day time.Time) domain.Assignment {
	clockStart, _ := time.Parse("15:04", shift.ShiftStart)
	clockEnd, _ := time.Parse("15:04", shift.ShiftEnd)

	start := time.Date(day.Year(), day.Month(), day.Day(), clockStart.Hour(), clockStart.Minute(), 0, 0, time.UTC)
	end := time.Date(day.Year(), day.Month(), day.Day(), clockEnd.Hour(), clockEnd.Minute(), 0, 0, time.UTC)
	if shift.IsEndFollowingDay {
		end = end.AddDate(0, 0, 1)
	}

	return domain.Assignment{
		ID:         id,
		StaffID:    staffID,
		ShiftID:    shift.ID,
		ShiftStart: start,
		ShiftEnd:   end,
	}
}

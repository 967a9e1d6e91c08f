package utils

import (
	"fmt"
	"time"

	"github.com/sysu-ecnc-dev/roster-board/backend/internal/domain"
)

// ValidateScheduleReferences 检查日程内部引用的完整性。
// 投影和重排引擎对坏引用是静默跳过的，这个检查只在生成或导入数据时使用，
// 避免把明显损坏的日程写进持久化槽位
func ValidateScheduleReferences(schedule *domain.Schedule) error {
	for i, assignment := range schedule.Assignments {
		if schedule.FindStaff(assignment.StaffID) == nil {
			return fmt.Errorf("排班记录 %d 引用了不存在的员工 %s", i, assignment.StaffID)
		}
		if schedule.FindShift(assignment.ShiftID) == nil {
			return fmt.Errorf("排班记录 %d 引用了不存在的班次 %s", i, assignment.ShiftID)
		}
	}

	for _, staff := range schedule.Staffs {
		for j, pair := range staff.PairList {
			if schedule.FindStaff(pair.StaffID) == nil {
				return fmt.Errorf("员工 %s 的结对区间 %d 引用了不存在的同事 %s", staff.ID, j, pair.StaffID)
			}

			start, err := time.Parse(domain.DayLayout, pair.StartDate)
			if err != nil {
				return fmt.Errorf("员工 %s 的结对区间 %d 开始日期格式错误", staff.ID, j)
			}
			end, err := time.Parse(domain.DayLayout, pair.EndDate)
			if err != nil {
				return fmt.Errorf("员工 %s 的结对区间 %d 结束日期格式错误", staff.ID, j)
			}
			if start.After(end) {
				return fmt.Errorf("员工 %s 的结对区间 %d 开始日期晚于结束日期", staff.ID, j)
			}
		}
	}

	return nil
}

// ValidateShiftClocks 检查每个班次的当天时刻格式是否合法
func ValidateShiftClocks(schedule *domain.Schedule) error {
	for i, shift := range schedule.Shifts {
		if _, err := time.Parse("15:04", shift.ShiftStart); err != nil {
			return fmt.Errorf("班次 %d 的开始时刻格式错误", i)
		}
		if _, err := time.Parse("15:04", shift.ShiftEnd); err != nil {
			return fmt.Errorf("班次 %d 的结束时刻格式错误", i)
		}
	}
	return nil
}

// ValidateScheduleRange 检查所有排班记录的时间戳是否落在日程区间内
func ValidateScheduleRange(schedule *domain.Schedule) error {
	for i, assignment := range schedule.Assignments {
		if assignment.ShiftStart.Before(schedule.ScheduleStartDate) || assignment.ShiftStart.After(schedule.ScheduleEndDate) {
			return fmt.Errorf("排班记录 %d 的开始时间不在日程区间内", i)
		}
	}
	return nil
}

package roster

import (
	"math"
	"time"

	"github.com/sysu-ecnc-dev/roster-board/backend/internal/domain"
)

// StaffShiftHours 是柱状图使用的每员工早班/夜班总时长（小时）
type StaffShiftHours struct {
	Name    string  `json:"name"`
	Morning float64 `json:"morning"`
	Night   float64 `json:"night"`
}

const clockLayout = "15:04"

// shiftDurationHours 按班次的当天时刻计算单次时长。
// 跨夜班次（或结束时刻早于开始时刻的）把结束时刻顺延一天。
// 时刻格式非法时返回 0，该分配不计入统计
func shiftDurationHours(shift *domain.Shift) float64 {
	start, err := time.Parse(clockLayout, shift.ShiftStart)
	if err != nil {
		return 0
	}
	end, err := time.Parse(clockLayout, shift.ShiftEnd)
	if err != nil {
		return 0
	}

	if shift.IsEndFollowingDay || end.Before(start) {
		end = end.Add(24 * time.Hour)
	}

	return roundTenth(end.Sub(start).Hours())
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

// ShiftHourTotals 汇总每个员工的早班和夜班总时长，保持日程中的员工顺序，
// 两类时长都为零的员工不出现在结果中
func ShiftHourTotals(schedule *domain.Schedule) []StaffShiftHours {
	type totals struct {
		morning float64
		night   float64
	}
	byStaff := make(map[string]*totals, len(schedule.Staffs))
	for _, staff := range schedule.Staffs {
		byStaff[staff.ID] = &totals{}
	}

	for i := range schedule.Assignments {
		assignment := &schedule.Assignments[i]
		shift := schedule.FindShift(assignment.ShiftID)
		if shift == nil {
			continue
		}
		t, ok := byStaff[assignment.StaffID]
		if !ok {
			continue
		}

		duration := shiftDurationHours(shift)
		if shift.Kind() == domain.ShiftKindMorning {
			t.morning += duration
		} else {
			t.night += duration
		}
	}

	result := []StaffShiftHours{}
	for _, staff := range schedule.Staffs {
		t := byStaff[staff.ID]
		if t.morning == 0 && t.night == 0 {
			continue
		}
		result = append(result, StaffShiftHours{
			Name:    staff.Name,
			Morning: roundTenth(t.morning),
			Night:   roundTenth(t.night),
		})
	}

	return result
}

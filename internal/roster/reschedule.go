package roster

import (
	"fmt"
	"time"

	"github.com/sysu-ecnc-dev/roster-board/backend/internal/domain"
)

// Reschedule 校验并执行一次单个排班记录的日期移动。
// newDay 是 DD.MM.YYYY 格式的目标日历日。
// 新的时间戳在全部算完之后才写回排班记录，任何失败都不会让日程处于半更新状态。
// 成功时排班记录被打上 IsUpdated 标记，返回更新后的记录。
func Reschedule(schedule *domain.Schedule, eventID string, newDay string) (*domain.Assignment, error) {
	// 结对事件没有对应的排班记录，无论如何都不允许移动
	if IsPairEventID(eventID) {
		return nil, ErrNotMovable
	}

	assignment := schedule.FindAssignment(eventID)
	if assignment == nil {
		return nil, ErrNotFound
	}

	shift := schedule.FindShift(assignment.ShiftID)
	if shift == nil {
		// 没有班次信息就无法判断是否跨夜，这次移动无从计算
		return nil, ErrInvalidShift
	}

	staff := schedule.FindStaff(assignment.StaffID)
	if staff == nil {
		return nil, ErrNotFound
	}

	day, err := ParseDay(newDay)
	if err != nil {
		return nil, fmt.Errorf("解析目标日期失败: %w", err)
	}

	if staff.HasOffDay(FormatDay(day)) {
		return nil, &OffDayConflictError{StaffName: staff.Name, Day: FormatDay(day)}
	}

	// 开始和结束时间戳都取目标日期加上原有的当天时刻；
	// 跨夜班次再把结束时间戳顺延一天。移动到星期几与计算无关，只看跨夜标记
	start := assignment.ShiftStart
	end := assignment.ShiftEnd
	newStart := time.Date(day.Year(), day.Month(), day.Day(),
		start.Hour(), start.Minute(), start.Second(), start.Nanosecond(), start.Location())
	newEnd := time.Date(day.Year(), day.Month(), day.Day(),
		end.Hour(), end.Minute(), end.Second(), end.Nanosecond(), end.Location())
	if shift.IsEndFollowingDay {
		newEnd = newEnd.AddDate(0, 0, 1)
	}

	assignment.ShiftStart = newStart
	assignment.ShiftEnd = newEnd
	assignment.IsUpdated = true

	return assignment, nil
}

package roster

import (
	"time"

	"github.com/sysu-ecnc-dev/roster-board/backend/internal/domain"
)

// KindFilter 是班次类型过滤器的取值
type KindFilter string

const (
	FilterAll     KindFilter = "all"
	FilterMorning KindFilter = "morning"
	FilterNight   KindFilter = "night"
)

// DateRange 是一个按日历日比较的闭区间，时刻部分被忽略
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Filters 是投影时生效的过滤状态，Range 为 nil 表示不做日期过滤
type Filters struct {
	Kind  KindFilter
	Range *DateRange
}

// MatchesShiftKind 判断班次是否通过类型过滤器，过滤器为 all 时恒通过
func MatchesShiftKind(shift *domain.Shift, filter KindFilter) bool {
	if filter == FilterAll || filter == "" {
		return true
	}
	return shift.Kind() == domain.ShiftKind(filter)
}

// MatchesDateRange 判断 t 所在的日历日是否落在闭区间内，rng 为 nil 时恒通过
func MatchesDateRange(t time.Time, rng *DateRange) bool {
	if rng == nil {
		return true
	}
	day := truncateDay(t)
	return !day.Before(truncateDay(rng.Start)) && !day.After(truncateDay(rng.End))
}

// StaffHasShiftKind 判断某员工是否存在通过类型过滤器的班次分配。
// 这里的分类规则和投影使用的完全相同，保证列表徽标和日历内容不会互相矛盾
func StaffHasShiftKind(schedule *domain.Schedule, staffID string, filter KindFilter) bool {
	for i := range schedule.Assignments {
		assignment := &schedule.Assignments[i]
		if assignment.StaffID != staffID {
			continue
		}
		shift := schedule.FindShift(assignment.ShiftID)
		if shift == nil {
			continue
		}
		if MatchesShiftKind(shift, filter) {
			return true
		}
	}
	return false
}

// StaffHasOffDayInRange 判断某员工在区间内是否有休息日，
// rng 为 nil 时表示任意一个合法休息日都算；格式非法的休息日直接跳过
func StaffHasOffDayInRange(schedule *domain.Schedule, staffID string, rng *DateRange) bool {
	staff := schedule.FindStaff(staffID)
	if staff == nil {
		return false
	}

	for _, offDay := range staff.OffDays {
		day, err := ParseDay(offDay)
		if err != nil {
			continue
		}
		if MatchesDateRange(day, rng) {
			return true
		}
	}
	return false
}

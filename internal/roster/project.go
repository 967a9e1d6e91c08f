package roster

import (
	"fmt"

	"github.com/sysu-ecnc-dev/roster-board/backend/internal/domain"
)

// pairEventIDPrefix 是结对事件的合成 ID 前缀，
// 重排引擎靠它在解析排班记录之前就拒绝对结对事件的拖动
const pairEventIDPrefix = "pair-"

// IsPairEventID 判断某个事件 ID 是否来自结对事件
func IsPairEventID(id string) bool {
	return len(id) > len(pairEventIDPrefix) && id[:len(pairEventIDPrefix)] == pairEventIDPrefix
}

// Project 把日程投影为选中员工的日历事件序列。
// 这是一个纯函数：不修改日程和过滤状态，相同输入产生完全相同的输出。
// 输出顺序固定：先是该员工的所有班次事件（按分配顺序），
// 然后按 pairList 顺序逐个区间展开结对事件，区间内按日期升序。
// 选中员工不存在时返回空序列；引用了不存在班次的分配被静默丢弃。
func Project(schedule *domain.Schedule, selectedStaffID string, filters Filters) []domain.CalendarEvent {
	events := []domain.CalendarEvent{}

	staff := schedule.FindStaff(selectedStaffID)
	if staff == nil {
		return events
	}

	for i := range schedule.Assignments {
		assignment := schedule.Assignments[i]
		if assignment.StaffID != selectedStaffID {
			continue
		}

		shift := schedule.FindShift(assignment.ShiftID)
		if shift == nil {
			continue
		}
		if !MatchesShiftKind(shift, filters.Kind) {
			continue
		}
		if !MatchesDateRange(assignment.ShiftStart, filters.Range) {
			continue
		}

		start := assignment.ShiftStart
		end := assignment.ShiftEnd
		events = append(events, domain.CalendarEvent{
			ID:           assignment.ID,
			Title:        shift.Name,
			Date:         isoDay(assignment.ShiftStart),
			IsPair:       false,
			StaffName:    staff.Name,
			ShiftName:    shift.Name,
			ShiftStart:   &start,
			ShiftEnd:     &end,
			AssignmentID: assignment.ID,
		})
	}

	for _, pair := range staff.PairList {
		partner := schedule.FindStaff(pair.StaffID)
		if partner == nil {
			continue
		}

		startDay, err := ParseDay(pair.StartDate)
		if err != nil {
			continue
		}
		endDay, err := ParseDay(pair.EndDate)
		if err != nil {
			continue
		}
		if startDay.After(endDay) {
			continue
		}

		// 跨多天的结对不是一个横跨多日的事件，而是每天一个事件，
		// 这样日历格子渲染和休息日交互才能统一处理
		for day := startDay; !day.After(endDay); day = day.AddDate(0, 0, 1) {
			events = append(events, domain.CalendarEvent{
				ID:            fmt.Sprintf("%s%s-%s", pairEventIDPrefix, pair.StaffID, isoDay(day)),
				Date:          isoDay(day),
				IsPair:        true,
				StaffName:     staff.Name,
				PairName:      partner.Name,
				IntervalStart: pair.StartDate,
				IntervalEnd:   pair.EndDate,
			})
		}
	}

	return events
}

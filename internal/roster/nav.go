package roster

import (
	"time"

	"github.com/sysu-ecnc-dev/roster-board/backend/internal/domain"
)

// NavBounds 描述日历翻页按钮的可用状态。
// 它是 (可视区间, 日程区间) 的纯函数，由前端直接消费，
// 取代以前在渲染层直接改按钮禁用状态的做法
type NavBounds struct {
	CanPrev bool `json:"canPrev"`
	CanNext bool `json:"canNext"`
}

func ComputeNavBounds(visibleStart, visibleEnd time.Time, schedule *domain.Schedule) NavBounds {
	return NavBounds{
		CanPrev: truncateDay(visibleStart).After(truncateDay(schedule.ScheduleStartDate)),
		CanNext: truncateDay(visibleEnd).Before(truncateDay(schedule.ScheduleEndDate)),
	}
}

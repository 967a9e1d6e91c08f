package roster

import (
	"fmt"
	"time"

	"github.com/sysu-ecnc-dev/roster-board/backend/internal/domain"
)

// ParseDay 严格解析 DD.MM.YYYY 格式的日历日。
// time.Parse 允许省略前导零，这里额外把解析结果格式化回去和原串比较，
// 保证像 1.3.2024 这样的宽松写法会被拒绝
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(domain.DayLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	if t.Format(domain.DayLayout) != s {
		return time.Time{}, fmt.Errorf("日期 %q 不符合 %s 格式", s, domain.DayLayout)
	}
	return t, nil
}

func FormatDay(t time.Time) string {
	return t.Format(domain.DayLayout)
}

// isoDay 是日历事件对外使用的日期格式
func isoDay(t time.Time) string {
	return t.Format("2006-01-02")
}

// truncateDay 把时间戳截断到日历日，忽略时刻部分；
// 统一换算到 UTC 零点，使得不同时区的时间戳也能按日历日比较
func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

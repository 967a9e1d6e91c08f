package roster

import (
	"errors"
	"fmt"
)

// ErrNotFound 和 ErrInvalidShift 属于数据一致性问题，调用方应记录错误日志并回滚视图；
// ErrNotMovable 和 OffDayConflictError 是预期内的校验失败，只需回滚视图，
// 不应作为错误日志记录
var (
	ErrNotFound     = errors.New("找不到对应的排班记录")
	ErrInvalidShift = errors.New("排班记录引用了不存在的班次")
	ErrNotMovable   = errors.New("结对事件不能被移动")
)

// OffDayConflictError 携带员工姓名和目标日期，便于拼出面向用户的提示
type OffDayConflictError struct {
	StaffName string
	Day       string
}

func (e *OffDayConflictError) Error() string {
	return fmt.Sprintf("%s 在 %s 是休息日，不能安排班次", e.StaffName, e.Day)
}

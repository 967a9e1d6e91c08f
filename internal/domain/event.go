package domain

import "time"

// CalendarEvent 是投影输出的日历事件，由日历渲染方消费。
// Date 是本地日历日（YYYY-MM-DD 格式，不含时刻）。
// 班次事件携带 ShiftName/ShiftStart/ShiftEnd/AssignmentID，
// 结对事件携带 PairName/IntervalStart/IntervalEnd，两类事件通过 IsPair 区分。
type CalendarEvent struct {
	ID        string `json:"id"`
	Title     string `json:"title,omitempty"`
	Date      string `json:"date"`
	IsPair    bool   `json:"isPair"`
	StaffName string `json:"staffName"`

	ShiftName    string     `json:"shiftName,omitempty"`
	ShiftStart   *time.Time `json:"shiftStart,omitempty"`
	ShiftEnd     *time.Time `json:"shiftEnd,omitempty"`
	AssignmentID string     `json:"assignmentId,omitempty"`

	PairName      string `json:"pairName,omitempty"`
	IntervalStart string `json:"intervalStart,omitempty"`
	IntervalEnd   string `json:"intervalEnd,omitempty"`
}

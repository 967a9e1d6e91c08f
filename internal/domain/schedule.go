package domain

import "time"

// DayLayout 是日程中所有日历日字符串使用的格式（例如 05.03.2024）
const DayLayout = "02.01.2006"

// PairInterval 表示一段结对日期区间，区间内该员工与 StaffID 指向的同事结对上班。
// StartDate 和 EndDate 都是 DayLayout 格式的字符串，且都是闭区间端点。
type PairInterval struct {
	StaffID   string `json:"staffId"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type Staff struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	OffDays  []string       `json:"offDays"`
	PairList []PairInterval `json:"pairList"`
}

// HasOffDay 判断 day（DayLayout 格式）是否为该员工的休息日
func (s *Staff) HasOffDay(day string) bool {
	for _, d := range s.OffDays {
		if d == day {
			return true
		}
	}
	return false
}

// Shift 中的 ShiftStart 和 ShiftEnd 是当天时刻（HH:mm 格式），不含日期；
// IsEndFollowingDay 为 true 表示结束时刻属于开始日期的次日
type Shift struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	ShiftStart        string `json:"shiftStart"`
	ShiftEnd          string `json:"shiftEnd"`
	IsEndFollowingDay bool   `json:"isEndFollowingDay"`
}

// Assignment 表示某个员工在某一天的一次班次分配，
// ShiftStart 和 ShiftEnd 是带日期的绝对时间戳
type Assignment struct {
	ID         string    `json:"id"`
	StaffID    string    `json:"staffId"`
	ShiftID    string    `json:"shiftId"`
	ShiftStart time.Time `json:"shiftStart"`
	ShiftEnd   time.Time `json:"shiftEnd"`
	IsUpdated  bool      `json:"isUpdated,omitempty"`
}

// Schedule 是聚合根，加载后作为整个会话的唯一数据源
type Schedule struct {
	ScheduleID        string       `json:"scheduleId"`
	ScheduleStartDate time.Time    `json:"scheduleStartDate"`
	ScheduleEndDate   time.Time    `json:"scheduleEndDate"`
	Staffs            []Staff      `json:"staffs"`
	Shifts            []Shift      `json:"shifts"`
	Assignments       []Assignment `json:"assignments"`
}

// FindStaff 按 ID 查找员工，找不到时返回 nil（调用方静默跳过，不报错）
func (s *Schedule) FindStaff(id string) *Staff {
	for i := range s.Staffs {
		if s.Staffs[i].ID == id {
			return &s.Staffs[i]
		}
	}
	return nil
}

func (s *Schedule) FindShift(id string) *Shift {
	for i := range s.Shifts {
		if s.Shifts[i].ID == id {
			return &s.Shifts[i]
		}
	}
	return nil
}

func (s *Schedule) FindAssignment(id string) *Assignment {
	for i := range s.Assignments {
		if s.Assignments[i].ID == id {
			return &s.Assignments[i]
		}
	}
	return nil
}

// Clone 返回日程的深拷贝，用于对外暴露快照而不泄露内部可变状态
func (s *Schedule) Clone() *Schedule {
	if s == nil {
		return nil
	}

	clone := &Schedule{
		ScheduleID:        s.ScheduleID,
		ScheduleStartDate: s.ScheduleStartDate,
		ScheduleEndDate:   s.ScheduleEndDate,
		Staffs:            make([]Staff, len(s.Staffs)),
		Shifts:            make([]Shift, len(s.Shifts)),
		Assignments:       make([]Assignment, len(s.Assignments)),
	}

	for i, staff := range s.Staffs {
		cloned := staff
		cloned.OffDays = append([]string(nil), staff.OffDays...)
		cloned.PairList = append([]PairInterval(nil), staff.PairList...)
		clone.Staffs[i] = cloned
	}
	copy(clone.Shifts, s.Shifts)
	copy(clone.Assignments, s.Assignments)

	return clone
}

package roster

import (
	"errors"
	"sync"
	"time"

	"github.com/sysu-ecnc-dev/roster-board/backend/internal/domain"
)

// ScheduleSlot 是持久化日程使用的槽位键，和其他应用状态隔离
const ScheduleSlot = "roster_board:schedule"

// Store 是日程持久化槽位的抽象，槽位为空时 GetSchedule 返回 domain.ErrNoSavedSchedule。
// SaveSchedule 整体覆盖写入，要么全部成功要么全部失败
type Store interface {
	GetSchedule(slot string) (*domain.Schedule, error)
	SaveSchedule(slot string, schedule *domain.Schedule) error
}

// StaffBadge 是员工列表项的展示状态，由过滤引擎的规则推导，
// 保证列表徽标和投影出的日历内容一致
type StaffBadge struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	HasMorning       bool   `json:"hasMorning"`
	HasNight         bool   `json:"hasNight"`
	HasOffDayInRange bool   `json:"hasOffDayInRange"`
}

// Manager 是日程的唯一持有者，所有变更（加载、重排、提交）都串行通过它执行。
// HTTP 处理器是并发调用的，因此这里用互斥锁保证单写者语义；
// 脏标记只存在于内存中，永远不会被持久化
type Manager struct {
	mu       sync.Mutex
	store    Store
	fallback func() *domain.Schedule

	schedule *domain.Schedule
	dirty    bool
	version  int64
}

// NewManager 创建日程管理器，fallback 是槽位为空时使用的默认日程来源
func NewManager(store Store, fallback func() *domain.Schedule) *Manager {
	return &Manager{
		store:    store,
		fallback: fallback,
	}
}

// Load 从持久化槽位加载日程，槽位为空时回退到默认来源。
// 加载后脏标记一定为 false：内存中的日程就是最近一次提交的内容
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	schedule, err := m.store.GetSchedule(ScheduleSlot)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrNoSavedSchedule):
		schedule = m.fallback()
	default:
		return err
	}

	m.schedule = schedule
	m.dirty = false
	m.version++
	return nil
}

// Reschedule 把一条排班记录移动到新的日历日，成功时置脏标记。
// 校验和计算全部委托给重排引擎，这里只负责串行化和状态记账
func (m *Manager) Reschedule(eventID string, newDay string) (*domain.Assignment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.schedule == nil {
		return nil, ErrNotFound
	}

	assignment, err := Reschedule(m.schedule, eventID, newDay)
	if err != nil {
		return nil, err
	}

	m.dirty = true
	m.version++

	updated := *assignment
	return &updated, nil
}

// Commit 把当前日程整体写入持久化槽位，成功时清除脏标记。
// 写入失败时内存状态保持不变、脏标记保持为 true，调用方可以直接重试
func (m *Manager) Commit() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.schedule == nil {
		return domain.ErrNoSavedSchedule
	}

	if err := m.store.SaveSchedule(ScheduleSlot, m.schedule); err != nil {
		return err
	}

	m.dirty = false
	return nil
}

// Dirty 报告是否存在未保存的变更，它是"未保存更改"提示的唯一依据
func (m *Manager) Dirty() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.dirty
}

// Version 在每次日程变更（加载、重排）后递增，用作只读缓存的键的一部分
func (m *Manager) Version() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.version
}

// Snapshot 返回当前日程的深拷贝和脏标记
func (m *Manager) Snapshot() (*domain.Schedule, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.schedule.Clone(), m.dirty
}

// Project 在锁内对当前日程做投影，返回的事件序列是值拷贝
func (m *Manager) Project(selectedStaffID string, filters Filters) []domain.CalendarEvent {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.schedule == nil {
		return []domain.CalendarEvent{}
	}
	return Project(m.schedule, selectedStaffID, filters)
}

// StaffBadges 计算员工列表的展示状态
func (m *Manager) StaffBadges(rng *DateRange) []StaffBadge {
	m.mu.Lock()
	defer m.mu.Unlock()

	badges := []StaffBadge{}
	if m.schedule == nil {
		return badges
	}

	for _, staff := range m.schedule.Staffs {
		badges = append(badges, StaffBadge{
			ID:               staff.ID,
			Name:             staff.Name,
			HasMorning:       StaffHasShiftKind(m.schedule, staff.ID, FilterMorning),
			HasNight:         StaffHasShiftKind(m.schedule, staff.ID, FilterNight),
			HasOffDayInRange: StaffHasOffDayInRange(m.schedule, staff.ID, rng),
		})
	}
	return badges
}

// ShiftHours 汇总每员工的早班/夜班总时长
func (m *Manager) ShiftHours() []StaffShiftHours {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.schedule == nil {
		return []StaffShiftHours{}
	}
	return ShiftHourTotals(m.schedule)
}

// NavBounds 计算日历翻页按钮的可用状态
func (m *Manager) NavBounds(visibleStart, visibleEnd time.Time) NavBounds {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.schedule == nil {
		return NavBounds{}
	}
	return ComputeNavBounds(visibleStart, visibleEnd, m.schedule)
}

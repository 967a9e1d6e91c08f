package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sysu-ecnc-dev/roster-board/backend/internal/domain"
	"github.com/sysu-ecnc-dev/roster-board/backend/internal/roster"
)

// parseRangeQuery 解析 from/to 查询参数（DD.MM.YYYY，闭区间），两者必须同时给出
func (h *Handler) parseRangeQuery(r *http.Request) (*roster.DateRange, error) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")

	if from == "" && to == "" {
		return nil, nil
	}
	if from == "" || to == "" {
		return nil, errors.New("from 和 to 必须同时给出")
	}

	start, err := roster.ParseDay(from)
	if err != nil {
		return nil, err
	}
	end, err := roster.ParseDay(to)
	if err != nil {
		return nil, err
	}
	if start.After(end) {
		return nil, errors.New("开始日期不能晚于结束日期")
	}

	return &roster.DateRange{Start: start, End: end}, nil
}

// GetSchedule 返回完整的日程和未保存标记
func (h *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	schedule, dirty := h.manager.Snapshot()

	h.successResponse(w, r, "获取日程成功", struct {
		Schedule   *domain.Schedule `json:"schedule"`
		HasChanges bool             `json:"hasChanges"`
	}{
		Schedule:   schedule,
		HasChanges: dirty,
	})
}

// ReloadSchedule 用一次全新的加载整体替换内存中的日程，未提交的变更会被丢弃
func (h *Handler) ReloadSchedule(w http.ResponseWriter, r *http.Request) {
	if err := h.manager.Load(); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	schedule, dirty := h.manager.Snapshot()
	h.successResponse(w, r, "重新加载日程成功", struct {
		Schedule   *domain.Schedule `json:"schedule"`
		HasChanges bool             `json:"hasChanges"`
	}{
		Schedule:   schedule,
		HasChanges: dirty,
	})
}

// GetCalendarEvents 返回选中员工在当前过滤状态下的日历事件。
// 投影是纯函数，结果按日程版本号缓存在 redis 中，
// 任何变更都会让版本号递增，旧缓存靠 TTL 过期
func (h *Handler) GetCalendarEvents(w http.ResponseWriter, r *http.Request) {
	staffID := r.URL.Query().Get("staffID")

	shiftType := r.URL.Query().Get("shiftType")
	if shiftType == "" {
		shiftType = string(roster.FilterAll)
	}
	if err := h.validate.Var(shiftType, "oneof=all morning night"); err != nil {
		h.errorResponse(w, r, "无效的班次类型过滤器")
		return
	}

	rng, err := h.parseRangeQuery(r)
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	filters := roster.Filters{Kind: roster.KindFilter(shiftType), Range: rng}

	cacheKey := fmt.Sprintf("roster_board:events:%d:%s:%s:%s:%s",
		h.manager.Version(), staffID, shiftType, r.URL.Query().Get("from"), r.URL.Query().Get("to"))

	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(h.config.Redis.OperationTimeout)*time.Second)
	defer cancel()

	if cached, err := h.redisClient.Get(ctx, cacheKey).Bytes(); err == nil {
		h.successResponse(w, r, "获取日历事件成功", json.RawMessage(cached))
		return
	}

	events := h.manager.Project(staffID, filters)

	payload, err := json.Marshal(events)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	// 缓存只是加速手段，写入失败不影响响应
	if err := h.redisClient.Set(ctx, cacheKey, payload,
		time.Duration(h.config.Redis.CacheExpiration)*time.Second).Err(); err != nil {
		slog.Warn("写入日历事件缓存失败", "error", err)
	}

	h.successResponse(w, r, "获取日历事件成功", json.RawMessage(payload))
}

// ListStaffBadges 返回员工列表及其徽标状态，供列表置灰和角标展示
func (h *Handler) ListStaffBadges(w http.ResponseWriter, r *http.Request) {
	rng, err := h.parseRangeQuery(r)
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	h.successResponse(w, r, "获取员工列表成功", h.manager.StaffBadges(rng))
}

// RescheduleAssignment 把一条排班记录移到新的日历日。
// 前端在拖动时已经做了乐观移动，任何非成功结果都意味着前端需要回滚视图
func (h *Handler) RescheduleAssignment(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "id")

	var req struct {
		NewDate string `json:"newDate" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	assignment, err := h.manager.Reschedule(eventID, req.NewDate)
	if err != nil {
		var offDayErr *roster.OffDayConflictError
		switch {
		case errors.Is(err, roster.ErrNotMovable):
			// 正常情况下前端不允许拖动结对事件，这里兜底拒绝即可
			h.errorResponse(w, r, "结对事件不能被移动")
		case errors.As(err, &offDayErr):
			h.errorResponse(w, r, offDayErr.Error())
		case errors.Is(err, roster.ErrNotFound), errors.Is(err, roster.ErrInvalidShift):
			// 数据一致性问题，记录错误日志但不让前端崩溃
			slog.Error("排班数据不一致", "eventID", eventID, "error", err)
			h.errorResponse(w, r, "排班数据不一致，请刷新后重试")
		default:
			h.badRequest(w, r, err)
		}
		return
	}

	// 通知只是旁路，发布失败不影响这次变更
	schedule, dirty := h.manager.Snapshot()
	data := domain.AssignmentRescheduledData{NewDate: req.NewDate}
	if staff := schedule.FindStaff(assignment.StaffID); staff != nil {
		data.StaffName = staff.Name
	}
	if shift := schedule.FindShift(assignment.ShiftID); shift != nil {
		data.ShiftName = shift.Name
	}
	h.publishNotification("assignment_rescheduled", data)

	h.successResponse(w, r, "排班已更新", struct {
		Assignment *domain.Assignment `json:"assignment"`
		HasChanges bool               `json:"hasChanges"`
	}{
		Assignment: assignment,
		HasChanges: dirty,
	})
}

// SaveSchedule 把内存中的日程整体提交到持久化槽位
func (h *Handler) SaveSchedule(w http.ResponseWriter, r *http.Request) {
	if err := h.manager.Commit(); err != nil {
		// 提交失败时脏标记保持为 true，客户端可以直接重试
		slog.Error("保存日程失败", "error", err)
		h.errorResponse(w, r, "保存日程失败，请稍后重试")
		return
	}

	schedule, _ := h.manager.Snapshot()
	updated := 0
	for _, assignment := range schedule.Assignments {
		if assignment.IsUpdated {
			updated++
		}
	}
	h.publishNotification("schedule_saved", domain.ScheduleSavedData{
		ScheduleID:      schedule.ScheduleID,
		AssignmentCount: len(schedule.Assignments),
		UpdatedCount:    updated,
	})

	h.successResponse(w, r, "日程已保存", struct {
		HasChanges bool `json:"hasChanges"`
	}{
		HasChanges: false,
	})
}

// GetShiftHourTotals 返回柱状图使用的每员工早班/夜班总时长
func (h *Handler) GetShiftHourTotals(w http.ResponseWriter, r *http.Request) {
	h.successResponse(w, r, "获取班次时长统计成功", h.manager.ShiftHours())
}

// GetNavBounds 根据可视区间和日程区间计算翻页按钮的可用状态
func (h *Handler) GetNavBounds(w http.ResponseWriter, r *http.Request) {
	start := r.URL.Query().Get("start")
	end := r.URL.Query().Get("end")
	if start == "" || end == "" {
		h.errorResponse(w, r, "start 和 end 必须同时给出")
		return
	}

	visibleStart, err := roster.ParseDay(start)
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}
	visibleEnd, err := roster.ParseDay(end)
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	h.successResponse(w, r, "获取翻页状态成功", h.manager.NavBounds(visibleStart, visibleEnd))
}

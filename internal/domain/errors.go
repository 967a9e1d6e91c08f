package domain

import "errors"

// ErrNoSavedSchedule 表示持久化槽位中没有已提交过的日程，
// 调用方应回退到默认日程来源
var ErrNoSavedSchedule = errors.New("没有已保存的日程")

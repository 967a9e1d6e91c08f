package domain

import "strings"

// ShiftKind 是从班次名称推导出来的分类，不是存储字段。
// 现有数据没有显式的类型枚举，只能按关键字匹配，
// 因此这里的关键字列表必须和数据源保持一致，不能随意增删。
type ShiftKind string

const (
	ShiftKindMorning ShiftKind = "morning"
	ShiftKindNight   ShiftKind = "night"
)

var morningKeywords = []string{"morning", "sabah", "gündüz", "gunduz"}

// ClassifyShiftName 对班次名称做大小写不敏感的关键字匹配，
// 命中早班关键字则为早班，否则一律视为夜班
func ClassifyShiftName(name string) ShiftKind {
	lower := strings.ToLower(name)
	for _, keyword := range morningKeywords {
		if strings.Contains(lower, keyword) {
			return ShiftKindMorning
		}
	}
	return ShiftKindNight
}

func (s *Shift) Kind() ShiftKind {
	return ClassifyShiftName(s.Name)
}

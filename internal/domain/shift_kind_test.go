package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/sysu-ecnc-dev/roster-board/backend/internal/domain"
)

func TestClassifyShiftName(t *testing.T) {
	tests := map[string]struct {
		name     string
		expected domain.ShiftKind
	}{
		"English_Morning":        {name: "Morning Shift", expected: domain.ShiftKindMorning},
		"English_Morning_Upper":  {name: "MORNING SHIFT", expected: domain.ShiftKindMorning},
		"Turkish_Sabah":          {name: "Sabah Vardiyası", expected: domain.ShiftKindMorning},
		"Turkish_Gunduz_Accent":  {name: "Gündüz Vardiyası", expected: domain.ShiftKindMorning},
		"Turkish_Gunduz_Ascii":   {name: "gunduz vardiyasi", expected: domain.ShiftKindMorning},
		"Keyword_Inside_Text":    {name: "weekend morning crew", expected: domain.ShiftKindMorning},
		"Night":                  {name: "Night Shift", expected: domain.ShiftKindNight},
		"Turkish_Gece":           {name: "Gece Vardiyası", expected: domain.ShiftKindNight},
		"Evening_Counts_AsNight": {name: "Evening Shift", expected: domain.ShiftKindNight},
		"Empty_Name":             {name: "", expected: domain.ShiftKindNight},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, domain.ClassifyShiftName(tc.name))
		})
	}
}

func TestShiftKindIsDerivedNotStored(t *testing.T) {
	shift := domain.Shift{ID: "s1", Name: "Sabah Vardiyası"}
	assert.Equal(t, domain.ShiftKindMorning, shift.Kind())

	// 分类只依赖名称，改名后分类跟着变
	shift.Name = "Gece Vardiyası"
	assert.Equal(t, domain.ShiftKindNight, shift.Kind())
}

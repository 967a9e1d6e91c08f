package utils_test

import (
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/sysu-ecnc-dev/roster-board/backend/internal/utils"
)

func TestGenerateRandomChineseName(t *testing.T) {
	for i := 0; i < 50; i++ {
		name := utils.GenerateRandomChineseName()
		length := utf8.RuneCountInString(name)
		assert.GreaterOrEqual(t, length, 2)
		assert.LessOrEqual(t, length, 3)
	}
}

func TestStaffIDFromName(t *testing.T) {
	id := utils.StaffIDFromName("陈伟")
	// 拼音部分固定，后面跟 2~4 位随机数字
	assert.Regexp(t, `^chenwei\d{2,4}$`, id)
}

func TestGenerateRandomID(t *testing.T) {
	id := utils.GenerateRandomID(4, 4)
	assert.Len(t, id, 8)
	assert.Regexp(t, `\d{4}$`, id)
}

func TestGenerateRandomClock(t *testing.T) {
	for i := 0; i < 50; i++ {
		clock := utils.GenerateRandomClock()
		_, err := time.Parse("15:04", clock)
		assert.NoError(t, err, "时刻 %s 不符合 HH:mm 格式", clock)
	}
}

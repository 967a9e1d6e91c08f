package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sysu-ecnc-dev/roster-board/backend/internal/config"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	h, err := NewHandler(&config.Config{}, nil, nil, nil)
	require.NoError(t, err)
	return h
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) Response {
	t.Helper()
	resp := Response{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestSuccessResponseEnvelope(t *testing.T) {
	h := newTestHandler(t)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/schedule", nil)
	h.successResponse(w, r, "获取日程成功", map[string]any{"hasChanges": false})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, "获取日程成功", resp.Message)
	assert.Equal(t, map[string]any{"hasChanges": false}, resp.Data)
}

// 业务上的拒绝走 200，前端只靠 success 字段区分
func TestErrorResponseKeepsStatusOK(t *testing.T) {
	h := newTestHandler(t)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPatch, "/schedule/assignments/a1/date", nil)
	h.errorResponse(w, r, "结对事件不能被移动")

	assert.Equal(t, http.StatusOK, w.Code)

	resp := decodeResponse(t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, "结对事件不能被移动", resp.Message)
	assert.Nil(t, resp.Data)
}

func TestBadRequestTranslatesFirstValidationError(t *testing.T) {
	h := newTestHandler(t)

	req := struct {
		NewDate string `json:"newDate" validate:"required"`
	}{}
	err := h.validate.Struct(req)
	require.Error(t, err)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPatch, "/schedule/assignments/a1/date", nil)
	h.badRequest(w, r, err)

	resp := decodeResponse(t, w)
	assert.False(t, resp.Success)
	// 校验错误必须翻译成中文提示
	assert.Contains(t, resp.Message, "必填")
}

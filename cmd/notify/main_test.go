package main

import (
	"encoding/json"
	"html/template"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sysu-ecnc-dev/roster-board/backend/internal/domain"
)

// 走一遍 handler 发布、worker 消费的完整链路：
// 消息序列化再反序列化之后动态字段只剩下 map，
// 渲染前必须还原成具体类型，否则模板里的占位符全部为空
func TestNotificationTemplateRendering(t *testing.T) {
	tests := map[string]struct {
		message  domain.NotificationMessage
		template string
		decoded  any
		expected []string
	}{
		"Assignment_Rescheduled": {
			message: domain.NotificationMessage{
				Type: "assignment_rescheduled",
				To:   "watcher@example.com",
				Data: domain.AssignmentRescheduledData{
					StaffName: "陈伟",
					ShiftName: "Night Shift",
					NewDate:   "15.03.2024",
				},
			},
			template: "../../templates/assignment_rescheduled_email.html",
			decoded:  &domain.AssignmentRescheduledData{},
			expected: []string{"陈伟", "Night Shift", "15.03.2024"},
		},
		"Schedule_Saved": {
			message: domain.NotificationMessage{
				Type: "schedule_saved",
				To:   "watcher@example.com",
				Data: domain.ScheduleSavedData{
					ScheduleID:      "default-2024-03",
					AssignmentCount: 42,
					UpdatedCount:    3,
				},
			},
			template: "../../templates/schedule_saved_email.html",
			decoded:  &domain.ScheduleSavedData{},
			expected: []string{"default-2024-03", "42", "3"},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			body, err := json.Marshal(tc.message)
			require.NoError(t, err)

			received := domain.NotificationMessage{}
			require.NoError(t, json.Unmarshal(body, &received))

			require.NoError(t, decodeNotificationData(received.Data, tc.decoded))

			tmpl, err := template.ParseFiles(tc.template)
			require.NoError(t, err)

			rendered := &strings.Builder{}
			require.NoError(t, tmpl.Execute(rendered, tc.decoded))

			for _, fragment := range tc.expected {
				assert.Contains(t, rendered.String(), fragment)
			}
		})
	}
}

func TestDecodeNotificationDataRejectsMismatchedShape(t *testing.T) {
	data := map[string]any{"staffName": []int{1, 2, 3}}

	decoded := &domain.AssignmentRescheduledData{}
	assert.Error(t, decodeNotificationData(data, decoded))
}

package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sysu-ecnc-dev/roster-board/backend/internal/domain"
)

// publishNotification 把日程变更消息发布到通知队列，由 notify worker 消费后发邮件。
// 发布失败只记日志：内存中的变更已经生效，不能因为旁路通知失败而让操作失败
func (h *Handler) publishNotification(msgType string, data any) {
	message := domain.NotificationMessage{
		Type: msgType,
		To:   h.config.Email.Watcher,
		Data: data,
	}

	body, err := json.Marshal(message)
	if err != nil {
		slog.Error("序列化通知消息失败", "type", msgType, "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	if err := h.notifyChannel.PublishWithContext(
		ctx,
		"",
		"roster_notification_queue",
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	); err != nil {
		slog.Error("发布通知消息失败", "type", msgType, "error", err)
	}
}

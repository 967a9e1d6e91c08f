package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/sysu-ecnc-dev/roster-board/backend/internal/domain"
)

// 日程整体序列化后存放在 schedule_slots 表的一行中，按槽位键整体覆盖写入：
//
//	CREATE TABLE schedule_slots (
//	    slot       TEXT PRIMARY KEY,
//	    data       JSONB NOT NULL,
//	    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
//	);

// GetSchedule 读取槽位中最近一次提交的日程，槽位为空时返回 domain.ErrNoSavedSchedule
func (r *Repository) GetSchedule(slot string) (*domain.Schedule, error) {
	query := `
		SELECT data FROM schedule_slots WHERE slot = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	var data []byte
	if err := r.dbpool.QueryRowContext(ctx, query, slot).Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNoSavedSchedule
		}
		return nil, err
	}

	schedule := &domain.Schedule{}
	if err := json.Unmarshal(data, schedule); err != nil {
		return nil, fmt.Errorf("反序列化日程失败: %w", err)
	}

	return schedule, nil
}

// SaveSchedule 把日程整体写入槽位，单条 upsert 语句保证写入的原子性
func (r *Repository) SaveSchedule(slot string, schedule *domain.Schedule) error {
	data, err := json.Marshal(schedule)
	if err != nil {
		return fmt.Errorf("序列化日程失败: %w", err)
	}

	query := `
		INSERT INTO schedule_slots (slot, data, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (slot) DO UPDATE
		SET data = EXCLUDED.data, updated_at = NOW()
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, slot, data); err != nil {
		return err
	}

	return nil
}

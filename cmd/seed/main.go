package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/sysu-ecnc-dev/roster-board/backend/internal/config"
	"github.com/sysu-ecnc-dev/roster-board/backend/internal/domain"
	"github.com/sysu-ecnc-dev/roster-board/backend/internal/repository"
	"github.com/sysu-ecnc-dev/roster-board/backend/internal/roster"
	"github.com/sysu-ecnc-dev/roster-board/backend/internal/seed"
	"github.com/sysu-ecnc-dev/roster-board/backend/internal/utils"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var staffCount int
	var days int

	flag.IntVar(&op, "op", 0, "要执行的操作 (1: 写入默认日程, 2: 写入随机演示日程)")
	flag.IntVar(&staffCount, "staff", 8, "随机日程中的员工数量")
	flag.IntVar(&days, "days", 30, "随机日程覆盖的天数")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// 读取配置文件
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("无法读取配置文件", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// 创建数据库连接池
	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("无法创建数据库连接池", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open 只是创建数据库连接池对象，并不会立即连接到数据库，因此需要显式地 ping 一下
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("无法连接到数据库", "error", err)
		return
	}

	// 创建 repository
	repo := repository.NewRepository(cfg, dbpool)

	// 执行操作
	switch op {
	case 0:
		slog.Error("未指定操作")
	case 1:
		schedule := seed.DefaultSchedule()
		if err := writeSchedule(repo, schedule); err != nil {
			slog.Error("写入默认日程失败", slog.String("error", err.Error()))
			return
		}
		slog.Info("写入默认日程成功", slog.Int("assignments", len(schedule.Assignments)))
	case 2:
		if staffCount <= 0 || days <= 0 {
			slog.Error("请输入合法的员工数量和天数")
			return
		}

		schedule := seed.GenerateRandomSchedule(staffCount, days)
		if err := writeSchedule(repo, schedule); err != nil {
			slog.Error("写入随机日程失败", slog.String("error", err.Error()))
			return
		}
		slog.Info("写入随机日程成功",
			slog.Int("staffs", len(schedule.Staffs)),
			slog.Int("assignments", len(schedule.Assignments)))
	default:
		slog.Error("指定的操作非法")
	}
}

func writeSchedule(repo *repository.Repository, schedule *domain.Schedule) error {
	// 写入前做一次完整性检查，避免把损坏的数据放进槽位
	if err := utils.ValidateScheduleReferences(schedule); err != nil {
		return err
	}
	if err := utils.ValidateShiftClocks(schedule); err != nil {
		return err
	}

	return repo.SaveSchedule(roster.ScheduleSlot, schedule)
}

package task

import (
	"context"
	"time"

	"github.com/blues/dps/internal/config"
	"github.com/blues/dps/internal/logger"
	"github.com/blues/dps/internal/logic"
	"github.com/cenkalti/backoff/v5"
	"github.com/panjf2000/ants/v2"
	"gorm.io/gorm"
)

// StatsWorker 机构统计异步重算器
// 捐赠提交后由协程池执行重算，单次失败按指数退避重试；
// 重算是全量覆盖，天然幂等，at-least-once 执行是安全的
type StatsWorker struct {
	pool       *ants.Pool
	statsLogic *logic.StatsLogic
	maxRetries uint
}

// NewStatsWorker 创建统计重算器
func NewStatsWorker(db *gorm.DB, cfg *config.Config) (*StatsWorker, error) {
	poolSize := cfg.Stats.WorkerPoolSize
	if poolSize <= 0 {
		poolSize = 8
	}

	pool, err := ants.NewPool(poolSize, ants.WithNonblocking(true))
	if err != nil {
		return nil, err
	}

	maxRetries := uint(cfg.Stats.MaxRetries)
	if maxRetries == 0 {
		maxRetries = 3
	}

	return &StatsWorker{
		pool:       pool,
		statsLogic: logic.NewStatsLogic(db),
		maxRetries: maxRetries,
	}, nil
}

// Dispatch 提交一次机构统计重算
// 提交失败只记录日志，不影响调用方（周期对账任务会兜底修复）
func (w *StatsWorker) Dispatch(ngoId int64) {
	err := w.pool.Submit(func() {
		w.recompute(ngoId)
	})
	if err != nil {
		logger.Error("Failed to submit stats recompute for NGO %d: %v", ngoId, err)
	}
}

// recompute 带重试执行重算
func (w *StatsWorker) recompute(ngoId int64) {
	operation := func() (struct{}, error) {
		return struct{}{}, w.statsLogic.RecomputeNgoStats(ngoId)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	_, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxTries(w.maxRetries),
	)
	if err != nil {
		logger.Error("Stats recompute for NGO %d failed after %d tries: %v", ngoId, w.maxRetries, err)
		return
	}

	logger.Debug("Stats recomputed for NGO %d", ngoId)
}

// Release 释放协程池
func (w *StatsWorker) Release() {
	w.pool.Release()
}

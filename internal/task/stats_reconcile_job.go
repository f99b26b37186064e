package task

import (
	"time"

	"github.com/blues/dps/internal/config"
	"github.com/blues/dps/internal/logger"
	"github.com/blues/dps/internal/logic"
	"github.com/go-co-op/gocron/v2"
	"gorm.io/gorm"
)

// StatsReconcileJob 统计对账任务
// 周期性全量重算所有机构的统计，修复异步重算丢失或
// 进程中途崩溃留下的统计偏差
type StatsReconcileJob struct {
	statsLogic *logic.StatsLogic
	config     *config.Config
}

// NewStatsReconcileJob 创建统计对账任务
func NewStatsReconcileJob(db *gorm.DB, cfg *config.Config) *StatsReconcileJob {
	return &StatsReconcileJob{
		statsLogic: logic.NewStatsLogic(db),
		config:     cfg,
	}
}

// GetName 获取任务名称
func (j *StatsReconcileJob) GetName() string {
	return "ngo_stats_reconciler"
}

// GetSchedule 获取调度配置
func (j *StatsReconcileJob) GetSchedule() gocron.JobDefinition {
	return gocron.DurationJob(time.Duration(j.config.Task.Interval) * time.Second)
}

// Execute 执行任务
func (j *StatsReconcileJob) Execute() {
	logger.Info("Starting NGO stats reconcile task")

	failed, err := j.statsLogic.RecomputeAllNgoStats()
	if err != nil {
		logger.Error("Stats reconcile task failed: %v", err)
		return
	}

	if failed > 0 {
		logger.Warn("Stats reconcile task completed with %d failures", failed)
		return
	}

	logger.Info("Stats reconcile task completed")
}

package task

import (
	"time"

	"github.com/blues/dps/internal/config"
	"github.com/blues/dps/internal/logger"
	"github.com/blues/dps/internal/model"
	"github.com/go-co-op/gocron/v2"
	"gorm.io/gorm"
)

// CampaignFinishJob 活动结束任务
// 将已过结束时间的进行中活动置为已结束，并将到达开始时间的待开始活动置为进行中
type CampaignFinishJob struct {
	db     *gorm.DB
	config *config.Config
}

// NewCampaignFinishJob 创建活动结束任务
func NewCampaignFinishJob(db *gorm.DB, cfg *config.Config) *CampaignFinishJob {
	return &CampaignFinishJob{
		db:     db,
		config: cfg,
	}
}

// GetName 获取任务名称
func (j *CampaignFinishJob) GetName() string {
	return "campaign_status_updater"
}

// GetSchedule 获取调度配置
func (j *CampaignFinishJob) GetSchedule() gocron.JobDefinition {
	return gocron.DurationJob(time.Duration(j.config.Task.Interval) * time.Second)
}

// Execute 执行任务
func (j *CampaignFinishJob) Execute() {
	now := time.Now()

	// 到达开始时间的待开始活动置为进行中
	started := j.db.Model(&model.CampaignModel{}).
		Where("status = ? AND start_time <= ?", model.CampaignStatusPending, now).
		Update("status", model.CampaignStatusActive)
	if started.Error != nil {
		logger.Error("Failed to activate pending campaigns: %v", started.Error)
	} else if started.RowsAffected > 0 {
		logger.Info("Activated %d campaigns", started.RowsAffected)
	}

	// 已过结束时间的进行中活动置为已结束
	finished := j.db.Model(&model.CampaignModel{}).
		Where("status = ? AND end_time <= ?", model.CampaignStatusActive, now).
		Update("status", model.CampaignStatusCompleted)
	if finished.Error != nil {
		logger.Error("Failed to finish expired campaigns: %v", finished.Error)
		return
	}

	if finished.RowsAffected > 0 {
		logger.Info("Finished %d campaigns", finished.RowsAffected)
	}
}

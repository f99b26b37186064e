package task

import (
	"testing"
	"time"

	"github.com/blues/dps/internal/config"
	"github.com/blues/dps/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
		NamingStrategy: &schema.NamingStrategy{
			SingularTable: true,
		},
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.NgoModel{},
		&model.CampaignModel{},
		&model.DonationModel{},
		&model.MonthlyDonationModel{},
	))

	return db
}

func testConfig() *config.Config {
	return &config.Config{
		Task:  config.TaskConfig{Interval: 60},
		Stats: config.StatsConfig{WorkerPoolSize: 2, MaxRetries: 2},
	}
}

func TestCampaignFinishJobExecute(t *testing.T) {
	db := newTestDB(t)
	now := time.Now()

	ngo := &model.NgoModel{Name: "希望之光"}
	require.NoError(t, db.Create(ngo).Error)

	campaigns := []model.CampaignModel{
		{NgoId: ngo.Id, Title: "已过期", GoalAmount: 100, StartTime: now.Add(-48 * time.Hour), EndTime: now.Add(-time.Hour), Status: model.CampaignStatusActive},
		{NgoId: ngo.Id, Title: "进行中", GoalAmount: 100, StartTime: now.Add(-time.Hour), EndTime: now.Add(time.Hour), Status: model.CampaignStatusActive},
		{NgoId: ngo.Id, Title: "该开始了", GoalAmount: 100, StartTime: now.Add(-time.Minute), EndTime: now.Add(time.Hour), Status: model.CampaignStatusPending},
		{NgoId: ngo.Id, Title: "还没开始", GoalAmount: 100, StartTime: now.Add(time.Hour), EndTime: now.Add(48 * time.Hour), Status: model.CampaignStatusPending},
	}
	for i := range campaigns {
		require.NoError(t, db.Create(&campaigns[i]).Error)
	}

	job := NewCampaignFinishJob(db, testConfig())
	job.Execute()

	var statuses []model.CampaignStatus
	for i := range campaigns {
		var updated model.CampaignModel
		require.NoError(t, db.First(&updated, campaigns[i].Id).Error)
		statuses = append(statuses, updated.Status)
	}

	assert.Equal(t, model.CampaignStatusCompleted, statuses[0])
	assert.Equal(t, model.CampaignStatusActive, statuses[1])
	assert.Equal(t, model.CampaignStatusActive, statuses[2])
	assert.Equal(t, model.CampaignStatusPending, statuses[3])
}

func TestStatsReconcileJobExecute(t *testing.T) {
	db := newTestDB(t)

	ngo := &model.NgoModel{Name: "希望之光"}
	require.NoError(t, db.Create(ngo).Error)

	campaign := &model.CampaignModel{
		NgoId: ngo.Id, Title: "活动", GoalAmount: 1000, RaisedAmount: 600,
		StartTime: time.Now().Add(-time.Hour), EndTime: time.Now().Add(time.Hour),
		Status: model.CampaignStatusActive,
	}
	require.NoError(t, db.Create(campaign).Error)

	// 统计字段落后于源数据，任务应修复
	job := NewStatsReconcileJob(db, testConfig())
	job.Execute()

	var updated model.NgoModel
	require.NoError(t, db.First(&updated, ngo.Id).Error)
	assert.Equal(t, int64(600), updated.TotalDonations)
	assert.Equal(t, int64(1), updated.TotalCampaigns)
	assert.Equal(t, int64(1), updated.ActiveCampaigns)
}

func TestStatsWorkerRecompute(t *testing.T) {
	db := newTestDB(t)

	ngo := &model.NgoModel{Name: "希望之光"}
	require.NoError(t, db.Create(ngo).Error)

	campaign := &model.CampaignModel{
		NgoId: ngo.Id, Title: "活动", GoalAmount: 1000, RaisedAmount: 250,
		StartTime: time.Now().Add(-time.Hour), EndTime: time.Now().Add(time.Hour),
		Status: model.CampaignStatusActive,
	}
	require.NoError(t, db.Create(campaign).Error)

	worker, err := NewStatsWorker(db, testConfig())
	require.NoError(t, err)
	defer worker.Release()

	worker.recompute(ngo.Id)

	var updated model.NgoModel
	require.NoError(t, db.First(&updated, ngo.Id).Error)
	assert.Equal(t, int64(250), updated.TotalDonations)
}

package logic

import (
	"testing"
	"time"

	"github.com/blues/dps/internal/model"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

// newTestDB 构造内存数据库，结构与生产迁移一致
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
		NamingStrategy: &schema.NamingStrategy{
			SingularTable: true,
		},
	})
	require.NoError(t, err)

	// :memory: 下多连接会各自拿到独立的库，限制为单连接
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.NgoModel{},
		&model.CampaignModel{},
		&model.DonationModel{},
		&model.MonthlyDonationModel{},
		&model.PostModel{},
	))

	return db
}

func createTestNgo(t *testing.T, db *gorm.DB, name string) *model.NgoModel {
	t.Helper()

	ngo := &model.NgoModel{Name: name}
	require.NoError(t, db.Create(ngo).Error)
	return ngo
}

func createTestCampaign(t *testing.T, db *gorm.DB, ngoId int64, status model.CampaignStatus, raised int64) *model.CampaignModel {
	t.Helper()

	campaign := &model.CampaignModel{
		NgoId:        ngoId,
		Title:        "测试活动",
		GoalAmount:   100000,
		RaisedAmount: raised,
		StartTime:    time.Now().Add(-time.Hour),
		EndTime:      time.Now().Add(24 * time.Hour),
		Status:       status,
	}
	require.NoError(t, db.Create(campaign).Error)
	return campaign
}

func int64Ptr(v int64) *int64 {
	return &v
}

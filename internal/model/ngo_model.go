package model

import (
	"time"
)

// NgoModel 公益机构模型
type NgoModel struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 基本信息
	Name         string `json:"name" gorm:"not null" binding:"required"`
	Description  string `json:"description" gorm:"type:text"`
	LogoURL      string `json:"logo_url"`
	Website      string `json:"website"`
	ContactEmail string `json:"contact_email"`

	// 汇总统计（由统计重算逻辑整体覆盖，不做增量维护）
	TotalDonations  int64 `json:"total_donations" gorm:"default:0"`  // 所有活动已筹金额之和（分）
	TotalCampaigns  int64 `json:"total_campaigns" gorm:"default:0"`  // 活动总数
	ActiveCampaigns int64 `json:"active_campaigns" gorm:"default:0"` // 进行中活动数
	DonorsCount     int64 `json:"donors_count" gorm:"default:0"`     // 去重捐赠人数

	StatsUpdatedAt time.Time `json:"stats_updated_at"`
}

// TableName 自定义表名
func (NgoModel) TableName() string {
	return "ngo"
}

package model

import (
	"time"
)

// CampaignModel 募捐活动模型
type CampaignModel struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	NgoId int64 `json:"ngo_id" gorm:"not null;index"`

	// 基本信息
	Title       string `json:"title" gorm:"not null" binding:"required"`
	Description string `json:"description" gorm:"type:text"`
	ImageURL    string `json:"image_url"`
	Category    string `json:"category"`

	// 募捐信息（金额单位：分）
	GoalAmount   int64 `json:"goal_amount" gorm:"not null" binding:"required,min=0"`
	RaisedAmount int64 `json:"raised_amount" gorm:"default:0"`

	// 时间信息
	StartTime time.Time `json:"start_time" gorm:"not null"`
	EndTime   time.Time `json:"end_time" gorm:"not null"`

	// 状态
	Status CampaignStatus `json:"status" gorm:"default:'pending'"`
}

// CampaignStatus 活动状态
type CampaignStatus string

const (
	CampaignStatusPending   CampaignStatus = "pending"   // 待开始
	CampaignStatusActive    CampaignStatus = "active"    // 进行中
	CampaignStatusCompleted CampaignStatus = "completed" // 已结束
	CampaignStatusCancelled CampaignStatus = "cancelled" // 已取消
)

// TableName 自定义表名
func (CampaignModel) TableName() string {
	return "campaign"
}

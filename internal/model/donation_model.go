package model

import (
	"time"
)

// DonationModel 捐赠流水记录
type DonationModel struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	DonationNo string `json:"donation_no" gorm:"uniqueIndex;not null"` // 系统生成的捐赠编号
	NgoId      int64  `json:"ngo_id" gorm:"not null;index"`
	CampaignId int64  `json:"campaign_id" gorm:"not null;index"`
	DonorId    *int64 `json:"donor_id" gorm:"index"` // 为空表示匿名捐赠
	Amount     int64  `json:"amount" gorm:"not null"`

	// 状态
	Status DonationStatus `json:"status" gorm:"default:'pending'"`
}

// DonationStatus 捐赠状态
type DonationStatus string

const (
	DonationStatusPending   DonationStatus = "pending"   // 处理中
	DonationStatusCompleted DonationStatus = "completed" // 已完成
	DonationStatusFailed    DonationStatus = "failed"    // 失败
)

// TableName 自定义表名
func (DonationModel) TableName() string {
	return "donation"
}

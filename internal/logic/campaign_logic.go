package logic

import (
	"errors"
	"fmt"
	"time"

	"github.com/blues/dps/internal/model"
	"gorm.io/gorm"
)

// CampaignLogic 活动业务逻辑
type CampaignLogic struct {
	db *gorm.DB
}

// NewCampaignLogic 创建活动业务逻辑
func NewCampaignLogic(db *gorm.DB) *CampaignLogic {
	return &CampaignLogic{db: db}
}

// CreateCampaign 创建活动
func (c *CampaignLogic) CreateCampaign(campaign *model.CampaignModel) error {
	// 验证活动数据
	if err := c.validateCampaign(campaign); err != nil {
		return err
	}

	// 检查机构是否存在
	var ngo model.NgoModel
	if err := c.db.First(&ngo, campaign.NgoId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNgoNotFound
		}
		return err
	}

	// 设置默认值
	campaign.RaisedAmount = 0
	if campaign.StartTime.After(time.Now()) {
		campaign.Status = model.CampaignStatusPending
	} else {
		campaign.Status = model.CampaignStatusActive
	}

	// 创建活动
	if err := c.db.Create(campaign).Error; err != nil {
		return err
	}

	return nil
}

// GetCampaigns 获取活动列表
func (c *CampaignLogic) GetCampaigns(page, pageSize int) ([]model.CampaignModel, int64, error) {
	var campaigns []model.CampaignModel
	var total int64

	if err := c.db.Model(&model.CampaignModel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := c.db.Offset(offset).
		Limit(pageSize).
		Order("created_at DESC").
		Find(&campaigns).Error; err != nil {
		return nil, 0, err
	}

	return campaigns, total, nil
}

// GetNgoCampaigns 获取机构的活动列表
func (c *CampaignLogic) GetNgoCampaigns(ngoId int64) ([]model.CampaignModel, error) {
	var campaigns []model.CampaignModel
	if err := c.db.Where("ngo_id = ?", ngoId).
		Order("created_at DESC").
		Find(&campaigns).Error; err != nil {
		return nil, fmt.Errorf("获取机构活动列表失败: %w", err)
	}

	return campaigns, nil
}

// GetCampaign 获取活动详情
func (c *CampaignLogic) GetCampaign(id int64) (*model.CampaignModel, error) {
	var campaign model.CampaignModel
	if err := c.db.First(&campaign, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCampaignNotFound
		}
		return nil, fmt.Errorf("获取活动详情失败: %w", err)
	}

	return &campaign, nil
}

// CancelCampaign 取消活动
func (c *CampaignLogic) CancelCampaign(id int64) error {
	campaign, err := c.GetCampaign(id)
	if err != nil {
		return err
	}

	if campaign.Status == model.CampaignStatusCompleted || campaign.Status == model.CampaignStatusCancelled {
		return fmt.Errorf("%w: 活动已结束，无法取消", ErrValidation)
	}

	if err := c.db.Model(campaign).Update("status", model.CampaignStatusCancelled).Error; err != nil {
		return fmt.Errorf("取消活动失败: %w", err)
	}

	return nil
}

// validateCampaign 验证活动数据
func (c *CampaignLogic) validateCampaign(campaign *model.CampaignModel) error {
	if campaign.NgoId == 0 {
		return fmt.Errorf("%w: 机构ID不能为空", ErrValidation)
	}
	if campaign.Title == "" {
		return fmt.Errorf("%w: 活动标题不能为空", ErrValidation)
	}
	if campaign.GoalAmount <= 0 {
		return fmt.Errorf("%w: 目标金额必须大于0", ErrValidation)
	}
	if campaign.StartTime.After(campaign.EndTime) {
		return fmt.Errorf("%w: 开始时间不能晚于结束时间", ErrValidation)
	}
	return nil
}

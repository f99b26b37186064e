package logic

import (
	"errors"
	"fmt"

	"github.com/blues/dps/internal/model"
	"gorm.io/gorm"
)

// NgoLogic 机构业务逻辑
type NgoLogic struct {
	db *gorm.DB
}

// NewNgoLogic 创建机构业务逻辑
func NewNgoLogic(db *gorm.DB) *NgoLogic {
	return &NgoLogic{db: db}
}

// CreateNgo 创建机构
func (n *NgoLogic) CreateNgo(ngo *model.NgoModel) error {
	if ngo.Name == "" {
		return fmt.Errorf("%w: 机构名称不能为空", ErrValidation)
	}

	if err := n.db.Create(ngo).Error; err != nil {
		return err
	}

	return nil
}

// GetNgos 获取机构列表
func (n *NgoLogic) GetNgos() ([]model.NgoModel, error) {
	var ngos []model.NgoModel
	if err := n.db.Find(&ngos).Error; err != nil {
		return nil, fmt.Errorf("获取机构列表失败: %w", err)
	}

	return ngos, nil
}

// GetNgo 获取机构详情
func (n *NgoLogic) GetNgo(id int64) (*model.NgoModel, error) {
	var ngo model.NgoModel
	if err := n.db.First(&ngo, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNgoNotFound
		}
		return nil, fmt.Errorf("获取机构详情失败: %w", err)
	}

	return &ngo, nil
}

// GetNgoMonthlyDonations 获取机构月度捐赠桶，按年月排序
func (n *NgoLogic) GetNgoMonthlyDonations(ngoId int64) ([]model.MonthlyDonationModel, error) {
	if _, err := n.GetNgo(ngoId); err != nil {
		return nil, err
	}

	var buckets []model.MonthlyDonationModel
	if err := n.db.Where("ngo_id = ?", ngoId).
		Order("year ASC, created_at ASC").
		Find(&buckets).Error; err != nil {
		return nil, fmt.Errorf("获取月度捐赠失败: %w", err)
	}

	return buckets, nil
}

// GetLeaderboard 获取捐赠排行榜：按累计捐赠金额取前 limit 个机构
func (n *NgoLogic) GetLeaderboard(limit int) ([]model.NgoModel, error) {
	if limit <= 0 {
		limit = 10
	}

	var ngos []model.NgoModel
	if err := n.db.Order("total_donations DESC").
		Limit(limit).
		Find(&ngos).Error; err != nil {
		return nil, fmt.Errorf("获取排行榜失败: %w", err)
	}

	return ngos, nil
}

// GetPlatformStats 获取全平台统计信息
func (n *NgoLogic) GetPlatformStats() (map[string]interface{}, error) {
	var totalNgos int64
	n.db.Model(&model.NgoModel{}).Count(&totalNgos)

	var totalCampaigns int64
	n.db.Model(&model.CampaignModel{}).Count(&totalCampaigns)

	var activeCampaigns int64
	n.db.Model(&model.CampaignModel{}).
		Where("status = ?", model.CampaignStatusActive).
		Count(&activeCampaigns)

	var totalDonations int64
	n.db.Model(&model.DonationModel{}).
		Where("status = ?", model.DonationStatusCompleted).
		Count(&totalDonations)

	// 统计总捐赠金额
	var totalRaised int64
	n.db.Model(&model.DonationModel{}).
		Where("status = ?", model.DonationStatusCompleted).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&totalRaised)

	// 统计总捐赠人数（去重）
	var totalDonors int64
	n.db.Model(&model.DonationModel{}).
		Where("status = ? AND donor_id IS NOT NULL", model.DonationStatusCompleted).
		Distinct("donor_id").
		Count(&totalDonors)

	return map[string]interface{}{
		"totalNgos":       totalNgos,
		"totalCampaigns":  totalCampaigns,
		"activeCampaigns": activeCampaigns,
		"totalDonations":  totalDonations,
		"totalRaised":     totalRaised,
		"totalDonors":     totalDonors,
	}, nil
}

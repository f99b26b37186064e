package logic

import (
	"errors"
	"fmt"
	"time"

	"github.com/blues/dps/internal/model"
	"gorm.io/gorm"
)

// StatsLogic 机构统计重算逻辑
type StatsLogic struct {
	db *gorm.DB
}

// NewStatsLogic 创建统计重算逻辑
func NewStatsLogic(db *gorm.DB) *StatsLogic {
	return &StatsLogic{db: db}
}

// RecomputeNgoStats 从活动和捐赠流水全量重算机构统计并整体覆盖写回
// 幂等：相同源数据重算多次结果一致
func (s *StatsLogic) RecomputeNgoStats(ngoId int64) error {
	// 检查机构是否存在
	var ngo model.NgoModel
	if err := s.db.First(&ngo, ngoId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNgoNotFound
		}
		return err
	}

	// 按状态分组统计活动数量和已筹金额
	var groups []struct {
		Status string
		Cnt    int64
		Raised int64
	}
	if err := s.db.Model(&model.CampaignModel{}).
		Select("status, COUNT(*) as cnt, COALESCE(SUM(raised_amount), 0) as raised").
		Where("ngo_id = ?", ngoId).
		Group("status").
		Scan(&groups).Error; err != nil {
		return fmt.Errorf("统计活动分组失败: %w", err)
	}

	var totalCampaigns, activeCampaigns, totalDonations int64
	for _, g := range groups {
		totalCampaigns += g.Cnt
		totalDonations += g.Raised
		if g.Status == string(model.CampaignStatusActive) {
			activeCampaigns = g.Cnt
		}
	}

	// 去重捐赠人数：实名捐赠按 donor_id 去重，
	// 匿名捐赠（donor_id 为空）整体算作一个捐赠组
	var namedDonors int64
	if err := s.db.Model(&model.DonationModel{}).
		Where("ngo_id = ? AND status = ? AND donor_id IS NOT NULL", ngoId, model.DonationStatusCompleted).
		Distinct("donor_id").
		Count(&namedDonors).Error; err != nil {
		return fmt.Errorf("统计捐赠人数失败: %w", err)
	}

	var anonymousDonations int64
	if err := s.db.Model(&model.DonationModel{}).
		Where("ngo_id = ? AND status = ? AND donor_id IS NULL", ngoId, model.DonationStatusCompleted).
		Count(&anonymousDonations).Error; err != nil {
		return fmt.Errorf("统计匿名捐赠失败: %w", err)
	}

	donorsCount := namedDonors
	if anonymousDonations > 0 {
		donorsCount++
	}

	// 整体覆盖写回统计字段
	if err := s.db.Model(&model.NgoModel{}).
		Where("id = ?", ngoId).
		Updates(map[string]interface{}{
			"total_donations":  totalDonations,
			"total_campaigns":  totalCampaigns,
			"active_campaigns": activeCampaigns,
			"donors_count":     donorsCount,
			"stats_updated_at": time.Now(),
		}).Error; err != nil {
		return fmt.Errorf("写回机构统计失败: %w", err)
	}

	return nil
}

// RecomputeAllNgoStats 重算所有机构的统计，返回失败的机构数
func (s *StatsLogic) RecomputeAllNgoStats() (int, error) {
	var ngoIds []int64
	if err := s.db.Model(&model.NgoModel{}).Pluck("id", &ngoIds).Error; err != nil {
		return 0, fmt.Errorf("获取机构列表失败: %w", err)
	}

	failed := 0
	for _, id := range ngoIds {
		if err := s.RecomputeNgoStats(id); err != nil {
			failed++
		}
	}

	return failed, nil
}

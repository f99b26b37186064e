package logic

import (
	"errors"
	"fmt"
	"time"

	"github.com/blues/dps/internal/logger"
	"github.com/blues/dps/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StatsDispatcher 统计重算的异步分发接口
type StatsDispatcher interface {
	Dispatch(ngoId int64)
}

// DonationLogic 捐赠业务逻辑
type DonationLogic struct {
	db         *gorm.DB
	statsLogic *StatsLogic
	dispatcher StatsDispatcher
}

// NewDonationLogic 创建捐赠业务逻辑
// dispatcher 为空时统计重算在当前协程内同步执行（仅尽力而为）
func NewDonationLogic(db *gorm.DB, dispatcher StatsDispatcher) *DonationLogic {
	return &DonationLogic{
		db:         db,
		statsLogic: NewStatsLogic(db),
		dispatcher: dispatcher,
	}
}

// RecordDonation 记录一笔捐赠
// 流水插入、活动金额累加、月度桶累加在同一事务内完成；
// 统计重算在事务提交后异步触发，失败不影响捐赠结果
func (d *DonationLogic) RecordDonation(donation *model.DonationModel) error {
	// 验证捐赠数据
	if err := d.validateDonation(donation); err != nil {
		return err
	}

	// 检查机构是否存在
	var ngo model.NgoModel
	if err := d.db.First(&ngo, donation.NgoId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNgoNotFound
		}
		return err
	}

	// 检查活动是否存在且状态正确
	var campaign model.CampaignModel
	if err := d.db.First(&campaign, donation.CampaignId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCampaignNotFound
		}
		return err
	}

	if campaign.NgoId != donation.NgoId {
		return fmt.Errorf("%w: 活动不属于该机构", ErrValidation)
	}

	if campaign.Status != model.CampaignStatusActive {
		return ErrCampaignNotActive
	}

	// 设置默认值
	donation.DonationNo = uuid.NewString()
	donation.Status = model.DonationStatusCompleted

	now := time.Now()

	// 开始事务
	tx := d.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	// 创建捐赠流水
	if err := tx.Create(donation).Error; err != nil {
		tx.Rollback()
		return err
	}

	// 更新活动已筹金额
	if err := tx.Model(&campaign).
		Update("raised_amount", gorm.Expr("raised_amount + ?", donation.Amount)).Error; err != nil {
		tx.Rollback()
		return err
	}

	// 累加当月捐赠桶，不存在则插入
	// (ngo_id, month, year) 唯一索引保证并发下也只有一个桶
	bucket := model.MonthlyDonationModel{
		NgoId:  donation.NgoId,
		Month:  now.Format("Jan"),
		Year:   now.Year(),
		Amount: donation.Amount,
	}
	if err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "ngo_id"}, {Name: "month"}, {Name: "year"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"amount":     gorm.Expr("monthly_donation.amount + excluded.amount"),
			"updated_at": now,
		}),
	}).Create(&bucket).Error; err != nil {
		tx.Rollback()
		return err
	}

	// 提交事务
	if err := tx.Commit().Error; err != nil {
		return err
	}

	// 触发机构统计重算
	if d.dispatcher != nil {
		d.dispatcher.Dispatch(donation.NgoId)
	} else {
		if err := d.statsLogic.RecomputeNgoStats(donation.NgoId); err != nil {
			logger.Error("Failed to recompute stats for NGO %d after donation %s: %v",
				donation.NgoId, donation.DonationNo, err)
		}
	}

	return nil
}

// GetDonationByNo 根据捐赠编号获取捐赠记录
func (d *DonationLogic) GetDonationByNo(donationNo string) (*model.DonationModel, error) {
	var donation model.DonationModel
	if err := d.db.Where("donation_no = ?", donationNo).First(&donation).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDonationNotFound
		}
		return nil, fmt.Errorf("获取捐赠记录失败: %w", err)
	}

	return &donation, nil
}

// GetCampaignDonations 获取活动捐赠记录
func (d *DonationLogic) GetCampaignDonations(campaignId int64, page, pageSize int) ([]model.DonationModel, int64, error) {
	var donations []model.DonationModel
	var total int64

	// 获取总数
	if err := d.db.Model(&model.DonationModel{}).Where("campaign_id = ?", campaignId).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// 获取数据
	offset := (page - 1) * pageSize
	if err := d.db.Where("campaign_id = ?", campaignId).
		Offset(offset).
		Limit(pageSize).
		Order("created_at DESC").
		Find(&donations).Error; err != nil {
		return nil, 0, err
	}

	return donations, total, nil
}

// GetDonorDonations 获取捐赠人的捐赠记录
func (d *DonationLogic) GetDonorDonations(donorId int64, page, pageSize int) ([]model.DonationModel, int64, error) {
	var donations []model.DonationModel
	var total int64

	if err := d.db.Model(&model.DonationModel{}).Where("donor_id = ?", donorId).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := d.db.Where("donor_id = ?", donorId).
		Offset(offset).
		Limit(pageSize).
		Order("created_at DESC").
		Find(&donations).Error; err != nil {
		return nil, 0, err
	}

	return donations, total, nil
}

// validateDonation 验证捐赠数据
func (d *DonationLogic) validateDonation(donation *model.DonationModel) error {
	if donation.NgoId == 0 {
		return fmt.Errorf("%w: 机构ID不能为空", ErrValidation)
	}
	if donation.CampaignId == 0 {
		return fmt.Errorf("%w: 活动ID不能为空", ErrValidation)
	}
	if donation.Amount <= 0 {
		return fmt.Errorf("%w: 捐赠金额必须大于0", ErrValidation)
	}
	return nil
}

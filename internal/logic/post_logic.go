package logic

import (
	"errors"
	"fmt"

	"github.com/blues/dps/internal/model"
	"gorm.io/gorm"
)

// PostLogic 机构动态业务逻辑
type PostLogic struct {
	db *gorm.DB
}

// NewPostLogic 创建机构动态业务逻辑
func NewPostLogic(db *gorm.DB) *PostLogic {
	return &PostLogic{db: db}
}

// CreatePost 发布动态
func (p *PostLogic) CreatePost(post *model.PostModel) error {
	if post.NgoId == 0 {
		return fmt.Errorf("%w: 机构ID不能为空", ErrValidation)
	}
	if post.Title == "" {
		return fmt.Errorf("%w: 动态标题不能为空", ErrValidation)
	}

	// 检查机构是否存在
	var ngo model.NgoModel
	if err := p.db.First(&ngo, post.NgoId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNgoNotFound
		}
		return err
	}

	if err := p.db.Create(post).Error; err != nil {
		return err
	}

	return nil
}

// GetPosts 获取动态列表，最新的在前
func (p *PostLogic) GetPosts(page, pageSize int) ([]model.PostModel, int64, error) {
	var posts []model.PostModel
	var total int64

	if err := p.db.Model(&model.PostModel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := p.db.Offset(offset).
		Limit(pageSize).
		Order("created_at DESC").
		Find(&posts).Error; err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

// GetNgoPosts 获取机构的动态列表
func (p *PostLogic) GetNgoPosts(ngoId int64) ([]model.PostModel, error) {
	var posts []model.PostModel
	if err := p.db.Where("ngo_id = ?", ngoId).
		Order("created_at DESC").
		Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("获取机构动态失败: %w", err)
	}

	return posts, nil
}

package model

import (
	"time"
)

// PostModel 机构动态内容
type PostModel struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	NgoId    int64  `json:"ngo_id" gorm:"not null;index"`
	Title    string `json:"title" gorm:"not null" binding:"required"`
	Body     string `json:"body" gorm:"type:text"`
	ImageURL string `json:"image_url"`
}

// TableName 自定义表名
func (PostModel) TableName() string {
	return "post"
}

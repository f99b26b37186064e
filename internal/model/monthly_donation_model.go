package model

import (
	"time"
)

// MonthlyDonationModel 机构月度捐赠桶
// (ngo_id, month, year) 上有组合唯一索引，配合 ON CONFLICT 原子累加，
// 同一月份不会出现重复桶
type MonthlyDonationModel struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	NgoId  int64  `json:"ngo_id" gorm:"not null;uniqueIndex:idx_ngo_month_year"`
	Month  string `json:"month" gorm:"not null;uniqueIndex:idx_ngo_month_year"` // 三字母月份缩写，如 Jan
	Year   int    `json:"year" gorm:"not null;uniqueIndex:idx_ngo_month_year"`
	Amount int64  `json:"amount" gorm:"not null;default:0"`
}

// TableName 自定义表名
func (MonthlyDonationModel) TableName() string {
	return "monthly_donation"
}

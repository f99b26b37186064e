package logic

import "errors"

// 业务错误，handler 层据此映射 HTTP 状态码
var (
	ErrValidation        = errors.New("参数校验失败")
	ErrNgoNotFound       = errors.New("机构不存在")
	ErrCampaignNotFound  = errors.New("活动不存在")
	ErrCampaignNotActive = errors.New("活动不在进行中，无法接受捐赠")
	ErrDonationNotFound  = errors.New("捐赠记录不存在")
)

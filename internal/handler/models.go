package handler

import (
	"time"

	"github.com/blues/dps/internal/model"
	"github.com/shopspring/decimal"
)

// 通用响应结构
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// 分页信息结构
type Pagination struct {
	Page      int   `json:"page"`
	PageSize  int   `json:"pageSize"`
	Total     int64 `json:"total"`
	TotalPage int64 `json:"totalPage"`
}

// 捐赠相关请求模型

// CreateDonationRequest 捐赠提交请求
// amount 支持 JSON 数字或字符串，单位为元，入库转为分
type CreateDonationRequest struct {
	NgoId      int64           `json:"ngoId" binding:"required"`
	CampaignId int64           `json:"campaignId" binding:"required"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	DonorId    *int64          `json:"donorId"`
}

// CreateDonationResponse 捐赠提交响应
type CreateDonationResponse struct {
	DonationId string `json:"donationId"`
}

// DonationResponse 捐赠记录响应模型
type DonationResponse struct {
	Id         int64     `json:"id"`
	DonationNo string    `json:"donationNo"`
	NgoId      int64     `json:"ngoId"`
	CampaignId int64     `json:"campaignId"`
	DonorId    *int64    `json:"donorId"`
	Amount     int64     `json:"amount"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

// GetDonationsResponse 获取捐赠记录列表响应
type GetDonationsResponse struct {
	Donations  []DonationResponse `json:"donations"`
	Pagination Pagination         `json:"pagination"`
}

// 机构相关响应模型

// NgoResponse 机构响应模型
type NgoResponse struct {
	Id           int64     `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	LogoURL      string    `json:"logoUrl"`
	Website      string    `json:"website"`
	ContactEmail string    `json:"contactEmail"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// NgoStatsResponse 机构统计响应模型
type NgoStatsResponse struct {
	TotalDonations  int64     `json:"totalDonations"`
	TotalCampaigns  int64     `json:"totalCampaigns"`
	ActiveCampaigns int64     `json:"activeCampaigns"`
	DonorsCount     int64     `json:"donorsCount"`
	StatsUpdatedAt  time.Time `json:"statsUpdatedAt"`
}

// MonthlyDonationResponse 月度捐赠桶响应模型
type MonthlyDonationResponse struct {
	Month  string `json:"month"`
	Year   int    `json:"year"`
	Amount int64  `json:"amount"`
}

// LeaderboardEntryResponse 排行榜条目
type LeaderboardEntryResponse struct {
	Rank           int    `json:"rank"`
	NgoId          int64  `json:"ngoId"`
	Name           string `json:"name"`
	TotalDonations int64  `json:"totalDonations"`
	DonorsCount    int64  `json:"donorsCount"`
}

// 活动相关响应模型

// CampaignResponse 活动响应模型
type CampaignResponse struct {
	Id           int64     `json:"id"`
	NgoId        int64     `json:"ngoId"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ImageURL     string    `json:"imageUrl"`
	Category     string    `json:"category"`
	GoalAmount   int64     `json:"goalAmount"`
	RaisedAmount int64     `json:"raisedAmount"`
	Status       string    `json:"status"`
	StartTime    time.Time `json:"startTime"`
	EndTime      time.Time `json:"endTime"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// GetCampaignsResponse 获取活动列表响应
type GetCampaignsResponse struct {
	Campaigns  []CampaignResponse `json:"campaigns"`
	Pagination Pagination         `json:"pagination"`
}

// 动态相关响应模型

// PostResponse 动态响应模型
type PostResponse struct {
	Id        int64     `json:"id"`
	NgoId     int64     `json:"ngoId"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	ImageURL  string    `json:"imageUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

// GetPostsResponse 获取动态列表响应
type GetPostsResponse struct {
	Posts      []PostResponse `json:"posts"`
	Pagination Pagination     `json:"pagination"`
}

// 转换函数

// ToDonationResponse 将捐赠数据库模型转换为响应模型
func ToDonationResponse(donation *model.DonationModel) DonationResponse {
	return DonationResponse{
		Id:         donation.Id,
		DonationNo: donation.DonationNo,
		NgoId:      donation.NgoId,
		CampaignId: donation.CampaignId,
		DonorId:    donation.DonorId,
		Amount:     donation.Amount,
		Status:     string(donation.Status),
		CreatedAt:  donation.CreatedAt,
	}
}

// ToDonationResponseList 将捐赠数据库模型列表转换为响应模型列表
func ToDonationResponseList(donations []model.DonationModel) []DonationResponse {
	result := make([]DonationResponse, len(donations))
	for i, donation := range donations {
		result[i] = ToDonationResponse(&donation)
	}
	return result
}

// ToNgoResponse 将机构数据库模型转换为响应模型
func ToNgoResponse(ngo *model.NgoModel) NgoResponse {
	return NgoResponse{
		Id:           ngo.Id,
		Name:         ngo.Name,
		Description:  ngo.Description,
		LogoURL:      ngo.LogoURL,
		Website:      ngo.Website,
		ContactEmail: ngo.ContactEmail,
		CreatedAt:    ngo.CreatedAt,
		UpdatedAt:    ngo.UpdatedAt,
	}
}

// ToNgoResponseList 将机构数据库模型列表转换为响应模型列表
func ToNgoResponseList(ngos []model.NgoModel) []NgoResponse {
	result := make([]NgoResponse, len(ngos))
	for i, ngo := range ngos {
		result[i] = ToNgoResponse(&ngo)
	}
	return result
}

// ToNgoStatsResponse 将机构统计字段转换为响应模型
func ToNgoStatsResponse(ngo *model.NgoModel) NgoStatsResponse {
	return NgoStatsResponse{
		TotalDonations:  ngo.TotalDonations,
		TotalCampaigns:  ngo.TotalCampaigns,
		ActiveCampaigns: ngo.ActiveCampaigns,
		DonorsCount:     ngo.DonorsCount,
		StatsUpdatedAt:  ngo.StatsUpdatedAt,
	}
}

// ToMonthlyDonationResponseList 将月度桶数据库模型列表转换为响应模型列表
func ToMonthlyDonationResponseList(buckets []model.MonthlyDonationModel) []MonthlyDonationResponse {
	result := make([]MonthlyDonationResponse, len(buckets))
	for i, bucket := range buckets {
		result[i] = MonthlyDonationResponse{
			Month:  bucket.Month,
			Year:   bucket.Year,
			Amount: bucket.Amount,
		}
	}
	return result
}

// ToLeaderboardResponse 将机构列表转换为排行榜响应
func ToLeaderboardResponse(ngos []model.NgoModel) []LeaderboardEntryResponse {
	result := make([]LeaderboardEntryResponse, len(ngos))
	for i, ngo := range ngos {
		result[i] = LeaderboardEntryResponse{
			Rank:           i + 1,
			NgoId:          ngo.Id,
			Name:           ngo.Name,
			TotalDonations: ngo.TotalDonations,
			DonorsCount:    ngo.DonorsCount,
		}
	}
	return result
}

// ToCampaignResponse 将活动数据库模型转换为响应模型
func ToCampaignResponse(campaign *model.CampaignModel) CampaignResponse {
	return CampaignResponse{
		Id:           campaign.Id,
		NgoId:        campaign.NgoId,
		Title:        campaign.Title,
		Description:  campaign.Description,
		ImageURL:     campaign.ImageURL,
		Category:     campaign.Category,
		GoalAmount:   campaign.GoalAmount,
		RaisedAmount: campaign.RaisedAmount,
		Status:       string(campaign.Status),
		StartTime:    campaign.StartTime,
		EndTime:      campaign.EndTime,
		CreatedAt:    campaign.CreatedAt,
		UpdatedAt:    campaign.UpdatedAt,
	}
}

// ToCampaignResponseList 将活动数据库模型列表转换为响应模型列表
func ToCampaignResponseList(campaigns []model.CampaignModel) []CampaignResponse {
	result := make([]CampaignResponse, len(campaigns))
	for i, campaign := range campaigns {
		result[i] = ToCampaignResponse(&campaign)
	}
	return result
}

// ToPostResponse 将动态数据库模型转换为响应模型
func ToPostResponse(post *model.PostModel) PostResponse {
	return PostResponse{
		Id:        post.Id,
		NgoId:     post.NgoId,
		Title:     post.Title,
		Body:      post.Body,
		ImageURL:  post.ImageURL,
		CreatedAt: post.CreatedAt,
	}
}

// ToPostResponseList 将动态数据库模型列表转换为响应模型列表
func ToPostResponseList(posts []model.PostModel) []PostResponse {
	result := make([]PostResponse, len(posts))
	for i, post := range posts {
		result[i] = ToPostResponse(&post)
	}
	return result
}

package handler

import (
	"net/http"
	"strconv"

	"github.com/blues/dps/internal/logic"
	"github.com/blues/dps/internal/model"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DonationHandler 捐赠处理器
type DonationHandler struct {
	donationLogic *logic.DonationLogic
}

// NewDonationHandler 创建捐赠处理器
func NewDonationHandler(db *gorm.DB, dispatcher logic.StatsDispatcher) *DonationHandler {
	return &DonationHandler{
		donationLogic: logic.NewDonationLogic(db, dispatcher),
	}
}

// CreateDonation 提交捐赠
func (h *DonationHandler) CreateDonation(c *gin.Context) {
	var req CreateDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的捐赠请求: "+err.Error())
		return
	}

	// 金额由元转为分
	donation := &model.DonationModel{
		NgoId:      req.NgoId,
		CampaignId: req.CampaignId,
		DonorId:    req.DonorId,
		Amount:     req.Amount.Mul(decimal.NewFromInt(100)).IntPart(),
	}

	// 调用logic层记录捐赠
	if err := h.donationLogic.RecordDonation(donation); err != nil {
		LogicErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusCreated, "捐赠成功", CreateDonationResponse{
		DonationId: donation.DonationNo,
	})
}

// GetDonation 根据捐赠编号获取捐赠记录
func (h *DonationHandler) GetDonation(c *gin.Context) {
	donationNo := c.Param("no")
	if donationNo == "" {
		ErrorResponse(c, http.StatusBadRequest, "捐赠编号不能为空")
		return
	}

	donation, err := h.donationLogic.GetDonationByNo(donationNo)
	if err != nil {
		LogicErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "获取捐赠记录成功", ToDonationResponse(donation))
}

// GetCampaignDonations 获取活动捐赠记录
func (h *DonationHandler) GetCampaignDonations(c *gin.Context) {
	campaignIdStr := c.Param("id")
	campaignId, err := strconv.ParseInt(campaignIdStr, 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的活动ID")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	// 调用logic层获取活动捐赠记录
	donations, total, err := h.donationLogic.GetCampaignDonations(campaignId, page, pageSize)
	if err != nil {
		LogicErrorResponse(c, err)
		return
	}

	pagination := Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	}

	SuccessResponse(c, http.StatusOK, "获取活动捐赠记录成功", GetDonationsResponse{
		Donations:  ToDonationResponseList(donations),
		Pagination: pagination,
	})
}

// GetDonorDonations 获取捐赠人的捐赠记录
func (h *DonationHandler) GetDonorDonations(c *gin.Context) {
	donorIdStr := c.Param("id")
	donorId, err := strconv.ParseInt(donorIdStr, 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的捐赠人ID")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	donations, total, err := h.donationLogic.GetDonorDonations(donorId, page, pageSize)
	if err != nil {
		LogicErrorResponse(c, err)
		return
	}

	pagination := Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	}

	SuccessResponse(c, http.StatusOK, "获取捐赠人记录成功", GetDonationsResponse{
		Donations:  ToDonationResponseList(donations),
		Pagination: pagination,
	})
}

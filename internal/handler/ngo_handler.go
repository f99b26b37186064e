package handler

import (
	"net/http"
	"strconv"

	"github.com/blues/dps/internal/config"
	"github.com/blues/dps/internal/logic"
	"github.com/blues/dps/internal/model"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// NgoHandler 机构处理器
type NgoHandler struct {
	ngoLogic   *logic.NgoLogic
	statsLogic *logic.StatsLogic
	cfg        *config.Config
}

// NewNgoHandler 创建机构处理器
func NewNgoHandler(db *gorm.DB, cfg *config.Config) *NgoHandler {
	return &NgoHandler{
		ngoLogic:   logic.NewNgoLogic(db),
		statsLogic: logic.NewStatsLogic(db),
		cfg:        cfg,
	}
}

// CreateNgo 创建机构
func (h *NgoHandler) CreateNgo(c *gin.Context) {
	var ngo model.NgoModel
	if err := c.ShouldBindJSON(&ngo); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的机构数据: "+err.Error())
		return
	}

	if err := h.ngoLogic.CreateNgo(&ngo); err != nil {
		LogicErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusCreated, "创建机构成功", ToNgoResponse(&ngo))
}

// GetNgos 获取机构列表
func (h *NgoHandler) GetNgos(c *gin.Context) {
	ngos, err := h.ngoLogic.GetNgos()
	if err != nil {
		LogicErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "获取机构列表成功", ToNgoResponseList(ngos))
}

// GetNgo 获取机构详情
func (h *NgoHandler) GetNgo(c *gin.Context) {
	ngoId, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的机构ID")
		return
	}

	ngo, err := h.ngoLogic.GetNgo(ngoId)
	if err != nil {
		LogicErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "获取机构详情成功", ToNgoResponse(ngo))
}

// GetNgoStats 获取机构统计信息（仪表盘）
func (h *NgoHandler) GetNgoStats(c *gin.Context) {
	ngoId, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的机构ID")
		return
	}

	ngo, err := h.ngoLogic.GetNgo(ngoId)
	if err != nil {
		LogicErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "获取机构统计成功", ToNgoStatsResponse(ngo))
}

// GetNgoMonthlyDonations 获取机构月度捐赠
func (h *NgoHandler) GetNgoMonthlyDonations(c *gin.Context) {
	ngoId, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的机构ID")
		return
	}

	buckets, err := h.ngoLogic.GetNgoMonthlyDonations(ngoId)
	if err != nil {
		LogicErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "获取月度捐赠成功", ToMonthlyDonationResponseList(buckets))
}

// GetLeaderboard 获取捐赠排行榜
func (h *NgoHandler) GetLeaderboard(c *gin.Context) {
	limit := h.cfg.Stats.LeaderboardSize
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil {
			limit = parsed
		}
	}

	ngos, err := h.ngoLogic.GetLeaderboard(limit)
	if err != nil {
		LogicErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "获取排行榜成功", ToLeaderboardResponse(ngos))
}

// GetPlatformStats 获取全平台统计信息
func (h *NgoHandler) GetPlatformStats(c *gin.Context) {
	stats, err := h.ngoLogic.GetPlatformStats()
	if err != nil {
		LogicErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "获取平台统计成功", stats)
}

// RecomputeNgoStats 手动触发机构统计重算
func (h *NgoHandler) RecomputeNgoStats(c *gin.Context) {
	ngoId, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的机构ID")
		return
	}

	if err := h.statsLogic.RecomputeNgoStats(ngoId); err != nil {
		LogicErrorResponse(c, err)
		return
	}

	ngo, err := h.ngoLogic.GetNgo(ngoId)
	if err != nil {
		LogicErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "统计重算成功", ToNgoStatsResponse(ngo))
}

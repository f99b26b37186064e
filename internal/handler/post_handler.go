package handler

import (
	"net/http"
	"strconv"

	"github.com/blues/dps/internal/logic"
	"github.com/blues/dps/internal/model"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PostHandler 机构动态处理器
type PostHandler struct {
	postLogic *logic.PostLogic
}

// NewPostHandler 创建机构动态处理器
func NewPostHandler(db *gorm.DB) *PostHandler {
	return &PostHandler{
		postLogic: logic.NewPostLogic(db),
	}
}

// CreatePost 发布动态
func (h *PostHandler) CreatePost(c *gin.Context) {
	var post model.PostModel
	if err := c.ShouldBindJSON(&post); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的动态数据: "+err.Error())
		return
	}

	if err := h.postLogic.CreatePost(&post); err != nil {
		LogicErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusCreated, "发布动态成功", ToPostResponse(&post))
}

// GetPosts 获取动态列表
func (h *PostHandler) GetPosts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	posts, total, err := h.postLogic.GetPosts(page, pageSize)
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

	SuccessResponse(c, http.StatusOK, "获取动态列表成功", GetPostsResponse{
		Posts:      ToPostResponseList(posts),
		Pagination: pagination,
	})
}

// GetNgoPosts 获取机构动态列表
func (h *PostHandler) GetNgoPosts(c *gin.Context) {
	ngoId, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的机构ID")
		return
	}

	posts, err := h.postLogic.GetNgoPosts(ngoId)
	if err != nil {
		LogicErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "获取机构动态成功", ToPostResponseList(posts))
}

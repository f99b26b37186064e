package router

import (
	"github.com/blues/dps/internal/config"
	"github.com/blues/dps/internal/handler"
	"github.com/blues/dps/internal/logic"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Setup(db *gorm.DB, dispatcher logic.StatsDispatcher, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	// 中间件
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(corsMiddleware())

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "donation-platform-service",
		})
	})

	// API版本组
	v1 := r.Group("/api/v1")
	{
		// 机构相关路由
		ngoHandler := handler.NewNgoHandler(db, cfg)
		campaignHandler := handler.NewCampaignHandler(db)
		postHandler := handler.NewPostHandler(db)
		ngos := v1.Group("/ngos")
		{
			ngos.POST("", ngoHandler.CreateNgo)
			ngos.GET("", ngoHandler.GetNgos)
			ngos.GET("/:id", ngoHandler.GetNgo)
			ngos.GET("/:id/stats", ngoHandler.GetNgoStats)
			ngos.POST("/:id/stats/recompute", ngoHandler.RecomputeNgoStats)
			ngos.GET("/:id/monthly-donations", ngoHandler.GetNgoMonthlyDonations)
			ngos.GET("/:id/campaigns", campaignHandler.GetNgoCampaigns)
			ngos.GET("/:id/posts", postHandler.GetNgoPosts)
		}

		// 活动相关路由
		donationHandler := handler.NewDonationHandler(db, dispatcher)
		campaigns := v1.Group("/campaigns")
		{
			campaigns.POST("", campaignHandler.CreateCampaign)
			campaigns.GET("", campaignHandler.GetCampaigns)
			campaigns.GET("/:id", campaignHandler.GetCampaign)
			campaigns.DELETE("/:id", campaignHandler.CancelCampaign)
			campaigns.GET("/:id/donations", donationHandler.GetCampaignDonations)
		}

		// 捐赠相关路由
		donations := v1.Group("/donations")
		{
			donations.POST("", donationHandler.CreateDonation)
			donations.GET("/:no", donationHandler.GetDonation)
		}

		// 捐赠人相关路由
		donors := v1.Group("/donors")
		{
			donors.GET("/:id/donations", donationHandler.GetDonorDonations)
		}

		// 动态相关路由
		posts := v1.Group("/posts")
		{
			posts.POST("", postHandler.CreatePost)
			posts.GET("", postHandler.GetPosts)
		}

		// 排行榜与平台统计
		v1.GET("/leaderboard", ngoHandler.GetLeaderboard)
		v1.GET("/stats", ngoHandler.GetPlatformStats)
	}

	return r
}

// CORS中间件
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

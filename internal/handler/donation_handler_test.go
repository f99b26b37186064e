package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/blues/dps/internal/config"
	"github.com/blues/dps/internal/model"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
		NamingStrategy: &schema.NamingStrategy{
			SingularTable: true,
		},
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.NgoModel{},
		&model.CampaignModel{},
		&model.DonationModel{},
		&model.MonthlyDonationModel{},
		&model.PostModel{},
	))

	return db
}

func newTestEngine(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	cfg := &config.Config{
		Stats: config.StatsConfig{LeaderboardSize: 10},
	}

	donationHandler := NewDonationHandler(db, nil)
	ngoHandler := NewNgoHandler(db, cfg)

	v1 := r.Group("/api/v1")
	v1.POST("/donations", donationHandler.CreateDonation)
	v1.GET("/donations/:no", donationHandler.GetDonation)
	v1.GET("/ngos/:id/stats", ngoHandler.GetNgoStats)
	v1.GET("/leaderboard", ngoHandler.GetLeaderboard)

	return r
}

func seedActiveCampaign(t *testing.T, db *gorm.DB) (*model.NgoModel, *model.CampaignModel) {
	t.Helper()

	ngo := &model.NgoModel{Name: "希望之光"}
	require.NoError(t, db.Create(ngo).Error)

	campaign := &model.CampaignModel{
		NgoId:      ngo.Id,
		Title:      "冬季助学",
		GoalAmount: 100000,
		StartTime:  time.Now().Add(-time.Hour),
		EndTime:    time.Now().Add(24 * time.Hour),
		Status:     model.CampaignStatusActive,
	}
	require.NoError(t, db.Create(campaign).Error)

	return ngo, campaign
}

func TestCreateDonationEndpoint(t *testing.T) {
	db := newTestDB(t)
	ngo, campaign := seedActiveCampaign(t, db)
	r := newTestEngine(db)

	// 金额以字符串提交，单位为元
	body := map[string]interface{}{
		"ngoId":      ngo.Id,
		"campaignId": campaign.Id,
		"amount":     "25.50",
		"donorId":    7,
	}
	payload, _ := json.Marshal(body)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/donations", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)

	data := resp.Data.(map[string]interface{})
	assert.NotEmpty(t, data["donationId"])

	// 金额已转为分并累加到活动
	var updated model.CampaignModel
	require.NoError(t, db.First(&updated, campaign.Id).Error)
	assert.Equal(t, int64(2550), updated.RaisedAmount)
}

func TestCreateDonationEndpointValidation(t *testing.T) {
	db := newTestDB(t)
	ngo, campaign := seedActiveCampaign(t, db)
	r := newTestEngine(db)

	tests := []struct {
		name       string
		body       map[string]interface{}
		wantStatus int
	}{
		{
			name:       "missing campaign id",
			body:       map[string]interface{}{"ngoId": ngo.Id, "amount": 10},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing ngo id",
			body:       map[string]interface{}{"campaignId": campaign.Id, "amount": 10},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing amount",
			body:       map[string]interface{}{"ngoId": ngo.Id, "campaignId": campaign.Id},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "campaign not found",
			body:       map[string]interface{}{"ngoId": ngo.Id, "campaignId": 9999, "amount": 10},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, _ := json.Marshal(tt.body)
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/donations", bytes.NewReader(payload))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)

			var resp Response
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
		})
	}

	// 校验失败不产生捐赠记录
	var count int64
	db.Model(&model.DonationModel{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestCreateDonationEndpointInactiveCampaign(t *testing.T) {
	db := newTestDB(t)
	ngo, campaign := seedActiveCampaign(t, db)
	require.NoError(t, db.Model(campaign).Update("status", model.CampaignStatusCompleted).Error)
	r := newTestEngine(db)

	body := map[string]interface{}{"ngoId": ngo.Id, "campaignId": campaign.Id, "amount": 10}
	payload, _ := json.Marshal(body)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/donations", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestGetDonationEndpoint(t *testing.T) {
	db := newTestDB(t)
	ngo, campaign := seedActiveCampaign(t, db)
	r := newTestEngine(db)

	body := map[string]interface{}{"ngoId": ngo.Id, "campaignId": campaign.Id, "amount": 5}
	payload, _ := json.Marshal(body)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/donations", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var created Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	donationNo := created.Data.(map[string]interface{})["donationId"].(string)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/v1/donations/"+donationNo, nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, donationNo, data["donationNo"])
	assert.Equal(t, "completed", data["status"])

	// 不存在的编号
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/v1/donations/no-such-no", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLeaderboardEndpoint(t *testing.T) {
	db := newTestDB(t)
	r := newTestEngine(db)

	ngos := []model.NgoModel{
		{Name: "机构A", TotalDonations: 100},
		{Name: "机构B", TotalDonations: 300},
		{Name: "机构C", TotalDonations: 200},
	}
	for i := range ngos {
		require.NoError(t, db.Create(&ngos[i]).Error)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/leaderboard?limit=2", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	entries := resp.Data.([]interface{})
	require.Len(t, entries, 2)

	first := entries[0].(map[string]interface{})
	assert.Equal(t, "机构B", first["name"])
	assert.Equal(t, float64(1), first["rank"])
}

package logic

import (
	"testing"
	"time"

	"github.com/blues/dps/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCampaign(t *testing.T) {
	db := newTestDB(t)
	ngo := createTestNgo(t, db, "希望之光")

	campaignLogic := NewCampaignLogic(db)

	campaign := &model.CampaignModel{
		NgoId:      ngo.Id,
		Title:      "冬季助学",
		GoalAmount: 500000,
		StartTime:  time.Now().Add(-time.Minute),
		EndTime:    time.Now().Add(30 * 24 * time.Hour),
	}
	require.NoError(t, campaignLogic.CreateCampaign(campaign))

	assert.NotZero(t, campaign.Id)
	assert.Equal(t, model.CampaignStatusActive, campaign.Status)
	assert.Equal(t, int64(0), campaign.RaisedAmount)
}

func TestCreateCampaignPendingBeforeStart(t *testing.T) {
	db := newTestDB(t)
	ngo := createTestNgo(t, db, "希望之光")

	campaignLogic := NewCampaignLogic(db)

	campaign := &model.CampaignModel{
		NgoId:      ngo.Id,
		Title:      "春季募捐",
		GoalAmount: 100000,
		StartTime:  time.Now().Add(24 * time.Hour),
		EndTime:    time.Now().Add(30 * 24 * time.Hour),
	}
	require.NoError(t, campaignLogic.CreateCampaign(campaign))
	assert.Equal(t, model.CampaignStatusPending, campaign.Status)
}

func TestCreateCampaignValidation(t *testing.T) {
	db := newTestDB(t)
	ngo := createTestNgo(t, db, "希望之光")

	campaignLogic := NewCampaignLogic(db)

	tests := []struct {
		name     string
		campaign *model.CampaignModel
		wantErr  error
	}{
		{
			name: "missing ngo",
			campaign: &model.CampaignModel{
				Title: "活动", GoalAmount: 100,
				StartTime: time.Now(), EndTime: time.Now().Add(time.Hour),
			},
			wantErr: ErrValidation,
		},
		{
			name: "missing title",
			campaign: &model.CampaignModel{
				NgoId: ngo.Id, GoalAmount: 100,
				StartTime: time.Now(), EndTime: time.Now().Add(time.Hour),
			},
			wantErr: ErrValidation,
		},
		{
			name: "zero goal",
			campaign: &model.CampaignModel{
				NgoId: ngo.Id, Title: "活动",
				StartTime: time.Now(), EndTime: time.Now().Add(time.Hour),
			},
			wantErr: ErrValidation,
		},
		{
			name: "start after end",
			campaign: &model.CampaignModel{
				NgoId: ngo.Id, Title: "活动", GoalAmount: 100,
				StartTime: time.Now().Add(2 * time.Hour), EndTime: time.Now().Add(time.Hour),
			},
			wantErr: ErrValidation,
		},
		{
			name: "ngo not found",
			campaign: &model.CampaignModel{
				NgoId: 9999, Title: "活动", GoalAmount: 100,
				StartTime: time.Now(), EndTime: time.Now().Add(time.Hour),
			},
			wantErr: ErrNgoNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := campaignLogic.CreateCampaign(tt.campaign)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCancelCampaign(t *testing.T) {
	db := newTestDB(t)
	ngo := createTestNgo(t, db, "希望之光")
	campaign := createTestCampaign(t, db, ngo.Id, model.CampaignStatusActive, 0)

	campaignLogic := NewCampaignLogic(db)
	require.NoError(t, campaignLogic.CancelCampaign(campaign.Id))

	updated, err := campaignLogic.GetCampaign(campaign.Id)
	require.NoError(t, err)
	assert.Equal(t, model.CampaignStatusCancelled, updated.Status)

	// 已结束活动无法取消
	finished := createTestCampaign(t, db, ngo.Id, model.CampaignStatusCompleted, 0)
	assert.ErrorIs(t, campaignLogic.CancelCampaign(finished.Id), ErrValidation)
}

func TestGetCampaignNotFound(t *testing.T) {
	db := newTestDB(t)

	campaignLogic := NewCampaignLogic(db)
	_, err := campaignLogic.GetCampaign(12345)
	assert.ErrorIs(t, err, ErrCampaignNotFound)
}

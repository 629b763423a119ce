package meta

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/vfg2006/ads-mirror-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-mirror-api/infrastructure/integrator/meta/metaclient/mocks"
	"github.com/vfg2006/ads-mirror-api/internal/config"
	"github.com/vfg2006/ads-mirror-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newIntegrator(t *testing.T) (*MetaIntegrator, *mocks.MockClient) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	cfg.Batching.PagesBatchSize = 2

	return New(cfg, client), client
}

func TestListAccounts(t *testing.T) {
	integrator, client := newIntegrator(t)

	client.EXPECT().GetAdAccounts(gomock.Any(), "tok").Return([]metadomain.AdAccount{
		{ID: "act_1", Name: "Loja", Currency: "BRL", AccountStatus: 1, TimezoneName: "America/Sao_Paulo"},
		{AccountID: "2", Name: "Outra", AccountStatus: 2},
	}, true, nil)

	accounts, err := integrator.ListAccounts(context.Background(), "tok")

	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, "act_1", accounts[0].ID)
	assert.Equal(t, domain.AdAccountStatusActive, accounts[0].Status)
	assert.Equal(t, "act_2", accounts[1].ID)
	assert.Equal(t, domain.AdAccountStatusDisabled, accounts[1].Status)
}

func TestGetAdCounts(t *testing.T) {
	integrator, client := newIntegrator(t)

	client.EXPECT().GetAdStatuses(gomock.Any(), "tok", "act_1").Return([]metadomain.AdStatus{
		{ID: "1", EffectiveStatus: "ACTIVE"},
		{ID: "2", EffectiveStatus: "PAUSED"},
		{ID: "3", EffectiveStatus: "ADSET_PAUSED"},
		{ID: "4", EffectiveStatus: "DISAPPROVED"},
	}, true, nil)

	counts, err := integrator.GetAdCounts(context.Background(), "tok", []string{"act_1"})

	require.NoError(t, err)
	assert.Equal(t, &domain.AdCounts{Total: 4, Active: 1, Paused: 2}, counts["act_1"])
}

func TestGetAdSetsCompletude(t *testing.T) {
	tests := []struct {
		name         string
		setup        func(client *mocks.MockClient)
		wantErr      bool
		wantComplete bool
		wantItems    int
	}{
		{
			name: "todas as campanhas completas",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().GetAdSetsByCampaign(gomock.Any(), "tok", "c1", gomock.Any()).Return([]metadomain.AdSet{{ID: "s1"}}, true, nil)
				client.EXPECT().GetAdSetsByCampaign(gomock.Any(), "tok", "c2", gomock.Any()).Return([]metadomain.AdSet{{ID: "s2"}, {ID: "s3"}}, true, nil)
			},
			wantComplete: true,
			wantItems:    3,
		},
		{
			name: "uma campanha truncada torna a listagem incompleta",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().GetAdSetsByCampaign(gomock.Any(), "tok", "c1", gomock.Any()).Return([]metadomain.AdSet{{ID: "s1"}}, false, nil)
				client.EXPECT().GetAdSetsByCampaign(gomock.Any(), "tok", "c2", gomock.Any()).Return(nil, true, nil)
			},
			wantComplete: false,
			wantItems:    1,
		},
		{
			name: "falha interrompe a listagem",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().GetAdSetsByCampaign(gomock.Any(), "tok", "c1", gomock.Any()).Return(nil, false, domain.ErrUpstreamRateLimited)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			integrator, client := newIntegrator(t)
			tt.setup(client)

			listing, err := integrator.GetAdSets(context.Background(), "tok", []string{"c1", "c2"}, nil)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrUpstreamRateLimited)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantComplete, listing.Complete)
			assert.Len(t, listing.Items, tt.wantItems)
		})
	}
}

func TestGetPageNamesIgnoraFalhas(t *testing.T) {
	integrator, client := newIntegrator(t)

	client.EXPECT().GetPage(gomock.Any(), "tok", "p1").Return(&metadomain.Page{ID: "p1", Name: "Loja Centro"}, nil)
	client.EXPECT().GetPage(gomock.Any(), "tok", "p2").Return(nil, errors.New("boom"))
	client.EXPECT().GetPage(gomock.Any(), "tok", "p3").Return(&metadomain.Page{ID: "p3", Name: "Loja Sul"}, nil)

	names, err := integrator.GetPageNames(context.Background(), "tok", []string{"p1", "p2", "p3"})

	require.NoError(t, err)
	assert.Equal(t, map[string]string{"p1": "Loja Centro", "p3": "Loja Sul"}, names)
}

func TestListManagedPageIDs(t *testing.T) {
	integrator, client := newIntegrator(t)

	client.EXPECT().GetManagedPages(gomock.Any(), "tok").Return([]metadomain.Page{
		{ID: "p1", Name: "Loja Centro"},
		{ID: "p3", Name: "Loja Sul"},
	}, false, nil)

	ids, err := integrator.ListManagedPageIDs(context.Background(), "tok")

	require.NoError(t, err)
	assert.Equal(t, []string{"p1", "p3"}, ids)
}

func TestFactoryAd(t *testing.T) {
	remote := &metadomain.Ad{
		ID:              "ad1",
		AdSetID:         "s1",
		CampaignID:      "c1",
		AccountID:       "123",
		Status:          "ACTIVE",
		EffectiveStatus: "ACTIVE",
		Creative:        &metadomain.Creative{ThumbnailURL: "https://cdn/thumb.png"},
		Campaign:        &metadomain.ParentRef{ID: "c1", Objective: "OUTCOME_ENGAGEMENT"},
		Insights: &metadomain.InsightEdge{Data: []metadomain.Insight{{
			Impressions: "1000",
			Spend:       "25.456",
			Actions: []metadomain.Action{
				{ActionType: metadomain.ActionMessagingContact, Value: "12"},
				{ActionType: metadomain.ActionPostEngagement, Value: "40"},
			},
			CostPerActions: []metadomain.Action{
				{ActionType: metadomain.ActionMessagingContact, Value: "2.1213"},
			},
			VideoP25WatchedActions:  []metadomain.Action{{ActionType: "video_view", Value: "300"}},
			VideoP100WatchedActions: []metadomain.Action{{ActionType: "video_view", Value: "50"}},
		}}},
	}

	ad := FactoryAd(remote)

	assert.Equal(t, "act_123", ad.AccountID)
	assert.Equal(t, "https://cdn/thumb.png", ad.ThumbnailURL)
	assert.Equal(t, int64(1000), ad.Impressions)
	assert.Equal(t, 25.46, ad.Spend)
	assert.Equal(t, int64(12), ad.Results)
	assert.Equal(t, int64(12), ad.MessagingContacts)
	assert.Equal(t, 2.12, ad.CostPerMessagingContact)
	assert.Equal(t, int64(40), ad.PostEngagements)
	assert.Equal(t, int64(300), ad.VideoP25Views)
	assert.Equal(t, int64(50), ad.VideoP100Views)
}

func TestFactoryCampaignConverteOrcamentoEmCentavos(t *testing.T) {
	campaign := FactoryCampaign(&metadomain.Campaign{
		ID:          "c1",
		AccountID:   "123",
		DailyBudget: "5000",
		StartTime:   "2025-01-10T08:00:00-0300",
	})

	assert.Equal(t, 50.0, campaign.DailyBudget)
	assert.Equal(t, 50.0, campaign.Budget())
	require.NotNil(t, campaign.StartTime)
	assert.Equal(t, 2025, campaign.StartTime.Year())
	assert.Equal(t, domain.InsightMetrics{}, campaign.InsightMetrics)
}

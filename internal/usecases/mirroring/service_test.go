package mirroring

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metamocks "github.com/vfg2006/ads-mirror-api/infrastructure/integrator/meta/mocks"
	"github.com/vfg2006/ads-mirror-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-mirror-api/internal/domain"
	authmocks "github.com/vfg2006/ads-mirror-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/ads-mirror-api/pkg/apiErrors"
	"github.com/vfg2006/ads-mirror-api/pkg/cache"
	"go.uber.org/mock/gomock"
)

const testUser = 3

type fixture struct {
	accounts  *mocks.MockAccountRepository
	campaigns *mocks.MockCampaignRepository
	adSets    *mocks.MockAdSetRepository
	ads       *mocks.MockAdRepository
	syncLogs  *mocks.MockSyncLogRepository
	remote    *metamocks.MockRemoteClient
	tokens    *authmocks.MockUpstreamTokenResolver
	insights  *cache.TTLCache[*domain.Insight]
	assets    *cache.TTLCache[[]byte]
	service   *Service
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	f := &fixture{
		accounts:  mocks.NewMockAccountRepository(ctrl),
		campaigns: mocks.NewMockCampaignRepository(ctrl),
		adSets:    mocks.NewMockAdSetRepository(ctrl),
		ads:       mocks.NewMockAdRepository(ctrl),
		syncLogs:  mocks.NewMockSyncLogRepository(ctrl),
		remote:    metamocks.NewMockRemoteClient(ctrl),
		tokens:    authmocks.NewMockUpstreamTokenResolver(ctrl),
		insights:  cache.New[*domain.Insight]("insights", time.Minute, 10),
		assets:    cache.New[[]byte]("assets", time.Minute, 10),
	}

	f.service = NewService(Repositories{
		Accounts:  f.accounts,
		Campaigns: f.campaigns,
		AdSets:    f.adSets,
		Ads:       f.ads,
		SyncLogs:  f.syncLogs,
	}, f.remote, f.tokens, f.insights, f.assets)

	return f
}

func successLog() *domain.SyncLog {
	completedAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	return &domain.SyncLog{ID: "s1", UserID: testUser, Status: domain.SyncStatusSuccess, CompletedAt: &completedAt}
}

func TestListAccounts(t *testing.T) {
	tests := []struct {
		name       string
		accounts   []*domain.AdAccount
		syncLog    *domain.SyncLog
		wantStatus domain.SyncStatus
		wantSynced bool
	}{
		{
			name:       "lista vazia após sincronização com sucesso",
			accounts:   []*domain.AdAccount{},
			syncLog:    successLog(),
			wantStatus: domain.SyncStatusSuccess,
			wantSynced: true,
		},
		{
			name:     "nunca sincronizado",
			accounts: []*domain.AdAccount{},
			syncLog:  nil,
		},
		{
			name:       "com contas",
			accounts:   []*domain.AdAccount{{ID: "act_1"}},
			syncLog:    successLog(),
			wantStatus: domain.SyncStatusSuccess,
			wantSynced: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.accounts.EXPECT().ListAccountsByUser(gomock.Any(), testUser).Return(tt.accounts, nil)
			f.syncLogs.EXPECT().GetLatestSyncLog(gomock.Any(), testUser).Return(tt.syncLog, nil)

			read, err := f.service.ListAccounts(context.Background(), testUser)

			require.NoError(t, err)
			assert.True(t, read.Cached)
			assert.Equal(t, tt.accounts, read.Data)
			assert.Equal(t, tt.wantStatus, read.LastSyncStatus)
			assert.Equal(t, tt.wantSynced, read.LastSyncedAt != nil)
		})
	}
}

func TestListCampaignsContaDeOutroUsuario(t *testing.T) {
	f := newFixture(t)
	f.accounts.EXPECT().GetAccount(gomock.Any(), testUser, "act_9").Return(nil, nil)

	_, err := f.service.ListCampaigns(context.Background(), testUser, "act_9")

	var mirrorErr *MirrorError
	require.ErrorAs(t, err, &mirrorErr)
	assert.Equal(t, apiErrors.ErrResourceNotFound, mirrorErr.Code)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListAds(t *testing.T) {
	f := newFixture(t)
	ads := []*domain.Ad{{ID: "A", AdSetID: "s1"}}

	f.adSets.EXPECT().GetAdSetsByIDs(gomock.Any(), testUser, []string{"s1"}).Return([]*domain.AdSet{{ID: "s1"}}, nil)
	f.ads.EXPECT().ListAdsByAdSet(gomock.Any(), "s1").Return(ads, nil)
	f.syncLogs.EXPECT().GetLatestSyncLog(gomock.Any(), testUser).Return(successLog(), nil)

	read, err := f.service.ListAds(context.Background(), testUser, "s1")

	require.NoError(t, err)
	assert.Equal(t, ads, read.Data)
}

func TestListAdSetsCampanhaInexistente(t *testing.T) {
	f := newFixture(t)
	f.campaigns.EXPECT().GetCampaignsByIDs(gomock.Any(), testUser, []string{"c1"}).Return([]*domain.Campaign{}, nil)

	_, err := f.service.ListAdSets(context.Background(), testUser, "c1")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetInsights(t *testing.T) {
	f := newFixture(t)
	f.accounts.EXPECT().GetAccount(gomock.Any(), testUser, "act_1").Return(&domain.AdAccount{ID: "act_1"}, nil).Times(2)
	f.syncLogs.EXPECT().GetLatestSyncLog(gomock.Any(), testUser).Return(successLog(), nil).Times(2)
	f.tokens.EXPECT().Resolve(gomock.Any(), testUser).Return("tok", nil)
	f.remote.EXPECT().GetInsights(gomock.Any(), "tok", []string{"act_1"}, gomock.Nil()).
		Return(map[string]*domain.Insight{}, nil)

	first, err := f.service.GetInsights(context.Background(), testUser, "act_1", nil)
	require.NoError(t, err)
	assert.False(t, first.Cached)

	second, err := f.service.GetInsights(context.Background(), testUser, "act_1", nil)
	require.NoError(t, err)
	assert.True(t, second.Cached)

	insight, ok := second.Data.(*domain.Insight)
	require.True(t, ok)
	assert.Equal(t, "act_1", insight.AccountID)
	assert.Zero(t, insight.Spend)
}

func TestGetInsightsTokenRejeitado(t *testing.T) {
	f := newFixture(t)
	f.accounts.EXPECT().GetAccount(gomock.Any(), testUser, "act_1").Return(&domain.AdAccount{ID: "act_1"}, nil)
	f.tokens.EXPECT().Resolve(gomock.Any(), testUser).Return("tok", nil)
	f.tokens.EXPECT().Invalidate(testUser)
	f.remote.EXPECT().GetInsights(gomock.Any(), "tok", []string{"act_1"}, gomock.Any()).Return(nil, domain.ErrUnauthorized)

	_, err := f.service.GetInsights(context.Background(), testUser, "act_1", nil)

	var mirrorErr *MirrorError
	require.ErrorAs(t, err, &mirrorErr)
	assert.Equal(t, apiErrors.ErrMissingUpstreamToken, mirrorErr.Code)
	assert.Zero(t, f.insights.Len())
}

func TestGetThumbnail(t *testing.T) {
	f := newFixture(t)
	ad := &domain.Ad{ID: "A", ThumbnailURL: "https://cdn.example/a.png"}

	f.ads.EXPECT().GetAd(gomock.Any(), testUser, "A").Return(ad, nil).Times(2)
	f.remote.EXPECT().FetchAsset(gomock.Any(), ad.ThumbnailURL).Return([]byte("png"), "image/png", nil).Times(1)

	first, err := f.service.GetThumbnail(context.Background(), testUser, "A")
	require.NoError(t, err)
	assert.False(t, first.Cached)

	second, err := f.service.GetThumbnail(context.Background(), testUser, "A")
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, "image/png", second.ContentType)
	assert.Equal(t, []byte("png"), second.Data)
}

func TestGetThumbnailSemURL(t *testing.T) {
	f := newFixture(t)
	f.ads.EXPECT().GetAd(gomock.Any(), testUser, "A").Return(&domain.Ad{ID: "A"}, nil)

	_, err := f.service.GetThumbnail(context.Background(), testUser, "A")

	assert.ErrorIs(t, err, ErrNoThumbnail)
}

func TestSnapshot(t *testing.T) {
	f := newFixture(t)
	f.accounts.EXPECT().ListAccountsByUser(gomock.Any(), testUser).Return([]*domain.AdAccount{{ID: "act_1"}}, nil)
	f.campaigns.EXPECT().ListCampaignsByAccounts(gomock.Any(), []string{"act_1"}).
		Return([]*domain.Campaign{{ID: "c1", AccountID: "act_1", Status: "ACTIVE", LifetimeBudget: 300}}, nil)
	f.adSets.EXPECT().ListAdSetsByAccounts(gomock.Any(), []string{"act_1"}).
		Return([]*domain.AdSet{{ID: "s1", AccountID: "act_1", DailyBudget: 50}}, nil)
	f.ads.EXPECT().ListAdsByAccounts(gomock.Any(), []string{"act_1"}).
		Return([]*domain.Ad{{ID: "A", AccountID: "act_1", EffectiveStatus: "PAUSED"}}, nil)

	snapshot, err := f.service.Snapshot(context.Background(), testUser)

	require.NoError(t, err)
	require.Len(t, snapshot, 3)
	assert.Equal(t, 300.0, snapshot[domain.SnapshotKey(domain.EntityCampaign, "c1")].Budget)
	assert.Equal(t, 50.0, snapshot[domain.SnapshotKey(domain.EntityAdSet, "s1")].Budget)
	assert.Equal(t, "PAUSED", snapshot[domain.SnapshotKey(domain.EntityAd, "A")].EffectiveStatus)
}

func TestSnapshotSemContas(t *testing.T) {
	f := newFixture(t)
	f.accounts.EXPECT().ListAccountsByUser(gomock.Any(), testUser).Return([]*domain.AdAccount{}, nil)

	snapshot, err := f.service.Snapshot(context.Background(), testUser)

	require.NoError(t, err)
	assert.Empty(t, snapshot)
}

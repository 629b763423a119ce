package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-mirror-api/internal/domain"
	"github.com/vfg2006/ads-mirror-api/internal/usecases/syncing"
	"github.com/vfg2006/ads-mirror-api/internal/usecases/syncing/mocks"
	"github.com/vfg2006/ads-mirror-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestFullSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	syncer := mocks.NewMockSyncer(ctrl)

	syncer.EXPECT().FullSync(gomock.Any(), testUserID, (*domain.InsightFilters)(nil)).
		Return(&domain.SyncResult{Accounts: 2, Ads: 10, Log: &domain.SyncLog{Status: domain.SyncStatusSuccess}}, nil)

	rec := httptest.NewRecorder()
	FullSync(syncer).ServeHTTP(rec, newRequest(http.MethodPost, "/v1/sync/full", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body domain.SyncResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Accounts)
	assert.Equal(t, 10, body.Ads)
	assert.Equal(t, domain.SyncStatusSuccess, body.Log.Status)
}

func TestFullSyncComDatas(t *testing.T) {
	ctrl := gomock.NewController(t)
	syncer := mocks.NewMockSyncer(ctrl)

	syncer.EXPECT().FullSync(gomock.Any(), testUserID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int, filters *domain.InsightFilters) (*domain.SyncResult, error) {
			require.NotNil(t, filters)
			assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), *filters.StartDate)
			assert.Equal(t, time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC), *filters.EndDate)
			return &domain.SyncResult{}, nil
		})

	body := strings.NewReader(`{"start_date":"2025-03-01","end_date":"2025-03-31"}`)
	rec := httptest.NewRecorder()
	FullSync(syncer).ServeHTTP(rec, newRequest(http.MethodPost, "/v1/sync/full", body))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestFullSyncErros(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "json inválido",
			body:       `{"ids":"act_1"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidRequest,
		},
		{
			name:       "data em formato inválido",
			body:       `{"start_date":"2025/03/01","end_date":"2025-03-31"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidFormat,
		},
		{
			name:       "usuário sem token vinculado",
			body:       `{}`,
			serviceErr: syncing.NewSyncError(domain.ErrMissingUpstreamToken, apiErrors.ErrMissingUpstreamToken, testUserID, "sem token"),
			wantStatus: http.StatusPreconditionFailed,
			wantCode:   apiErrors.ErrMissingUpstreamToken,
		},
		{
			name:       "todas as contas falharam",
			body:       `{}`,
			serviceErr: syncing.NewSyncError(domain.ErrUpstreamRateLimited, apiErrors.ErrRateLimited, testUserID, "limite"),
			wantStatus: http.StatusTooManyRequests,
			wantCode:   apiErrors.ErrRateLimited,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			syncer := mocks.NewMockSyncer(ctrl)
			if tt.serviceErr != nil {
				syncer.EXPECT().FullSync(gomock.Any(), testUserID, gomock.Any()).Return(nil, tt.serviceErr)
			}

			rec := httptest.NewRecorder()
			FullSync(syncer).ServeHTTP(rec, newRequest(http.MethodPost, "/v1/sync/full", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, decodeAPIError(t, rec).Code)
		})
	}
}

func TestIncrementalSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	syncer := mocks.NewMockSyncer(ctrl)

	syncer.EXPECT().SyncAds(gomock.Any(), testUserID, []string{"as_1", "as_2"}, (*domain.InsightFilters)(nil)).
		Return(&domain.SyncResult{Ads: 4}, nil)

	body := strings.NewReader(`{"ids":["as_1","as_2"]}`)
	rec := httptest.NewRecorder()
	IncrementalSync("anúncios", syncer.SyncAds).ServeHTTP(rec, newRequest(http.MethodPost, "/v1/sync/ads", body))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ads":4`)
}

func TestIncrementalSyncNaoEncontrado(t *testing.T) {
	ctrl := gomock.NewController(t)
	syncer := mocks.NewMockSyncer(ctrl)

	syncer.EXPECT().SyncCampaigns(gomock.Any(), testUserID, []string{"act_9"}, gomock.Any()).
		Return(nil, syncing.NewSyncError(domain.ErrNotFound, apiErrors.ErrResourceNotFound, testUserID, "conta não pertence ao usuário"))

	body := strings.NewReader(`{"ids":["act_9"]}`)
	rec := httptest.NewRecorder()
	IncrementalSync("campanhas", syncer.SyncCampaigns).ServeHTTP(rec, newRequest(http.MethodPost, "/v1/sync/campaigns", body))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSyncStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	syncer := mocks.NewMockSyncer(ctrl)

	syncer.EXPECT().SyncStatus(gomock.Any(), testUserID).
		Return(&domain.SyncLog{ID: "log_1", Status: domain.SyncStatusInProgress, Type: domain.SyncTypeFull}, nil)

	rec := httptest.NewRecorder()
	SyncStatus(syncer).ServeHTTP(rec, newRequest(http.MethodGet, "/v1/sync/status", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "IN_PROGRESS")
}

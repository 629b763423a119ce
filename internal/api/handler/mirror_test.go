package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-mirror-api/internal/domain"
	"github.com/vfg2006/ads-mirror-api/internal/usecases/mirroring"
	"github.com/vfg2006/ads-mirror-api/internal/usecases/mirroring/mocks"
	"github.com/vfg2006/ads-mirror-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestListAccounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := mocks.NewMockReader(ctrl)

	syncedAt := time.Date(2025, 5, 2, 10, 0, 0, 0, time.UTC)
	reader.EXPECT().ListAccounts(gomock.Any(), testUserID).Return(&domain.CachedRead{
		Data:           []*domain.AdAccount{{ID: "act_1", Name: "Loja Centro"}},
		Cached:         true,
		LastSyncedAt:   &syncedAt,
		LastSyncStatus: domain.SyncStatusSuccess,
	}, nil)

	rec := httptest.NewRecorder()
	ListAccounts(reader).ServeHTTP(rec, newRequest(http.MethodGet, "/v1/accounts", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data           []domain.AdAccount `json:"data"`
		Cached         bool               `json:"cached"`
		LastSyncedAt   time.Time          `json:"last_synced_at"`
		LastSyncStatus string             `json:"last_sync_status"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, "act_1", body.Data[0].ID)
	assert.True(t, body.Cached)
	assert.True(t, syncedAt.Equal(body.LastSyncedAt))
	assert.Equal(t, "SUCCESS", body.LastSyncStatus)
}

func TestListChildren(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		err        error
		wantStatus int
	}{
		{name: "conta do usuário", id: "act_1", wantStatus: http.StatusOK},
		{
			name:       "conta de outro usuário",
			id:         "act_9",
			err:        mirroring.NewMirrorError(domain.ErrNotFound, apiErrors.ErrResourceNotFound, "act_9", "conta não encontrada"),
			wantStatus: http.StatusNotFound,
		},
		{name: "sem id", id: "", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			read := func(_ context.Context, userID int, id string) (*domain.CachedRead, error) {
				calls++
				assert.Equal(t, testUserID, userID)
				assert.Equal(t, tt.id, id)
				if tt.err != nil {
					return nil, tt.err
				}
				return &domain.CachedRead{Data: []*domain.Campaign{}, Cached: true}, nil
			}

			rec := httptest.NewRecorder()
			ListChildren("campanhas", read).ServeHTTP(rec, newRequest(http.MethodGet, "/v1/accounts/x/campaigns", nil, "id", tt.id))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.id == "" {
				assert.Zero(t, calls)
			}
		})
	}
}

func TestGetAccountInsights(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := mocks.NewMockReader(ctrl)

	reader.EXPECT().GetInsights(gomock.Any(), testUserID, "act_1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int, _ string, filters *domain.InsightFilters) (*domain.CachedRead, error) {
			require.NotNil(t, filters)
			assert.Equal(t, "2025-04-01", filters.StartDate.Format(time.DateOnly))
			assert.Equal(t, "2025-04-30", filters.EndDate.Format(time.DateOnly))
			return &domain.CachedRead{Data: &domain.Insight{AccountID: "act_1"}, Cached: false}, nil
		})

	rec := httptest.NewRecorder()
	req := newRequest(http.MethodGet, "/v1/accounts/act_1/insights?start_date=2025-04-01&end_date=2025-04-30", nil, "id", "act_1")
	GetAccountInsights(reader).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"cached":false`)
}

func TestGetAccountInsightsDataInvalida(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := mocks.NewMockReader(ctrl)

	rec := httptest.NewRecorder()
	req := newRequest(http.MethodGet, "/v1/accounts/act_1/insights?start_date=ontem", nil, "id", "act_1")
	GetAccountInsights(reader).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidFormat, decodeAPIError(t, rec).Code)
}

func TestGetAdThumbnail(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := mocks.NewMockReader(ctrl)

	png := []byte{0x89, 0x50, 0x4e, 0x47}
	reader.EXPECT().GetThumbnail(gomock.Any(), testUserID, "ad_1").
		Return(&mirroring.Asset{Data: png, ContentType: "image/png", Cached: true}, nil)

	rec := httptest.NewRecorder()
	GetAdThumbnail(reader).ServeHTTP(rec, newRequest(http.MethodGet, "/v1/ads/ad_1/thumbnail", nil, "id", "ad_1"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, "HIT", rec.Header().Get("X-Cache"))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestGetAdThumbnailSemMiniatura(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := mocks.NewMockReader(ctrl)

	reader.EXPECT().GetThumbnail(gomock.Any(), testUserID, "ad_2").
		Return(nil, mirroring.NewMirrorError(mirroring.ErrNoThumbnail, apiErrors.ErrResourceNotFound, "ad_2", "anúncio sem miniatura"))

	rec := httptest.NewRecorder()
	GetAdThumbnail(reader).ServeHTTP(rec, newRequest(http.MethodGet, "/v1/ads/ad_2/thumbnail", nil, "id", "ad_2"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-mirror-api/internal/domain"
	"github.com/vfg2006/ads-mirror-api/internal/usecases/messaging"
	"github.com/vfg2006/ads-mirror-api/internal/usecases/mirroring"
	"github.com/vfg2006/ads-mirror-api/internal/usecases/syncing"
	"github.com/vfg2006/ads-mirror-api/pkg/apiErrors"
	"github.com/vfg2006/ads-mirror-api/pkg/middleware"
)

const testUserID = 7

func newRequest(method, target string, body io.Reader, params ...string) *http.Request {
	r := httptest.NewRequest(method, target, body)

	ctx := context.WithValue(r.Context(), middleware.ContextKeyUser, &domain.Claims{
		UserID:     testUserID,
		UserRoleID: middleware.RoleClient,
	})

	if len(params) > 0 {
		var ps httprouter.Params
		for i := 0; i+1 < len(params); i += 2 {
			ps = append(ps, httprouter.Param{Key: params[i], Value: params[i+1]})
		}
		ctx = context.WithValue(ctx, httprouter.ParamsKey, ps)
	}

	return r.WithContext(ctx)
}

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()
	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

func TestHandleServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "erro de sincronização",
			err:        syncing.NewSyncError(domain.ErrMissingUpstreamToken, apiErrors.ErrMissingUpstreamToken, testUserID, "sem token"),
			wantStatus: http.StatusPreconditionFailed,
			wantCode:   apiErrors.ErrMissingUpstreamToken,
		},
		{
			name:       "erro do espelho",
			err:        mirroring.NewMirrorError(domain.ErrNotFound, apiErrors.ErrResourceNotFound, "act_1", "conta não encontrada"),
			wantStatus: http.StatusNotFound,
			wantCode:   apiErrors.ErrResourceNotFound,
		},
		{
			name:       "erro de mensageria",
			err:        messaging.NewMessagingError(messaging.ErrInvalidSignature, apiErrors.ErrInvalidSignature, "", "assinatura"),
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiErrors.ErrInvalidSignature,
		},
		{
			name:       "erro de domínio embrulhado",
			err:        fmt.Errorf("listar: %w", domain.ErrUpstreamRateLimited),
			wantStatus: http.StatusTooManyRequests,
			wantCode:   apiErrors.ErrRateLimited,
		},
		{
			name:       "erro desconhecido",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   apiErrors.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			handleServiceError(rec, newRequest(http.MethodGet, "/", nil), tt.err, "falhou")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, decodeAPIError(t, rec).Code)
		})
	}
}

func TestHandleServiceErrorNaoVazaDetalhesInternos(t *testing.T) {
	rec := httptest.NewRecorder()

	handleServiceError(rec, newRequest(http.MethodGet, "/", nil), errors.New("pq: connection refused"), "Erro ao listar")

	apiErr := decodeAPIError(t, rec)
	assert.Equal(t, "Erro ao listar", apiErr.Message)
	assert.False(t, strings.Contains(rec.Body.String(), "pq:"))
}

func TestParseDateRange(t *testing.T) {
	tests := []struct {
		name      string
		start     string
		end       string
		wantNil   bool
		wantError bool
	}{
		{name: "sem datas", wantNil: true},
		{name: "intervalo completo", start: "2025-01-01", end: "2025-01-31"},
		{name: "formato inválido", start: "01/01/2025", end: "2025-01-31", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filters, err := parseDateRange(tt.start, tt.end)

			if tt.wantError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.wantNil {
				assert.Nil(t, filters)
				return
			}
			require.NotNil(t, filters)
			assert.Equal(t, tt.start, filters.StartDate.Format("2006-01-02"))
			assert.Equal(t, tt.end, filters.EndDate.Format("2006-01-02"))
		})
	}
}

func TestClaimsAusentes(t *testing.T) {
	rec := httptest.NewRecorder()

	SyncStatus(nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/sync/status", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidToken, decodeAPIError(t, rec).Code)
}

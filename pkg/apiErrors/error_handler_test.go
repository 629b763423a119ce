package apiErrors

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-mirror-api/internal/domain"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		code       string
		wantStatus int
	}{
		{code: ErrMissingUpstreamToken, wantStatus: http.StatusPreconditionFailed},
		{code: ErrRateLimited, wantStatus: http.StatusTooManyRequests},
		{code: ErrResourceNotFound, wantStatus: http.StatusNotFound},
		{code: ErrExternalService, wantStatus: http.StatusBadGateway},
		{code: "DESCONHECIDO", wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			rec := httptest.NewRecorder()

			WriteError(rec, tt.code, "mensagem", nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
		})
	}
}

func TestCodeForDomainError(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{err: fmt.Errorf("resolve: %w", domain.ErrMissingUpstreamToken), want: ErrMissingUpstreamToken},
		{err: domain.ErrUnauthorized, want: ErrMissingUpstreamToken},
		{err: domain.ErrUpstreamRateLimited, want: ErrRateLimited},
		{err: domain.ErrUpstream, want: ErrExternalService},
		{err: domain.ErrNotFound, want: ErrResourceNotFound},
		{err: domain.ErrUnauthenticated, want: ErrInvalidToken},
		{err: fmt.Errorf("qualquer"), want: ErrInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, CodeForDomainError(tt.err))
		})
	}
}

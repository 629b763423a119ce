package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-mirror-api/internal/domain"
	"github.com/vfg2006/ads-mirror-api/internal/usecases/authenticating/mocks"
	"go.uber.org/mock/gomock"
)

func claimsHandler(t *testing.T, want *domain.Claims) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, _ := r.Context().Value(ContextKeyUser).(*domain.Claims)
		assert.Equal(t, want, claims)
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestAuthMiddleware(t *testing.T) {
	claims := &domain.Claims{UserID: 3, UserRoleID: RoleClient}

	tests := []struct {
		name       string
		method     string
		target     string
		header     string
		token      string
		tokenErr   error
		wantClaims *domain.Claims
		wantStatus int
	}{
		{name: "rota pública", method: http.MethodGet, target: "/healthcheck", wantStatus: http.StatusNoContent},
		{name: "webhook sem token", method: http.MethodPost, target: "/v1/webhook", wantStatus: http.StatusNoContent},
		{name: "preflight", method: http.MethodOptions, target: "/v1/accounts", wantStatus: http.StatusNoContent},
		{name: "sem cabeçalho", method: http.MethodGet, target: "/v1/accounts", wantStatus: http.StatusUnauthorized},
		{name: "cabeçalho sem Bearer", method: http.MethodGet, target: "/v1/accounts", header: "abc", wantStatus: http.StatusUnauthorized},
		{
			name:       "token válido",
			method:     http.MethodGet,
			target:     "/v1/accounts",
			header:     "Bearer abc",
			token:      "abc",
			wantClaims: claims,
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "token rejeitado",
			method:     http.MethodGet,
			target:     "/v1/accounts",
			header:     "Bearer abc",
			token:      "abc",
			tokenErr:   errors.New("expired"),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "stream aceita token na query",
			method:     http.MethodGet,
			target:     "/v1/stream?access_token=xyz",
			token:      "xyz",
			wantClaims: claims,
			wantStatus: http.StatusNoContent,
		},
		{name: "query ignorada fora do stream", method: http.MethodGet, target: "/v1/accounts?access_token=xyz", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			authService := mocks.NewMockAuthenticator(ctrl)
			if tt.token != "" {
				var result *domain.Claims
				if tt.tokenErr == nil {
					result = claims
				}
				authService.EXPECT().ValidateToken(tt.token).Return(result, tt.tokenErr)
			}

			req := httptest.NewRequest(tt.method, tt.target, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(authService)(claimsHandler(t, tt.wantClaims)).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRoleMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		middleware func(http.Handler) http.Handler
		claims     *domain.Claims
		wantStatus int
	}{
		{name: "admin em rota de admin", middleware: AdminOnly(), claims: &domain.Claims{UserRoleID: RoleAdmin}, wantStatus: http.StatusOK},
		{name: "cliente em rota de admin", middleware: AdminOnly(), claims: &domain.Claims{UserRoleID: RoleClient}, wantStatus: http.StatusForbidden},
		{name: "supervisor em rota de consulta", middleware: AdminOrSupervisor(), claims: &domain.Claims{UserRoleID: RoleSupervisor}, wantStatus: http.StatusOK},
		{name: "cliente em qualquer rota", middleware: AllRoles(), claims: &domain.Claims{UserRoleID: RoleClient}, wantStatus: http.StatusOK},
		{name: "sem claims", middleware: AllRoles(), wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/poll/start", nil)
			if tt.claims != nil {
				req = req.WithContext(context.WithValue(req.Context(), ContextKeyUser, tt.claims))
			}
			rec := httptest.NewRecorder()

			tt.middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			})).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestLoggingMiddlewareRepassaFlush(t *testing.T) {
	var flushed bool
	handler := LoggingMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		flusher, ok := w.(http.Flusher)
		require.True(t, ok)
		w.WriteHeader(http.StatusAccepted)
		flusher.Flush()
		flushed = true
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/stream", nil))

	assert.True(t, flushed)
	assert.True(t, rec.Flushed)
	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestLogPanicMiddleware(t *testing.T) {
	handler := LogPanicMiddleware()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/accounts", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestCors(t *testing.T) {
	handler := Cors([]string{"http://localhost:3000", " "})(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodOptions, "/v1/accounts", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Last-Event-ID")

	req = httptest.NewRequest(http.MethodGet, "/v1/accounts", nil)
	req.Header.Set("Origin", "https://outro.example.com")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCorsSemOrigensConfiguradas(t *testing.T) {
	handler := Cors(nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/v1/accounts", nil)
	req.Header.Set("Origin", "http://localhost:4001")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:4001", rec.Header().Get("Access-Control-Allow-Origin"))
}

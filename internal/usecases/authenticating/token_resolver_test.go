package authenticating

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-mirror-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-mirror-api/internal/domain"
	"github.com/vfg2006/ads-mirror-api/pkg/cache"
	"go.uber.org/mock/gomock"
)

func TestResolveUsaCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)

	userRepo.EXPECT().GetUpstreamToken(gomock.Any(), 7).Return("tok-7", nil).Times(1)

	resolver := NewUpstreamTokenResolver(userRepo, cache.New[string]("tokens", time.Minute, 10))

	for range 3 {
		token, err := resolver.Resolve(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, "tok-7", token)
	}
}

func TestResolveAposInvalidarConsultaNovamente(t *testing.T) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)

	gomock.InOrder(
		userRepo.EXPECT().GetUpstreamToken(gomock.Any(), 7).Return("antigo", nil),
		userRepo.EXPECT().GetUpstreamToken(gomock.Any(), 7).Return("novo", nil),
	)

	resolver := NewUpstreamTokenResolver(userRepo, cache.New[string]("tokens", time.Minute, 10))

	token, err := resolver.Resolve(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "antigo", token)

	resolver.Invalidate(7)

	token, err = resolver.Resolve(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "novo", token)
}

func TestResolveErros(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		repoErr error
		wantErr error
	}{
		{name: "usuário sem token vinculado", token: "", wantErr: domain.ErrMissingUpstreamToken},
		{name: "usuário inexistente", repoErr: domain.ErrNotFound, wantErr: domain.ErrUnauthenticated},
		{name: "falha no banco", repoErr: errors.New("conn refused"), wantErr: domain.ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			userRepo := mocks.NewMockUserRepository(ctrl)
			tokens := cache.New[string]("tokens", time.Minute, 10)

			userRepo.EXPECT().GetUpstreamToken(gomock.Any(), 1).Return(tt.token, tt.repoErr)

			_, err := NewUpstreamTokenResolver(userRepo, tokens).Resolve(context.Background(), 1)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, 0, tokens.Len())
		})
	}
}

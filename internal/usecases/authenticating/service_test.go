package authenticating

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metamocks "github.com/vfg2006/ads-mirror-api/infrastructure/integrator/meta/mocks"
	"github.com/vfg2006/ads-mirror-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-mirror-api/internal/config"
	"github.com/vfg2006/ads-mirror-api/internal/domain"
	authmocks "github.com/vfg2006/ads-mirror-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/ads-mirror-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Auth.Secret = "segredo-de-teste"
	cfg.Auth.TokenTTL = time.Hour
	return cfg
}

func TestLoginUser(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("senha-forte"), bcrypt.MinCost)
	require.NoError(t, err)

	activeUser := &domain.User{ID: 3, Email: "ana@loja.com", PasswordHash: string(hash), Active: true}

	tests := []struct {
		name     string
		email    string
		password string
		setup    func(userRepo *mocks.MockUserRepository)
		wantCode string
	}{
		{
			name:     "login com sucesso normaliza o email",
			email:    " Ana@Loja.com ",
			password: "senha-forte",
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByEmail(gomock.Any(), "ana@loja.com").Return(activeUser, nil)
			},
		},
		{
			name:     "senha incorreta",
			email:    "ana@loja.com",
			password: "errada",
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByEmail(gomock.Any(), "ana@loja.com").Return(activeUser, nil)
			},
			wantCode: apiErrors.ErrInvalidCredentials,
		},
		{
			name:     "usuário desativado",
			email:    "ana@loja.com",
			password: "senha-forte",
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByEmail(gomock.Any(), "ana@loja.com").Return(&domain.User{ID: 3, Active: false}, nil)
			},
			wantCode: apiErrors.ErrUserDisabled,
		},
		{
			name:     "usuário inexistente",
			email:    "x@loja.com",
			password: "senha-forte",
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByEmail(gomock.Any(), "x@loja.com").Return(nil, nil)
			},
			wantCode: apiErrors.ErrUserNotFound,
		},
		{
			name:     "campos vazios",
			setup:    func(userRepo *mocks.MockUserRepository) {},
			wantCode: apiErrors.ErrMissingRequiredData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			userRepo := mocks.NewMockUserRepository(ctrl)
			tt.setup(userRepo)

			service := NewService(userRepo, metamocks.NewMockRemoteClient(ctrl), authmocks.NewMockUpstreamTokenResolver(ctrl), testConfig())

			token, err := service.LoginUser(context.Background(), tt.email, tt.password)

			if tt.wantCode != "" {
				var authErr *AuthError
				require.ErrorAs(t, err, &authErr)
				assert.Equal(t, tt.wantCode, authErr.Code)
				return
			}

			require.NoError(t, err)
			claims, err := service.ValidateToken(token)
			require.NoError(t, err)
			assert.Equal(t, 3, claims.UserID)
		})
	}
}

func TestValidateTokenRejeitaOutroSegredo(t *testing.T) {
	token, err := generateJWT(&domain.User{ID: 1}, "outro-segredo", time.Hour)
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	service := NewService(mocks.NewMockUserRepository(ctrl), metamocks.NewMockRemoteClient(ctrl), authmocks.NewMockUpstreamTokenResolver(ctrl), testConfig())

	_, err = service.ValidateToken(token)

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestLinkUpstreamToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)
	remote := metamocks.NewMockRemoteClient(ctrl)
	tokens := authmocks.NewMockUpstreamTokenResolver(ctrl)

	remote.EXPECT().ExchangeToken(gomock.Any(), "curto").Return("longo", nil)
	userRepo.EXPECT().SetUpstreamToken(gomock.Any(), 5, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int, token *string) error {
			require.NotNil(t, token)
			assert.Equal(t, "longo", *token)
			return nil
		})
	tokens.EXPECT().Invalidate(5)

	err := NewService(userRepo, remote, tokens, testConfig()).LinkUpstreamToken(context.Background(), 5, "curto")

	require.NoError(t, err)
}

func TestLinkUpstreamTokenRecusado(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := metamocks.NewMockRemoteClient(ctrl)

	remote.EXPECT().ExchangeToken(gomock.Any(), "curto").Return("", domain.ErrUnauthorized)

	err := NewService(mocks.NewMockUserRepository(ctrl), remote, authmocks.NewMockUpstreamTokenResolver(ctrl), testConfig()).
		LinkUpstreamToken(context.Background(), 5, "curto")

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, apiErrors.ErrInvalidToken, authErr.Code)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

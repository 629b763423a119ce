package authenticating

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-mirror-api/infrastructure/integrator/meta"
	"github.com/vfg2006/ads-mirror-api/infrastructure/repository"
	"github.com/vfg2006/ads-mirror-api/internal/config"
	"github.com/vfg2006/ads-mirror-api/internal/domain"
	"github.com/vfg2006/ads-mirror-api/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

type Authenticator interface {
	LoginUser(ctx context.Context, email, password string) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
	LinkUpstreamToken(ctx context.Context, userID int, shortLivedToken string) error
	UnlinkUpstreamToken(ctx context.Context, userID int) error
}

type Service struct {
	userRepo repository.UserRepository
	remote   meta.RemoteClient
	tokens   UpstreamTokenResolver
	cfg      *config.Config
}

func NewService(userRepo repository.UserRepository, remote meta.RemoteClient, tokens UpstreamTokenResolver, cfg *config.Config) Authenticator {
	return &Service{
		userRepo: userRepo,
		remote:   remote,
		tokens:   tokens,
		cfg:      cfg,
	}
}

func handleEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	email = strings.ReplaceAll(email, " ", "")
	return email
}

func (s *Service) LoginUser(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email e senha são obrigatórios")
	}

	user, err := s.userRepo.GetUserByEmail(ctx, handleEmail(email))
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}

	if user == nil {
		return "", NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, "Usuário não encontrado")
	}

	if !user.Active {
		return "", NewUserAuthError(ErrUserDisabled, apiErrors.ErrUserDisabled, user.ID, "Conta desativada")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, user.ID, "Senha incorreta")
	}

	token, err := generateJWT(user, s.cfg.Auth.Secret, s.cfg.Auth.TokenTTL)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	return token, nil
}

func generateJWT(user *domain.User, secretKey string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	claims := domain.Claims{
		UserID:       user.ID,
		UserName:     user.Name,
		UserLastname: user.Lastname,
		UserEmail:    user.Email,
		UserActive:   user.Active,
		UserRoleID:   user.RoleID,

		UpstreamLinked: user.HasUpstreamToken(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secretKey))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Auth.Secret), nil
	})
	if err != nil {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	if claims, ok := token.Claims.(*domain.Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "invalid token")
}

// LinkUpstreamToken troca o token curto pelo de longa duração e o vincula ao usuário
func (s *Service) LinkUpstreamToken(ctx context.Context, userID int, shortLivedToken string) error {
	if shortLivedToken == "" {
		return NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "access_token é obrigatório")
	}

	longLived, err := s.remote.ExchangeToken(ctx, shortLivedToken)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"user_id": userID,
			"error":   err.Error(),
		}).Error("auth: failed to exchange upstream token")

		code := apiErrors.ErrExternalService
		if errors.Is(err, domain.ErrUnauthorized) {
			code = apiErrors.ErrInvalidToken
		}
		return NewUserAuthError(err, code, userID, "Falha ao trocar o token na plataforma de anúncios")
	}

	if err := s.userRepo.SetUpstreamToken(ctx, userID, &longLived); err != nil {
		return s.tokenWriteError(err, userID)
	}

	s.tokens.Invalidate(userID)

	logrus.WithField("user_id", userID).Info("auth: upstream token linked")

	return nil
}

func (s *Service) UnlinkUpstreamToken(ctx context.Context, userID int) error {
	if err := s.userRepo.SetUpstreamToken(ctx, userID, nil); err != nil {
		return s.tokenWriteError(err, userID)
	}

	s.tokens.Invalidate(userID)

	return nil
}

func (s *Service) tokenWriteError(err error, userID int) error {
	if errors.Is(err, domain.ErrNotFound) {
		return NewUserAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, userID, "Usuário não encontrado")
	}
	return NewUserAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, userID, err.Error())
}

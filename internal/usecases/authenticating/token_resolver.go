package authenticating

//go:generate mockgen -source=token_resolver.go -destination=mocks/token_resolver.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/vfg2006/ads-mirror-api/infrastructure/repository"
	"github.com/vfg2006/ads-mirror-api/internal/domain"
	"github.com/vfg2006/ads-mirror-api/pkg/cache"
)

// UpstreamTokenResolver resolve o token da plataforma de anúncios do usuário,
// com cache de vida curta na frente do banco
type UpstreamTokenResolver interface {
	Resolve(ctx context.Context, userID int) (string, error)
	Invalidate(userID int)
}

type tokenResolver struct {
	userRepo repository.UserRepository
	cache    *cache.TTLCache[string]
}

func NewUpstreamTokenResolver(userRepo repository.UserRepository, tokens *cache.TTLCache[string]) UpstreamTokenResolver {
	return &tokenResolver{
		userRepo: userRepo,
		cache:    tokens,
	}
}

func (r *tokenResolver) Resolve(ctx context.Context, userID int) (string, error) {
	key := strconv.Itoa(userID)

	if token, ok := r.cache.Get(key); ok {
		return token, nil
	}

	token, err := r.userRepo.GetUpstreamToken(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return "", domain.ErrUnauthenticated
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrInternal, err)
	}

	if token == "" {
		return "", domain.ErrMissingUpstreamToken
	}

	r.cache.Put(key, token)

	return token, nil
}

// Invalidate descarta o token em cache, usado quando a plataforma o rejeita
func (r *tokenResolver) Invalidate(userID int) {
	r.cache.Delete(strconv.Itoa(userID))
}

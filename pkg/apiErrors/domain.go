package apiErrors

import (
	"errors"

	"github.com/vfg2006/ads-mirror-api/internal/domain"
)

// CodeForDomainError traduz a taxonomia de erros de domínio para os códigos da API
func CodeForDomainError(err error) string {
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		return ErrInvalidToken
	case errors.Is(err, domain.ErrMissingUpstreamToken), errors.Is(err, domain.ErrUnauthorized):
		return ErrMissingUpstreamToken
	case errors.Is(err, domain.ErrUpstreamRateLimited):
		return ErrRateLimited
	case errors.Is(err, domain.ErrUpstream):
		return ErrExternalService
	case errors.Is(err, domain.ErrNotFound):
		return ErrResourceNotFound
	default:
		return ErrInternalServer
	}
}

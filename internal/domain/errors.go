package domain

import "errors"

// Taxonomia de erros compartilhada entre casos de uso e handlers
var (
	ErrUnauthenticated      = errors.New("unauthenticated")
	ErrMissingUpstreamToken = errors.New("missing upstream token")
	ErrUnauthorized         = errors.New("upstream token rejected")
	ErrUpstreamRateLimited  = errors.New("upstream rate limited")
	ErrUpstream             = errors.New("upstream error")
	ErrNotFound             = errors.New("not found")
	ErrInternal             = errors.New("internal error")
)

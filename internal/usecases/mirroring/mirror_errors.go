package mirroring

import (
	"errors"
	"fmt"

	"github.com/vfg2006/ads-mirror-api/internal/domain"
	"github.com/vfg2006/ads-mirror-api/pkg/apiErrors"
)

var (
	ErrInvalidRequest    = errors.New("invalid read request")
	ErrDatabaseOperation = errors.New("database operation error")
	ErrNoThumbnail       = errors.New("ad has no thumbnail")
)

// MirrorError é um erro com contexto adicional para leituras do espelho
type MirrorError struct {
	Err      error  // Erro base
	Code     string // Código de erro para API
	EntityID string // Entidade consultada (quando aplicável)
	Details  string // Detalhes adicionais
}

func (e *MirrorError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *MirrorError) Unwrap() error {
	return e.Err
}

func NewMirrorError(err error, code, entityID, details string) *MirrorError {
	return &MirrorError{
		Err:      err,
		Code:     code,
		EntityID: entityID,
		Details:  details,
	}
}

func newDatabaseError(entityID string, err error) *MirrorError {
	return NewMirrorError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, entityID, err.Error())
}

func newNotFoundError(entityID, details string) *MirrorError {
	return NewMirrorError(fmt.Errorf("%s: %w", entityID, domain.ErrNotFound), apiErrors.ErrResourceNotFound, entityID, details)
}

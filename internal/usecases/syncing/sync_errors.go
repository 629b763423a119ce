package syncing

import (
	"errors"
	"fmt"

	"github.com/vfg2006/ads-mirror-api/pkg/apiErrors"
)

var (
	ErrInvalidRequest    = errors.New("invalid sync request")
	ErrDatabaseOperation = errors.New("database operation error")
	ErrNoSyncFound       = errors.New("no sync found")
	ErrAllFetchesFailed  = errors.New("every upstream fetch failed")
)

// SyncError é um erro com contexto adicional para sincronizações
type SyncError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	UserID  int    // Usuário dono da sincronização
	Details string // Detalhes adicionais
}

func (e *SyncError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *SyncError) Unwrap() error {
	return e.Err
}

func NewSyncError(err error, code string, userID int, details string) *SyncError {
	return &SyncError{
		Err:     err,
		Code:    code,
		UserID:  userID,
		Details: details,
	}
}

// newDomainSyncError deriva o código da API a partir do erro de domínio embrulhado
func newDomainSyncError(err error, userID int, details string) *SyncError {
	return NewSyncError(err, apiErrors.CodeForDomainError(err), userID, details)
}

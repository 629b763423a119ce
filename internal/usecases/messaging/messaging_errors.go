package messaging

import (
	"errors"
	"fmt"
)

var (
	ErrVerificationFailed = errors.New("webhook verification failed")
	ErrInvalidSignature   = errors.New("invalid webhook signature")
	ErrInvalidPayload     = errors.New("invalid webhook payload")
	ErrDatabaseOperation  = errors.New("database operation error")
	ErrPageNotManaged     = errors.New("page not managed by user")
)

// MessagingError é um erro com contexto adicional para conversas e webhooks
type MessagingError struct {
	Err            error  // Erro base
	Code           string // Código de erro para API
	ConversationID string // Conversa envolvida (quando aplicável)
	Details        string // Detalhes adicionais
}

func (e *MessagingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *MessagingError) Unwrap() error {
	return e.Err
}

func NewMessagingError(err error, code, conversationID, details string) *MessagingError {
	return &MessagingError{
		Err:            err,
		Code:           code,
		ConversationID: conversationID,
		Details:        details,
	}
}

package messaging

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

import (
	"context"
	"errors"
	"slices"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-mirror-api/infrastructure/integrator/meta"
	"github.com/vfg2006/ads-mirror-api/infrastructure/repository"
	"github.com/vfg2006/ads-mirror-api/internal/config"
	"github.com/vfg2006/ads-mirror-api/internal/domain"
	"github.com/vfg2006/ads-mirror-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-mirror-api/pkg/apiErrors"
	"github.com/vfg2006/ads-mirror-api/pkg/cache"
	"github.com/vfg2006/ads-mirror-api/pkg/eventbus"
)

const (
	defaultMessagesLimit = 50
	maxMessagesLimit     = 200
)

type Messenger interface {
	Verify(mode, token, challenge string) (string, error)
	VerifySignature(body []byte, header string) error
	Ingest(ctx context.Context, payload *domain.WebhookPayload) (*domain.IngestResult, error)
	AuthorizePages(ctx context.Context, userID int, pageIDs []string) error
	MarkRead(ctx context.Context, userID int, conversationID string) error
	ListConversations(ctx context.Context, userID int, pageID string) ([]*domain.Conversation, error)
	ListMessages(ctx context.Context, userID int, conversationID string, limit int) ([]*domain.Message, error)
}

type Service struct {
	conversations repository.ConversationRepository
	remote        meta.RemoteClient
	tokens        authenticating.UpstreamTokenResolver
	pages         *cache.TTLCache[[]string]
	bus           eventbus.Publisher
	webhook       config.Webhook
	now           func() time.Time
}

func NewService(
	conversations repository.ConversationRepository,
	remote meta.RemoteClient,
	tokens authenticating.UpstreamTokenResolver,
	pages *cache.TTLCache[[]string],
	bus eventbus.Publisher,
	cfg *config.Config,
) *Service {
	return &Service{
		conversations: conversations,
		remote:        remote,
		tokens:        tokens,
		pages:         pages,
		bus:           bus,
		webhook:       cfg.Webhook,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// AuthorizePages falha se alguma das páginas não é administrada pelo usuário
func (s *Service) AuthorizePages(ctx context.Context, userID int, pageIDs []string) error {
	if len(pageIDs) == 0 {
		return nil
	}

	managed, err := s.managedPages(ctx, userID)
	if err != nil {
		return err
	}

	for _, pageID := range pageIDs {
		if !slices.Contains(managed, pageID) {
			logrus.WithFields(logrus.Fields{
				"user_id": userID,
				"page_id": pageID,
			}).Warn("messaging: page not managed by user")
			return NewMessagingError(ErrPageNotManaged, apiErrors.ErrInsufficientPrivilege, "", "página "+pageID+" não pertence ao usuário")
		}
	}

	return nil
}

// managedPages consulta a plataforma com o token do usuário e guarda o
// resultado no cache de páginas.
func (s *Service) managedPages(ctx context.Context, userID int) ([]string, error) {
	key := strconv.Itoa(userID)
	if ids, ok := s.pages.Get(key); ok {
		return ids, nil
	}

	token, err := s.tokens.Resolve(ctx, userID)
	if err != nil {
		return nil, NewMessagingError(err, apiErrors.CodeForDomainError(err), "", "não foi possível obter o token da plataforma")
	}

	ids, err := s.remote.ListManagedPageIDs(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			s.tokens.Invalidate(userID)
		}
		return nil, NewMessagingError(err, apiErrors.CodeForDomainError(err), "", "não foi possível listar as páginas do usuário")
	}

	s.pages.Put(key, ids)
	return ids, nil
}

// conversationFor carrega a conversa e confirma que a página dela é do
// usuário. Conversas de outras páginas aparecem como inexistentes.
func (s *Service) conversationFor(ctx context.Context, userID int, conversationID string) (*domain.Conversation, error) {
	conversation, err := s.conversations.GetConversation(ctx, conversationID)
	if err != nil {
		return nil, NewMessagingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, conversationID, err.Error())
	}
	if conversation == nil {
		return nil, NewMessagingError(domain.ErrNotFound, apiErrors.ErrResourceNotFound, conversationID, "conversa não encontrada")
	}

	if err := s.AuthorizePages(ctx, userID, []string{conversation.PageID}); err != nil {
		if errors.Is(err, ErrPageNotManaged) {
			return nil, NewMessagingError(domain.ErrNotFound, apiErrors.ErrResourceNotFound, conversationID, "conversa não encontrada")
		}
		return nil, err
	}

	return conversation, nil
}

func (s *Service) MarkRead(ctx context.Context, userID int, conversationID string) error {
	if _, err := s.conversationFor(ctx, userID, conversationID); err != nil {
		return err
	}

	err := s.conversations.MarkRead(ctx, conversationID, s.now())
	if errors.Is(err, domain.ErrNotFound) {
		return NewMessagingError(err, apiErrors.ErrResourceNotFound, conversationID, "conversa não encontrada")
	}
	if err != nil {
		return NewMessagingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, conversationID, err.Error())
	}

	return nil
}

// ListConversations lista as conversas da página. O nome da página é
// resolvido na plataforma quando possível; sem ele a lista sai do mesmo jeito.
func (s *Service) ListConversations(ctx context.Context, userID int, pageID string) ([]*domain.Conversation, error) {
	if err := s.AuthorizePages(ctx, userID, []string{pageID}); err != nil {
		return nil, err
	}

	conversations, err := s.conversations.ListConversationsByPage(ctx, pageID)
	if err != nil {
		return nil, NewMessagingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "", err.Error())
	}

	if len(conversations) == 0 {
		return conversations, nil
	}

	name := s.pageName(ctx, userID, pageID)
	for _, c := range conversations {
		c.PageName = name
	}

	return conversations, nil
}

func (s *Service) pageName(ctx context.Context, userID int, pageID string) string {
	logger := logrus.WithFields(logrus.Fields{
		"user_id": userID,
		"page_id": pageID,
	})

	token, err := s.tokens.Resolve(ctx, userID)
	if err != nil {
		logger.WithError(err).Debug("messaging: no upstream token, skipping page name")
		return ""
	}

	names, err := s.remote.GetPageNames(ctx, token, []string{pageID})
	if err != nil {
		logger.WithError(err).Warn("messaging: failed to resolve page name")
		return ""
	}

	return names[pageID]
}

func (s *Service) ListMessages(ctx context.Context, userID int, conversationID string, limit int) ([]*domain.Message, error) {
	switch {
	case limit <= 0:
		limit = defaultMessagesLimit
	case limit > maxMessagesLimit:
		limit = maxMessagesLimit
	}

	if _, err := s.conversationFor(ctx, userID, conversationID); err != nil {
		return nil, err
	}

	messages, err := s.conversations.ListMessages(ctx, conversationID, limit)
	if err != nil {
		return nil, NewMessagingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, conversationID, err.Error())
	}

	return messages, nil
}

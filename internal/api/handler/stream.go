package handler

import (
	"context"
	"net/http"
	"slices"
	"strconv"

	"github.com/pkg/errors"
	"github.com/vfg2006/ads-mirror-api/internal/domain"
	"github.com/vfg2006/ads-mirror-api/pkg/apiErrors"
	"github.com/vfg2006/ads-mirror-api/pkg/eventbus"
	"github.com/vfg2006/ads-mirror-api/pkg/log"
	"github.com/vfg2006/ads-mirror-api/pkg/stream"
)

const (
	defaultEventsLimit = 100
	maxEventsLimit     = 500
)

// EventLog é o log com cursor usado pelo fallback de polling
type EventLog interface {
	Since(keys []string, cursor uint64, limit int) ([]eventbus.Record, uint64)
}

// PageAuthorizer confirma que o usuário administra as páginas pedidas
type PageAuthorizer interface {
	AuthorizePages(ctx context.Context, userID int, pageIDs []string) error
}

func requestedPages(r *http.Request) []string {
	pages := make([]string, 0)
	for _, pageID := range r.URL.Query()["page"] {
		if pageID != "" && !slices.Contains(pages, pageID) {
			pages = append(pages, pageID)
		}
	}
	return pages
}

// streamKeys monta user:<id> mais um page:<id> para cada página
func streamKeys(userID int, pages []string) []string {
	keys := []string{domain.UserKey(userID)}
	for _, pageID := range pages {
		keys = append(keys, domain.PageKey(pageID))
	}
	return keys
}

// authorizedKeys só devolve chaves de páginas administradas pelo usuário
func authorizedKeys(w http.ResponseWriter, r *http.Request, pages PageAuthorizer, userID int) ([]string, bool) {
	requested := requestedPages(r)
	if err := pages.AuthorizePages(r.Context(), userID, requested); err != nil {
		handleServiceError(w, r, err, "Erro ao verificar as páginas do usuário")
		return nil, false
	}
	return streamKeys(userID, requested), true
}

// Stream mantém a conexão SSE aberta até o cliente desconectar
func Stream(notifier eventbus.ChangeNotifier, pages PageAuthorizer, opts stream.Options) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFromRequest(w, r)
		if !ok {
			return
		}

		keys, ok := authorizedKeys(w, r, pages, userClaims.UserID)
		if !ok {
			return
		}
		logger := log.ForContext(r.Context()).WithFields(log.Fields{
			"user_id": userClaims.UserID,
			"keys":    keys,
		})
		logger.Info("stream: connection opened")

		if err := stream.Serve(r.Context(), w, notifier, keys, opts); err != nil {
			logger.WithError(err).Error("stream: connection failed")
			if errors.Is(err, stream.ErrStreamingUnsupported) {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Streaming não suportado", nil)
			}
			return
		}

		logger.Info("stream: connection closed")
	}
}

// ListEvents devolve os eventos após ?cursor=N e o próximo cursor
func ListEvents(events EventLog, pages PageAuthorizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFromRequest(w, r)
		if !ok {
			return
		}

		query := r.URL.Query()

		var cursor uint64
		if raw := query.Get("cursor"); raw != "" {
			parsed, err := strconv.ParseUint(raw, 10, 64)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "cursor inválido", map[string]string{"cursor": raw})
				return
			}
			cursor = parsed
		}

		limit := defaultEventsLimit
		if raw := query.Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit inválido", map[string]string{"limit": raw})
				return
			}
			limit = min(parsed, maxEventsLimit)
		}

		keys, ok := authorizedKeys(w, r, pages, userClaims.UserID)
		if !ok {
			return
		}

		records, next := events.Since(keys, cursor, limit)

		writeJSON(w, http.StatusOK, map[string]any{
			"events": records,
			"cursor": next,
		})
	}
}

package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/ads-mirror-api/internal/usecases/messaging"
	"github.com/vfg2006/ads-mirror-api/pkg/apiErrors"
)

func ListConversations(service messaging.Messenger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFromRequest(w, r)
		if !ok {
			return
		}

		pageID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		conversations, err := service.ListConversations(r.Context(), userClaims.UserID, pageID)
		if err != nil {
			handleServiceError(w, r, err, "Erro ao listar conversas")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"data": conversations,
		})
	}
}

// ListMessages aceita ?limit=N; o caso de uso aplica o padrão e o teto
func ListMessages(service messaging.Messenger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFromRequest(w, r)
		if !ok {
			return
		}

		conversationID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit inválido", map[string]string{"limit": raw})
				return
			}
			limit = parsed
		}

		messages, err := service.ListMessages(r.Context(), userClaims.UserID, conversationID, limit)
		if err != nil {
			handleServiceError(w, r, err, "Erro ao listar mensagens")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"data": messages,
		})
	}
}

func MarkConversationRead(service messaging.Messenger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFromRequest(w, r)
		if !ok {
			return
		}

		conversationID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.MarkRead(r.Context(), userClaims.UserID, conversationID); err != nil {
			handleServiceError(w, r, err, "Erro ao marcar conversa como lida")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

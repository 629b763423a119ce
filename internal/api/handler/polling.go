package handler

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-mirror-api/internal/scheduler"
	"github.com/vfg2006/ads-mirror-api/pkg/apiErrors"
)

// TriggerPoll sincroniza o usuário fora do ciclo e devolve as mudanças detectadas
func TriggerPoll(engine scheduler.Poller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claimsFromRequest(w, r)
		if !ok {
			return
		}

		changes, err := engine.TriggerPollForUser(r.Context(), userClaims.UserID)
		if err != nil {
			handleServiceError(w, r, err, "Erro ao executar polling")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"changes": changes,
			"count":   len(changes),
		})
	}
}

// StartPolling é idempotente. O motor sobrevive ao fim da requisição.
func StartPolling(engine scheduler.Poller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := engine.Start(context.WithoutCancel(r.Context()))
		if err != nil {
			logrus.WithError(err).Error("polling: failed to start engine")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao iniciar o polling", nil)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"state": state,
		})
	}
}

func StopPolling(engine scheduler.Poller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"state": engine.Stop(),
		})
	}
}

func GetPollingStatus(engine scheduler.Poller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, engine.GetStatus())
	}
}

package handler

import (
	"io"
	"net/http"

	"github.com/vfg2006/ads-mirror-api/internal/domain"
	"github.com/vfg2006/ads-mirror-api/internal/usecases/messaging"
	"github.com/vfg2006/ads-mirror-api/pkg/apiErrors"
	"github.com/vfg2006/ads-mirror-api/pkg/log"
)

const (
	signatureHeader     = "X-Hub-Signature-256"
	maxWebhookBodyBytes = 1 << 20
)

// VerifyWebhook responde o handshake de inscrição devolvendo hub.challenge
func VerifyWebhook(service messaging.Messenger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		challenge, err := service.Verify(query.Get("hub.mode"), query.Get("hub.verify_token"), query.Get("hub.challenge"))
		if err != nil {
			handleServiceError(w, r, err, "Falha no handshake do webhook")
			return
		}

		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(challenge))
	}
}

// ReceiveWebhook confere a assinatura sobre o corpo bruto antes de decodificar
func ReceiveWebhook(service messaging.Messenger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		body, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBodyBytes))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao ler o corpo da requisição", nil)
			return
		}

		if err := service.VerifySignature(body, r.Header.Get(signatureHeader)); err != nil {
			handleServiceError(w, r, err, "Assinatura do webhook inválida")
			return
		}

		var payload domain.WebhookPayload
		if err := json.Unmarshal(body, &payload); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Payload do webhook inválido", nil)
			return
		}

		result, err := service.Ingest(r.Context(), &payload)
		if err != nil {
			handleServiceError(w, r, err, "Erro ao processar o webhook")
			return
		}

		logger.WithFields(log.Fields{
			"received":   result.Received,
			"created":    result.Created,
			"duplicates": result.Duplicates,
			"failed":     result.Failed,
		}).Info("webhook: batch processed")

		writeJSON(w, http.StatusOK, result)
	}
}

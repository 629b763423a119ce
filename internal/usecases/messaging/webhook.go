package messaging

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-mirror-api/internal/domain"
	"github.com/vfg2006/ads-mirror-api/pkg/apiErrors"
	"github.com/vfg2006/ads-mirror-api/pkg/metrics"
	"golang.org/x/text/unicode/norm"
)

const (
	subscribeMode   = "subscribe"
	signaturePrefix = "sha256="
	snippetLength   = 100
)

// Verify responde ao handshake de inscrição do webhook
func (s *Service) Verify(mode, token, challenge string) (string, error) {
	if mode != subscribeMode || s.webhook.VerifyToken == "" ||
		subtle.ConstantTimeCompare([]byte(token), []byte(s.webhook.VerifyToken)) != 1 {
		return "", NewMessagingError(ErrVerificationFailed, apiErrors.ErrVerificationFailed, "", "token de verificação inválido")
	}
	return challenge, nil
}

// VerifySignature confere o X-Hub-Signature-256 do corpo bruto. Sem segredo
// configurado a verificação é ignorada.
func (s *Service) VerifySignature(body []byte, header string) error {
	if s.webhook.AppSecret == "" {
		return nil
	}

	if !strings.HasPrefix(header, signaturePrefix) {
		return NewMessagingError(ErrInvalidSignature, apiErrors.ErrInvalidSignature, "", "assinatura ausente")
	}

	received, err := hex.DecodeString(strings.TrimPrefix(header, signaturePrefix))
	if err != nil {
		return NewMessagingError(ErrInvalidSignature, apiErrors.ErrInvalidSignature, "", "assinatura malformada")
	}

	mac := hmac.New(sha256.New, []byte(s.webhook.AppSecret))
	mac.Write(body)

	if !hmac.Equal(received, mac.Sum(nil)) {
		return NewMessagingError(ErrInvalidSignature, apiErrors.ErrInvalidSignature, "", "assinatura não confere")
	}

	return nil
}

// Ingest grava as mensagens do lote. Cada item é independente: duplicatas
// não geram evento e uma falha não impede os demais.
func (s *Service) Ingest(ctx context.Context, payload *domain.WebhookPayload) (*domain.IngestResult, error) {
	if payload == nil {
		return nil, NewMessagingError(ErrInvalidPayload, apiErrors.ErrInvalidRequest, "", "payload vazio")
	}

	result := &domain.IngestResult{}

	for _, entry := range payload.Entry {
		for _, item := range entry.Messaging {
			result.Received++

			if item.Message == nil || item.Message.MID == "" {
				result.Skipped++
				metrics.WebhookMessages.WithLabelValues("skipped").Inc()
				continue
			}

			created, err := s.ingestItem(ctx, entry.ID, item)
			switch {
			case err != nil:
				result.Failed++
				metrics.WebhookMessages.WithLabelValues("failed").Inc()
				logrus.WithFields(logrus.Fields{
					"page_id":    entry.ID,
					"message_id": item.Message.MID,
					"error":      err.Error(),
				}).Error("messaging: failed to record message")
			case created:
				result.Created++
				metrics.WebhookMessages.WithLabelValues("created").Inc()
			default:
				result.Duplicates++
				metrics.WebhookMessages.WithLabelValues("duplicate").Inc()
			}
		}
	}

	logrus.WithFields(logrus.Fields{
		"received":   result.Received,
		"created":    result.Created,
		"duplicates": result.Duplicates,
		"skipped":    result.Skipped,
		"failed":     result.Failed,
	}).Info("messaging: webhook batch ingested")

	return result, nil
}

func (s *Service) ingestItem(ctx context.Context, pageID string, item domain.MessagingEvent) (bool, error) {
	fromPage := item.Sender.ID == pageID || item.Message.IsEcho

	participantID := item.Sender.ID
	if fromPage {
		participantID = item.Recipient.ID
	}

	conversationID := domain.ConversationIDFor(participantID)
	content := messageContent(item.Message)

	createdAt := s.now()
	if item.Timestamp > 0 {
		createdAt = time.UnixMilli(item.Timestamp).UTC()
	}

	message := &domain.Message{
		ID:             item.Message.MID,
		ConversationID: conversationID,
		SenderID:       item.Sender.ID,
		Content:        content,
		FromPage:       fromPage,
		CreatedAt:      createdAt,
	}

	conversation := &domain.Conversation{
		ID:            conversationID,
		PageID:        pageID,
		ParticipantID: participantID,
		Snippet:       snippet(content),
		LastMessageAt: createdAt,
	}

	created, err := s.conversations.RecordMessage(ctx, conversation, message)
	if err != nil {
		return false, err
	}

	if created {
		s.bus.Publish(domain.PageKey(pageID), domain.Event{
			Type: domain.EventMessageCreated,
			Data: message,
		})
	}

	return created, nil
}

// messageContent normaliza o texto em NFC; mensagens só com anexos viram
// um marcador com o tipo do primeiro anexo.
func messageContent(msg *domain.InboundMessage) string {
	text := strings.TrimSpace(norm.NFC.String(msg.Text))
	if text != "" {
		return text
	}
	if len(msg.Attachments) > 0 {
		return "[" + msg.Attachments[0].Type + "]"
	}
	return ""
}

func snippet(content string) string {
	if utf8.RuneCountInString(content) <= snippetLength {
		return content
	}
	runes := []rune(content)
	return string(runes[:snippetLength])
}

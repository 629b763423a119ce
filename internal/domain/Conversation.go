package domain

import "time"

// ConversationIDPrefix é usado para derivar o id da conversa a partir do
// participante. Existe apenas uma conversa por par (página, participante).
const ConversationIDPrefix = "t_"

type Conversation struct {
	ID              string     `json:"id"`
	PageID          string     `json:"page_id"`
	PageName        string     `json:"page_name,omitempty"`
	ParticipantID   string     `json:"participant_id"`
	ParticipantName string     `json:"participant_name,omitempty"`
	Snippet         string     `json:"snippet"`
	UnreadCount     int        `json:"unread_count"`
	LastMessageAt   time.Time  `json:"last_message_at"`
	LastReadAt      *time.Time `json:"last_read_at"`
}

// Message é imutável; o id externo é a chave de idempotência
type Message struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversation_id"`
	SenderID       string    `json:"sender_id"`
	SenderName     string    `json:"sender_name,omitempty"`
	Content        string    `json:"content"`
	FromPage       bool      `json:"from_page"`
	CreatedAt      time.Time `json:"created_at"`
}

func ConversationIDFor(participantID string) string {
	return ConversationIDPrefix + participantID
}

// WebhookPayload é o lote entregue pelo webhook do Messenger
type WebhookPayload struct {
	Object string         `json:"object"`
	Entry  []WebhookEntry `json:"entry"`
}

type WebhookEntry struct {
	ID        string           `json:"id"`
	Time      int64            `json:"time"`
	Messaging []MessagingEvent `json:"messaging"`
}

type MessagingEvent struct {
	Sender    Participant     `json:"sender"`
	Recipient Participant     `json:"recipient"`
	Timestamp int64           `json:"timestamp"`
	Message   *InboundMessage `json:"message,omitempty"`
}

type Participant struct {
	ID string `json:"id"`
}

type InboundMessage struct {
	MID         string              `json:"mid"`
	Text        string              `json:"text"`
	IsEcho      bool                `json:"is_echo"`
	Attachments []MessageAttachment `json:"attachments,omitempty"`
}

type MessageAttachment struct {
	Type string `json:"type"`
}

type IngestResult struct {
	Received   int `json:"received"`
	Created    int `json:"created"`
	Duplicates int `json:"duplicates"`
	Skipped    int `json:"skipped"`
	Failed     int `json:"failed"`
}

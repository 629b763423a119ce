package repository

//go:generate mockgen -source=conversation.go -destination=mocks/conversation.go -package=mocks

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ads-mirror-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-mirror-api/internal/domain"
)

const (
	conversationsTable = "conversations"
	messagesTable      = "messages"
)

var conversationColumns = []string{
	"id", "page_id", "participant_id", "participant_name", "snippet", "unread_count", "last_message_at", "last_read_at",
}

type ConversationRepository interface {
	// RecordMessage grava a mensagem de forma idempotente. created é falso
	// quando o id já existia; nesse caso a conversa não é alterada.
	RecordMessage(ctx context.Context, conversation *domain.Conversation, message *domain.Message) (created bool, err error)
	MarkRead(ctx context.Context, conversationID string, at time.Time) error
	GetConversation(ctx context.Context, conversationID string) (*domain.Conversation, error)
	ListConversationsByPage(ctx context.Context, pageID string) ([]*domain.Conversation, error)
	ListMessages(ctx context.Context, conversationID string, limit int) ([]*domain.Message, error)
}

type conversationRepository struct {
	conn postgres.Conn
}

func NewConversationRepository(conn postgres.Conn) ConversationRepository {
	return &conversationRepository{
		conn: conn,
	}
}

func (r *conversationRepository) RecordMessage(ctx context.Context, conversation *domain.Conversation, message *domain.Message) (bool, error) {
	created := false

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		ensureSQL, ensureArgs, err := buildEnsureConversation(conversation, message).ToSql()
		if err != nil {
			return fmt.Errorf("failed to build query: %w", err)
		}

		if _, err := tx.ExecContext(ctx, ensureSQL, ensureArgs...); err != nil {
			return wrapExecError(err)
		}

		insertSQL, insertArgs, err := buildInsertMessage(message).ToSql()
		if err != nil {
			return fmt.Errorf("failed to build query: %w", err)
		}

		result, err := tx.ExecContext(ctx, insertSQL, insertArgs...)
		if err != nil {
			return wrapExecError(err)
		}

		inserted, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("error getting rows affected: %w", err)
		}

		// duplicata: a conversa fica como está
		if inserted == 0 {
			return nil
		}
		created = true

		updateSQL, updateArgs, err := buildTouchConversation(conversation, message).ToSql()
		if err != nil {
			return fmt.Errorf("failed to build query: %w", err)
		}

		if _, err := tx.ExecContext(ctx, updateSQL, updateArgs...); err != nil {
			return wrapExecError(err)
		}

		return nil
	})
	if err != nil {
		return false, err
	}

	return created, nil
}

func buildEnsureConversation(conversation *domain.Conversation, message *domain.Message) squirrel.InsertBuilder {
	return squirrel.
		Insert(conversationsTable).
		Columns("id", "page_id", "participant_id", "participant_name", "snippet", "unread_count", "last_message_at").
		Values(conversation.ID, conversation.PageID, conversation.ParticipantID, conversation.ParticipantName, "", 0, message.CreatedAt).
		Suffix("ON CONFLICT (id) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar)
}

func buildInsertMessage(message *domain.Message) squirrel.InsertBuilder {
	return squirrel.
		Insert(messagesTable).
		Columns("id", "conversation_id", "sender_id", "sender_name", "content", "from_page", "created_at").
		Values(message.ID, message.ConversationID, message.SenderID, message.SenderName, message.Content, message.FromPage, message.CreatedAt).
		Suffix("ON CONFLICT (id) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar)
}

// buildTouchConversation só roda quando a mensagem foi inserida. Uma mensagem
// mais antiga que a última não troca o snippet.
func buildTouchConversation(conversation *domain.Conversation, message *domain.Message) squirrel.UpdateBuilder {
	update := squirrel.
		Update(conversationsTable).
		Set("snippet", squirrel.Expr("CASE WHEN last_message_at IS NULL OR last_message_at <= ? THEN ? ELSE snippet END", message.CreatedAt, conversation.Snippet)).
		Set("last_message_at", squirrel.Expr("GREATEST(last_message_at, ?)", message.CreatedAt)).
		Where(squirrel.Eq{"id": conversation.ID}).
		PlaceholderFormat(squirrel.Dollar)

	if conversation.ParticipantName != "" {
		update = update.Set("participant_name", conversation.ParticipantName)
	}
	if !message.FromPage {
		update = update.Set("unread_count", squirrel.Expr("unread_count + 1"))
	}

	return update
}

func (r *conversationRepository) MarkRead(ctx context.Context, conversationID string, at time.Time) error {
	sqlQuery, args, err := squirrel.
		Update(conversationsTable).
		Set("unread_count", 0).
		Set("last_read_at", at).
		Where(squirrel.Eq{"id": conversationID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		return wrapExecError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *conversationRepository) GetConversation(ctx context.Context, conversationID string) (*domain.Conversation, error) {
	conversations, err := r.listConversations(ctx, squirrel.Eq{"id": conversationID})
	if err != nil {
		return nil, err
	}

	if len(conversations) == 0 {
		return nil, nil
	}

	return conversations[0], nil
}

func (r *conversationRepository) ListConversationsByPage(ctx context.Context, pageID string) ([]*domain.Conversation, error) {
	return r.listConversations(ctx, squirrel.Eq{"page_id": pageID})
}

func (r *conversationRepository) listConversations(ctx context.Context, where squirrel.Eq) ([]*domain.Conversation, error) {
	sqlQuery, args, err := squirrel.
		Select(conversationColumns...).
		From(conversationsTable).
		Where(where).
		OrderBy("last_message_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	conversations := make([]*domain.Conversation, 0)
	for rows.Next() {
		c := &domain.Conversation{}
		if err := rows.Scan(
			&c.ID,
			&c.PageID,
			&c.ParticipantID,
			&c.ParticipantName,
			&c.Snippet,
			&c.UnreadCount,
			&c.LastMessageAt,
			&c.LastReadAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao deserializar a conversa: %w", err)
		}
		conversations = append(conversations, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return conversations, nil
}

// ListMessages retorna as últimas mensagens em ordem cronológica
func (r *conversationRepository) ListMessages(ctx context.Context, conversationID string, limit int) ([]*domain.Message, error) {
	inner := squirrel.
		Select("id", "conversation_id", "sender_id", "sender_name", "content", "from_page", "created_at").
		From(messagesTable).
		Where(squirrel.Eq{"conversation_id": conversationID}).
		OrderBy("created_at DESC")

	if limit > 0 {
		inner = inner.Limit(uint64(limit))
	}

	sqlQuery, args, err := squirrel.
		Select("*").
		FromSelect(inner, "m").
		OrderBy("m.created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	messages := make([]*domain.Message, 0)
	for rows.Next() {
		m := &domain.Message{}
		if err := rows.Scan(
			&m.ID,
			&m.ConversationID,
			&m.SenderID,
			&m.SenderName,
			&m.Content,
			&m.FromPage,
			&m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao deserializar a mensagem: %w", err)
		}
		messages = append(messages, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return messages, nil
}

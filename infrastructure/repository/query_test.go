package repository

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-mirror-api/internal/domain"
)

func TestBuildDeleteNotIn(t *testing.T) {
	tests := []struct {
		name      string
		keepIDs   []string
		wantSQL   string
		wantCount int
	}{
		{
			name:      "mantém os ids buscados",
			keepIDs:   []string{"A", "C", "D"},
			wantSQL:   "DELETE FROM campaigns WHERE account_id = $1 AND id NOT IN ($2,$3,$4)",
			wantCount: 4,
		},
		{
			name:      "busca completa e vazia apaga tudo da conta",
			keepIDs:   nil,
			wantSQL:   "DELETE FROM campaigns WHERE account_id = $1",
			wantCount: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args, err := buildDeleteNotIn(campaignsTable, "act_1", tt.keepIDs).ToSql()

			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, sql)
			assert.Len(t, args, tt.wantCount)
			assert.Equal(t, "act_1", args[0])
		})
	}
}

func TestBuildAccountUpsert(t *testing.T) {
	accounts := []*domain.AdAccount{
		{ID: "act_1", Name: "Loja A", Status: domain.AdAccountStatusActive},
		{ID: "act_2", Name: "Loja B", Status: domain.AdAccountStatusDisabled},
	}

	sql, args, err := buildAccountUpsert(7, accounts).ToSql()

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(sql, "INSERT INTO ad_accounts (id,user_id,name"))
	assert.Contains(t, sql, "ON CONFLICT (id) DO UPDATE SET")
	assert.Len(t, args, 2*len(accountColumns))
	assert.Equal(t, 7, args[1])
	assert.Equal(t, "act_2", args[len(accountColumns)])
}

func TestChunks(t *testing.T) {
	items := make([]int, 1201)

	parts := chunks(items, upsertChunkSize)

	require.Len(t, parts, 3)
	assert.Len(t, parts[0], 500)
	assert.Len(t, parts[2], 201)
	assert.Nil(t, chunks([]int{}, 10))
}

func TestBuildRecordMessage(t *testing.T) {
	createdAt := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	conversation := &domain.Conversation{ID: "t_u_1", PageID: "p_1", ParticipantID: "u_1", Snippet: "oi"}

	t.Run("mensagem duplicada não gera nova linha", func(t *testing.T) {
		message := &domain.Message{ID: "m_1", ConversationID: "t_u_1", CreatedAt: createdAt}

		ensureSQL, _, err := buildEnsureConversation(conversation, message).ToSql()
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(ensureSQL, "ON CONFLICT (id) DO NOTHING"))
		assert.NotContains(t, ensureSQL, "unread_count + 1")

		insertSQL, args, err := buildInsertMessage(message).ToSql()
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(insertSQL, "INSERT INTO messages"))
		assert.True(t, strings.HasSuffix(insertSQL, "ON CONFLICT (id) DO NOTHING"))
		assert.NotContains(t, insertSQL, "unread_count")
		assert.Equal(t, "m_1", args[0])
	})

	tests := []struct {
		name       string
		fromPage   bool
		wantUnread bool
	}{
		{name: "mensagem do participante incrementa não lidas", fromPage: false, wantUnread: true},
		{name: "mensagem da página não incrementa", fromPage: true, wantUnread: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			message := &domain.Message{ID: "m_1", ConversationID: "t_u_1", FromPage: tt.fromPage, CreatedAt: createdAt}

			sql, args, err := buildTouchConversation(conversation, message).ToSql()

			require.NoError(t, err)
			assert.Equal(t, tt.wantUnread, strings.Contains(sql, "unread_count = unread_count + 1"))
			assert.Contains(t, sql, "snippet = CASE WHEN last_message_at IS NULL OR last_message_at <= $1 THEN $2 ELSE snippet END")
			assert.Contains(t, sql, "last_message_at = GREATEST(last_message_at, $3)")
			assert.Equal(t, []any{createdAt, "oi", createdAt, "t_u_1"}, args)
		})
	}
}

// Package migration cria o schema do espelho na inicialização.
package migration

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-mirror-api/infrastructure/database/postgres"
)

type step struct {
	name  string
	query string
}

var steps = []step{
	{
		name: "users",
		query: `CREATE TABLE IF NOT EXISTS users (
			id             SERIAL PRIMARY KEY,
			name           TEXT NOT NULL,
			lastname       TEXT NOT NULL DEFAULT '',
			email          TEXT NOT NULL UNIQUE,
			password_hash  TEXT NOT NULL,
			active         BOOLEAN NOT NULL DEFAULT TRUE,
			role_id        INTEGER NOT NULL DEFAULT 2,
			upstream_token TEXT,
			created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
	{
		name: "ad_accounts",
		query: `CREATE TABLE IF NOT EXISTS ad_accounts (
			id             TEXT PRIMARY KEY,
			user_id        INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			name           TEXT NOT NULL,
			currency       TEXT NOT NULL DEFAULT '',
			status         TEXT NOT NULL,
			timezone       TEXT NOT NULL DEFAULT '',
			total_ads      INTEGER NOT NULL DEFAULT 0,
			active_ads     INTEGER NOT NULL DEFAULT 0,
			paused_ads     INTEGER NOT NULL DEFAULT 0,
			spend          NUMERIC(14,2) NOT NULL DEFAULT 0,
			impressions    BIGINT NOT NULL DEFAULT 0,
			reach          BIGINT NOT NULL DEFAULT 0,
			clicks         BIGINT NOT NULL DEFAULT 0,
			last_synced_at TIMESTAMPTZ
		)`,
	},
	{
		name: "campaigns",
		query: `CREATE TABLE IF NOT EXISTS campaigns (
			id               TEXT PRIMARY KEY,
			account_id       TEXT NOT NULL REFERENCES ad_accounts(id) ON DELETE CASCADE,
			name             TEXT NOT NULL,
			status           TEXT NOT NULL,
			effective_status TEXT NOT NULL,
			objective        TEXT NOT NULL DEFAULT '',
			daily_budget     NUMERIC(14,2) NOT NULL DEFAULT 0,
			lifetime_budget  NUMERIC(14,2) NOT NULL DEFAULT 0,
			remaining_budget NUMERIC(14,2) NOT NULL DEFAULT 0,
			start_time       TIMESTAMPTZ,
			stop_time        TIMESTAMPTZ,
			impressions      BIGINT NOT NULL DEFAULT 0,
			reach            BIGINT NOT NULL DEFAULT 0,
			spend            NUMERIC(14,2) NOT NULL DEFAULT 0,
			clicks           BIGINT NOT NULL DEFAULT 0,
			results          BIGINT NOT NULL DEFAULT 0,
			cost_per_result  NUMERIC(14,2) NOT NULL DEFAULT 0,
			updated_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
	{
		name: "adsets",
		query: `CREATE TABLE IF NOT EXISTS adsets (
			id                TEXT PRIMARY KEY,
			campaign_id       TEXT NOT NULL REFERENCES campaigns(id) ON DELETE CASCADE,
			account_id        TEXT NOT NULL REFERENCES ad_accounts(id) ON DELETE CASCADE,
			name              TEXT NOT NULL,
			status            TEXT NOT NULL,
			effective_status  TEXT NOT NULL,
			daily_budget      NUMERIC(14,2) NOT NULL DEFAULT 0,
			lifetime_budget   NUMERIC(14,2) NOT NULL DEFAULT 0,
			bid_amount        NUMERIC(14,2) NOT NULL DEFAULT 0,
			optimization_goal TEXT NOT NULL DEFAULT '',
			billing_event     TEXT NOT NULL DEFAULT '',
			impressions       BIGINT NOT NULL DEFAULT 0,
			reach             BIGINT NOT NULL DEFAULT 0,
			spend             NUMERIC(14,2) NOT NULL DEFAULT 0,
			clicks            BIGINT NOT NULL DEFAULT 0,
			results           BIGINT NOT NULL DEFAULT 0,
			cost_per_result   NUMERIC(14,2) NOT NULL DEFAULT 0,
			updated_at        TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
	{
		name: "ads",
		query: `CREATE TABLE IF NOT EXISTS ads (
			id                          TEXT PRIMARY KEY,
			adset_id                    TEXT NOT NULL REFERENCES adsets(id) ON DELETE CASCADE,
			campaign_id                 TEXT NOT NULL REFERENCES campaigns(id) ON DELETE CASCADE,
			account_id                  TEXT NOT NULL REFERENCES ad_accounts(id) ON DELETE CASCADE,
			name                        TEXT NOT NULL,
			status                      TEXT NOT NULL,
			effective_status            TEXT NOT NULL,
			thumbnail_url               TEXT NOT NULL DEFAULT '',
			video_p25_views             BIGINT NOT NULL DEFAULT 0,
			video_p50_views             BIGINT NOT NULL DEFAULT 0,
			video_p75_views             BIGINT NOT NULL DEFAULT 0,
			video_p100_views            BIGINT NOT NULL DEFAULT 0,
			post_engagements            BIGINT NOT NULL DEFAULT 0,
			messaging_contacts          BIGINT NOT NULL DEFAULT 0,
			cost_per_messaging_contact  NUMERIC(14,2) NOT NULL DEFAULT 0,
			impressions                 BIGINT NOT NULL DEFAULT 0,
			reach                       BIGINT NOT NULL DEFAULT 0,
			spend                       NUMERIC(14,2) NOT NULL DEFAULT 0,
			clicks                      BIGINT NOT NULL DEFAULT 0,
			results                     BIGINT NOT NULL DEFAULT 0,
			cost_per_result             NUMERIC(14,2) NOT NULL DEFAULT 0,
			updated_at                  TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
	{
		name: "sync_logs",
		query: `CREATE TABLE IF NOT EXISTS sync_logs (
			id             TEXT PRIMARY KEY,
			user_id        INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			type           TEXT NOT NULL,
			status         TEXT NOT NULL,
			accounts_count INTEGER NOT NULL DEFAULT 0,
			ads_count      INTEGER NOT NULL DEFAULT 0,
			error          TEXT,
			started_at     TIMESTAMPTZ NOT NULL,
			completed_at   TIMESTAMPTZ
		)`,
	},
	{
		name:  "sync_logs_user_idx",
		query: `CREATE INDEX IF NOT EXISTS sync_logs_user_started_idx ON sync_logs (user_id, started_at DESC)`,
	},
	{
		name: "conversations",
		query: `CREATE TABLE IF NOT EXISTS conversations (
			id               TEXT PRIMARY KEY,
			page_id          TEXT NOT NULL,
			participant_id   TEXT NOT NULL,
			participant_name TEXT NOT NULL DEFAULT '',
			snippet          TEXT NOT NULL DEFAULT '',
			unread_count     INTEGER NOT NULL DEFAULT 0 CHECK (unread_count >= 0),
			last_message_at  TIMESTAMPTZ NOT NULL,
			last_read_at     TIMESTAMPTZ
		)`,
	},
	{
		name: "messages",
		query: `CREATE TABLE IF NOT EXISTS messages (
			id              TEXT PRIMARY KEY,
			conversation_id TEXT NOT NULL REFERENCES conversations(id) ON DELETE CASCADE,
			sender_id       TEXT NOT NULL,
			sender_name     TEXT NOT NULL DEFAULT '',
			content         TEXT NOT NULL DEFAULT '',
			from_page       BOOLEAN NOT NULL DEFAULT FALSE,
			created_at      TIMESTAMPTZ NOT NULL
		)`,
	},
	{
		name:  "messages_conversation_idx",
		query: `CREATE INDEX IF NOT EXISTS messages_conversation_created_idx ON messages (conversation_id, created_at)`,
	},
}

// Run aplica os passos em ordem. Todos são idempotentes.
func Run(ctx context.Context, db postgres.Executor) error {
	start := time.Now()

	for _, s := range steps {
		if _, err := db.ExecContext(ctx, s.query); err != nil {
			return fmt.Errorf("migration %s: %w", s.name, err)
		}
		logrus.WithField("step", s.name).Debug("migration applied")
	}

	logrus.WithFields(logrus.Fields{
		"steps":    len(steps),
		"duration": time.Since(start).String(),
	}).Info("Migrações concluídas")

	return nil
}

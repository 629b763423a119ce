package repository

//go:generate mockgen -source=account.go -destination=mocks/account.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/ads-mirror-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-mirror-api/internal/domain"
)

const accountsTable = "ad_accounts"

// tamanho máximo de cada INSERT em lote
const upsertChunkSize = 500

var accountColumns = []string{
	"id", "user_id", "name", "currency", "status", "timezone",
	"total_ads", "active_ads", "paused_ads",
	"spend", "impressions", "reach", "clicks", "last_synced_at",
}

type AccountRepository interface {
	UpsertAccounts(ctx context.Context, userID int, accounts []*domain.AdAccount) error
	ListAccountsByUser(ctx context.Context, userID int) ([]*domain.AdAccount, error)
	GetAccount(ctx context.Context, userID int, accountID string) (*domain.AdAccount, error)
	GetAccountsByIDs(ctx context.Context, userID int, accountIDs []string) ([]*domain.AdAccount, error)
}

type accountRepository struct {
	conn postgres.Executor
}

func NewAccountRepository(conn postgres.Executor) AccountRepository {
	return &accountRepository{
		conn: conn,
	}
}

func (r *accountRepository) UpsertAccounts(ctx context.Context, userID int, accounts []*domain.AdAccount) error {
	for _, chunk := range chunks(accounts, upsertChunkSize) {
		sqlQuery, args, err := buildAccountUpsert(userID, chunk).ToSql()
		if err != nil {
			return fmt.Errorf("failed to build query: %w", err)
		}

		if _, err := r.conn.ExecContext(ctx, sqlQuery, args...); err != nil {
			return wrapExecError(err)
		}
	}

	return nil
}

func buildAccountUpsert(userID int, accounts []*domain.AdAccount) squirrel.InsertBuilder {
	query := squirrel.StatementBuilder.
		Insert(accountsTable).
		Columns(accountColumns...).
		PlaceholderFormat(squirrel.Dollar)

	for _, a := range accounts {
		query = query.Values(
			a.ID, userID, a.Name, a.Currency, a.Status, a.Timezone,
			a.TotalAds, a.ActiveAds, a.PausedAds,
			a.Spend, a.Impressions, a.Reach, a.Clicks, a.LastSyncedAt,
		)
	}

	return query.Suffix(`
		ON CONFLICT (id) DO UPDATE SET
			user_id = EXCLUDED.user_id,
			name = EXCLUDED.name,
			currency = EXCLUDED.currency,
			status = EXCLUDED.status,
			timezone = EXCLUDED.timezone,
			total_ads = EXCLUDED.total_ads,
			active_ads = EXCLUDED.active_ads,
			paused_ads = EXCLUDED.paused_ads,
			spend = EXCLUDED.spend,
			impressions = EXCLUDED.impressions,
			reach = EXCLUDED.reach,
			clicks = EXCLUDED.clicks,
			last_synced_at = EXCLUDED.last_synced_at
	`)
}

func (r *accountRepository) ListAccountsByUser(ctx context.Context, userID int) ([]*domain.AdAccount, error) {
	return r.listAccounts(ctx, squirrel.Eq{"user_id": userID})
}

func (r *accountRepository) GetAccountsByIDs(ctx context.Context, userID int, accountIDs []string) ([]*domain.AdAccount, error) {
	if len(accountIDs) == 0 {
		return []*domain.AdAccount{}, nil
	}
	return r.listAccounts(ctx, squirrel.Eq{"user_id": userID, "id": accountIDs})
}

func (r *accountRepository) GetAccount(ctx context.Context, userID int, accountID string) (*domain.AdAccount, error) {
	accounts, err := r.listAccounts(ctx, squirrel.Eq{"user_id": userID, "id": accountID})
	if err != nil {
		return nil, err
	}

	if len(accounts) == 0 {
		return nil, nil
	}

	return accounts[0], nil
}

func (r *accountRepository) listAccounts(ctx context.Context, where squirrel.Sqlizer) ([]*domain.AdAccount, error) {
	accountsSQL, accountsArgs, err := squirrel.
		Select(accountColumns...).
		From(accountsTable).
		Where(where).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, accountsSQL, accountsArgs...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	accounts := make([]*domain.AdAccount, 0)
	for rows.Next() {
		var userID int
		acc := &domain.AdAccount{}
		if err := rows.Scan(
			&acc.ID,
			&userID,
			&acc.Name,
			&acc.Currency,
			&acc.Status,
			&acc.Timezone,
			&acc.TotalAds,
			&acc.ActiveAds,
			&acc.PausedAds,
			&acc.Spend,
			&acc.Impressions,
			&acc.Reach,
			&acc.Clicks,
			&acc.LastSyncedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao deserializar a conta: %w", err)
		}
		acc.UserID = userID
		accounts = append(accounts, acc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return accounts, nil
}

func wrapExecError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
	}
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	return fmt.Errorf("failed to execute query: %w", err)
}

func chunks[T any](items []T, size int) [][]T {
	if len(items) == 0 {
		return nil
	}

	out := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		out = append(out, items[start:end])
	}

	return out
}

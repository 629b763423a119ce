package repository

//go:generate mockgen -source=campaign.go -destination=mocks/campaign.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ads-mirror-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-mirror-api/internal/domain"
)

const campaignsTable = "campaigns"

var campaignColumns = []string{
	"id", "account_id", "name", "status", "effective_status", "objective",
	"daily_budget", "lifetime_budget", "remaining_budget", "start_time", "stop_time",
	"impressions", "reach", "spend", "clicks", "results", "cost_per_result", "updated_at",
}

type CampaignRepository interface {
	UpsertCampaigns(ctx context.Context, campaigns []*domain.Campaign) error
	ListCampaignsByAccounts(ctx context.Context, accountIDs []string) ([]*domain.Campaign, error)
	GetCampaignsByIDs(ctx context.Context, userID int, campaignIDs []string) ([]*domain.Campaign, error)
	// DeleteCampaignsNotIn remove as campanhas da conta que não estão em keepIDs
	DeleteCampaignsNotIn(ctx context.Context, accountID string, keepIDs []string) (int64, error)
}

type campaignRepository struct {
	conn postgres.Executor
}

func NewCampaignRepository(conn postgres.Executor) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

func (r *campaignRepository) UpsertCampaigns(ctx context.Context, campaigns []*domain.Campaign) error {
	for _, chunk := range chunks(campaigns, upsertChunkSize) {
		query := squirrel.StatementBuilder.
			Insert(campaignsTable).
			Columns(campaignColumns...).
			PlaceholderFormat(squirrel.Dollar)

		for _, c := range chunk {
			query = query.Values(
				c.ID, c.AccountID, c.Name, c.Status, c.EffectiveStatus, c.Objective,
				c.DailyBudget, c.LifetimeBudget, c.RemainingBudget, c.StartTime, c.StopTime,
				c.Impressions, c.Reach, c.Spend, c.Clicks, c.Results, c.CostPerResult, c.UpdatedAt,
			)
		}

		query = query.Suffix(`
			ON CONFLICT (id) DO UPDATE SET
				account_id = EXCLUDED.account_id,
				name = EXCLUDED.name,
				status = EXCLUDED.status,
				effective_status = EXCLUDED.effective_status,
				objective = EXCLUDED.objective,
				daily_budget = EXCLUDED.daily_budget,
				lifetime_budget = EXCLUDED.lifetime_budget,
				remaining_budget = EXCLUDED.remaining_budget,
				start_time = EXCLUDED.start_time,
				stop_time = EXCLUDED.stop_time,
				impressions = EXCLUDED.impressions,
				reach = EXCLUDED.reach,
				spend = EXCLUDED.spend,
				clicks = EXCLUDED.clicks,
				results = EXCLUDED.results,
				cost_per_result = EXCLUDED.cost_per_result,
				updated_at = EXCLUDED.updated_at
		`)

		sqlQuery, args, err := query.ToSql()
		if err != nil {
			return fmt.Errorf("failed to build query: %w", err)
		}

		if _, err := r.conn.ExecContext(ctx, sqlQuery, args...); err != nil {
			return wrapExecError(err)
		}
	}

	return nil
}

func (r *campaignRepository) ListCampaignsByAccounts(ctx context.Context, accountIDs []string) ([]*domain.Campaign, error) {
	if len(accountIDs) == 0 {
		return []*domain.Campaign{}, nil
	}
	return r.list(ctx, squirrel.Select(prefixed("c", campaignColumns)...).
		From(campaignsTable+" c").
		Where(squirrel.Eq{"c.account_id": accountIDs}))
}

func (r *campaignRepository) GetCampaignsByIDs(ctx context.Context, userID int, campaignIDs []string) ([]*domain.Campaign, error) {
	if len(campaignIDs) == 0 {
		return []*domain.Campaign{}, nil
	}
	return r.list(ctx, squirrel.Select(prefixed("c", campaignColumns)...).
		From(campaignsTable+" c").
		Join(accountsTable+" a ON a.id = c.account_id").
		Where(squirrel.Eq{"a.user_id": userID, "c.id": campaignIDs}))
}

func (r *campaignRepository) DeleteCampaignsNotIn(ctx context.Context, accountID string, keepIDs []string) (int64, error) {
	return deleteNotIn(ctx, r.conn, campaignsTable, accountID, keepIDs)
}

func (r *campaignRepository) list(ctx context.Context, builder squirrel.SelectBuilder) ([]*domain.Campaign, error) {
	campaignsSQL, args, err := builder.
		OrderBy("c.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, campaignsSQL, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	campaigns := make([]*domain.Campaign, 0)
	for rows.Next() {
		c := &domain.Campaign{}
		if err := rows.Scan(
			&c.ID,
			&c.AccountID,
			&c.Name,
			&c.Status,
			&c.EffectiveStatus,
			&c.Objective,
			&c.DailyBudget,
			&c.LifetimeBudget,
			&c.RemainingBudget,
			&c.StartTime,
			&c.StopTime,
			&c.Impressions,
			&c.Reach,
			&c.Spend,
			&c.Clicks,
			&c.Results,
			&c.CostPerResult,
			&c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao deserializar a campanha: %w", err)
		}
		campaigns = append(campaigns, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return campaigns, nil
}

// deleteNotIn apaga as linhas da conta ausentes de keepIDs. Com keepIDs vazio
// todas as linhas da conta são removidas.
func deleteNotIn(ctx context.Context, conn postgres.Executor, table, accountID string, keepIDs []string) (int64, error) {
	sqlQuery, args, err := buildDeleteNotIn(table, accountID, keepIDs).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build query: %w", err)
	}

	result, err := conn.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		return 0, wrapExecError(err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("error getting rows affected: %w", err)
	}

	return deleted, nil
}

func buildDeleteNotIn(table, accountID string, keepIDs []string) squirrel.DeleteBuilder {
	query := squirrel.
		Delete(table).
		Where(squirrel.Eq{"account_id": accountID}).
		PlaceholderFormat(squirrel.Dollar)

	if len(keepIDs) > 0 {
		query = query.Where(squirrel.NotEq{"id": keepIDs})
	}

	return query
}

func prefixed(alias string, columns []string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = alias + "." + c
	}
	return out
}

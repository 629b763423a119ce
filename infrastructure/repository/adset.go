package repository

//go:generate mockgen -source=adset.go -destination=mocks/adset.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ads-mirror-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-mirror-api/internal/domain"
)

const adSetsTable = "adsets"

var adSetColumns = []string{
	"id", "campaign_id", "account_id", "name", "status", "effective_status",
	"daily_budget", "lifetime_budget", "bid_amount", "optimization_goal", "billing_event",
	"impressions", "reach", "spend", "clicks", "results", "cost_per_result", "updated_at",
}

type AdSetRepository interface {
	UpsertAdSets(ctx context.Context, adSets []*domain.AdSet) error
	ListAdSetsByAccounts(ctx context.Context, accountIDs []string) ([]*domain.AdSet, error)
	ListAdSetsByCampaign(ctx context.Context, campaignID string) ([]*domain.AdSet, error)
	GetAdSetsByIDs(ctx context.Context, userID int, adSetIDs []string) ([]*domain.AdSet, error)
	DeleteAdSetsNotIn(ctx context.Context, accountID string, keepIDs []string) (int64, error)
}

type adSetRepository struct {
	conn postgres.Executor
}

func NewAdSetRepository(conn postgres.Executor) AdSetRepository {
	return &adSetRepository{
		conn: conn,
	}
}

func (r *adSetRepository) UpsertAdSets(ctx context.Context, adSets []*domain.AdSet) error {
	for _, chunk := range chunks(adSets, upsertChunkSize) {
		query := squirrel.StatementBuilder.
			Insert(adSetsTable).
			Columns(adSetColumns...).
			PlaceholderFormat(squirrel.Dollar)

		for _, s := range chunk {
			query = query.Values(
				s.ID, s.CampaignID, s.AccountID, s.Name, s.Status, s.EffectiveStatus,
				s.DailyBudget, s.LifetimeBudget, s.BidAmount, s.OptimizationGoal, s.BillingEvent,
				s.Impressions, s.Reach, s.Spend, s.Clicks, s.Results, s.CostPerResult, s.UpdatedAt,
			)
		}

		query = query.Suffix(`
			ON CONFLICT (id) DO UPDATE SET
				campaign_id = EXCLUDED.campaign_id,
				account_id = EXCLUDED.account_id,
				name = EXCLUDED.name,
				status = EXCLUDED.status,
				effective_status = EXCLUDED.effective_status,
				daily_budget = EXCLUDED.daily_budget,
				lifetime_budget = EXCLUDED.lifetime_budget,
				bid_amount = EXCLUDED.bid_amount,
				optimization_goal = EXCLUDED.optimization_goal,
				billing_event = EXCLUDED.billing_event,
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

func (r *adSetRepository) ListAdSetsByAccounts(ctx context.Context, accountIDs []string) ([]*domain.AdSet, error) {
	if len(accountIDs) == 0 {
		return []*domain.AdSet{}, nil
	}
	return r.list(ctx, squirrel.Select(prefixed("s", adSetColumns)...).
		From(adSetsTable+" s").
		Where(squirrel.Eq{"s.account_id": accountIDs}))
}

func (r *adSetRepository) ListAdSetsByCampaign(ctx context.Context, campaignID string) ([]*domain.AdSet, error) {
	return r.list(ctx, squirrel.Select(prefixed("s", adSetColumns)...).
		From(adSetsTable+" s").
		Where(squirrel.Eq{"s.campaign_id": campaignID}))
}

func (r *adSetRepository) GetAdSetsByIDs(ctx context.Context, userID int, adSetIDs []string) ([]*domain.AdSet, error) {
	if len(adSetIDs) == 0 {
		return []*domain.AdSet{}, nil
	}
	return r.list(ctx, squirrel.Select(prefixed("s", adSetColumns)...).
		From(adSetsTable+" s").
		Join(accountsTable+" a ON a.id = s.account_id").
		Where(squirrel.Eq{"a.user_id": userID, "s.id": adSetIDs}))
}

func (r *adSetRepository) DeleteAdSetsNotIn(ctx context.Context, accountID string, keepIDs []string) (int64, error) {
	return deleteNotIn(ctx, r.conn, adSetsTable, accountID, keepIDs)
}

func (r *adSetRepository) list(ctx context.Context, builder squirrel.SelectBuilder) ([]*domain.AdSet, error) {
	adSetsSQL, args, err := builder.
		OrderBy("s.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, adSetsSQL, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	adSets := make([]*domain.AdSet, 0)
	for rows.Next() {
		s := &domain.AdSet{}
		if err := rows.Scan(
			&s.ID,
			&s.CampaignID,
			&s.AccountID,
			&s.Name,
			&s.Status,
			&s.EffectiveStatus,
			&s.DailyBudget,
			&s.LifetimeBudget,
			&s.BidAmount,
			&s.OptimizationGoal,
			&s.BillingEvent,
			&s.Impressions,
			&s.Reach,
			&s.Spend,
			&s.Clicks,
			&s.Results,
			&s.CostPerResult,
			&s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao deserializar o conjunto de anúncios: %w", err)
		}
		adSets = append(adSets, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return adSets, nil
}

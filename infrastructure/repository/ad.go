package repository

//go:generate mockgen -source=ad.go -destination=mocks/ad.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ads-mirror-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-mirror-api/internal/domain"
)

const adsTable = "ads"

var adColumns = []string{
	"id", "adset_id", "campaign_id", "account_id", "name", "status", "effective_status", "thumbnail_url",
	"video_p25_views", "video_p50_views", "video_p75_views", "video_p100_views",
	"post_engagements", "messaging_contacts", "cost_per_messaging_contact",
	"impressions", "reach", "spend", "clicks", "results", "cost_per_result", "updated_at",
}

type AdRepository interface {
	UpsertAds(ctx context.Context, ads []*domain.Ad) error
	ListAdsByAccounts(ctx context.Context, accountIDs []string) ([]*domain.Ad, error)
	ListAdsByAdSet(ctx context.Context, adSetID string) ([]*domain.Ad, error)
	GetAd(ctx context.Context, userID int, adID string) (*domain.Ad, error)
	DeleteAdsNotIn(ctx context.Context, accountID string, keepIDs []string) (int64, error)
}

type adRepository struct {
	conn postgres.Executor
}

func NewAdRepository(conn postgres.Executor) AdRepository {
	return &adRepository{
		conn: conn,
	}
}

func (r *adRepository) UpsertAds(ctx context.Context, ads []*domain.Ad) error {
	for _, chunk := range chunks(ads, upsertChunkSize) {
		query := squirrel.StatementBuilder.
			Insert(adsTable).
			Columns(adColumns...).
			PlaceholderFormat(squirrel.Dollar)

		for _, ad := range chunk {
			query = query.Values(
				ad.ID, ad.AdSetID, ad.CampaignID, ad.AccountID, ad.Name, ad.Status, ad.EffectiveStatus, ad.ThumbnailURL,
				ad.VideoP25Views, ad.VideoP50Views, ad.VideoP75Views, ad.VideoP100Views,
				ad.PostEngagements, ad.MessagingContacts, ad.CostPerMessagingContact,
				ad.Impressions, ad.Reach, ad.Spend, ad.Clicks, ad.Results, ad.CostPerResult, ad.UpdatedAt,
			)
		}

		query = query.Suffix(`
			ON CONFLICT (id) DO UPDATE SET
				adset_id = EXCLUDED.adset_id,
				campaign_id = EXCLUDED.campaign_id,
				account_id = EXCLUDED.account_id,
				name = EXCLUDED.name,
				status = EXCLUDED.status,
				effective_status = EXCLUDED.effective_status,
				thumbnail_url = EXCLUDED.thumbnail_url,
				video_p25_views = EXCLUDED.video_p25_views,
				video_p50_views = EXCLUDED.video_p50_views,
				video_p75_views = EXCLUDED.video_p75_views,
				video_p100_views = EXCLUDED.video_p100_views,
				post_engagements = EXCLUDED.post_engagements,
				messaging_contacts = EXCLUDED.messaging_contacts,
				cost_per_messaging_contact = EXCLUDED.cost_per_messaging_contact,
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

func (r *adRepository) ListAdsByAccounts(ctx context.Context, accountIDs []string) ([]*domain.Ad, error) {
	if len(accountIDs) == 0 {
		return []*domain.Ad{}, nil
	}
	return r.list(ctx, squirrel.Select(prefixed("ad", adColumns)...).
		From(adsTable+" ad").
		Where(squirrel.Eq{"ad.account_id": accountIDs}))
}

func (r *adRepository) ListAdsByAdSet(ctx context.Context, adSetID string) ([]*domain.Ad, error) {
	return r.list(ctx, squirrel.Select(prefixed("ad", adColumns)...).
		From(adsTable+" ad").
		Where(squirrel.Eq{"ad.adset_id": adSetID}))
}

func (r *adRepository) GetAd(ctx context.Context, userID int, adID string) (*domain.Ad, error) {
	ads, err := r.list(ctx, squirrel.Select(prefixed("ad", adColumns)...).
		From(adsTable+" ad").
		Join(accountsTable+" a ON a.id = ad.account_id").
		Where(squirrel.Eq{"a.user_id": userID, "ad.id": adID}))
	if err != nil {
		return nil, err
	}

	if len(ads) == 0 {
		return nil, nil
	}

	return ads[0], nil
}

func (r *adRepository) DeleteAdsNotIn(ctx context.Context, accountID string, keepIDs []string) (int64, error) {
	return deleteNotIn(ctx, r.conn, adsTable, accountID, keepIDs)
}

func (r *adRepository) list(ctx context.Context, builder squirrel.SelectBuilder) ([]*domain.Ad, error) {
	adsSQL, args, err := builder.
		OrderBy("ad.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, adsSQL, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	ads := make([]*domain.Ad, 0)
	for rows.Next() {
		ad := &domain.Ad{}
		if err := rows.Scan(
			&ad.ID,
			&ad.AdSetID,
			&ad.CampaignID,
			&ad.AccountID,
			&ad.Name,
			&ad.Status,
			&ad.EffectiveStatus,
			&ad.ThumbnailURL,
			&ad.VideoP25Views,
			&ad.VideoP50Views,
			&ad.VideoP75Views,
			&ad.VideoP100Views,
			&ad.PostEngagements,
			&ad.MessagingContacts,
			&ad.CostPerMessagingContact,
			&ad.Impressions,
			&ad.Reach,
			&ad.Spend,
			&ad.Clicks,
			&ad.Results,
			&ad.CostPerResult,
			&ad.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao deserializar o anúncio: %w", err)
		}
		ads = append(ads, ad)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return ads, nil
}

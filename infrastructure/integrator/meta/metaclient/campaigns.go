package metaclient

import (
	"context"
	"strings"

	metadomain "github.com/vfg2006/ads-mirror-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-mirror-api/internal/domain"
)

var (
	campaignFields = []string{
		"id", "account_id", "name", "status", "effective_status", "objective",
		"daily_budget", "lifetime_budget", "budget_remaining", "start_time", "stop_time",
	}
	adSetFields = []string{
		"id", "campaign_id", "account_id", "name", "status", "effective_status",
		"daily_budget", "lifetime_budget", "bid_amount", "optimization_goal", "billing_event",
		"campaign{id,objective}",
	}
	adFields = []string{
		"id", "adset_id", "campaign_id", "account_id", "name", "status", "effective_status",
		"creative{id,thumbnail_url}", "campaign{id,objective}",
	}
)

func fieldsWithInsights(fields []string, filters *domain.InsightFilters) string {
	return strings.Join(append(append([]string{}, fields...), insightsField(filters)), ",")
}

func (c *MetaClient) GetCampaigns(ctx context.Context, token, accountID string, filters *domain.InsightFilters) ([]metadomain.Campaign, bool, error) {
	params := tokenParams(token)
	params.Set("fields", fieldsWithInsights(campaignFields, filters))

	return getPaged[metadomain.Campaign](ctx, c, accountPath(accountID)+"/campaigns", params)
}

func (c *MetaClient) GetAdSetsByCampaign(ctx context.Context, token, campaignID string, filters *domain.InsightFilters) ([]metadomain.AdSet, bool, error) {
	params := tokenParams(token)
	params.Set("fields", fieldsWithInsights(adSetFields, filters))

	return getPaged[metadomain.AdSet](ctx, c, campaignID+"/adsets", params)
}

func (c *MetaClient) GetAdsByAdSet(ctx context.Context, token, adSetID string, filters *domain.InsightFilters) ([]metadomain.Ad, bool, error) {
	params := tokenParams(token)
	params.Set("fields", fieldsWithInsights(adFields, filters))

	return getPaged[metadomain.Ad](ctx, c, adSetID+"/ads", params)
}

func (c *MetaClient) GetAdsByAccount(ctx context.Context, token, accountID string, filters *domain.InsightFilters) ([]metadomain.Ad, bool, error) {
	params := tokenParams(token)
	params.Set("fields", fieldsWithInsights(adFields, filters))

	return getPaged[metadomain.Ad](ctx, c, accountPath(accountID)+"/ads", params)
}

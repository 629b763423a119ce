package metaclient

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	metadomain "github.com/vfg2006/ads-mirror-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-mirror-api/internal/domain"
)

const insightFields = "account_id,impressions,reach,spend,clicks,objective,actions,cost_per_action_type," +
	"video_p25_watched_actions,video_p50_watched_actions,video_p75_watched_actions,video_p100_watched_actions"

// GetAccountInsights retorna nil quando o período não tem dados
func (c *MetaClient) GetAccountInsights(ctx context.Context, token, accountID string, filters *domain.InsightFilters) (*metadomain.Insight, error) {
	params := tokenParams(token)
	params.Set("fields", insightFields)
	params.Set("level", "account")

	if filters.IsAllTime() {
		params.Set("date_preset", "maximum")
	} else {
		params.Set("time_range", timeRange(filters))
	}

	body, err := c.get(ctx, c.endpoint(accountPath(accountID)+"/insights")+"?"+params.Encode())
	if err != nil {
		return nil, err
	}

	var response metadomain.InsightEdge
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrapf(domain.ErrUpstream, "erro ao decodificar insights da conta %s: %v", accountID, err)
	}

	return response.First(), nil
}

func timeRange(filters *domain.InsightFilters) string {
	return fmt.Sprintf("{\"since\":\"%s\",\"until\":\"%s\"}", filters.StartDate.Format(time.DateOnly), filters.EndDate.Format(time.DateOnly))
}

// insightsField monta a expansão do edge insights usada nas listagens
func insightsField(filters *domain.InsightFilters) string {
	if filters.IsAllTime() {
		return fmt.Sprintf("insights.date_preset(maximum){%s}", insightFields)
	}
	return fmt.Sprintf("insights.time_range(%s){%s}", timeRange(filters), insightFields)
}

package metaclient

import (
	"context"

	metadomain "github.com/vfg2006/ads-mirror-api/infrastructure/integrator/meta/domain"
)

const accountFields = "id,account_id,name,currency,account_status,timezone_name"

func (c *MetaClient) GetAdAccounts(ctx context.Context, token string) ([]metadomain.AdAccount, bool, error) {
	params := tokenParams(token)
	params.Set("fields", accountFields)

	return getPaged[metadomain.AdAccount](ctx, c, "me/adaccounts", params)
}

// GetAdStatuses lista apenas id e effective_status para a contagem de anúncios
func (c *MetaClient) GetAdStatuses(ctx context.Context, token, accountID string) ([]metadomain.AdStatus, bool, error) {
	params := tokenParams(token)
	params.Set("fields", "id,effective_status")

	return getPaged[metadomain.AdStatus](ctx, c, accountPath(accountID)+"/ads", params)
}

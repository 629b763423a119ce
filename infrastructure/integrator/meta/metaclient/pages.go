package metaclient

import (
	"context"

	"github.com/pkg/errors"
	metadomain "github.com/vfg2006/ads-mirror-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-mirror-api/internal/domain"
)

func (c *MetaClient) GetPage(ctx context.Context, token, pageID string) (*metadomain.Page, error) {
	params := tokenParams(token)
	params.Set("fields", "id,name")

	body, err := c.get(ctx, c.endpoint(pageID)+"?"+params.Encode())
	if err != nil {
		return nil, err
	}

	var page metadomain.Page
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, errors.Wrapf(domain.ErrUpstream, "erro ao decodificar página %s: %v", pageID, err)
	}

	return &page, nil
}

// GetManagedPages lista as páginas que o dono do token administra
func (c *MetaClient) GetManagedPages(ctx context.Context, token string) ([]metadomain.Page, bool, error) {
	params := tokenParams(token)
	params.Set("fields", "id,name")

	return getPaged[metadomain.Page](ctx, c, "me/accounts", params)
}

package meta

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-mirror-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-mirror-api/internal/config"
	"github.com/vfg2006/ads-mirror-api/internal/domain"
	"github.com/vfg2006/ads-mirror-api/pkg/batcher"
)

// RemoteClient é a visão que o núcleo tem da plataforma de anúncios. Todos os
// métodos podem falhar com domain.ErrUnauthorized, domain.ErrUpstreamRateLimited
// ou domain.ErrUpstream.
type RemoteClient interface {
	ListAccounts(ctx context.Context, token string) ([]*domain.AdAccount, error)
	GetInsights(ctx context.Context, token string, accountIDs []string, filters *domain.InsightFilters) (map[string]*domain.Insight, error)
	GetAdCounts(ctx context.Context, token string, accountIDs []string) (map[string]*domain.AdCounts, error)
	GetCampaigns(ctx context.Context, token string, accountIDs []string, filters *domain.InsightFilters) (*domain.Listing[*domain.Campaign], error)
	GetAdSets(ctx context.Context, token string, campaignIDs []string, filters *domain.InsightFilters) (*domain.Listing[*domain.AdSet], error)
	GetAdsByAdSets(ctx context.Context, token string, adSetIDs []string, filters *domain.InsightFilters) (*domain.Listing[*domain.Ad], error)
	GetAdsByAccount(ctx context.Context, token, accountID string, filters *domain.InsightFilters) (*domain.Listing[*domain.Ad], error)
	GetPageNames(ctx context.Context, token string, pageIDs []string) (map[string]string, error)
	ListManagedPageIDs(ctx context.Context, token string) ([]string, error)
	FetchAsset(ctx context.Context, url string) ([]byte, string, error)
	ExchangeToken(ctx context.Context, shortLivedToken string) (string, error)
}

type MetaIntegrator struct {
	cfg    *config.Config
	Client metaclient.Client
}

func New(cfg *config.Config, client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

func (s *MetaIntegrator) ListAccounts(ctx context.Context, token string) ([]*domain.AdAccount, error) {
	remote, complete, err := s.Client.GetAdAccounts(ctx, token)
	if err != nil {
		logrus.WithError(err).Error("insights: failed to list ad accounts")
		return nil, err
	}

	if !complete {
		logrus.WithField("total_accounts", len(remote)).Warn("insights: ad account listing truncated")
	}

	accounts := make([]*domain.AdAccount, 0, len(remote))
	for i := range remote {
		accounts = append(accounts, FactoryAdAccount(&remote[i]))
	}

	logrus.WithField("total_accounts", len(accounts)).Info("insights: successfully retrieved all ad accounts")

	return accounts, nil
}

// GetInsights consulta conta a conta; contas sem dados no período ficam fora do mapa
func (s *MetaIntegrator) GetInsights(ctx context.Context, token string, accountIDs []string, filters *domain.InsightFilters) (map[string]*domain.Insight, error) {
	insights := make(map[string]*domain.Insight, len(accountIDs))

	for _, accountID := range accountIDs {
		remote, err := s.Client.GetAccountInsights(ctx, token, accountID, filters)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id": accountID,
				"error":      err.Error(),
			}).Error("insights: failed to get ad account insights from API")
			return nil, err
		}

		if remote == nil {
			continue
		}

		insights[accountID] = FactoryInsight(accountID, remote)
	}

	return insights, nil
}

func (s *MetaIntegrator) GetAdCounts(ctx context.Context, token string, accountIDs []string) (map[string]*domain.AdCounts, error) {
	counts := make(map[string]*domain.AdCounts, len(accountIDs))

	for _, accountID := range accountIDs {
		statuses, complete, err := s.Client.GetAdStatuses(ctx, token, accountID)
		if err != nil {
			return nil, err
		}

		if !complete {
			logrus.WithField("account_id", accountID).Warn("insights: ad count based on truncated listing")
		}

		c := &domain.AdCounts{Total: len(statuses)}
		for _, status := range statuses {
			switch status.EffectiveStatus {
			case domain.StatusActive:
				c.Active++
			case domain.StatusPaused, "CAMPAIGN_PAUSED", "ADSET_PAUSED":
				c.Paused++
			}
		}
		counts[accountID] = c
	}

	return counts, nil
}

func (s *MetaIntegrator) GetCampaigns(ctx context.Context, token string, accountIDs []string, filters *domain.InsightFilters) (*domain.Listing[*domain.Campaign], error) {
	listing := &domain.Listing[*domain.Campaign]{Items: make([]*domain.Campaign, 0), Complete: true}

	for _, accountID := range accountIDs {
		remote, complete, err := s.Client.GetCampaigns(ctx, token, accountID, filters)
		if err != nil {
			return nil, fmt.Errorf("campanhas da conta %s: %w", accountID, err)
		}

		listing.Complete = listing.Complete && complete
		for i := range remote {
			listing.Items = append(listing.Items, FactoryCampaign(&remote[i]))
		}
	}

	return listing, nil
}

func (s *MetaIntegrator) GetAdSets(ctx context.Context, token string, campaignIDs []string, filters *domain.InsightFilters) (*domain.Listing[*domain.AdSet], error) {
	listing := &domain.Listing[*domain.AdSet]{Items: make([]*domain.AdSet, 0), Complete: true}

	for _, campaignID := range campaignIDs {
		remote, complete, err := s.Client.GetAdSetsByCampaign(ctx, token, campaignID, filters)
		if err != nil {
			return nil, fmt.Errorf("conjuntos da campanha %s: %w", campaignID, err)
		}

		listing.Complete = listing.Complete && complete
		for i := range remote {
			listing.Items = append(listing.Items, FactoryAdSet(&remote[i]))
		}
	}

	return listing, nil
}

func (s *MetaIntegrator) GetAdsByAdSets(ctx context.Context, token string, adSetIDs []string, filters *domain.InsightFilters) (*domain.Listing[*domain.Ad], error) {
	listing := &domain.Listing[*domain.Ad]{Items: make([]*domain.Ad, 0), Complete: true}

	for _, adSetID := range adSetIDs {
		remote, complete, err := s.Client.GetAdsByAdSet(ctx, token, adSetID, filters)
		if err != nil {
			return nil, fmt.Errorf("anúncios do conjunto %s: %w", adSetID, err)
		}

		listing.Complete = listing.Complete && complete
		for i := range remote {
			listing.Items = append(listing.Items, FactoryAd(&remote[i]))
		}
	}

	return listing, nil
}

func (s *MetaIntegrator) GetAdsByAccount(ctx context.Context, token, accountID string, filters *domain.InsightFilters) (*domain.Listing[*domain.Ad], error) {
	remote, complete, err := s.Client.GetAdsByAccount(ctx, token, accountID, filters)
	if err != nil {
		return nil, fmt.Errorf("anúncios da conta %s: %w", accountID, err)
	}

	listing := &domain.Listing[*domain.Ad]{Items: make([]*domain.Ad, 0, len(remote)), Complete: complete}
	for i := range remote {
		listing.Items = append(listing.Items, FactoryAd(&remote[i]))
	}

	return listing, nil
}

// GetPageNames resolve os nomes em lotes. Falhas individuais ficam fora do mapa.
func (s *MetaIntegrator) GetPageNames(ctx context.Context, token string, pageIDs []string) (map[string]string, error) {
	type pageName struct {
		id   string
		name string
	}

	results := batcher.Run(ctx, pageIDs,
		batcher.Options{
			Name:      "pages",
			BatchSize: s.cfg.Batching.PagesBatchSize,
			Delay:     s.cfg.Batching.PagesDelay,
		},
		func(ctx context.Context, pageID string) (pageName, error) {
			page, err := s.Client.GetPage(ctx, token, pageID)
			if err != nil {
				return pageName{}, err
			}
			return pageName{id: pageID, name: page.Name}, nil
		},
		func(pageID string, err error) pageName {
			logrus.WithFields(logrus.Fields{
				"page_id": pageID,
				"error":   err.Error(),
			}).Warn("pages: failed to resolve page name")
			return pageName{}
		},
	)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	names := make(map[string]string, len(pageIDs))
	for _, r := range results {
		if r.id != "" {
			names[r.id] = r.name
		}
	}

	return names, nil
}

// ListManagedPageIDs devolve as páginas administradas pelo dono do token. Uma
// listagem truncada só restringe o acesso, então segue como veio.
func (s *MetaIntegrator) ListManagedPageIDs(ctx context.Context, token string) ([]string, error) {
	pages, complete, err := s.Client.GetManagedPages(ctx, token)
	if err != nil {
		logrus.WithError(err).Error("pages: failed to list managed pages")
		return nil, err
	}

	if !complete {
		logrus.WithField("total_pages", len(pages)).Warn("pages: managed page listing truncated")
	}

	ids := make([]string, 0, len(pages))
	for _, page := range pages {
		ids = append(ids, page.ID)
	}

	return ids, nil
}

func (s *MetaIntegrator) FetchAsset(ctx context.Context, url string) ([]byte, string, error) {
	return s.Client.Download(ctx, url)
}

func (s *MetaIntegrator) ExchangeToken(ctx context.Context, shortLivedToken string) (string, error) {
	resp, err := s.Client.ExchangeToken(ctx, shortLivedToken)
	if err != nil {
		return "", err
	}
	return resp.AccessToken, nil
}

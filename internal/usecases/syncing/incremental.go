package syncing

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-mirror-api/internal/domain"
	"github.com/vfg2006/ads-mirror-api/pkg/apiErrors"
	"github.com/vfg2006/ads-mirror-api/pkg/batcher"
)

// incrementalScope descreve uma sincronização parcial de um nível da
// hierarquia. Nunca apaga nada: uma busca parcial não prova ausência.
type incrementalScope[C any] struct {
	kind      domain.EntityKind
	batch     string
	parentIDs []string
	owned     func(ctx context.Context) ([]string, error)
	fetch     func(ctx context.Context, token, parentID string) (*domain.Listing[C], error)
	parentOf  func(C) string
	upsert    func(ctx context.Context, items []C) error
	count     func(result *domain.SyncResult, n int)
}

type parentFetch[C any] struct {
	items []C
	err   error
}

func runIncremental[C any](ctx context.Context, s *Service, userID int, filters *domain.InsightFilters, scope incrementalScope[C]) (*domain.SyncResult, error) {
	if err := filters.Validate(); err != nil {
		return nil, NewSyncError(ErrInvalidRequest, apiErrors.ErrInvalidRequest, userID, err.Error())
	}

	parentIDs := uniqueIDs(scope.parentIDs)
	if len(parentIDs) == 0 {
		return nil, NewSyncError(ErrInvalidRequest, apiErrors.ErrMissingRequiredData, userID, "nenhum id informado")
	}

	owned, err := scope.owned(ctx)
	if err != nil {
		return nil, NewSyncError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, userID, err.Error())
	}
	if missing := missingIDs(parentIDs, owned); len(missing) > 0 {
		return nil, NewSyncError(domain.ErrNotFound, apiErrors.ErrResourceNotFound, userID, "ids não encontrados: "+strings.Join(missing, ", "))
	}

	token, err := s.resolveToken(ctx, userID)
	if err != nil {
		return nil, err
	}

	syncLog, err := s.startLog(ctx, userID, domain.SyncTypeIncremental)
	if err != nil {
		return nil, err
	}

	result := &domain.SyncResult{Log: syncLog}

	fetches := batcher.Run(ctx, parentIDs, s.batchOptions(scope.batch),
		func(ctx context.Context, parentID string) (parentFetch[C], error) {
			listing, err := scope.fetch(ctx, token, parentID)
			if err != nil {
				return parentFetch[C]{}, err
			}
			return parentFetch[C]{items: listing.Items}, nil
		},
		func(parentID string, err error) parentFetch[C] {
			s.observeUpstream(userID, err)
			logrus.WithFields(logrus.Fields{
				"user_id":   userID,
				"kind":      scope.kind,
				"parent_id": parentID,
				"error":     err.Error(),
			}).Warn("sync: incremental fetch failed for parent")
			return parentFetch[C]{err: err}
		},
	)

	requested := make(map[string]struct{}, len(parentIDs))
	for _, id := range parentIDs {
		requested[id] = struct{}{}
	}

	items := make([]C, 0)
	failed := make([]string, 0)
	var firstErr error
	for i, f := range fetches {
		if f.err != nil {
			failed = append(failed, parentIDs[i])
			if firstErr == nil {
				firstErr = f.err
			}
			continue
		}
		for _, item := range f.items {
			if _, ok := requested[scope.parentOf(item)]; ok {
				items = append(items, item)
			}
		}
	}

	if len(failed) == len(parentIDs) {
		errText := "falha em todos os ids: " + strings.Join(failed, ", ")
		s.finishLog(ctx, syncLog, domain.SyncStatusFailed, errText)
		return result, newDomainSyncError(fmt.Errorf("%w: %w", ErrAllFetchesFailed, firstErr), userID, errText)
	}

	if err := scope.upsert(ctx, items); err != nil {
		return s.failWrite(ctx, syncLog, result, err)
	}

	scope.count(result, len(items))
	result.FailedAccounts = failed
	syncLog.AccountsCount = len(parentIDs)
	syncLog.AdsCount = len(items)

	errText := ""
	if len(failed) > 0 {
		errText = "falha nos ids: " + strings.Join(failed, ", ")
	}
	s.finishLog(ctx, syncLog, domain.SyncStatusSuccess, errText)
	s.publishCompleted(userID, result)

	logrus.WithFields(logrus.Fields{
		"user_id": userID,
		"kind":    scope.kind,
		"parents": len(parentIDs),
		"items":   len(items),
		"failed":  len(failed),
	}).Info("sync: incremental sync completed")

	return result, nil
}

func missingIDs(requested, found []string) []string {
	present := make(map[string]struct{}, len(found))
	for _, id := range found {
		present[id] = struct{}{}
	}

	missing := make([]string, 0)
	for _, id := range requested {
		if _, ok := present[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}

func (s *Service) SyncCampaigns(ctx context.Context, userID int, accountIDs []string, filters *domain.InsightFilters) (*domain.SyncResult, error) {
	return runIncremental(ctx, s, userID, filters, incrementalScope[*domain.Campaign]{
		kind:      domain.EntityCampaign,
		batch:     "campaigns",
		parentIDs: accountIDs,
		owned: func(ctx context.Context) ([]string, error) {
			accounts, err := s.repos.Accounts.GetAccountsByIDs(ctx, userID, uniqueIDs(accountIDs))
			return idsOf(accounts, func(a *domain.AdAccount) string { return a.ID }), err
		},
		fetch: func(ctx context.Context, token, accountID string) (*domain.Listing[*domain.Campaign], error) {
			return s.remote.GetCampaigns(ctx, token, []string{accountID}, filters)
		},
		parentOf: func(c *domain.Campaign) string { return c.AccountID },
		upsert:   s.repos.Campaigns.UpsertCampaigns,
		count:    func(result *domain.SyncResult, n int) { result.Campaigns = n },
	})
}

func (s *Service) SyncAdSets(ctx context.Context, userID int, campaignIDs []string, filters *domain.InsightFilters) (*domain.SyncResult, error) {
	return runIncremental(ctx, s, userID, filters, incrementalScope[*domain.AdSet]{
		kind:      domain.EntityAdSet,
		batch:     "adsets",
		parentIDs: campaignIDs,
		owned: func(ctx context.Context) ([]string, error) {
			campaigns, err := s.repos.Campaigns.GetCampaignsByIDs(ctx, userID, uniqueIDs(campaignIDs))
			return idsOf(campaigns, func(c *domain.Campaign) string { return c.ID }), err
		},
		fetch: func(ctx context.Context, token, campaignID string) (*domain.Listing[*domain.AdSet], error) {
			return s.remote.GetAdSets(ctx, token, []string{campaignID}, filters)
		},
		parentOf: func(a *domain.AdSet) string { return a.CampaignID },
		upsert:   s.repos.AdSets.UpsertAdSets,
		count:    func(result *domain.SyncResult, n int) { result.AdSets = n },
	})
}

func (s *Service) SyncAds(ctx context.Context, userID int, adSetIDs []string, filters *domain.InsightFilters) (*domain.SyncResult, error) {
	return runIncremental(ctx, s, userID, filters, incrementalScope[*domain.Ad]{
		kind:      domain.EntityAd,
		batch:     "ads",
		parentIDs: adSetIDs,
		owned: func(ctx context.Context) ([]string, error) {
			adSets, err := s.repos.AdSets.GetAdSetsByIDs(ctx, userID, uniqueIDs(adSetIDs))
			return idsOf(adSets, func(a *domain.AdSet) string { return a.ID }), err
		},
		fetch: func(ctx context.Context, token, adSetID string) (*domain.Listing[*domain.Ad], error) {
			return s.remote.GetAdsByAdSets(ctx, token, []string{adSetID}, filters)
		},
		parentOf: func(a *domain.Ad) string { return a.AdSetID },
		upsert:   s.repos.Ads.UpsertAds,
		count:    func(result *domain.SyncResult, n int) { result.Ads = n },
	})
}

package syncing

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-mirror-api/internal/domain"
	"github.com/vfg2006/ads-mirror-api/pkg/apiErrors"
	"github.com/vfg2006/ads-mirror-api/pkg/batcher"
	"github.com/vfg2006/ads-mirror-api/pkg/metrics"
)

// accountStats são os agregados buscados por conta; falhas viram zero
type accountStats struct {
	insight *domain.Insight
	counts  *domain.AdCounts
}

// accountFetch acumula as três listagens de uma conta. err marca a conta como
// falha e a exclui da reconciliação.
type accountFetch struct {
	account   *domain.AdAccount
	campaigns *domain.Listing[*domain.Campaign]
	adSets    *domain.Listing[*domain.AdSet]
	ads       *domain.Listing[*domain.Ad]
	err       error
}

// FullSync sincroniza contas, campanhas, conjuntos e anúncios do usuário e
// reconcilia as remoções. Chamadas concorrentes para o mesmo usuário e o mesmo
// intervalo compartilham a mesma execução.
func (s *Service) FullSync(ctx context.Context, userID int, filters *domain.InsightFilters) (*domain.SyncResult, error) {
	if err := filters.Validate(); err != nil {
		return nil, NewSyncError(ErrInvalidRequest, apiErrors.ErrInvalidRequest, userID, err.Error())
	}

	// a execução compartilhada não pode morrer com o primeiro chamador
	detached := context.WithoutCancel(ctx)

	result, err, shared := s.group.Do(singleflightKey(userID, filters), func() (any, error) {
		return s.fullSync(detached, userID, filters)
	})
	if shared {
		logrus.WithField("user_id", userID).Debug("sync: joined in-flight full sync")
	}

	res, _ := result.(*domain.SyncResult)
	return res, err
}

func (s *Service) fullSync(ctx context.Context, userID int, filters *domain.InsightFilters) (*domain.SyncResult, error) {
	logger := logrus.WithFields(logrus.Fields{
		"user_id": userID,
		"range":   filters.CacheKey(),
	})

	token, err := s.resolveToken(ctx, userID)
	if err != nil {
		return nil, err
	}

	syncLog, err := s.startLog(ctx, userID, domain.SyncTypeFull)
	if err != nil {
		return nil, err
	}

	result := &domain.SyncResult{Log: syncLog}

	accounts, err := s.remote.ListAccounts(ctx, token)
	if err != nil {
		s.observeUpstream(userID, err)
		s.finishLog(ctx, syncLog, domain.SyncStatusFailed, err.Error())
		logger.WithError(err).Error("sync: failed to list accounts")
		return result, newDomainSyncError(err, userID, "falha ao listar contas")
	}

	logger.WithField("accounts", len(accounts)).Info("sync: starting full sync")

	s.applyAccountStats(ctx, userID, token, accounts, filters)

	syncedAt := s.now()
	for _, account := range accounts {
		account.UserID = userID
		account.LastSyncedAt = &syncedAt
	}

	if err := s.repos.Accounts.UpsertAccounts(ctx, userID, accounts); err != nil {
		return s.failWrite(ctx, syncLog, result, err)
	}
	result.Accounts = len(accounts)

	fetches := s.fetchHierarchy(ctx, userID, token, accounts, filters)
	campaigns, adSets, ads := pruneOrphans(fetches)

	if err := s.repos.Campaigns.UpsertCampaigns(ctx, campaigns); err != nil {
		return s.failWrite(ctx, syncLog, result, err)
	}
	if err := s.repos.AdSets.UpsertAdSets(ctx, adSets); err != nil {
		return s.failWrite(ctx, syncLog, result, err)
	}
	if err := s.repos.Ads.UpsertAds(ctx, ads); err != nil {
		return s.failWrite(ctx, syncLog, result, err)
	}

	result.Campaigns = len(campaigns)
	result.AdSets = len(adSets)
	result.Ads = len(ads)
	result.Deleted = s.reconcile(ctx, userID, fetches)

	for _, f := range fetches {
		if f.err != nil {
			result.FailedAccounts = append(result.FailedAccounts, f.account.ID)
		}
	}
	sort.Strings(result.FailedAccounts)

	syncLog.AccountsCount = result.Accounts
	syncLog.AdsCount = result.Ads

	if len(accounts) > 0 && len(result.FailedAccounts) == len(accounts) {
		errText := "falha em todas as contas: " + strings.Join(result.FailedAccounts, ", ")
		s.finishLog(ctx, syncLog, domain.SyncStatusFailed, errText)
		s.publishCompleted(userID, result)

		// o código da API segue o erro da primeira conta
		cause := fmt.Errorf("%w: %w", ErrAllFetchesFailed, fetches[0].err)
		return result, newDomainSyncError(cause, userID, errText)
	}

	errText := ""
	if len(result.FailedAccounts) > 0 {
		errText = "falha nas contas: " + strings.Join(result.FailedAccounts, ", ")
	}
	s.finishLog(ctx, syncLog, domain.SyncStatusSuccess, errText)
	s.publishCompleted(userID, result)

	logger.WithFields(logrus.Fields{
		"accounts":        result.Accounts,
		"campaigns":       result.Campaigns,
		"adsets":          result.AdSets,
		"ads":             result.Ads,
		"deleted":         result.Deleted,
		"failed_accounts": len(result.FailedAccounts),
	}).Info("sync: full sync completed")

	return result, nil
}

func (s *Service) failWrite(ctx context.Context, syncLog *domain.SyncLog, result *domain.SyncResult, err error) (*domain.SyncResult, error) {
	s.finishLog(ctx, syncLog, domain.SyncStatusFailed, err.Error())
	logrus.WithFields(logrus.Fields{
		"user_id": syncLog.UserID,
		"sync_id": syncLog.ID,
		"error":   err.Error(),
	}).Error("sync: failed to write mirror")
	return result, NewSyncError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, syncLog.UserID, err.Error())
}

// applyAccountStats busca insights e contagens em lotes. Uma conta que falha
// fica com agregados zerados sem afetar as demais.
func (s *Service) applyAccountStats(ctx context.Context, userID int, token string, accounts []*domain.AdAccount, filters *domain.InsightFilters) {
	stats := batcher.Run(ctx, accounts, s.batchOptions("insights"),
		func(ctx context.Context, account *domain.AdAccount) (accountStats, error) {
			insights, err := s.remote.GetInsights(ctx, token, []string{account.ID}, filters)
			if err != nil {
				return accountStats{}, err
			}

			counts, err := s.remote.GetAdCounts(ctx, token, []string{account.ID})
			if err != nil {
				return accountStats{}, err
			}

			insight := insights[account.ID]
			if insight == nil {
				insight = &domain.Insight{AccountID: account.ID}
			}
			s.insights.Put(domain.InsightCacheKey(userID, account.ID, filters), insight)

			return accountStats{insight: insight, counts: counts[account.ID]}, nil
		},
		func(account *domain.AdAccount, err error) accountStats {
			s.observeUpstream(userID, err)
			logrus.WithFields(logrus.Fields{
				"user_id":    userID,
				"account_id": account.ID,
				"error":      err.Error(),
			}).Warn("sync: account insights unavailable, using zero aggregates")
			return accountStats{}
		},
	)

	for i, account := range accounts {
		account.ApplyInsight(stats[i].insight)
		account.ApplyCounts(stats[i].counts)
	}
}

// fetchHierarchy busca campanhas, conjuntos e anúncios conta a conta, cada
// nível com seu próprio lote. Contas que falham num nível não seguem para o próximo.
func (s *Service) fetchHierarchy(ctx context.Context, userID int, token string, accounts []*domain.AdAccount, filters *domain.InsightFilters) []*accountFetch {
	fetches := make([]*accountFetch, len(accounts))
	for i, account := range accounts {
		fetches[i] = &accountFetch{account: account}
	}

	fail := func(level string) func(*accountFetch, error) struct{} {
		return func(f *accountFetch, err error) struct{} {
			s.observeUpstream(userID, err)
			f.err = err
			logrus.WithFields(logrus.Fields{
				"user_id":    userID,
				"account_id": f.account.ID,
				"level":      level,
				"error":      err.Error(),
			}).Warn("sync: account fetch failed, skipping account")
			return struct{}{}
		}
	}

	batcher.Run(ctx, fetches, s.batchOptions("campaigns"),
		func(ctx context.Context, f *accountFetch) (struct{}, error) {
			listing, err := s.remote.GetCampaigns(ctx, token, []string{f.account.ID}, filters)
			if err != nil {
				return struct{}{}, err
			}
			f.campaigns = listing
			return struct{}{}, nil
		}, fail("campaigns"))

	batcher.Run(ctx, pending(fetches), s.batchOptions("adsets"),
		func(ctx context.Context, f *accountFetch) (struct{}, error) {
			campaignIDs := make([]string, 0, len(f.campaigns.Items))
			for _, c := range f.campaigns.Items {
				campaignIDs = append(campaignIDs, c.ID)
			}

			if len(campaignIDs) == 0 {
				f.adSets = &domain.Listing[*domain.AdSet]{Items: []*domain.AdSet{}, Complete: true}
				return struct{}{}, nil
			}

			listing, err := s.remote.GetAdSets(ctx, token, campaignIDs, filters)
			if err != nil {
				return struct{}{}, err
			}
			f.adSets = listing
			return struct{}{}, nil
		}, fail("adsets"))

	batcher.Run(ctx, pending(fetches), s.batchOptions("ads"),
		func(ctx context.Context, f *accountFetch) (struct{}, error) {
			listing, err := s.remote.GetAdsByAccount(ctx, token, f.account.ID, filters)
			if err != nil {
				return struct{}{}, err
			}
			f.ads = listing
			return struct{}{}, nil
		}, fail("ads"))

	return fetches
}

func pending(fetches []*accountFetch) []*accountFetch {
	ok := make([]*accountFetch, 0, len(fetches))
	for _, f := range fetches {
		if f.err == nil {
			ok = append(ok, f)
		}
	}
	return ok
}

// pruneOrphans descarta filhos cujo pai não veio na mesma busca. Os ids de
// conta dos filhos são sempre os da conta buscada.
func pruneOrphans(fetches []*accountFetch) ([]*domain.Campaign, []*domain.AdSet, []*domain.Ad) {
	campaigns := make([]*domain.Campaign, 0)
	adSets := make([]*domain.AdSet, 0)
	ads := make([]*domain.Ad, 0)

	for _, f := range fetches {
		accountID := f.account.ID

		campaignIDs := make(map[string]struct{})
		if f.campaigns != nil {
			for _, c := range f.campaigns.Items {
				c.AccountID = accountID
				campaignIDs[c.ID] = struct{}{}
				campaigns = append(campaigns, c)
			}
		}

		adSetIDs := make(map[string]struct{})
		if f.adSets != nil {
			kept := make([]*domain.AdSet, 0, len(f.adSets.Items))
			for _, a := range f.adSets.Items {
				if _, ok := campaignIDs[a.CampaignID]; !ok {
					continue
				}
				a.AccountID = accountID
				adSetIDs[a.ID] = struct{}{}
				kept = append(kept, a)
			}
			f.adSets.Items = kept
			adSets = append(adSets, kept...)
		}

		if f.ads != nil {
			kept := make([]*domain.Ad, 0, len(f.ads.Items))
			for _, ad := range f.ads.Items {
				if _, ok := adSetIDs[ad.AdSetID]; !ok {
					continue
				}
				ad.AccountID = accountID
				kept = append(kept, ad)
			}
			f.ads.Items = kept
			ads = append(ads, kept...)
		}
	}

	return campaigns, adSets, ads
}

// reconcile apaga do espelho o que não veio na busca. Só roda para contas sem
// falha. Um nível só é reconciliado quando a listagem dele e a de todos os
// níveis acima foram completas: pruneOrphans descarta filhos de pais ausentes
// e eles não podem virar remoções.
func (s *Service) reconcile(ctx context.Context, userID int, fetches []*accountFetch) int {
	lockKey := fmt.Sprintf("reconcile:%d", userID)

	unlock, ok, err := s.locker.TryLock(ctx, lockKey)
	if err != nil || !ok {
		logrus.WithFields(logrus.Fields{
			"user_id": userID,
			"error":   err,
		}).Warn("sync: reconcile lock not acquired, skipping deletions")
		return 0
	}
	defer unlock()

	deleted := 0
	for _, f := range fetches {
		if f.err != nil {
			continue
		}

		logger := logrus.WithFields(logrus.Fields{
			"user_id":    userID,
			"account_id": f.account.ID,
		})

		campaignsComplete := f.campaigns.Complete
		adSetsComplete := campaignsComplete && f.adSets.Complete
		adsComplete := adSetsComplete && f.ads.Complete

		if adsComplete {
			n, err := s.repos.Ads.DeleteAdsNotIn(ctx, f.account.ID, idsOf(f.ads.Items, func(a *domain.Ad) string { return a.ID }))
			if err != nil {
				logger.WithError(err).Error("sync: failed to reconcile ads")
				continue
			}
			deleted += int(n)
			metrics.ReconciledDeletes.WithLabelValues(string(domain.EntityAd)).Add(float64(n))
		} else {
			logger.Warn("sync: incomplete ad listing, skipping ad deletions")
		}

		if adSetsComplete {
			n, err := s.repos.AdSets.DeleteAdSetsNotIn(ctx, f.account.ID, idsOf(f.adSets.Items, func(a *domain.AdSet) string { return a.ID }))
			if err != nil {
				logger.WithError(err).Error("sync: failed to reconcile ad sets")
				continue
			}
			deleted += int(n)
			metrics.ReconciledDeletes.WithLabelValues(string(domain.EntityAdSet)).Add(float64(n))
		} else {
			logger.Warn("sync: incomplete ad set listing, skipping ad set deletions")
		}

		if campaignsComplete {
			n, err := s.repos.Campaigns.DeleteCampaignsNotIn(ctx, f.account.ID, idsOf(f.campaigns.Items, func(c *domain.Campaign) string { return c.ID }))
			if err != nil {
				logger.WithError(err).Error("sync: failed to reconcile campaigns")
				continue
			}
			deleted += int(n)
			metrics.ReconciledDeletes.WithLabelValues(string(domain.EntityCampaign)).Add(float64(n))
		} else {
			logger.Warn("sync: incomplete campaign listing, skipping campaign deletions")
		}
	}

	return deleted
}

func idsOf[T any](items []T, id func(T) string) []string {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, id(item))
	}
	return ids
}

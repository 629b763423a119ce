package mirroring

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-mirror-api/infrastructure/integrator/meta"
	"github.com/vfg2006/ads-mirror-api/infrastructure/repository"
	"github.com/vfg2006/ads-mirror-api/internal/domain"
	"github.com/vfg2006/ads-mirror-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-mirror-api/pkg/apiErrors"
	"github.com/vfg2006/ads-mirror-api/pkg/cache"
)

// Reader expõe o espelho local. Nenhuma leitura chama a plataforma, exceto
// insights e miniaturas ausentes do cache.
type Reader interface {
	ListAccounts(ctx context.Context, userID int) (*domain.CachedRead, error)
	ListCampaigns(ctx context.Context, userID int, accountID string) (*domain.CachedRead, error)
	ListAdSets(ctx context.Context, userID int, campaignID string) (*domain.CachedRead, error)
	ListAds(ctx context.Context, userID int, adSetID string) (*domain.CachedRead, error)
	GetInsights(ctx context.Context, userID int, accountID string, filters *domain.InsightFilters) (*domain.CachedRead, error)
	GetThumbnail(ctx context.Context, userID int, adID string) (*Asset, error)
	Snapshot(ctx context.Context, userID int) (domain.Snapshot, error)
}

type Asset struct {
	Data        []byte
	ContentType string
	Cached      bool
}

type Repositories struct {
	Accounts  repository.AccountRepository
	Campaigns repository.CampaignRepository
	AdSets    repository.AdSetRepository
	Ads       repository.AdRepository
	SyncLogs  repository.SyncLogRepository
}

type Service struct {
	repos    Repositories
	remote   meta.RemoteClient
	tokens   authenticating.UpstreamTokenResolver
	insights *cache.TTLCache[*domain.Insight]
	assets   *cache.TTLCache[[]byte]
}

func NewService(
	repos Repositories,
	remote meta.RemoteClient,
	tokens authenticating.UpstreamTokenResolver,
	insights *cache.TTLCache[*domain.Insight],
	assets *cache.TTLCache[[]byte],
) *Service {
	return &Service{
		repos:    repos,
		remote:   remote,
		tokens:   tokens,
		insights: insights,
		assets:   assets,
	}
}

// cachedRead anexa o estado da última sincronização. Lista vazia com
// last_sync_status SUCCESS significa que não há nada na plataforma.
func (s *Service) cachedRead(ctx context.Context, userID int, data any, cached bool) (*domain.CachedRead, error) {
	syncLog, err := s.repos.SyncLogs.GetLatestSyncLog(ctx, userID)
	if err != nil {
		return nil, newDatabaseError("", err)
	}

	read := &domain.CachedRead{
		Data:   data,
		Cached: cached,
	}

	if syncLog != nil {
		read.LastSyncedAt = syncLog.CompletedAt
		read.LastSyncStatus = syncLog.Status
	}

	return read, nil
}

func (s *Service) ListAccounts(ctx context.Context, userID int) (*domain.CachedRead, error) {
	accounts, err := s.repos.Accounts.ListAccountsByUser(ctx, userID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"user_id": userID,
			"error":   err.Error(),
		}).Error("mirror: failed to list accounts")
		return nil, newDatabaseError("", err)
	}

	return s.cachedRead(ctx, userID, accounts, true)
}

func (s *Service) ListCampaigns(ctx context.Context, userID int, accountID string) (*domain.CachedRead, error) {
	if err := s.ensureAccount(ctx, userID, accountID); err != nil {
		return nil, err
	}

	campaigns, err := s.repos.Campaigns.ListCampaignsByAccounts(ctx, []string{accountID})
	if err != nil {
		return nil, newDatabaseError(accountID, err)
	}

	return s.cachedRead(ctx, userID, campaigns, true)
}

func (s *Service) ListAdSets(ctx context.Context, userID int, campaignID string) (*domain.CachedRead, error) {
	campaigns, err := s.repos.Campaigns.GetCampaignsByIDs(ctx, userID, []string{campaignID})
	if err != nil {
		return nil, newDatabaseError(campaignID, err)
	}
	if len(campaigns) == 0 {
		return nil, newNotFoundError(campaignID, "campanha não encontrada")
	}

	adSets, err := s.repos.AdSets.ListAdSetsByCampaign(ctx, campaignID)
	if err != nil {
		return nil, newDatabaseError(campaignID, err)
	}

	return s.cachedRead(ctx, userID, adSets, true)
}

func (s *Service) ListAds(ctx context.Context, userID int, adSetID string) (*domain.CachedRead, error) {
	adSets, err := s.repos.AdSets.GetAdSetsByIDs(ctx, userID, []string{adSetID})
	if err != nil {
		return nil, newDatabaseError(adSetID, err)
	}
	if len(adSets) == 0 {
		return nil, newNotFoundError(adSetID, "conjunto de anúncios não encontrado")
	}

	ads, err := s.repos.Ads.ListAdsByAdSet(ctx, adSetID)
	if err != nil {
		return nil, newDatabaseError(adSetID, err)
	}

	return s.cachedRead(ctx, userID, ads, true)
}

// GetInsights lê do cache de insights e, na falta, busca na plataforma e
// guarda o resultado. Conta sem dados no período vira um insight zerado.
func (s *Service) GetInsights(ctx context.Context, userID int, accountID string, filters *domain.InsightFilters) (*domain.CachedRead, error) {
	if err := filters.Validate(); err != nil {
		return nil, NewMirrorError(ErrInvalidRequest, apiErrors.ErrInvalidRequest, accountID, err.Error())
	}

	if err := s.ensureAccount(ctx, userID, accountID); err != nil {
		return nil, err
	}

	key := domain.InsightCacheKey(userID, accountID, filters)
	if insight, ok := s.insights.Get(key); ok {
		return s.cachedRead(ctx, userID, insight, true)
	}

	token, err := s.tokens.Resolve(ctx, userID)
	if err != nil {
		return nil, NewMirrorError(err, apiErrors.CodeForDomainError(err), accountID, "não foi possível obter o token da plataforma")
	}

	insights, err := s.remote.GetInsights(ctx, token, []string{accountID}, filters)
	if err != nil {
		if apiErrors.CodeForDomainError(err) == apiErrors.ErrMissingUpstreamToken {
			s.tokens.Invalidate(userID)
		}
		logrus.WithFields(logrus.Fields{
			"user_id":    userID,
			"account_id": accountID,
			"error":      err.Error(),
		}).Warn("mirror: insight read-through failed")
		return nil, NewMirrorError(err, apiErrors.CodeForDomainError(err), accountID, "falha ao buscar insights")
	}

	insight := insights[accountID]
	if insight == nil {
		insight = &domain.Insight{AccountID: accountID}
	}
	s.insights.Put(key, insight)

	return s.cachedRead(ctx, userID, insight, false)
}

// GetThumbnail serve a miniatura do anúncio pelo cache de assets, indexado
// pela URL para que uma nova sincronização com outra URL busque de novo.
func (s *Service) GetThumbnail(ctx context.Context, userID int, adID string) (*Asset, error) {
	ad, err := s.repos.Ads.GetAd(ctx, userID, adID)
	if err != nil {
		return nil, newDatabaseError(adID, err)
	}
	if ad == nil {
		return nil, newNotFoundError(adID, "anúncio não encontrado")
	}
	if ad.ThumbnailURL == "" {
		return nil, NewMirrorError(ErrNoThumbnail, apiErrors.ErrResourceNotFound, adID, "anúncio sem miniatura")
	}

	if entry, ok := s.assets.GetEntry(ad.ThumbnailURL); ok {
		return &Asset{Data: entry.Value, ContentType: entry.ContentType, Cached: true}, nil
	}

	data, contentType, err := s.remote.FetchAsset(ctx, ad.ThumbnailURL)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"ad_id": adID,
			"error": err.Error(),
		}).Warn("mirror: failed to download thumbnail")
		return nil, NewMirrorError(err, apiErrors.CodeForDomainError(err), adID, "falha ao baixar miniatura")
	}

	s.assets.PutWithContentType(ad.ThumbnailURL, data, contentType)

	return &Asset{Data: data, ContentType: contentType}, nil
}

func (s *Service) ensureAccount(ctx context.Context, userID int, accountID string) error {
	account, err := s.repos.Accounts.GetAccount(ctx, userID, accountID)
	if err != nil {
		return newDatabaseError(accountID, err)
	}
	if account == nil {
		return newNotFoundError(accountID, "conta não encontrada")
	}
	return nil
}

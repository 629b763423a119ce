package syncing

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-mirror-api/infrastructure/integrator/meta"
	"github.com/vfg2006/ads-mirror-api/infrastructure/lock"
	"github.com/vfg2006/ads-mirror-api/infrastructure/repository"
	"github.com/vfg2006/ads-mirror-api/internal/config"
	"github.com/vfg2006/ads-mirror-api/internal/domain"
	"github.com/vfg2006/ads-mirror-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-mirror-api/pkg/apiErrors"
	"github.com/vfg2006/ads-mirror-api/pkg/batcher"
	"github.com/vfg2006/ads-mirror-api/pkg/cache"
	"github.com/vfg2006/ads-mirror-api/pkg/eventbus"
	"github.com/vfg2006/ads-mirror-api/pkg/metrics"
	"github.com/vfg2006/ads-mirror-api/pkg/utils"
	"golang.org/x/sync/singleflight"
)

type Syncer interface {
	FullSync(ctx context.Context, userID int, filters *domain.InsightFilters) (*domain.SyncResult, error)
	SyncCampaigns(ctx context.Context, userID int, accountIDs []string, filters *domain.InsightFilters) (*domain.SyncResult, error)
	SyncAdSets(ctx context.Context, userID int, campaignIDs []string, filters *domain.InsightFilters) (*domain.SyncResult, error)
	SyncAds(ctx context.Context, userID int, adSetIDs []string, filters *domain.InsightFilters) (*domain.SyncResult, error)
	SyncStatus(ctx context.Context, userID int) (*domain.SyncLog, error)
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
	locker   lock.Locker
	bus      eventbus.Publisher
	batching config.Batching
	group    singleflight.Group
	now      func() time.Time
}

func NewService(
	repos Repositories,
	remote meta.RemoteClient,
	tokens authenticating.UpstreamTokenResolver,
	insights *cache.TTLCache[*domain.Insight],
	locker lock.Locker,
	bus eventbus.Publisher,
	cfg *config.Config,
) *Service {
	return &Service{
		repos:    repos,
		remote:   remote,
		tokens:   tokens,
		insights: insights,
		locker:   locker,
		bus:      bus,
		batching: cfg.Batching,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) batchOptions(name string) batcher.Options {
	switch name {
	case "insights":
		return batcher.Options{Name: name, BatchSize: s.batching.InsightsBatchSize, Delay: s.batching.InsightsDelay}
	case "campaigns":
		return batcher.Options{Name: name, BatchSize: s.batching.CampaignsBatchSize, Delay: s.batching.CampaignsDelay}
	case "adsets":
		return batcher.Options{Name: name, BatchSize: s.batching.AdSetsBatchSize, Delay: s.batching.AdSetsDelay}
	default:
		return batcher.Options{Name: name, BatchSize: s.batching.AdsBatchSize, Delay: s.batching.AdsDelay}
	}
}

func (s *Service) resolveToken(ctx context.Context, userID int) (string, error) {
	token, err := s.tokens.Resolve(ctx, userID)
	if err != nil {
		return "", newDomainSyncError(err, userID, "não foi possível obter o token da plataforma")
	}
	return token, nil
}

// observeUpstream descarta o token em cache quando a plataforma o rejeita
func (s *Service) observeUpstream(userID int, err error) {
	if errors.Is(err, domain.ErrUnauthorized) {
		s.tokens.Invalidate(userID)
	}
}

func (s *Service) startLog(ctx context.Context, userID int, syncType domain.SyncType) (*domain.SyncLog, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewSyncError(err, apiErrors.ErrInternalServer, userID, "erro ao gerar id da sincronização")
	}

	syncLog := &domain.SyncLog{
		ID:        id,
		UserID:    userID,
		Type:      syncType,
		Status:    domain.SyncStatusInProgress,
		StartedAt: s.now(),
	}

	if err := s.repos.SyncLogs.CreateSyncLog(ctx, syncLog); err != nil {
		return nil, NewSyncError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, userID, err.Error())
	}

	return syncLog, nil
}

// finishLog grava o estado final. Uma falha aqui só é registrada: as
// entidades já foram gravadas e a próxima sincronização recria o histórico.
func (s *Service) finishLog(ctx context.Context, syncLog *domain.SyncLog, status domain.SyncStatus, errText string) {
	completedAt := s.now()
	syncLog.Status = status
	syncLog.Error = errText
	syncLog.CompletedAt = &completedAt

	if err := s.repos.SyncLogs.CompleteSyncLog(ctx, syncLog); err != nil {
		logrus.WithFields(logrus.Fields{
			"sync_id": syncLog.ID,
			"user_id": syncLog.UserID,
			"error":   err.Error(),
		}).Error("sync: failed to complete sync log")
	}

	metrics.SyncRuns.WithLabelValues(string(syncLog.Type), string(status)).Inc()
	metrics.SyncDuration.WithLabelValues(string(syncLog.Type)).Observe(completedAt.Sub(syncLog.StartedAt).Seconds())
}

func (s *Service) publishCompleted(userID int, result *domain.SyncResult) {
	s.bus.Publish(domain.UserKey(userID), domain.Event{
		Type: domain.EventSyncCompleted,
		Data: result,
	})
}

func (s *Service) SyncStatus(ctx context.Context, userID int) (*domain.SyncLog, error) {
	syncLog, err := s.repos.SyncLogs.GetLatestSyncLog(ctx, userID)
	if err != nil {
		return nil, NewSyncError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, userID, err.Error())
	}

	if syncLog == nil {
		return nil, NewSyncError(fmt.Errorf("%w: %w", ErrNoSyncFound, domain.ErrNotFound), apiErrors.ErrResourceNotFound, userID, "nenhuma sincronização encontrada")
	}

	return syncLog, nil
}

// singleflightKey separa execuções por intervalo: os insights em cache dependem dele
func singleflightKey(userID int, filters *domain.InsightFilters) string {
	return strconv.Itoa(userID) + "|" + filters.CacheKey()
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}

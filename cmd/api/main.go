package main

import (
	"context"
	"net/http"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-mirror-api/infrastructure/broker"
	"github.com/vfg2006/ads-mirror-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-mirror-api/infrastructure/integrator/meta"
	"github.com/vfg2006/ads-mirror-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-mirror-api/infrastructure/lock"
	"github.com/vfg2006/ads-mirror-api/infrastructure/migration"
	"github.com/vfg2006/ads-mirror-api/infrastructure/repository"
	"github.com/vfg2006/ads-mirror-api/internal/api"
	"github.com/vfg2006/ads-mirror-api/internal/config"
	"github.com/vfg2006/ads-mirror-api/internal/domain"
	"github.com/vfg2006/ads-mirror-api/internal/scheduler"
	"github.com/vfg2006/ads-mirror-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-mirror-api/internal/usecases/messaging"
	"github.com/vfg2006/ads-mirror-api/internal/usecases/mirroring"
	"github.com/vfg2006/ads-mirror-api/internal/usecases/syncing"
	"github.com/vfg2006/ads-mirror-api/pkg/cache"
	"github.com/vfg2006/ads-mirror-api/pkg/eventbus"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if cfg.Database.AutoMigrate {
		if err := migration.Run(ctx, pgConn); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migrations")
		}
	}

	accountRepo := repository.NewAccountRepository(pgConn)
	campaignRepo := repository.NewCampaignRepository(pgConn)
	adSetRepo := repository.NewAdSetRepository(pgConn)
	adRepo := repository.NewAdRepository(pgConn)
	syncLogRepo := repository.NewSyncLogRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)
	conversationRepo := repository.NewConversationRepository(pgConn)

	httpClient := &http.Client{Timeout: cfg.Meta.Timeout}
	metaClient := metaclient.NewClient(cfg.Meta, httpClient)
	metaIntegrator := meta.New(cfg, metaClient)

	insightCache := cache.New[*domain.Insight]("insights", cfg.Cache.InsightsTTL, cfg.Cache.InsightsCapacity)
	tokenCache := cache.New[string]("tokens", cfg.Cache.TokensTTL, cfg.Cache.TokensCapacity)
	assetCache := cache.New[[]byte]("assets", cfg.Cache.AssetsTTL, cfg.Cache.AssetsCapacity)
	pageCache := cache.New[[]string]("pages", cfg.Cache.PagesTTL, cfg.Cache.PagesCapacity)

	logrus.WithFields(logrus.Fields{
		"insights_ttl": insightCache.TTL().String(),
		"tokens_ttl":   tokenCache.TTL().String(),
		"assets_ttl":   assetCache.TTL().String(),
		"pages_ttl":    pageCache.TTL().String(),
	}).Info("Caches configurados")

	tokens := authenticating.NewUpstreamTokenResolver(userRepo, tokenCache)
	authenticator := authenticating.NewService(userRepo, metaIntegrator, tokens, cfg)

	locker, closeLocker := newLocker(ctx, cfg)
	defer closeLocker()

	bus := eventbus.New()

	// o log com cursor atende /v1/events mesmo quando o stream usa push
	pollNotifier := eventbus.NewPollNotifier(bus, cfg.Stream.PollLogSize, cfg.Stream.PollInterval)
	defer pollNotifier.Close()

	var notifier eventbus.ChangeNotifier = eventbus.NewPushNotifier(bus, cfg.Stream.BufferSize)
	if cfg.Stream.Strategy == config.StreamStrategyPoll {
		notifier = pollNotifier
	}

	if cfg.RabbitMQ.Enabled {
		relay := startRelay(cfg.RabbitMQ, bus)
		if relay != nil {
			defer relay.Close()
		}
	}

	syncService := syncing.NewService(
		syncing.Repositories{
			Accounts:  accountRepo,
			Campaigns: campaignRepo,
			AdSets:    adSetRepo,
			Ads:       adRepo,
			SyncLogs:  syncLogRepo,
		},
		metaIntegrator,
		tokens,
		insightCache,
		locker,
		bus,
		cfg,
	)

	mirrorService := mirroring.NewService(
		mirroring.Repositories{
			Accounts:  accountRepo,
			Campaigns: campaignRepo,
			AdSets:    adSetRepo,
			Ads:       adRepo,
			SyncLogs:  syncLogRepo,
		},
		metaIntegrator,
		tokens,
		insightCache,
		assetCache,
	)

	messagingService := messaging.NewService(conversationRepo, metaIntegrator, tokens, pageCache, bus, cfg)

	var pollingLocker lock.Locker
	if cfg.Polling.DistributedLock {
		pollingLocker = locker
	}

	pollingEngine := scheduler.NewPollingEngine(userRepo, syncService, mirrorService, bus, pollingLocker, cfg)
	if cfg.Polling.Enabled {
		if _, err := pollingEngine.Start(ctx); err != nil {
			logrus.WithError(err).Error("Erro ao iniciar o motor de polling")
		} else {
			logrus.Info("Motor de polling iniciado com sucesso")
		}
	}

	server, err := api.New(
		cfg,
		authenticator,
		syncService,
		mirrorService,
		messagingService,
		pollingEngine,
		notifier,
		pollNotifier,
		pgConn,
	)
	if err != nil {
		logrus.Fatal(err)
	}
	server.OnShutdown(func() { pollingEngine.Stop() })

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

// newLocker usa advisory locks do Postgres quando o lock distribuído está
// ligado; se o pool não subir, cai para o lock em memória
func newLocker(ctx context.Context, cfg *config.Config) (lock.Locker, func()) {
	if !cfg.Lock.Distributed && !cfg.Polling.DistributedLock {
		return lock.NewLocalLocker(), func() {}
	}

	pgLocker, err := lock.NewPostgresLocker(ctx, cfg.Database.DSN)
	if err != nil {
		logrus.WithError(err).Warn("Lock distribuído indisponível, usando lock local")
		return lock.NewLocalLocker(), func() {}
	}

	logrus.Info("Lock distribuído via PostgreSQL ativado")
	return pgLocker, pgLocker.Close
}

func startRelay(cfg config.RabbitMQ, bus *eventbus.Bus) *broker.Relay {
	relay, err := broker.NewRelay(cfg.URL, cfg.Exchange, bus)
	if err != nil {
		logrus.WithError(err).Error("Erro ao conectar ao RabbitMQ, eventos ficam restritos a esta instância")
		return nil
	}

	if err := relay.Start(); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o relay do RabbitMQ")
		_ = relay.Close()
		return nil
	}

	logrus.WithField("exchange", cfg.Exchange).Info("Relay do RabbitMQ iniciado")
	return relay
}

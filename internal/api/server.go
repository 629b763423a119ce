package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-mirror-api/internal/api/handler"
	"github.com/vfg2006/ads-mirror-api/internal/api/handler/router"
	"github.com/vfg2006/ads-mirror-api/internal/config"
	"github.com/vfg2006/ads-mirror-api/internal/scheduler"
	"github.com/vfg2006/ads-mirror-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-mirror-api/internal/usecases/messaging"
	"github.com/vfg2006/ads-mirror-api/internal/usecases/mirroring"
	"github.com/vfg2006/ads-mirror-api/internal/usecases/syncing"
	"github.com/vfg2006/ads-mirror-api/pkg/eventbus"
	"github.com/vfg2006/ads-mirror-api/pkg/middleware"
	"github.com/vfg2006/ads-mirror-api/pkg/stream"
)

type Server struct {
	httpServer      *http.Server
	shutdownTimeout time.Duration
	onShutdown      []func()
}

func New(
	config *config.Config,
	authenticator authenticating.Authenticator,
	syncService syncing.Syncer,
	mirrorService mirroring.Reader,
	messagingService messaging.Messenger,
	pollingEngine scheduler.Poller,
	notifier eventbus.ChangeNotifier,
	eventLog handler.EventLog,
	db handler.Pinger,
) (*Server, error) {
	if authenticator == nil {
		return nil, errors.New("authenticator is required")
	}

	streamOpts := stream.Options{
		KeepaliveInterval: config.Stream.KeepaliveInterval,
		BufferSize:        config.Stream.BufferSize,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(db)...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.Webhook(messagingService)...),
		router.WithRoutes(handler.Sync(syncService)...),
		router.WithRoutes(handler.Polling(pollingEngine)...),
		router.WithRoutes(handler.Mirror(mirrorService)...),
		router.WithRoutes(handler.Messaging(messagingService)...),
		router.WithRoutes(handler.Events(notifier, eventLog, messagingService, streamOpts)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.AllowedOrigins),
		middleware.AuthMiddleware(authenticator),
	}

	shutdownTimeout := config.Server.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = 15 * time.Second
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           alice.New(middlewares...).Then(rt),
			ReadHeaderTimeout: 2 * time.Second,
		},
		shutdownTimeout: shutdownTimeout,
	}

	// conexões SSE seguem abertas após o Shutdown; cancelar o contexto base
	// faz os handlers de stream retornarem
	baseCtx, cancel := context.WithCancel(context.Background())
	srv.httpServer.BaseContext = func(_ net.Listener) context.Context { return baseCtx }
	srv.httpServer.RegisterOnShutdown(cancel)

	return srv, nil
}

// OnShutdown registra limpezas executadas após o servidor HTTP parar
func (s *Server) OnShutdown(fn func()) {
	s.onShutdown = append(s.onShutdown, fn)
}

func (s *Server) Run(ctx context.Context) error {
	serveErr := make(chan error, 1)
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
			serveErr <- err
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	case err := <-serveErr:
		s.cleanup()
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": s.shutdownTimeout.String(),
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	s.cleanup()
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}

func (s *Server) cleanup() {
	for i := len(s.onShutdown) - 1; i >= 0; i-- {
		s.onShutdown[i]()
	}
	s.onShutdown = nil
}

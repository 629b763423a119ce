package handler

import (
	"net/http"

	"github.com/vfg2006/ads-mirror-api/internal/api/handler/router"
	"github.com/vfg2006/ads-mirror-api/internal/scheduler"
	"github.com/vfg2006/ads-mirror-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-mirror-api/internal/usecases/messaging"
	"github.com/vfg2006/ads-mirror-api/internal/usecases/mirroring"
	"github.com/vfg2006/ads-mirror-api/internal/usecases/syncing"
	"github.com/vfg2006/ads-mirror-api/pkg/eventbus"
	"github.com/vfg2006/ads-mirror-api/pkg/metrics"
	"github.com/vfg2006/ads-mirror-api/pkg/middleware"
	"github.com/vfg2006/ads-mirror-api/pkg/stream"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metrics.Handler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me/upstream-token",
			Method:      http.MethodPost,
			Handler:     LinkUpstreamToken(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me/upstream-token",
			Method:      http.MethodDelete,
			Handler:     UnlinkUpstreamToken(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Webhook(service messaging.Messenger) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/webhook",
			Method:  http.MethodGet,
			Handler: VerifyWebhook(service),
		},
		{
			Path:    "/v1/webhook",
			Method:  http.MethodPost,
			Handler: ReceiveWebhook(service),
		},
	}
}

func Sync(service syncing.Syncer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/sync/full",
			Method:      http.MethodPost,
			Handler:     FullSync(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/sync/campaigns",
			Method:      http.MethodPost,
			Handler:     IncrementalSync("campanhas", service.SyncCampaigns),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/sync/adsets",
			Method:      http.MethodPost,
			Handler:     IncrementalSync("conjuntos de anúncios", service.SyncAdSets),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/sync/ads",
			Method:      http.MethodPost,
			Handler:     IncrementalSync("anúncios", service.SyncAds),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/sync/status",
			Method:      http.MethodGet,
			Handler:     SyncStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Polling(engine scheduler.Poller) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/poll/trigger",
			Method:      http.MethodPost,
			Handler:     TriggerPoll(engine),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/poll/start",
			Method:      http.MethodPost,
			Handler:     StartPolling(engine),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/poll/stop",
			Method:      http.MethodPost,
			Handler:     StopPolling(engine),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/poll/status",
			Method:      http.MethodGet,
			Handler:     GetPollingStatus(engine),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func Mirror(service mirroring.Reader) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/accounts",
			Method:      http.MethodGet,
			Handler:     ListAccounts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/accounts/:id/campaigns",
			Method:      http.MethodGet,
			Handler:     ListChildren("campanhas", service.ListCampaigns),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/accounts/:id/insights",
			Method:      http.MethodGet,
			Handler:     GetAccountInsights(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaigns/:id/adsets",
			Method:      http.MethodGet,
			Handler:     ListChildren("conjuntos de anúncios", service.ListAdSets),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/adsets/:id/ads",
			Method:      http.MethodGet,
			Handler:     ListChildren("anúncios", service.ListAds),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/ads/:id/thumbnail",
			Method:      http.MethodGet,
			Handler:     GetAdThumbnail(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Messaging(service messaging.Messenger) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/pages/:id/conversations",
			Method:      http.MethodGet,
			Handler:     ListConversations(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/conversations/:id/messages",
			Method:      http.MethodGet,
			Handler:     ListMessages(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/conversations/:id/read",
			Method:      http.MethodPost,
			Handler:     MarkConversationRead(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Events(notifier eventbus.ChangeNotifier, events EventLog, pages PageAuthorizer, opts stream.Options) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/stream",
			Method:      http.MethodGet,
			Handler:     Stream(notifier, pages, opts),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/events",
			Method:      http.MethodGet,
			Handler:     ListEvents(events, pages),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

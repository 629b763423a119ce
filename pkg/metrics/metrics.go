package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	CacheRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mirror_cache_requests_total",
		Help: "Cache lookups by cache name and result (hit, miss, expired)",
	}, []string{"cache", "result"})

	CacheEvictions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mirror_cache_evictions_total",
		Help: "Entries evicted because the cache reached its capacity",
	}, []string{"cache"})

	CacheSize = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "mirror_cache_entries",
		Help: "Current number of entries held by each cache",
	}, []string{"cache"})

	BatcherBatches = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mirror_batcher_batches_total",
		Help: "Batches issued by each rate limited batcher",
	}, []string{"batcher"})

	BatcherItemFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mirror_batcher_item_failures_total",
		Help: "Items that fell back because their operation failed",
	}, []string{"batcher"})

	SyncRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mirror_sync_runs_total",
		Help: "Synchronizations by type and final status",
	}, []string{"type", "status"})

	SyncDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "mirror_sync_duration_seconds",
		Help:    "Time spent in each synchronization",
		Buckets: prometheus.ExponentialBuckets(0.5, 2, 10),
	}, []string{"type"})

	ReconciledDeletes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mirror_reconciled_deletes_total",
		Help: "Local rows deleted because they were absent from a complete fetch",
	}, []string{"kind"})

	PollTicks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mirror_poll_ticks_total",
		Help: "Polling ticks by outcome (completed, skipped)",
	}, []string{"outcome"})

	ChangeEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mirror_change_events_total",
		Help: "Change events emitted by the polling engine",
	}, []string{"kind"})

	WebhookMessages = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mirror_webhook_messages_total",
		Help: "Webhook messages by result (created, duplicate, skipped, failed)",
	}, []string{"result"})

	BusPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mirror_bus_published_total",
		Help: "Events published on the in-process bus",
	}, []string{"type"})

	BusHandlerFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mirror_bus_handler_failures_total",
		Help: "Subscriber handlers that returned an error or panicked",
	})

	StreamConnections = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "mirror_stream_connections",
		Help: "Open streaming connections",
	})

	StreamDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mirror_stream_dropped_total",
		Help: "Events dropped because a listener buffer was full",
	})

	BrokerHealth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "mirror_broker_health_status",
		Help: "1 when the RabbitMQ relay is connected, 0 otherwise",
	})

	BrokerMessages = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mirror_broker_messages_total",
		Help: "Relay traffic by direction and status",
	}, []string{"direction", "status"})

	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mirror_http_requests_total",
		Help: "HTTP requests by method and status class",
	}, []string{"method", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "mirror_http_request_duration_seconds",
		Help:    "HTTP request latency by method",
		Buckets: prometheus.DefBuckets,
	}, []string{"method"})
)

// Handler expõe o registry padrão no formato do Prometheus
func Handler() http.Handler {
	return promhttp.Handler()
}

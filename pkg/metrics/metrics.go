package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Sheet API call latency (milliseconds).
	SheetCallLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sheet_call_latency_ms",
			Help:    "Apps Script sheet API call latency in milliseconds",
			Buckets: prometheus.ExponentialBuckets(50, 2, 10), // 50ms to ~50s
		},
		[]string{"action", "status"},
	)

	// HTTP request latency (seconds).
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	// Database query latency (seconds).
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		},
		[]string{"operation", "table"},
	)

	// Project save counter.
	ProjectSaveCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "project_save_count",
			Help: "Total number of project saves pushed to the sheet",
		},
		[]string{"status"}, // status: success, failed
	)

	// Cache refresh counter.
	CacheRefreshCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_refresh_count",
			Help: "Total number of project cache refreshes",
		},
		[]string{"source"}, // source: sheet, fallback
	)
)

func RecordSheetCall(action, status string, duration time.Duration) {
	SheetCallLatency.WithLabelValues(action, status).Observe(float64(duration.Milliseconds()))
}

func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

func RecordDBQueryDuration(operation, table string, duration time.Duration) {
	DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
}

func IncrementProjectSave(status string) {
	ProjectSaveCount.WithLabelValues(status).Inc()
}

func IncrementCacheRefresh(source string) {
	CacheRefreshCount.WithLabelValues(source).Inc()
}

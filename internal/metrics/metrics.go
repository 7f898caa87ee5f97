// Package metrics provides Prometheus metrics for observability.
// Metrics are organized by domain: HTTP requests, submissions, description
// assist and listing storage.
package metrics

import (
	"context"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/robfig/cron/v3"
)

const (
	namespace = "listing_marketplace"
)

var (
	// HTTP metrics - track request volume and latency
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by method, path, and status code",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being processed",
		},
	)

	// Submission metrics
	SubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "submissions",
			Name:      "total",
			Help:      "Total number of listing submissions by result",
		},
		[]string{"result"},
	)

	// Assist metrics - track calls to the text generation endpoint
	EnhancementsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "assist",
			Name:      "enhancements_total",
			Help:      "Total number of description enhancements by result",
		},
		[]string{"result"},
	)

	EnhancementDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "assist",
			Name:      "enhancement_duration_seconds",
			Help:      "Text generation call duration in seconds",
			Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10, 30, 60},
		},
	)

	AssistTasksInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "assist",
			Name:      "tasks_in_flight",
			Help:      "Number of asynchronous enhancement tasks not yet finished",
		},
	)

	// Storage metrics - track operations against the key/value backend
	StorageOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "storage",
			Name:      "operations_total",
			Help:      "Total number of storage operations by backend, operation, and result",
		},
		[]string{"backend", "operation", "result"},
	)

	StorageOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "storage",
			Name:      "operation_duration_seconds",
			Help:      "Storage operation duration in seconds",
			Buckets:   []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"backend", "operation"},
	)

	StorageReadErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "storage",
			Name:      "read_errors_total",
			Help:      "Reads recovered as an empty collection, by reason",
		},
		[]string{"reason"},
	)

	ListingsStored = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "storage",
			Name:      "listings",
			Help:      "Number of listings in the persisted collection",
		},
	)

	StoreBytes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "storage",
			Name:      "bytes",
			Help:      "Size of the persisted collection in bytes",
		},
	)
)

// ObserveSubmission records the outcome of a submission.
func ObserveSubmission(result string) {
	SubmissionsTotal.WithLabelValues(result).Inc()
}

// ObserveEnhancement records a finished text generation call.
func ObserveEnhancement(result string, durationSeconds float64) {
	EnhancementsTotal.WithLabelValues(result).Inc()
	EnhancementDuration.Observe(durationSeconds)
}

// ObserveStorageOperation records a storage call against a backend.
func ObserveStorageOperation(backend, operation string, err error, durationSeconds float64) {
	result := "success"
	if err != nil {
		result = "error"
	}
	StorageOperationsTotal.WithLabelValues(backend, operation, result).Inc()
	StorageOperationDuration.WithLabelValues(backend, operation).Observe(durationSeconds)
}

// StoreStats is a snapshot of the persisted collection.
type StoreStats struct {
	Listings int
	Bytes    int
}

// StoreStatsProvider is an interface for reading store statistics.
// This allows the collector to be tested without a real backend.
type StoreStatsProvider interface {
	Stats(ctx context.Context) (StoreStats, error)
}

// StoreStatsCollector refreshes the storage gauges on a cron schedule.
type StoreStatsCollector struct {
	provider StoreStatsProvider
	timeout  time.Duration
}

// NewStoreStatsCollector creates a new store stats collector.
func NewStoreStatsCollector(provider StoreStatsProvider, timeout time.Duration) *StoreStatsCollector {
	return &StoreStatsCollector{provider: provider, timeout: timeout}
}

// Schedule registers the collector on the scheduler and collects once immediately.
func (c *StoreStatsCollector) Schedule(sched *cron.Cron, spec string) (cron.EntryID, error) {
	id, err := sched.AddFunc(spec, c.Collect)
	if err != nil {
		return 0, err
	}
	c.Collect()
	return id, nil
}

// Collect reads the current stats and updates the gauges.
func (c *StoreStatsCollector) Collect() {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	stats, err := c.provider.Stats(ctx)
	if err != nil {
		slog.Warn("Failed to collect store stats", slog.String("error", err.Error()))
		return
	}
	ListingsStored.Set(float64(stats.Listings))
	StoreBytes.Set(float64(stats.Bytes))
}

// Timer is a helper for measuring operation duration
type Timer struct {
	start time.Time
}

// NewTimer creates a new timer starting now
func NewTimer() *Timer {
	return &Timer{start: time.Now()}
}

// Seconds returns the elapsed time since the timer was created
func (t *Timer) Seconds() float64 {
	return time.Since(t.start).Seconds()
}

// ObserveDuration records the elapsed time since the timer was created
func (t *Timer) ObserveDuration(observer prometheus.Observer) {
	observer.Observe(t.Seconds())
}

// Package metrics collects Prometheus metrics for the draft store and exposes them for scraping.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/draftstore-backend/internal/domain"
)

const namespace = "draftstore"

// Collector records draft and HTTP metrics.
type Collector struct {
	draftsSaved     *prometheus.CounterVec
	draftsDeleted   prometheus.Counter
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
	rateLimitReject prometheus.Counter
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		draftsSaved: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "drafts_saved_total",
			Help:      "Drafts written, by outcome (created or updated).",
		}, []string{"status"}),
		draftsDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "drafts_deleted_total",
			Help:      "Drafts removed by single, bulk and stale deletes.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route pattern and status code.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		rateLimitReject: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limit_rejected_total",
			Help:      "Requests rejected by the per-client rate limiter.",
		}),
	}

	reg.MustRegister(
		c.draftsSaved,
		c.draftsDeleted,
		c.httpRequests,
		c.httpDuration,
		c.rateLimitReject,
	)

	return c
}

// DraftSaved counts one successful upsert or update.
func (c *Collector) DraftSaved(status domain.SaveStatus) {
	c.draftsSaved.WithLabelValues(status.String()).Inc()
}

// DraftsDeleted counts removed drafts.
func (c *Collector) DraftsDeleted(n int64) {
	if n > 0 {
		c.draftsDeleted.Add(float64(n))
	}
}

// ObserveHTTP records one finished request. route is the matched mux pattern,
// never the raw path, to keep label cardinality bounded.
func (c *Collector) ObserveHTTP(method, route string, status int, duration time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RateLimited counts one rejected request.
func (c *Collector) RateLimited() {
	c.rateLimitReject.Inc()
}

// Handler returns the Prometheus scrape handler.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Nop discards every metric. It is used by tools that run without a registry.
type Nop struct{}

func (Nop) DraftSaved(domain.SaveStatus) {}
func (Nop) DraftsDeleted(int64) {}
func (Nop) ObserveHTTP(string, string, int, time.Duration) {}
func (Nop) RateLimited() {}

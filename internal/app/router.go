package app

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/heartmarshall/draftstore-backend/internal/config"
	"github.com/heartmarshall/draftstore-backend/internal/metrics"
	"github.com/heartmarshall/draftstore-backend/internal/transport/middleware"
	"github.com/heartmarshall/draftstore-backend/internal/transport/rest"
)

type routerDeps struct {
	cfg      *config.Config
	logger   *slog.Logger
	drafts   *rest.DraftHandler
	health   *rest.HealthHandler
	metrics  *metrics.Collector
	gatherer prometheus.Gatherer
	limiter  *middleware.RateLimiter
}

// newRouter mounts every route and wraps the mux in the middleware chain.
func newRouter(d routerDeps) http.Handler {
	mux := http.NewServeMux()

	d.drafts.Register(mux)
	d.health.Register(mux)
	if d.cfg.Metrics.Enabled {
		mux.Handle("GET "+d.cfg.Metrics.Path, metrics.Handler(d.gatherer))
	}

	return middlewareChain(d)(rest.Routes(mux))
}

// middlewareChain orders the request middleware. RequestID is outermost so
// every log line and error carries the id. Recovery sits inside Logger and
// Metrics so recovered panics are logged and counted as 500s.
func middlewareChain(d routerDeps) middleware.Middleware {
	return middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(d.logger),
		middleware.Metrics(d.metrics),
		middleware.Recovery(d.logger),
		middleware.CORS(d.cfg.CORS),
		d.limiter.Limit(d.cfg.RateLimit.RequestsPerMinute, d.cfg.RateLimit.Burst),
	)
}

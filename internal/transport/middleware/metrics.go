package middleware

import (
	"net/http"
	"time"
)

type httpObserver interface {
	ObserveHTTP(method, route string, status int, duration time.Duration)
}

// Metrics records one observation per request, labelled by the matched route pattern.
func Metrics(obs httpObserver) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := wrapStatus(w)

			next.ServeHTTP(sw, r)

			obs.ObserveHTTP(r.Method, r.Pattern, sw.status, time.Since(start))
		})
	}
}

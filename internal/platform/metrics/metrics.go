// Package metrics holds HTTP-level Prometheus instrumentation. Operation
// counters for the admin auth flows live next to their service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HTTP holds request-level collectors shared by every route.
type HTTP struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

// NewHTTP registers and returns the HTTP collectors.
func NewHTTP() *HTTP {
	return &HTTP{
		RequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "admingate_http_requests_total",
			Help: "Total HTTP requests, labeled by method, route, and status",
		}, []string{"method", "route", "status"}),
		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "admingate_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds, labeled by method and route",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

// Instrument is a chi middleware recording count and latency per route
// pattern. Using the route pattern instead of the raw path keeps label
// cardinality bounded.
func (h *HTTP) Instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = "unmatched"
		}
		h.RequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(ww.Status())).Inc()
		h.RequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

// Handler exposes the default Prometheus registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

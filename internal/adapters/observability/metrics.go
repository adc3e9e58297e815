package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "greenstay", Name: "http_requests_total", Help: "Inbound HTTP requests."},
		[]string{"route", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "greenstay", Name: "http_request_duration_seconds",
			Help:    "Inbound HTTP request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	ExternalRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "greenstay", Name: "external_requests_total", Help: "Outbound backend requests."},
		[]string{"service", "endpoint", "status"},
	)
	ExternalLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "greenstay", Name: "external_request_duration_seconds",
			Help:    "Outbound backend request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "endpoint"},
	)
	ActionRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "greenstay", Name: "action_runs_total", Help: "Dispatched action invocations."},
		[]string{"action"},
	)
	ActionLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "greenstay", Name: "action_duration_seconds",
			Help:    "Action handler duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"action"},
	)
)

func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(HTTPRequests, HTTPLatency, ExternalRequests, ExternalLatency, ActionRuns, ActionLatency)
	return reg
}

func MetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func ObserveHTTP(route, method string, status int, dur time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

func ObserveExternal(service, endpoint string, status int, dur time.Duration) {
	ExternalRequests.WithLabelValues(service, endpoint, strconv.Itoa(status)).Inc()
	ExternalLatency.WithLabelValues(service, endpoint).Observe(dur.Seconds())
}

func ObserveAction(action string, dur time.Duration) {
	ActionRuns.WithLabelValues(action).Inc()
	ActionLatency.WithLabelValues(action).Observe(dur.Seconds())
}

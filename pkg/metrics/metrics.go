package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bookstore_search_requests_total",
		Help: "Total number of HTTP requests served",
	}, []string{"method", "route", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "bookstore_search_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})

	UpstreamRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "bookstore_search_upstream_duration_seconds",
		Help:    "Duration of catalog upstream calls in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"catalog", "outcome"})

	RateLimitedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bookstore_search_rate_limited_total",
		Help: "Requests rejected by the rate limiter",
	})
)

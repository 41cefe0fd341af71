package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bookcatalog_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "route", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "bookcatalog_http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})

	ActiveSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "bookcatalog_sessions_active",
		Help: "Number of live catalog view sessions",
	})

	FilterMatches = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "bookcatalog_filter_matches",
		Help:    "Size of the match set produced by a search",
		Buckets: []float64{0, 1, 5, 10, 36, 100, 500, 1000},
	})

	DetailNotFound = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bookcatalog_detail_not_found_total",
		Help: "Detail lookups for ids outside the dataset",
	})
)

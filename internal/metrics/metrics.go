package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Feed Metrics
var (
	FeedFetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameFeedFetchesTotal,
			Help: HelpTextFeedFetchesTotal,
		},
		[]string{LabelFeed, LabelOutcome},
	)

	FeedFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameFeedFetchDuration,
			Help:    HelpTextFeedFetchDuration,
			Buckets: FeedLatencyBuckets,
		},
		[]string{LabelFeed},
	)
)

// Social Graph Metrics
var (
	FollowOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameFollowOperationsTotal,
			Help: HelpTextFollowOperationsTotal,
		},
		[]string{LabelOperation, LabelOutcome},
	)
)

// Profile Cache Metrics
var (
	ProfileCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameProfileCacheHits,
			Help: HelpTextProfileCacheHits,
		},
	)

	ProfileCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameProfileCacheMisses,
			Help: HelpTextProfileCacheMisses,
		},
	)
)

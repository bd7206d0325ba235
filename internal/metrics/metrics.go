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

// Remote API Metrics
var (
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAPIRequestsTotal,
			Help: HelpTextAPIRequestsTotal,
		},
		[]string{LabelEndpoint, LabelStatus},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameAPIRequestDuration,
			Help:    HelpTextAPIRequestDuration,
			Buckets: APILatencyBuckets,
		},
		[]string{LabelEndpoint},
	)
)

// Business Metrics
var (
	FarmingClaims = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameFarmingClaims,
			Help: HelpTextFarmingClaims,
		},
		[]string{LabelIdentity},
	)

	FarmingFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameFarmingFailures,
			Help: HelpTextFarmingFailures,
		},
		[]string{LabelIdentity, LabelKind},
	)

	FarmingWait = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameFarmingWait,
			Help:    HelpTextFarmingWait,
			Buckets: WaitBuckets,
		},
	)

	CoinBalance = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameCoinBalance,
			Help: HelpTextCoinBalance,
		},
		[]string{LabelIdentity},
	)

	WorkersActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameWorkersActive,
			Help: HelpTextWorkersActive,
		},
	)

	ReferralClaims = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameReferralClaims,
			Help: HelpTextReferralClaims,
		},
		[]string{LabelIdentity},
	)

	ReferralRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameReferralRuns,
			Help: HelpTextReferralRuns,
		},
		[]string{LabelOutcome},
	)

	PoolJobFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePoolJobFailures,
			Help: HelpTextPoolJobFailures,
		},
	)
)

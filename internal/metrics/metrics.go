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

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Machine Metrics
var (
	SpinsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSpinsTotal,
			Help: HelpTextSpinsTotal,
		},
		[]string{LabelMode, LabelCategory},
	)

	CreditsWagered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCreditsWagered,
			Help: HelpTextCreditsWagered,
		},
	)

	CreditsPaid = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCreditsPaid,
			Help: HelpTextCreditsPaid,
		},
		[]string{LabelCategory},
	)

	ForcedMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameForcedMisses,
			Help: HelpTextForcedMisses,
		},
		[]string{LabelReel},
	)

	SlipCells = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameSlipCells,
			Help:    HelpTextSlipCells,
			Buckets: SlipBuckets,
		},
	)

	BonusTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBonusTransitions,
			Help: HelpTextBonusTransitions,
		},
		[]string{LabelTransition, LabelCategory},
	)

	LiveMachines = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameLiveMachines,
			Help: HelpTextLiveMachines,
		},
	)
)

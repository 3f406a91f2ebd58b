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

// Event bus metrics
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

// Farm metrics
var (
	MovesApplied = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMovesApplied,
			Help: HelpTextMovesApplied,
		},
		[]string{LabelMove, LabelResult},
	)

	EventsTriggered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsTriggered,
			Help: HelpTextEventsTriggered,
		},
		[]string{LabelEvent, LabelSeverity},
	)

	MatchCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMatchCacheLookups,
			Help: HelpTextMatchCacheLookups,
		},
		[]string{LabelResult},
	)

	SimulationsCompleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSimulationsCompleted,
			Help: HelpTextSimulationsCompleted,
		},
	)

	SimulatedGames = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSimulatedGames,
			Help: HelpTextSimulatedGames,
		},
		[]string{LabelStrategy, LabelOutcome},
	)

	SimulationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameSimulationDuration,
			Help:    HelpTextSimulationDuration,
			Buckets: SimulationDurationBuckets,
		},
	)

	SimulatedGameDays = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameSimulatedGameDays,
			Help:    HelpTextSimulatedGameDays,
			Buckets: GameDayBuckets,
		},
		[]string{LabelStrategy},
	)
)

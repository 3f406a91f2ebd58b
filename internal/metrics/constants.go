package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event bus metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Farm metric names
const (
	MetricNameMovesApplied         = "aquaponics_moves_applied_total"
	MetricNameEventsTriggered      = "aquaponics_events_triggered_total"
	MetricNameMatchCacheLookups    = "aquaponics_match_cache_lookups_total"
	MetricNameSimulationsCompleted = "aquaponics_simulations_completed_total"
	MetricNameSimulatedGames       = "aquaponics_simulated_games_total"
	MetricNameSimulationDuration   = "aquaponics_simulation_duration_seconds"
	MetricNameSimulatedGameDays    = "aquaponics_simulated_game_days"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event bus metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Farm metric help text
const (
	HelpTextMovesApplied         = "Moves applied to stored matches, by move and result"
	HelpTextEventsTriggered      = "Random farm events triggered on stored matches"
	HelpTextMatchCacheLookups    = "Match cache lookups, by hit or miss"
	HelpTextSimulationsCompleted = "Batch simulations completed"
	HelpTextSimulatedGames       = "Simulated games finished, by strategy and outcome"
	HelpTextSimulationDuration   = "Wall time of a batch simulation in seconds"
	HelpTextSimulatedGameDays    = "Days a simulated game lasted"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelType     = "type"
	LabelMove     = "move"
	LabelResult   = "result"
	LabelEvent    = "event"
	LabelSeverity = "severity"
	LabelStrategy = "strategy"
	LabelOutcome  = "outcome"
)

// Label values
const (
	ResultSuccess  = "success"
	ResultRejected = "rejected"
	ResultHit      = "hit"
	ResultMiss     = "miss"
	// UnmatchedRoute labels requests that did not resolve to a route
	UnmatchedRoute = "unmatched"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets range from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// SimulationDurationBuckets range from 10ms to about 2 minutes
var SimulationDurationBuckets = []float64{.01, .05, .1, .5, 1, 5, 10, 30, 60, 120}

// GameDayBuckets follow the default game length of one year
var GameDayBuckets = []float64{7, 30, 60, 90, 180, 270, 365}

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgDecodePayloadFailed = "Failed to decode event payload for metrics"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)

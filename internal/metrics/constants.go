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

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Machine metric names
const (
	MetricNameSpinsTotal       = "slot_spins_total"
	MetricNameCreditsWagered   = "slot_credits_wagered_total"
	MetricNameCreditsPaid      = "slot_credits_paid_total"
	MetricNameForcedMisses     = "slot_forced_misses_total"
	MetricNameSlipCells        = "slot_slip_cells"
	MetricNameBonusTransitions = "slot_bonus_transitions_total"
	MetricNameLiveMachines     = "slot_live_machines"
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

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Machine metric help text
const (
	HelpTextSpinsTotal       = "Total number of spins started, by mode and drawn flag category"
	HelpTextCreditsWagered   = "Total credits taken as bets"
	HelpTextCreditsPaid      = "Total credits paid out by evaluated spins"
	HelpTextForcedMisses     = "Total number of reel stops forced onto a miss"
	HelpTextSlipCells        = "Cells slipped per accepted stop"
	HelpTextBonusTransitions = "Total number of bonus state transitions"
	HelpTextLiveMachines     = "Current number of machine sessions held in memory"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod     = "method"
	LabelPath       = "path"
	LabelStatus     = "status"
	LabelType       = "type"
	LabelMode       = "mode"
	LabelCategory   = "category"
	LabelReel       = "reel"
	LabelTransition = "transition"
)

// Bonus transition label values
const (
	TransitionHeld       = "held"
	TransitionHeldHidden = "held_hidden"
	TransitionLanded     = "landed"
	TransitionFinished   = "finished"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// SlipBuckets covers zero to a full strip of slip
var SlipBuckets = []float64{0, 1, 2, 3, 4, 5, 10, 20}

// UnmatchedRoutePath labels requests no route matched
const UnmatchedRoutePath = "unmatched"

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgPayloadDecodeFailed = "Failed to decode event payload for metrics"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)

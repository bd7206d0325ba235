package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names (status server)
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Remote API metric names
const (
	MetricNameAPIRequestsTotal   = "pitchtalk_api_requests_total"
	MetricNameAPIRequestDuration = "pitchtalk_api_request_duration_seconds"
)

// Farming metric names
const (
	MetricNameFarmingClaims   = "farming_claims_total"
	MetricNameFarmingFailures = "farming_failures_total"
	MetricNameFarmingWait     = "farming_wait_seconds"
	MetricNameCoinBalance     = "coin_balance"
	MetricNameWorkersActive   = "farming_workers_active"
	MetricNameReferralClaims  = "referral_claims_total"
	MetricNameReferralRuns    = "referral_runs_total"
	MetricNamePoolJobFailures = "worker_pool_job_failures_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests served by the status server"
	HelpTextHTTPRequestDuration  = "Status server request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Number of status server requests currently being served"

	HelpTextAPIRequestsTotal   = "Total number of requests sent to the PitchTalk API"
	HelpTextAPIRequestDuration = "PitchTalk API request latency in seconds"

	HelpTextFarmingClaims   = "Total number of successful farming claims"
	HelpTextFarmingFailures = "Total number of farming loop terminations by failure kind"
	HelpTextFarmingWait     = "Seconds each farming worker waited before claiming"
	HelpTextCoinBalance     = "Last coin balance reported by the API"
	HelpTextWorkersActive   = "Number of farming workers currently running"
	HelpTextReferralClaims  = "Total number of successful referral claims"
	HelpTextReferralRuns    = "Total number of referral job runs by outcome"
	HelpTextPoolJobFailures = "Total number of worker pool jobs that returned an error"
)

// ============================================================================
// Labels
// ============================================================================

const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelEndpoint = "endpoint"
	LabelIdentity = "identity"
	LabelKind     = "kind"
	LabelOutcome  = "outcome"
)

// Outcome label values
const (
	OutcomeClaimed = "claimed"
	OutcomeNoop    = "noop"
	OutcomeFailed  = "failed"
)

// StatusError labels requests that never got a response
const StatusError = "error"

// ============================================================================
// Buckets
// ============================================================================

var (
	HTTPLatencyBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5}
	APILatencyBuckets  = []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30}
	// 1s .. ~12h
	WaitBuckets = []float64{1, 5, 30, 60, 300, 900, 1800, 3600, 7200, 14400, 28800, 43200}
)

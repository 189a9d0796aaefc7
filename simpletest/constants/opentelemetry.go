package constant

// TelemetrySDKName identifies this library in OTEL telemetry resource attributes.
const TelemetrySDKName = "lib-simpletest"

// MaxMetricLabelLength is the maximum length for metric labels to prevent cardinality explosion.
// Used by the check and track packages for label sanitization.
const MaxMetricLabelLength = 64

// Telemetry attribute key prefixes.
const (
	// AttrPrefixCheck is the prefix for check event attributes.
	AttrPrefixCheck = "check."
	// AttrPrefixTrack is the prefix for instance tracking attributes.
	AttrPrefixTrack = "track."
	// AttrPrefixPanic is the prefix for panic event attributes.
	AttrPrefixPanic = "panic."
)

// Telemetry metric names.
const (
	// MetricCheckExecutedTotal is the counter metric for executed checks.
	MetricCheckExecutedTotal = "check_executed_total"
	// MetricCheckFailedTotal is the counter metric for failed checks.
	MetricCheckFailedTotal = "check_failed_total"
	// MetricTrackedInstancesLive is the gauge metric for live tracked instances per type.
	MetricTrackedInstancesLive = "tracked_instances_live"
	// MetricPanicRecoveredTotal is the counter metric for recovered panics.
	MetricPanicRecoveredTotal = "panic_recovered_total"
)

// Telemetry event names.
const (
	// EventCheckFailed is the span event name for failed checks.
	EventCheckFailed = "check.failed"
	// EventPanicRecovered is the span event name for recovered panics.
	EventPanicRecovered = "panic.recovered"
)

// SanitizeMetricLabel truncates a label value to MaxMetricLabelLength
// to prevent metric cardinality explosion in OTEL backends.
func SanitizeMetricLabel(value string) string {
	if len(value) > MaxMetricLabelLength {
		return value[:MaxMetricLabelLength]
	}

	return value
}

package simpletest

import (
	"context"
	"errors"
	"fmt"
	"sync"

	constant "github.com/LerianStudio/lib-simpletest/simpletest/constants"
	"github.com/LerianStudio/lib-simpletest/simpletest/metrics"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// ErrCheckFailed is the sentinel recorded on spans when a check fails. It is
// never returned to callers; comparison failures are counted outcomes, not
// errors.
var ErrCheckFailed = errors.New("check failed")

// CheckMetrics provides check-related metrics using OpenTelemetry.
type CheckMetrics struct {
	factory *metrics.MetricsFactory
}

var (
	checkExecutedMetric = metrics.Metric{
		Name:        constant.MetricCheckExecutedTotal,
		Unit:        "1",
		Description: "Total number of executed checks",
	}

	checkFailedMetric = metrics.Metric{
		Name:        constant.MetricCheckFailedTotal,
		Unit:        "1",
		Description: "Total number of failed checks",
	}
)

var (
	checkMetricsInstance *CheckMetrics
	checkMetricsMu       sync.RWMutex
)

// InitCheckMetrics initializes check metrics with the provided
// MetricsFactory. Call once during startup after telemetry is initialized;
// subsequent calls are no-ops. Without initialization, metric recording is
// silently skipped and checks behave identically.
func InitCheckMetrics(factory *metrics.MetricsFactory) {
	checkMetricsMu.Lock()
	defer checkMetricsMu.Unlock()

	if factory == nil {
		return
	}

	if checkMetricsInstance != nil {
		return
	}

	checkMetricsInstance = &CheckMetrics{factory: factory}
}

// GetCheckMetrics returns the singleton CheckMetrics instance.
// Returns nil if InitCheckMetrics has not been called.
func GetCheckMetrics() *CheckMetrics {
	checkMetricsMu.RLock()
	defer checkMetricsMu.RUnlock()

	return checkMetricsInstance
}

// ResetCheckMetrics clears the check metrics singleton (useful for tests).
func ResetCheckMetrics() {
	checkMetricsMu.Lock()
	defer checkMetricsMu.Unlock()

	checkMetricsInstance = nil
}

// RecordCheck increments check_executed_total with a result label, and
// check_failed_total additionally on failure. If metrics are not
// initialized, this is a no-op.
func (cm *CheckMetrics) RecordCheck(ctx context.Context, passed bool) {
	if cm == nil || cm.factory == nil {
		return
	}

	result := "pass"
	if !passed {
		result = "fail"
	}

	executed, err := cm.factory.Counter(checkExecutedMetric)
	if err == nil {
		_ = executed.
			WithLabels(map[string]string{"result": result}).
			AddOne(ctx)
	}

	if passed {
		return
	}

	failedCounter, err := cm.factory.Counter(checkFailedMetric)
	if err == nil {
		_ = failedCounter.AddOne(ctx)
	}
}

func recordCheckObservability(ctx context.Context, passed bool, expectedRendering, actualRendering string) {
	if cm := GetCheckMetrics(); cm != nil {
		cm.RecordCheck(ctx, passed)
	}

	if !passed {
		recordCheckToSpan(ctx, expectedRendering, actualRendering)
	}
}

func recordCheckToSpan(ctx context.Context, expectedRendering, actualRendering string) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}

	span.AddEvent(constant.EventCheckFailed, trace.WithAttributes(
		attribute.String(constant.AttrPrefixCheck+"expected", expectedRendering),
		attribute.String(constant.AttrPrefixCheck+"actual", actualRendering),
	))
	span.RecordError(fmt.Errorf("%w: expected %s, actual %s", ErrCheckFailed, expectedRendering, actualRendering))
	span.SetStatus(codes.Error, "check failed")
}

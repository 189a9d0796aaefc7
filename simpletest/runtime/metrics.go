package runtime

import (
	"context"
	"sync"

	constant "github.com/LerianStudio/lib-simpletest/simpletest/constants"
	"github.com/LerianStudio/lib-simpletest/simpletest/log"
	"github.com/LerianStudio/lib-simpletest/simpletest/metrics"
)

// PanicMetrics provides panic-related metrics using OpenTelemetry.
type PanicMetrics struct {
	factory *metrics.MetricsFactory
	logger  log.Logger
}

// panicRecoveredMetric defines the metric for counting recovered panics.
var panicRecoveredMetric = metrics.Metric{
	Name:        constant.MetricPanicRecoveredTotal,
	Unit:        "1",
	Description: "Total number of recovered panics",
}

var (
	panicMetricsInstance *PanicMetrics
	panicMetricsMu       sync.RWMutex
)

// InitPanicMetrics initializes panic metrics with the provided MetricsFactory.
// The logger is optional and used only for metric recording diagnostics.
// It is safe to call multiple times; subsequent calls are no-ops.
func InitPanicMetrics(factory *metrics.MetricsFactory, logger ...log.Logger) {
	panicMetricsMu.Lock()
	defer panicMetricsMu.Unlock()

	if factory == nil {
		return
	}

	if panicMetricsInstance != nil {
		return // Already initialized
	}

	var l log.Logger
	if len(logger) > 0 {
		l = logger[0]
	}

	panicMetricsInstance = &PanicMetrics{
		factory: factory,
		logger:  l,
	}
}

// GetPanicMetrics returns the singleton PanicMetrics instance.
// Returns nil if InitPanicMetrics has not been called.
func GetPanicMetrics() *PanicMetrics {
	panicMetricsMu.RLock()
	defer panicMetricsMu.RUnlock()

	return panicMetricsInstance
}

// ResetPanicMetrics clears the panic metrics singleton.
// This is primarily intended for testing to ensure test isolation.
func ResetPanicMetrics() {
	panicMetricsMu.Lock()
	defer panicMetricsMu.Unlock()

	panicMetricsInstance = nil
}

// RecordPanicRecovered increments the panic_recovered_total counter with the
// given labels. If metrics are not initialized, this is a no-op.
func (pm *PanicMetrics) RecordPanicRecovered(ctx context.Context, component, operation string) {
	if pm == nil || pm.factory == nil {
		return
	}

	counter, err := pm.factory.Counter(panicRecoveredMetric)
	if err != nil {
		if pm.logger != nil {
			pm.logger.Log(ctx, log.LevelWarn, "failed to create panic metric counter", log.Err(err))
		}

		return
	}

	err = counter.
		WithLabels(map[string]string{
			"component": constant.SanitizeMetricLabel(component),
			"operation": constant.SanitizeMetricLabel(operation),
		}).
		AddOne(ctx)
	if err != nil {
		if pm.logger != nil {
			pm.logger.Log(ctx, log.LevelWarn, "failed to record panic metric", log.Err(err))
		}

		return
	}
}

// recordPanicMetric records a panic metric if metrics are initialized.
// Called internally by the recovery functions.
func recordPanicMetric(ctx context.Context, component, operation string) {
	pm := GetPanicMetrics()
	if pm != nil {
		pm.RecordPanicRecovered(ctx, component, operation)
	}
}

package track

import (
	"context"
	"sync"

	constant "github.com/LerianStudio/lib-simpletest/simpletest/constants"
	"github.com/LerianStudio/lib-simpletest/simpletest/metrics"
)

// TrackMetrics provides instance-tracking metrics using OpenTelemetry.
type TrackMetrics struct {
	factory *metrics.MetricsFactory
}

// trackedInstancesLiveMetric defines the per-type live instance gauge.
var trackedInstancesLiveMetric = metrics.Metric{
	Name:        constant.MetricTrackedInstancesLive,
	Unit:        "1",
	Description: "Current number of live tracked instances per type",
}

var (
	trackMetricsInstance *TrackMetrics
	trackMetricsMu       sync.RWMutex
)

// InitTrackMetrics initializes tracking metrics with the provided
// MetricsFactory. Safe to call multiple times; subsequent calls are no-ops.
// Without initialization, gauge recording is silently skipped.
func InitTrackMetrics(factory *metrics.MetricsFactory) {
	trackMetricsMu.Lock()
	defer trackMetricsMu.Unlock()

	if factory == nil {
		return
	}

	if trackMetricsInstance != nil {
		return
	}

	trackMetricsInstance = &TrackMetrics{factory: factory}
}

// GetTrackMetrics returns the singleton TrackMetrics instance.
// Returns nil if InitTrackMetrics has not been called.
func GetTrackMetrics() *TrackMetrics {
	trackMetricsMu.RLock()
	defer trackMetricsMu.RUnlock()

	return trackMetricsInstance
}

// ResetTrackMetrics clears the tracking metrics singleton (useful for tests).
func ResetTrackMetrics() {
	trackMetricsMu.Lock()
	defer trackMetricsMu.Unlock()

	trackMetricsInstance = nil
}

// RecordLive sets the tracked_instances_live gauge for one type.
// If metrics are not initialized, this is a no-op.
func (tm *TrackMetrics) RecordLive(ctx context.Context, typeName string, live int64) {
	if tm == nil || tm.factory == nil {
		return
	}

	gauge, err := tm.factory.Gauge(trackedInstancesLiveMetric)
	if err != nil {
		return
	}

	_ = gauge.
		WithLabels(map[string]string{"type": constant.SanitizeMetricLabel(typeName)}).
		Set(ctx, live)
}

func recordLiveGauge(ctx context.Context, typeName string, live int64) {
	tm := GetTrackMetrics()
	if tm != nil {
		tm.RecordLive(ctx, typeName, live)
	}
}

package metrics

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/LerianStudio/lib-simpletest/simpletest/log"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// MetricsFactory provides a thread-safe factory for creating and managing
// OpenTelemetry metrics with lazy initialization using sync.Map for
// high-performance concurrent access.
type MetricsFactory struct {
	meter    metric.Meter
	counters sync.Map // string -> metric.Int64Counter
	gauges   sync.Map // string -> metric.Int64Gauge
	logger   log.Logger
}

// ErrNilMeter indicates that a nil OTEL meter was provided.
var ErrNilMeter = errors.New("metric meter cannot be nil")

// Metric describes an instrument that the factory can create.
type Metric struct {
	Name        string
	Description string
	Unit        string
}

// NewMetricsFactory creates a new MetricsFactory instance.
func NewMetricsFactory(meter metric.Meter, logger log.Logger) (*MetricsFactory, error) {
	if meter == nil {
		return nil, ErrNilMeter
	}

	return &MetricsFactory{
		meter:  meter,
		logger: logger,
	}, nil
}

// NewNopFactory returns a MetricsFactory backed by OpenTelemetry's no-op meter.
// It is safe for use as a fallback when a real meter is unavailable.
func NewNopFactory() *MetricsFactory {
	return &MetricsFactory{
		meter:  noop.NewMeterProvider().Meter("nop"),
		logger: log.NewNop(),
	}
}

// Counter creates or retrieves a counter metric and returns a builder for fluent API usage.
func (f *MetricsFactory) Counter(m Metric) (*CounterBuilder, error) {
	counter, err := f.getOrCreateCounter(m)
	if err != nil {
		return nil, err
	}

	return &CounterBuilder{counter: counter}, nil
}

// Gauge creates or retrieves a gauge metric and returns a builder for fluent API usage.
func (f *MetricsFactory) Gauge(m Metric) (*GaugeBuilder, error) {
	gauge, err := f.getOrCreateGauge(m)
	if err != nil {
		return nil, err
	}

	return &GaugeBuilder{gauge: gauge}, nil
}

// getOrCreateCounter lazily creates or retrieves an existing counter.
func (f *MetricsFactory) getOrCreateCounter(m Metric) (metric.Int64Counter, error) {
	if counter, exists := f.counters.Load(m.Name); exists {
		if c, ok := counter.(metric.Int64Counter); ok {
			return c, nil
		}

		return nil, fmt.Errorf("counter cache contains invalid type for %q", m.Name)
	}

	counter, err := f.meter.Int64Counter(m.Name, f.counterOptions(m)...)
	if err != nil {
		if f.logger != nil {
			f.logger.Log(context.Background(), log.LevelError, "failed to create counter metric", log.String("metric_name", m.Name), log.Err(err))
		}

		return nil, fmt.Errorf("create counter %q: %w", m.Name, err)
	}

	if actual, loaded := f.counters.LoadOrStore(m.Name, counter); loaded {
		// Another goroutine created it first, use that one.
		if c, ok := actual.(metric.Int64Counter); ok {
			return c, nil
		}

		return nil, fmt.Errorf("counter cache contains invalid type for %q", m.Name)
	}

	return counter, nil
}

// getOrCreateGauge lazily creates or retrieves an existing gauge.
func (f *MetricsFactory) getOrCreateGauge(m Metric) (metric.Int64Gauge, error) {
	if gauge, exists := f.gauges.Load(m.Name); exists {
		if g, ok := gauge.(metric.Int64Gauge); ok {
			return g, nil
		}

		return nil, fmt.Errorf("gauge cache contains invalid type for %q", m.Name)
	}

	gauge, err := f.meter.Int64Gauge(m.Name, f.gaugeOptions(m)...)
	if err != nil {
		if f.logger != nil {
			f.logger.Log(context.Background(), log.LevelError, "failed to create gauge metric", log.String("metric_name", m.Name), log.Err(err))
		}

		return nil, fmt.Errorf("create gauge %q: %w", m.Name, err)
	}

	if actual, loaded := f.gauges.LoadOrStore(m.Name, gauge); loaded {
		// Another goroutine created it first, use that one.
		if g, ok := actual.(metric.Int64Gauge); ok {
			return g, nil
		}

		return nil, fmt.Errorf("gauge cache contains invalid type for %q", m.Name)
	}

	return gauge, nil
}

func (f *MetricsFactory) counterOptions(m Metric) []metric.Int64CounterOption {
	var opts []metric.Int64CounterOption
	if m.Description != "" {
		opts = append(opts, metric.WithDescription(m.Description))
	}

	if m.Unit != "" {
		opts = append(opts, metric.WithUnit(m.Unit))
	}

	return opts
}

func (f *MetricsFactory) gaugeOptions(m Metric) []metric.Int64GaugeOption {
	var opts []metric.Int64GaugeOption
	if m.Description != "" {
		opts = append(opts, metric.WithDescription(m.Description))
	}

	if m.Unit != "" {
		opts = append(opts, metric.WithUnit(m.Unit))
	}

	return opts
}

package metrics

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	// ErrNilCounter is returned when a counter builder has no instrument.
	ErrNilCounter = errors.New("counter instrument is nil")
	// ErrNilGauge is returned when a gauge builder has no instrument.
	ErrNilGauge = errors.New("gauge instrument is nil")
)

// CounterBuilder provides a fluent API for recording counter metrics with optional labels.
type CounterBuilder struct {
	counter metric.Int64Counter
	attrs   []attribute.KeyValue
}

// WithLabels adds labels/attributes to the counter metric.
func (c *CounterBuilder) WithLabels(labels map[string]string) *CounterBuilder {
	builder := &CounterBuilder{
		counter: c.counter,
		attrs:   make([]attribute.KeyValue, 0, len(c.attrs)+len(labels)),
	}

	builder.attrs = append(builder.attrs, c.attrs...)

	for key, value := range labels {
		builder.attrs = append(builder.attrs, attribute.String(key, value))
	}

	return builder
}

// WithAttributes adds OpenTelemetry attributes to the counter metric.
func (c *CounterBuilder) WithAttributes(attrs ...attribute.KeyValue) *CounterBuilder {
	builder := &CounterBuilder{
		counter: c.counter,
		attrs:   make([]attribute.KeyValue, 0, len(c.attrs)+len(attrs)),
	}

	builder.attrs = append(builder.attrs, c.attrs...)
	builder.attrs = append(builder.attrs, attrs...)

	return builder
}

// Add records a counter increment.
func (c *CounterBuilder) Add(ctx context.Context, value int64) error {
	if c.counter == nil {
		return ErrNilCounter
	}

	c.counter.Add(ctx, value, metric.WithAttributes(c.attrs...))

	return nil
}

// AddOne increments the counter by one.
func (c *CounterBuilder) AddOne(ctx context.Context) error {
	return c.Add(ctx, 1)
}

// GaugeBuilder provides a fluent API for recording gauge metrics with optional labels.
type GaugeBuilder struct {
	gauge metric.Int64Gauge
	attrs []attribute.KeyValue
}

// WithLabels adds labels/attributes to the gauge metric.
func (g *GaugeBuilder) WithLabels(labels map[string]string) *GaugeBuilder {
	builder := &GaugeBuilder{
		gauge: g.gauge,
		attrs: make([]attribute.KeyValue, 0, len(g.attrs)+len(labels)),
	}

	builder.attrs = append(builder.attrs, g.attrs...)

	for key, value := range labels {
		builder.attrs = append(builder.attrs, attribute.String(key, value))
	}

	return builder
}

// WithAttributes adds OpenTelemetry attributes to the gauge metric.
func (g *GaugeBuilder) WithAttributes(attrs ...attribute.KeyValue) *GaugeBuilder {
	builder := &GaugeBuilder{
		gauge: g.gauge,
		attrs: make([]attribute.KeyValue, 0, len(g.attrs)+len(attrs)),
	}

	builder.attrs = append(builder.attrs, g.attrs...)
	builder.attrs = append(builder.attrs, attrs...)

	return builder
}

// Set records the current value of a gauge.
func (g *GaugeBuilder) Set(ctx context.Context, value int64) error {
	if g.gauge == nil {
		return ErrNilGauge
	}

	g.gauge.Record(ctx, value, metric.WithAttributes(g.attrs...))

	return nil
}

package simpletest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	constant "github.com/LerianStudio/lib-simpletest/simpletest/constants"
	"github.com/LerianStudio/lib-simpletest/simpletest/log"
	"github.com/LerianStudio/lib-simpletest/simpletest/metrics"
)

// Package-level check functions mutate the process-wide tally (and print to
// stdout), so these tests assert counter deltas and do not run in parallel.

func TestCheck_PassIncrementsExecutedOnly(t *testing.T) {
	executedBefore := Default().Executed()
	failedBefore := Default().Failed()

	Check(1, 1)

	require.Equal(t, executedBefore+1, Default().Executed())
	require.Equal(t, failedBefore, Default().Failed())
}

func TestCheck_StringPass(t *testing.T) {
	failedBefore := Default().Failed()

	Check("abc", "abc")

	require.Equal(t, failedBefore, Default().Failed())
}

func TestCheck_UntypedConstantWidens(t *testing.T) {
	failedBefore := Default().Failed()

	// The untyped 1 widens to float64; difference 0.5 >= epsilon, so it fails.
	Check(1.5, 1)

	require.Equal(t, failedBefore+1, Default().Failed())
}

func TestCheckFloat_WideningException(t *testing.T) {
	failedBefore := Default().Failed()

	CheckFloat(1.5, 1)

	require.Equal(t, failedBefore+1, Default().Failed())
}

func TestCheckTrue(t *testing.T) {
	failedBefore := Default().Failed()

	CheckTrue(true)

	require.Equal(t, failedBefore, Default().Failed())
}

func TestCheckPanics(t *testing.T) {
	failedBefore := Default().Failed()

	CheckPanics(func() { panic("boom") })
	CheckNoPanic(func() {})

	require.Equal(t, failedBefore, Default().Failed())
}

func TestDidPanic(t *testing.T) {
	t.Parallel()

	assert.True(t, didPanic(func() { panic("boom") }))
	assert.False(t, didPanic(func() {}))
}

func TestCheckCtx_FailureAnnotatesSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := tracesdk.NewTracerProvider(tracesdk.WithSpanProcessor(recorder))

	t.Cleanup(func() {
		require.NoError(t, provider.Shutdown(context.Background()))
	})

	ctx, span := provider.Tracer("test").Start(context.Background(), "op")

	CheckCtx(ctx, 1, 2)
	span.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	var found bool

	for _, event := range spans[0].Events() {
		if event.Name == constant.EventCheckFailed {
			found = true
		}
	}

	require.True(t, found, "expected a %s span event", constant.EventCheckFailed)
}

func TestCheckCtx_PassLeavesSpanClean(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := tracesdk.NewTracerProvider(tracesdk.WithSpanProcessor(recorder))

	t.Cleanup(func() {
		require.NoError(t, provider.Shutdown(context.Background()))
	})

	ctx, span := provider.Tracer("test").Start(context.Background(), "op")

	CheckCtx(ctx, 1, 1)
	span.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	for _, event := range spans[0].Events() {
		assert.NotEqual(t, constant.EventCheckFailed, event.Name)
	}
}

// --- CheckMetrics Tests ---

func newTestMetricsFactory(t *testing.T) *metrics.MetricsFactory {
	t.Helper()

	factory, err := metrics.NewMetricsFactory(noop.NewMeterProvider().Meter("test"), log.NewNop())
	require.NoError(t, err)

	return factory
}

func TestInitCheckMetrics(t *testing.T) {
	ResetCheckMetrics()
	t.Cleanup(ResetCheckMetrics)

	require.Nil(t, GetCheckMetrics())

	InitCheckMetrics(newTestMetricsFactory(t))
	require.NotNil(t, GetCheckMetrics())

	// Second init is a no-op.
	first := GetCheckMetrics()
	InitCheckMetrics(newTestMetricsFactory(t))
	require.Same(t, first, GetCheckMetrics())
}

func TestInitCheckMetrics_NilFactory(t *testing.T) {
	ResetCheckMetrics()
	t.Cleanup(ResetCheckMetrics)

	InitCheckMetrics(nil)
	require.Nil(t, GetCheckMetrics())
}

func TestCheckMetrics_RecordCheck(t *testing.T) {
	ResetCheckMetrics()
	t.Cleanup(ResetCheckMetrics)

	InitCheckMetrics(newTestMetricsFactory(t))

	// Recording against the no-op meter must not panic or error out.
	GetCheckMetrics().RecordCheck(context.Background(), true)
	GetCheckMetrics().RecordCheck(context.Background(), false)
}

func TestCheckMetrics_NilReceiverSafe(t *testing.T) {
	t.Parallel()

	var cm *CheckMetrics

	cm.RecordCheck(context.Background(), false)
}

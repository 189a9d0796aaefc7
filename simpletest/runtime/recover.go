package runtime

import (
	"context"
	"fmt"
	"runtime/debug"

	constant "github.com/LerianStudio/lib-simpletest/simpletest/constants"
	"github.com/LerianStudio/lib-simpletest/simpletest/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// PanicPolicy determines what happens after a panic is recovered and logged.
type PanicPolicy int

const (
	// KeepRunning recovers the panic and lets the caller continue.
	KeepRunning PanicPolicy = iota
	// CrashProcess re-panics after logging, crashing the process.
	CrashProcess
)

// HandlePanicValue logs a recovered panic value with its stack trace and
// records it to metrics and the active span, if any. It is the single
// funnel for all recovery paths in this library.
func HandlePanicValue(ctx context.Context, logger log.Logger, recovered any, component, operation string) {
	if ctx == nil {
		ctx = context.Background()
	}

	stack := debug.Stack()

	if logger != nil {
		logger.Log(ctx, log.LevelError, "panic recovered",
			log.Any("panic", recovered),
			log.String("component", component),
			log.String("operation", operation),
			log.String("stack", string(stack)),
		)
	}

	recordPanicMetric(ctx, component, operation)
	recordPanicToSpan(ctx, recovered, component, operation)
}

// RecoverAndLog recovers from a panic, logs it, and continues execution.
// Use in defer statements for workers where a panic must not crash the
// process.
//
// Example:
//
//	func worker(ctx context.Context) {
//	    defer runtime.RecoverAndLog(ctx, logger, "suite", "run_block")
//	    // ...
//	}
func RecoverAndLog(ctx context.Context, logger log.Logger, component, operation string) {
	if recovered := recover(); recovered != nil {
		HandlePanicValue(ctx, logger, recovered, component, operation)
	}
}

// RecoverWithPolicy recovers from a panic and handles it according to the
// given policy. With CrashProcess the panic is re-raised after logging.
func RecoverWithPolicy(ctx context.Context, logger log.Logger, component, operation string, policy PanicPolicy) {
	if recovered := recover(); recovered != nil {
		HandlePanicValue(ctx, logger, recovered, component, operation)

		if policy == CrashProcess {
			panic(recovered)
		}
	}
}

// SafeGo runs fn in a new goroutine with panic recovery applied according
// to policy. A panicking fn never takes down the process under KeepRunning.
func SafeGo(ctx context.Context, logger log.Logger, component, operation string, policy PanicPolicy, fn func(ctx context.Context)) {
	go func() {
		defer RecoverWithPolicy(ctx, logger, component, operation, policy)

		fn(ctx)
	}()
}

func recordPanicToSpan(ctx context.Context, recovered any, component, operation string) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}

	span.AddEvent(constant.EventPanicRecovered, trace.WithAttributes(
		attribute.String(constant.AttrPrefixPanic+"component", component),
		attribute.String(constant.AttrPrefixPanic+"operation", operation),
		attribute.String(constant.AttrPrefixPanic+"value", fmt.Sprintf("%v", recovered)),
	))
}

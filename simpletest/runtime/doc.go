// Package runtime provides process-lifecycle primitives shared by the
// simpletest packages: a shutdown finalizer registry and panic recovery
// helpers with observability integration.
//
// # Shutdown finalizers
//
// Lazily created process singletons (the check tally, per-type instance
// counters) register finalizers with OnShutdown. Finalizers run exactly once,
// in reverse registration order, when the program calls Shutdown, Exit, or
// suite.Main:
//
//	func main() {
//	    defer runtime.Shutdown()
//	    simpletest.Check(1, 1)
//	}
//
// Registration order approximates first-use order, so reverse execution
// mirrors the teardown order of static singletons in other runtimes. No
// finalizer fires on abnormal termination (fatal signal, forced kill).
//
// # Panic recovery
//
// RecoverAndLog, RecoverWithPolicy, and SafeGo recover panics, log them with
// a stack trace, and record a panic_recovered_total metric plus a span event
// when telemetry is configured via InitPanicMetrics.
package runtime

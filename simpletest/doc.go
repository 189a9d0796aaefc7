// Package simpletest is a minimal, embeddable check-and-report core for
// ad-hoc test code: compare an expected and an actual value, print the
// outcome immediately, and print a summary of all checks when the program
// ends.
//
// # Checks
//
// The public surface is a handful of package-level functions backed by one
// process-wide tally:
//
//	simpletest.Check(1, 1)                      // passes
//	simpletest.Check("abc", "cde")              // fails, both renderings printed
//	simpletest.CheckFloat(1.5, 1)               // int widens to float, fails (0.5 >= 1e-4)
//	simpletest.CheckTrue(ok)                    // shorthand for Check(ok, true)
//	simpletest.CheckPanics(func() { mustBoom() })
//
// Every call writes exactly one line to stdout:
//
//	Test successful! Expected value == actual value (="1")
//	Error in test: expected value "abc", but actual value was "cde"
//
// Values render quoted; booleans as the words true/false, floats with 10
// significant digits, named integer types as their numeric value. These
// line formats are stable so tooling may grep them.
//
// Floating-point values are equal when they differ by strictly less than
// 1e-4, for both float32 and float64. NaN never equals NaN.
//
// A failed check is a counted, printed outcome, never an error or panic:
// the process keeps running, and a caller that wants a failing exit code
// inspects Default().Failed() or uses suite.Main.
//
// # Summary
//
// The tally prints a final block once, during normal process teardown:
//
//	--------------------------------------
//	Test summary:
//	Executed tests: 12
//	Failed tests: 2
//
// Go has no static destructors, so teardown is explicit: call
// runtime.Shutdown (or runtime.Exit, or suite.Main) at the end of main. See
// the simpletest/runtime package.
//
// # Concurrency
//
// Checks are safe to call from concurrent goroutines: counters are atomic
// and each output line is written as one critical section, so counts are
// never lost and lines never interleave mid-message.
//
// # Related packages
//
//   - simpletest/track: per-type live/total instance counting
//   - simpletest/suite: registry of named check blocks run before main body
//   - simpletest/runtime: shutdown finalizers and panic recovery
//   - simpletest/log, simpletest/zap, simpletest/metrics: diagnostics stack
package simpletest

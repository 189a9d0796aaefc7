package simpletest

import "context"

// Check asserts that actual equals expected, printing the outcome and
// updating the process-wide tally. The shared type parameter makes
// narrowing impossible at the call site: an untyped constant widens to the
// comparison target (Check(1.5, 1) compares floats), while a typed float
// can never silently truncate to an integer comparison.
//
//	simpletest.Check(got, 42)
//	simpletest.Check(name, "widget")
func Check[T comparable](actual, expected T) {
	Default().Check(context.Background(), expected, actual)
}

// CheckCtx is Check with a caller-supplied context, so failures annotate the
// active trace span.
func CheckCtx[T comparable](ctx context.Context, actual, expected T) {
	Default().Check(ctx, expected, actual)
}

// CheckFloat compares a floating-point actual value against an integer
// expected value, widening the integer. This is the one sanctioned
// exception to the no-narrowing rule for mixed-type checks.
func CheckFloat(actual float64, expected int) {
	Default().Check(context.Background(), float64(expected), actual)
}

// CheckTrue asserts that actual is true; shorthand for Check(actual, true).
func CheckTrue(actual bool) {
	Default().Check(context.Background(), true, actual)
}

// CheckPanics asserts that fn panics. The panic is swallowed and recorded
// as a boolean check.
func CheckPanics(fn func()) {
	CheckTrue(didPanic(fn))
}

// CheckNoPanic asserts that fn completes without panicking.
func CheckNoPanic(fn func()) {
	Check(didPanic(fn), false)
}

func didPanic(fn func()) (panicked bool) {
	defer func() {
		if recover() != nil {
			panicked = true
		}
	}()

	fn()

	return panicked
}

package simpletest

import (
	"math"
	"reflect"

	"github.com/shopspring/decimal"
)

// floatEpsilon is the maximum absolute difference for two floating-point
// values to be considered equal. The same tolerance applies to 32-bit and
// 64-bit values; it is not graduated by precision.
const floatEpsilon = 1e-4

// isEqual decides whether two values of the same type are equal enough.
//
// The dispatch is a closed type switch: floating-point values compare within
// floatEpsilon, decimal.Decimal compares by value (== on the struct would
// compare internal pointers), and everything else falls back to Go equality.
// Named types with a floating-point underlying kind take the tolerance path
// as well.
//
// Callers must guarantee both values share a comparable type; the generic
// Check entry points enforce this at compile time.
func isEqual(expected, actual any) bool {
	switch exp := expected.(type) {
	case float64:
		act, ok := actual.(float64)
		return ok && floatsClose(exp, act)
	case float32:
		act, ok := actual.(float32)
		return ok && floatsClose(float64(exp), float64(act))
	case decimal.Decimal:
		act, ok := actual.(decimal.Decimal)
		return ok && exp.Equal(act)
	}

	if expVal, actVal := reflect.ValueOf(expected), reflect.ValueOf(actual); expVal.IsValid() && actVal.IsValid() &&
		expVal.Type() == actVal.Type() && isFloatKind(expVal.Kind()) {
		return floatsClose(expVal.Float(), actVal.Float())
	}

	return expected == actual
}

// floatsClose reports whether two floats differ by strictly less than
// floatEpsilon. A difference of exactly floatEpsilon is not equal, and any
// NaN operand yields false (the difference is NaN, and NaN < x is false).
func floatsClose(expected, actual float64) bool {
	return math.Abs(actual-expected) < floatEpsilon
}

func isFloatKind(kind reflect.Kind) bool {
	return kind == reflect.Float32 || kind == reflect.Float64
}

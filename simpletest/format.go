package simpletest

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/shopspring/decimal"
)

// floatDigits is the number of significant digits used when rendering
// floating-point values.
const floatDigits = 10

// renderValue converts a value to its canonical printable form, wrapped in
// double quotes. Rendering is pure and never panics for comparable values.
//
// Booleans render as the words "true"/"false", never 1/0. Named integer
// types (closed-set enumerations) degrade to their numeric value; any
// Stringer on them is deliberately bypassed.
func renderValue(value any) string {
	return `"` + bareRender(value) + `"`
}

func bareRender(value any) string {
	switch v := value.(type) {
	case nil:
		return "<nil>"
	case bool:
		return strconv.FormatBool(v)
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'g', floatDigits, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'g', floatDigits, 32)
	case decimal.Decimal:
		return v.String()
	}

	// Named types dispatch on their underlying kind so that enumerations,
	// flag types, and unit types all render the same as their base type.
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'g', floatDigits, 32)
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', floatDigits, 64)
	case reflect.String:
		return rv.String()
	default:
		return fmt.Sprintf("%v", value)
	}
}

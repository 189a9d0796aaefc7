package simpletest

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// color is a closed-set enumeration with a Stringer, which rendering must bypass.
type color int

const (
	red color = iota + 1
	green
)

func (c color) String() string { return "a color" }

func TestRenderValue_Booleans(t *testing.T) {
	t.Parallel()

	require.Equal(t, `"true"`, renderValue(true))
	require.Equal(t, `"false"`, renderValue(false))
}

func TestRenderValue_Strings(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `"abc"`, renderValue("abc"))
	assert.Equal(t, `""`, renderValue(""))
}

func TestRenderValue_Integers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `"1"`, renderValue(1))
	assert.Equal(t, `"-7"`, renderValue(int16(-7)))
	assert.Equal(t, `"255"`, renderValue(uint8(255)))
}

func TestRenderValue_EnumDegradesToNumeric(t *testing.T) {
	t.Parallel()

	// The Stringer is deliberately ignored; enumerations render their code.
	assert.Equal(t, `"1"`, renderValue(red))
	assert.Equal(t, `"2"`, renderValue(green))
}

func TestRenderValue_Floats(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `"1.5"`, renderValue(1.5))
	assert.Equal(t, `"2.25"`, renderValue(float32(2.25)))

	// 10 significant digits.
	assert.Equal(t, `"3.141592654"`, renderValue(3.14159265358979))
}

func TestRenderValue_Decimal(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `"1.1"`, renderValue(decimal.RequireFromString("1.1")))
}

func TestRenderValue_NilAndStructs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `"<nil>"`, renderValue(nil))

	type pair struct{ A, B int }

	assert.Equal(t, `"{1 2}"`, renderValue(pair{A: 1, B: 2}))
}

func TestRenderValue_NamedBoolAndString(t *testing.T) {
	t.Parallel()

	type flag bool

	type label string

	assert.Equal(t, `"true"`, renderValue(flag(true)))
	assert.Equal(t, `"hi"`, renderValue(label("hi")))
}

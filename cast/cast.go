package cast

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"
	"go.dw1.io/safemath"
)

var (
	// ErrNotInteger indicates a value that has no exact integer
	// representation.
	ErrNotInteger = errors.New("value is not an integer")

	// ErrNegative indicates a negative count.
	ErrNegative = errors.New("value is negative")
)

// Integer is an alias for [safemath.Integer].
type Integer = safemath.Integer

// Type is a constraint that matches all types supported by [To].
type Type interface {
	Integer | ~string | ~bool | ~float32 | ~float64
}

// To converts v to type T. Integer targets are converted with safemath when v
// is itself an integer, and with spf13/cast otherwise.
func To[T Type](v any) (T, error) {
	var zero T

	switch any(zero).(type) {
	case int:
		return toIntOrBase[T, int](v)
	case int64:
		return toIntOrBase[T, int64](v)
	case uint64:
		return toIntOrBase[T, uint64](v)
	case string:
		return toBase[T, string](v)
	case bool:
		return toBase[T, bool](v)
	case float64:
		return toBase[T, float64](v)
	default:
		return zero, fmt.Errorf("unsupported conversion to %T from %T", zero, v)
	}
}

// IsNumber reports whether v's dynamic type is a Go integer or float kind.
func IsNumber(v any) bool {
	return isIntVal(v) || isFloatVal(v)
}

// Literal renders a number the way JavaScript's Number.prototype.toString
// does: NaN, Infinity and -Infinity by name, integral values without a
// fraction, and exponent notation outside [1e-6, 1e21). ok is false when v is
// not a number.
func Literal(v any) (s string, ok bool) {
	switch n := v.(type) {
	case float32:
		return formatFloat(float64(n), 32), true
	case float64:
		return formatFloat(n, 64), true
	}

	if !isIntVal(v) {
		return "", false
	}

	s, err := cast.ToStringE(v)
	if err != nil {
		return "", false
	}

	return s, true
}

// Count converts v to a non-negative int. Floats are accepted when they hold
// an exact integer, as they do after JSON decoding.
func Count(v any) (int, error) {
	n, err := Int(v)
	if err != nil {
		return 0, err
	}

	if n < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegative, n)
	}

	return n, nil
}

// Int converts an integer or integral float to int.
func Int(v any) (int, error) {
	switch f := v.(type) {
	case float32:
		return floatToInt(float64(f))
	case float64:
		return floatToInt(f)
	}

	if !isIntVal(v) {
		return 0, fmt.Errorf("%w: %T", ErrNotInteger, v)
	}

	return toInt[int, int](v)
}

// Bool converts v to a bool using spf13/cast, so "true", 1 and true all
// convert to true.
func Bool(v any) (bool, error) {
	return To[bool](v)
}

func floatToInt(f float64) (int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, fmt.Errorf("%w: %v", ErrNotInteger, f)
	}

	if f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, fmt.Errorf("%w: %v", safemath.ErrTruncation, f)
	}

	return toInt[int, int](int64(f))
}

func formatFloat(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}

	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(f, 'e', -1, bitSize)
		mant, exp, _ := strings.Cut(s, "e")
		sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
		return mant + "e" + sign + digits
	}

	return strconv.FormatFloat(f, 'f', -1, bitSize)
}

// toInt converts to the integer type I using safemath to avoid
// overflow/underflow and then re-types the result as T (which is the caller's
// type parameter).
func toInt[T any, I Integer](v any) (T, error) {
	converted, err := safemath.ConvertAny[I](v)
	if err != nil {
		var zero T
		return zero, err
	}

	return any(converted).(T), nil
}

// toBase converts to the basic type B using spf13/cast and re-types the
// result as T (which is the caller's type parameter).
func toBase[T any, B cast.Basic](v any) (T, error) {
	converted, err := cast.ToE[B](v)
	if err != nil {
		var zero T
		return zero, err
	}

	return any(converted).(T), nil
}

// toIntOrBase converts v to the integer type I. If v is an integer, it uses
// safemath. If v is not an integer, it uses cast.ToE.
func toIntOrBase[T any, I interface {
	cast.Basic
	Integer
}](v any) (T, error) {
	if isIntVal(v) {
		return toInt[T, I](v)
	}

	return toBase[T, I](v)
}

// isIntVal reports whether v's dynamic type is one of the integer types
// eligible for safemath conversions.
func isIntVal(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr:
		return true
	default:
		return false
	}
}

func isFloatVal(v any) bool {
	switch v.(type) {
	case float32, float64:
		return true
	default:
		return false
	}
}

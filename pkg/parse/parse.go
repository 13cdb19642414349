// Package parse decodes decimal numbers from byte ranges without copying.
//
// Accepted forms are deliberately narrow: an optional sign followed by
// decimal digits for integers, plus an optional fraction and exponent for
// floats. Hex, underscores, "inf" and "nan" are rejected.
package parse

import (
	"strconv"

	"github.com/rawbytedev/chai/internal/common"
	"github.com/rawbytedev/chai/pkg/ascii"
)

// Int decodes b as a signed decimal integer. ok is false on malformed input
// or when the value does not fit in int64.
func Int(b []byte) (int64, bool) {
	digits := skipSign(b)
	if len(digits) == 0 || scanDigits(digits) != len(digits) {
		return 0, false
	}
	v, err := strconv.ParseInt(common.BytesString(b), 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Float decodes b as a decimal floating-point number.
func Float(b []byte) (float64, bool) {
	if !isDecimalFloat(b) {
		return 0, false
	}
	v, err := strconv.ParseFloat(common.BytesString(b), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Float32 is Float rounded to single precision.
func Float32(b []byte) (float32, bool) {
	if !isDecimalFloat(b) {
		return 0, false
	}
	v, err := strconv.ParseFloat(common.BytesString(b), 32)
	if err != nil {
		return 0, false
	}
	return float32(v), true
}

func skipSign(b []byte) []byte {
	if len(b) > 0 && (b[0] == '+' || b[0] == '-') {
		return b[1:]
	}
	return b
}

func scanDigits(b []byte) int {
	n := 0
	for n < len(b) && ascii.IsDigit(b[n]) {
		n++
	}
	return n
}

// [+-] digits [. digits] [(e|E) [+-] digits], at least one mantissa digit
func isDecimalFloat(b []byte) bool {
	b = skipSign(b)
	whole := scanDigits(b)
	b = b[whole:]
	frac := 0
	if len(b) > 0 && b[0] == '.' {
		b = b[1:]
		frac = scanDigits(b)
		b = b[frac:]
	}
	if whole+frac == 0 {
		return false
	}
	if len(b) > 0 && (b[0] == 'e' || b[0] == 'E') {
		b = skipSign(b[1:])
		exp := scanDigits(b)
		if exp == 0 {
			return false
		}
		b = b[exp:]
	}
	return len(b) == 0
}

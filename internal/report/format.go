package report

import (
	"math"
	"strconv"
	"strings"
)

// FormatSeconds renders a float in the report format: the shortest
// round-tripping digits, always with a fractional part ("30.0", "2.5"), and
// exponent form below 1e-4 or from 1e16 up ("1e-05", "1.5e+16").
func FormatSeconds(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	if v != 0 {
		e := strconv.FormatFloat(v, 'e', -1, 64)
		exp, err := strconv.Atoi(e[strings.IndexByte(e, 'e')+1:])
		if err == nil && (exp < -4 || exp >= 16) {
			return e
		}
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// Hours converts total seconds to whole hours using divisor, truncating
// toward zero.
func Hours(totalSeconds, divisor float64) int {
	return int(totalSeconds / divisor)
}

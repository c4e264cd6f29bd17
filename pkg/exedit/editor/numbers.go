package editor

import (
	"math"
	"strconv"
	"strings"
)

// DefaultFixedDigits is the fractional digit count WriteCell rounds
// fractional values to before formatting, suppressing floating-point noise.
const DefaultFixedDigits = 14

// ToFixedFloat rounds v to at most digits fractional digits by formatting
// and re-parsing, returning a plain float64.
func ToFixedFloat(v float64, digits int) float64 {
	fixed := strconv.FormatFloat(v, 'f', digits, 64)
	out, err := strconv.ParseFloat(fixed, 64)
	if err != nil {
		return v
	}
	return out
}

// CountDecimals returns the number of fractional digits in v's shortest
// decimal representation, or 0 for values with no fractional part. The
// count is representation-dependent: values carrying binary floating-point
// artifacts report the artifact's digits, so 0.1+0.2 counts 17.
func CountDecimals(v float64) int {
	if math.Trunc(v) == v {
		return 0
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return len(s) - i - 1
	}
	return 0
}

package model

import (
	"math"
	"strconv"
	"strings"
)

// CoerceNumber converts user text to a number the permissive way a numeric
// form field does: blank is 0, "Infinity" and hex literals are accepted,
// and anything unparseable is NaN. It never fails.
func CoerceNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}

	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "0x") || strings.HasPrefix(lower, "0o") || strings.HasPrefix(lower, "0b") {
		n, err := strconv.ParseUint(s[2:], baseFor(lower[1]), 64)
		if err != nil {
			return math.NaN()
		}
		return float64(n)
	}

	// ParseFloat accepts spellings a form field would reject.
	if strings.ContainsAny(lower, "_pn") {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

func baseFor(prefix byte) int {
	switch prefix {
	case 'x':
		return 16
	case 'o':
		return 8
	default:
		return 2
	}
}

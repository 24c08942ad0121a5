package model

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// sixteenths lists the fractions a tape measure shows, in 1/16" steps.
var sixteenths = []struct {
	value   float64
	display string
}{
	{0.0625, "1/16"}, {0.125, "1/8"}, {0.1875, "3/16"}, {0.25, "1/4"},
	{0.3125, "5/16"}, {0.375, "3/8"}, {0.4375, "7/16"}, {0.5, "1/2"},
	{0.5625, "9/16"}, {0.625, "5/8"}, {0.6875, "11/16"}, {0.75, "3/4"},
	{0.8125, "13/16"}, {0.875, "7/8"}, {0.9375, "15/16"},
}

// FormatInches renders a length as a woodworking measurement: whole inches
// plus the nearest sixteenth when the value is within 0.001" of one,
// otherwise a decimal with at most three places. Negative values keep
// their sign.
func FormatInches(v float64) string {
	if v < 0 {
		return "-" + FormatInches(-v)
	}
	whole := math.Floor(v)
	frac := v - whole
	if frac == 0 {
		return fmt.Sprintf("%.0f\"", whole)
	}

	best := sixteenths[0]
	bestDiff := math.Abs(frac - best.value)
	for _, f := range sixteenths[1:] {
		if d := math.Abs(frac - f.value); d < bestDiff {
			best, bestDiff = f, d
		}
	}

	if bestDiff < 0.001 {
		if whole == 0 {
			return best.display + "\""
		}
		return fmt.Sprintf("%.0f %s\"", whole, best.display)
	}

	s := strconv.FormatFloat(v, 'f', 3, 64)
	s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	return s + "\""
}

// FormatNumber prints a float the shortest way that round-trips, which is
// how dimensions appear in legend and rip labels (e.g. 5.5, 12, 0.125).
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

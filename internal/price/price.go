package price

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Parse extracts a numeric amount from a human-entered price string.
// Anything that is not a digit or a decimal point is stripped before
// parsing. Unparseable input degrades to 0, never an error — a typo in
// the editor must not break the preview.
func Parse(value string) float64 {
	var b strings.Builder
	for _, r := range value {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}

	parsed, err := strconv.ParseFloat(b.String(), 64)
	if err != nil || math.IsInf(parsed, 0) || math.IsNaN(parsed) {
		return 0
	}
	return parsed
}

// Format renders an amount as a dollar display string with exactly two
// decimal places. Negative amounts are not clamped ("$-1.00").
func Format(value float64) string {
	return fmt.Sprintf("$%.2f", value)
}

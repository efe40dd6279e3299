package automaton

import (
	"math"

	"github.com/cznic/mathutil"
)

// minIntSentinel/maxIntSentinel stand in for -∞/+∞ on an empty state
// set.
const (
	minIntSentinel = math.MinInt
	maxIntSentinel = math.MaxInt
)

// maxInt and minInt delegate to cznic/mathutil for plain int
// comparisons.
func maxInt(a, b int) int { return mathutil.Max(a, b) }
func minInt(a, b int) int { return mathutil.Min(a, b) }

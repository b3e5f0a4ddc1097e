package wheel

import "math"

// boundaryEpsilon absorbs float error when an offset was produced by
// multiplying a display index by the row extent.
const boundaryEpsilon = 1e-9

// DisplayIndex maps a content offset to the display index of the row whose
// band contains it: floor(offset / extent).
func DisplayIndex(offset, extent float64) int {
	q := offset / extent
	if r := math.Round(q); math.Abs(q-r) < boundaryEpsilon {
		return int(r)
	}
	return int(math.Floor(q))
}

// LogicalIndex reduces a display index into [0, rows). It is always
// non-negative, including for negative display indices. rows must be > 0.
func LogicalIndex(display, rows int) int {
	return ((display % rows) + rows) % rows
}

// NearestDisplay returns the display index congruent to row (mod rows) whose
// boundary is closest to offset. Equal distances resolve forward, toward the
// larger index.
func NearestDisplay(offset, extent float64, row, rows int) int {
	cur := offset / extent
	back := row + rows*int(math.Floor((cur-float64(row))/float64(rows)))
	fwd := back + rows
	if float64(fwd)-cur <= cur-float64(back) {
		return fwd
	}
	return back
}

// roundHalfAway rounds to the nearest integer, halves away from zero.
func roundHalfAway(x float64) float64 {
	return math.Round(x)
}

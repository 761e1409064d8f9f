// Package slidingmedian computes the streaming median of a dense
// real-valued sequence under a fixed-size sliding window and an
// independent output stride, tolerating IEEE-754 NaN and infinities under
// two selectable policies.
//
// The dispatcher (this file) validates its inputs and hands off to one of
// two engines: internal/smallwindow for window sizes in [2,8], which uses
// fixed sorting networks, and internal/bigwindow for larger windows, which
// uses a double-heap engine. Both are exercised identically through the
// entry points below; callers never need to know which one ran.
package slidingmedian

import (
	"github.com/JensT1999/Sliding-Median-Window/internal/bigwindow"
	"github.com/JensT1999/Sliding-Median-Window/internal/smallwindow"
)

// SmallWindowThreshold is the largest window size handled by the
// sorting-network engine; windows larger than this are handled by the
// double-heap engine. This boundary is a compile-time constant per spec
// §4.G, and both engines must agree with the oracle exactly at it.
const SmallWindowThreshold = smallwindow.MaxW

// SlidingMedian validates (x, w, s, y) and computes the sliding median of
// x into y, selecting the small-window or large-window engine by w. It
// reports false, leaving y untouched, if any precondition in spec §4.G is
// violated.
func SlidingMedian(x []float64, w, s int, ignoreNaN bool, y []float64) bool {
	m, ok := validate(x, w, s, y)
	if !ok {
		return false
	}
	if w <= SmallWindowThreshold {
		smallwindow.Run(x, w, s, ignoreNaN, y[:m])
	} else {
		bigwindow.Run(x, w, s, ignoreNaN, y[:m])
	}
	return true
}

// SlidingMedianTiny forces the sorting-network engine. It fails if w is
// outside [2, SmallWindowThreshold].
func SlidingMedianTiny(x []float64, w, s int, ignoreNaN bool, y []float64) bool {
	m, ok := validate(x, w, s, y)
	if !ok || w < smallwindow.MinW || w > SmallWindowThreshold {
		return false
	}
	smallwindow.Run(x, w, s, ignoreNaN, y[:m])
	return true
}

// SlidingMedianBig forces the double-heap engine, regardless of w.
func SlidingMedianBig(x []float64, w, s int, ignoreNaN bool, y []float64) bool {
	m, ok := validate(x, w, s, y)
	if !ok {
		return false
	}
	bigwindow.Run(x, w, s, ignoreNaN, y[:m])
	return true
}

// OutputLen returns M = floor((L-w)/s) + 1, the number of windows that
// SlidingMedian will emit for a sequence of length L. Callers use this to
// size y before calling SlidingMedian.
func OutputLen(l, w, s int) int {
	return (l-w)/s + 1
}

// validate checks spec §4.G's preconditions and returns the required
// output length on success.
func validate(x []float64, w, s int, y []float64) (int, bool) {
	if x == nil || y == nil {
		return 0, false
	}
	l := len(x)
	if l == 0 || w < 2 || s < 1 || l < w {
		return 0, false
	}
	m := OutputLen(l, w, s)
	if len(y) < m {
		return 0, false
	}
	return m, true
}

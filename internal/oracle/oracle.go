// Package oracle implements the naive sort-based reference median used
// only in tests (spec §4.H, §8): for each emitted window it classifies
// NaNs, applies the policy, sorts what's left and reads off the median.
// It intentionally does not share any code path with smallwindow or
// bigwindow — it exists to cross-check them.
package oracle

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/JensT1999/Sliding-Median-Window/internal/classify"
)

// Run computes the oracle's sliding median of x under window w and stride
// s, writing into y.
func Run(x []float64, w, s int, ignoreNaN bool, y []float64) {
	buf := make([]float64, w)
	compact := make([]float64, 0, w)

	stride := 0
	yi := 0
	for i := w - 1; i < len(x); i++ {
		copy(buf, x[i-w+1:i+1])
		if stride == 0 {
			y[yi] = medianOfWindow(buf, compact, ignoreNaN)
			yi++
			stride = s - 1
		} else {
			stride--
		}
	}
}

func medianOfWindow(buf, compact []float64, ignoreNaN bool) float64 {
	if ignoreNaN {
		for _, v := range buf {
			if classify.IsNaN(v) {
				return math.NaN()
			}
		}
		return sortedMedian(buf)
	}

	compact = compact[:0]
	for _, v := range buf {
		if !classify.IsNaN(v) {
			compact = append(compact, v)
		}
	}
	if len(compact) == 0 {
		return math.NaN()
	}
	return sortedMedian(compact)
}

// sortedMedian sorts a (NaN-free) slice ascending via gonum's floats.Sort
// and reads off the median, matching spec §9's requirement that the
// reference comparator strip NaNs before sorting (gonum.floats.Sort
// delegates to the standard sort.Float64s total order, which is undefined
// in the presence of NaN).
func sortedMedian(a []float64) float64 {
	floats.Sort(a)
	n := len(a)
	if n%2 == 1 {
		return a[n/2]
	}
	return (a[n/2-1] + a[n/2]) / 2
}

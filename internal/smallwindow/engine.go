// Package smallwindow implements the per-window median engine used for
// window sizes W in [2,8], dispatching to the fixed sorting-network kernels
// in internal/network.
package smallwindow

import (
	"math"

	"github.com/JensT1999/Sliding-Median-Window/internal/classify"
	"github.com/JensT1999/Sliding-Median-Window/internal/network"
)

// MinW and MaxW bound the window sizes this engine supports; the dispatcher
// hands off to the large-window engine above MaxW and rejects w below MinW.
const (
	MinW = 2
	MaxW = 8
)

// Run computes the sliding median of x under window W and stride S,
// writing results into y. x, W and S are assumed pre-validated by the
// caller (the dispatcher in package slidingmedian); W must be in
// [MinW, MaxW].
func Run(x []float64, w, s int, ignoreNaN bool, y []float64) {
	buf := make([]float64, w)
	compact := make([]float64, w)

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

// medianOfWindow computes the median of one window per the active NaN
// policy. buf is consumed (the network kernels reorder it in place);
// compact is scratch space of the same length, reused across calls.
func medianOfWindow(buf, compact []float64, ignoreNaN bool) float64 {
	w := len(buf)

	if ignoreNaN {
		for _, v := range buf {
			if classify.IsNaN(v) {
				return math.NaN()
			}
		}
		return network.Median(buf)
	}

	k := 0
	for _, v := range buf {
		if !classify.IsNaN(v) {
			compact[k] = v
			k++
		}
	}
	switch {
	case k == 0:
		return math.NaN()
	case k == 1:
		return compact[0]
	case k == w:
		return network.Median(buf)
	default:
		return network.Median(compact[:k])
	}
}

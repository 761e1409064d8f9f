package network

import "github.com/klauspost/cpuid/v2"

// median8Wide implements the same n=8 median as median8Narrow, but
// expressed branch-light: every compare-exchange is a min/max pair held in
// locals rather than a conditional swap through a slice index, so the
// compiler can keep the working set in registers across the whole network.
// It runs the same odd-even transposition network as median8Narrow
// (see oddEvenSort) unrolled over named locals instead of a loop. This
// mirrors the teacher's split between a portable pure-Go kernel and an
// AVX2-labeled one for the same 3x3 median filter (see
// internal/median/median3x3_amd64.go in the reference pack): both variants
// are pure Go here, but the seam is where a real vector kernel would later
// be substituted without touching any call site.
func median8Wide(a []float64) float64 {
	v0, v1, v2, v3 := a[0], a[1], a[2], a[3]
	v4, v5, v6, v7 := a[4], a[5], a[6], a[7]

	// phase 0 (even start): (0,1) (2,3) (4,5) (6,7)
	v0, v1 = minmax(v0, v1)
	v2, v3 = minmax(v2, v3)
	v4, v5 = minmax(v4, v5)
	v6, v7 = minmax(v6, v7)

	// phase 1 (odd start): (1,2) (3,4) (5,6)
	v1, v2 = minmax(v1, v2)
	v3, v4 = minmax(v3, v4)
	v5, v6 = minmax(v5, v6)

	// phase 2 (even start)
	v0, v1 = minmax(v0, v1)
	v2, v3 = minmax(v2, v3)
	v4, v5 = minmax(v4, v5)
	v6, v7 = minmax(v6, v7)

	// phase 3 (odd start)
	v1, v2 = minmax(v1, v2)
	v3, v4 = minmax(v3, v4)
	v5, v6 = minmax(v5, v6)

	// phase 4 (even start)
	v0, v1 = minmax(v0, v1)
	v2, v3 = minmax(v2, v3)
	v4, v5 = minmax(v4, v5)
	v6, v7 = minmax(v6, v7)

	// phase 5 (odd start)
	v1, v2 = minmax(v1, v2)
	v3, v4 = minmax(v3, v4)
	v5, v6 = minmax(v5, v6)

	// phase 6 (even start)
	v0, v1 = minmax(v0, v1)
	v2, v3 = minmax(v2, v3)
	v4, v5 = minmax(v4, v5)
	v6, v7 = minmax(v6, v7)

	// phase 7 (odd start)
	v1, v2 = minmax(v1, v2)
	v3, v4 = minmax(v3, v4)
	v5, v6 = minmax(v5, v6)

	return (v3 + v4) / 2
}

func minmax(x, y float64) (lo, hi float64) {
	if x > y {
		return y, x
	}
	return x, y
}

func init() {
	wide := cpuid.CPU.Supports(cpuid.AVX2)

	kernels[2] = median2
	kernels[3] = median3
	kernels[4] = median4
	kernels[5] = median5
	kernels[6] = median6
	kernels[7] = median7
	if wide {
		kernels[8] = median8Wide
	} else {
		kernels[8] = median8Narrow
	}
}

// SortFull fully sorts a buffer of length 6 or 8 in place, used by callers
// that want the whole order rather than just the median (e.g. padding a
// 5- or 7-element window with a +Inf sentinel and reusing the 6- or 8-wide
// sort, per spec.md §4.B).
func SortFull(a []float64) {
	switch len(a) {
	case 6:
		sort6(a)
	case 8:
		sort8(a)
	default:
		panic("network: SortFull only supports length 6 or 8")
	}
}

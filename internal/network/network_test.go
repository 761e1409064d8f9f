package network

import (
	"sort"
	"testing"

	"github.com/valyala/fastrand"
)

func bruteMedian(a []float64) float64 {
	b := append([]float64(nil), a...)
	sort.Float64s(b)
	n := len(b)
	if n%2 == 1 {
		return b[n/2]
	}
	return (b[n/2-1] + b[n/2]) / 2
}

// TestMedianKernels mirrors the teacher's randomized-permutation style
// (internal/qsort/qsort_test.go): for every n in [2,8], shuffle a known
// permutation many times and check the network's median against a brute
// force sort.
func TestMedianKernels(t *testing.T) {
	rng := fastrand.RNG{}
	for n := 2; n <= 8; n++ {
		for trial := 0; trial < 500; trial++ {
			a := make([]float64, n)
			for i := range a {
				a[i] = float64(i + 1)
			}
			for i := range a {
				j := int(rng.Uint32n(uint32(n)))
				a[i], a[j] = a[j], a[i]
			}
			want := bruteMedian(a)
			buf := append([]float64(nil), a...)
			got := Median(buf)
			if got != want {
				t.Fatalf("n=%d trial=%d: Median(%v) = %v, want %v (input %v)", n, trial, buf, got, want, a)
			}
		}
	}
}

func TestSortFull(t *testing.T) {
	rng := fastrand.RNG{}
	for _, n := range []int{6, 8} {
		for trial := 0; trial < 200; trial++ {
			a := make([]float64, n)
			for i := range a {
				a[i] = float64(i + 1)
			}
			for i := range a {
				j := int(rng.Uint32n(uint32(n)))
				a[i], a[j] = a[j], a[i]
			}
			want := append([]float64(nil), a...)
			sort.Float64s(want)
			SortFull(a)
			for i := range a {
				if a[i] != want[i] {
					t.Fatalf("n=%d trial=%d: SortFull produced %v, want %v", n, trial, a, want)
				}
			}
		}
	}
}

func TestMedian8BothVariants(t *testing.T) {
	rng := fastrand.RNG{}
	for trial := 0; trial < 500; trial++ {
		a := make([]float64, 8)
		for i := range a {
			a[i] = float64(i + 1)
		}
		for i := range a {
			j := int(rng.Uint32n(8))
			a[i], a[j] = a[j], a[i]
		}
		want := bruteMedian(a)
		gotNarrow := median8Narrow(append([]float64(nil), a...))
		gotWide := median8Wide(append([]float64(nil), a...))
		if gotNarrow != want || gotWide != want {
			t.Fatalf("trial=%d: narrow=%v wide=%v want=%v (input %v)", trial, gotNarrow, gotWide, want, a)
		}
	}
}

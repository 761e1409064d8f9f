package bigwindow

import (
	"math"
	"testing"

	"github.com/JensT1999/Sliding-Median-Window/internal/oracle"
	"github.com/valyala/fastrand"
)

func closeEnough(a, b float64) bool {
	switch {
	case math.IsNaN(a) && math.IsNaN(b):
		return true
	case math.IsInf(a, 1) && math.IsInf(b, 1):
		return true
	case math.IsInf(a, -1) && math.IsInf(b, -1):
		return true
	default:
		return math.Abs(a-b) < 1e-9
	}
}

func TestRunMatchesOracle(t *testing.T) {
	Debug = true
	defer func() { Debug = false }()

	rng := fastrand.RNG{}
	for _, w := range []int{9, 10, 16, 33} {
		for _, s := range []int{1, 2, 5} {
			for _, ignoreNaN := range []bool{true, false} {
				const l = 150
				x := make([]float64, l)
				for i := range x {
					switch r := rng.Uint32n(12); {
					case r == 0:
						x[i] = math.NaN()
					case r == 1:
						x[i] = math.Inf(1)
					case r == 2:
						x[i] = math.Inf(-1)
					default:
						x[i] = float64(rng.Uint32n(400)) - 200
					}
				}
				m := (l-w)/s + 1
				got := make([]float64, m)
				want := make([]float64, m)
				Run(x, w, s, ignoreNaN, got)
				oracle.Run(x, w, s, ignoreNaN, want)
				for i := 0; i < m; i++ {
					if !closeEnough(got[i], want[i]) {
						t.Fatalf("w=%d s=%d ignoreNaN=%v i=%d: got %v want %v", w, s, ignoreNaN, i, got[i], want[i])
					}
				}
			}
		}
	}
}

func TestLargeWindowStride(t *testing.T) {
	x := make([]float64, 20)
	for i := range x {
		x[i] = 7
	}
	y := make([]float64, 11)
	Run(x, 10, 1, false, y)
	for _, v := range y {
		if v != 7 {
			t.Fatalf("got %v, want all 7s", y)
		}
	}
}

func TestEstMemGrowsWithW(t *testing.T) {
	if EstMem(100) <= EstMem(10) {
		t.Fatalf("EstMem should grow with w: EstMem(10)=%d EstMem(100)=%d", EstMem(10), EstMem(100))
	}
}

func TestPoolRoundTripResetsState(t *testing.T) {
	e1 := Checkout(50, false)
	for i := 0; i < 50; i++ {
		e1.AddNew(float64(i))
	}
	for i := 0; i < 10; i++ {
		e1.UpdateOld(float64(50 + i))
	}
	Release(e1)

	e2 := Checkout(50, true)
	if e2.size != 0 || e2.nanCount != 0 || e2.pair.MaxLen != 0 || e2.pair.MinLen != 0 {
		t.Fatalf("pooled engine was not reset: size=%d nanCount=%d MaxLen=%d MinLen=%d",
			e2.size, e2.nanCount, e2.pair.MaxLen, e2.pair.MinLen)
	}
	Release(e2)
}

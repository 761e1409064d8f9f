package bigwindow

// Run computes the sliding median of x under window w and stride s,
// writing results into y. x, w and s are assumed pre-validated by the
// caller (the dispatcher). The engine itself has no lower bound on w;
// SlidingMedianBig relies on that to force this engine at any window size.
func Run(x []float64, w, s int, ignoreNaN bool, y []float64) {
	e := Checkout(w, ignoreNaN)
	defer Release(e)

	stride := 0
	yi := 0
	for _, v := range x {
		if e.size < e.w {
			e.AddNew(v)
		} else {
			e.UpdateOld(v)
		}
		if e.Full() {
			if stride == 0 {
				y[yi] = e.Result()
				yi++
				stride = s - 1
			} else {
				stride--
			}
		}
	}
}

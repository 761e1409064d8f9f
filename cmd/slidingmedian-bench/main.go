// Command slidingmedian-bench implements the benchmark CLI documented
// (but left unimplemented) in spec.md §6: it generates a reproducible
// random sequence with injected NaN/Inf special values, runs the core
// sliding-median engine over it, and reports throughput.
//
// Unlike the rest of this repo's ambient tooling, it takes its eight
// parameters as strict positional arguments (L nNaN nInf loBound hiBound W
// S policy) rather than named flags, because that positional contract is
// what spec.md §6 specifies for this tool; see DESIGN.md.
package main

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"time"

	slidingmedian "github.com/JensT1999/Sliding-Median-Window"
	"github.com/pbnjay/memory"
	"github.com/valyala/fastrand"
)

// seed is fixed for reproducibility, per spec.md §6.
const seed = 0xC0FFEE

type params struct {
	l, nNaN, nInf, loBound, hiBound, w, s int
	policy                                bool
}

func main() {
	p, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "slidingmedian-bench:", err)
		fmt.Fprintln(os.Stderr, "usage: slidingmedian-bench L nNaN nInf loBound hiBound W S policy")
		os.Exit(1)
	}

	totalMiBs := memory.TotalMemory() / 1024 / 1024
	fmt.Printf("slidingmedian-bench: %d MiB system memory detected\n", totalMiBs)

	x := generate(p)
	m := slidingmedian.OutputLen(p.l, p.w, p.s)
	y := make([]float64, m)

	start := time.Now()
	ok := slidingmedian.SlidingMedian(x, p.w, p.s, p.policy, y)
	elapsed := time.Since(start)
	if !ok {
		fmt.Fprintln(os.Stderr, "slidingmedian-bench: slidingMedian rejected its inputs")
		os.Exit(1)
	}

	msPerWindow := float64(elapsed.Microseconds()) / 1000.0 / float64(m)
	fmt.Printf("L=%d W=%d S=%d policy=%v: %d windows in %s (%.4f ms/window)\n",
		p.l, p.w, p.s, p.policy, m, elapsed, msPerWindow)
}

// parseArgs validates and parses the eight positional arguments per
// spec.md §6.
func parseArgs(argv []string) (params, error) {
	var p params
	if len(argv) != 8 {
		return p, fmt.Errorf("expected 8 positional arguments, got %d", len(argv))
	}

	ints := []*int{&p.l, &p.nNaN, &p.nInf, &p.loBound, &p.hiBound, &p.w, &p.s}
	for i, dst := range ints {
		v, err := strconv.Atoi(argv[i])
		if err != nil {
			return p, fmt.Errorf("argument %d (%q): %w", i+1, argv[i], err)
		}
		*dst = v
	}

	switch argv[7] {
	case "true":
		p.policy = true
	case "false":
		p.policy = false
	default:
		return p, fmt.Errorf("policy must be \"true\" or \"false\", got %q", argv[7])
	}

	if p.loBound >= p.hiBound {
		return p, fmt.Errorf("loBound must be < hiBound")
	}
	if p.w < 2 || p.s < 1 || p.l < p.w {
		return p, fmt.Errorf("require W>=2, S>=1, L>=W")
	}
	// Canonical semantics per spec.md §9: accept nanValues+infValues <= L
	// (one sampled variant used >=, which wrongly rejects the all-special
	// sequence).
	if p.nNaN+p.nInf > p.l {
		return p, fmt.Errorf("nNaN+nInf must be <= L")
	}
	return p, nil
}

// generate builds the benchmark input: a uniform integer sequence in
// [loBound, hiBound], with nNaN positions forced to NaN and nInf positions
// forced to +/-Inf (floor(nInf/2) positive, the remainder negative),
// placed by a Fisher-Yates shuffle of a permutation of [0, L), per
// spec.md §6.
func generate(p params) []float64 {
	rng := fastrand.RNG{}
	// A zero-value fastrand.RNG seeds itself from the clock on first use;
	// seeding it explicitly with the fixed seed keeps runs reproducible.
	rng.Seed(seed)

	x := make([]float64, p.l)
	span := uint32(p.hiBound - p.loBound + 1)
	for i := range x {
		x[i] = float64(p.loBound) + float64(rng.Uint32n(span))
	}

	perm := make([]int, p.l)
	for i := range perm {
		perm[i] = i
	}
	for i := len(perm) - 1; i > 0; i-- {
		j := int(rng.Uint32n(uint32(i + 1)))
		perm[i], perm[j] = perm[j], perm[i]
	}

	posInf := p.nInf / 2
	for k := 0; k < p.nNaN; k++ {
		x[perm[k]] = math.NaN()
	}
	for k := 0; k < p.nInf; k++ {
		idx := perm[p.nNaN+k]
		if k < posInf {
			x[idx] = math.Inf(1)
		} else {
			x[idx] = math.Inf(-1)
		}
	}
	return x
}

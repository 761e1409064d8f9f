// Package bigwindow implements the double-heap sliding-median engine used
// for window sizes W > smallwindow.MaxW. It combines internal/heap's
// max/min heap pair with its FIFO node ring over a single flat node arena
// allocated once per sliding call (and recycled across calls via a
// sync.Pool, see pool.go).
package bigwindow

import (
	"math"
	"sync"
	"unsafe"

	"github.com/JensT1999/Sliding-Median-Window/internal/classify"
	"github.com/JensT1999/Sliding-Median-Window/internal/heap"
)

// Engine holds one call's worth of sliding-window state: the node arena,
// the heap pair over it, and the FIFO ring threading the same arena.
type Engine struct {
	w         int
	ignoreNaN bool
	nodes     []heap.Node
	pair      *heap.Pair
	ring      *heap.Ring
	size      int // FILLING while size < w, FULL once size == w
	nanCount  int

	capacity int        // arena capacity this engine was allocated with (>= w)
	pool     *sync.Pool // pool this engine was checked out from
}

func newEngine(capacity int) *Engine {
	nodes := make([]heap.Node, capacity)
	return &Engine{
		nodes: nodes,
		pair:  heap.NewPair(nodes),
		ring:  heap.NewRing(nodes),
	}
}

// activate (re)configures a (possibly pooled) engine for a fresh sliding
// call over window size w. It does not touch arena capacity.
func (e *Engine) activate(w int, ignoreNaN bool) {
	e.w = w
	e.ignoreNaN = ignoreNaN
	e.pair.Reset()
	e.ring.Reset()
	e.size = 0
	e.nanCount = 0
}

func targetIsMax(p *heap.Pair) bool {
	return p.MaxLen <= p.MinLen
}

// Debug gates the per-mutation invariant check spec §8 requires of debug
// builds. It is off by default because it is O(W) per admit/update and
// would defeat the engine's O(log8 W) hot-path guarantee; tests turn it on.
var Debug = false

func (e *Engine) checkInvariants() {
	if Debug && !e.pair.CheckInvariants() {
		panic("bigwindow: heap pair invariant violated")
	}
}

// AddNew admits the next input value while still filling the window
// (size < w).
func (e *Engine) AddNew(v float64) {
	idx := e.size
	node := &e.nodes[idx]
	node.Value = v
	isNaN := classify.IsNaN(v)
	node.IsNaN = isNaN
	if isNaN {
		node.Tag = heap.TagNaN
		node.Pos = -1
		e.nanCount++
	} else {
		e.pair.Push(targetIsMax(e.pair), idx)
	}
	e.ring.AdmitNew(idx)
	e.size++
	e.pair.Rebalance() // no-op on the very first admit: one heap is still empty
	e.checkInvariants()
}

// UpdateOld replaces the window's oldest element with v, once the window
// has reached steady state (size == w).
func (e *Engine) UpdateOld(v float64) {
	idx := e.ring.EvictAndAdmit()
	node := &e.nodes[idx]
	oldIsNaN := node.IsNaN
	oldTag := node.Tag
	newIsNaN := classify.IsNaN(v)

	switch {
	case oldIsNaN && newIsNaN:
		node.Value = v

	case oldIsNaN && !newIsNaN:
		e.nanCount--
		node.Value = v
		node.IsNaN = false
		e.pair.Push(targetIsMax(e.pair), idx)
		e.pair.Rebalance()

	case !oldIsNaN && newIsNaN:
		e.pair.RemoveAt(oldTag == heap.TagMax, node.Pos)
		node.Value = v
		node.IsNaN = true
		node.Tag = heap.TagNaN
		node.Pos = -1
		e.nanCount++
		if e.pair.MaxLen > e.pair.MinLen+1 {
			r := e.pair.PopRoot(true)
			e.pair.Push(false, r)
		} else if e.pair.MinLen > e.pair.MaxLen {
			r := e.pair.PopRoot(false)
			e.pair.Push(true, r)
		}
		e.pair.Rebalance()

	default: // old finite, new finite: reposition in place
		old := node.Value
		node.Value = v
		if v != old {
			e.pair.UpdateValue(idx)
		}
		e.pair.Rebalance()
	}
	e.checkInvariants()
}

// Result reports the current window's median under the active NaN policy,
// per spec §4.F.
func (e *Engine) Result() float64 {
	if e.ignoreNaN && e.nanCount > 0 {
		return math.NaN()
	}
	if e.pair.MaxLen == 0 && e.nanCount > 0 {
		return math.NaN()
	}
	if e.pair.MaxLen != e.pair.MinLen {
		return e.pair.RootValue(true)
	}
	return (e.pair.RootValue(true) + e.pair.RootValue(false)) / 2
}

// Full reports whether the window has reached steady state.
func (e *Engine) Full() bool { return e.size >= e.w }

// EstMem returns the approximate arena footprint for window size w, per
// spec §4.F: sizeof(WindowState) plus the node arena plus both heap index
// arrays (each sized to W, not W/2 — see spec §9's "pointer-array sizing"
// note).
func EstMem(w int) uintptr {
	var ptrSlot int
	var node heap.Node
	base := unsafe.Sizeof(Engine{})
	return base + 2*uintptr(w)*unsafe.Sizeof(ptrSlot) + uintptr(w)*unsafe.Sizeof(node)
}

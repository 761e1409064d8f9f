// Package heap implements the double-heap pair (8-ary max-heap over the
// lower half of a window, 8-ary min-heap over the upper half) that backs
// the large-window sliding-median engine, plus the FIFO node ring the
// engine threads through the same node arena (ring.go).
//
// Heap entries are indices into a node arena, not raw pointers, per the
// arena+index discipline: a node's position inside whichever heap currently
// holds it is cached on the node itself so a value change can be resifted
// in O(log8 W) without a linear search.
package heap

// Tag identifies which bucket a node currently belongs to.
type Tag int

const (
	TagMax Tag = iota
	TagMin
	TagNaN
)

const arity = 8

// Node is one slot of the fixed W-length arena backing a single sliding
// call. Nodes are never freed during stream processing; updateOld reuses
// the evicted tail's slot in place.
type Node struct {
	Value float64
	IsNaN bool
	Tag   Tag
	Pos   int // index within MaxIdx/MinIdx while Tag is TagMax/TagMin
	Next  int // FIFO ring successor, see ring.go
}

// Pair is the max/min heap pair. MaxIdx and MinIdx are each sized to the
// full arena (not half of it), so either heap has room while the engine is
// between a removal and the root move (in bigwindow.Engine.UpdateOld) that
// restores balance; Rebalance itself only swaps the two roots.
type Pair struct {
	Nodes  []Node
	MaxIdx []int
	MinIdx []int
	MaxLen int
	MinLen int
}

// NewPair allocates a pair backed by the given node arena, whose length
// determines the maximum transient size of either heap.
func NewPair(nodes []Node) *Pair {
	return &Pair{
		Nodes:  nodes,
		MaxIdx: make([]int, len(nodes)),
		MinIdx: make([]int, len(nodes)),
	}
}

// Reset clears both heaps so the pair (and its backing arena) can be
// reused for a fresh sliding call, e.g. after a sync.Pool checkout.
func (p *Pair) Reset() {
	p.MaxLen, p.MinLen = 0, 0
}

func parent(i int) int     { return (i - 1) / arity }
func firstChild(i int) int { return arity*i + 1 }

func better(isMax bool, a, b float64) bool {
	if isMax {
		return a > b
	}
	return a < b
}

func (p *Pair) idxArr(isMax bool) []int {
	if isMax {
		return p.MaxIdx
	}
	return p.MinIdx
}

func (p *Pair) length(isMax bool) int {
	if isMax {
		return p.MaxLen
	}
	return p.MinLen
}

func (p *Pair) setLength(isMax bool, n int) {
	if isMax {
		p.MaxLen = n
	} else {
		p.MinLen = n
	}
}

func (p *Pair) tagFor(isMax bool) Tag {
	if isMax {
		return TagMax
	}
	return TagMin
}

func (p *Pair) set(arr []int, pos, nodeIdx int, isMax bool) {
	arr[pos] = nodeIdx
	p.Nodes[nodeIdx].Pos = pos
	p.Nodes[nodeIdx].Tag = p.tagFor(isMax)
}

func (p *Pair) siftUp(isMax bool, pos int) int {
	arr := p.idxArr(isMax)
	for pos > 0 {
		par := parent(pos)
		if better(isMax, p.Nodes[arr[pos]].Value, p.Nodes[arr[par]].Value) {
			arr[pos], arr[par] = arr[par], arr[pos]
			p.Nodes[arr[pos]].Pos = pos
			p.Nodes[arr[par]].Pos = par
			pos = par
			continue
		}
		break
	}
	return pos
}

func (p *Pair) siftDown(isMax bool, pos int) int {
	arr := p.idxArr(isMax)
	n := p.length(isMax)
	for {
		first := firstChild(pos)
		if first >= n {
			break
		}
		best := first
		last := first + arity
		if last > n {
			last = n
		}
		for c := first + 1; c < last; c++ {
			if better(isMax, p.Nodes[arr[c]].Value, p.Nodes[arr[best]].Value) {
				best = c
			}
		}
		if better(isMax, p.Nodes[arr[best]].Value, p.Nodes[arr[pos]].Value) {
			arr[pos], arr[best] = arr[best], arr[pos]
			p.Nodes[arr[pos]].Pos = pos
			p.Nodes[arr[best]].Pos = best
			pos = best
			continue
		}
		break
	}
	return pos
}

// fix resifts a node that may have moved in either direction, e.g. after a
// swap-with-last truncation or an in-place value update of unknown
// direction.
func (p *Pair) fix(isMax bool, pos int) {
	if pos = p.siftUp(isMax, pos); pos >= 0 {
		p.siftDown(isMax, pos)
	}
}

// Push inserts the node at nodeIdx (already populated with its value) into
// the max or min heap and restores heap order.
func (p *Pair) Push(isMax bool, nodeIdx int) {
	arr := p.idxArr(isMax)
	n := p.length(isMax)
	p.set(arr, n, nodeIdx, isMax)
	p.setLength(isMax, n+1)
	p.siftUp(isMax, n)
}

// RemoveAt removes the node currently at heap position pos (isMax selects
// which heap) by swapping with the last slot and resifting the
// replacement. It does not touch the removed node's Tag/Pos; the caller is
// about to repurpose it.
func (p *Pair) RemoveAt(isMax bool, pos int) {
	arr := p.idxArr(isMax)
	n := p.length(isMax)
	last := n - 1
	if pos != last {
		arr[pos] = arr[last]
		p.Nodes[arr[pos]].Pos = pos
	}
	p.setLength(isMax, last)
	if pos != last {
		p.fix(isMax, pos)
	}
}

// PopRoot removes and returns the root node index of the given heap.
func (p *Pair) PopRoot(isMax bool) int {
	arr := p.idxArr(isMax)
	root := arr[0]
	p.RemoveAt(isMax, 0)
	return root
}

// UpdateValue resifts nodeIdx (whose Value has just changed) within its
// current heap.
func (p *Pair) UpdateValue(nodeIdx int) {
	n := &p.Nodes[nodeIdx]
	isMax := n.Tag == TagMax
	p.fix(isMax, n.Pos)
}

// RootValue returns the value at the root of the given heap. The heap must
// be non-empty.
func (p *Pair) RootValue(isMax bool) float64 {
	return p.Nodes[p.idxArr(isMax)[0]].Value
}

// Rebalance restores MAX.root <= MIN.root (swapping the two roots and
// their tags if violated) and must be called after every mutation that
// could have broken it. It is a no-op unless both heaps are non-empty.
func (p *Pair) Rebalance() {
	if p.MaxLen == 0 || p.MinLen == 0 {
		return
	}
	maxRoot, minRoot := p.MaxIdx[0], p.MinIdx[0]
	if p.Nodes[maxRoot].Value <= p.Nodes[minRoot].Value {
		return
	}
	p.set(p.MaxIdx, 0, minRoot, true)
	p.set(p.MinIdx, 0, maxRoot, false)
	p.siftDown(true, 0)
	p.siftDown(false, 0)
}

// CheckInvariants validates the heap-order, cross-heap and balance
// invariants from spec §3/§4.D. It is intended for debug builds and tests,
// not the hot path.
func (p *Pair) CheckInvariants() bool {
	if diff := p.MaxLen - p.MinLen; diff != 0 && diff != 1 {
		return false
	}
	if p.MaxLen > 0 && p.MinLen > 0 && p.Nodes[p.MaxIdx[0]].Value > p.Nodes[p.MinIdx[0]].Value {
		return false
	}
	if !heapOrdered(p, true) || !heapOrdered(p, false) {
		return false
	}
	return true
}

func heapOrdered(p *Pair, isMax bool) bool {
	arr := p.idxArr(isMax)
	n := p.length(isMax)
	for i := 1; i < n; i++ {
		if better(isMax, p.Nodes[arr[i]].Value, p.Nodes[arr[parent(i)]].Value) {
			return false
		}
	}
	return true
}

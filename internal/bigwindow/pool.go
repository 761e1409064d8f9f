package bigwindow

import "sync"

// Arena reuse: one sync.Pool per power-of-two capacity bucket, mirroring
// the teacher's reuse of per-batch scratch buffers across stacking workers
// (internal/ops/stack/stack.go) rather than allocating fresh state on every
// call. A pooled engine carries no meaningful state between checkouts —
// activate() clears the heap pair, the ring and the NaN counter before the
// engine is used.
var (
	poolsMu sync.Mutex
	pools   = map[int]*sync.Pool{}
)

func bucketFor(w int) int {
	b := 1
	for b < w {
		b <<= 1
	}
	return b
}

func poolFor(capacity int) *sync.Pool {
	poolsMu.Lock()
	defer poolsMu.Unlock()
	p, ok := pools[capacity]
	if !ok {
		cap := capacity
		p = &sync.Pool{New: func() any { return newEngine(cap) }}
		pools[capacity] = p
	}
	return p
}

// Checkout borrows a pooled engine sized for at least w, activating it for
// the given window size and policy. Release must be called on every exit
// path once the caller is done, successful or not.
func Checkout(w int, ignoreNaN bool) *Engine {
	capacity := bucketFor(w)
	pool := poolFor(capacity)
	e := pool.Get().(*Engine)
	e.capacity = capacity
	e.pool = pool
	e.activate(w, ignoreNaN)
	return e
}

// Release returns the engine to its pool.
func Release(e *Engine) {
	e.pool.Put(e)
}

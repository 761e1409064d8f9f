package heap

import "testing"

// TestRingFIFOOrder admits W nodes, then evicts-and-admits a further
// batch, checking that the ring always reports the oldest surviving value
// as tail, per spec §3/§4.E.
func TestRingFIFOOrder(t *testing.T) {
	const w = 5
	nodes := make([]Node, w)
	r := NewRing(nodes)

	for i := 0; i < w; i++ {
		nodes[i].Value = float64(i)
		r.AdmitNew(i)
	}
	if r.Size() != w {
		t.Fatalf("ring size = %d, want %d", r.Size(), w)
	}
	if nodes[r.Tail].Value != 0 {
		t.Fatalf("tail value = %v, want 0", nodes[r.Tail].Value)
	}
	if nodes[r.Head].Value != float64(w-1) {
		t.Fatalf("head value = %v, want %v", nodes[r.Head].Value, w-1)
	}

	for step := 0; step < 10; step++ {
		oldTailValue := nodes[r.Tail].Value
		idx := r.EvictAndAdmit()
		if want := step % w; idx != want {
			// slots were admitted in index order above, so evictions cycle
			// through slots 0..w-1 in that same order.
			t.Fatalf("EvictAndAdmit returned slot %d, want %d", idx, want)
		}
		nodes[idx].Value = float64(w + step)
		if nodes[r.Head].Value != float64(w+step) {
			t.Fatalf("new head value = %v, want %v", nodes[r.Head].Value, w+step)
		}
		wantTail := oldTailValue + 1
		if nodes[r.Tail].Value != wantTail {
			t.Fatalf("tail after evict = %v, want %v", nodes[r.Tail].Value, wantTail)
		}
	}
}

package metrics

import "testing"

func TestSnapshotPopulated(t *testing.T) {
	t.Parallel()

	snap := NewMemoryCollector().Snapshot()
	if snap.Sys == 0 {
		t.Error("Sys = 0, want OS-reserved bytes")
	}
	if snap.TotalAlloc == 0 {
		t.Error("TotalAlloc = 0, want cumulative allocations")
	}
}

func TestDelta(t *testing.T) {
	t.Parallel()

	before := MemorySnapshot{TotalAlloc: 1000, NumGC: 2, PauseTotalNs: 50, HeapAlloc: 400, Sys: 9000, HeapObjects: 10}
	after := MemorySnapshot{TotalAlloc: 1500, NumGC: 5, PauseTotalNs: 80, HeapAlloc: 600, Sys: 9500, HeapObjects: 12}

	delta := Delta(before, after)
	if delta.TotalAlloc != 500 {
		t.Errorf("TotalAlloc delta = %d, want 500", delta.TotalAlloc)
	}
	if delta.NumGC != 3 {
		t.Errorf("NumGC delta = %d, want 3", delta.NumGC)
	}
	if delta.PauseTotalNs != 30 {
		t.Errorf("PauseTotalNs delta = %d, want 30", delta.PauseTotalNs)
	}
	// Point-in-time gauges carry the after value.
	if delta.HeapAlloc != 600 || delta.Sys != 9500 || delta.HeapObjects != 12 {
		t.Errorf("gauges = %+v, want after values", delta)
	}
}

func TestDeltaGrowsAcrossAllocations(t *testing.T) {
	t.Parallel()

	collector := MemoryCollector{}
	before := collector.Snapshot()

	sink := make([][]byte, 0, 64)
	for i := 0; i < 64; i++ {
		sink = append(sink, make([]byte, 4096))
	}
	_ = sink

	after := collector.Snapshot()
	if Delta(before, after).TotalAlloc == 0 {
		t.Error("TotalAlloc delta = 0 after allocating")
	}
}

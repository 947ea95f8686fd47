package sparse

import "testing"

// TestSetInsertContains tests basic membership.
func TestSetInsertContains(t *testing.T) {
	s := NewSet(10)

	if s.Contains(3) {
		t.Error("empty set should not contain 3")
	}

	s.Insert(3)
	s.Insert(7)
	if !s.Contains(3) || !s.Contains(7) {
		t.Error("expected 3 and 7 to be members")
	}
	if s.Contains(5) {
		t.Error("5 was never inserted")
	}
	if s.Len() != 2 {
		t.Errorf("expected Len()=2, got %d", s.Len())
	}
}

// TestSetInsertDuplicate tests that re-inserting a member is a no-op.
func TestSetInsertDuplicate(t *testing.T) {
	s := NewSet(10)
	s.Insert(4)
	s.Insert(4)
	s.Insert(4)

	if s.Len() != 1 {
		t.Errorf("expected Len()=1 after duplicate inserts, got %d", s.Len())
	}
}

// TestSetContainsOutOfRange tests membership queries beyond capacity.
func TestSetContainsOutOfRange(t *testing.T) {
	s := NewSet(4)
	if s.Contains(100) {
		t.Error("out-of-range value must not be a member")
	}
}

// TestSetInsertionOrder tests that At and Values preserve insertion order.
func TestSetInsertionOrder(t *testing.T) {
	s := NewSet(10)
	s.Insert(7)
	s.Insert(2)
	s.Insert(5)

	want := []uint32{7, 2, 5}
	got := s.Values()
	if len(got) != len(want) {
		t.Fatalf("expected %d values, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Values()[%d] = %d, want %d", i, got[i], want[i])
		}
		if s.At(i) != want[i] {
			t.Errorf("At(%d) = %d, want %d", i, s.At(i), want[i])
		}
	}
}

// TestSetWorkListScan tests that members inserted during an index loop are
// visited by that same loop, the property the closure engine relies on.
func TestSetWorkListScan(t *testing.T) {
	s := NewSet(10)
	s.Insert(0)

	// Each visited value v inserts v+1 up to 5.
	var visited []uint32
	for i := 0; i < s.Len(); i++ {
		v := s.At(i)
		visited = append(visited, v)
		if v < 5 {
			s.Insert(v + 1)
		}
	}

	if len(visited) != 6 {
		t.Fatalf("expected 6 visited values, got %d (%v)", len(visited), visited)
	}
	for i, v := range visited {
		if v != uint32(i) {
			t.Errorf("visited[%d] = %d, want %d", i, v, i)
		}
	}
}

// TestSetClear tests that Clear empties the set and stale sparse entries do
// not produce false positives.
func TestSetClear(t *testing.T) {
	s := NewSet(10)
	s.Insert(1)
	s.Insert(2)

	s.Clear()
	if s.Len() != 0 {
		t.Errorf("expected empty set after Clear, got Len()=%d", s.Len())
	}
	if s.Contains(1) || s.Contains(2) {
		t.Error("cleared set must not report old members")
	}

	s.Insert(2)
	if !s.Contains(2) || s.Contains(1) {
		t.Error("set reuse after Clear gave wrong membership")
	}
}

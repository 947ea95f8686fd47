// Package sparse provides a sparse set of small integers for tracking
// active NFA states during simulation.
//
// The set supports O(1) insertion, membership testing, and clearing while
// keeping a dense slice of members for iteration in insertion order. The
// universe of values (the NFA state count) is fixed at construction.
package sparse

// Set is a set of uint32 values below a fixed capacity.
//
// It keeps two arrays: a sparse array mapping a value to its position in the
// dense array, and the dense array holding the members themselves. A value v
// is a member iff sparse[v] points at a dense slot that holds v.
type Set struct {
	sparse []uint32
	dense  []uint32
}

// NewSet creates a set that can hold values in [0, capacity).
func NewSet(capacity int) *Set {
	return &Set{
		sparse: make([]uint32, capacity),
		dense:  make([]uint32, 0, capacity),
	}
}

// Insert adds value to the set. Inserting an existing member is a no-op.
// Panics if value >= capacity.
func (s *Set) Insert(value uint32) {
	if s.Contains(value) {
		return
	}
	s.sparse[value] = uint32(len(s.dense))
	s.dense = append(s.dense, value)
}

// Contains reports whether value is a member of the set.
func (s *Set) Contains(value uint32) bool {
	if value >= uint32(len(s.sparse)) {
		return false
	}
	idx := s.sparse[value]
	return idx < uint32(len(s.dense)) && s.dense[idx] == value
}

// Len returns the number of members.
func (s *Set) Len() int {
	return len(s.dense)
}

// At returns the i-th member in insertion order.
//
// Members appended after a call to At are visible to later calls, so a plain
// index loop over Len doubles as a work list: insertions made while scanning
// are themselves scanned before the loop ends.
func (s *Set) At(i int) uint32 {
	return s.dense[i]
}

// Clear empties the set in O(1).
func (s *Set) Clear() {
	s.dense = s.dense[:0]
}

// Values returns the members in insertion order.
// The slice is valid until the next mutation.
func (s *Set) Values() []uint32 {
	return s.dense
}

package nfa

import "fmt"

// StateID uniquely identifies a state within one automaton.
// States live in an arena indexed by StateID, so the graph carries no
// pointers and no ownership cycles even though quantifier wiring is cyclic.
type StateID uint32

// InvalidState represents an invalid/uninitialized state ID.
const InvalidState StateID = 0xFFFFFFFF

// StateKind identifies the variant of a state and determines which input
// bytes the state can consume.
type StateKind uint8

const (
	// StateStart is the sole entry point. It consumes no input.
	StateStart StateKind = iota

	// StateMatch is the sole accepting state. It consumes no input.
	StateMatch

	// StateAny consumes any single byte (the `.` wildcard).
	StateAny

	// StateLiteral consumes exactly one fixed byte.
	StateLiteral

	// StateClass consumes any byte in its member set (`[a-z0-9]`).
	StateClass

	// StateStar heads a zero-or-more loop over an inner state.
	StateStar

	// StatePlus heads a one-or-more loop over an inner state.
	StatePlus
)

// String returns a human-readable representation of the StateKind.
func (k StateKind) String() string {
	switch k {
	case StateStart:
		return "Start"
	case StateMatch:
		return "Match"
	case StateAny:
		return "Any"
	case StateLiteral:
		return "Literal"
	case StateClass:
		return "Class"
	case StateStar:
		return "Star"
	case StatePlus:
		return "Plus"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// ByteSet is a 256-bit membership bitmap used by character class states.
type ByteSet struct {
	bits [4]uint64
}

// Add inserts a single byte into the set.
func (s *ByteSet) Add(b byte) {
	s.bits[b>>6] |= 1 << (b & 63)
}

// AddRange inserts every byte in the inclusive range [lo, hi].
// An empty range (lo > hi) inserts nothing.
func (s *ByteSet) AddRange(lo, hi byte) {
	for b := int(lo); b <= int(hi); b++ {
		s.Add(byte(b))
	}
}

// Contains reports whether b is a member of the set.
func (s *ByteSet) Contains(b byte) bool {
	return s.bits[b>>6]&(1<<(b&63)) != 0
}

// Edge is a consuming-entry transition to another state.
//
// Whether the edge is taken for a given input byte is decided solely by the
// target state's acceptance predicate; Label records the pattern text that
// produced the target and exists for introspection only.
type Edge struct {
	Label string
	To    StateID
}

// State is a single automaton state with its outgoing edges.
// The kind determines which of the payload fields are meaningful.
type State struct {
	id   StateID
	kind StateKind

	sym   byte    // Literal: the fixed byte
	class ByteSet // Class: member bitmap
	inner StateID // Star/Plus: the loop body

	entries []Edge    // consuming-entry edges, deduplicated by target
	epsilon []StateID // epsilon edges, deduplicated
}

// ID returns the state's identifier.
func (s *State) ID() StateID {
	return s.id
}

// Kind returns the state's variant.
func (s *State) Kind() StateKind {
	return s.kind
}

// Symbol returns the fixed byte for Literal states, 0 otherwise.
func (s *State) Symbol() byte {
	if s.kind == StateLiteral {
		return s.sym
	}
	return 0
}

// Inner returns the loop body for Star/Plus states, InvalidState otherwise.
func (s *State) Inner() StateID {
	if s.kind == StateStar || s.kind == StatePlus {
		return s.inner
	}
	return InvalidState
}

// Entries returns the consuming-entry edges leaving this state.
func (s *State) Entries() []Edge {
	return s.entries
}

// EpsilonTargets returns the epsilon edges leaving this state.
func (s *State) EpsilonTargets() []StateID {
	return s.epsilon
}

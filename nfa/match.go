package nfa

import (
	"github.com/coregx/tinyregex/internal/sparse"
)

// Matcher simulates an automaton over input bytes.
//
// Both entry points (anchored full match and unanchored search) share one
// step primitive, so the per-byte transition rules exist in a single place.
// The graph itself is never written: all per-attempt progress lives in the
// matcher's active-state sets. In particular a Plus loop head can only
// become active after its body consumed a byte within the current attempt,
// so "has this loop fired" is carried by active-set membership and resets
// with every attempt.
//
// A Matcher reuses its scratch sets across calls and is therefore not safe
// for concurrent use. Sequential calls are independent: every entry point
// reseeds the active set from scratch.
type Matcher struct {
	g    *Graph
	curr *sparse.Set
	next *sparse.Set
}

// NewMatcher creates a matcher for the given graph.
func NewMatcher(g *Graph) *Matcher {
	return &Matcher{
		g:    g,
		curr: sparse.NewSet(g.Len()),
		next: sparse.NewSet(g.Len()),
	}
}

// seed resets the active set to the epsilon closure of Start.
func (m *Matcher) seed() {
	m.curr.Clear()
	m.curr.Insert(uint32(m.g.Start()))
	m.g.Closure(m.curr)
}

// step advances the epsilon-closed active set by one input byte.
//
// A successor t of an active state becomes active when t's acceptance
// predicate consumes b, regardless of which edge kind reaches it: entry
// edges admit the next atom, epsilon loop-repeat edges admit another
// quantifier iteration. The raw target set is then epsilon-closed.
func (m *Matcher) step(b byte) {
	m.next.Clear()
	for i := 0; i < m.curr.Len(); i++ {
		s := &m.g.states[m.curr.At(i)]
		for _, e := range s.entries {
			if m.g.Accepts(e.To, b) {
				m.next.Insert(uint32(e.To))
			}
		}
		for _, t := range s.epsilon {
			if m.g.Accepts(t, b) {
				m.next.Insert(uint32(t))
			}
		}
	}
	m.g.Closure(m.next)
	m.curr, m.next = m.next, m.curr
}

// FullMatch reports whether the entire input matches, anchored at both
// ends. The attempt fails as soon as the active set empties.
func (m *Matcher) FullMatch(input []byte) bool {
	m.seed()
	for _, b := range input {
		m.step(b)
		if m.curr.Len() == 0 {
			return false
		}
	}
	return m.curr.Contains(uint32(m.g.Match()))
}

// FindAnchored runs one matching attempt anchored at position at and
// reports the end of the earliest match, or ok=false if no match starts
// there. A pattern that matches the empty string succeeds immediately with
// end == at.
func (m *Matcher) FindAnchored(input []byte, at int) (end int, ok bool) {
	m.seed()
	match := uint32(m.g.Match())
	if m.curr.Contains(match) {
		return at, true
	}
	for i := at; i < len(input); i++ {
		m.step(input[i])
		if m.curr.Len() == 0 {
			return 0, false
		}
		if m.curr.Contains(match) {
			return i + 1, true
		}
	}
	return 0, false
}

// FindAt returns the span of the leftmost match beginning at or after
// position at, scanning start offsets left to right. Among matches at the
// leftmost offset the shortest is reported. Returns (-1, -1, false) when no
// offset yields a match.
func (m *Matcher) FindAt(input []byte, at int) (start, end int, ok bool) {
	for off := at; off <= len(input); off++ {
		if end, ok := m.FindAnchored(input, off); ok {
			return off, end, true
		}
	}
	return -1, -1, false
}

// Find is FindAt from the beginning of the input.
func (m *Matcher) Find(input []byte) (start, end int, ok bool) {
	return m.FindAt(input, 0)
}

// Search reports whether any substring of the input matches.
func (m *Matcher) Search(input []byte) bool {
	_, _, ok := m.Find(input)
	return ok
}

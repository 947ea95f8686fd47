package nfa

import (
	"fmt"
	"strings"

	"github.com/coregx/tinyregex/internal/sparse"
)

// Graph is a compiled automaton: an arena of states plus the identities of
// the unique Start and Match states.
//
// A Graph is immutable after construction. All per-attempt matching progress
// lives in the Matcher, so a Graph may back any number of sequential
// matching calls without one attempt leaking into the next.
type Graph struct {
	states []State
	start  StateID
	match  StateID
}

// Len returns the number of states in the graph.
func (g *Graph) Len() int {
	return len(g.states)
}

// Start returns the ID of the entry state.
func (g *Graph) Start() StateID {
	return g.start
}

// Match returns the ID of the accepting state.
func (g *Graph) Match() StateID {
	return g.match
}

// State returns the state with the given ID, or nil if out of range.
func (g *Graph) State(id StateID) *State {
	if int(id) >= len(g.states) {
		return nil
	}
	return &g.states[id]
}

// Accepts reports whether the state can consume the input byte b.
//
// This predicate is the single oracle for byte consumption: the matcher and
// any introspection share it, so the rules for each variant exist in exactly
// one place. Start and Match never consume. Star and Plus defer to their
// loop body.
func (g *Graph) Accepts(id StateID, b byte) bool {
	s := &g.states[id]
	switch s.kind {
	case StateAny:
		return true
	case StateLiteral:
		return s.sym == b
	case StateClass:
		return s.class.Contains(b)
	case StateStar, StatePlus:
		return g.Accepts(s.inner, b)
	default:
		return false
	}
}

// Closure expands set in place to its epsilon closure: the smallest superset
// closed under epsilon edges.
//
// The dense slice of the sparse set doubles as the work list; members
// appended during the scan are themselves scanned before the loop ends.
// Runs in O(V+E) over the reachable subgraph.
func (g *Graph) Closure(set *sparse.Set) {
	for i := 0; i < set.Len(); i++ {
		for _, t := range g.states[set.At(i)].epsilon {
			set.Insert(uint32(t))
		}
	}
}

// String returns a multi-line dump of the graph for debugging.
func (g *Graph) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "graph: %d states, start=%d, match=%d\n", len(g.states), g.start, g.match)
	for i := range g.states {
		s := &g.states[i]
		fmt.Fprintf(&sb, "  %3d %-7s", s.id, s.kind)
		if s.kind == StateLiteral {
			fmt.Fprintf(&sb, " %q", s.sym)
		}
		if s.kind == StateStar || s.kind == StatePlus {
			fmt.Fprintf(&sb, " inner=%d", s.inner)
		}
		for _, e := range s.entries {
			fmt.Fprintf(&sb, " -%q->%d", e.Label, e.To)
		}
		for _, t := range s.epsilon {
			fmt.Fprintf(&sb, " -eps->%d", t)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

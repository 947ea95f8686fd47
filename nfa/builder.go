package nfa

import (
	"github.com/coregx/tinyregex/internal/conv"
)

// Builder constructs automaton graphs incrementally using a low-level API.
// The pattern compiler drives it; tests use it to build graphs by hand.
type Builder struct {
	states []State
	start  StateID
	match  StateID
}

// NewBuilder creates a builder holding an empty arena with only the Start
// and Match states allocated.
func NewBuilder() *Builder {
	b := &Builder{
		states: make([]State, 0, 16),
		start:  InvalidState,
		match:  InvalidState,
	}
	b.start = b.add(State{kind: StateStart})
	b.match = b.add(State{kind: StateMatch})
	return b
}

func (b *Builder) add(s State) StateID {
	id := StateID(conv.IntToUint32(len(b.states)))
	s.id = id
	b.states = append(b.states, s)
	return id
}

// Start returns the ID of the entry state.
func (b *Builder) Start() StateID {
	return b.start
}

// Match returns the ID of the accepting state.
func (b *Builder) Match() StateID {
	return b.match
}

// AddLiteral adds a state consuming exactly the byte sym.
func (b *Builder) AddLiteral(sym byte) StateID {
	return b.add(State{kind: StateLiteral, sym: sym})
}

// AddAny adds a state consuming any single byte.
func (b *Builder) AddAny() StateID {
	return b.add(State{kind: StateAny})
}

// AddClass adds a state consuming any byte in the given set.
func (b *Builder) AddClass(class ByteSet) StateID {
	return b.add(State{kind: StateClass, class: class})
}

// AddStar adds a zero-or-more loop head over inner.
func (b *Builder) AddStar(inner StateID) StateID {
	return b.add(State{kind: StateStar, inner: inner})
}

// AddPlus adds a one-or-more loop head over inner.
func (b *Builder) AddPlus(inner StateID) StateID {
	return b.add(State{kind: StatePlus, inner: inner})
}

// AddEntry adds a consuming-entry edge from one state to another. The label
// is kept for introspection only; parallel edges to the same target collapse
// into one.
func (b *Builder) AddEntry(from, to StateID, label string) {
	s := &b.states[from]
	for _, e := range s.entries {
		if e.To == to {
			return
		}
	}
	s.entries = append(s.entries, Edge{Label: label, To: to})
}

// AddEpsilon adds an epsilon edge from one state to another.
// Duplicate edges collapse into one.
func (b *Builder) AddEpsilon(from, to StateID) {
	s := &b.states[from]
	for _, t := range s.epsilon {
		if t == to {
			return
		}
	}
	s.epsilon = append(s.epsilon, to)
}

// Build finalizes the graph. It validates that the arena holds exactly one
// Start and one Match state and that every edge targets a state in range.
func (b *Builder) Build() (*Graph, error) {
	starts, matches := 0, 0
	for i := range b.states {
		switch b.states[i].kind {
		case StateStart:
			starts++
		case StateMatch:
			matches++
		}
	}
	if starts != 1 || matches != 1 {
		return nil, &BuildError{
			Message: "graph must contain exactly one Start and one Match state",
			StateID: InvalidState,
		}
	}
	n := StateID(conv.IntToUint32(len(b.states)))
	for i := range b.states {
		s := &b.states[i]
		for _, e := range s.entries {
			if e.To >= n {
				return nil, &BuildError{Message: "entry edge targets unknown state", StateID: s.id}
			}
		}
		for _, t := range s.epsilon {
			if t >= n {
				return nil, &BuildError{Message: "epsilon edge targets unknown state", StateID: s.id}
			}
		}
	}
	return &Graph{states: b.states, start: b.start, match: b.match}, nil
}

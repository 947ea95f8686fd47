package nfa

import (
	"strings"
)

// Compile compiles a pattern into an automaton graph.
//
// The grammar is deliberately small: literal bytes, the `.` wildcard,
// bracketed character classes with `X-Y` ranges, and the postfix
// quantifiers `*` and `+` applied to the immediately preceding atom. There
// is no alternation, grouping, anchoring, or escaping, so a single frontier
// pointer replaces the fragment stack of a full Thompson construction:
// concatenation is the only combinator besides repetition.
//
// Compile fails with a CompileError wrapping ErrUnclosedClass or
// ErrDanglingQuantifier for malformed patterns.
func Compile(pattern string) (*Graph, error) {
	b := NewBuilder()
	frontier := b.Start()

	if len(pattern) == 0 {
		b.AddEpsilon(frontier, b.Match())
		return b.Build()
	}

	i := 0
	for i < len(pattern) {
		var base StateID
		var label string
		var next int // index just past the atom

		switch c := pattern[i]; c {
		case '*', '+':
			// Reached only at pattern start or directly after another
			// quantifier; otherwise the lookahead below consumes it.
			return nil, &CompileError{Pattern: pattern, Pos: i, Err: ErrDanglingQuantifier}
		case '[':
			end := strings.IndexByte(pattern[i+1:], ']')
			if end < 0 {
				return nil, &CompileError{Pattern: pattern, Pos: i, Err: ErrUnclosedClass}
			}
			end += i + 1
			def := pattern[i+1 : end]
			base = b.AddClass(parseClass(def))
			label = def
			next = end + 1
		case '.':
			base = b.AddAny()
			label = "."
			next = i + 1
		default:
			base = b.AddLiteral(c)
			label = string(c)
			next = i + 1
		}

		if next < len(pattern) && (pattern[next] == '*' || pattern[next] == '+') {
			frontier = wireQuantifier(b, frontier, base, label, pattern[next])
			next++
		} else {
			b.AddEntry(frontier, base, label)
			frontier = base
		}
		i = next
	}

	b.AddEpsilon(frontier, b.Match())
	return b.Build()
}

// wireQuantifier wraps base in a quantifier loop head and wires the loop
// edges. Returns the new frontier (the loop head).
func wireQuantifier(b *Builder, frontier, base StateID, label string, op byte) StateID {
	if op == '*' {
		q := b.AddStar(base)
		b.AddEpsilon(frontier, q) // zero repetitions: bypass the body
		b.AddEntry(frontier, base, label)
		b.AddEpsilon(base, q) // loop exit
		b.AddEpsilon(q, base) // loop repeat
		return q
	}
	q := b.AddPlus(base)
	b.AddEntry(frontier, base, label) // first repetition is mandatory
	b.AddEpsilon(base, q)
	b.AddEpsilon(q, base)
	return q
}

// parseClass expands a class definition into a byte set. A sequence `X-Y`
// covers the inclusive range of byte values; every other byte is a
// singleton. A reversed range (`z-a`) covers nothing, and a trailing `-`
// is a plain member.
func parseClass(def string) ByteSet {
	var set ByteSet
	for i := 0; i < len(def); {
		if i+2 < len(def) && def[i+1] == '-' {
			set.AddRange(def[i], def[i+2])
			i += 3
		} else {
			set.Add(def[i])
			i++
		}
	}
	return set
}

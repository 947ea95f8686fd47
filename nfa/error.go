// Package nfa implements a nondeterministic finite automaton for a small
// regular-expression grammar: literals, the `.` wildcard, bracketed
// character classes with ranges, and the postfix quantifiers `*` and `+`.
//
// Patterns compile into an arena-based state graph via a single-frontier
// Thompson-style construction; matching simulates the automaton with sparse
// active-state sets and an epsilon-closure engine.
package nfa

import (
	"errors"
	"fmt"
)

// Common compilation errors
var (
	// ErrUnclosedClass indicates a character class opened with `[` has no
	// closing `]`.
	ErrUnclosedClass = errors.New("unclosed character class")

	// ErrDanglingQuantifier indicates a `*` or `+` with no preceding atom,
	// including one directly following another quantifier.
	ErrDanglingQuantifier = errors.New("quantifier missing preceding atom")
)

// CompileError wraps a pattern compilation failure with its position.
type CompileError struct {
	Pattern string
	Pos     int
	Err     error
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	return fmt.Sprintf("compiling pattern %q: %v at position %d", e.Pattern, e.Err, e.Pos)
}

// Unwrap returns the underlying error.
func (e *CompileError) Unwrap() error {
	return e.Err
}

// BuildError represents an error during graph construction via the Builder.
type BuildError struct {
	Message string
	StateID StateID
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	if e.StateID != InvalidState {
		return fmt.Sprintf("graph build error at state %d: %s", e.StateID, e.Message)
	}
	return fmt.Sprintf("graph build error: %s", e.Message)
}

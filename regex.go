// Package tinyregex provides a small NFA-based regex engine for a
// restricted pattern grammar.
//
// Supported syntax: literal bytes, the `.` wildcard, bracketed character
// classes with ranges (`[a-z0-9]`), and the postfix quantifiers `*`
// (zero-or-more) and `+` (one-or-more) applied to the immediately preceding
// atom. There is no alternation, grouping, anchoring, escaping, or
// backreference support.
//
// Basic usage:
//
//	re, err := tinyregex.Compile("[0-9]+")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	re.MatchString("order 123")     // true: a substring matches
//	re.FullMatchString("order 123") // false: the whole text must match
//
// Patterns with literal runs are prefiltered before the automaton runs: a
// haystack missing a required literal is rejected without simulation, and a
// pattern beginning with a literal only attempts offsets where that literal
// occurs.
package tinyregex

import (
	"bytes"

	"github.com/coregx/tinyregex/literal"
	"github.com/coregx/tinyregex/nfa"
	"github.com/coregx/tinyregex/prefilter"
)

// Regex is a compiled pattern.
//
// A Regex is NOT safe for concurrent use: the matcher reuses internal
// scratch state across calls. Sequential calls are independent; every
// matching call starts from a fresh active set.
type Regex struct {
	pattern string
	matcher *nfa.Matcher
	filter  prefilter.Prefilter
	prefix  []byte // literal run anchored at pattern start, if any
	exact   []byte // set when the whole pattern is one literal run
}

// Compile compiles a pattern.
//
// Returns a *nfa.CompileError wrapping nfa.ErrUnclosedClass or
// nfa.ErrDanglingQuantifier for malformed patterns.
func Compile(pattern string) (*Regex, error) {
	g, err := nfa.Compile(pattern)
	if err != nil {
		return nil, err
	}

	seq := literal.Extract(pattern)
	re := &Regex{
		pattern: pattern,
		matcher: nfa.NewMatcher(g),
		filter:  prefilter.Build(seq),
	}
	if lead, ok := seq.LeadingRun(); ok {
		re.prefix = lead
	}
	if seq.Complete() {
		re.exact = []byte(pattern)
	}
	return re, nil
}

// MustCompile compiles a pattern and panics if it fails.
// Useful for patterns known to be valid at compile time.
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("tinyregex: Compile(`" + pattern + "`): " + err.Error())
	}
	return re
}

// String returns the source pattern.
func (re *Regex) String() string {
	return re.pattern
}

// Match reports whether any substring of b matches the pattern.
func (re *Regex) Match(b []byte) bool {
	_, _, ok := re.Find(b)
	return ok
}

// MatchString reports whether any substring of s matches the pattern.
func (re *Regex) MatchString(s string) bool {
	return re.Match([]byte(s))
}

// FullMatch reports whether the entire input matches the pattern, anchored
// at both ends.
func (re *Regex) FullMatch(b []byte) bool {
	if re.exact != nil {
		return bytes.Equal(b, re.exact)
	}
	if re.filter != nil && !re.filter.MaybeMatch(b) {
		return false
	}
	return re.matcher.FullMatch(b)
}

// FullMatchString reports whether the entire string matches the pattern.
func (re *Regex) FullMatchString(s string) bool {
	return re.FullMatch([]byte(s))
}

// Find returns the span [start, end) of the leftmost match in b. Among
// matches at the leftmost offset the shortest is reported. Returns
// (-1, -1, false) when no substring matches.
func (re *Regex) Find(b []byte) (start, end int, ok bool) {
	if re.filter != nil && !re.filter.MaybeMatch(b) {
		return -1, -1, false
	}
	if re.prefix != nil {
		return re.findWithPrefix(b)
	}
	return re.matcher.Find(b)
}

// FindString is Find on a string.
func (re *Regex) FindString(s string) (start, end int, ok bool) {
	return re.Find([]byte(s))
}

// findWithPrefix attempts matches only at occurrences of the pattern's
// literal prefix; every match must begin with it.
func (re *Regex) findWithPrefix(b []byte) (start, end int, ok bool) {
	at := 0
	for at+len(re.prefix) <= len(b) {
		j := bytes.Index(b[at:], re.prefix)
		if j < 0 {
			break
		}
		off := at + j
		if end, ok := re.matcher.FindAnchored(b, off); ok {
			return off, end, true
		}
		at = off + 1
	}
	return -1, -1, false
}

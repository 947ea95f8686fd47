// Package prefilter provides fast candidate rejection for regex search
// using literal runs extracted from the pattern.
//
// A prefilter answers one question cheaply: can this haystack possibly
// contain a match? A negative answer is definitive and skips the automaton
// entirely; a positive answer still requires full simulation. Strategy is
// picked from the extracted runs:
//   - no runs: no prefilter (the automaton always runs)
//   - one run: substring search via the bytes package
//   - several runs: one Aho-Corasick scan verifying every run appears
package prefilter

import (
	"bytes"

	"github.com/coregx/ahocorasick"

	"github.com/coregx/tinyregex/literal"
)

// Prefilter rejects haystacks that cannot contain a match.
type Prefilter interface {
	// MaybeMatch reports whether haystack can possibly contain a match.
	// A false result is definitive; a true result means the automaton
	// must decide.
	MaybeMatch(haystack []byte) bool
}

// Build selects a prefilter for the given run sequence. Returns nil when no
// filtering is possible (no required runs).
func Build(seq literal.Seq) Prefilter {
	runs := seq.Runs()
	switch len(runs) {
	case 0:
		return nil
	case 1:
		return &substringFilter{needle: runs[0].Bytes}
	}

	builder := ahocorasick.NewBuilder()
	for _, r := range runs {
		builder.AddPattern(r.Bytes)
	}
	auto, err := builder.Build()
	if err != nil {
		// Fall back to the strongest single-literal filter.
		return &substringFilter{needle: seq.Longest()}
	}

	lits := make([][]byte, len(runs))
	for i, r := range runs {
		lits[i] = r.Bytes
	}
	return &multiLiteralFilter{auto: auto, lits: lits}
}

// substringFilter requires a single literal run to appear in the haystack.
type substringFilter struct {
	needle []byte
}

func (f *substringFilter) MaybeMatch(haystack []byte) bool {
	return bytes.Contains(haystack, f.needle)
}

// multiLiteralFilter requires every extracted run to appear in the
// haystack. One Aho-Corasick scan finds occurrences of all runs at once;
// each reported span is matched back to the run(s) it spells.
type multiLiteralFilter struct {
	auto *ahocorasick.Automaton
	lits [][]byte
}

func (f *multiLiteralFilter) MaybeMatch(haystack []byte) bool {
	if !f.auto.IsMatch(haystack) {
		return false
	}

	seen := make([]bool, len(f.lits))
	remaining := len(f.lits)
	pos := 0
	for pos <= len(haystack) {
		m := f.auto.Find(haystack, pos)
		if m == nil {
			break
		}
		span := haystack[m.Start:m.End]
		for i, lit := range f.lits {
			if !seen[i] && bytes.Equal(span, lit) {
				seen[i] = true
				remaining--
			}
		}
		if remaining == 0 {
			return true
		}
		pos = m.Start + 1
	}

	// Overlapping occurrences can hide a run from the scan (the automaton
	// reports one match per position). Settle the stragglers directly.
	for i, lit := range f.lits {
		if !seen[i] && !bytes.Contains(haystack, lit) {
			return false
		}
	}
	return true
}

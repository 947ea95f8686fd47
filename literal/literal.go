// Package literal extracts required literal runs from a pattern for
// prefilter optimization.
//
// A run is a maximal sequence of unquantified literal bytes. Every match of
// the pattern must contain each extracted run, in order, so the runs can be
// used to reject haystacks cheaply before running the automaton. Wildcards,
// character classes, and quantified atoms break runs; a `+`-quantified
// literal still contributes its mandatory first byte.
package literal

import "strings"

// Run is a literal byte sequence that every match must contain.
type Run struct {
	// Bytes is the literal byte sequence.
	Bytes []byte

	// Prefix reports that the run starts at the beginning of the pattern,
	// so every match begins with it.
	Prefix bool
}

// Seq is the ordered collection of required runs extracted from a pattern.
type Seq struct {
	runs []Run

	// complete reports that the whole pattern is a single literal run, so
	// matching the run is matching the pattern.
	complete bool
}

// Config bounds extraction.
type Config struct {
	// MaxRuns limits how many runs are collected. Extra runs are dropped,
	// which only weakens the filter, never its soundness.
	MaxRuns int

	// MaxRunLen truncates long runs. A prefix of a required run is still
	// required.
	MaxRunLen int
}

// DefaultConfig returns bounds suited to typical patterns.
func DefaultConfig() Config {
	return Config{
		MaxRuns:   16,
		MaxRunLen: 64,
	}
}

// Extract collects the required literal runs of pattern using the default
// config. Malformed patterns yield whatever was extracted before the
// malformed position; callers are expected to compile the pattern first.
func Extract(pattern string) Seq {
	return ExtractWithConfig(pattern, DefaultConfig())
}

// ExtractWithConfig is Extract with explicit bounds.
func ExtractWithConfig(pattern string, config Config) Seq {
	var (
		seq        Seq
		cur        []byte
		runStart   = 0    // pattern position where the current run began
		allLiteral = true // no atom other than plain literals seen
	)

	flush := func() {
		if len(cur) == 0 {
			return
		}
		if len(seq.runs) < config.MaxRuns {
			run := cur
			if len(run) > config.MaxRunLen {
				run = run[:config.MaxRunLen]
			}
			seq.runs = append(seq.runs, Run{Bytes: run, Prefix: runStart == 0})
		}
		cur = nil
	}

	i := 0
	for i < len(pattern) {
		c := pattern[i]
		var next int

		switch c {
		case '*', '+':
			// Dangling quantifier; the compiler rejects this pattern.
			flush()
			return seq
		case '[':
			end := strings.IndexByte(pattern[i+1:], ']')
			if end < 0 {
				flush()
				return seq
			}
			next = i + 1 + end + 1
		case '.':
			next = i + 1
		default:
			next = i + 1
		}

		quantified := next < len(pattern) && (pattern[next] == '*' || pattern[next] == '+')
		literalByte := c != '[' && c != '.'

		switch {
		case literalByte && !quantified:
			if len(cur) == 0 {
				runStart = i
			}
			cur = append(cur, c)
		case literalByte && pattern[next] == '+':
			// The first repetition is mandatory; later ones are not, so
			// the run cannot extend past it.
			if len(cur) == 0 {
				runStart = i
			}
			cur = append(cur, c)
			flush()
			allLiteral = false
		default:
			// Wildcard, class, or a `*`-quantified atom: nothing required.
			flush()
			allLiteral = false
		}

		if quantified {
			next++
		}
		i = next
	}
	flush()

	seq.complete = allLiteral && len(seq.runs) == 1 && len(seq.runs[0].Bytes) == len(pattern)
	return seq
}

// Runs returns the extracted runs in pattern order.
func (s Seq) Runs() []Run {
	return s.runs
}

// Len returns the number of extracted runs.
func (s Seq) Len() int {
	return len(s.runs)
}

// IsEmpty reports whether no runs were extracted.
func (s Seq) IsEmpty() bool {
	return len(s.runs) == 0
}

// Complete reports that the whole pattern is one literal run: matching the
// run is matching the pattern, so the automaton can be bypassed entirely.
func (s Seq) Complete() bool {
	return s.complete
}

// LeadingRun returns the run anchored at the start of the pattern, if any.
// When present, every match begins with it.
func (s Seq) LeadingRun() ([]byte, bool) {
	if len(s.runs) > 0 && s.runs[0].Prefix {
		return s.runs[0].Bytes, true
	}
	return nil, false
}

// Longest returns the longest extracted run, or nil if none.
func (s Seq) Longest() []byte {
	var best []byte
	for _, r := range s.runs {
		if len(r.Bytes) > len(best) {
			best = r.Bytes
		}
	}
	return best
}

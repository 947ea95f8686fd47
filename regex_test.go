package tinyregex

import (
	"errors"
	"testing"

	"github.com/coregx/tinyregex/nfa"
)

// TestCompileErrors tests that malformed patterns fail with the nfa
// sentinels and that no Regex is returned.
func TestCompileErrors(t *testing.T) {
	tests := []struct {
		pattern string
		want    error
	}{
		{"*", nfa.ErrDanglingQuantifier},
		{"+ab", nfa.ErrDanglingQuantifier},
		{"a**", nfa.ErrDanglingQuantifier},
		{"[abc", nfa.ErrUnclosedClass},
		{"x[", nfa.ErrUnclosedClass},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			re, err := Compile(tt.pattern)
			if err == nil {
				t.Fatalf("Compile(%q) succeeded, want error", tt.pattern)
			}
			if re != nil {
				t.Error("failed Compile must not return a Regex")
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Compile(%q) error = %v, want %v", tt.pattern, err, tt.want)
			}
		})
	}
}

// TestMustCompile tests the panic on invalid patterns and pass-through on
// valid ones.
func TestMustCompile(t *testing.T) {
	re := MustCompile("[a-z]+")
	if re.String() != "[a-z]+" {
		t.Errorf("String() = %q, want %q", re.String(), "[a-z]+")
	}

	defer func() {
		if recover() == nil {
			t.Error("MustCompile of invalid pattern must panic")
		}
	}()
	MustCompile("[oops")
}

// TestFullMatchString tests anchored matching through the facade.
func TestFullMatchString(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
		want    bool
	}{
		{"abc", "abc", true},
		{"abc", "abcd", false},
		{".", "x", true},
		{".", "", false},
		{"[a-c1-3]", "b", true},
		{"[a-c1-3]", "4", false},
		{"a*b", "b", true},
		{"a*b", "aaab", true},
		{"a*b", "ac", false},
		{"a+b", "b", false},
		{"a+b", "ab", true},
		{"", "", true},
		{"", "x", false},
		{"a*4.+hi", "aaaaaa4uhi", true},
		{"a*4.+hi", "4uhi", true},
		{"a*4.+hi", "meow", false},
		{"[0-9]+", "123", true},
		{"[0-9]+", "abc", false},
		{"[a-z0-9]+", "hello123", true},
		{"[a-z0-9]+", "HELLO", false},
		{"[a-z0-9]+", "hello_world", false},
	}
	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.input, func(t *testing.T) {
			re := MustCompile(tt.pattern)
			if got := re.FullMatchString(tt.input); got != tt.want {
				t.Errorf("FullMatchString(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if got := re.FullMatch([]byte(tt.input)); got != tt.want {
				t.Errorf("FullMatch(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestMatchString tests substring search through the facade, prefilters
// included.
func TestMatchString(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
		want    bool
	}{
		{"ab+", "xxabbby", true},
		{"ab+", "xax", false},
		{"abc", "say abc then", true}, // exact-literal pattern: prefilter alone decides
		{"abc", "say acb then", false},
		{"[0-9]+", "a12b", true},
		{"[0-9]+", "abc", false},
		{"a*4.+hi", "aaaaaa4uhi", true},
		{"a*4.+hi", "4uhi", true},
		{"a*4.+hi", "meow", false},
		{"a*4.+hi", "4 but no greeting", false},
		{"a*", "xyz", true}, // matches the empty substring everywhere
		{"", "xyz", true},
		{"x.z", "wxyz!", true},
		{"x.z", "xz", false},
	}
	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.input, func(t *testing.T) {
			re := MustCompile(tt.pattern)
			if got := re.MatchString(tt.input); got != tt.want {
				t.Errorf("MatchString(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestFind tests spans through the facade for both prefixed and
// unprefixed patterns.
func TestFind(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
		start   int
		end     int
		ok      bool
	}{
		{"ab+", "xxabbby", 2, 4, true}, // literal-prefix candidates
		{"[0-9]+", "a12b", 1, 2, true}, // no prefix: plain offset scan
		{"abc", "xxabcyy", 2, 5, true},
		{"ab+", "xax", -1, -1, false},
		{"a*", "xyz", 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.input, func(t *testing.T) {
			re := MustCompile(tt.pattern)
			start, end, ok := re.FindString(tt.input)
			if start != tt.start || end != tt.end || ok != tt.ok {
				t.Errorf("FindString(%q) = (%d, %d, %v), want (%d, %d, %v)",
					tt.input, start, end, ok, tt.start, tt.end, tt.ok)
			}
		})
	}
}

// TestFindPrefixCandidates tests that the literal-prefix path skips
// non-viable occurrences and still finds a later real match.
func TestFindPrefixCandidates(t *testing.T) {
	// Matches must start with "ab"; the first two occurrences are not
	// followed by a digit.
	re := MustCompile("ab[0-9]")
	start, end, ok := re.FindString("ab ab_ab7 tail")
	if !ok || start != 6 || end != 9 {
		t.Errorf("FindString = (%d, %d, %v), want (6, 9, true)", start, end, ok)
	}
}

// TestSequentialCallsIndependent tests attempt isolation on one Regex
// value: matching "a" with `a+` must not bleed into a following "b" query.
func TestSequentialCallsIndependent(t *testing.T) {
	re := MustCompile("a+")
	if !re.FullMatchString("a") {
		t.Fatal(`FullMatchString("a") = false, want true`)
	}
	if re.FullMatchString("b") {
		t.Error(`FullMatchString("b") = true after matching "a"; calls must be independent`)
	}
	if !re.MatchString("cba") {
		t.Error(`MatchString("cba") = false, want true`)
	}
	if re.MatchString("xyz") {
		t.Error(`MatchString("xyz") = true, want false`)
	}
}

// TestCompileIdempotent tests that two compilations of one pattern agree on
// every decision.
func TestCompileIdempotent(t *testing.T) {
	pattern := "[a-f]+x.*"
	inputs := []string{"", "ax", "fax", "gx", "abcfx tail", "x"}

	re1 := MustCompile(pattern)
	re2 := MustCompile(pattern)
	for _, in := range inputs {
		if re1.FullMatchString(in) != re2.FullMatchString(in) {
			t.Errorf("FullMatchString(%q) differs between compilations", in)
		}
		if re1.MatchString(in) != re2.MatchString(in) {
			t.Errorf("MatchString(%q) differs between compilations", in)
		}
	}
}

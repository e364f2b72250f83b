package cgstream

import (
	"regexp"
	"strings"
)

// reCohort matches a cohort-header line: a `"<form>"` token at the start
// of the line, optionally followed by whitespace and a tag string. The
// form is captured lazily so that it ends at the first `>"` sequence.
var reCohort = regexp.MustCompile(`^"<(.*?)>"\s*(.*)$`)

// reReading matches a reading line: leading whitespace, a quoted base
// form, optionally followed by whitespace and a tag string. The base form
// is captured lazily because reading tags frequently carry quoted
// sub-tokens of their own (e.g. a `"<form>"` link target); only the first
// closing quote ends the field.
var reReading = regexp.MustCompile(`^\s+"(.*?)"\s*(.*)$`)

// LineKind classifies one line of a cohort stream.
type LineKind int

const (
	// LineUnmatched marks noise: blank lines, comments and anything else
	// that contributes no structure.
	LineUnmatched LineKind = iota

	// LineCohort marks a line that opens a new cohort.
	LineCohort

	// LineReading marks a line that adds a reading to the current cohort.
	LineReading
)

// LineMatch is the classifier verdict for a single line.
type LineMatch struct {
	// Kind says how the line participates in the stream structure.
	Kind LineKind

	// Form is the word form (LineCohort) or base form (LineReading),
	// without its delimiters.
	Form string

	// Tags is the tokenized trailing tag string; nil when the line ends
	// at the closing delimiter.
	Tags []string
}

// ClassifyLine decides whether line (without its terminator) opens a
// cohort, contributes a reading, or is noise. The cohort pattern is tried
// first; a line can match at most one pattern.
func ClassifyLine(line string) LineMatch {
	if m := reCohort.FindStringSubmatch(line); m != nil {
		return LineMatch{Kind: LineCohort, Form: m[1], Tags: splitTags(m[2])}
	}
	if m := reReading.FindStringSubmatch(line); m != nil {
		return LineMatch{Kind: LineReading, Form: m[1], Tags: splitTags(m[2])}
	}
	return LineMatch{Kind: LineUnmatched}
}

// splitTags tokenizes a trailing tag string on single space characters.
// The empty string yields nil, not a one-element slice holding "".
// Multi-space runs are not collapsed: the empty tokens they produce are
// kept so that serialization reproduces the original spacing.
func splitTags(raw string) []string {
	if raw == "" {
		return nil
	}
	return strings.Split(raw, " ")
}

// Package cgstream parses and serializes the line-oriented cohort/reading
// annotation stream used by constraint-grammar NLP pipelines.
//
// A stream is a flat sequence of text lines. A line of the form
// `"<form>" TAG ...` opens a new cohort; an indented line of the form
// `    "lemma" TAG ...` adds a reading to the most recent cohort; every
// other line (blank lines, comments, flush lines starting with ':') is
// noise and is skipped. Parsing is total: malformed input yields less
// structure, never an error.
//
// Captured fields are substrings of the input text. Go strings are
// immutable, so the parsed structure may outlive the input without
// copying and callers may discard the input freely.
package cgstream

// Cohort is one surface token of the input stream: the word form as it
// appeared in the text, tags attached at the cohort level, and zero or
// more candidate readings.
type Cohort struct {
	// WordForm is the literal surface token, without the "<...>" wrapper.
	WordForm string `json:"word_form"`

	// Tags are the annotation tokens following the word form, in input
	// order. Duplicates are preserved.
	Tags []string `json:"tags"`

	// Readings are the candidate analyses, in input order. A cohort with
	// no readings is valid.
	Readings []Reading `json:"readings"`
}

// Reading is one candidate morphological analysis of a cohort's token.
type Reading struct {
	// BaseForm is the lemma, without the surrounding quotes.
	BaseForm string `json:"base_form"`

	// Tags are the annotation tokens following the base form, in input
	// order. Opaque to the parser: part-of-speech, sub-readings, weights
	// and links all pass through untouched.
	Tags []string `json:"tags"`
}

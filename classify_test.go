package cgstream

import (
	"reflect"
	"testing"
)

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		line string
		want LineMatch
	}{
		// cohort headers
		{`"<went>"`, LineMatch{Kind: LineCohort, Form: "went"}},
		{`"<They>" TAG1 TAG2`, LineMatch{Kind: LineCohort, Form: "They", Tags: []string{"TAG1", "TAG2"}}},
		{`"<.>"`, LineMatch{Kind: LineCohort, Form: "."}},
		{`"<>"`, LineMatch{Kind: LineCohort, Form: ""}},
		// lazy capture: the form ends at the first `>"` sequence
		{`"<a>b>" X`, LineMatch{Kind: LineCohort, Form: "a>b", Tags: []string{"X"}}},
		{`"<x>" "<y>"`, LineMatch{Kind: LineCohort, Form: "x", Tags: []string{`"<y>"`}}},

		// reading lines
		{`    "go" V PAST VFIN`, LineMatch{Kind: LineReading, Form: "go", Tags: []string{"V", "PAST", "VFIN"}}},
		{`    "to" INFMARK>`, LineMatch{Kind: LineReading, Form: "to", Tags: []string{"INFMARK>"}}},
		{`	"they" PRON`, LineMatch{Kind: LineReading, Form: "they", Tags: []string{"PRON"}}},
		{` "x"`, LineMatch{Kind: LineReading, Form: "x"}},
		// nested quoted sub-token stays in the tags
		{`    "go" V "<went>" X`, LineMatch{Kind: LineReading, Form: "go", Tags: []string{"V", `"<went>"`, "X"}}},

		// noise
		{``, LineMatch{Kind: LineUnmatched}},
		{`some garbage`, LineMatch{Kind: LineUnmatched}},
		{`: flush`, LineMatch{Kind: LineUnmatched}},
		{`    : almost a thing`, LineMatch{Kind: LineUnmatched}},
		// quoted but not indented, unterminated, and unquoted-indented
		{`"went"`, LineMatch{Kind: LineUnmatched}},
		{`"<went>`, LineMatch{Kind: LineUnmatched}},
		{`  <went> PREP`, LineMatch{Kind: LineUnmatched}},
	}
	for _, tt := range tests {
		got := ClassifyLine(tt.line)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ClassifyLine(%q) = %+v, want %+v", tt.line, got, tt.want)
		}
	}
}

func TestSplitTags(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{"", nil},
		{"V", []string{"V"}},
		{"V PAST VFIN", []string{"V", "PAST", "VFIN"}},
		// literal single-space splitting: runs are not collapsed
		{"A  B", []string{"A", "", "B"}},
		{" A", []string{"", "A"}},
	}
	for _, tt := range tests {
		got := splitTags(tt.raw)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("splitTags(%q) = %#v, want %#v", tt.raw, got, tt.want)
		}
	}
}

package cgstream

import (
	"io"
	"strings"
)

// Text renders the cohort and its readings in canonical stream form: the
// word form wrapped in `"<...>"`, each tag preceded by a single space, a
// newline, then each reading on its own four-space-indented line in the
// same shape.
func (c Cohort) Text() string {
	var b strings.Builder
	c.appendTo(&b)
	return b.String()
}

func (c Cohort) appendTo(b *strings.Builder) {
	b.WriteString(`"<`)
	b.WriteString(c.WordForm)
	b.WriteString(`>"`)
	for _, t := range c.Tags {
		b.WriteByte(' ')
		b.WriteString(t)
	}
	b.WriteByte('\n')
	for _, r := range c.Readings {
		b.WriteString(`    "`)
		b.WriteString(r.BaseForm)
		b.WriteByte('"')
		for _, t := range r.Tags {
			b.WriteByte(' ')
			b.WriteString(t)
		}
		b.WriteByte('\n')
	}
}

// Serialize renders cohorts back to stream text, concatenating the
// cohorts' renderings with no separators. Parsing the result yields a
// structurally identical sequence; for input that was already canonical,
// Serialize(Parse(input)) reproduces it byte for byte. An empty sequence
// yields the empty string.
func Serialize(cohorts []Cohort) string {
	var b strings.Builder
	for _, c := range cohorts {
		c.appendTo(&b)
	}
	return b.String()
}

// SerializeTo writes the canonical rendering of cohorts to w, one cohort
// at a time.
func SerializeTo(w io.Writer, cohorts []Cohort) error {
	for _, c := range cohorts {
		if _, err := io.WriteString(w, c.Text()); err != nil {
			return err
		}
	}
	return nil
}

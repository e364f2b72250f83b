package cgstream

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// maxLineBytes bounds a single line in ParseReader. Reading lines in
// heavily weighted or trace-annotated grammars run long, but not this
// long.
const maxLineBytes = 16 * 1024 * 1024

// Parse reads a cohort stream from input and returns the cohorts in
// input order. Parse is total: unrecognized lines are skipped, a reading
// line seen before the first cohort header is dropped, and empty or
// all-noise input yields an empty sequence.
func Parse(input string) []Cohort {
	var cohorts []Cohort
	for _, line := range strings.Split(input, "\n") {
		foldLine(&cohorts, strings.TrimSuffix(line, "\r"))
	}
	return cohorts
}

// ParseReader is Parse over an io.Reader, consuming the stream line by
// line instead of holding it in memory at once. The only error source is
// r itself; content never causes a failure.
func ParseReader(r io.Reader) ([]Cohort, error) {
	var cohorts []Cohort
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for sc.Scan() {
		foldLine(&cohorts, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return cohorts, fmt.Errorf("read stream: %w", err)
	}
	return cohorts, nil
}

// foldLine folds one classified line into the cohort sequence. The last
// element of the slice is the current cohort; readings attach to it by
// index so that slice growth cannot invalidate the reference.
func foldLine(cohorts *[]Cohort, line string) {
	switch m := ClassifyLine(line); m.Kind {
	case LineCohort:
		*cohorts = append(*cohorts, Cohort{WordForm: m.Form, Tags: m.Tags})
	case LineReading:
		if n := len(*cohorts); n > 0 {
			cur := &(*cohorts)[n-1]
			cur.Readings = append(cur.Readings, Reading{BaseForm: m.Form, Tags: m.Tags})
		}
	}
}

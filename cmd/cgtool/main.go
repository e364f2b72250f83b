// Command cgtool converts cohort streams between their text form and
// JSON, and checks round-trip fidelity of canonical streams.
package main

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/ulikunitz/xz"

	cgstream "github.com/nlp-pipelines/cgstream"
)

// CLI defines the command-line interface for cgtool.
var CLI struct {
	Parse  ParseCmd  `cmd:"" help:"Parse a cohort stream into JSON"`
	Format FormatCmd `cmd:"" help:"Render JSON cohorts back to stream text"`
	Check  CheckCmd  `cmd:"" help:"Verify that a canonical stream round-trips byte for byte"`
}

// openInput opens path for reading, decompressing .xz and .gz corpus
// files transparently. "-" means stdin.
func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	switch {
	case strings.HasSuffix(path, ".xz"):
		xzr, err := xz.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("xz reader: %w", err)
		}
		return decompressed{xzr, f}, nil
	case strings.HasSuffix(path, ".gz"):
		gzr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("gzip reader: %w", err)
		}
		return decompressed{gzr, f}, nil
	}
	return f, nil
}

// decompressed pairs a decompressing reader with the file it draws from.
type decompressed struct {
	io.Reader
	file *os.File
}

func (d decompressed) Close() error { return d.file.Close() }

// ParseCmd parses a cohort stream and prints the cohorts as JSON.
type ParseCmd struct {
	Path   string `arg:"" optional:"" default:"-" help:"Stream file (.xz/.gz handled; - for stdin)"`
	Indent bool   `help:"Pretty-print the JSON output"`
}

func (c *ParseCmd) Run() error {
	in, err := openInput(c.Path)
	if err != nil {
		return err
	}
	defer in.Close()

	cohorts, err := cgstream.ParseReader(in)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	if c.Indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(cohorts)
}

// FormatCmd reads JSON cohorts and prints the canonical stream text.
type FormatCmd struct {
	Path string `arg:"" optional:"" default:"-" help:"JSON file (.xz/.gz handled; - for stdin)"`
}

func (c *FormatCmd) Run() error {
	in, err := openInput(c.Path)
	if err != nil {
		return err
	}
	defer in.Close()

	var cohorts []cgstream.Cohort
	if err := json.NewDecoder(in).Decode(&cohorts); err != nil {
		return fmt.Errorf("decode cohorts: %w", err)
	}
	return cgstream.SerializeTo(os.Stdout, cohorts)
}

// CheckCmd parses a stream, re-serializes it, and reports the first line
// where the output diverges from the input. Canonical input must come
// back byte for byte.
type CheckCmd struct {
	Path string `arg:"" optional:"" default:"-" help:"Stream file (.xz/.gz handled; - for stdin)"`
}

func (c *CheckCmd) Run() error {
	in, err := openInput(c.Path)
	if err != nil {
		return err
	}
	defer in.Close()

	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	text := string(data)
	cohorts := cgstream.Parse(text)
	out := cgstream.Serialize(cohorts)
	if out == text {
		fmt.Printf("ok: %d cohorts, %d bytes round-trip\n", len(cohorts), len(out))
		return nil
	}

	want := strings.Split(text, "\n")
	got := strings.Split(out, "\n")
	for i := 0; i < len(want) || i < len(got); i++ {
		var w, g string
		if i < len(want) {
			w = want[i]
		}
		if i < len(got) {
			g = got[i]
		}
		if w != g {
			return fmt.Errorf("line %d differs\n input: %q\noutput: %q", i+1, w, g)
		}
	}
	return fmt.Errorf("input and output differ in length only")
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("cgtool"),
		kong.Description("Cohort-stream conversion and round-trip checking"),
		kong.UsageOnError(),
	)
	ctx.FatalIfErrorf(ctx.Run())
}

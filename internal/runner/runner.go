// Package runner walks the configured sources in order, counts each
// one, and prints the per-source and total lines.
package runner

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/kfehlhauer/wcr/internal/config"
	"github.com/kfehlhauer/wcr/internal/count"
	"github.com/kfehlhauer/wcr/internal/source"
)

// fieldWidth is the column width for every printed count.
const fieldWidth = 8

// Runner executes one counting run. Out receives the count lines,
// ErrOut the per-source diagnostics.
type Runner struct {
	Config config.Config
	Opener *source.Opener
	Out    io.Writer
	ErrOut io.Writer
}

// Run processes every configured source in order. A source that fails
// to open or count gets one diagnostic line on ErrOut and is skipped;
// it contributes nothing to the total. When more than one source was
// requested a total line is printed, regardless of how many failed.
func (r *Runner) Run() {
	var total count.Measurement

	for _, name := range r.Config.Sources {
		stream, err := r.Opener.Open(name)
		if err != nil {
			fmt.Fprintf(r.ErrOut, "%s: %v\n", name, err)
			continue
		}

		m, err := count.Reader(stream)
		stream.Close() //nolint:errcheck // the stream was read to EOF
		if err != nil {
			fmt.Fprintf(r.ErrOut, "%s: %v\n", name, err)
			continue
		}

		slog.Debug("counted source",
			"source", name,
			"lines", m.Lines,
			"words", m.Words,
			"bytes", m.Bytes,
			"chars", m.Chars)

		total.Add(m)

		suffix := ""
		if name != source.Stdin {
			suffix = " " + name
		}
		fmt.Fprintf(r.Out, "%s%s\n", r.formatMeasurement(m), suffix)
	}

	if len(r.Config.Sources) > 1 {
		fmt.Fprintf(r.Out, "%s total\n", r.formatMeasurement(total))
	}
}

// FormatField renders value right-aligned in a fixed-width column, or
// an empty string when the field was not requested so unselected fields
// leave no stray separators. Wider values overflow the column rather
// than being truncated.
func FormatField(value int, show bool) string {
	if !show {
		return ""
	}
	return fmt.Sprintf("%*d", fieldWidth, value)
}

func (r *Runner) formatMeasurement(m count.Measurement) string {
	return FormatField(m.Lines, r.Config.ShowLines) +
		FormatField(m.Words, r.Config.ShowWords) +
		FormatField(m.Bytes, r.Config.ShowBytes) +
		FormatField(m.Chars, r.Config.ShowChars) +
		FormatField(m.MaxLineLength, r.Config.ShowMaxLength)
}

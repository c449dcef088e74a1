// Package count implements the counting engine: a single pass over a
// readable stream that produces line, word, byte, character, and
// longest-line measurements.
package count

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"unicode"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// Tab stops every 8 columns, matching traditional terminal behavior.
const tabWidth = 8

// ErrInvalidEncoding reports stream content that is not valid UTF-8.
// It is the only failure mode intrinsic to the engine.
var ErrInvalidEncoding = errors.New("invalid UTF-8 encoding")

// Measurement holds the counts produced for a single source. It is a
// plain value: created fresh per source, compared by value in tests.
type Measurement struct {
	Lines         int
	Words         int
	Bytes         int
	Chars         int
	MaxLineLength int
}

// Add accumulates other into m. Count fields sum; MaxLineLength takes
// the maximum, since the widest line across sources is still one line.
func (m *Measurement) Add(other Measurement) {
	m.Lines += other.Lines
	m.Words += other.Words
	m.Bytes += other.Bytes
	m.Chars += other.Chars
	if other.MaxLineLength > m.MaxLineLength {
		m.MaxLineLength = other.MaxLineLength
	}
}

// Reader consumes r in full and returns its Measurement. The stream is
// read exactly once and never seeked.
//
// A line is a run of content ended by '\n'; a final unterminated line
// with at least one character still counts. Words are maximal runs of
// non-whitespace, with whitespace per unicode.IsSpace. Bytes are raw
// encoded length, Chars decoded code points, so Chars <= Bytes with
// equality for pure 7-bit content. MaxLineLength is the widest line in
// display columns, with tabs advancing to the next tab stop.
func Reader(r io.Reader) (Measurement, error) {
	br := bufio.NewReader(transform.NewReader(r, encoding.UTF8Validator))

	var m Measurement
	inWord := false
	endedWithNewline := false
	lineWidth := 0

	for {
		ch, size, err := br.ReadRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			if errors.Is(err, encoding.ErrInvalidUTF8) {
				return Measurement{}, ErrInvalidEncoding
			}
			return Measurement{}, fmt.Errorf("reading stream: %w", err)
		}

		m.Bytes += size
		m.Chars++

		if unicode.IsSpace(ch) {
			inWord = false
		} else if !inWord {
			inWord = true
			m.Words++
		}

		switch ch {
		case '\n':
			m.Lines++
			if lineWidth > m.MaxLineLength {
				m.MaxLineLength = lineWidth
			}
			lineWidth = 0
		case '\t':
			lineWidth += tabWidth - lineWidth%tabWidth
		default:
			lineWidth += runewidth.RuneWidth(ch)
		}
		endedWithNewline = ch == '\n'
	}

	if m.Chars > 0 && !endedWithNewline {
		m.Lines++
	}
	if lineWidth > m.MaxLineLength {
		m.MaxLineLength = lineWidth
	}

	return m, nil
}

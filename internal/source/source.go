// Package source resolves source identifiers to readable byte streams.
package source

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"golang.org/x/term"
)

// Stdin is the identifier that selects the standard-input stream.
const Stdin = "-"

// Opener maps source identifiers to streams. The standard-input stream
// is injected rather than read from the process ambiently, so counting
// code stays independently testable.
type Opener struct {
	Stdin io.Reader
}

// Open resolves name to a readable stream. "-" yields the injected
// standard input; any other name is opened as a file path, with paths
// ending in .gz decompressed transparently. Callers own the returned
// stream and must close it.
func (o *Opener) Open(name string) (io.ReadCloser, error) {
	if name == Stdin {
		if f, ok := o.Stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			slog.Debug("reading from an interactive terminal; send EOF to finish")
		}
		return io.NopCloser(o.Stdin), nil
	}

	f, err := os.Open(name)
	if err != nil {
		// The caller prefixes diagnostics with the identifier, so
		// surface the bare system message instead of the doubled path.
		var pathErr *os.PathError
		if errors.As(err, &pathErr) {
			return nil, pathErr.Err
		}
		return nil, err
	}

	if strings.HasSuffix(name, ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			f.Close() //nolint:errcheck // the open error is the one that matters
			return nil, fmt.Errorf("gzip: %w", err)
		}
		return &gzipReadCloser{zr: zr, file: f}, nil
	}

	return f, nil
}

// gzipReadCloser reads decompressed content and closes both the
// decompressor and the underlying file.
type gzipReadCloser struct {
	zr   *gzip.Reader
	file *os.File
}

func (g *gzipReadCloser) Read(p []byte) (int, error) {
	return g.zr.Read(p)
}

func (g *gzipReadCloser) Close() error {
	zerr := g.zr.Close()
	ferr := g.file.Close()
	if zerr != nil {
		return zerr
	}
	return ferr
}

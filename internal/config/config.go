// Package config turns raw flag values and optional file defaults into
// a validated run configuration.
package config

import (
	"errors"
	"fmt"

	"github.com/kfehlhauer/wcr/internal/projectconfig"
	"github.com/kfehlhauer/wcr/internal/source"
)

// ErrCharsAndBytes reports a request for both character and byte
// counts, which are mutually exclusive.
var ErrCharsAndBytes = errors.New("--chars and --bytes are mutually exclusive")

// Flags holds the raw values collected from the command line.
type Flags struct {
	Lines         bool
	Words         bool
	Bytes         bool
	Chars         bool
	MaxLineLength bool
	Sources       []string
}

// Config is the validated, immutable run configuration.
type Config struct {
	// Sources to read, in order. Never empty: defaults to standard
	// input when no FILES were given.
	Sources []string

	ShowLines     bool
	ShowWords     bool
	ShowBytes     bool
	ShowChars     bool
	ShowMaxLength bool
}

// Resolve validates flags against fileDefaults and produces a Config.
// File defaults only apply when the command line requested no counts at
// all; if neither requests anything, lines, words, and bytes are shown.
func Resolve(flags Flags, fileDefaults *projectconfig.ProjectConfig) (Config, error) {
	cfg := Config{
		ShowLines:     flags.Lines,
		ShowWords:     flags.Words,
		ShowBytes:     flags.Bytes,
		ShowChars:     flags.Chars,
		ShowMaxLength: flags.MaxLineLength,
	}

	if !anyCount(cfg) && fileDefaults != nil {
		for _, name := range fileDefaults.Defaults.Counts {
			switch name {
			case "lines":
				cfg.ShowLines = true
			case "words":
				cfg.ShowWords = true
			case "bytes":
				cfg.ShowBytes = true
			case "chars":
				cfg.ShowChars = true
			case "max-line-length":
				cfg.ShowMaxLength = true
			default:
				return Config{}, fmt.Errorf("%s: unknown count %q", projectconfig.ConfigFileName, name)
			}
		}
	}

	if cfg.ShowChars && cfg.ShowBytes {
		return Config{}, ErrCharsAndBytes
	}

	// The default triad. Chars is never auto-enabled.
	if !anyCount(cfg) {
		cfg.ShowLines = true
		cfg.ShowWords = true
		cfg.ShowBytes = true
	}

	cfg.Sources = flags.Sources
	if len(cfg.Sources) == 0 {
		cfg.Sources = []string{source.Stdin}
	}

	return cfg, nil
}

func anyCount(cfg Config) bool {
	return cfg.ShowLines || cfg.ShowWords || cfg.ShowBytes || cfg.ShowChars || cfg.ShowMaxLength
}

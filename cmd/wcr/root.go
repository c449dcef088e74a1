package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/kfehlhauer/wcr/internal/config"
	"github.com/kfehlhauer/wcr/internal/projectconfig"
	"github.com/kfehlhauer/wcr/internal/runner"
	"github.com/kfehlhauer/wcr/internal/source"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wcr [flags] [FILES...]",
		Short: "Count lines, words, bytes, and characters in text",
		Long: `wcr counts lines, words, bytes, and characters in files or standard input.

Each FILE is read in order and one line of counts is printed per file,
followed by a "total" line when more than one FILE is given. With no
FILES, or when FILE is -, standard input is read. Files ending in .gz
are decompressed before counting. With no count flags, lines, words,
and bytes are shown.`,
		Version:       version,
		Args:          cobra.ArbitraryArgs,
		RunE:          runRoot,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().BoolP("lines", "l", false, "Show line count")
	cmd.Flags().BoolP("words", "w", false, "Show word count")
	cmd.Flags().BoolP("bytes", "c", false, "Show byte count")
	cmd.Flags().BoolP("chars", "m", false, "Show character count")
	cmd.Flags().BoolP("max-line-length", "L", false, "Show display width of the longest line")

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *debugLogging {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	}

	return cmd
}

func runRoot(cmd *cobra.Command, args []string) error {
	flags := config.Flags{Sources: args}

	var err error
	if flags.Lines, err = cmd.Flags().GetBool("lines"); err != nil {
		return err
	}
	if flags.Words, err = cmd.Flags().GetBool("words"); err != nil {
		return err
	}
	if flags.Bytes, err = cmd.Flags().GetBool("bytes"); err != nil {
		return err
	}
	if flags.Chars, err = cmd.Flags().GetBool("chars"); err != nil {
		return err
	}
	if flags.MaxLineLength, err = cmd.Flags().GetBool("max-line-length"); err != nil {
		return err
	}

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}
	fileDefaults, err := projectconfig.Load(wd)
	if err != nil {
		return err
	}

	cfg, err := config.Resolve(flags, fileDefaults)
	if err != nil {
		return err
	}

	r := &runner.Runner{
		Config: cfg,
		Opener: &source.Opener{Stdin: cmd.InOrStdin()},
		Out:    cmd.OutOrStdout(),
		ErrOut: cmd.ErrOrStderr(),
	}
	r.Run()
	return nil
}

func execute() error {
	return newRootCommand().Execute()
}

// Package main provides the CLI entry point for slashdoc, a tool that
// generates Markdown API documentation from "///" comment blocks.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"go.jacobcolvin.com/doctools/log"
	"go.jacobcolvin.com/doctools/slashdoc"
	"go.jacobcolvin.com/doctools/version"
)

// errNoInput is returned when no files are given and stdin is a terminal.
var errNoInput = errors.New("no input files and stdin is a terminal")

func main() {
	err := newCommand(os.Stdin, os.Stdout, os.Stderr).ExecuteContext(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func newCommand(stdin *os.File, stdout, stderr io.Writer) *cobra.Command {
	cfg := slashdoc.NewConfig()
	logCfg := log.NewConfig()

	rootCmd := &cobra.Command{
		Use:   "slashdoc [flags] [file ...]",
		Short: "Generate Markdown documentation from /// comment blocks",
		Long: `slashdoc extracts "///" documentation blocks from source files and renders
them as Markdown. Each block starts with a "name: description" header, may
continue with more description lines, and may declare parameters and a return
value:

  /// spacer: Insert vertical space
  /// @param lines int = 1 lines of space
  /// @return content the spacing

Files are processed in the order given. With no files, or "-", source is read
from stdin.`,
		Version:       version.String(),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			handler, err := logCfg.NewHandler(stderr)
			if err != nil {
				return err
			}

			slog.SetDefault(slog.New(handler))

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cfg, args, stdin, stdout)
		},
	}

	cfg.RegisterFlags(rootCmd.Flags())
	logCfg.RegisterFlags(rootCmd.PersistentFlags())

	for _, register := range []func(*cobra.Command) error{cfg.RegisterCompletions, logCfg.RegisterCompletions} {
		completionErr := register(rootCmd)
		if completionErr != nil {
			fmt.Fprintf(stderr, "register completions: %v\n", completionErr)
		}
	}

	return rootCmd
}

func run(ctx context.Context, cfg *slashdoc.Config, args []string, stdin *os.File, stdout io.Writer) error {
	gen, err := cfg.NewGenerator()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		if term.IsTerminal(int(stdin.Fd())) {
			return fmt.Errorf("%w: %w", slashdoc.ErrReadInput, errNoInput)
		}

		args = []string{"-"}
	}

	inputs := make([][]byte, 0, len(args))

	for _, arg := range args {
		var data []byte

		if arg == "-" {
			data, err = io.ReadAll(stdin)
			if err != nil {
				return fmt.Errorf("%w: stdin: %w", slashdoc.ErrReadInput, err)
			}
		} else {
			data, err = os.ReadFile(arg)
			if err != nil {
				return fmt.Errorf("%w: %w", slashdoc.ErrReadInput, err)
			}
		}

		slog.Debug("read input",
			slog.String("path", arg),
			slog.Int("bytes", len(data)),
		)

		inputs = append(inputs, data)
	}

	out, err := gen.Generate(ctx, inputs...)
	if err != nil {
		return err
	}

	if cfg.Output == "" || cfg.Output == "-" {
		_, err = stdout.Write(out)
		if err != nil {
			return fmt.Errorf("%w: %w", slashdoc.ErrWriteOutput, err)
		}

		return nil
	}

	err = os.WriteFile(cfg.Output, out, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %w", slashdoc.ErrWriteOutput, err)
	}

	return nil
}

package slashdoc

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flags holds CLI flag names for documentation generation, allowing callers
// to customize flag names while keeping sensible defaults.
type Flags struct {
	Output      string
	Format      string
	Title       string
	Concurrency string
}

// Config holds CLI flag values for documentation generation.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.NewGenerator] to create a [Generator].
type Config struct {
	Flags       Flags
	Output      string
	Format      string
	Title       string
	Concurrency int
}

// NewConfig returns a new [Config] with default flag names.
func NewConfig() *Config {
	f := Flags{
		Output:      "output",
		Format:      "format",
		Title:       "title",
		Concurrency: "concurrency",
	}

	return &Config{Flags: f}
}

// RegisterFlags adds documentation generation flags to the given
// [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&c.Output, c.Flags.Output, "o", "-",
		"output file path (- for stdout)")
	flags.StringVarP(&c.Format, c.Flags.Format, "f", string(FormatMarkdown),
		fmt.Sprintf("output format, one of: %s", GetAllFormatStrings()))
	flags.StringVar(&c.Title, c.Flags.Title, "",
		"document title")
	flags.IntVarP(&c.Concurrency, c.Flags.Concurrency, "j", 1,
		"number of input files parsed in parallel")
}

// RegisterCompletions registers shell completions for documentation
// generation flags on cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	err := cmd.RegisterFlagCompletionFunc(c.Flags.Format,
		cobra.FixedCompletions(GetAllFormatStrings(), cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Format, err)
	}

	noFileComp := func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	for _, flag := range []string{c.Flags.Title, c.Flags.Concurrency} {
		regErr := cmd.RegisterFlagCompletionFunc(flag, noFileComp)
		if regErr != nil {
			return fmt.Errorf("registering %s completion: %w", flag, regErr)
		}
	}

	return nil
}

// NewGenerator creates a [Generator] using this [Config].
func (c *Config) NewGenerator() (*Generator, error) {
	var opts []Option

	if c.Format != "" {
		format, err := ParseFormat(c.Format)
		if err != nil {
			return nil, err
		}

		opts = append(opts, WithFormat(format))
	}

	if c.Title != "" {
		opts = append(opts, WithTitle(c.Title))
	}

	if c.Concurrency < 0 {
		return nil, fmt.Errorf("%w: concurrency must not be negative, got %d", ErrInvalidOption, c.Concurrency)
	}

	if c.Concurrency > 0 {
		opts = append(opts, WithConcurrency(c.Concurrency))
	}

	return NewGenerator(opts...), nil
}

package slashdoc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"go.jacobcolvin.com/doctools/slashdoc/docblock"
	"go.jacobcolvin.com/doctools/slashdoc/funcdoc"
)

// Sentinel errors returned by the generator.
var (
	ErrInvalidOption = errors.New("invalid option")
	ErrReadInput     = errors.New("read input")
	ErrWriteOutput   = errors.New("write output")
	ErrRender        = errors.New("render output")
)

// Format is an output format.
type Format string

// Output formats.
const (
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatSchema   Format = "schema"
)

var allFormats = []Format{FormatMarkdown, FormatHTML, FormatJSON, FormatYAML, FormatSchema}

// GetAllFormatStrings returns the accepted output format names.
func GetAllFormatStrings() []string {
	s := make([]string, 0, len(allFormats))
	for _, f := range allFormats {
		s = append(s, string(f))
	}

	return s
}

// ParseFormat parses an output format name.
func ParseFormat(format string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(format)))
	if slices.Contains(allFormats, f) {
		return f, nil
	}

	return "", fmt.Errorf("%w: unknown format %q", ErrInvalidOption, format)
}

// Generator produces documentation from source files.
type Generator struct {
	format      Format
	title       string
	concurrency int
}

// Option configures a Generator.
type Option func(*Generator)

// NewGenerator creates a Generator with the given options. The default
// format is [FormatMarkdown] and inputs are processed one at a time.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		format:      FormatMarkdown,
		concurrency: 1,
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// WithFormat sets the output format.
func WithFormat(format Format) Option {
	return func(g *Generator) {
		g.format = format
	}
}

// WithTitle sets a document title. Markdown and HTML output start with it as
// a level-one heading; schema output uses it as the root title.
func WithTitle(title string) Option {
	return func(g *Generator) {
		g.title = title
	}
}

// WithConcurrency sets how many inputs are parsed in parallel.
// Values less than 1 are clamped to 1.
func WithConcurrency(n int) Option {
	return func(g *Generator) {
		g.concurrency = max(n, 1)
	}
}

// Generate parses every documentation block in inputs and renders them in
// the configured format. Blocks appear in input order, then source order.
func (g *Generator) Generate(ctx context.Context, inputs ...[]byte) ([]byte, error) {
	docs, err := g.Parse(ctx, inputs...)
	if err != nil {
		return nil, err
	}

	return g.Render(docs)
}

// Parse extracts and parses the documentation blocks of each input. The
// result is flattened in input order.
func (g *Generator) Parse(ctx context.Context, inputs ...[]byte) ([]funcdoc.FunctionDoc, error) {
	results := make([][]funcdoc.FunctionDoc, len(inputs))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.concurrency)

	for i, input := range inputs {
		eg.Go(func() error {
			err := ctx.Err()
			if err != nil {
				return fmt.Errorf("input %d: %w", i, err)
			}

			results[i] = parseInput(i, input)

			return nil
		})
	}

	err := eg.Wait()
	if err != nil {
		return nil, err
	}

	return slices.Concat(results...), nil
}

// Render renders parsed documentation in the configured format.
func (g *Generator) Render(docs []funcdoc.FunctionDoc) ([]byte, error) {
	switch g.format {
	case FormatMarkdown:
		return renderMarkdown(g.title, docs), nil
	case FormatHTML:
		return renderHTML(g.title, docs)
	case FormatJSON:
		return renderJSON(docs)
	case FormatYAML:
		return renderYAML(docs)
	case FormatSchema:
		return renderSchema(g.title, docs)
	}

	return nil, fmt.Errorf("%w: unknown format %q", ErrInvalidOption, g.format)
}

func parseInput(index int, input []byte) []funcdoc.FunctionDoc {
	var docs []funcdoc.FunctionDoc

	for block := range docblock.ExtractString(string(input)) {
		doc := funcdoc.Parse(block)
		if doc.Name == "" {
			slog.Warn("documentation block has no name",
				slog.Int("input", index),
				slog.Int("block", len(docs)),
				slog.String("header", block[0]),
			)
		}

		docs = append(docs, doc)
	}

	slog.Debug("parsed input",
		slog.Int("input", index),
		slog.Int("blocks", len(docs)),
	)

	return docs
}

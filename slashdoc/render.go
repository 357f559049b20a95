package slashdoc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"iter"

	"github.com/goccy/go-yaml"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"go.jacobcolvin.com/doctools/slashdoc/funcdoc"
	"go.jacobcolvin.com/doctools/slashdoc/markdown"
)

// renderMarkdown joins the fragments of docs into one document, ending in a
// newline unless it is empty.
func renderMarkdown(title string, docs []funcdoc.FunctionDoc) []byte {
	doc := markdown.Join(fragments(title, docs))
	if doc == "" {
		return nil
	}

	return []byte(doc + "\n")
}

func fragments(title string, docs []funcdoc.FunctionDoc) iter.Seq[string] {
	return func(yield func(string) bool) {
		if title != "" && !yield(markdown.Heading(title)) {
			return
		}

		for _, doc := range docs {
			if !yield(markdown.Render(doc)) {
				return
			}
		}
	}
}

func renderHTML(title string, docs []funcdoc.FunctionDoc) ([]byte, error) {
	md := renderMarkdown(title, docs)
	if len(md) == 0 {
		return nil, nil
	}

	engine := goldmark.New(goldmark.WithExtensions(extension.GFM))

	var buf bytes.Buffer

	err := engine.Convert(md, &buf)
	if err != nil {
		return nil, fmt.Errorf("%w: html: %w", ErrRender, err)
	}

	return buf.Bytes(), nil
}

func renderJSON(docs []funcdoc.FunctionDoc) ([]byte, error) {
	if docs == nil {
		docs = []funcdoc.FunctionDoc{}
	}

	out, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: json: %w", ErrRender, err)
	}

	return append(out, '\n'), nil
}

func renderYAML(docs []funcdoc.FunctionDoc) ([]byte, error) {
	if docs == nil {
		docs = []funcdoc.FunctionDoc{}
	}

	out, err := yaml.Marshal(docs)
	if err != nil {
		return nil, fmt.Errorf("%w: yaml: %w", ErrRender, err)
	}

	return out, nil
}

func renderSchema(title string, docs []funcdoc.FunctionDoc) ([]byte, error) {
	schema := Schema(docs)
	if title != "" {
		schema.Title = title
	}

	out, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: schema: %w", ErrRender, err)
	}

	return append(out, '\n'), nil
}

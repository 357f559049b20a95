// Package markdown renders [funcdoc.FunctionDoc] records as Markdown.
package markdown

import (
	"iter"
	"strings"

	"go.jacobcolvin.com/doctools/slashdoc/docblock"
	"go.jacobcolvin.com/doctools/slashdoc/funcdoc"
)

// Section headings.
const (
	ParamsHeading  = "### Parameters:"
	ReturnsHeading = "### Returns:"
)

// Render returns the Markdown fragment for doc, without a trailing newline.
//
// The fragment is a level-two heading with the function name, the
// description lines, then the Parameters and Returns sections when they have
// content. Each parameter is rendered as
//
//	name: `type` (default: value) description
//
// where a missing default clause leaves a single space, so the description
// follows the type after two spaces.
func Render(doc funcdoc.FunctionDoc) string {
	var sb strings.Builder

	sb.WriteString("## ")
	sb.WriteString(doc.Name)

	for _, line := range doc.Description {
		sb.WriteByte('\n')
		sb.WriteString(line)
	}

	if len(doc.Params) > 0 {
		sb.WriteByte('\n')
		sb.WriteString(ParamsHeading)

		for _, p := range doc.Params {
			sb.WriteByte('\n')
			sb.WriteString(p.Name)
			sb.WriteString(": `")
			sb.WriteString(p.Type.String())
			sb.WriteString("` ")

			if p.Default != nil {
				sb.WriteString("(default: ")
				sb.WriteString(*p.Default)
				sb.WriteString(") ")
			} else {
				sb.WriteByte(' ')
			}

			sb.WriteString(p.Description)
		}
	}

	if doc.Return != nil {
		sb.WriteByte('\n')
		sb.WriteString(ReturnsHeading)
		sb.WriteString("\n`")
		sb.WriteString(doc.Return.Type.String())
		sb.WriteString("` ")
		sb.WriteString(doc.Return.Description)
	}

	return sb.String()
}

// Heading returns a level-one heading fragment.
func Heading(title string) string {
	return "# " + title
}

// Join concatenates fragments in order, separated by one blank line.
func Join(fragments iter.Seq[string]) string {
	var sb strings.Builder

	first := true
	for f := range fragments {
		if !first {
			sb.WriteString("\n\n")
		}

		sb.WriteString(f)

		first = false
	}

	return sb.String()
}

// Fragments parses and renders each block, in order.
func Fragments(blocks iter.Seq[docblock.Block]) iter.Seq[string] {
	return func(yield func(string) bool) {
		for b := range blocks {
			if !yield(Render(funcdoc.Parse(b))) {
				return
			}
		}
	}
}

// Document renders every documentation block in src as one Markdown
// document. Source without any blocks yields the empty string.
func Document(src string) string {
	return Join(Fragments(docblock.ExtractString(src)))
}

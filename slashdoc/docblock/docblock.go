package docblock

import (
	"iter"
	"strings"
)

// Marker is the token that starts every documentation comment line.
const Marker = "///"

// Block is the content of one contiguous run of marker lines, in source
// order. Each element has the marker and at most one following space removed.
type Block []string

// Source reconstructs the marker-prefixed comment lines of b, joined with LF.
func (b Block) Source() string {
	var sb strings.Builder
	for i, line := range b {
		if i > 0 {
			sb.WriteByte('\n')
		}

		sb.WriteString(Marker)
		sb.WriteByte(' ')
		sb.WriteString(line)
	}

	return sb.String()
}

// IsMarkerLine reports whether line is a documentation comment line and
// returns its content.
//
// Leading spaces and tabs are ignored. The marker must be followed by a
// single space or the end of the line, so "////" and "///x" are not marker
// lines.
func IsMarkerLine(line string) (string, bool) {
	rest, ok := strings.CutPrefix(strings.TrimLeft(line, " \t"), Marker)
	if !ok {
		return "", false
	}

	if rest == "" {
		return "", true
	}

	if rest[0] != ' ' {
		return "", false
	}

	return rest[1:], true
}

// Extract returns a lazy sequence of the [Block]s found in lines.
//
// Consecutive marker lines form one block, which ends at the first
// non-marker line or at the end of input. Non-marker lines are otherwise
// ignored. The sequence may be iterated more than once if lines can.
func Extract(lines iter.Seq[string]) iter.Seq[Block] {
	return func(yield func(Block) bool) {
		var current Block

		for line := range lines {
			content, ok := IsMarkerLine(line)
			if ok {
				current = append(current, content)

				continue
			}

			if current == nil {
				continue
			}

			if !yield(current) {
				return
			}

			current = nil
		}

		if current != nil {
			yield(current)
		}
	}
}

// ExtractString is like [Extract], splitting src with [Lines].
func ExtractString(src string) iter.Seq[Block] {
	return Extract(Lines(src))
}

// Lines splits src on LF, removing one trailing CR from each line.
// An empty src yields no lines.
func Lines(src string) iter.Seq[string] {
	return func(yield func(string) bool) {
		if src == "" {
			return
		}

		for line := range strings.SplitSeq(src, "\n") {
			if !yield(strings.TrimSuffix(line, "\r")) {
				return
			}
		}
	}
}

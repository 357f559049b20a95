package stringtest

import "strings"

// Input dedents a multi-line raw string literal for use as test input.
//
// One leading and one trailing blank line are removed, the indentation
// shared by all non-blank lines is stripped, and whitespace-only lines become
// empty. This lets inputs be indented along with the surrounding test code:
//
//	input := stringtest.Input(`
//		/// greet: Say hello
//		/// @param name string
//	`) // -> "/// greet: Say hello\n/// @param name string"
func Input(s string) string {
	lines := strings.Split(s, "\n")

	if len(lines) > 0 && isBlank(lines[0]) {
		lines = lines[1:]
	}

	if len(lines) > 0 && isBlank(lines[len(lines)-1]) {
		lines = lines[:len(lines)-1]
	}

	indent := -1

	for _, line := range lines {
		if isBlank(line) {
			continue
		}

		n := len(line) - len(strings.TrimLeft(line, " \t"))
		if indent < 0 || n < indent {
			indent = n
		}
	}

	for i, line := range lines {
		if isBlank(line) {
			lines[i] = ""

			continue
		}

		lines[i] = line[indent:]
	}

	return strings.Join(lines, "\n")
}

func isBlank(s string) bool {
	return strings.TrimLeft(s, " \t") == ""
}

// JoinLF joins multiple strings with LF line endings.
// Use this to construct expected test output with explicit line endings.
//
// Example:
//
//	want := stringtest.JoinLF(
//		"line1",
//		"line2",
//		"line3",
//	) // -> "line1\nline2\nline3"
func JoinLF(ss ...string) string {
	var sb strings.Builder
	for i, s := range ss {
		if i > 0 {
			sb.WriteByte('\n')
		}

		sb.WriteString(s)
	}

	return sb.String()
}

// JoinCRLF joins multiple strings with CRLF line endings.
// Use this to construct expected test output with explicit line endings on
// Windows.
//
// Example:
//
//	want := stringtest.JoinCRLF(
//		"line1",
//		"line2",
//		"line3",
//	) // -> "line1\r\nline2\r\nline3"
func JoinCRLF(ss ...string) string {
	var sb strings.Builder
	for i, s := range ss {
		if i > 0 {
			sb.WriteByte('\r')
			sb.WriteByte('\n')
		}

		sb.WriteString(s)
	}

	return sb.String()
}

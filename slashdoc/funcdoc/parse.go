package funcdoc

import "strings"

// Parse parses the lines of one documentation block into a [FunctionDoc].
//
// The first line is the header "name: description". Following lines are
// description lines until the first @param or @return line; after that only
// tag lines are read. Parse never fails: malformed input produces empty
// fields rather than an error.
func Parse(lines []string) FunctionDoc {
	var doc FunctionDoc

	if len(lines) == 0 {
		return doc
	}

	name, desc, ok := strings.Cut(lines[0], ":")
	if ok {
		doc.Name = strings.TrimSpace(name)
		desc = strings.TrimPrefix(desc, " ")
	} else {
		desc = lines[0]
	}

	doc.Description = append(doc.Description, desc)

	inTags := false

	for _, line := range lines[1:] {
		tag, rest, isTag := cutTag(line)
		if !isTag {
			if !inTags {
				doc.Description = append(doc.Description, line)
			}

			continue
		}

		inTags = true

		switch tag {
		case TagParam:
			doc.Params = append(doc.Params, parseParam(rest))
		case TagReturn:
			// Only the first @return is honored.
			if doc.Return == nil {
				ret := parseReturn(rest)
				doc.Return = &ret
			}
		}
	}

	return doc
}

// cutTag reports whether line starts with a tag, returning the tag and the
// text following it.
func cutTag(line string) (string, string, bool) {
	trimmed := strings.TrimLeft(line, " \t")

	for _, tag := range []string{TagParam, TagReturn} {
		rest, ok := strings.CutPrefix(trimmed, tag)
		if !ok {
			continue
		}

		if rest == "" || isSpace(rest[0]) {
			return tag, rest, true
		}
	}

	return "", "", false
}

func parseParam(text string) Param {
	s := scanner{text: text}

	p := Param{
		Name: s.token(),
		Type: s.typ(),
	}

	if s.peekToken() == "=" {
		s.token()

		def := s.token()
		p.Default = &def
	}

	p.Description = s.rest()

	return p
}

func parseReturn(text string) Return {
	s := scanner{text: text}

	return Return{
		Type:        s.typ(),
		Description: s.rest(),
	}
}

// scanner reads whitespace-delimited tokens from a tag line while keeping the
// original spacing of whatever is left unread.
type scanner struct {
	text string
	pos  int
}

func (s *scanner) skipSpace() {
	for s.pos < len(s.text) && isSpace(s.text[s.pos]) {
		s.pos++
	}
}

// token consumes and returns the next whitespace-delimited token, or "" at
// the end of the line.
func (s *scanner) token() string {
	s.skipSpace()

	start := s.pos
	for s.pos < len(s.text) && !isSpace(s.text[s.pos]) {
		s.pos++
	}

	return s.text[start:s.pos]
}

func (s *scanner) peekToken() string {
	pos := s.pos
	tok := s.token()
	s.pos = pos

	return tok
}

// typ consumes a bare type token or a bracketed union "[a | b]". A union
// without a closing bracket ends at the end of the line.
func (s *scanner) typ() Type {
	s.skipSpace()

	if s.pos >= len(s.text) {
		return nil
	}

	if s.text[s.pos] != '[' {
		return Type{s.token()}
	}

	inner := s.text[s.pos+1:]

	end := strings.IndexByte(inner, ']')
	if end < 0 {
		s.pos = len(s.text)
	} else {
		inner = inner[:end]
		s.pos += end + 2
	}

	var t Type

	for alt := range strings.SplitSeq(inner, "|") {
		alt = strings.TrimSpace(alt)
		if alt != "" {
			t = append(t, alt)
		}
	}

	return t
}

// rest returns the unread text with leading whitespace removed.
func (s *scanner) rest() string {
	s.skipSpace()

	return s.text[s.pos:]
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t'
}

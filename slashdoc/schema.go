package slashdoc

import (
	"encoding/json"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/google/jsonschema-go/jsonschema"

	"go.jacobcolvin.com/doctools/slashdoc/funcdoc"
)

const (
	draft7 = "http://json-schema.org/draft-07/schema#"

	typeNull   = "null"
	typeObject = "object"
)

// typeMapping maps common type names used in documentation to JSON Schema
// types. Keys are lower case.
var typeMapping = map[string]string{
	"int":        "integer",
	"integer":    "integer",
	"float":      "number",
	"number":     "number",
	"ratio":      "number",
	"bool":       "boolean",
	"boolean":    "boolean",
	"str":        "string",
	"string":     "string",
	"array":      "array",
	"list":       "array",
	"dict":       typeObject,
	"dictionary": typeObject,
	"object":     typeObject,
	"map":        typeObject,
	"none":       typeNull,
	"null":       typeNull,
	"nil":        typeNull,
}

// Schema returns a JSON Schema (Draft 7) describing the parameters of each
// documented function. Each function is an object schema under
// "definitions", keyed by name. Functions without a name are skipped; when
// names repeat, the last one wins.
func Schema(docs []funcdoc.FunctionDoc) *jsonschema.Schema {
	root := &jsonschema.Schema{
		Schema:      draft7,
		Definitions: make(map[string]*jsonschema.Schema),
	}

	for _, doc := range docs {
		if doc.Name == "" {
			continue
		}

		root.Definitions[doc.Name] = FunctionSchema(doc)
	}

	return root
}

// FunctionSchema returns an object schema for the parameters of doc.
//
// Parameters without a default are required. The return value, if any, is
// described under the "x-returns" extension keyword.
func FunctionSchema(doc funcdoc.FunctionDoc) *jsonschema.Schema {
	s := &jsonschema.Schema{
		Type:        typeObject,
		Title:       doc.Name,
		Description: strings.TrimSpace(strings.Join(doc.Description, "\n")),
		Properties:  make(map[string]*jsonschema.Schema),
	}

	for _, p := range doc.Params {
		if p.Name == "" {
			continue
		}

		prop := typeSchema(p.Type, p.Description)
		if p.Default != nil {
			prop.Default = defaultValue(*p.Default)
		} else if !slices.Contains(s.Required, p.Name) {
			s.Required = append(s.Required, p.Name)
		}

		s.Properties[p.Name] = prop
	}

	if doc.Return != nil {
		s.Extra = map[string]any{
			"x-returns": typeSchema(doc.Return.Type, doc.Return.Description),
		}
	}

	return s
}

// typeSchema maps a declared type to a schema. Unions become a type list.
// When any alternative has no JSON Schema equivalent the type is left
// unconstrained and the declared type is kept under "x-type".
func typeSchema(t funcdoc.Type, description string) *jsonschema.Schema {
	s := &jsonschema.Schema{Description: description}

	var types []string

	for _, alt := range t {
		jt, ok := typeMapping[strings.ToLower(alt)]
		if !ok {
			s.Extra = map[string]any{"x-type": t.String()}

			return s
		}

		if !slices.Contains(types, jt) {
			types = append(types, jt)
		}
	}

	switch len(types) {
	case 0:
	case 1:
		s.Type = types[0]
	default:
		s.Types = types
	}

	return s
}

// defaultValue converts a verbatim default literal to JSON by reading it as
// YAML, so numbers and booleans keep their type and anything unparseable is
// kept as a string. Null-like type names become null.
func defaultValue(literal string) json.RawMessage {
	if literal == "" {
		return nil
	}

	if typeMapping[strings.ToLower(literal)] == typeNull {
		return json.RawMessage("null")
	}

	var v any

	err := yaml.Unmarshal([]byte(literal), &v)
	if err != nil {
		v = literal
	}

	b, err := json.Marshal(v)
	if err != nil {
		b, _ = json.Marshal(literal) //nolint:errchkjson // Strings always marshal.
	}

	return b
}

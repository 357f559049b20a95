package funcdoc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.jacobcolvin.com/doctools/slashdoc/funcdoc"
)

func ptr(s string) *string {
	return &s
}

func TestParseHeader(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		want  funcdoc.FunctionDoc
		lines []string
	}{
		"empty block": {
			lines: nil,
			want:  funcdoc.FunctionDoc{},
		},
		"name and description": {
			lines: []string{"spacer: Vertical space"},
			want: funcdoc.FunctionDoc{
				Name:        "spacer",
				Description: []string{"Vertical space"},
			},
		},
		"name is trimmed": {
			lines: []string{"  spacer  : Vertical space"},
			want: funcdoc.FunctionDoc{
				Name:        "spacer",
				Description: []string{"Vertical space"},
			},
		},
		"only one space after the colon is removed": {
			lines: []string{"f:   indented"},
			want: funcdoc.FunctionDoc{
				Name:        "f",
				Description: []string{"  indented"},
			},
		},
		"no space after the colon": {
			lines: []string{"f:tight"},
			want: funcdoc.FunctionDoc{
				Name:        "f",
				Description: []string{"tight"},
			},
		},
		"splits at the first colon": {
			lines: []string{"f: note: colons stay"},
			want: funcdoc.FunctionDoc{
				Name:        "f",
				Description: []string{"note: colons stay"},
			},
		},
		"empty description after colon": {
			lines: []string{"f:"},
			want: funcdoc.FunctionDoc{
				Name:        "f",
				Description: []string{""},
			},
		},
		"no colon": {
			lines: []string{"sends a request"},
			want: funcdoc.FunctionDoc{
				Name:        "",
				Description: []string{"sends a request"},
			},
		},
		"empty header line": {
			lines: []string{""},
			want: funcdoc.FunctionDoc{
				Description: []string{""},
			},
		},
		"multi-line description": {
			lines: []string{
				"_num_to_fr_units: Map a number into a tuple of 1fr units",
				"primarily used to make optional column passing easier",
			},
			want: funcdoc.FunctionDoc{
				Name: "_num_to_fr_units",
				Description: []string{
					"Map a number into a tuple of 1fr units",
					"primarily used to make optional column passing easier",
				},
			},
		},
		"description lines are verbatim": {
			lines: []string{
				"f: header",
				"",
				"  indented: with colon",
				"trailing space ",
			},
			want: funcdoc.FunctionDoc{
				Name: "f",
				Description: []string{
					"header",
					"",
					"  indented: with colon",
					"trailing space ",
				},
			},
		},
		"description stops at first tag": {
			lines: []string{
				"f: header",
				"more",
				"@param x int the x",
				"ignored trailing text",
				"@return int the result",
				"also ignored",
			},
			want: funcdoc.FunctionDoc{
				Name:        "f",
				Description: []string{"header", "more"},
				Params: []funcdoc.Param{
					{Name: "x", Type: funcdoc.Type{"int"}, Description: "the x"},
				},
				Return: &funcdoc.Return{Type: funcdoc.Type{"int"}, Description: "the result"},
			},
		},
		"tag on the header line is not a tag": {
			lines: []string{"@param x int"},
			want: funcdoc.FunctionDoc{
				Description: []string{"@param x int"},
			},
		},
		"indented tags": {
			lines: []string{
				"f: header",
				"  @param x int the x",
				"\t@return int the result",
			},
			want: funcdoc.FunctionDoc{
				Name:        "f",
				Description: []string{"header"},
				Params: []funcdoc.Param{
					{Name: "x", Type: funcdoc.Type{"int"}, Description: "the x"},
				},
				Return: &funcdoc.Return{Type: funcdoc.Type{"int"}, Description: "the result"},
			},
		},
		"tags are case-sensitive and exact": {
			lines: []string{
				"f: header",
				"@Param x int",
				"@parameter x int",
				"@returns int",
				"@param_x",
			},
			want: funcdoc.FunctionDoc{
				Name: "f",
				Description: []string{
					"header",
					"@Param x int",
					"@parameter x int",
					"@returns int",
					"@param_x",
				},
			},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := funcdoc.Parse(tc.lines)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseParam(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		line string
		want funcdoc.Param
	}{
		"bare type": {
			line: "@param q_body content Question Body",
			want: funcdoc.Param{
				Name:        "q_body",
				Type:        funcdoc.Type{"content"},
				Description: "Question Body",
			},
		},
		"default": {
			line: "@param lines int = 1 lines of space...",
			want: funcdoc.Param{
				Name:        "lines",
				Type:        funcdoc.Type{"int"},
				Default:     ptr("1"),
				Description: "lines of space...",
			},
		},
		"quoted default is verbatim": {
			line: `@param sep str = "," separator`,
			want: funcdoc.Param{
				Name:        "sep",
				Type:        funcdoc.Type{"str"},
				Default:     ptr(`","`),
				Description: "separator",
			},
		},
		"default without description": {
			line: "@param retries int = 3",
			want: funcdoc.Param{
				Name:    "retries",
				Type:    funcdoc.Type{"int"},
				Default: ptr("3"),
			},
		},
		"equals with no value": {
			line: "@param retries int =",
			want: funcdoc.Param{
				Name:    "retries",
				Type:    funcdoc.Type{"int"},
				Default: ptr(""),
			},
		},
		"equals glued to value is description": {
			line: "@param retries int =3 tries",
			want: funcdoc.Param{
				Name:        "retries",
				Type:        funcdoc.Type{"int"},
				Description: "=3 tries",
			},
		},
		"no description": {
			line: "@param url string",
			want: funcdoc.Param{
				Name: "url",
				Type: funcdoc.Type{"string"},
			},
		},
		"union": {
			line: "@param cols [int | array] = 2 column spec",
			want: funcdoc.Param{
				Name:        "cols",
				Type:        funcdoc.Type{"int", "array"},
				Default:     ptr("2"),
				Description: "column spec",
			},
		},
		"union without spaces": {
			line: "@param cols [int|array|none] column spec",
			want: funcdoc.Param{
				Name:        "cols",
				Type:        funcdoc.Type{"int", "array", "none"},
				Description: "column spec",
			},
		},
		"union keeps order and duplicates": {
			line: "@param v [str | int | str] value",
			want: funcdoc.Param{
				Name:        "v",
				Type:        funcdoc.Type{"str", "int", "str"},
				Description: "value",
			},
		},
		"union drops empty alternatives": {
			line: "@param v [sdf|] value",
			want: funcdoc.Param{
				Name:        "v",
				Type:        funcdoc.Type{"sdf"},
				Description: "value",
			},
		},
		"description directly after union": {
			line: "@param v [int|str]value",
			want: funcdoc.Param{
				Name:        "v",
				Type:        funcdoc.Type{"int", "str"},
				Description: "value",
			},
		},
		"unterminated union closes at end of line": {
			line: "@param v [int | str the value",
			want: funcdoc.Param{
				Name: "v",
				Type: funcdoc.Type{"int", "str the value"},
			},
		},
		"internal spacing is preserved": {
			line: "@param   x    int    two  spaces   here ",
			want: funcdoc.Param{
				Name:        "x",
				Type:        funcdoc.Type{"int"},
				Description: "two  spaces   here ",
			},
		},
		"tabs separate tokens": {
			line: "@param\tx\tint\tthe x",
			want: funcdoc.Param{
				Name:        "x",
				Type:        funcdoc.Type{"int"},
				Description: "the x",
			},
		},
		"name only": {
			line: "@param x",
			want: funcdoc.Param{
				Name: "x",
			},
		},
		"empty tag": {
			line: "@param",
			want: funcdoc.Param{},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := funcdoc.Parse([]string{"f: header", tc.line})
			assert.Equal(t, []funcdoc.Param{tc.want}, got.Params)
		})
	}
}

func TestParseReturn(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		want  *funcdoc.Return
		lines []string
	}{
		"no return": {
			lines: []string{"f: header", "@param x int"},
			want:  nil,
		},
		"bare type": {
			lines: []string{"f: header", "@return array Array of num fr units"},
			want: &funcdoc.Return{
				Type:        funcdoc.Type{"array"},
				Description: "Array of num fr units",
			},
		},
		"union": {
			lines: []string{"f: header", "@return [content | none] the body"},
			want: &funcdoc.Return{
				Type:        funcdoc.Type{"content", "none"},
				Description: "the body",
			},
		},
		"type only": {
			lines: []string{"f: header", "@return int"},
			want: &funcdoc.Return{
				Type: funcdoc.Type{"int"},
			},
		},
		"empty tag": {
			lines: []string{"f: header", "@return"},
			want:  &funcdoc.Return{},
		},
		"spacing after type is trimmed": {
			lines: []string{"f: header", "@return int     a  b"},
			want: &funcdoc.Return{
				Type:        funcdoc.Type{"int"},
				Description: "a  b",
			},
		},
		"first return wins": {
			lines: []string{
				"f: header",
				"@return int first",
				"@return str second",
			},
			want: &funcdoc.Return{
				Type:        funcdoc.Type{"int"},
				Description: "first",
			},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := funcdoc.Parse(tc.lines)
			assert.Equal(t, tc.want, got.Return)
		})
	}
}

func TestParseParamOrder(t *testing.T) {
	t.Parallel()

	got := funcdoc.Parse([]string{
		"f: header",
		"@param c int",
		"@return int result",
		"@param a int",
		"@param b int",
		"@param a str",
	})

	names := make([]string, 0, len(got.Params))
	for _, p := range got.Params {
		names = append(names, p.Name)
	}

	assert.Equal(t, []string{"c", "a", "b", "a"}, names)
}

func TestType(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		typ   funcdoc.Type
		want  string
		union bool
	}{
		"empty": {
			typ:  nil,
			want: "",
		},
		"bare": {
			typ:  funcdoc.Type{"int"},
			want: "int",
		},
		"union": {
			typ:   funcdoc.Type{"int", "array"},
			want:  "int | array",
			union: true,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, tc.typ.String())
			assert.Equal(t, tc.union, tc.typ.IsUnion())
		})
	}
}

package printer

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/tidwall/pretty"
	"github.com/turbolent/prettier"

	"github.com/tinyrange/sysy/internal/ast"
)

// Serialize returns the canonical single-line rendering of root, without
// a trailing newline. The same tree always yields the same text. A tree
// that violates a node invariant yields a *errors.MalformedNodeError.
func Serialize(root *ast.CompUnit) (string, error) {
	f, err := render(root)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	writeText(&b, f)
	return b.String(), nil
}

func writeText(b *strings.Builder, f fragment) {
	switch f := f.(type) {
	case atom:
		b.WriteString(string(f))
	case bracket:
		b.WriteByte('[')
		writeText(b, f.inner)
		b.WriteByte(']')
	case *element:
		b.WriteString(f.label)
		b.WriteString(" {")
		sep := ", "
		if f.infix {
			sep = " "
		}
		for i, field := range f.fields {
			if i == 0 {
				b.WriteByte(' ')
			} else {
				b.WriteString(sep)
			}
			writeText(b, field)
		}
		b.WriteString(" }")
	}
}

// Pretty renders root with the same structure as Serialize, breaking
// elements that do not fit in width columns over several indented lines.
// Whatever fits on one line is identical to the canonical form.
func Pretty(root *ast.CompUnit, width int) (string, error) {
	f, err := render(root)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	prettier.Prettier(&b, toDoc(f), width, "  ")
	return strings.TrimRight(b.String(), "\n"), nil
}

var commaSeparatorDoc prettier.Doc = prettier.Concat{
	prettier.Text(","),
	prettier.Line{},
}

var spaceSeparatorDoc prettier.Doc = prettier.Line{}

func toDoc(f fragment) prettier.Doc {
	switch f := f.(type) {
	case atom:
		return prettier.Text(string(f))
	case bracket:
		return prettier.Concat{
			prettier.Text("["),
			toDoc(f.inner),
			prettier.Text("]"),
		}
	case *element:
		if len(f.fields) == 0 {
			return prettier.Text(f.label + " { }")
		}
		fieldDocs := make([]prettier.Doc, len(f.fields))
		for i, field := range f.fields {
			fieldDocs[i] = toDoc(field)
		}
		sep := commaSeparatorDoc
		if f.infix {
			sep = spaceSeparatorDoc
		}
		return prettier.Group{
			Doc: prettier.Concat{
				prettier.Text(f.label + " {"),
				prettier.Indent{
					Doc: prettier.Concat{
						prettier.Line{},
						prettier.Join(sep, fieldDocs...),
					},
				},
				prettier.Line{},
				prettier.Text("}"),
			},
		}
	default:
		return prettier.Text("")
	}
}

// jsonNode is the JSON shape of an element: its label and its fields in
// order. Atoms become strings.
type jsonNode struct {
	Kind     string `json:"kind"`
	Children []any  `json:"children,omitempty"`
}

// JSON renders root as a JSON document with the same structure as the
// canonical text.
func JSON(root *ast.CompUnit) ([]byte, error) {
	f, err := render(root)
	if err != nil {
		return nil, err
	}
	return json.Marshal(toJSON(f))
}

// IndentJSON is JSON laid out over several lines, keeping arrays that fit
// in width columns on one line.
func IndentJSON(root *ast.CompUnit, width int) ([]byte, error) {
	b, err := JSON(root)
	if err != nil {
		return nil, err
	}
	opts := *pretty.DefaultOptions
	opts.Width = width
	return bytes.TrimRight(pretty.PrettyOptions(b, &opts), "\n"), nil
}

func toJSON(f fragment) any {
	switch f := f.(type) {
	case atom:
		return string(f)
	case bracket:
		return jsonNode{Kind: "Index", Children: []any{toJSON(f.inner)}}
	case *element:
		n := jsonNode{Kind: f.label}
		for _, field := range f.fields {
			n.Children = append(n.Children, toJSON(field))
		}
		return n
	default:
		return nil
	}
}

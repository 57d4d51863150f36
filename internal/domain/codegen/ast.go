package codegen

import "strings"

// Node is a renderable piece of code: either Raw or Func.
type Node interface {
	renderTo(b *strings.Builder)
}

// Raw is literal code.
type Raw string

func (r Raw) renderTo(b *strings.Builder) {
	b.WriteString(string(r))
}

// Func is a function with an optional name, ordered parameters and body.
type Func struct {
	Name   string
	Params []string
	Body   []Node
}

func (f Func) renderTo(b *strings.Builder) {
	b.WriteString("function")

	if f.Name != "" {
		b.WriteByte(' ')
		b.WriteString(f.Name)
	}

	b.WriteByte('(')
	b.WriteString(strings.Join(f.Params, ","))
	b.WriteString("){")

	for _, n := range f.Body {
		n.renderTo(b)
	}

	b.WriteByte('}')
}

// Render concatenates the code of nodes.
func Render(nodes ...Node) string {
	var b strings.Builder

	for _, n := range nodes {
		n.renderTo(&b)
	}

	return b.String()
}

package codegen

// Binding pairs a parameter identifier with the expression supplied for it at
// the call site.
type Binding struct {
	Ident *Identifier
	Expr  string
}

// Captures collects the free variables of a wrapper function. Each captured
// expression becomes a parameter, in capture order.
type Captures struct {
	scope    *Scope
	bindings []Binding
	literals map[string]*Identifier
}

// NewCaptures creates an empty capture list minting names from scope.
func NewCaptures(scope *Scope) *Captures {
	return &Captures{
		scope:    scope,
		literals: make(map[string]*Identifier),
	}
}

// Literal captures an immutable expression. Capturing the same expression
// again returns the identifier bound the first time.
func (c *Captures) Literal(expr string) *Identifier {
	if id, ok := c.literals[expr]; ok {
		return id
	}

	id := c.Value(expr)
	c.literals[expr] = id

	return id
}

// Quoted captures the quoted, escaped form of s.
func (c *Captures) Quoted(s string) *Identifier {
	return c.Literal(Quote(s))
}

// Value captures an expression that must get its own binding every time,
// such as a mutable array literal.
func (c *Captures) Value(expr string) *Identifier {
	id := c.scope.Identifier()
	c.bindings = append(c.bindings, Binding{Ident: id, Expr: expr})

	return id
}

// Len returns the number of bindings.
func (c *Captures) Len() int {
	return len(c.bindings)
}

// Identifiers returns the bound identifiers in capture order.
func (c *Captures) Identifiers() []*Identifier {
	ids := make([]*Identifier, len(c.bindings))
	for i, b := range c.bindings {
		ids[i] = b.Ident
	}

	return ids
}

// Bindings returns a copy of the bindings in capture order.
func (c *Captures) Bindings() []Binding {
	return append([]Binding(nil), c.bindings...)
}

// Params resolves and returns the parameter names.
func (c *Captures) Params() []string {
	params := make([]string, len(c.bindings))
	for i, b := range c.bindings {
		params[i] = b.Ident.Resolve()
	}

	return params
}

// Args returns the call-site expressions.
func (c *Captures) Args() []string {
	args := make([]string, len(c.bindings))
	for i, b := range c.bindings {
		args[i] = b.Expr
	}

	return args
}

package codegen

import "strings"

//go:generate go tool stringer -type=State -trimprefix=State

// State is the lifecycle position of a Fragment.
type State int

// Fragment lifecycle states.
const (
	StateInactive State = iota
	StateActive
	StatePrepared
)

// Fragment is an optional unit of generated code.
//
// A fragment is constructed inactive. Only activated fragments take part in
// preparation, where their identifiers get names, and in rendering. Inline
// fragments share the lexical scope of their parent and contribute
// identifiers to it; nested fragments open an inner scope and are prepared
// after every identifier of the enclosing scope has been named.
type Fragment struct {
	state  State
	own    []*Identifier
	inline []*Fragment
	nested []*Fragment
	render func() string
}

// NewFragment creates an inactive fragment rendered by render and owning the
// given identifiers.
func NewFragment(render func() string, own ...*Identifier) *Fragment {
	return &Fragment{render: render, own: own}
}

// Inline attaches fragments that live in the same scope as f.
func (f *Fragment) Inline(children ...*Fragment) *Fragment {
	f.inline = append(f.inline, children...)
	return f
}

// Nest attaches fragments that open an inner scope.
func (f *Fragment) Nest(children ...*Fragment) *Fragment {
	f.nested = append(f.nested, children...)
	return f
}

// Activate marks f for inclusion. Activating a prepared fragment is a no-op.
func (f *Fragment) Activate() {
	if f.state == StateInactive {
		f.state = StateActive
	}
}

// ActivateIf activates f when cond holds.
func (f *Fragment) ActivateIf(cond bool) {
	if cond {
		f.Activate()
	}
}

// State returns the current lifecycle state.
func (f *Fragment) State() State {
	return f.state
}

// Active reports whether f was activated.
func (f *Fragment) Active() bool {
	return f.state != StateInactive
}

// Prepare names the identifiers of f and of everything below it. It does
// nothing when f is inactive or already prepared.
func (f *Fragment) Prepare() {
	PrepareAll(f)
}

// PrepareAll prepares sibling fragments sharing one scope: the identifiers
// of every sibling are named before any inner scope is entered.
func PrepareAll(fragments ...*Fragment) {
	for _, f := range fragments {
		f.resolveOwn()
	}

	for _, f := range fragments {
		f.prepareNested()
	}
}

func (f *Fragment) resolveOwn() {
	if f.state != StateActive {
		return
	}

	for _, id := range f.own {
		id.Resolve()
	}

	for _, child := range f.inline {
		child.resolveOwn()
	}
}

func (f *Fragment) prepareNested() {
	if f.state != StateActive {
		return
	}

	for _, child := range f.inline {
		child.prepareNested()
	}

	PrepareAll(f.nested...)

	f.state = StatePrepared
}

// Declared returns the names of the identifiers f owns followed by those of
// its active inline fragments.
func (f *Fragment) Declared() []string {
	if f.state == StateInactive {
		return nil
	}

	names := make([]string, 0, len(f.own))
	for _, id := range f.own {
		names = append(names, id.Resolve())
	}

	for _, child := range f.inline {
		names = append(names, child.Declared()...)
	}

	return names
}

// Render returns the code of f, or "" when f was never activated. Rendering
// an activated fragment before Prepare panics since its names would be
// assigned out of order.
func (f *Fragment) Render() string {
	switch f.state {
	case StateInactive:
		return ""
	case StateActive:
		panic("codegen: fragment rendered before Prepare")
	}

	if f.render == nil {
		return ""
	}

	return f.render()
}

// Join renders fragments and joins the non-empty results with sep.
func Join(sep string, fragments ...*Fragment) string {
	parts := make([]string, 0, len(fragments))

	for _, f := range fragments {
		if code := f.Render(); code != "" {
			parts = append(parts, code)
		}
	}

	return strings.Join(parts, sep)
}

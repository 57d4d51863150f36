// Package codegen provides the building blocks used to assemble compact
// JavaScript: scoped short-name allocation, activation-gated fragments,
// captured free variables and a small renderable node tree.
package codegen

import "strconv"

// identifierChars is the alphabet short names are drawn from, in order.
const identifierChars = "abcdefghijklmnopqrstuvwxyz$_"

// Scope is a naming context. Identifiers minted in a child scope continue the
// parent's sequence so names visible from the same nested context never
// collide, while sibling scopes may reuse names.
type Scope struct {
	parent *Scope
	next   int
	seeded bool
}

// NewScope creates a scope chained to parent. A nil parent starts a new lineage.
func NewScope(parent *Scope) *Scope {
	return &Scope{parent: parent}
}

// Child creates a scope nested in s.
func (s *Scope) Child() *Scope {
	return NewScope(s)
}

// Identifier returns a new unresolved identifier owned by s. No name is
// consumed until the identifier is resolved.
func (s *Scope) Identifier() *Identifier {
	return &Identifier{scope: s}
}

// Identifiers returns n unresolved identifiers owned by s.
func (s *Scope) Identifiers(n int) []*Identifier {
	ids := make([]*Identifier, n)
	for i := range ids {
		ids[i] = s.Identifier()
	}

	return ids
}

// cursor reports the next index this scope would mint, reading through
// unseeded ancestors.
func (s *Scope) cursor() int {
	if s.seeded {
		return s.next
	}

	if s.parent != nil {
		return s.parent.cursor()
	}

	return 0
}

func (s *Scope) mint() int {
	if !s.seeded {
		s.next = s.cursor()
		s.seeded = true
	}

	index := s.next
	s.next++

	return index
}

// NameAt maps a naming index to its short name.
func NameAt(index int) string {
	if index < len(identifierChars) {
		return identifierChars[index : index+1]
	}

	return "_" + strconv.Itoa(index-len(identifierChars))
}

// Identifier is a lazily resolved short name bound to one scope.
type Identifier struct {
	scope *Scope
	name  string
	done  bool
}

// Resolve returns the identifier's name, minting it on first use.
func (id *Identifier) Resolve() string {
	if !id.done {
		id.name = NameAt(id.scope.mint())
		id.done = true
	}

	return id.name
}

// Resolved reports whether a name has already been minted.
func (id *Identifier) Resolved() bool {
	return id.done
}

// String resolves the identifier so it can be used with fmt verbs.
func (id *Identifier) String() string {
	return id.Resolve()
}

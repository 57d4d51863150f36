package model

// Binding is a captured free variable of a generated script.
type Binding struct {
	Name string
	Expr string
}

// FragmentInfo describes one optional block of a generated script.
type FragmentInfo struct {
	Name  string
	State string
}

// Script is the result of assembling one configuration.
type Script struct {
	Text      string
	Bindings  []Binding
	Fragments []FragmentInfo
}

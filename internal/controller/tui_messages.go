package controller

import m "github.com/mouse-blink/modegen/internal/model"

// Message types.
type scriptMsg struct {
	script m.Script
}

// List item types.
type bindingItem struct {
	name string
	expr string
}

func (b bindingItem) FilterValue() string {
	return b.name + " " + b.expr
}

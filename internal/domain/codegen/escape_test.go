package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscape(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"it's", `it\'s`},
		{`say "hi"`, `say \"hi\"`},
		{`C:\dir`, `C:\\dir`},
		{`\'`, `\\\'`},
		{"", ""},
		{"ünïcode", "ünïcode"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Escape(tt.in))
		})
	}
}

func TestQuote(t *testing.T) {
	assert.Equal(t, `'x\'y'`, Quote("x'y"))
	assert.Equal(t, "''", Quote(""))
}

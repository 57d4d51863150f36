package codegen

import "strings"

var slashes = strings.NewReplacer(`\`, `\\`, `'`, `\'`, `"`, `\"`)

// Escape backslash-escapes backslashes and both quote characters so s can be
// embedded in a quoted JavaScript string.
func Escape(s string) string {
	return slashes.Replace(s)
}

// Quote returns s escaped and wrapped in single quotes.
func Quote(s string) string {
	return "'" + Escape(s) + "'"
}

// Package model defines the data structures shared by the generator layers.
package model

// Mode is the user-selected theme preference.
type Mode string

const (
	// ModeSystem follows the operating system preference.
	ModeSystem Mode = "system"
	// ModeDark forces the dark theme.
	ModeDark Mode = "dark"
	// ModeLight forces the light theme.
	ModeLight Mode = "light"
)

// Modes lists every valid Mode.
var Modes = []Mode{ModeSystem, ModeDark, ModeLight}

// Valid reports whether md is one of Modes.
func (md Mode) Valid() bool {
	return md == ModeSystem || md == ModeDark || md == ModeLight
}

// PersistType selects where the chosen mode is remembered.
type PersistType string

const (
	// PersistCookie stores the mode in a cookie.
	PersistCookie PersistType = "cookie"
	// PersistLocalStorage stores the mode in window.localStorage.
	PersistLocalStorage PersistType = "localStorage"
	// PersistSessionStorage stores the mode in window.sessionStorage.
	PersistSessionStorage PersistType = "sessionStorage"
)

// Valid reports whether pt is a known backend.
func (pt PersistType) Valid() bool {
	return pt == PersistCookie || pt.IsStorage()
}

// IsStorage reports whether pt is a key/value Storage backend.
func (pt PersistType) IsStorage() bool {
	return pt == PersistLocalStorage || pt == PersistSessionStorage
}

// Defaults applied by the validator.
const (
	DefaultPersistKey    = "dark"
	DefaultQuerySelector = "html"
	DefaultDarkClassName = "dark"
)

// Config is a validated generator configuration.
type Config struct {
	VariableName string
	DefaultMode  Mode
	Persist      Persist
	Apply        Apply
}

// Persist configures mode persistence.
type Persist struct {
	// Custom disables generated persistence; the page handles it itself.
	Custom bool
	Type   PersistType
	Key    string
	// CookieSystemThemeKey, when set, also stores the OS theme in a cookie.
	CookieSystemThemeKey *string
}

// Apply configures how the theme is reflected into markup.
type Apply struct {
	// Custom disables generated class toggling.
	Custom         bool
	QuerySelector  string
	DarkClassName  string
	LightClassName *string
}

// DefaultConfig returns the configuration used when only a variable name is
// given.
func DefaultConfig(variableName string) Config {
	return Config{
		VariableName: variableName,
		DefaultMode:  ModeSystem,
		Persist: Persist{
			Type: PersistCookie,
			Key:  DefaultPersistKey,
		},
		Apply: Apply{
			QuerySelector: DefaultQuerySelector,
			DarkClassName: DefaultDarkClassName,
		},
	}
}

package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	m "github.com/mouse-blink/modegen/internal/model"
	"github.com/spf13/pflag"
)

var logLevel = new(slog.LevelVar)

func newLogger(w io.Writer, level slog.Leveler) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// modeValue is a pflag.Value accepting only theme modes.
type modeValue m.Mode

var _ pflag.Value = (*modeValue)(nil)

func (v *modeValue) String() string {
	return string(*v)
}

func (v *modeValue) Set(s string) error {
	if !m.Mode(s).Valid() {
		return fmt.Errorf("must be one of %s", joinModes())
	}

	*v = modeValue(s)

	return nil
}

func (v *modeValue) Type() string {
	return "mode"
}

func joinModes() string {
	names := make([]string, len(m.Modes))
	for i, mode := range m.Modes {
		names[i] = string(mode)
	}

	return strings.Join(names, ", ")
}

// logLevelFlag sets a slog.LevelVar from --log-level.
type logLevelFlag struct {
	level *slog.LevelVar
}

var _ pflag.Value = (*logLevelFlag)(nil)

func (f *logLevelFlag) String() string {
	if f.level == nil {
		return "info"
	}

	return strings.ToLower(f.level.Level().String())
}

func (f *logLevelFlag) Set(s string) error {
	return f.level.UnmarshalText([]byte(s))
}

func (f *logLevelFlag) Type() string {
	return "level"
}

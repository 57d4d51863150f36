// Package controller provides the presentation layer of modegen: terminal
// output for the CLI and the HTTP preview router.
package controller

import (
	m "github.com/mouse-blink/modegen/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeReport StartMode = iota
	ModeInspect
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithReportMode sets the UI to print results line by line.
func WithReportMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeReport
	}
}

// WithInspectMode sets the UI to browse one script interactively when the
// output is a terminal.
func WithInspectMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeInspect
	}
}

// UI defines how workflow results are shown.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(options ...StartOption) error
	Close()
	Wait() // Wait for UI to finish (user closes it)
	DisplayArtifact(artifact m.Artifact)
	DisplayManifest(manifest m.Manifest)
	DisplaySmokeReport(report m.SmokeReport)
	DisplayConfigDump(dump string)
	DisplayScript(script m.Script)
}

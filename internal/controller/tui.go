package controller

import (
	"fmt"
	"io"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/modegen/internal/model"
)

var (
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Width(9)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
)

// TUI implements UI with lipgloss styling. In inspect mode it runs a Bubble
// Tea program until the user quits.
type TUI struct {
	output  io.Writer
	mode    StartMode
	program *tea.Program
	done    chan struct{}
	started bool
	closed  bool
	mu      sync.Mutex
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start initializes the UI.
func (t *TUI) Start(options ...StartOption) error {
	cfg := StartConfig{mode: ModeReport}
	for _, opt := range options {
		opt(&cfg)
	}

	t.mode = cfg.mode

	if t.mode == ModeInspect {
		return t.startWithModel(newInspectModel(), tea.WithAltScreen())
	}

	return nil
}

func (t *TUI) startWithModel(model tea.Model, opts ...tea.ProgramOption) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.started {
		return nil
	}

	opts = append([]tea.ProgramOption{tea.WithOutput(t.output)}, opts...)
	t.program = tea.NewProgram(model, opts...)
	t.done = make(chan struct{})
	t.started = true

	go func() {
		defer close(t.done)

		_, _ = t.program.Run()
	}()

	return nil
}

func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program != nil {
		program.Send(msg)
	}
}

// Wait blocks until the user closes the program. It returns immediately
// when no program runs.
func (t *TUI) Wait() {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()

	if done != nil {
		<-done
	}
}

// Close stops the program, if any, and waits for it to exit.
func (t *TUI) Close() {
	t.mu.Lock()
	if t.closed || t.program == nil {
		t.closed = true
		t.mu.Unlock()

		return
	}

	t.closed = true
	program, done := t.program, t.done
	t.mu.Unlock()

	program.Quit()
	<-done
}

// DisplayArtifact prints one written file.
func (t *TUI) DisplayArtifact(artifact m.Artifact) {
	t.printf("%s %s %s\n",
		okStyle.Render("✓"),
		valueStyle.Render(string(artifact.Output)),
		accentStyle.Render(fmt.Sprintf("%d bytes  window['%s']  %s", artifact.Size, artifact.VariableName, shortHash(artifact.SHA256))))
}

// DisplayManifest prints one line per artifact of a batch.
func (t *TUI) DisplayManifest(manifest m.Manifest) {
	t.printf("%s %s\n", headerStyle.Render("batch"), accentStyle.Render(manifest.RunID))

	width := terminalWidth(t.output, 100) - 4

	for _, a := range manifest.Artifacts {
		line := fmt.Sprintf("%s → %s  %d bytes", a.Config, a.Output, a.Size)
		t.printf("  %s %s\n", okStyle.Render("✓"), truncateToWidth(line, width))
	}
}

// DisplaySmokeReport prints what the sandbox run found.
func (t *TUI) DisplaySmokeReport(report m.SmokeReport) {
	t.printf("%s window['%s']\n", okStyle.Render("✓"), report.VariableName)
	t.field("methods", strings.Join(report.Methods, ", "))
	t.field("mode", report.Mode)
	t.field("theme", report.Theme)
	t.field("cookie", orNone(report.Cookie))
	t.field("classes", orNone(strings.Join(report.Classes, " ")))
}

// DisplayConfigDump prints a normalized config dump.
func (t *TUI) DisplayConfigDump(dump string) {
	t.printf("%s\n%s\n", headerStyle.Render("config"), strings.TrimRight(dump, "\n"))
}

// DisplayScript hands the script to the inspect program, or prints a short
// summary when none runs.
func (t *TUI) DisplayScript(script m.Script) {
	t.mu.Lock()
	running := t.program != nil
	t.mu.Unlock()

	if running {
		t.send(scriptMsg{script: script})
		return
	}

	t.printf("%s %d bytes, %d bindings\n", headerStyle.Render("script"), len(script.Text), len(script.Bindings))

	for _, b := range script.Bindings {
		t.field(b.Name, b.Expr)
	}
}

func (t *TUI) field(label, value string) {
	t.printf("  %s %s\n", labelStyle.Render(label), valueStyle.Render(value))
}

func (t *TUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(t.output, format, args...)
}

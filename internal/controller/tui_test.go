package controller

import (
	"bytes"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	m "github.com/mouse-blink/modegen/internal/model"
)

type quitModel struct{}

func (m quitModel) Init() tea.Cmd { return tea.Quit }
func (m quitModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, tea.Quit
}
func (m quitModel) View() string { return "" }

func TestTUI_StartWithModel_WaitAndClose(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	if err := tui.startWithModel(quitModel{}, tea.WithInput(nil)); err != nil {
		t.Fatalf("startWithModel error = %v", err)
	}

	// starting twice is a no-op
	if err := tui.startWithModel(quitModel{}, tea.WithInput(nil)); err != nil {
		t.Fatalf("second startWithModel error = %v", err)
	}

	waitDone := make(chan struct{})
	go func() {
		tui.Wait()
		close(waitDone)
	}()

	select {
	case <-waitDone:
	case <-time.After(2 * time.Second):
		t.Fatal("Wait() timed out")
	}

	closeDone := make(chan struct{})
	go func() {
		tui.Close()
		close(closeDone)
	}()

	select {
	case <-closeDone:
	case <-time.After(2 * time.Second):
		t.Fatal("Close() timed out")
	}
}

func TestTUI_MultipleClose(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	tui.Close()
	tui.Close() // Close again should be safe

	tui2 := NewTUI(&buf)
	tui2.Wait() // Wait without start should be no-op

	tui3 := NewTUI(&buf)
	tui3.send(scriptMsg{}) // send without a program is a no-op
}

func TestTUI_StartReportModeRunsNoProgram(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	if err := tui.Start(WithReportMode()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	if tui.program != nil {
		t.Fatalf("report mode started a program")
	}

	tui.Wait()
	tui.Close()
}

func TestTUI_DisplayMethods_NoProgram(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	tui.DisplayArtifact(m.Artifact{Output: "mode.js", Size: 3, VariableName: "v", SHA256: "abcdef"})
	tui.DisplayManifest(m.Manifest{RunID: "run-9", Artifacts: []m.Artifact{{Config: "a.json", Output: "a.js", Size: 1}}})
	tui.DisplaySmokeReport(m.SmokeReport{VariableName: "v", Methods: []string{"getMode"}, Mode: "dark", Theme: "dark"})
	tui.DisplayConfigDump("dump\n")
	tui.DisplayScript(m.Script{Text: "abc", Bindings: []m.Binding{{Name: "a", Expr: "'light'"}}})

	output := buf.String()
	for _, want := range []string{"mode.js", "run-9", "a.json → a.js", "getMode", "dump", "3 bytes, 1 bindings", "'light'"} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}
}

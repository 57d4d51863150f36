package controller

import (
	"bytes"
	"fmt"
	"strings"

	m "github.com/mouse-blink/modegen/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(_ ...StartOption) error {
	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {

}

// Wait returns immediately; there is nothing to wait for.
func (s *SimpleUI) Wait() {

}

// DisplayArtifact prints one written file.
func (s *SimpleUI) DisplayArtifact(artifact m.Artifact) {
	s.printf("wrote %s (%d bytes, window['%s'], sha256 %s)\n",
		artifact.Output, artifact.Size, artifact.VariableName, shortHash(artifact.SHA256))
}

// DisplayManifest prints every artifact of a batch as a table.
func (s *SimpleUI) DisplayManifest(manifest m.Manifest) {
	var tableBuffer bytes.Buffer

	table := newTable(&tableBuffer, []string{"Config", "Output", "Variable", "Bytes", "SHA256"})
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT,
	})

	total := 0

	for _, a := range manifest.Artifacts {
		table.Append([]string{string(a.Config), string(a.Output), a.VariableName, fmt.Sprintf("%d", a.Size), shortHash(a.SHA256)})
		total += a.Size
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(manifest.Artifacts)), "", "", fmt.Sprintf("%d", total), "",
	})

	table.Render()
	s.printf("run %s\n\n%s", manifest.RunID, tableBuffer.String())
}

// DisplaySmokeReport prints what the sandbox run found.
func (s *SimpleUI) DisplaySmokeReport(report m.SmokeReport) {
	s.printf("window['%s'] OK\n", report.VariableName)
	s.printf("  methods: %s\n", strings.Join(report.Methods, ", "))
	s.printf("  mode:    %s\n", report.Mode)
	s.printf("  theme:   %s\n", report.Theme)
	s.printf("  cookie:  %s\n", orNone(report.Cookie))
	s.printf("  classes: %s\n", orNone(strings.Join(report.Classes, " ")))
}

// DisplayConfigDump prints a normalized config dump.
func (s *SimpleUI) DisplayConfigDump(dump string) {
	s.printf("%s\n", strings.TrimRight(dump, "\n"))
}

// DisplayScript prints the binding table and the fragment states.
func (s *SimpleUI) DisplayScript(script m.Script) {
	var bindings bytes.Buffer

	table := newTable(&bindings, []string{"Param", "Expression"})
	for _, b := range script.Bindings {
		table.Append([]string{b.Name, b.Expr})
	}

	table.Render()

	var fragments bytes.Buffer

	table = newTable(&fragments, []string{"Fragment", "State"})
	for _, f := range script.Fragments {
		table.Append([]string{f.Name, f.State})
	}

	table.Render()

	s.printf("%s\n%s\n%d bytes\n", bindings.String(), fragments.String(), len(script.Text))
}

func newTable(buf *bytes.Buffer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(buf)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	return table
}

func shortHash(sum string) string {
	if len(sum) > 12 {
		return sum[:12]
	}

	return sum
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}

	return s
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

package cmd

import (
	"github.com/mouse-blink/modegen/internal/domain"
	m "github.com/mouse-blink/modegen/internal/model"
	"github.com/spf13/cobra"
)

// inspectCmd represents the inspect command.
var inspectCmd = newInspectCmd()

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show the bindings and fragments of the generated script",
		Long:  "Show which literal each wrapper parameter is bound to and which optional fragments were included.",
		Args:  cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.Inspect(domain.InspectArgs{Config: m.Path(configFlag)})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

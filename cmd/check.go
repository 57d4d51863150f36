package cmd

import (
	"github.com/mouse-blink/modegen/internal/domain"
	m "github.com/mouse-blink/modegen/internal/model"
	"github.com/spf13/cobra"
)

// checkCmd represents the check command.
var checkCmd = newCheckCmd()
var checkDumpFlag bool

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run the generated script in a sandbox",
		Long: `Validate the config, generate the script and execute it in an embedded
JavaScript engine with a stubbed browser. Prints the API it installed and the
initial mode, theme, cookies and classes.`,
		Args: cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.Check(domain.CheckArgs{Config: m.Path(configFlag), Dump: checkDumpFlag})
		},
	}
	cmd.Flags().BoolVar(&checkDumpFlag, "dump", false, "print the normalized config")

	return cmd
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

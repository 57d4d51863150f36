package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/modegen/internal/domain"
	m "github.com/mouse-blink/modegen/internal/model"
)

// batchCmd represents the batch command.
var batchCmd = newBatchCmd()
var batchOutDirFlag string
var batchParallelFlag int
var batchManifestFlag string

func newBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch CONFIG...",
		Short: "Generate scripts for many configs",
		Long: `Generate one script per config file, concurrently. Each script is named
after its config: site.json becomes site.js inside --out-dir.

Nothing is written unless every config is valid.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configs := make([]m.Path, 0, len(args))
			for _, arg := range args {
				configs = append(configs, m.Path(arg))
			}

			return workflow.Batch(cmd.Context(), domain.BatchArgs{
				Configs:  configs,
				OutDir:   m.Path(batchOutDirFlag),
				Parallel: batchParallelFlag,
				Manifest: m.Path(batchManifestFlag),
			})
		},
	}
	cmd.Flags().StringVarP(&batchOutDirFlag, "out-dir", "d", ".", "directory receiving the scripts")
	cmd.Flags().IntVarP(&batchParallelFlag, "parallel", "p", 4, "number of configs generated concurrently")
	cmd.Flags().StringVarP(&batchManifestFlag, "manifest", "m", "", "write a JSON manifest of the run to this file")

	return cmd
}

func init() {
	rootCmd.AddCommand(batchCmd)
}

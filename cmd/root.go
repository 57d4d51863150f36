// Package cmd provides the root command and CLI setup for modegen.
package cmd

import (
	"log/slog"
	"os"

	"github.com/mouse-blink/modegen/internal/adapter"
	"github.com/mouse-blink/modegen/internal/controller"
	"github.com/mouse-blink/modegen/internal/domain"
	m "github.com/mouse-blink/modegen/internal/model"
	"github.com/spf13/cobra"
)

var configSource adapter.ConfigSource
var outputSink adapter.OutputSink
var manifestStore adapter.ManifestStore
var scriptRunner adapter.ScriptRunner
var logger *slog.Logger
var workflow domain.Workflow
var ui controller.UI

func init() {
	logger = newLogger(os.Stderr, logLevel)
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	configSource = adapter.NewLocalConfigSource()
	outputSink = adapter.NewLocalOutputSink()
	manifestStore = adapter.NewManifestStore(outputSink)
	scriptRunner = adapter.NewGojaScriptRunner()
	workflow = domain.NewWorkflow(
		configSource,
		outputSink,
		adapter.NewWriterSink(os.Stdout),
		manifestStore,
		scriptRunner,
		ui,
		logger,
	)
}

var configFlag string
var outputFlag string
var stdoutFlag bool
var defaultModeFlag modeValue

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "modegen",
		Short: "Generate a dark/light/system theme mode script",
		Long: `Modegen turns a declarative config into a small, self-contained script that
manages a page's color scheme mode (dark, light or system), persists the
choice and applies it to the markup.

Without --config the first of these files is used:
  - ./mode.config.json
  - ./mode.config.yaml
  - ./mode.config.yml`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.Generate(domain.GenerateArgs{
				Config:      m.Path(configFlag),
				Output:      m.Path(outputFlag),
				Stdout:      stdoutFlag,
				DefaultMode: m.Mode(defaultModeFlag),
			})
		},
	}

	defaultModeFlag = ""

	cmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "config file (JSON or YAML)")
	cmd.PersistentFlags().Var(&logLevelFlag{level: logLevel}, "log-level", "log level: debug, info, warn or error")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", string(domain.DefaultOutput), "output file")
	cmd.Flags().BoolVar(&stdoutFlag, "stdout", false, "print the script instead of writing a file")
	cmd.Flags().Var(&defaultModeFlag, "default-mode", "override the config's defaultMode: system, dark or light")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// Package domain validates mode configs, assembles the theme mode script and
// drives the generate, batch, check and inspect workflows.
package domain

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"maps"
	"path/filepath"
	"strings"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/modegen/internal/adapter"
	"github.com/mouse-blink/modegen/internal/controller"
	m "github.com/mouse-blink/modegen/internal/model"
)

const scriptExt = ".js"

// DefaultOutput is where Generate writes when no output path is given.
const DefaultOutput m.Path = "mode.js"

// GenerateArgs holds the arguments of a single generation.
type GenerateArgs struct {
	Config      m.Path
	Output      m.Path
	Stdout      bool
	DefaultMode m.Mode
}

// BatchArgs holds the arguments of a batch generation.
type BatchArgs struct {
	Configs  []m.Path
	OutDir   m.Path
	Parallel int
	Manifest m.Path
}

// CheckArgs holds the arguments of a sandbox check.
type CheckArgs struct {
	Config m.Path
	Dump   bool
}

// InspectArgs holds the arguments of an inspection.
type InspectArgs struct {
	Config m.Path
}

// Workflow defines the operations behind each CLI command.
type Workflow interface {
	Generate(args GenerateArgs) error
	Batch(ctx context.Context, args BatchArgs) error
	Check(args CheckArgs) error
	Inspect(args InspectArgs) error
	// ScriptFor generates the script of a config file without writing it.
	ScriptFor(config m.Path) (m.Script, error)
	// Build generates the script of an already decoded config document.
	Build(raw map[string]any) (m.Script, error)
}

type workflow struct {
	source    adapter.ConfigSource
	sink      adapter.OutputSink
	stdout    adapter.OutputSink
	manifests adapter.ManifestStore
	runner    adapter.ScriptRunner
	ui        controller.UI
	logger    *slog.Logger
	validator Validator
	assembler Assembler
	now       func() time.Time
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
// Scripts go to sink, or to stdout when GenerateArgs.Stdout is set.
func NewWorkflow(
	source adapter.ConfigSource,
	sink adapter.OutputSink,
	stdout adapter.OutputSink,
	manifests adapter.ManifestStore,
	runner adapter.ScriptRunner,
	ui controller.UI,
	logger *slog.Logger,
) Workflow {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &workflow{
		source:    source,
		sink:      sink,
		stdout:    stdout,
		manifests: manifests,
		runner:    runner,
		ui:        ui,
		logger:    logger,
		validator: NewValidator(),
		assembler: NewAssembler(),
		now:       time.Now,
	}
}

func (w *workflow) Build(raw map[string]any) (m.Script, error) {
	_, script, err := w.build(raw)
	return script, err
}

func (w *workflow) build(raw map[string]any) (m.Config, m.Script, error) {
	cfg, err := w.validator.Validate(raw)
	if err != nil {
		return m.Config{}, m.Script{}, err
	}

	return cfg, w.assembler.Assemble(cfg), nil
}

func (w *workflow) ScriptFor(config m.Path) (m.Script, error) {
	_, _, script, err := w.load(config, "")
	return script, err
}

// load finds, decodes, validates and assembles one config. A non-empty
// override replaces the document's defaultMode.
func (w *workflow) load(config m.Path, override m.Mode) (m.Path, m.Config, m.Script, error) {
	path, err := w.source.Find(config)
	if err != nil {
		return "", m.Config{}, m.Script{}, err
	}

	raw, err := w.source.Load(path)
	if err != nil {
		return "", m.Config{}, m.Script{}, err
	}

	if override != "" {
		raw = maps.Clone(raw)
		raw["defaultMode"] = string(override)
	}

	cfg, script, err := w.build(raw)
	if err != nil {
		return "", m.Config{}, m.Script{}, fmt.Errorf("%s: %w", path, err)
	}

	w.logger.Debug("assembled script",
		slog.String("config", string(path)),
		slog.String("variable", cfg.VariableName),
		slog.Int("bytes", len(script.Text)),
		slog.Int("bindings", len(script.Bindings)))

	return path, cfg, script, nil
}

// Generate writes the script of one config.
func (w *workflow) Generate(args GenerateArgs) error {
	path, cfg, script, err := w.load(args.Config, args.DefaultMode)
	if err != nil {
		return err
	}

	if args.Stdout {
		return w.stdout.Write(args.Output, []byte(script.Text))
	}

	output := args.Output
	if output == "" {
		output = DefaultOutput
	}

	if err := w.sink.Write(output, []byte(script.Text)); err != nil {
		return err
	}

	artifact := newArtifact(path, output, cfg, script)
	w.logger.Info("wrote script", slog.String("output", string(output)), slog.Int("bytes", artifact.Size))
	w.ui.DisplayArtifact(artifact)

	return nil
}

func newArtifact(config, output m.Path, cfg m.Config, script m.Script) m.Artifact {
	sum := sha256.Sum256([]byte(script.Text))

	return m.Artifact{
		Config:       config,
		Output:       output,
		VariableName: cfg.VariableName,
		Size:         len(script.Text),
		SHA256:       hex.EncodeToString(sum[:]),
		Bindings:     len(script.Bindings),
	}
}

// BatchOutput returns the output path for config inside dir: the config's
// base name with its extension replaced by .js.
func BatchOutput(dir, config m.Path) m.Path {
	base := filepath.Base(string(config))
	base = strings.TrimSuffix(base, filepath.Ext(base)) + scriptExt

	return m.Path(filepath.Join(string(dir), base))
}

type batchItem struct {
	config m.Path
	output m.Path
	cfg    m.Config
	script m.Script
}

// Batch generates every config concurrently. Nothing is written unless all
// configs are valid; the manifest is written only after every script.
func (w *workflow) Batch(ctx context.Context, args BatchArgs) error {
	if len(args.Configs) == 0 {
		return fmt.Errorf("batch: no config files given")
	}

	items := make([]batchItem, len(args.Configs))
	seen := make(map[m.Path]m.Path, len(args.Configs))

	for i, config := range args.Configs {
		output := BatchOutput(args.OutDir, config)
		if other, dup := seen[output]; dup {
			return fmt.Errorf("batch: %s and %s both write %s", other, config, output)
		}

		seen[output] = config
		items[i] = batchItem{config: config, output: output}
	}

	limit := max(args.Parallel, 1)
	w.logger.Info("batch started", slog.Int("configs", len(items)), slog.Int("parallel", limit))

	build, buildCtx := errgroup.WithContext(ctx)
	build.SetLimit(limit)

	for i := range items {
		item := &items[i]

		build.Go(func() error {
			if err := buildCtx.Err(); err != nil {
				return err
			}

			var err error

			item.config, item.cfg, item.script, err = w.load(item.config, "")

			return err
		})
	}

	if err := build.Wait(); err != nil {
		return err
	}

	write, writeCtx := errgroup.WithContext(ctx)
	write.SetLimit(limit)

	for i := range items {
		item := &items[i]

		write.Go(func() error {
			if err := writeCtx.Err(); err != nil {
				return err
			}

			return w.sink.Write(item.output, []byte(item.script.Text))
		})
	}

	if err := write.Wait(); err != nil {
		return err
	}

	manifest := m.Manifest{
		RunID:     uuid.NewString(),
		CreatedAt: w.now().UTC(),
		Artifacts: make([]m.Artifact, 0, len(items)),
	}

	for _, item := range items {
		manifest.Artifacts = append(manifest.Artifacts, newArtifact(item.config, item.output, item.cfg, item.script))
	}

	if args.Manifest != "" {
		if err := w.manifests.SaveManifest(args.Manifest, manifest); err != nil {
			return err
		}
	}

	w.logger.Info("batch finished", slog.String("run", manifest.RunID), slog.Int("artifacts", len(manifest.Artifacts)))
	w.ui.DisplayManifest(manifest)

	return nil
}

// Check runs the generated script in the sandbox.
func (w *workflow) Check(args CheckArgs) error {
	_, cfg, script, err := w.load(args.Config, "")
	if err != nil {
		return err
	}

	if args.Dump {
		w.ui.DisplayConfigDump(spew.Sdump(cfg))
	}

	report, err := w.runner.Smoke(script.Text, cfg.VariableName)
	if err != nil {
		return fmt.Errorf("sandbox: %w", err)
	}

	w.ui.DisplaySmokeReport(report)

	return nil
}

// Inspect shows the binding table and fragment states of a script.
func (w *workflow) Inspect(args InspectArgs) error {
	_, _, script, err := w.load(args.Config, "")
	if err != nil {
		return err
	}

	if err := w.ui.Start(controller.WithInspectMode()); err != nil {
		return err
	}
	defer w.ui.Close()

	w.ui.DisplayScript(script)
	w.ui.Wait()

	return nil
}

package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"flowline/internal/config"
	"flowline/internal/dataset"
	"flowline/internal/logging"
	"flowline/internal/outputs"
	"flowline/internal/selection"
)

// RunnerOptions configures a pipeline run.
type RunnerOptions struct {
	Config   *config.Config
	Steps    []Step
	Selector selection.Selector
	Confirm  outputs.ConfirmFunc
	Recorder outputs.ArtifactRecorder
	Version  string
	Logger   *slog.Logger
}

// Runner executes pipeline steps in sequence.
type Runner struct {
	cfg      *config.Config
	steps    []Step
	registry *outputs.Registry
	selector selection.Selector
	confirm  outputs.ConfirmFunc
	recorder outputs.ArtifactRecorder
	version  string
	logger   *slog.Logger
}

// NewRunner builds a Runner and registers every step's declared outputs.
// A duplicate declaration surfaces here, before any step executes.
func NewRunner(opts RunnerOptions) (*Runner, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	registry, err := BuildRegistry(opts.Steps)
	if err != nil {
		return nil, err
	}

	return &Runner{
		cfg:      opts.Config,
		steps:    opts.Steps,
		registry: registry,
		selector: opts.Selector,
		confirm:  opts.Confirm,
		recorder: opts.Recorder,
		version:  opts.Version,
		logger:   logger,
	}, nil
}

// BuildRegistry registers the declarations of every step into a fresh
// registry.
func BuildRegistry(steps []Step) (*outputs.Registry, error) {
	registry := outputs.NewRegistry()
	for _, step := range steps {
		for _, decl := range step.Outputs() {
			if err := registry.Register(step.ID(), decl); err != nil {
				return nil, fmt.Errorf("register outputs for step %s: %w", step.ID(), err)
			}
		}
	}
	return registry, nil
}

// Registry exposes the declarations registered for this run.
func (r *Runner) Registry() *outputs.Registry {
	return r.registry
}

// WarnUnknownPatterns logs every exact selection pattern that names no
// registered output. Misses are expected across config versions, so this
// never fails.
func (r *Runner) WarnUnknownPatterns() {
	for _, spec := range []selection.Spec{r.selector.Generate, r.selector.Skip} {
		for _, entry := range r.registry.UnknownPatterns(spec) {
			r.logger.Warn("selection pattern matches no registered output",
				logging.String("scope", entry.Scope),
				logging.String("pattern", entry.Pattern),
			)
		}
	}
}

// Run executes the configured steps in order against a fresh dataset
// context. A step error aborts the run; selection and overwrite skips do
// not.
func (r *Runner) Run(ctx context.Context) error {
	runID := uuid.NewString()
	data := dataset.NewContext(r.cfg)

	r.WarnUnknownPatterns()
	r.logger.Info("pipeline started",
		logging.String("run_id", runID),
		logging.Int("steps", len(r.steps)),
	)

	var total outputs.Stats
	started := time.Now()
	for _, step := range r.steps {
		stepLogger := r.logger.With(
			logging.String("step", step.ID()),
			logging.String("run_id", runID),
		)

		manager := outputs.NewManager(outputs.ManagerOptions{
			StepID:          step.ID(),
			StepDescription: step.Description(),
			Registry:        r.registry,
			Selector:        r.selector,
			OutputRoot:      r.cfg.Paths.OutputRoot,
			Datatype:        r.cfg.Dataset.Datatype,
			OverwriteMode:   r.cfg.OverwriteMode(),
			Confirm:         r.confirm,
			Profiling:       r.cfg.Outputs.Profiling,
			SidecarEnabled:  r.cfg.Outputs.SidecarAutoGenerate,
			Version:         r.version,
			RunID:           runID,
			Recorder:        r.recorder,
			Logger:          stepLogger,
		})

		stepLogger.Info("step started", logging.String("description", step.Description()))
		stepStart := time.Now()

		if err := step.Run(ctx, data, manager); err != nil {
			stepLogger.Error("step failed",
				logging.Error(err),
				logging.Duration("elapsed", time.Since(stepStart)),
			)
			return fmt.Errorf("step %s (%s): %w", step.ID(), step.Description(), err)
		}

		stats := manager.Stats()
		total.Written += stats.Written
		total.Skipped += stats.Skipped
		total.Failed += stats.Failed
		stepLogger.Info("step finished",
			logging.Duration("elapsed", time.Since(stepStart)),
			logging.Int("outputs_written", stats.Written),
			logging.Int("outputs_skipped", stats.Skipped),
		)
	}

	r.logger.Info("pipeline finished",
		logging.String("run_id", runID),
		logging.Duration("elapsed", time.Since(started)),
		logging.Int("outputs_written", total.Written),
		logging.Int("outputs_skipped", total.Skipped),
	)
	return nil
}

package outputs

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"flowline/internal/logging"
	"flowline/internal/selection"
)

// ArtifactRecord describes one written artifact for the derivatives
// ledger.
type ArtifactRecord struct {
	RunID     string
	StepID    string
	Name      string
	Path      string
	SizeBytes int64
	Duration  time.Duration
	CreatedAt time.Time
}

// ArtifactRecorder receives a record for every completed write. Recording
// failures are logged, never fatal for the save.
type ArtifactRecorder interface {
	RecordArtifact(rec ArtifactRecord) error
}

// SaveFunc serializes an object to the given path. Used by SaveObject for
// formats the manager has no built-in saver for.
type SaveFunc func(path string) error

// SaveResult reports the outcome of one save call. Written false with an
// empty error means the save was skipped on purpose (selection or
// overwrite policy); SkipReason says why.
type SaveResult struct {
	Path        string
	SidecarPath string
	Written     bool
	SkipReason  string
}

// Stats counts save outcomes across one step invocation.
type Stats struct {
	Written int
	Skipped int
	Failed  int
}

// ManagerOptions configures a per-step-invocation Manager.
type ManagerOptions struct {
	StepID          string
	StepDescription string
	Registry        *Registry
	Selector        selection.Selector
	OutputRoot      string
	Datatype        string
	OverwriteMode   OverwriteMode
	Confirm         ConfirmFunc
	Profiling       bool
	SidecarEnabled  bool
	Version         string
	RunID           string
	Recorder        ArtifactRecorder
	Logger          *slog.Logger
	// Now overrides the clock, for tests. Nil means time.Now.
	Now func() time.Time
}

// Manager is the per-step facade that saves outputs with consistent
// paths, selection gating, overwrite handling, and sidecar metadata.
type Manager struct {
	stepID          string
	stepDescription string
	registry        *Registry
	selector        selection.Selector
	outputRoot      string
	datatype        string
	arbiter         Arbiter
	profiling       bool
	sidecarEnabled  bool
	version         string
	runID           string
	recorder        ArtifactRecorder
	logger          *slog.Logger
	now             func() time.Time

	stats Stats
}

// NewManager builds a Manager for one step invocation.
func NewManager(opts ManagerOptions) *Manager {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	registry := opts.Registry
	if registry == nil {
		registry = NewRegistry()
	}
	return &Manager{
		stepID:          opts.StepID,
		stepDescription: opts.StepDescription,
		registry:        registry,
		selector:        opts.Selector,
		outputRoot:      opts.OutputRoot,
		datatype:        opts.Datatype,
		arbiter:         Arbiter{Mode: opts.OverwriteMode, Confirm: opts.Confirm},
		profiling:       opts.Profiling,
		sidecarEnabled:  opts.SidecarEnabled,
		version:         opts.Version,
		runID:           opts.RunID,
		recorder:        opts.Recorder,
		logger:          logger,
		now:             now,
	}
}

// ShouldGenerate answers the selection question for a declared output so
// steps can skip expensive computation before any save call. Names with
// no declaration are ad hoc and always run.
func (m *Manager) ShouldGenerate(name string) bool {
	decl, declared := m.registry.Lookup(m.stepID, name)
	if !declared {
		return true
	}
	return m.selector.ShouldGenerate(m.stepID, name, decl.EnabledByDefault)
}

// OutputPath previews the path a request would write to, without touching
// the filesystem.
func (m *Manager) OutputPath(req Request) string {
	return m.buildPath(req)
}

// Stats returns the save outcome counts accumulated so far.
func (m *Manager) Stats() Stats {
	return m.stats
}

// Save runs the full output flow for an arbitrary object: selection gate,
// path construction, overwrite decision, serialization via save, ledger
// record, and sidecar. All typed save methods funnel through it.
func (m *Manager) Save(req Request, save SaveFunc) (SaveResult, error) {
	path := m.buildPath(req)
	result := SaveResult{Path: path}

	if decl, declared := m.registry.Lookup(m.stepID, req.Name); declared {
		if !m.selector.ShouldGenerate(m.stepID, req.Name, decl.EnabledByDefault) {
			m.stats.Skipped++
			result.SkipReason = "not selected"
			m.logger.Debug("output not selected",
				logging.String("output", req.Name),
				logging.String("step", m.stepID),
			)
			return result, nil
		}
	}

	proceed, err := m.arbiter.ShouldWrite(path, req.SourceFile)
	if err != nil {
		if errors.Is(err, ErrSourceRequired) {
			// A per-save configuration problem: the output is skipped
			// with a logged reason and the step continues.
			m.stats.Skipped++
			result.SkipReason = err.Error()
			m.logger.Error("output skipped",
				logging.String("output", req.Name),
				logging.String("path", path),
				logging.String("reason", err.Error()),
			)
			return result, nil
		}
		m.stats.Failed++
		return result, err
	}
	if !proceed {
		m.stats.Skipped++
		result.SkipReason = fmt.Sprintf("target exists (overwrite_mode=%s)", m.arbiter.Mode)
		m.logger.Info("output skipped",
			logging.String("output", req.Name),
			logging.String("path", path),
			logging.String("overwrite_mode", string(m.arbiter.Mode)),
		)
		return result, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		m.stats.Failed++
		return result, fmt.Errorf("create output directory for %s: %w", path, err)
	}

	start := m.now()
	if err := save(path); err != nil {
		m.stats.Failed++
		return result, fmt.Errorf("write output %s: %w", path, err)
	}
	duration := m.now().Sub(start)

	var size int64
	if info, err := os.Stat(path); err == nil {
		size = info.Size()
	}

	if m.recorder != nil {
		rec := ArtifactRecord{
			RunID:     m.runID,
			StepID:    m.stepID,
			Name:      req.Name,
			Path:      path,
			SizeBytes: size,
			Duration:  duration,
			CreatedAt: m.now(),
		}
		if err := m.recorder.RecordArtifact(rec); err != nil {
			m.logger.Warn("record artifact", logging.Error(err))
		}
	}

	if m.sidecarEnabled {
		var perf *performanceBlock
		if m.profiling {
			perf = &performanceBlock{
				Duration:      fmt.Sprintf("%.3fs", duration.Seconds()),
				Timestamp:     m.now().Format(time.RFC3339),
				FileSizeBytes: size,
			}
		}
		sidecarPath, err := m.writeSidecar(path, perf, req.Metadata)
		if err != nil {
			m.stats.Failed++
			return result, err
		}
		result.SidecarPath = sidecarPath
	}

	m.stats.Written++
	result.Written = true
	m.logger.Info("saved output",
		logging.String("output", req.Name),
		logging.String("path", path),
		logging.Int64("size_bytes", size),
	)
	return result, nil
}

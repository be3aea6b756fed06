package outputs

import (
	"path/filepath"
	"strings"

	"flowline/internal/naming"
)

// Request describes one save call. Name is mandatory; everything else
// refines where and how the artifact lands.
type Request struct {
	// Name identifies the output. Declared names are gated by the
	// selection engine; ad hoc names always attempt to run.
	Name string
	// Suffix is an optional trailing token before the extension.
	Suffix string
	// Extension overrides the saver's default extension, dot included.
	Extension string
	// Format selects among a saver's encodings (e.g. "csv" vs "tsv").
	Format string

	// Subject, Session, Task, and Run switch the path builder into
	// structured mode when any of them is set.
	Subject string
	Session string
	Task    string
	Run     string
	// Datatype names the structured-mode datatype directory. Empty means
	// the manager's configured default.
	Datatype string

	// CustomDir overrides the computed directory, never the filename.
	CustomDir string
	// SourceFile feeds the ifnewer overwrite comparison.
	SourceFile string
	// Metadata is merged into the sidecar at top level. The Pipeline and
	// Performance keys are reserved and win on collision.
	Metadata map[string]any
}

func (r Request) structured() bool {
	return r.Subject != "" || r.Session != "" || r.Task != "" || r.Run != ""
}

// buildPath constructs the deterministic target path for a request. The
// output base name is always prefixed with the owning step's short ID so
// steps sharing an output name never collide.
func (m *Manager) buildPath(req Request) string {
	prefixed := req.Name
	if !strings.HasPrefix(prefixed, m.stepID) {
		prefixed = m.stepID + "_" + prefixed
	}

	baseDir := m.outputRoot
	if req.CustomDir != "" {
		baseDir = req.CustomDir
	}

	if req.structured() {
		datatype := req.Datatype
		if datatype == "" {
			datatype = m.datatype
		}
		entities := naming.Entities{
			Subject:     req.Subject,
			Session:     req.Session,
			Task:        req.Task,
			Run:         req.Run,
			Datatype:    datatype,
			Description: m.stepID + naming.PascalCase(req.Name),
			Suffix:      req.Suffix,
			Extension:   req.Extension,
		}
		if req.CustomDir != "" {
			return filepath.Join(req.CustomDir, entities.Filename())
		}
		return entities.Path(baseDir)
	}

	filename := prefixed
	if req.Suffix != "" {
		filename += "_" + req.Suffix
	}
	filename += req.Extension
	return filepath.Join(baseDir, filename)
}

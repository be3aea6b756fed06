package outputs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// sidecarSuffix is appended to the artifact path, keeping the original
// extension intact.
const sidecarSuffix = ".json"

// Reserved top-level sidecar keys. Custom metadata colliding with these is
// dropped in favor of the reserved block.
const (
	sidecarPipelineKey    = "Pipeline"
	sidecarPerformanceKey = "Performance"
)

// pipelineBlock is the provenance record attached to every sidecar.
type pipelineBlock struct {
	Version         string
	RunID           string `json:",omitempty"`
	Step            string
	StepDescription string
	OutputFile      string
	GeneratedAt     string
}

// performanceBlock is attached only when output profiling is enabled.
type performanceBlock struct {
	Duration      string
	Timestamp     string
	FileSizeBytes int64
}

// writeSidecar emits the companion metadata file for a written artifact
// and returns the sidecar path.
func (m *Manager) writeSidecar(outputPath string, perf *performanceBlock, custom map[string]any) (string, error) {
	record := make(map[string]any, len(custom)+2)
	for key, value := range custom {
		if key == sidecarPipelineKey || key == sidecarPerformanceKey {
			continue
		}
		record[key] = value
	}
	record[sidecarPipelineKey] = pipelineBlock{
		Version:         m.version,
		RunID:           m.runID,
		Step:            m.stepID,
		StepDescription: m.stepDescription,
		OutputFile:      filepath.Base(outputPath),
		GeneratedAt:     m.now().Format(time.RFC3339),
	}
	if perf != nil {
		record[sidecarPerformanceKey] = *perf
	}

	data, err := json.MarshalIndent(record, "", "    ")
	if err != nil {
		return "", fmt.Errorf("marshal sidecar for %s: %w", outputPath, err)
	}

	sidecarPath := outputPath + sidecarSuffix
	if err := os.WriteFile(sidecarPath, data, 0o644); err != nil {
		return "", fmt.Errorf("write sidecar %s: %w", sidecarPath, err)
	}
	return sidecarPath, nil
}

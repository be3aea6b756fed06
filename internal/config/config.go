package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"flowline/internal/outputs"
	"flowline/internal/selection"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	DataRoot        string `toml:"data_root"`
	DerivativesRoot string `toml:"derivatives_root"`
	OutputRoot      string `toml:"output_root"`
	LogDir          string `toml:"log_dir"`
}

// Outputs contains the output management knobs: overwrite policy,
// profiling, sidecar generation, and the generate/skip selection specs.
// The flat lists and the by-step tables are mutually exclusive.
type Outputs struct {
	OverwriteMode       string              `toml:"overwrite_mode"`
	Profiling           bool                `toml:"profiling"`
	SidecarAutoGenerate bool                `toml:"sidecar_auto_generate"`
	Generate            []string            `toml:"generate"`
	Skip                []string            `toml:"skip"`
	GenerateByStep      map[string][]string `toml:"generate_by_step"`
	SkipByStep          map[string][]string `toml:"skip_by_step"`
}

// Dataset contains the subject/session/task bookkeeping the structured
// path convention and the built-in steps draw from.
type Dataset struct {
	Subjects []string `toml:"subjects"`
	Sessions []string `toml:"sessions"`
	Tasks    []string `toml:"tasks"`
	Datatype string   `toml:"datatype"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for flowline.
type Config struct {
	Paths   Paths   `toml:"paths"`
	Outputs Outputs `toml:"outputs"`
	Dataset Dataset `toml:"dataset"`
	Logging Logging `toml:"logging"`
}

// DefaultConfigPath returns the default configuration file location.
func DefaultConfigPath() (string, error) {
	return ExpandPath("~/.config/flowline/config.toml")
}

// Load locates, parses, and validates a configuration file. Unknown keys
// are rejected rather than silently ignored. The returned config has all
// path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := ExpandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("flowline.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the directories a pipeline run writes into.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.DerivativesRoot, c.Paths.OutputRoot, c.Paths.LogDir} {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// OverwriteMode returns the validated overwrite policy.
func (c *Config) OverwriteMode() outputs.OverwriteMode {
	mode, err := outputs.ParseOverwriteMode(c.Outputs.OverwriteMode)
	if err != nil {
		return outputs.OverwriteNever
	}
	return mode
}

// GenerateSpec converts the configured generate selection into a spec.
// A by-step table takes the scoped form; a flat list (even an empty one)
// stays flat; neither present yields the absent spec.
func (c *Config) GenerateSpec() selection.Spec {
	return specFrom(c.Outputs.Generate, c.Outputs.GenerateByStep)
}

// SkipSpec converts the configured skip selection into a spec.
func (c *Config) SkipSpec() selection.Spec {
	return specFrom(c.Outputs.Skip, c.Outputs.SkipByStep)
}

func specFrom(flat []string, byStep map[string][]string) selection.Spec {
	if len(byStep) > 0 {
		return selection.Scoped(byStep)
	}
	if flat != nil {
		return selection.Flat(flat...)
	}
	return selection.Spec{}
}

// ExpandPath expands a leading ~ and resolves the path to absolute form.
func ExpandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// CreateSample writes a sample configuration file to the specified
// location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

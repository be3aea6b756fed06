package outputs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// OverwriteMode decides how an existing output file is treated. The mode
// is read from configuration once and stays constant for the run.
type OverwriteMode string

const (
	// OverwriteNever skips the write when the target already exists.
	OverwriteNever OverwriteMode = "never"
	// OverwriteAlways writes unconditionally.
	OverwriteAlways OverwriteMode = "always"
	// OverwriteAsk prompts the operator for existing targets.
	OverwriteAsk OverwriteMode = "ask"
	// OverwriteIfNewer writes when the source file is newer than the
	// target. It requires a source file on every save call.
	OverwriteIfNewer OverwriteMode = "ifnewer"
)

// ParseOverwriteMode validates a configured overwrite mode string.
func ParseOverwriteMode(value string) (OverwriteMode, error) {
	switch OverwriteMode(value) {
	case OverwriteNever, OverwriteAlways, OverwriteAsk, OverwriteIfNewer:
		return OverwriteMode(value), nil
	case "":
		return OverwriteNever, nil
	default:
		return "", fmt.Errorf("unknown overwrite mode %q (expected never, always, ask, or ifnewer)", value)
	}
}

// ConfirmFunc answers whether an existing path may be overwritten. It is
// injected so tests and non-interactive runs can supply a deterministic
// answer.
type ConfirmFunc func(path string) bool

// Arbiter decides whether a write to a target path proceeds. A false
// decision is an expected outcome, not an error: the caller skips the
// write and continues.
type Arbiter struct {
	Mode OverwriteMode
	// Confirm handles the ask mode. A nil Confirm is the non-interactive
	// fallback and answers no for existing targets.
	Confirm ConfirmFunc
}

// ShouldWrite reports whether writing to path may proceed. sourceFile is
// consulted only by the ifnewer mode and must name an existing file then;
// otherwise ErrSourceRequired is returned.
func (a Arbiter) ShouldWrite(path, sourceFile string) (bool, error) {
	targetInfo, err := os.Stat(path)
	exists := err == nil
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("stat target %s: %w", path, err)
	}

	switch a.Mode {
	case OverwriteAlways:
		return true, nil
	case OverwriteNever, "":
		return !exists, nil
	case OverwriteAsk:
		if !exists {
			return true, nil
		}
		if a.Confirm == nil {
			return false, nil
		}
		return a.Confirm(path), nil
	case OverwriteIfNewer:
		if sourceFile == "" {
			return false, ErrSourceRequired
		}
		sourceInfo, err := os.Stat(sourceFile)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return false, fmt.Errorf("%w: %s", ErrSourceRequired, sourceFile)
			}
			return false, fmt.Errorf("stat source %s: %w", sourceFile, err)
		}
		if !exists {
			return true, nil
		}
		return sourceInfo.ModTime().After(targetInfo.ModTime()), nil
	default:
		return false, fmt.Errorf("unknown overwrite mode %q", a.Mode)
	}
}

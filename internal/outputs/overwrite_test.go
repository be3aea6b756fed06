package outputs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeTestFile(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("content"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestArbiterNever(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "out.txt")
	arb := Arbiter{Mode: OverwriteNever}

	proceed, err := arb.ShouldWrite(target, "")
	if err != nil || !proceed {
		t.Fatalf("missing target should proceed: %v %v", proceed, err)
	}

	writeTestFile(t, target)
	proceed, err = arb.ShouldWrite(target, "")
	if err != nil {
		t.Fatal(err)
	}
	if proceed {
		t.Fatal("existing target must not be overwritten in never mode")
	}
}

func TestArbiterAlways(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "out.txt")
	writeTestFile(t, target)

	arb := Arbiter{Mode: OverwriteAlways}
	proceed, err := arb.ShouldWrite(target, "")
	if err != nil || !proceed {
		t.Fatalf("always mode must proceed: %v %v", proceed, err)
	}
}

func TestArbiterAsk(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "out.txt")

	asked := false
	arb := Arbiter{Mode: OverwriteAsk, Confirm: func(path string) bool {
		asked = true
		return true
	}}

	// Missing target never prompts.
	proceed, err := arb.ShouldWrite(target, "")
	if err != nil || !proceed {
		t.Fatalf("missing target should proceed: %v %v", proceed, err)
	}
	if asked {
		t.Fatal("prompted for a missing target")
	}

	writeTestFile(t, target)
	proceed, err = arb.ShouldWrite(target, "")
	if err != nil {
		t.Fatal(err)
	}
	if !asked || !proceed {
		t.Fatal("existing target should prompt and honor the answer")
	}

	// Non-interactive fallback answers no.
	arb.Confirm = nil
	proceed, err = arb.ShouldWrite(target, "")
	if err != nil {
		t.Fatal(err)
	}
	if proceed {
		t.Fatal("nil Confirm must fall back to the default no")
	}
}

func TestArbiterIfNewer(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "out.txt")
	source := filepath.Join(dir, "source.txt")
	writeTestFile(t, target)
	writeTestFile(t, source)

	arb := Arbiter{Mode: OverwriteIfNewer}

	old := time.Now().Add(-time.Hour)
	if err := os.Chtimes(source, old, old); err != nil {
		t.Fatal(err)
	}
	proceed, err := arb.ShouldWrite(target, source)
	if err != nil {
		t.Fatal(err)
	}
	if proceed {
		t.Fatal("older source must not overwrite the target")
	}

	newer := time.Now().Add(time.Hour)
	if err := os.Chtimes(source, newer, newer); err != nil {
		t.Fatal(err)
	}
	proceed, err = arb.ShouldWrite(target, source)
	if err != nil {
		t.Fatal(err)
	}
	if !proceed {
		t.Fatal("newer source must overwrite the target")
	}
}

func TestArbiterIfNewerRequiresSource(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "out.txt")
	arb := Arbiter{Mode: OverwriteIfNewer}

	if _, err := arb.ShouldWrite(target, ""); !errors.Is(err, ErrSourceRequired) {
		t.Fatalf("expected ErrSourceRequired without a source, got %v", err)
	}
	if _, err := arb.ShouldWrite(target, filepath.Join(dir, "missing.txt")); !errors.Is(err, ErrSourceRequired) {
		t.Fatalf("expected ErrSourceRequired for a missing source, got %v", err)
	}
}

func TestParseOverwriteMode(t *testing.T) {
	for _, valid := range []string{"never", "always", "ask", "ifnewer"} {
		if _, err := ParseOverwriteMode(valid); err != nil {
			t.Errorf("ParseOverwriteMode(%q): %v", valid, err)
		}
	}
	if mode, err := ParseOverwriteMode(""); err != nil || mode != OverwriteNever {
		t.Errorf("empty mode should default to never, got %q %v", mode, err)
	}
	if _, err := ParseOverwriteMode("sometimes"); err == nil {
		t.Error("expected error for unknown mode")
	}
}

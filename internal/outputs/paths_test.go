package outputs

import (
	"path/filepath"
	"testing"
)

func newPathManager(root string) *Manager {
	return NewManager(ManagerOptions{
		StepID:     "01",
		OutputRoot: root,
		Datatype:   "eeg",
	})
}

func TestOutputPathFlat(t *testing.T) {
	m := newPathManager("/derivatives")

	got := m.OutputPath(Request{Name: "summary", Suffix: "plot", Extension: ".png"})
	want := filepath.Join("/derivatives", "01_summary_plot.png")
	if got != want {
		t.Fatalf("OutputPath = %q, want %q", got, want)
	}
}

func TestOutputPathFlatNoSuffix(t *testing.T) {
	m := newPathManager("/derivatives")

	got := m.OutputPath(Request{Name: "summary", Extension: ".txt"})
	want := filepath.Join("/derivatives", "01_summary.txt")
	if got != want {
		t.Fatalf("OutputPath = %q, want %q", got, want)
	}
}

func TestOutputPathAlreadyPrefixed(t *testing.T) {
	m := newPathManager("/derivatives")

	got := m.OutputPath(Request{Name: "01_summary", Extension: ".txt"})
	want := filepath.Join("/derivatives", "01_summary.txt")
	if got != want {
		t.Fatalf("step prefix duplicated: %q", got)
	}
}

func TestOutputPathStructured(t *testing.T) {
	m := newPathManager("/derivatives")

	got := m.OutputPath(Request{
		Name:      "summary_plot",
		Suffix:    "plot",
		Extension: ".png",
		Subject:   "01",
		Session:   "02",
		Task:      "rest",
	})
	want := filepath.Join("/derivatives", "sub-01", "ses-02", "eeg",
		"sub-01_ses-02_task-rest_desc-01SummaryPlot_plot.png")
	if got != want {
		t.Fatalf("OutputPath = %q, want %q", got, want)
	}
}

func TestOutputPathStructuredDatatypeOverride(t *testing.T) {
	m := newPathManager("/derivatives")

	got := m.OutputPath(Request{
		Name:      "stats",
		Extension: ".json",
		Subject:   "01",
		Datatype:  "meg",
	})
	want := filepath.Join("/derivatives", "sub-01", "meg", "sub-01_desc-01Stats.json")
	if got != want {
		t.Fatalf("OutputPath = %q, want %q", got, want)
	}
}

func TestOutputPathCustomDir(t *testing.T) {
	m := newPathManager("/derivatives")

	got := m.OutputPath(Request{Name: "summary", Extension: ".txt", CustomDir: "/elsewhere"})
	want := filepath.Join("/elsewhere", "01_summary.txt")
	if got != want {
		t.Fatalf("flat custom dir: %q, want %q", got, want)
	}

	got = m.OutputPath(Request{
		Name:      "summary",
		Extension: ".txt",
		Subject:   "01",
		CustomDir: "/elsewhere",
	})
	want = filepath.Join("/elsewhere", "sub-01_desc-01Summary.txt")
	if got != want {
		t.Fatalf("structured custom dir overrides directory only: %q, want %q", got, want)
	}
}

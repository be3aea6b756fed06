package steps

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"math"

	"flowline/internal/dataset"
	"flowline/internal/naming"
	"flowline/internal/outputs"
)

// Analysis derives summary artifacts from the intake manifest: a value
// table per record, summary statistics, an overview figure, and optional
// debug outputs.
type Analysis struct {
	id string
}

// NewAnalysis constructs the analysis step.
func NewAnalysis() *Analysis {
	return &Analysis{id: naming.GuessShortID("01_analysis")}
}

func (s *Analysis) ID() string { return s.id }

func (s *Analysis) Description() string {
	return "Compute record statistics and summary artifacts"
}

func (s *Analysis) Outputs() []outputs.Declaration {
	return []outputs.Declaration{
		{Name: "raw_table", Description: "Per-record values", EnabledByDefault: true},
		{Name: "statistics", Description: "Statistical summary", EnabledByDefault: true},
		{Name: "summary_plot", Description: "Overview figure", EnabledByDefault: true},
		{Name: "signal_array", Description: "Synthesized signal samples", EnabledByDefault: false},
		{Name: "debug_info", Description: "Raw intermediate values for debugging", EnabledByDefault: false},
	}
}

func (s *Analysis) Run(ctx context.Context, data *dataset.Context, out *outputs.Manager) error {
	records := recordsFrom(data)
	values := recordValues(records)

	if out.ShouldGenerate("raw_table") {
		tbl := outputs.Table{Columns: []string{"subject", "session", "task", "value"}}
		for i, rec := range records {
			tbl.Rows = append(tbl.Rows, []string{
				rec.Subject, rec.Session, rec.Task,
				fmt.Sprintf("%.4f", values[i]),
			})
		}
		if _, err := out.SaveTable(outputs.Request{Name: "raw_table"}, tbl); err != nil {
			return err
		}
	}

	if out.ShouldGenerate("statistics") {
		if _, err := out.SaveJSON(outputs.Request{Name: "statistics"}, summarize(values)); err != nil {
			return err
		}
	}

	if out.ShouldGenerate("summary_plot") {
		if _, err := out.SaveFigure(outputs.Request{Name: "summary_plot"}, renderSummary(values)); err != nil {
			return err
		}
	}

	// The signal synthesis is the expensive part; the selection check
	// gates the computation itself, not just the save.
	if out.ShouldGenerate("signal_array") {
		if _, err := out.SaveArray(outputs.Request{Name: "signal_array"}, synthesizeSignal(len(records))); err != nil {
			return err
		}
	}

	if out.ShouldGenerate("debug_info") {
		debug := map[string]any{"RecordCount": len(records), "Values": values}
		if _, err := out.SaveJSON(outputs.Request{Name: "debug_info", Suffix: "debug"}, debug); err != nil {
			return err
		}
	}

	return nil
}

func recordsFrom(data *dataset.Context) []dataset.Record {
	if stored, ok := data.Get("records"); ok {
		if records, ok := stored.([]dataset.Record); ok {
			return records
		}
	}
	return data.Records()
}

// recordValues derives a deterministic value per record so repeated runs
// produce identical artifacts.
func recordValues(records []dataset.Record) []float64 {
	values := make([]float64, len(records))
	for i, rec := range records {
		var seed int
		for _, r := range rec.Subject + rec.Session + rec.Task {
			seed += int(r)
		}
		values[i] = math.Sin(float64(seed+i)) * 10
	}
	return values
}

func summarize(values []float64) map[string]float64 {
	if len(values) == 0 {
		return map[string]float64{"count": 0}
	}
	minimum, maximum := values[0], values[0]
	var sum float64
	for _, v := range values {
		sum += v
		minimum = math.Min(minimum, v)
		maximum = math.Max(maximum, v)
	}
	return map[string]float64{
		"count": float64(len(values)),
		"mean":  sum / float64(len(values)),
		"min":   minimum,
		"max":   maximum,
	}
}

// renderSummary draws a minimal bar chart of the values.
func renderSummary(values []float64) image.Image {
	const width, height = 256, 128
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.White)
		}
	}
	if len(values) == 0 {
		return img
	}

	barWidth := width / len(values)
	if barWidth < 1 {
		barWidth = 1
	}
	for i, v := range values {
		barHeight := int(math.Abs(v) / 10 * float64(height-8))
		for x := i * barWidth; x < (i+1)*barWidth && x < width; x++ {
			for y := height - 1; y >= height-1-barHeight && y >= 0; y-- {
				img.Set(x, y, color.RGBA{R: 60, G: 90, B: 160, A: 255})
			}
		}
	}
	return img
}

func synthesizeSignal(n int) []float64 {
	if n < 1 {
		n = 1
	}
	samples := make([]float64, 64*n)
	for i := range samples {
		samples[i] = math.Sin(2 * math.Pi * float64(i) / 64)
	}
	return samples
}

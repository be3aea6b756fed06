package steps

import (
	"context"
	"fmt"

	"flowline/internal/dataset"
	"flowline/internal/naming"
	"flowline/internal/outputs"
)

// Intake inventories the dataset and records a manifest of the
// subject/session/task combinations later steps will process.
type Intake struct {
	id string
}

// NewIntake constructs the intake step.
func NewIntake() *Intake {
	return &Intake{id: naming.GuessShortID("00_intake")}
}

func (s *Intake) ID() string { return s.id }

func (s *Intake) Description() string {
	return "Inventory the dataset and write the processing manifest"
}

func (s *Intake) Outputs() []outputs.Declaration {
	return []outputs.Declaration{
		{Name: "manifest", Description: "Processing manifest of dataset records", EnabledByDefault: true},
		{Name: "intake_report", Description: "Human-readable intake summary", EnabledByDefault: true},
	}
}

func (s *Intake) Run(ctx context.Context, data *dataset.Context, out *outputs.Manager) error {
	records := data.Records()
	data.Put("records", records)

	if out.ShouldGenerate("manifest") {
		manifest := map[string]any{
			"DataRoot": data.DataRoot,
			"Datatype": data.Datatype,
			"Records":  records,
		}
		if _, err := out.SaveJSON(outputs.Request{
			Name:     "manifest",
			Metadata: map[string]any{"RecordCount": len(records)},
		}, manifest); err != nil {
			return err
		}
	}

	if out.ShouldGenerate("intake_report") {
		report := fmt.Sprintf(
			"dataset intake\n\nsubjects: %d\nsessions: %d\ntasks: %d\nrecords: %d\n",
			len(data.Subjects), len(data.Sessions), len(data.Tasks), len(records),
		)
		if _, err := out.SaveText(outputs.Request{Name: "intake_report", Suffix: "report"}, report); err != nil {
			return err
		}
	}

	return nil
}

// Package pipeline orders and runs discrete processing steps against the
// shared dataset context, wiring each step invocation to its own output
// manager.
package pipeline

import (
	"context"
	"fmt"
	"strings"

	"flowline/internal/dataset"
	"flowline/internal/outputs"
)

// Step is one unit of pipeline processing.
type Step interface {
	// ID is the short order-prefix identifier, e.g. "00".
	ID() string
	// Description is the human-readable step purpose.
	Description() string
	// Outputs lists the step's declared optional outputs.
	Outputs() []outputs.Declaration
	// Run executes the step. Saving goes through the provided output
	// manager; data for later steps lands in the dataset context.
	Run(ctx context.Context, data *dataset.Context, out *outputs.Manager) error
}

// Filter selects steps whose ID starts with one of the given
// identifiers. An identifier matching nothing or more than one step is an
// error. No identifiers selects every step.
func Filter(steps []Step, identifiers []string) ([]Step, error) {
	if len(identifiers) == 0 {
		return steps, nil
	}

	var selected []Step
	for _, ident := range identifiers {
		var matches []Step
		for _, step := range steps {
			if strings.HasPrefix(step.ID(), ident) {
				matches = append(matches, step)
			}
		}
		switch len(matches) {
		case 0:
			return nil, fmt.Errorf("step %q not found", ident)
		case 1:
			selected = append(selected, matches[0])
		default:
			return nil, fmt.Errorf("step %q is ambiguous", ident)
		}
	}
	return selected, nil
}

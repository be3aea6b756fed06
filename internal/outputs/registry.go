package outputs

import "fmt"

// Declaration describes one named, optional output a step may produce.
// Declarations are immutable once registered.
type Declaration struct {
	// Name is unique within the owning step; the same name may appear
	// under different steps.
	Name string
	// Description is the human-readable purpose shown in listings.
	Description string
	// EnabledByDefault decides the output's fate when no generate spec
	// is supplied for the run.
	EnabledByDefault bool
	// Group is reserved for future bundling of related outputs. It has
	// no selection semantics today.
	Group string
}

// Registry is the table of output declarations, populated once during
// startup and read-only afterwards. It is not safe for concurrent
// mutation, which the single initialization phase never needs.
type Registry struct {
	stepOrder []string
	byStep    map[string][]Declaration
}

// NewRegistry returns an empty declaration registry.
func NewRegistry() *Registry {
	return &Registry{byStep: make(map[string][]Declaration)}
}

// Register adds a declaration under the owning step. Registering the same
// name twice for one step returns ErrDuplicateOutput.
func (r *Registry) Register(stepID string, decl Declaration) error {
	for _, existing := range r.byStep[stepID] {
		if existing.Name == decl.Name {
			return fmt.Errorf("%w: %q in step %s", ErrDuplicateOutput, decl.Name, stepID)
		}
	}
	if _, seen := r.byStep[stepID]; !seen {
		r.stepOrder = append(r.stepOrder, stepID)
	}
	r.byStep[stepID] = append(r.byStep[stepID], decl)
	return nil
}

// DeclarationsFor returns the step's declarations in registration order.
func (r *Registry) DeclarationsFor(stepID string) []Declaration {
	decls := r.byStep[stepID]
	cp := make([]Declaration, len(decls))
	copy(cp, decls)
	return cp
}

// Lookup finds a declaration by owning step and name.
func (r *Registry) Lookup(stepID, name string) (Declaration, bool) {
	for _, decl := range r.byStep[stepID] {
		if decl.Name == name {
			return decl, true
		}
	}
	return Declaration{}, false
}

// StepIDs returns the step IDs that registered declarations, in first
// registration order.
func (r *Registry) StepIDs() []string {
	cp := make([]string, len(r.stepOrder))
	copy(cp, r.stepOrder)
	return cp
}

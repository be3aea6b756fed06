package outputs

import "flowline/internal/selection"

// UnknownPatterns returns the entries of a selection spec that name a
// specific output (no wildcard) matching nothing registered in their
// scope. Unknown patterns are a warning, not an error: pattern lists are
// allowed to outlive the outputs they once named.
func (r *Registry) UnknownPatterns(spec selection.Spec) []selection.Entry {
	var unknown []selection.Entry
	for _, entry := range spec.Entries() {
		if entry.Wildcard() {
			continue
		}
		if !r.nameKnown(entry.Scope, entry.Pattern) {
			unknown = append(unknown, entry)
		}
	}
	return unknown
}

func (r *Registry) nameKnown(scope, name string) bool {
	if scope != selection.WildcardScope {
		_, ok := r.Lookup(scope, name)
		return ok
	}
	for _, stepID := range r.stepOrder {
		if _, ok := r.Lookup(stepID, name); ok {
			return true
		}
	}
	return false
}

package selection

// WildcardScope is the scope key that applies to every step.
const WildcardScope = "*"

type specKind int

const (
	specAbsent specKind = iota
	specFlat
	specScoped
)

// Spec is a generate or skip specification: either absent (the zero value),
// a flat ordered pattern list applying to every step, or a mapping from
// step scope key to an ordered pattern list. An empty-but-present spec is
// meaningful: it matches nothing, which is not the same as being absent.
type Spec struct {
	kind   specKind
	flat   []string
	scoped map[string][]string
}

// Flat builds a spec from an ordered pattern list applying to all steps.
func Flat(patterns ...string) Spec {
	cp := make([]string, len(patterns))
	copy(cp, patterns)
	return Spec{kind: specFlat, flat: cp}
}

// Scoped builds a spec keyed by step scope. Keys are exact step IDs or
// WildcardScope.
func Scoped(byScope map[string][]string) Spec {
	cp := make(map[string][]string, len(byScope))
	for scope, patterns := range byScope {
		list := make([]string, len(patterns))
		copy(list, patterns)
		cp[scope] = list
	}
	return Spec{kind: specScoped, scoped: cp}
}

// Present reports whether the spec was supplied at all. An empty flat or
// scoped spec is present; only the zero value is absent.
func (s Spec) Present() bool {
	return s.kind != specAbsent
}

// patternsFor resolves the applicable pattern list for a step: for a
// scoped spec the exact step key first, then the wildcard key; for a flat
// spec the list as-is.
func (s Spec) patternsFor(stepID string) []string {
	switch s.kind {
	case specFlat:
		return s.flat
	case specScoped:
		var patterns []string
		patterns = append(patterns, s.scoped[stepID]...)
		if stepID != WildcardScope {
			patterns = append(patterns, s.scoped[WildcardScope]...)
		}
		return patterns
	default:
		return nil
	}
}

// Entries returns every pattern with its scope key, for diagnostics. Flat
// patterns are reported under the wildcard scope.
func (s Spec) Entries() []Entry {
	switch s.kind {
	case specFlat:
		entries := make([]Entry, 0, len(s.flat))
		for _, p := range s.flat {
			entries = append(entries, Entry{Scope: WildcardScope, Pattern: p})
		}
		return entries
	case specScoped:
		var entries []Entry
		for scope, patterns := range s.scoped {
			for _, p := range patterns {
				entries = append(entries, Entry{Scope: scope, Pattern: p})
			}
		}
		return entries
	default:
		return nil
	}
}

// Entry is one pattern of a spec together with the scope it applies to.
type Entry struct {
	Scope   string
	Pattern string
}

// Wildcard reports whether the entry's pattern contains a wildcard.
func (e Entry) Wildcard() bool {
	return hasWildcard(e.Pattern)
}

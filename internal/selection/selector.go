package selection

// Selector combines a generate spec and a skip spec into per-output
// decisions. The zero value selects every output enabled by default.
type Selector struct {
	Generate Spec
	Skip     Spec
}

// ShouldGenerate resolves whether the named output of the given step runs.
//
// Precedence, in order: a matching skip pattern always wins; with a
// generate spec supplied, a matching generate pattern enables the output
// and a miss disables it (explicit selection is exclusive); with no
// generate spec at all, the declaration default decides.
func (s Selector) ShouldGenerate(stepID, name string, enabledByDefault bool) bool {
	for _, pattern := range s.Skip.patternsFor(stepID) {
		if Match(name, pattern) {
			return false
		}
	}

	if s.Generate.Present() {
		for _, pattern := range s.Generate.patternsFor(stepID) {
			if Match(name, pattern) {
				return true
			}
		}
		return false
	}

	return enabledByDefault
}

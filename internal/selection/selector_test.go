package selection

import "testing"

func TestShouldGenerateDefaultFallback(t *testing.T) {
	var sel Selector

	if !sel.ShouldGenerate("00", "summary_plot", true) {
		t.Error("default-enabled output should generate with no specs")
	}
	if sel.ShouldGenerate("00", "debug_info", false) {
		t.Error("default-disabled output should not generate with no specs")
	}
}

func TestShouldGenerateSkipWins(t *testing.T) {
	sel := Selector{
		Generate: Flat("*"),
		Skip:     Flat("debug_*"),
	}

	if sel.ShouldGenerate("00", "debug_info", false) {
		t.Error("skip pattern must win over a matching generate wildcard")
	}
	if !sel.ShouldGenerate("00", "summary_plot", false) {
		t.Error("non-skipped output should generate via the wildcard")
	}
}

func TestShouldGenerateExplicitSelectionIsExclusive(t *testing.T) {
	sel := Selector{Generate: Flat("summary_plot")}

	if !sel.ShouldGenerate("00", "summary_plot", false) {
		t.Error("named output should generate")
	}
	// raw_table is enabled by default but unnamed, so it is suppressed.
	if sel.ShouldGenerate("00", "raw_table", true) {
		t.Error("unnamed output must be suppressed by an explicit generate spec")
	}
}

func TestShouldGenerateEmptyPresentSpecMatchesNothing(t *testing.T) {
	sel := Selector{Generate: Flat()}

	if sel.ShouldGenerate("00", "summary_plot", true) {
		t.Error("an empty-but-present generate spec must suppress defaults")
	}
}

func TestShouldGenerateScopedSpecs(t *testing.T) {
	sel := Selector{
		Generate: Scoped(map[string][]string{
			"00": {"*plot*"},
		}),
	}

	if !sel.ShouldGenerate("00", "summary_plot", true) {
		t.Error("scoped pattern should match in its own step")
	}
	if sel.ShouldGenerate("00", "raw_table", true) {
		t.Error("unmatched output in a scoped step must be suppressed")
	}
	// A different step has no applicable patterns; the spec is still
	// supplied, so its outputs are suppressed too.
	if sel.ShouldGenerate("01", "summary_plot", true) {
		t.Error("step without applicable generate patterns must resolve false")
	}
}

func TestShouldGenerateWildcardScopeAugmentsExactScope(t *testing.T) {
	sel := Selector{
		Generate: Scoped(map[string][]string{
			"00":          {"raw_table"},
			WildcardScope: {"summary_plot"},
		}),
	}

	// The wildcard list is consulted in addition to the exact-step list.
	if !sel.ShouldGenerate("00", "raw_table", false) {
		t.Error("exact-step pattern should match")
	}
	if !sel.ShouldGenerate("00", "summary_plot", false) {
		t.Error("wildcard-scope pattern should still apply to step 00")
	}
	if !sel.ShouldGenerate("01", "summary_plot", false) {
		t.Error("wildcard-scope pattern should apply to step 01")
	}
	if sel.ShouldGenerate("01", "raw_table", false) {
		t.Error("exact-step pattern must not leak into other steps")
	}
}

func TestShouldGenerateConflictingScopeKeys(t *testing.T) {
	// Generate keyed by step, skip keyed only by the wildcard scope.
	sel := Selector{
		Generate: Scoped(map[string][]string{"00": {"*"}}),
		Skip:     Scoped(map[string][]string{WildcardScope: {"debug_*"}}),
	}

	if sel.ShouldGenerate("00", "debug_info", true) {
		t.Error("wildcard-scoped skip must apply inside step 00")
	}
	if !sel.ShouldGenerate("00", "summary_plot", false) {
		t.Error("step-scoped generate wildcard should enable other outputs")
	}
}

func TestShouldGenerateScopedSkipDoesNotLeak(t *testing.T) {
	sel := Selector{
		Skip: Scoped(map[string][]string{"00": {"summary_plot"}}),
	}

	if sel.ShouldGenerate("00", "summary_plot", true) {
		t.Error("skip should apply in its own step")
	}
	if !sel.ShouldGenerate("01", "summary_plot", true) {
		t.Error("skip scoped to step 00 must not affect step 01")
	}
}

package selection

import "testing"

func TestMatch(t *testing.T) {
	cases := []struct {
		name    string
		pattern string
		want    bool
	}{
		{"summary_plot", "summary_plot", true},
		{"summary_plot", "summary", false},
		{"summary", "summary_plot", false},
		{"anything", "*", true},
		{"", "*", true},
		{"summary_plot", "*plot*", true},
		{"summary_plot", "*plot", true},
		{"summary_plot", "plot*", false},
		{"summary_plot", "summary*", true},
		{"debug_info", "debug_*", true},
		{"debug", "debug_*", false},
		{"raw_table", "*_table", true},
		{"raw_table", "raw*table", true},
		{"raw_table", "raw*tables", false},
		{"Summary_Plot", "summary*", false},
		{"abc", "a*b*c", true},
		{"axxbxxc", "a*b*c", true},
		{"acb", "a*b*c", false},
		{"aa", "a*a", true},
		{"a", "a*a", false},
		{"", "", true},
		{"x", "", false},
	}

	for _, tc := range cases {
		if got := Match(tc.name, tc.pattern); got != tc.want {
			t.Errorf("Match(%q, %q) = %v, want %v", tc.name, tc.pattern, got, tc.want)
		}
	}
}

func TestMatchExactWithoutWildcard(t *testing.T) {
	// Patterns without '*' must behave as pure equality, never substrings.
	if Match("plot_summary", "plot") {
		t.Fatal("substring matched without a wildcard")
	}
	if !Match("plot", "plot") {
		t.Fatal("exact name did not match itself")
	}
}

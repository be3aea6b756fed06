package selection

import (
	"reflect"
	"testing"
)

func TestParseListFlat(t *testing.T) {
	spec := ParseList("plot, stats")
	if !spec.Present() {
		t.Fatal("parsed spec should be present")
	}
	want := []string{"plot", "stats"}
	if got := spec.patternsFor("00"); !reflect.DeepEqual(got, want) {
		t.Fatalf("patternsFor = %v, want %v", got, want)
	}
}

func TestParseListScoped(t *testing.T) {
	spec := ParseList("01:plot,01:stats,02:*")

	if got, want := spec.patternsFor("01"), []string{"plot", "stats"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("step 01 patterns = %v, want %v", got, want)
	}
	if got, want := spec.patternsFor("02"), []string{"*"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("step 02 patterns = %v, want %v", got, want)
	}
	if got := spec.patternsFor("03"); len(got) != 0 {
		t.Fatalf("step 03 should have no patterns, got %v", got)
	}
}

func TestParseListMixedScopeFallsToWildcard(t *testing.T) {
	spec := ParseList("01:plot,stats")

	// The unscoped entry lands under the wildcard scope, so every step
	// sees it; step 01 sees its own pattern first.
	if got, want := spec.patternsFor("01"), []string{"plot", "stats"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("step 01 patterns = %v, want %v", got, want)
	}
	if got, want := spec.patternsFor("02"), []string{"stats"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("step 02 patterns = %v, want %v", got, want)
	}
}

func TestParseListBlank(t *testing.T) {
	if ParseList("").Present() {
		t.Error("blank value should parse to an absent spec")
	}
	if ParseList("  ").Present() {
		t.Error("whitespace value should parse to an absent spec")
	}
}

func TestSpecEntries(t *testing.T) {
	entries := Flat("plot", "debug_*").Entries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Scope != WildcardScope || entries[0].Pattern != "plot" {
		t.Fatalf("unexpected first entry: %+v", entries[0])
	}
	if entries[0].Wildcard() {
		t.Error("plain pattern reported as wildcard")
	}
	if !entries[1].Wildcard() {
		t.Error("debug_* not reported as wildcard")
	}
}

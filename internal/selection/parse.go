package selection

import "strings"

// ParseList parses a comma-separated CLI pattern list into a Spec.
//
// Each entry is either a bare pattern or "step:pattern". When any entry
// carries a step scope the whole list becomes a scoped spec; unscoped
// entries then fall under the wildcard scope. A blank value yields an
// absent spec.
//
//	ParseList("plot,stats")        -> Flat("plot", "stats")
//	ParseList("01:plot,02:*")      -> Scoped{"01": [plot], "02": [*]}
//	ParseList("01:plot,stats")     -> Scoped{"01": [plot], "*": [stats]}
func ParseList(value string) Spec {
	if strings.TrimSpace(value) == "" {
		return Spec{}
	}

	entries := strings.Split(value, ",")
	patterns := make([]string, 0, len(entries))
	scoped := false
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if strings.Contains(entry, ":") {
			scoped = true
		}
		patterns = append(patterns, entry)
	}

	if !scoped {
		return Flat(patterns...)
	}

	byScope := make(map[string][]string)
	for _, entry := range patterns {
		scope := WildcardScope
		pattern := entry
		if idx := strings.Index(entry, ":"); idx >= 0 {
			scope = strings.TrimSpace(entry[:idx])
			pattern = strings.TrimSpace(entry[idx+1:])
		}
		byScope[scope] = append(byScope[scope], pattern)
	}
	return Scoped(byScope)
}

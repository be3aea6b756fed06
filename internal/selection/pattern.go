package selection

import "strings"

// Match reports whether name matches pattern. The only metacharacter is
// '*', which matches any run of zero or more characters. A pattern without
// a wildcard matches on exact equality only; matching is case-sensitive
// and anchored to the full name.
func Match(name, pattern string) bool {
	if pattern == "*" {
		return true
	}
	if !strings.Contains(pattern, "*") {
		return name == pattern
	}

	parts := strings.Split(pattern, "*")

	if !strings.HasPrefix(name, parts[0]) {
		return false
	}
	rest := name[len(parts[0]):]

	last := parts[len(parts)-1]
	for _, part := range parts[1 : len(parts)-1] {
		if part == "" {
			continue
		}
		idx := strings.Index(rest, part)
		if idx < 0 {
			return false
		}
		rest = rest[idx+len(part):]
	}

	return strings.HasSuffix(rest, last)
}

// hasWildcard reports whether pattern contains the '*' metacharacter.
func hasWildcard(pattern string) bool {
	return strings.Contains(pattern, "*")
}

package taper

import "strings"

// Built-in filter interceptors. Matching is case-sensitive substring
// containment against the configured token set.

// AllowTags returns a whitelist filter on the record tag: records whose
// tag contains none of the tokens are rejected.
func AllowTags(tokens ...string) FilterFunc {
	return func(r Record) bool {
		return !containsAny(r.Tag, tokens)
	}
}

// DenyTags returns a blacklist filter on the record tag: records whose
// tag contains any of the tokens are rejected.
func DenyTags(tokens ...string) FilterFunc {
	return func(r Record) bool {
		return containsAny(r.Tag, tokens)
	}
}

// AllowMessages returns a whitelist filter on the record message: records
// whose message contains none of the tokens are rejected.
func AllowMessages(tokens ...string) FilterFunc {
	return func(r Record) bool {
		return !containsAny(r.Message, tokens)
	}
}

// DenyMessages returns a blacklist filter on the record message: records
// whose message contains any of the tokens are rejected.
func DenyMessages(tokens ...string) FilterFunc {
	return func(r Record) bool {
		return containsAny(r.Message, tokens)
	}
}

func containsAny(s string, tokens []string) bool {
	for _, tok := range tokens {
		if strings.Contains(s, tok) {
			return true
		}
	}
	return false
}

package ratelimit

import (
	"strings"
)

// MatchRule returns the rule for method and path, or nil when none applies.
// Exact paths win over "/"-suffixed prefix rules.
func MatchRule(path string, method string, rules []Rule) *Rule {
	for i := range rules {
		if rules[i].Path == path && rules[i].Method == method {
			return &rules[i]
		}
	}

	for i := range rules {
		r := &rules[i]
		if r.Method == method && strings.HasSuffix(r.Path, "/") && strings.HasPrefix(path, r.Path) {
			return r
		}
	}

	return nil
}

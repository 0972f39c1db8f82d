package manifest

import (
	"path"

	"github.com/bmatcuk/doublestar/v4"
)

// Kind is a category of excluded template entries.
type Kind string

const (
	KindCache    Kind = "dependency cache"
	KindSecrets  Kind = "secrets file"
	KindLockfile Kind = "lockfile"
	KindVCS      Kind = "vcs metadata"
)

// Rule excludes template entries matching Pattern. Pattern is a doublestar glob
// matched against a normalized slash-separated relative path.
type Rule struct {
	Kind    Kind
	Pattern string
}

// Match returns true if relPath matches the rule pattern.
func (rule Rule) Match(relPath string) bool {
	matched, err := doublestar.Match(rule.Pattern, relPath)
	return err == nil && matched
}

// Rules is a set of exclusion rules.
type Rules []Rule

// DefaultRules are applied to every template.
var DefaultRules = Rules{
	{KindCache, "**/node_modules"},
	{KindCache, "**/.next"},
	{KindCache, "**/.turbo"},

	{KindSecrets, "**/.env"},
	{KindSecrets, "**/.env.local"},
	{KindSecrets, "**/.env.*.local"},

	{KindLockfile, "**/package-lock.json"},
	{KindLockfile, "**/npm-shrinkwrap.json"},
	{KindLockfile, "**/pnpm-lock.yaml"},
	{KindLockfile, "**/yarn.lock"},
	{KindLockfile, "**/bun.lockb"},
	{KindLockfile, "**/bun.lock"},

	{KindVCS, "**/.git"},
}

// Excludes returns the first rule matching relPath or any of its parent directories.
func (rules Rules) Excludes(relPath string) (Rule, bool) {
	for current := relPath; current != "." && current != "/" && current != ""; {
		for _, rule := range rules {
			if rule.Match(current) {
				return rule, true
			}
		}
		current = path.Dir(current)
	}
	return Rule{}, false
}

// Validate checks that all rule patterns are well-formed.
func (rules Rules) Validate() error {
	for _, rule := range rules {
		if !doublestar.ValidatePattern(rule.Pattern) {
			return &InvalidRuleError{Rule: rule}
		}
	}
	return nil
}

// InvalidRuleError is returned for malformed rule patterns.
type InvalidRuleError struct {
	Rule Rule
}

// Error returns error message.
func (e *InvalidRuleError) Error() string {
	return "invalid " + string(e.Rule.Kind) + " pattern: " + e.Rule.Pattern
}

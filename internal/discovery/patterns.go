package discovery

import (
	"path/filepath"
	"regexp"
	"strings"
)

// skipFileRule tags one class of file that is never a component, with the
// reason kept alongside so the table is auditable.
type skipFileRule struct {
	pattern *regexp.Regexp
	reason  string
}

// skipFileRules matches file basenames that look like components but are
// tooling: stories, tests, type declarations, barrels, mocks, configs.
var skipFileRules = []skipFileRule{
	{regexp.MustCompile(`\.stories\.[jt]sx?$`), "storybook file"},
	{regexp.MustCompile(`\.(test|spec)\.[jt]sx?$`), "test file"},
	{regexp.MustCompile(`\.d\.ts$`), "type declarations"},
	{regexp.MustCompile(`^index\.[jt]sx?$`), "barrel file"},
	{regexp.MustCompile(`\.(mock|mocks)\.[jt]sx?$`), "mock file"},
	{regexp.MustCompile(`\.config\.[jt]s$`), "config file"},
	{regexp.MustCompile(`^setup`), "setup file"},
}

// skipFile reports whether a basename matches a skip rule.
func skipFile(base string) (string, bool) {
	lower := strings.ToLower(base)
	for _, rule := range skipFileRules {
		if rule.pattern.MatchString(lower) {
			return rule.reason, true
		}
	}
	return "", false
}

// skipNameSuffixes are component-name endings that mark internal tooling
// rather than renderable components.
var skipNameSuffixes = []string{"Story", "Stories", "Example", "Demo", "Fixture"}

// internalNamePrefix marks project-internal helper components.
const internalNamePrefix = "Self"

// skipSymbolName reports whether an extracted name is internal tooling.
func skipSymbolName(name string) bool {
	if strings.HasPrefix(name, internalNamePrefix) {
		return true
	}
	for _, suffix := range skipNameSuffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}

// storyMetaPattern detects story/export-meta file content masquerading as
// a component module.
var storyMetaPattern = regexp.MustCompile(`export\s+default\s+\{[^}]*(title|component)\s*:`)

// looksLikeStoryContent reports whether file content is a story meta file.
func looksLikeStoryContent(content string) bool {
	return storyMetaPattern.MatchString(content)
}

// declPatterns extract a component name from source content, tried in
// order: exported function, exported const, exported class. All require a
// capitalized identifier.
var declPatterns = []*regexp.Regexp{
	regexp.MustCompile(`export\s+(?:default\s+)?function\s+([A-Z][A-Za-z0-9]*)`),
	regexp.MustCompile(`export\s+const\s+([A-Z][A-Za-z0-9]*)\s*[:=]`),
	regexp.MustCompile(`export\s+(?:default\s+)?class\s+([A-Z][A-Za-z0-9]*)`),
}

// extractDeclaredName pulls the first exported capitalized declaration out
// of file content, falling back to "" when none exists.
func extractDeclaredName(content string) string {
	for _, p := range declPatterns {
		if m := p.FindStringSubmatch(content); m != nil {
			return m[1]
		}
	}
	return ""
}

// basenameSymbol capitalizes a file basename (sans extension) as the
// fallback symbol name.
func basenameSymbol(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" {
		return ""
	}
	return strings.ToUpper(base[:1]) + base[1:]
}

// matchesAnyPattern applies glob-like patterns against a basename. An
// empty pattern list matches everything.
func matchesAnyPattern(base string, patterns []string) bool {
	if len(patterns) == 0 {
		return true
	}
	for _, p := range patterns {
		if ok, err := filepath.Match(p, base); err == nil && ok {
			return true
		}
	}
	return false
}

// pascalCasePattern guards which exported names count as component-shaped.
var pascalCasePattern = regexp.MustCompile(`^[A-Z][A-Za-z0-9]*$`)

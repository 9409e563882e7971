package syntax

import (
	"regexp"
	"strings"

	"uismith/internal/validate"
)

// forbiddenPattern tags one structural rule the generator must not use.
type forbiddenPattern struct {
	pattern *regexp.Regexp
	message string
}

// forbiddenPatterns is the fixed rule table. Generated UI fragments are
// rendered in user sessions, so anything that injects raw markup or
// executes strings is rejected outright.
var forbiddenPatterns = []forbiddenPattern{
	{regexp.MustCompile(`dangerouslySetInnerHTML`), "dangerouslySetInnerHTML is forbidden in generated fragments"},
	{regexp.MustCompile(`\beval\s*\(`), "eval is forbidden"},
	{regexp.MustCompile(`new\s+Function\s*\(`), "dynamic Function construction is forbidden"},
	{regexp.MustCompile(`document\.write\s*\(`), "document.write is forbidden"},
	{regexp.MustCompile(`\binnerHTML\s*=`), "direct innerHTML assignment is forbidden"},
	{regexp.MustCompile(`javascript:`), "javascript: URLs are forbidden"},
	{regexp.MustCompile(`\bon[a-z]+\s*=\s*["'][^"']*["']`), "string event handlers are forbidden; pass a function"},
}

// PatternChecker scans fragments line by line against the rule table. It
// implements validate.PatternChecker.
type PatternChecker struct{}

// NewPatternChecker returns the default rule-table checker.
func NewPatternChecker() *PatternChecker {
	return &PatternChecker{}
}

// CheckPatterns returns one finding per rule hit, with 1-based lines.
func (p *PatternChecker) CheckPatterns(code string) []validate.PatternFinding {
	var findings []validate.PatternFinding
	for i, line := range strings.Split(code, "\n") {
		for _, rule := range forbiddenPatterns {
			if rule.pattern.MatchString(line) {
				findings = append(findings, validate.PatternFinding{
					Line:    i + 1,
					Message: rule.message,
				})
			}
		}
	}
	return findings
}

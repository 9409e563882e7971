// Package validate checks generated UI fragments against the authoritative
// symbol registry plus external syntax and pattern checkers.
package validate

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"uismith/internal/logging"
	"uismith/internal/symbol"
)

// SyntaxChecker is the external well-formedness capability. Its output is
// merged verbatim into the Syntax list.
type SyntaxChecker interface {
	CheckSyntax(code string) (valid bool, errors []string)
}

// PatternFinding is one forbidden-pattern hit.
type PatternFinding struct {
	Line    int
	Message string
}

// PatternChecker is the external forbidden-pattern capability.
type PatternChecker interface {
	CheckPatterns(code string) []PatternFinding
}

// Framework selects the symbol-extraction dialect.
type Framework string

const (
	FrameworkReact         Framework = "react"
	FrameworkVue           Framework = "vue"
	FrameworkWebComponents Framework = "web-components"
)

// Validator reports every symbol reference in a generated artifact that is
// absent from the registry's authoritative name set. It is purely a
// function of its inputs: no mutation, deterministic for a fixed registry
// and checker outputs.
type Validator struct {
	registry  *symbol.Registry
	syntax    SyntaxChecker
	patterns  PatternChecker
	framework Framework
	prefix    string
}

// Option configures a Validator.
type Option func(*Validator)

// WithSyntaxChecker attaches the external syntax checker.
func WithSyntaxChecker(c SyntaxChecker) Option {
	return func(v *Validator) { v.syntax = c }
}

// WithPatternChecker attaches the external pattern checker.
func WithPatternChecker(c PatternChecker) Option {
	return func(v *Validator) { v.patterns = c }
}

// WithFramework sets the extraction dialect (default react).
func WithFramework(f Framework) Option {
	return func(v *Validator) { v.framework = f }
}

// WithComponentPrefix sets a prefix stripped from tag names before lookup
// (e.g. "Polaris" so PolarisButton resolves to Button).
func WithComponentPrefix(p string) Option {
	return func(v *Validator) { v.prefix = p }
}

// New creates a Validator bound to a resolved registry.
func New(registry *symbol.Registry, opts ...Option) *Validator {
	v := &Validator{registry: registry, framework: FrameworkReact}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate produces the structured error report for one artifact.
func (v *Validator) Validate(code string) ErrorSet {
	timer := logging.StartTimer(logging.CategoryValidate, "Validate")
	defer timer.Stop()

	var set ErrorSet

	if v.syntax != nil {
		if valid, errs := v.syntax.CheckSyntax(code); !valid {
			set.Syntax = append(set.Syntax, errs...)
		}
	}
	if v.patterns != nil {
		for _, f := range v.patterns.CheckPatterns(code) {
			set.Pattern = append(set.Pattern, fmt.Sprintf("line %d: %s", f.Line, f.Message))
		}
	}

	for _, name := range v.extractReferences(code) {
		if !v.known(name) {
			set.Import = append(set.Import, fmt.Sprintf("%s is not a valid component", name))
		}
	}

	logging.ValidateDebug("validated %d bytes: %d syntax, %d pattern, %d import errors",
		len(code), len(set.Syntax), len(set.Pattern), len(set.Import))
	return set
}

// known resolves a referenced name to its base before checking the
// authoritative set: dotted sub-components (Card.Header), the configured
// component prefix, and compound sub-component names all reduce to a base
// name first.
func (v *Validator) known(name string) bool {
	if v.registry.Has(name) {
		return true
	}
	if dot := strings.IndexByte(name, '.'); dot > 0 {
		return v.registry.Has(name[:dot])
	}
	if v.prefix != "" && strings.HasPrefix(name, v.prefix) {
		stripped := strings.TrimPrefix(name, v.prefix)
		if stripped != "" && v.registry.Has(stripped) {
			return true
		}
	}
	if base, ok := CompoundBase(name); ok && v.registry.Has(base) {
		return true
	}
	return false
}

// jsxTagPattern matches opening/closing tag references whose name starts
// uppercase, including dotted member tags (Card.Header).
var jsxTagPattern = regexp.MustCompile(`</?([A-Z][A-Za-z0-9]*(?:\.[A-Z][A-Za-z0-9]*)*)[\s/>]`)

// extractReferences returns each distinct referenced symbol in order of
// first appearance.
func (v *Validator) extractReferences(code string) []string {
	switch v.framework {
	case FrameworkWebComponents:
		return extractCustomElementTags(code)
	default:
		// react and vue SFC templates both use uppercase component tags.
		return extractUppercaseTags(code)
	}
}

func extractUppercaseTags(code string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, m := range jsxTagPattern.FindAllStringSubmatch(code, -1) {
		name := m[1]
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

// extractCustomElementTags tokenizes HTML-ish output and keeps hyphenated
// tag names (the custom-element convention), converted to PascalCase to
// match registry names. The HTML tokenizer lowercases tag names, which is
// correct for kebab-case custom elements.
func extractCustomElementTags(code string) []string {
	var out []string
	seen := make(map[string]struct{})

	z := html.NewTokenizer(strings.NewReader(code))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}
		if tt != html.StartTagToken && tt != html.SelfClosingTagToken {
			continue
		}
		tag, _ := z.TagName()
		name := string(tag)
		if !strings.Contains(name, "-") {
			continue // built-in element
		}
		pascal := KebabToPascal(name)
		if _, dup := seen[pascal]; dup {
			continue
		}
		seen[pascal] = struct{}{}
		out = append(out, pascal)
	}
	return out
}

// KebabToPascal converts a kebab-case tag ("ui-button-group") to the
// PascalCase symbol name ("UiButtonGroup").
func KebabToPascal(tag string) string {
	parts := strings.Split(tag, "-")
	var b strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}

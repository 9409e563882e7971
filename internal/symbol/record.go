// Package symbol defines the symbol records produced by discovery and the
// resolved registry the validator treats as ground truth.
package symbol

import "regexp"

// Category classifies a component by its likely role in a layout.
type Category int

const (
	CategoryOther Category = iota
	CategoryLayout
	CategoryForm
	CategoryNavigation
	CategoryFeedback
	CategoryContent
)

// String returns the human-readable name of the category.
func (c Category) String() string {
	switch c {
	case CategoryLayout:
		return "layout"
	case CategoryForm:
		return "form"
	case CategoryNavigation:
		return "navigation"
	case CategoryFeedback:
		return "feedback"
	case CategoryContent:
		return "content"
	default:
		return "other"
	}
}

// SourceKind identifies which kind of origin produced a record.
type SourceKind int

const (
	SourceUnknown SourceKind = iota
	SourcePackage
	SourceLocalFile
	SourceCustomElements
	SourceManual
)

// String returns the human-readable name of the source kind.
func (k SourceKind) String() string {
	switch k {
	case SourcePackage:
		return "package"
	case SourceLocalFile:
		return "local-file"
	case SourceCustomElements:
		return "custom-elements"
	case SourceManual:
		return "manual"
	default:
		return "unknown"
	}
}

// priority orders kinds for conflict resolution: local project code is
// ground truth, manual configuration is an explicit human override,
// package introspection is trustworthy but may include deep internals,
// everything else is best-effort.
func (k SourceKind) priority() int {
	switch k {
	case SourceLocalFile:
		return 4
	case SourceManual:
		return 3
	case SourcePackage:
		return 2
	default:
		return 1
	}
}

// Record represents one discoverable UI component.
type Record struct {
	Name        string     `json:"name"`
	Category    Category   `json:"category"`
	Props       []string   `json:"props,omitempty"`
	Slots       []string   `json:"slots,omitempty"`
	SourceKind  SourceKind `json:"source_kind"`
	SourcePath  string     `json:"source_path"`
	Description string     `json:"description,omitempty"`
	Examples    []string   `json:"examples,omitempty"`
}

// categoryRule maps a name pattern to a category. The table is data so the
// inference is auditable and unit-testable on its own.
type categoryRule struct {
	pattern  *regexp.Regexp
	category Category
}

var categoryRules = []categoryRule{
	{regexp.MustCompile(`(?i)(stack|grid|layout|box|columns?|divider|spacer|container|section|frame)`), CategoryLayout},
	{regexp.MustCompile(`(?i)(input|field|form|select|checkbox|radio|switch|slider|textarea|picker|dropzone|upload)`), CategoryForm},
	{regexp.MustCompile(`(?i)(nav|menu|tabs?$|tab[A-Z]|breadcrumb|pagination|link|sidebar|drawer)`), CategoryNavigation},
	{regexp.MustCompile(`(?i)(toast|alert|banner|badge|spinner|progress|skeleton|modal|dialog|tooltip|popover|notification|loading)`), CategoryFeedback},
	{regexp.MustCompile(`(?i)(text|heading|title|card|list|table|avatar|image|icon|thumbnail|tag|label|caption|description)`), CategoryContent},
}

// Categorize infers a category from a component name.
func Categorize(name string) Category {
	for _, rule := range categoryRules {
		if rule.pattern.MatchString(name) {
			return rule.category
		}
	}
	return CategoryOther
}

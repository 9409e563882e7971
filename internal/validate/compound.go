package validate

import "strings"

// compoundSuffixes lists the known sub-component name suffixes. A
// reference like CardHeader resolves to its base Card before the registry
// lookup. The table is ordered longest-first so DescriptionListItem strips
// ListItem before Item.
var compoundSuffixes = []string{
	"HeaderActions",
	"ListItem",
	"Subheader",
	"Content",
	"Trigger",
	"Section",
	"Footer",
	"Header",
	"Actions",
	"Action",
	"Toggle",
	"Panel",
	"Title",
	"Group",
	"Label",
	"Body",
	"Cell",
	"Head",
	"Item",
	"Row",
}

// CompoundBase strips the longest known sub-component suffix from a name,
// returning the base and whether anything was stripped. The base must
// itself remain a plausible component name (non-empty, uppercase start).
func CompoundBase(name string) (string, bool) {
	for _, suffix := range compoundSuffixes {
		if !strings.HasSuffix(name, suffix) {
			continue
		}
		base := strings.TrimSuffix(name, suffix)
		if base == "" || base[0] < 'A' || base[0] > 'Z' {
			continue
		}
		return base, true
	}
	return name, false
}

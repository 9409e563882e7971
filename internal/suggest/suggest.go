// Package suggest proposes the most likely intended component for an
// unknown symbol name, using layered strategies: containment first, then a
// fixed synonym table. Strategies are tried in order and the first hit
// wins, so results are deterministic for a fixed known-name order.
package suggest

import (
	"strings"

	"uismith/internal/logging"
)

// synonymTable maps common mistaken terms to the component names designers
// usually meant. Entries are probed in slice order and the first one
// present in the known set wins.
var synonymTable = map[string][]string{
	"stack":     {"BlockStack", "InlineStack", "LegacyStack", "Stack"},
	"row":       {"InlineStack", "Columns", "Grid"},
	"column":    {"BlockStack", "Columns", "Grid"},
	"container": {"Box", "Card", "Page"},
	"wrapper":   {"Box", "Card"},
	"text":      {"Text", "TextField"},
	"input":     {"TextField", "Input"},
	"dropdown":  {"Select", "Popover", "ActionList"},
	"button":    {"Button", "ButtonGroup"},
	"grid":      {"Grid", "InlineGrid"},
	"table":     {"DataTable", "IndexTable", "Table"},
	"panel":     {"Card", "Box"},
	"chip":      {"Tag", "Badge"},
	"toast":     {"Toast", "Banner"},
	"loader":    {"Spinner", "SkeletonBodyText"},
}

// Suggest returns the most likely intended name for an unknown symbol, or
// ok=false when nothing plausible exists. The caller must still surface
// the raw error when no suggestion is found.
func Suggest(unknown string, known []string) (string, bool) {
	if unknown == "" || len(known) == 0 {
		return "", false
	}
	lower := strings.ToLower(unknown)

	// Strategy 1: case-insensitive containment in either direction,
	// scanning known names in their given (stable) order.
	for _, name := range known {
		nameLower := strings.ToLower(name)
		if strings.Contains(nameLower, lower) || strings.Contains(lower, nameLower) {
			logging.Get(logging.CategorySuggest).Debug("containment: %q -> %q", unknown, name)
			return name, true
		}
	}

	// Strategy 2: near-miss typos (Buton -> Button, Stak -> Stack). The
	// shorter string must be an in-order subsequence of the longer one;
	// this catches dropped letters without an edit-distance dependency.
	for _, name := range known {
		if isNearMiss(lower, strings.ToLower(name)) {
			logging.Get(logging.CategorySuggest).Debug("near-miss: %q -> %q", unknown, name)
			return name, true
		}
	}

	// Strategy 3: synonym table.
	if candidates, ok := synonymTable[lower]; ok {
		for _, candidate := range candidates {
			for _, name := range known {
				if name == candidate {
					logging.Get(logging.CategorySuggest).Debug("synonym: %q -> %q", unknown, name)
					return name, true
				}
			}
		}
	}

	return "", false
}

// isNearMiss reports whether the shorter of a, b is an in-order
// subsequence of the longer, with at least 3 characters and at most 2
// characters of slack, so Buton matches button but Tag never matches
// Pagination.
func isNearMiss(a, b string) bool {
	short, long := a, b
	if len(short) > len(long) {
		short, long = long, short
	}
	if len(short) < 3 || len(long)-len(short) > 2 {
		return false
	}
	i := 0
	for j := 0; j < len(long) && i < len(short); j++ {
		if short[i] == long[j] {
			i++
		}
	}
	return i == len(short)
}

// Map builds a suggestion map for a batch of unknown names, omitting names
// with no resolvable suggestion.
func Map(unknowns, known []string) map[string]string {
	out := make(map[string]string, len(unknowns))
	for _, u := range unknowns {
		if s, ok := Suggest(u, known); ok {
			out[u] = s
		}
	}
	return out
}

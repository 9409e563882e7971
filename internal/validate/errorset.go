package validate

import "sort"

// ErrorSet is the structured report for one validation pass. It is a
// value type: two sets are equal when their flattened contents are
// set-equal, regardless of ordering. Empty on all three lists means the
// artifact is valid.
type ErrorSet struct {
	Syntax  []string `json:"syntax_errors"`
	Pattern []string `json:"pattern_errors"`
	Import  []string `json:"import_errors"`
}

// Empty reports whether all three lists are empty.
func (e ErrorSet) Empty() bool {
	return len(e.Syntax) == 0 && len(e.Pattern) == 0 && len(e.Import) == 0
}

// Total returns the combined error count, used for best-of-N selection.
func (e ErrorSet) Total() int {
	return len(e.Syntax) + len(e.Pattern) + len(e.Import)
}

// Flatten returns every error as one sorted, deduplicated slice.
func (e ErrorSet) Flatten() []string {
	seen := make(map[string]struct{}, e.Total())
	for _, list := range [][]string{e.Syntax, e.Pattern, e.Import} {
		for _, msg := range list {
			seen[msg] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for msg := range seen {
		out = append(out, msg)
	}
	sort.Strings(out)
	return out
}

// Equal reports set-equality of the flattened contents. This is the
// comparison stuck-detection uses: order and category boundaries are
// irrelevant, only the message set matters.
func (e ErrorSet) Equal(other ErrorSet) bool {
	a, b := e.Flatten(), other.Flatten()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

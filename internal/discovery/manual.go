package discovery

import (
	"context"

	"uismith/internal/symbol"
)

// ManualAdapter turns the component names listed directly in the project
// config into symbols. Manual entries outrank every other source during
// conflict resolution.
type ManualAdapter struct {
	components []string
	layouts    []string
}

// NewManualAdapter creates the adapter from the config component lists.
func NewManualAdapter(components, layouts []string) *ManualAdapter {
	return &ManualAdapter{components: components, layouts: layouts}
}

// Kind implements Adapter.
func (a *ManualAdapter) Kind() SourceKind { return SourceManual }

// Discover implements Adapter. The source argument is ignored; manual
// symbols come from config, not from a path.
func (a *ManualAdapter) Discover(_ context.Context, _ Source) []symbol.Record {
	seen := make(map[string]bool, len(a.components)+len(a.layouts))
	var records []symbol.Record

	for _, name := range a.layouts {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		records = append(records, symbol.Record{
			Name:       name,
			Category:   symbol.CategoryLayout,
			SourceKind: symbol.SourceManual,
			SourcePath: "manual-config",
		})
	}
	for _, name := range a.components {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		records = append(records, symbol.Record{
			Name:       name,
			Category:   symbol.Categorize(name),
			SourceKind: symbol.SourceManual,
			SourcePath: "manual-config",
		})
	}
	return records
}

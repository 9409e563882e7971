package discovery

import (
	"context"
	"encoding/json"
	"os"

	"uismith/internal/logging"
	"uismith/internal/symbol"
	"uismith/internal/validate"
)

// CustomElementsAdapter parses a custom-elements manifest
// (custom-elements.json) and yields one symbol per declared custom
// element, converting kebab-case tags to PascalCase names.
type CustomElementsAdapter struct{}

// NewCustomElementsAdapter creates the manifest adapter.
func NewCustomElementsAdapter() *CustomElementsAdapter {
	return &CustomElementsAdapter{}
}

// Kind implements Adapter.
func (a *CustomElementsAdapter) Kind() SourceKind { return SourceCustomElements }

// manifest mirrors the subset of the custom-elements schema discovery
// needs.
type manifest struct {
	Modules []struct {
		Declarations []struct {
			Name          string `json:"name"`
			TagName       string `json:"tagName"`
			CustomElement bool   `json:"customElement"`
			Description   string `json:"description"`
			Members       []struct {
				Kind string `json:"kind"`
				Name string `json:"name"`
			} `json:"members"`
			Slots []struct {
				Name string `json:"name"`
			} `json:"slots"`
		} `json:"declarations"`
	} `json:"modules"`
}

// Discover reads and parses the manifest. Malformed JSON degrades to zero
// results.
func (a *CustomElementsAdapter) Discover(_ context.Context, source Source) []symbol.Record {
	data, err := os.ReadFile(source.Path)
	if err != nil {
		logging.DiscoveryDebug("manifest %s unreadable: %v", source.Path, err)
		return nil
	}

	var m manifest
	if err := json.Unmarshal(data, &m); err != nil {
		logging.Get(logging.CategoryDiscovery).Warn("manifest %s is malformed: %v", source.Path, err)
		return nil
	}

	var records []symbol.Record
	for _, mod := range m.Modules {
		for _, decl := range mod.Declarations {
			if !decl.CustomElement {
				continue
			}
			name := decl.Name
			if decl.TagName != "" {
				name = validate.KebabToPascal(decl.TagName)
			}
			if name == "" {
				continue
			}

			var props, slots []string
			for _, member := range decl.Members {
				if member.Kind == "field" {
					props = append(props, member.Name)
				}
			}
			for _, slot := range decl.Slots {
				slots = append(slots, slot.Name)
			}

			records = append(records, symbol.Record{
				Name:        name,
				Category:    symbol.Categorize(name),
				Props:       props,
				Slots:       slots,
				SourceKind:  symbol.SourceCustomElements,
				SourcePath:  source.Path,
				Description: decl.Description,
			})
		}
	}

	logging.Discovery("manifest %s yielded %d custom elements", source.Path, len(records))
	return records
}

package discovery

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uismith/internal/config"
	"uismith/internal/symbol"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func recordNames(records []symbol.Record) []string {
	names := make([]string, 0, len(records))
	for _, r := range records {
		names = append(names, r.Name)
	}
	return names
}

func TestLocalFileAdapter(t *testing.T) {
	root := t.TempDir()
	patterns := []string{"*.tsx", "*.jsx"}

	writeFile(t, filepath.Join(root, "Button.tsx"), `export function Button() { return null }`)
	writeFile(t, filepath.Join(root, "card.tsx"), `const Card = () => null`)
	writeFile(t, filepath.Join(root, "forms", "TextField.tsx"), `export const TextField = () => null`)
	writeFile(t, filepath.Join(root, "Button.stories.tsx"), `export function Button() {}`)
	writeFile(t, filepath.Join(root, "Button.test.tsx"), `export function Button() {}`)
	writeFile(t, filepath.Join(root, "index.tsx"), `export { Button }`)
	writeFile(t, filepath.Join(root, "README.md"), `docs`)
	writeFile(t, filepath.Join(root, "node_modules", "Evil.tsx"), `export function Evil() {}`)
	writeFile(t, filepath.Join(root, ".cache", "Stale.tsx"), `export function Stale() {}`)
	writeFile(t, filepath.Join(root, "Meta.tsx"), `export default { title: "Meta", component: Meta }`)
	writeFile(t, filepath.Join(root, "ButtonDemo.tsx"), `export function ButtonDemo() {}`)

	adapter := NewLocalFileAdapter(6)
	records := adapter.Discover(context.Background(), Source{
		Kind:         SourceLocalDir,
		Path:         root,
		FilePatterns: patterns,
	})

	assert.ElementsMatch(t, []string{"Button", "Card", "TextField"}, recordNames(records))
	for _, r := range records {
		assert.Equal(t, symbol.SourceLocalFile, r.SourceKind)
		assert.NotEmpty(t, r.SourcePath)
	}
}

func TestLocalFileAdapterDepthBound(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a", "Shallow.tsx"), `export function Shallow() {}`)
	writeFile(t, filepath.Join(root, "a", "b", "c", "Deep.tsx"), `export function Deep() {}`)

	adapter := NewLocalFileAdapter(2)
	records := adapter.Discover(context.Background(), Source{
		Kind:         SourceLocalDir,
		Path:         root,
		FilePatterns: []string{"*.tsx"},
	})

	assert.Equal(t, []string{"Shallow"}, recordNames(records))
}

func TestLocalFileAdapterMissingDir(t *testing.T) {
	adapter := NewLocalFileAdapter(6)
	records := adapter.Discover(context.Background(), Source{
		Kind: SourceLocalDir,
		Path: filepath.Join(t.TempDir(), "does-not-exist"),
	})
	assert.Empty(t, records)
}

func TestLocalFileAdapterDeterministicOrder(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Zebra.tsx"), `export function Zebra() {}`)
	writeFile(t, filepath.Join(root, "Alpha.tsx"), `export function Alpha() {}`)

	adapter := NewLocalFileAdapter(6)
	src := Source{Kind: SourceLocalDir, Path: root, FilePatterns: []string{"*.tsx"}}

	first := adapter.Discover(context.Background(), src)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, adapter.Discover(context.Background(), src))
	}
}

// stubEnumerator is a canned ExportEnumerator for adapter tests.
type stubEnumerator struct {
	records []symbol.Record
	ok      bool
}

func (s *stubEnumerator) Enumerate(_ context.Context, _ string) ([]symbol.Record, bool) {
	out := make([]symbol.Record, len(s.records))
	copy(out, s.records)
	return out, s.ok
}

func TestPackageAdapter(t *testing.T) {
	dynamic := []symbol.Record{
		{Name: "Button", SourceKind: symbol.SourcePackage, SourcePath: "@acme/ui"},
		{Name: "Card", SourceKind: symbol.SourcePackage, SourcePath: "@acme/ui"},
	}
	curated := []symbol.Record{
		{Name: "Button", Description: "Primary control", Props: []string{"variant"}, SourceKind: symbol.SourcePackage},
		{Name: "Modal", SourceKind: symbol.SourcePackage},
	}
	src := Source{Kind: SourcePackage, Path: "@acme/ui"}

	t.Run("dynamic results win over curated", func(t *testing.T) {
		adapter := NewPackageAdapterWith(
			&stubEnumerator{records: dynamic, ok: true},
			&stubEnumerator{records: curated, ok: true},
		)
		records := adapter.Discover(context.Background(), src)
		assert.ElementsMatch(t, []string{"Button", "Card"}, recordNames(records))
	})

	t.Run("curated metadata merges into dynamic results", func(t *testing.T) {
		adapter := NewPackageAdapterWith(
			&stubEnumerator{records: dynamic, ok: true},
			&stubEnumerator{records: curated, ok: true},
		)
		records := adapter.Discover(context.Background(), src)
		for _, r := range records {
			if r.Name == "Button" {
				assert.Equal(t, "Primary control", r.Description)
				assert.Equal(t, []string{"variant"}, r.Props)
			}
		}
	})

	t.Run("falls back to curated when not installed", func(t *testing.T) {
		adapter := NewPackageAdapterWith(
			&stubEnumerator{ok: false},
			&stubEnumerator{records: curated, ok: true},
		)
		records := adapter.Discover(context.Background(), src)
		assert.ElementsMatch(t, []string{"Button", "Modal"}, recordNames(records))
	})

	t.Run("unknown package yields nothing", func(t *testing.T) {
		adapter := NewPackageAdapterWith(
			&stubEnumerator{ok: false},
			&stubEnumerator{ok: false},
		)
		assert.Empty(t, adapter.Discover(context.Background(), src))
	})
}

func TestInstalledEnumerator(t *testing.T) {
	root := t.TempDir()
	pkgDir := filepath.Join(root, "node_modules", "@acme", "ui")
	writeFile(t, filepath.Join(pkgDir, "package.json"), `{"types": "index.d.ts", "main": "index.js"}`)
	writeFile(t, filepath.Join(pkgDir, "index.d.ts"), `
export declare function Button(props: ButtonProps): JSX.Element;
export declare const Card: React.FC<CardProps>;
export { TextField, Select };
export declare function helperFn(): void;
export default Theme;
`)

	e := &InstalledEnumerator{ProjectRoot: root}

	t.Run("extracts PascalCase exports from declarations", func(t *testing.T) {
		records, ok := e.Enumerate(context.Background(), "@acme/ui")
		require.True(t, ok)
		assert.ElementsMatch(t, []string{"Button", "Card", "TextField", "Select"}, recordNames(records))
		for _, r := range records {
			assert.Equal(t, symbol.SourcePackage, r.SourceKind)
			assert.Equal(t, "@acme/ui", r.SourcePath)
		}
	})

	t.Run("not installed", func(t *testing.T) {
		_, ok := e.Enumerate(context.Background(), "@acme/other")
		assert.False(t, ok)
	})

	t.Run("malformed package.json", func(t *testing.T) {
		broken := filepath.Join(root, "node_modules", "broken")
		writeFile(t, filepath.Join(broken, "package.json"), `{not json`)
		_, ok := e.Enumerate(context.Background(), "broken")
		assert.False(t, ok)
	})
}

func TestCustomElementsAdapter(t *testing.T) {
	adapter := NewCustomElementsAdapter()

	t.Run("parses custom element declarations", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "custom-elements.json")
		writeFile(t, path, `{
  "modules": [
    {
      "declarations": [
        {
          "name": "MyCard",
          "tagName": "my-card",
          "customElement": true,
          "description": "A card element",
          "members": [
            {"kind": "field", "name": "heading"},
            {"kind": "method", "name": "focus"}
          ],
          "slots": [{"name": "footer"}]
        },
        {"name": "cardStyles", "customElement": false}
      ]
    }
  ]
}`)
		records := adapter.Discover(context.Background(), Source{Kind: SourceCustomElements, Path: path})
		require.Len(t, records, 1)
		r := records[0]
		assert.Equal(t, "MyCard", r.Name)
		assert.Equal(t, symbol.SourceCustomElements, r.SourceKind)
		assert.Equal(t, "A card element", r.Description)
		assert.Equal(t, []string{"heading"}, r.Props)
		assert.Equal(t, []string{"footer"}, r.Slots)
	})

	t.Run("malformed manifest degrades to nothing", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "custom-elements.json")
		writeFile(t, path, `{"modules": [`)
		assert.Empty(t, adapter.Discover(context.Background(), Source{Kind: SourceCustomElements, Path: path}))
	})

	t.Run("missing manifest degrades to nothing", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nope.json")
		assert.Empty(t, adapter.Discover(context.Background(), Source{Kind: SourceCustomElements, Path: path}))
	})
}

func TestManualAdapter(t *testing.T) {
	adapter := NewManualAdapter(
		[]string{"Button", "Card", "", "Button"},
		[]string{"Grid", "Card"},
	)
	records := adapter.Discover(context.Background(), Source{Kind: SourceManual})

	assert.ElementsMatch(t, []string{"Grid", "Card", "Button"}, recordNames(records))
	byName := make(map[string]symbol.Record)
	for _, r := range records {
		assert.Equal(t, symbol.SourceManual, r.SourceKind)
		assert.Equal(t, "manual-config", r.SourcePath)
		byName[r.Name] = r
	}
	// Layout list wins categorization for names present in both lists.
	assert.Equal(t, symbol.CategoryLayout, byName["Grid"].Category)
	assert.Equal(t, symbol.CategoryLayout, byName["Card"].Category)
}

func TestDiscovererSources(t *testing.T) {
	root := t.TempDir()

	t.Run("explicit config drives sources in fixed order", func(t *testing.T) {
		d := NewDiscoverer(root, config.DiscoveryConfig{
			ImportPath:    "@shopify/polaris",
			ComponentDirs: []string{"src/widgets"},
			ManifestPath:  "custom-elements.json",
			Components:    []string{"Button"},
			FilePatterns:  []string{"*.tsx"},
		})
		sources := d.Sources()
		require.Len(t, sources, 4)
		assert.Equal(t, SourcePackage, sources[0].Kind)
		assert.Equal(t, "@shopify/polaris", sources[0].Path)
		assert.Equal(t, SourceLocalDir, sources[1].Kind)
		assert.Equal(t, filepath.Join(root, "src/widgets"), sources[1].Path)
		assert.Equal(t, SourceCustomElements, sources[2].Kind)
		assert.Equal(t, filepath.Join(root, "custom-elements.json"), sources[2].Path)
		assert.Equal(t, SourceManual, sources[3].Kind)
	})

	t.Run("conventional dirs probed when none configured", func(t *testing.T) {
		require.NoError(t, os.MkdirAll(filepath.Join(root, "src", "components"), 0755))
		d := NewDiscoverer(root, config.DiscoveryConfig{})
		sources := d.Sources()
		require.Len(t, sources, 1)
		assert.Equal(t, SourceLocalDir, sources[0].Kind)
		assert.Equal(t, filepath.Join(root, "src/components"), sources[0].Path)
		assert.NotEmpty(t, sources[0].FilePatterns)
	})
}

func TestDiscovererDiscover(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "src", "components", "Widget.tsx"),
		`export function Widget() { return null }`)
	writeFile(t, filepath.Join(root, "src", "components", "Button.tsx"),
		`export function Button() { return null }`)

	cfg := config.DiscoveryConfig{
		Components:       []string{"Button", "Modal"},
		LayoutComponents: []string{"Grid"},
		FilePatterns:     []string{"*.tsx"},
	}

	d := NewDiscoverer(root, cfg)
	registry, err := d.Discover(context.Background())
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"Widget", "Button", "Modal", "Grid"}, registry.Names())

	// Manual declarations outrank locally discovered ones.
	button, ok := registry.Get("Button")
	require.True(t, ok)
	assert.Equal(t, symbol.SourceManual, button.SourceKind)

	widget, ok := registry.Get("Widget")
	require.True(t, ok)
	assert.Equal(t, symbol.SourceLocalFile, widget.SourceKind)

	t.Run("cancelled context aborts the pass", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := d.Discover(ctx)
		assert.Error(t, err)
	})
}

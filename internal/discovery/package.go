package discovery

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"uismith/internal/logging"
	"uismith/internal/symbol"
)

// ExportEnumerator is the capability of listing a package's exported,
// component-shaped names. Two implementations exist: one that inspects the
// installed package and one backed by a curated static table. Selection is
// by availability, so environments without node_modules (production
// builds) degrade gracefully.
type ExportEnumerator interface {
	// Enumerate returns candidate records for the package, or ok=false
	// when this enumerator cannot serve it.
	Enumerate(ctx context.Context, pkg string) ([]symbol.Record, bool)
}

// PackageAdapter discovers symbols from an installed design-system
// package, falling back to the curated table, and merging curated metadata
// into dynamic results for names both know.
type PackageAdapter struct {
	installed ExportEnumerator
	curated   ExportEnumerator
}

// NewPackageAdapter wires the default enumerators for a project root.
func NewPackageAdapter(projectRoot string) *PackageAdapter {
	return &PackageAdapter{
		installed: &InstalledEnumerator{ProjectRoot: projectRoot},
		curated:   &CuratedEnumerator{},
	}
}

// NewPackageAdapterWith injects explicit enumerators (tests, alternative
// module systems).
func NewPackageAdapterWith(installed, curated ExportEnumerator) *PackageAdapter {
	return &PackageAdapter{installed: installed, curated: curated}
}

// Kind implements Adapter.
func (a *PackageAdapter) Kind() SourceKind { return SourcePackage }

// Discover enumerates the package. Dynamic results take precedence;
// curated metadata (description, props) merges in as supplementary detail
// for names present in both.
func (a *PackageAdapter) Discover(ctx context.Context, source Source) []symbol.Record {
	timer := logging.StartTimer(logging.CategoryDiscovery, "PackageAdapter.Discover")
	defer timer.Stop()

	pkg := source.Path
	curated, haveCurated := a.curated.Enumerate(ctx, pkg)

	dynamic, haveDynamic := a.installed.Enumerate(ctx, pkg)
	if !haveDynamic {
		if !haveCurated {
			logging.Discovery("package %s: not installed and not in curated table", pkg)
			return nil
		}
		logging.Discovery("package %s: using curated list (%d symbols)", pkg, len(curated))
		return curated
	}

	if haveCurated {
		meta := make(map[string]symbol.Record, len(curated))
		for _, c := range curated {
			meta[c.Name] = c
		}
		for i, d := range dynamic {
			c, ok := meta[d.Name]
			if !ok {
				continue
			}
			if d.Description == "" {
				dynamic[i].Description = c.Description
			}
			if len(d.Props) == 0 {
				dynamic[i].Props = c.Props
			}
		}
	}

	logging.Discovery("package %s: enumerated %d symbols dynamically", pkg, len(dynamic))
	return dynamic
}

// InstalledEnumerator inspects an installed package under node_modules,
// reading its entry metadata and declaration files for exported PascalCase
// names. No JS runtime is involved; this is file inspection only.
type InstalledEnumerator struct {
	ProjectRoot string
}

// exportPatterns pull exported identifiers out of entry/declaration files.
var exportPatterns = []*regexp.Regexp{
	regexp.MustCompile(`export\s+\{([^}]+)\}`),
	regexp.MustCompile(`export\s+(?:declare\s+)?(?:function|const|class)\s+([A-Z][A-Za-z0-9]*)`),
	regexp.MustCompile(`exports\.([A-Z][A-Za-z0-9]*)\s*=`),
}

var identPattern = regexp.MustCompile(`[A-Za-z0-9_$]+`)

// Enumerate implements ExportEnumerator. Returns ok=false when the package
// is not installed or nothing component-shaped is found, letting the
// adapter fall back to the curated table.
func (e *InstalledEnumerator) Enumerate(ctx context.Context, pkg string) ([]symbol.Record, bool) {
	pkgDir := filepath.Join(e.ProjectRoot, "node_modules", filepath.FromSlash(pkg))
	metaPath := filepath.Join(pkgDir, "package.json")

	data, err := os.ReadFile(metaPath)
	if err != nil {
		logging.DiscoveryDebug("package %s not installed: %v", pkg, err)
		return nil, false
	}

	var meta struct {
		Main  string `json:"main"`
		Types string `json:"types"`
	}
	if err := json.Unmarshal(data, &meta); err != nil {
		logging.DiscoveryDebug("package %s has malformed package.json: %v", pkg, err)
		return nil, false
	}

	names := make(map[string]struct{})
	for _, entry := range []string{meta.Types, meta.Main, "index.d.ts", "index.js"} {
		if entry == "" {
			continue
		}
		content, err := os.ReadFile(filepath.Join(pkgDir, filepath.FromSlash(entry)))
		if err != nil {
			continue
		}
		collectExports(string(content), names)
		if len(names) > 0 {
			break
		}
	}
	if len(names) == 0 {
		return nil, false
	}

	records := make([]symbol.Record, 0, len(names))
	for name := range names {
		records = append(records, symbol.Record{
			Name:       name,
			Category:   symbol.Categorize(name),
			SourceKind: symbol.SourcePackage,
			SourcePath: pkg,
		})
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Name < records[j].Name })
	return records, true
}

// collectExports parses export statements for PascalCase names.
func collectExports(content string, into map[string]struct{}) {
	for _, p := range exportPatterns[1:] {
		for _, m := range p.FindAllStringSubmatch(content, -1) {
			if pascalCasePattern.MatchString(m[1]) {
				into[m[1]] = struct{}{}
			}
		}
	}
	for _, m := range exportPatterns[0].FindAllStringSubmatch(content, -1) {
		for _, ident := range identPattern.FindAllString(m[1], -1) {
			if ident == "default" || ident == "type" || ident == "as" {
				continue
			}
			if pascalCasePattern.MatchString(ident) {
				into[ident] = struct{}{}
			}
		}
	}
}

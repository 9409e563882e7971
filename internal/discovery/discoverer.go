package discovery

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sync/errgroup"

	"uismith/internal/config"
	"uismith/internal/logging"
	"uismith/internal/symbol"
)

// conventionalDirs are probed (relative to the project root) when the
// config names no component directories explicitly.
var conventionalDirs = []string{
	"src/components",
	"components",
	"app/components",
	"lib/components",
	"src/ui",
}

// Discoverer runs every configured source adapter and resolves the
// combined candidates into a registry.
type Discoverer struct {
	projectRoot string
	cfg         config.DiscoveryConfig
	adapters    map[SourceKind]Adapter
}

// NewDiscoverer builds a discoverer with the standard adapter set.
func NewDiscoverer(projectRoot string, cfg config.DiscoveryConfig) *Discoverer {
	maxDepth := cfg.MaxDepth
	if maxDepth <= 0 {
		maxDepth = config.DefaultDiscoveryConfig().MaxDepth
	}
	return &Discoverer{
		projectRoot: projectRoot,
		cfg:         cfg,
		adapters: map[SourceKind]Adapter{
			SourcePackage:        NewPackageAdapter(projectRoot),
			SourceLocalDir:       NewLocalFileAdapter(maxDepth),
			SourceCustomElements: NewCustomElementsAdapter(),
			SourceManual:         NewManualAdapter(cfg.Components, cfg.LayoutComponents),
		},
	}
}

// Sources derives the discovery sources from config and filesystem
// probing. Order is deterministic: package, local dirs, manifest, manual.
func (d *Discoverer) Sources() []Source {
	var sources []Source

	if d.cfg.ImportPath != "" {
		sources = append(sources, Source{Kind: SourcePackage, Path: d.cfg.ImportPath})
	}

	dirs := d.cfg.ComponentDirs
	if len(dirs) == 0 {
		dirs = d.probeConventionalDirs()
	}
	patterns := d.cfg.FilePatterns
	if len(patterns) == 0 {
		patterns = config.DefaultDiscoveryConfig().FilePatterns
	}
	for _, dir := range dirs {
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(d.projectRoot, dir)
		}
		sources = append(sources, Source{Kind: SourceLocalDir, Path: dir, FilePatterns: patterns})
	}

	if d.cfg.ManifestPath != "" {
		path := d.cfg.ManifestPath
		if !filepath.IsAbs(path) {
			path = filepath.Join(d.projectRoot, path)
		}
		sources = append(sources, Source{Kind: SourceCustomElements, Path: path})
	}

	if len(d.cfg.Components) > 0 || len(d.cfg.LayoutComponents) > 0 {
		sources = append(sources, Source{Kind: SourceManual, Path: "manual-config"})
	}

	return sources
}

// probeConventionalDirs returns the conventional component locations that
// actually exist under the project root.
func (d *Discoverer) probeConventionalDirs() []string {
	var found []string
	for _, dir := range conventionalDirs {
		info, err := os.Stat(filepath.Join(d.projectRoot, dir))
		if err == nil && info.IsDir() {
			found = append(found, dir)
		}
	}
	return found
}

// Discover runs every adapter concurrently, gathers the candidates, and
// resolves conflicts into a registry. Adapter failures degrade to empty
// result sets, so Discover itself only fails on context cancellation.
func (d *Discoverer) Discover(ctx context.Context) (*symbol.Registry, error) {
	timer := logging.StartTimer(logging.CategoryDiscovery, "discovery pass")
	defer timer.Stop()

	sources := d.Sources()
	logging.Discovery("discovery pass over %d sources", len(sources))

	results := make([][]symbol.Record, len(sources))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	for i, src := range sources {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			adapter, ok := d.adapters[src.Kind]
			if !ok {
				logging.Discovery("no adapter for source kind %q, skipping %s", src.Kind, src.Path)
				return nil
			}
			records := adapter.Discover(gctx, src)
			logging.Discovery("source %s (%s) yielded %d candidates", src.Path, src.Kind, len(records))
			mu.Lock()
			results[i] = records
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Flatten in source order so conflict resolution sees a stable input
	// ordering regardless of adapter completion order.
	var candidates []symbol.Record
	for _, records := range results {
		candidates = append(candidates, records...)
	}

	registry := symbol.Resolve(candidates)
	logging.Registry("resolved %d candidates into %d symbols", len(candidates), registry.Len())
	return registry, nil
}

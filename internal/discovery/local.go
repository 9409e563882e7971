package discovery

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"uismith/internal/logging"
	"uismith/internal/symbol"
)

// LocalFileAdapter scans project directories for component source files.
// Local project code is ground truth: whatever it defines is literally
// what gets rendered, so these records win conflict resolution.
type LocalFileAdapter struct {
	maxDepth int
}

// NewLocalFileAdapter creates a local scanner with a recursion bound.
func NewLocalFileAdapter(maxDepth int) *LocalFileAdapter {
	if maxDepth <= 0 {
		maxDepth = 6
	}
	return &LocalFileAdapter{maxDepth: maxDepth}
}

// Kind implements Adapter.
func (a *LocalFileAdapter) Kind() SourceKind { return SourceLocalDir }

// Discover walks the source directory, extracting one symbol per matching
// component file. Unreadable directories or files are skipped, never
// fatal.
func (a *LocalFileAdapter) Discover(ctx context.Context, source Source) []symbol.Record {
	timer := logging.StartTimer(logging.CategoryDiscovery, "LocalFileAdapter.Discover")
	defer timer.Stop()

	root := source.Path
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		logging.DiscoveryDebug("local dir %s unavailable: %v", root, err)
		return nil
	}

	var records []symbol.Record
	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			logging.DiscoveryDebug("skipping unreadable entry %s: %v", path, err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if ctx.Err() != nil {
			return filepath.SkipAll
		}

		if d.IsDir() {
			name := d.Name()
			if path != root && (strings.HasPrefix(name, ".") || name == "node_modules") {
				return filepath.SkipDir
			}
			if depth(root, path) > a.maxDepth {
				return filepath.SkipDir
			}
			return nil
		}

		base := d.Name()
		if !matchesAnyPattern(base, source.FilePatterns) {
			return nil
		}
		if reason, skip := skipFile(base); skip {
			logging.DiscoveryDebug("skip %s: %s", base, reason)
			return nil
		}

		rec, ok := a.extract(path)
		if ok {
			records = append(records, rec)
		}
		return nil
	})
	if err != nil {
		logging.Get(logging.CategoryDiscovery).Warn("local walk of %s aborted: %v", root, err)
	}

	// Deterministic output independent of traversal order.
	sort.Slice(records, func(i, j int) bool { return records[i].SourcePath < records[j].SourcePath })

	logging.Discovery("local dir %s yielded %d symbols", root, len(records))
	return records
}

// extract derives one symbol record from a component file, preferring the
// exported declaration name over the capitalized basename.
func (a *LocalFileAdapter) extract(path string) (symbol.Record, bool) {
	content, err := os.ReadFile(path)
	if err != nil {
		logging.DiscoveryDebug("cannot read %s: %v", path, err)
		return symbol.Record{}, false
	}
	text := string(content)
	if looksLikeStoryContent(text) {
		return symbol.Record{}, false
	}

	name := extractDeclaredName(text)
	if name == "" {
		name = basenameSymbol(path)
	}
	if name == "" || !pascalCasePattern.MatchString(name) || skipSymbolName(name) {
		return symbol.Record{}, false
	}

	return symbol.Record{
		Name:       name,
		Category:   symbol.Categorize(name),
		SourceKind: symbol.SourceLocalFile,
		SourcePath: path,
	}, true
}

// depth counts path components below root.
func depth(root, path string) int {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		return 0
	}
	return len(strings.Split(rel, string(filepath.Separator)))
}

// Package discovery enumerates candidate component symbols from untrusted,
// overlapping sources: installed packages, local source trees,
// custom-elements manifests, and manual configuration. Adapters degrade to
// zero results on failure so one bad source never aborts a discovery pass.
package discovery

import (
	"context"

	"uismith/internal/symbol"
)

// SourceKind tags what a discovery Source points at.
type SourceKind string

const (
	SourcePackage        SourceKind = "package"
	SourceLocalDir       SourceKind = "local-dir"
	SourceCustomElements SourceKind = "custom-elements"
	SourceManual         SourceKind = "manual"
)

// Source is a declarative discovery instruction: data, not behavior.
// Sources are consumed once per discovery pass.
type Source struct {
	Kind         SourceKind
	Path         string   // package name, directory, or manifest path
	FilePatterns []string // local-dir only
}

// Adapter enumerates candidate symbols from one kind of origin. Discover
// never returns an error: a failing adapter logs and yields nil so the
// pass continues with the remaining sources.
type Adapter interface {
	Kind() SourceKind
	Discover(ctx context.Context, source Source) []symbol.Record
}

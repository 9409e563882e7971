package symbol

import (
	"sort"
	"time"

	"uismith/internal/logging"
)

// Registry holds the resolved, authoritative symbol table for one
// discovery session. It is immutable after Resolve: rebuilds (cache
// expiry) produce a fresh instance while in-flight requests keep the one
// they started with, so it is safe to share across concurrent requests.
type Registry struct {
	records map[string]Record
	names   []string // sorted
	nameSet map[string]struct{}
	builtAt time.Time
}

// Resolve aggregates adapter output into a registry, applying conflict
// resolution when sources disagree on a name:
//
//  1. Every candidate is retained per name, never overwritten.
//  2. The winner per name is picked by kind priority
//     (local-file > manual > package > other). Same-kind ties go to the
//     lexicographically lower source path, then to the first seen.
//  3. Manual records are applied last and unconditionally, merging forward
//     props/slots/examples/description the manual record left unset.
func Resolve(candidates []Record) *Registry {
	timer := logging.StartTimer(logging.CategoryRegistry, "Resolve")
	defer timer.Stop()

	// Step 1: bucket all candidates by name.
	buckets := make(map[string][]Record)
	for _, c := range candidates {
		if c.Name == "" {
			continue
		}
		buckets[c.Name] = append(buckets[c.Name], c)
	}

	// Step 2: pick winners.
	resolved := make(map[string]Record, len(buckets))
	for name, group := range buckets {
		winner := group[0]
		for _, c := range group[1:] {
			if beats(c, winner) {
				winner = c
			}
		}
		resolved[name] = winner
		if len(group) > 1 {
			logging.RegistryDebug("conflict on %q: %d candidates, kept %s (%s)",
				name, len(group), winner.SourceKind, winner.SourcePath)
		}
	}

	// Step 3: manual overrides win outright, merging forward unset fields
	// from whatever they replace.
	for name, group := range buckets {
		for _, c := range group {
			if c.SourceKind != SourceManual {
				continue
			}
			resolved[name] = mergeForward(c, resolved[name])
		}
	}

	reg := &Registry{
		records: resolved,
		nameSet: make(map[string]struct{}, len(resolved)),
		builtAt: time.Now(),
	}
	for name := range resolved {
		reg.names = append(reg.names, name)
		reg.nameSet[name] = struct{}{}
	}
	sort.Strings(reg.names)

	logging.Registry("resolved %d symbols from %d candidates", len(resolved), len(candidates))
	return reg
}

// beats reports whether candidate c should replace the current winner.
func beats(c, winner Record) bool {
	cp, wp := c.SourceKind.priority(), winner.SourceKind.priority()
	if cp != wp {
		return cp > wp
	}
	// Same kind: deterministic tie-break on source path; equal paths keep
	// the first-seen candidate.
	return c.SourcePath < winner.SourcePath
}

// mergeForward fills fields the manual record left unset from the record
// it replaces.
func mergeForward(manual, prev Record) Record {
	out := manual
	if len(out.Props) == 0 {
		out.Props = prev.Props
	}
	if len(out.Slots) == 0 {
		out.Slots = prev.Slots
	}
	if len(out.Examples) == 0 {
		out.Examples = prev.Examples
	}
	if out.Description == "" {
		out.Description = prev.Description
	}
	if out.Category == CategoryOther && prev.Category != CategoryOther {
		out.Category = prev.Category
	}
	return out
}

// RebuildFrom constructs a registry directly from already-resolved
// records, used when loading a cached session. The caller guarantees the
// records were produced by Resolve.
func RebuildFrom(records []Record, builtAt time.Time) *Registry {
	reg := &Registry{
		records: make(map[string]Record, len(records)),
		nameSet: make(map[string]struct{}, len(records)),
		builtAt: builtAt,
	}
	for _, r := range records {
		reg.records[r.Name] = r
		reg.nameSet[r.Name] = struct{}{}
		reg.names = append(reg.names, r.Name)
	}
	sort.Strings(reg.names)
	return reg
}

// Get returns the record for a name.
func (r *Registry) Get(name string) (Record, bool) {
	rec, ok := r.records[name]
	return rec, ok
}

// Has is the O(1) existence check against the authoritative set.
func (r *Registry) Has(name string) bool {
	_, ok := r.nameSet[name]
	return ok
}

// Names returns the sorted resolved names. Callers must not mutate the
// returned slice.
func (r *Registry) Names() []string {
	return r.names
}

// Records returns all resolved records in name order.
func (r *Registry) Records() []Record {
	out := make([]Record, 0, len(r.names))
	for _, name := range r.names {
		out = append(out, r.records[name])
	}
	return out
}

// Len returns the number of resolved symbols.
func (r *Registry) Len() int {
	return len(r.records)
}

// BuiltAt returns when this registry was resolved.
func (r *Registry) BuiltAt() time.Time {
	return r.builtAt
}

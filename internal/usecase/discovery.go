package usecase

import (
	"sort"
	"strings"
)

// discoveryRegistry accumulates fully qualified nested-collection paths
// ("parent/doc/child", possibly deeper) discovered while walking documents.
// It is owned by a single export run and passed explicitly; it is never
// persisted, so discovery is redone on resume while the checkpoint still
// prevents re-exporting completed top-level collections.
type discoveryRegistry struct {
	order   []string
	seen    map[string]struct{}
	visited map[string]struct{}
}

func newDiscoveryRegistry() *discoveryRegistry {
	return &discoveryRegistry{
		seen:    map[string]struct{}{},
		visited: map[string]struct{}{},
	}
}

// Add records paths, ignoring duplicates.
func (r *discoveryRegistry) Add(paths ...string) {
	for _, p := range paths {
		if _, ok := r.seen[p]; ok {
			continue
		}
		r.seen[p] = struct{}{}
		r.order = append(r.order, p)
	}
}

// NextPending returns an unvisited path whose first segment is the given
// top-level collection ID. Paths registered during nested exports are
// picked up too, so nesting of arbitrary depth is reached.
func (r *discoveryRegistry) NextPending(topLevelID string) (string, bool) {
	for _, p := range r.order {
		if _, done := r.visited[p]; done {
			continue
		}
		if root, _, _ := strings.Cut(p, "/"); root == topLevelID {
			return p, true
		}
	}
	return "", false
}

// MarkVisited marks a path as exported so NextPending never yields it
// again. This is what guarantees termination of the queue phase.
func (r *discoveryRegistry) MarkVisited(path string) {
	r.visited[path] = struct{}{}
}

// Paths returns all discovered paths, sorted for deterministic output.
func (r *discoveryRegistry) Paths() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	sort.Strings(out)
	return out
}

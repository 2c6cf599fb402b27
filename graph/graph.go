package graph

import (
	"fmt"
	"sort"
)

// Successors returns the ordered successors of id.
// An ID absent from the graph has no outgoing edges and yields an empty list.
// The returned slice belongs to the graph and must not be modified.
func (g Graph) Successors(id string) []string {
	if succ, ok := g[id]; ok {
		return succ
	}

	return nil
}

// HasNode reports whether id appears in g, either as a key or as a successor.
func (g Graph) HasNode(id string) bool {
	if _, ok := g[id]; ok {
		return true
	}
	for _, succ := range g {
		for _, s := range succ {
			if s == id {
				return true
			}
		}
	}

	return false
}

// HasEdge reports whether from → to is an edge of g.
func (g Graph) HasEdge(from, to string) bool {
	for _, s := range g.Successors(from) {
		if s == to {
			return true
		}
	}

	return false
}

// Nodes returns every node ID of g in sorted order, including IDs that only
// appear as successors.
func (g Graph) Nodes() []string {
	seen := make(map[string]struct{}, len(g))
	for id, succ := range g {
		seen[id] = struct{}{}
		for _, s := range succ {
			seen[s] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// EdgeCount returns the number of adjacency entries, counting duplicates.
func (g Graph) EdgeCount() int {
	n := 0
	for _, succ := range g {
		n += len(succ)
	}

	return n
}

// ValidPath checks that p starts at start, ends at goal and that every
// consecutive pair of nodes is an edge of g.
func ValidPath(g Graph, p Path, start, goal string) error {
	if len(p) == 0 {
		return ErrEmptyPath
	}
	if p[0] != start || p.Last() != goal {
		return fmt.Errorf("%w: got %s..%s, want %s..%s", ErrWrongEndpoints, p[0], p.Last(), start, goal)
	}
	for i := 1; i < len(p); i++ {
		if !g.HasEdge(p[i-1], p[i]) {
			return fmt.Errorf("%w: %s -> %s", ErrMissingEdge, p[i-1], p[i])
		}
	}

	return nil
}

package graph

import (
	"errors"
	"strings"
)

// Sentinel errors for path validation and graph loading.
var (
	// ErrEmptyPath is returned when a path contains no nodes.
	ErrEmptyPath = errors.New("graph: path is empty")

	// ErrWrongEndpoints is returned when a path does not run from start to goal.
	ErrWrongEndpoints = errors.New("graph: path has wrong endpoints")

	// ErrMissingEdge is returned when consecutive path nodes are not adjacent.
	ErrMissingEdge = errors.New("graph: path uses a missing edge")

	// ErrUnknownFormat is returned for unsupported graph file formats.
	ErrUnknownFormat = errors.New("graph: unknown format")

	// ErrEmptyNodeID is returned when a decoded graph names an empty node.
	ErrEmptyNodeID = errors.New("graph: empty node ID")
)

// Graph maps each node ID to its ordered successor IDs.
// Adjacency order is significant: engines expand successors in this order.
// A Graph is never mutated by a search.
type Graph map[string][]string

// Path is an ordered sequence of node IDs, start to current node inclusive.
// Treat a Path as immutable; grow it only through Extend.
type Path []string

// NewPath returns the single-node path [start].
func NewPath(start string) Path {
	return Path{start}
}

// Extend returns a new path equal to p followed by id.
// The result never shares its backing array with p.
func (p Path) Extend(id string) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)

	return append(out, id)
}

// Len reports the number of nodes in the path.
func (p Path) Len() int { return len(p) }

// Edges reports the number of edges in the path (Len-1, or 0 when empty).
func (p Path) Edges() int {
	if len(p) == 0 {
		return 0
	}

	return len(p) - 1
}

// Last returns the final node of the path, or "" for an empty path.
func (p Path) Last() string {
	if len(p) == 0 {
		return ""
	}

	return p[len(p)-1]
}

// Pretty renders the path as "A -> B -> D".
func (p Path) Pretty() string {
	return strings.Join(p, " -> ")
}

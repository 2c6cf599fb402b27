// Package graph defines the read-only adjacency model shared by every search
// engine in srsearch, together with immutable paths, path validation,
// deterministic fixture builders and file loaders.
//
// What
//
//   - Graph: node ID → ordered list of successor IDs (outgoing edges).
//     Unweighted and directed. Duplicate edges and self-loops are allowed.
//   - Path: ordered node IDs from the start to some discovered node, inclusive.
//   - ValidPath: checks a returned path against the graph it came from.
//   - Chain, BinaryTree, Star: deterministic graphs for tests and benchmarks.
//   - Decode, LoadFile: read a Graph from JSON, YAML or TOML.
//
// Missing nodes
//
//	A node that has no key in the Graph is a dead end, not an error:
//	Successors returns an empty list. Search engines therefore report
//	an unreachable goal instead of failing on malformed input.
//
// Paths never alias
//
//	Path.Extend always copies into a fresh backing array, so two branches
//	grown from the same prefix can never overwrite each other's tail.
//
// Usage
//
//	g := graph.Graph{
//	    "A": {"B", "C"},
//	    "B": {"D"},
//	    "C": {"D"},
//	    "D": {},
//	}
//	p := graph.NewPath("A").Extend("B").Extend("D")
//	if err := graph.ValidPath(g, p, "A", "D"); err != nil {
//	    // handle ErrEmptyPath, ErrWrongEndpoints or ErrMissingEdge
//	}
//
// Errors
//
//   - ErrEmptyPath       the path has no nodes.
//   - ErrWrongEndpoints  the path does not start at start or end at goal.
//   - ErrMissingEdge     two consecutive nodes are not joined by an edge.
//   - ErrUnknownFormat   LoadFile/Decode got an unsupported file format.
//   - ErrEmptyNodeID     a decoded graph contains an empty node ID.
package graph

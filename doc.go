// Package srsearch is a small toolkit for finding a path between two nodes of
// a directed graph when you do not know up front whether the goal sits deep
// down one branch or close to the start.
//
// 🚀 What is in here?
//
//	• graph/  adjacency-list Graph, Path values, loaders for JSON/YAML/TOML
//	• step/   the tagged Result every engine returns from a single step
//	• dfs/    resumable depth-first engine with a depth threshold
//	• bfs/    resumable breadth-first engine with a memory threshold
//	• srs/    self-reflective controller alternating between the two
//
// ✨ How does the hybrid work?
//
// The controller starts depth-first. When the current DFS path grows past
// the depth threshold it hands over to BFS; when the BFS queue grows past
// the memory threshold it hands back. Each engine keeps its own frontier
// and visited set, so a resumed engine continues exactly where it stopped.
//
//	        A
//	       / \
//	      B   C      s, _ := srs.New(g, "A", "D")
//	       \ /       s.Search() → [A B D], true
//	        D
//
// The srsearch command (cmd/srsearch) wraps the engines with config files,
// logging, Prometheus metrics and a side-by-side compare mode.
//
//	go install github.com/katalvlaran/srsearch/cmd/srsearch@latest
package srsearch

// Package bfs provides a step-wise, queue-based breadth-first search over a
// graph.Graph, looking for a path from a start node to a goal node.
//
// What
//
//   - New(g, start, goal, opts...) builds an Engine whose queue holds (start, [start]).
//   - Engine.Step() dequeues exactly one (node, path) item and returns a
//     step.Result: Pending, Found(path) or Switch.
//   - Engine.Metrics() reports NodesExplored and the live QueueSize.
//   - Search(g, start, goal, opts...) drives an Engine alone to completion.
//
// Why
//
//   - Over an unweighted graph the first path to reach the goal has the fewest
//     edges among the paths this engine can discover.
//   - The single-step form lets package srs interleave BFS with DFS without
//     losing either engine's progress.
//
// Memory threshold
//
//	After each dequeue the engine compares the remaining queue length with
//	MemoryThreshold (default 50). If the queue is longer, Step returns a
//	Switch signal and the dequeued node's successors are discarded for good.
//
// Determinism
//
//	Successors are enqueued in adjacency order and nothing is randomized, so
//	identical inputs yield identical paths and metrics.
//
// Complexity (V = nodes, E = adjacency entries, L = longest path)
//
//   - Time:   O(V + E) steps, each O(L) for path copying.
//   - Memory: O(E · L) for queued paths.
//
// Usage
//
//	path, ok, err := bfs.Search(g, "A", "D", bfs.WithMemoryThreshold(1000))
//	if err != nil {
//	    // ErrOptionViolation
//	}
//	if !ok {
//	    // goal unreachable from start
//	}
//
// Options
//
//   - DefaultOptions():         MemoryThreshold 50, no-op hook.
//   - WithMemoryThreshold(m):   switch threshold (m >= 0).
//   - WithOnVisit(fn):          hook on every dequeue.
//
// Errors
//
//   - ErrOptionViolation  if an Option is invalid (e.g. negative threshold).
package bfs

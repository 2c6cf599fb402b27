// Package dfs implements a step-wise, stack-based depth-first search over a
// graph.Graph, looking for a path from a start node to a goal node.
//
// What:
//
//   - New(g, start, goal, opts...) builds an Engine whose stack holds (start, [start]).
//   - Engine.Step() pops exactly one (node, path) frame and returns a step.Result:
//     Pending, Found(path) or Switch.
//   - Engine.Metrics() reports NodesExplored and MaxDepth (longest popped path).
//   - Search(g, start, goal, opts...) drives an Engine alone until it finds the
//     goal or runs out of frames.
//
// Ordering:
//
//	Successors are pushed in reverse adjacency order, so they are popped in the
//	original left-to-right order. For {A:[B,C], B:[D], C:[D]} from A to D the
//	engine returns [A B D].
//
// Depth threshold:
//
//	When a popped path has more than DepthThreshold nodes (default 10), Step
//	returns a Switch signal without expanding that node. Its successors are
//	dropped, not deferred: a later Step resumes from whatever remains on the
//	stack. The hybrid controller in package srs uses this signal to hand
//	control to BFS.
//
// Visited set:
//
//	A node is marked visited when popped. Successors already visited are not
//	pushed, but a node may sit on the stack more than once until it is first
//	popped; later copies are still popped and counted. Self-loops and
//	duplicate edges therefore never prevent termination.
//
// Complexity:
//
//   - Time:   O(V + E) steps in the worst case, each O(L) for path copying.
//   - Memory: O(E · L) for stacked paths, where L is the longest path.
//
// Options:
//
//   - WithDepthThreshold(d)  switch threshold (d >= 0).
//   - WithOnVisit(fn)        hook called on every pop with node and path length.
//
// Errors:
//
//   - ErrOptionViolation  for a negative threshold.
//
// An unreachable goal is not an error: Search returns (nil, false, nil).
package dfs

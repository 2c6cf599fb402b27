// Package srs implements Self-Reflective Search: a single-threaded controller
// that interleaves a depth-first engine and a breadth-first engine, moving
// control between them whenever the active engine exceeds its resource
// threshold.
//
// State machine
//
//	RUNNING-DFS ──Switch──▶ RUNNING-BFS
//	     ▲                       │
//	     └────────Switch─────────┘
//
//	Initial state RUNNING-DFS. Terminal states FOUND(path) and EXHAUSTED.
//
// Each iteration delegates exactly one step to the active engine:
//
//   - Switch:  flip the mode and keep looping.
//   - Found:   return the path immediately.
//   - Pending: fall through to the termination check.
//
// After every step that did not find a path, the controller stops with "not
// found" if both the DFS stack and the BFS queue are empty.
//
// Cooperative, not parallel
//
//	Both engines keep their own frontier, visited set and counters for the
//	whole search. Switching never discards work: switching back resumes the
//	other engine exactly where it stopped. Visited sets are never shared, so
//	a node explored by DFS may be explored again by BFS.
//
// Hand-off on exhaustion
//
//	If the active engine's frontier is empty while the other engine still
//	has work, control passes to the other engine before the step runs.
//	Without this, a DFS that drains its component without ever exceeding the
//	depth threshold would leave the controller stepping an empty stack
//	forever while BFS still holds the start node.
//
// Thresholds
//
//   - DepthThreshold (default 10): DFS switches when a popped path has more nodes.
//   - MemoryThreshold (default 50): BFS switches when more items remain queued.
//
// Usage
//
//	s, err := srs.New(g, "A", "Q",
//	    srs.WithDepthThreshold(10),
//	    srs.WithMemoryThreshold(50),
//	    srs.WithLogger(logger),
//	)
//	if err != nil {
//	    // ErrOptionViolation
//	}
//	path, ok := s.Search()
//	m := s.Metrics() // m.DFS, m.BFS, m.Strategy
//
// Errors
//
//   - ErrOptionViolation  negative thresholds.
//   - ctx.Err()           from SearchContext when the context is done.
//
// An unreachable goal is a normal result, reported as (nil, false).
package srs

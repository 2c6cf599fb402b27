package dfs

import (
	"github.com/katalvlaran/srsearch/graph"
	"github.com/katalvlaran/srsearch/step"
)

// Engine is a stack-based depth-first search advanced one node per Step.
// It owns its stack, visited set and counters; nothing is shared with other engines.
// An Engine is not safe for concurrent use.
type Engine struct {
	graph   graph.Graph
	start   string
	goal    string
	opts    Options
	stack   []frame
	visited map[string]bool
	metrics Metrics
}

var _ step.Engine = (*Engine)(nil)

// New returns an Engine whose stack holds only (start, [start]).
// A start absent from g is a dead end, not an error.
// Returns ErrOptionViolation for invalid options.
func New(g graph.Graph, start, goal string, opts ...Option) (*Engine, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Engine{
		graph:   g,
		start:   start,
		goal:    goal,
		opts:    o,
		stack:   []frame{{node: start, path: graph.NewPath(start)}},
		visited: make(map[string]bool),
	}, nil
}

// Step pops the most recently pushed item and processes it:
//
//  1. empty stack → Pending, nothing changes
//  2. mark visited, count it, track the longest path
//  3. goal → Found(path); the path is not guaranteed shortest
//  4. path longer than DepthThreshold → Switch; successors of this node are dropped
//  5. otherwise push unvisited successors in reverse adjacency order so they
//     pop left to right
func (e *Engine) Step() step.Result {
	if len(e.stack) == 0 {
		return step.None()
	}

	top := e.pop()
	e.visited[top.node] = true
	e.metrics.NodesExplored++
	if top.path.Len() > e.metrics.MaxDepth {
		e.metrics.MaxDepth = top.path.Len()
	}
	e.opts.OnVisit(top.node, top.path.Len())

	if top.node == e.goal {
		return step.FoundPath(top.path)
	}
	if top.path.Len() > e.opts.DepthThreshold {
		return step.SwitchSignal()
	}

	succ := e.graph.Successors(top.node)
	for i := len(succ) - 1; i >= 0; i-- {
		if !e.visited[succ[i]] {
			e.stack = append(e.stack, frame{node: succ[i], path: top.path.Extend(succ[i])})
		}
	}

	return step.None()
}

// pop removes and returns the top frame.
func (e *Engine) pop() frame {
	last := len(e.stack) - 1
	top := e.stack[last]
	e.stack[last] = frame{}
	e.stack = e.stack[:last]

	return top
}

// Exhausted reports whether the stack is empty.
func (e *Engine) Exhausted() bool { return len(e.stack) == 0 }

// Explored returns the number of popped items.
func (e *Engine) Explored() int { return e.metrics.NodesExplored }

// Frontier returns the current stack depth.
func (e *Engine) Frontier() int { return len(e.stack) }

// Visited reports whether id has been popped by this engine.
func (e *Engine) Visited(id string) bool { return e.visited[id] }

// Metrics returns a snapshot of the engine's counters.
func (e *Engine) Metrics() Metrics { return e.metrics }

// Search drives a standalone Engine until the goal is found or the stack
// empties. With no partner engine, switch signals are absorbed: the
// offending node's successors are dropped and the search continues with
// whatever remains on the stack.
//
// Returns (path, true, nil) on success, (nil, false, nil) when the goal is
// unreachable, or ErrOptionViolation for bad options.
func Search(g graph.Graph, start, goal string, opts ...Option) (graph.Path, bool, error) {
	e, err := New(g, start, goal, opts...)
	if err != nil {
		return nil, false, err
	}
	for !e.Exhausted() {
		if r := e.Step(); r.IsFound() {
			return r.Path, true, nil
		}
	}

	return nil, false, nil
}

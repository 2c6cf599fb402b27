package bfs

import (
	"github.com/katalvlaran/srsearch/graph"
	"github.com/katalvlaran/srsearch/step"
)

// Engine encapsulates mutable BFS state: a FIFO queue of (node, path) items,
// a private visited set and counters. It is not safe for concurrent use.
type Engine struct {
	graph   graph.Graph
	start   string
	goal    string
	opts    BFSOptions
	queue   []queueItem
	visited map[string]bool
	metrics Metrics
}

var _ step.Engine = (*Engine)(nil)

// New returns an Engine whose queue holds only (start, [start]).
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

	e := &Engine{
		graph:   g,
		start:   start,
		goal:    goal,
		opts:    o,
		visited: make(map[string]bool),
	}
	e.enqueue(start, graph.NewPath(start))

	return e, nil
}

// Step dequeues the earliest item and processes it:
//
//  1. empty queue → Pending, nothing changes
//  2. mark visited and count it
//  3. goal → Found(path), minimal in edges among paths this engine can see
//  4. more than MemoryThreshold items still queued → Switch; the dequeued
//     node's successors are dropped
//  5. otherwise enqueue unvisited successors in adjacency order
func (e *Engine) Step() step.Result {
	if len(e.queue) == 0 {
		return step.None()
	}

	item := e.dequeue()
	e.visited[item.id] = true
	e.metrics.NodesExplored++
	e.opts.OnVisit(item.id, item.path.Len())

	if item.id == e.goal {
		return step.FoundPath(item.path)
	}
	if len(e.queue) > e.opts.MemoryThreshold {
		return step.SwitchSignal()
	}

	for _, nbr := range e.graph.Successors(item.id) {
		if !e.visited[nbr] {
			e.enqueue(nbr, item.path.Extend(nbr))
		}
	}

	return step.None()
}

// enqueue appends (id, path) to the back of the queue.
func (e *Engine) enqueue(id string, path graph.Path) {
	e.queue = append(e.queue, queueItem{id: id, path: path})
}

// dequeue pops the first item.
func (e *Engine) dequeue() queueItem {
	item := e.queue[0]
	e.queue[0] = queueItem{}
	e.queue = e.queue[1:]

	return item
}

// Exhausted reports whether the queue is empty.
func (e *Engine) Exhausted() bool { return len(e.queue) == 0 }

// Explored returns the number of dequeued items.
func (e *Engine) Explored() int { return e.metrics.NodesExplored }

// Frontier returns the current queue length.
func (e *Engine) Frontier() int { return len(e.queue) }

// Visited reports whether id has been dequeued by this engine.
func (e *Engine) Visited(id string) bool { return e.visited[id] }

// Metrics returns a snapshot of the engine's counters; QueueSize is read live.
func (e *Engine) Metrics() Metrics {
	m := e.metrics
	m.QueueSize = len(e.queue)

	return m
}

// Search drives a standalone Engine until the goal is found or the queue
// empties. Switch signals are absorbed: the offending node's successors are
// dropped and the search continues with the remaining queue. With a
// MemoryThreshold that never triggers, the returned path has the minimum
// number of edges.
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

// Package bfs provides tunable options, metrics and error definitions
// for the step-wise breadth-first search engine.
package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/srsearch/graph"
)

// DefaultMemoryThreshold is the queue length above which the engine emits a
// switch signal instead of expanding.
const DefaultMemoryThreshold = 50

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("bfs: invalid option supplied")

// Option configures an Engine via functional arguments.
// If an Option is invalid (e.g. negative threshold), it is recorded
// internally and surfaced as ErrOptionViolation by New.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks for the engine.
type BFSOptions struct {
	// MemoryThreshold bounds the queue length checked after each dequeue.
	MemoryThreshold int

	// OnVisit is called for every dequeued item with its node and path length.
	OnVisit func(id string, depth int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - MemoryThreshold = DefaultMemoryThreshold
//   - no-op OnVisit hook
func DefaultOptions() BFSOptions {
	return BFSOptions{
		MemoryThreshold: DefaultMemoryThreshold,
		OnVisit:         func(string, int) {},
	}
}

// WithMemoryThreshold sets the queue-length switch threshold.
//
//	m >= 0: switch once more than m items remain queued after a dequeue
//	m < 0:  invalid option → ErrOptionViolation
func WithMemoryThreshold(m int) Option {
	return func(o *BFSOptions) {
		if m < 0 {
			o.err = fmt.Errorf("%w: MemoryThreshold cannot be negative (%d)", ErrOptionViolation, m)
			return
		}
		o.MemoryThreshold = m
	}
}

// WithOnVisit registers a callback to run on every dequeue.
func WithOnVisit(fn func(id string, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Metrics is a snapshot of the engine's counters.
type Metrics struct {
	// NodesExplored counts Step calls that dequeued an item.
	NodesExplored int `json:"nodes_explored"`

	// QueueSize is the current number of queued items.
	QueueSize int `json:"queue_size"`
}

// queueItem pairs a node ID with the path that reached it.
type queueItem struct {
	id   string
	path graph.Path
}

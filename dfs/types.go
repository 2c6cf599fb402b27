// Package dfs defines options, metrics and errors for the step-wise
// depth-first search engine.
package dfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/srsearch/graph"
)

// DefaultDepthThreshold is the path length (in nodes) above which the engine
// emits a switch signal instead of expanding.
const DefaultDepthThreshold = 10

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("dfs: invalid option supplied")

// Option configures an Engine via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds the engine's tunables and hooks.
type Options struct {
	// DepthThreshold bounds the path length before a switch signal.
	DepthThreshold int

	// OnVisit is called for every popped item with its node and path length.
	OnVisit func(id string, depth int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with DefaultDepthThreshold and a no-op hook.
func DefaultOptions() Options {
	return Options{
		DepthThreshold: DefaultDepthThreshold,
		OnVisit:        func(string, int) {},
	}
}

// WithDepthThreshold sets the switch threshold.
//
//	d >= 0: switch once a popped path has more than d nodes
//	d < 0:  invalid option → ErrOptionViolation
func WithDepthThreshold(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: DepthThreshold cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.DepthThreshold = d
	}
}

// WithOnVisit registers a hook invoked on every pop.
func WithOnVisit(fn func(id string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Metrics is a snapshot of the engine's counters.
type Metrics struct {
	// NodesExplored counts Step calls that popped a frontier item.
	NodesExplored int `json:"nodes_explored"`

	// MaxDepth is the longest popped path, in nodes.
	MaxDepth int `json:"max_depth"`
}

// frame pairs a node with the path that reached it.
type frame struct {
	node string
	path graph.Path
}

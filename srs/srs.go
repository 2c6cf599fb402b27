package srs

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/srsearch/bfs"
	"github.com/katalvlaran/srsearch/dfs"
	"github.com/katalvlaran/srsearch/graph"
	"github.com/katalvlaran/srsearch/step"
)

// Searcher is the self-reflective controller. It owns one DFS engine and one
// BFS engine, built independently from the same graph, start and goal, and
// moves control between them. A Searcher serves a single search request and
// is not safe for concurrent use.
type Searcher struct {
	dfs  *dfs.Engine
	bfs  *bfs.Engine
	mode Mode
	opts Options
	log  *log.Logger

	switches int
	steps    int

	done  bool
	path  graph.Path
	found bool
}

var _ step.Engine = (*Searcher)(nil)

// New builds a Searcher in ModeDFS.
// Returns ErrOptionViolation for invalid options.
func New(g graph.Graph, start, goal string, opts ...Option) (*Searcher, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	d, err := dfs.New(g, start, goal, dfs.WithDepthThreshold(o.DepthThreshold))
	if err != nil {
		return nil, err
	}
	b, err := bfs.New(g, start, goal, bfs.WithMemoryThreshold(o.MemoryThreshold))
	if err != nil {
		return nil, err
	}

	return &Searcher{
		dfs:  d,
		bfs:  b,
		mode: ModeDFS,
		opts: o,
		log:  o.Logger.With("start", start, "goal", goal),
	}, nil
}

// engine returns the engine for m.
func (s *Searcher) engine(m Mode) step.Engine {
	if m == ModeBFS {
		return s.bfs
	}

	return s.dfs
}

// Step runs one controller iteration and returns the active engine's result.
//
// If the active engine has nothing left while the other still has work,
// control is handed over first; otherwise the search would spin on an empty
// frontier forever. A Switch result flips the mode for the next iteration.
// When both frontiers are empty Step returns Pending and does nothing.
func (s *Searcher) Step() step.Result {
	if s.Exhausted() {
		return step.None()
	}
	if s.engine(s.mode).Exhausted() {
		s.log.Debug("frontier empty, handing over",
			"from", s.mode.String(), "to", s.mode.Other().String(), "step", s.steps)
		s.mode = s.mode.Other()
	}

	s.steps++
	r := s.engine(s.mode).Step()
	if r.IsSwitch() {
		from := s.mode
		s.mode = from.Other()
		s.switches++
		s.log.Debug("strategy switch",
			"from", from.String(), "to", s.mode.String(), "step", s.steps,
			"dfs_explored", s.dfs.Explored(), "bfs_explored", s.bfs.Explored())
		s.opts.OnSwitch(from, s.mode)
	}

	return r
}

// Search runs the hybrid loop until a path is found or both engines are
// exhausted. An unreachable goal yields (nil, false). Once finished, later
// calls return the same answer.
func (s *Searcher) Search() (graph.Path, bool) {
	p, ok, _ := s.SearchContext(context.Background())

	return p, ok
}

// SearchContext is Search with a cancellation check between steps.
// It returns ctx.Err() if ctx is done before the search finishes; the
// Searcher keeps its state and may be resumed with a fresh context.
func (s *Searcher) SearchContext(ctx context.Context) (graph.Path, bool, error) {
	if s.done {
		return s.path, s.found, nil
	}
	for {
		if err := ctx.Err(); err != nil {
			return nil, false, err
		}

		r := s.Step()
		if r.IsFound() {
			s.finish(r.Path, true)
			s.log.Debug("path found", "strategy", s.mode.String(), "length", r.Path.Len(), "steps", s.steps)

			return r.Path, true, nil
		}
		if s.Exhausted() {
			s.finish(nil, false)
			s.log.Debug("goal unreachable", "steps", s.steps)

			return nil, false, nil
		}
	}
}

func (s *Searcher) finish(p graph.Path, found bool) {
	s.done, s.path, s.found = true, p, found
}

// Mode returns the engine currently in control.
func (s *Searcher) Mode() Mode { return s.mode }

// Exhausted reports whether both the DFS stack and the BFS queue are empty.
func (s *Searcher) Exhausted() bool {
	return s.dfs.Exhausted() && s.bfs.Exhausted()
}

// Explored returns the total number of frontier items popped by both engines.
func (s *Searcher) Explored() int {
	return s.dfs.Explored() + s.bfs.Explored()
}

// Metrics returns both engines' metrics and the active mode.
func (s *Searcher) Metrics() Metrics {
	return Metrics{
		DFS:      s.dfs.Metrics(),
		BFS:      s.bfs.Metrics(),
		Strategy: s.mode,
		Switches: s.switches,
		Steps:    s.steps,
	}
}

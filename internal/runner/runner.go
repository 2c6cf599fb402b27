// Package runner executes timed searches for the command-line harness and
// feeds their outcomes to an observability.Recorder.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/katalvlaran/srsearch/bfs"
	"github.com/katalvlaran/srsearch/dfs"
	"github.com/katalvlaran/srsearch/graph"
	"github.com/katalvlaran/srsearch/internal/config"
	"github.com/katalvlaran/srsearch/internal/observability"
	"github.com/katalvlaran/srsearch/srs"
	"github.com/katalvlaran/srsearch/step"
)

// ErrUnknownStrategy is returned for a strategy other than dfs, bfs or srs.
var ErrUnknownStrategy = errors.New("runner: unknown strategy")

// Request describes one search.
type Request struct {
	Graph           graph.Graph
	Start           string
	Goal            string
	Strategy        string
	DepthThreshold  int
	MemoryThreshold int
}

// Report is the outcome of one timed search. Engine metrics are present only
// for the engines the strategy used.
type Report struct {
	RunID    string        `json:"run_id"`
	Strategy string        `json:"strategy"`
	Start    string        `json:"start"`
	Goal     string        `json:"goal"`
	Found    bool          `json:"found"`
	Path     graph.Path    `json:"path"`
	Duration time.Duration `json:"duration_ns"`
	DFS      *dfs.Metrics  `json:"dfs,omitempty"`
	BFS      *bfs.Metrics  `json:"bfs,omitempty"`
	Active   string        `json:"current_strategy,omitempty"`
	Switches int           `json:"switches,omitempty"`
}

// Runner runs searches and records them.
type Runner struct {
	rec    *observability.Recorder
	logger *log.Logger
	newID  func() string
}

// New returns a Runner. A nil recorder gets a private one; a nil logger
// discards output.
func New(rec *observability.Recorder, logger *log.Logger) *Runner {
	if rec == nil {
		rec = observability.NewRecorder()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Runner{rec: rec, logger: logger, newID: uuid.NewString}
}

// Recorder returns the recorder fed by this Runner.
func (r *Runner) Recorder() *observability.Recorder { return r.rec }

// Run executes req once and returns its report.
func (r *Runner) Run(ctx context.Context, req Request) (Report, error) {
	rep := Report{
		RunID:    r.newID(),
		Strategy: req.Strategy,
		Start:    req.Start,
		Goal:     req.Goal,
	}
	logger := r.logger.With("run", shortID(rep.RunID), "strategy", req.Strategy)
	logger.Debug("search started", "start", req.Start, "goal", req.Goal,
		"nodes", len(req.Graph), "edges", req.Graph.EdgeCount())

	began := time.Now()
	var err error
	switch req.Strategy {
	case config.StrategyDFS:
		err = r.runDFS(ctx, req, &rep)
	case config.StrategyBFS:
		err = r.runBFS(ctx, req, &rep)
	case config.StrategySRS:
		err = r.runSRS(ctx, req, &rep, logger)
	default:
		return rep, fmt.Errorf("%w: %q", ErrUnknownStrategy, req.Strategy)
	}
	rep.Duration = time.Since(began)
	if err != nil {
		return rep, err
	}

	r.rec.ObserveSearch(req.Strategy, rep.Found, rep.Duration)
	logger.Debug("search finished", "found", rep.Found, "length", rep.Path.Len(), "elapsed", rep.Duration)

	return rep, nil
}

// Compare runs DFS alone, BFS alone and then SRS on the same request.
func (r *Runner) Compare(ctx context.Context, req Request) ([]Report, error) {
	reports := make([]Report, 0, 3)
	for _, strategy := range []string{config.StrategyDFS, config.StrategyBFS, config.StrategySRS} {
		req.Strategy = strategy
		rep, err := r.Run(ctx, req)
		if err != nil {
			return reports, err
		}
		reports = append(reports, rep)
	}

	return reports, nil
}

func (r *Runner) runDFS(ctx context.Context, req Request, rep *Report) error {
	e, err := dfs.New(req.Graph, req.Start, req.Goal, dfs.WithDepthThreshold(req.DepthThreshold))
	if err != nil {
		return err
	}
	rep.Path, rep.Found, err = drive(ctx, e)
	m := e.Metrics()
	rep.DFS = &m
	r.rec.AddExplored(config.StrategyDFS, m.NodesExplored)

	return err
}

func (r *Runner) runBFS(ctx context.Context, req Request, rep *Report) error {
	e, err := bfs.New(req.Graph, req.Start, req.Goal, bfs.WithMemoryThreshold(req.MemoryThreshold))
	if err != nil {
		return err
	}
	rep.Path, rep.Found, err = drive(ctx, e)
	m := e.Metrics()
	rep.BFS = &m
	r.rec.AddExplored(config.StrategyBFS, m.NodesExplored)

	return err
}

func (r *Runner) runSRS(ctx context.Context, req Request, rep *Report, logger *log.Logger) error {
	s, err := srs.New(req.Graph, req.Start, req.Goal,
		srs.WithDepthThreshold(req.DepthThreshold),
		srs.WithMemoryThreshold(req.MemoryThreshold),
		srs.WithLogger(logger),
	)
	if err != nil {
		return err
	}
	rep.Path, rep.Found, err = s.SearchContext(ctx)
	m := s.Metrics()
	rep.DFS, rep.BFS = &m.DFS, &m.BFS
	rep.Active = m.Strategy.String()
	rep.Switches = m.Switches
	r.rec.AddExplored(config.StrategyDFS, m.DFS.NodesExplored)
	r.rec.AddExplored(config.StrategyBFS, m.BFS.NodesExplored)
	r.rec.AddSwitches(m.Switches)

	return err
}

// shortID trims a UUID to its first block for log lines.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}

	return id
}

// drive steps a standalone engine until it finds the goal or drains its
// frontier. Switch signals are absorbed since there is no partner engine.
func drive(ctx context.Context, e step.Engine) (graph.Path, bool, error) {
	for !e.Exhausted() {
		if err := ctx.Err(); err != nil {
			return nil, false, err
		}
		if res := e.Step(); res.IsFound() {
			return res.Path, true, nil
		}
	}

	return nil, false, nil
}

package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/srsearch/graph"
	"github.com/katalvlaran/srsearch/internal/config"
	"github.com/katalvlaran/srsearch/internal/runner"
)

// errMissingInput is returned when the graph, start or goal is set neither
// by flag nor by config.
var errMissingInput = errors.New("missing input")

// inputFlags are the flags shared by search and compare. Flags left unset
// keep the value from the config file.
type inputFlags struct {
	graph           string
	start           string
	goal            string
	depthThreshold  int
	memoryThreshold int
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.graph, "graph", "g", "", "graph file (.json, .yaml, .yml or .toml)")
	cmd.Flags().StringVarP(&f.start, "start", "s", "", "start node ID")
	cmd.Flags().StringVarP(&f.goal, "goal", "t", "", "goal node ID")
	cmd.Flags().IntVar(&f.depthThreshold, "depth-threshold", 0, "DFS path length that triggers a switch to BFS")
	cmd.Flags().IntVar(&f.memoryThreshold, "memory-threshold", 0, "BFS queue size that triggers a switch to DFS")
}

// merge overlays the flags the user set on cfg.
func (f *inputFlags) merge(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("graph") {
		cfg.Graph = f.graph
	}
	if cmd.Flags().Changed("start") {
		cfg.Start = f.start
	}
	if cmd.Flags().Changed("goal") {
		cfg.Goal = f.goal
	}
	if cmd.Flags().Changed("depth-threshold") {
		cfg.Thresholds.Depth = f.depthThreshold
	}
	if cmd.Flags().Changed("memory-threshold") {
		cfg.Thresholds.Memory = f.memoryThreshold
	}
}

// buildRequest validates cfg and loads its graph.
func buildRequest(cfg *config.Config) (runner.Request, error) {
	if err := cfg.Validate(); err != nil {
		return runner.Request{}, err
	}
	switch {
	case cfg.Graph == "":
		return runner.Request{}, fmt.Errorf("%w: --graph", errMissingInput)
	case cfg.Start == "":
		return runner.Request{}, fmt.Errorf("%w: --start", errMissingInput)
	case cfg.Goal == "":
		return runner.Request{}, fmt.Errorf("%w: --goal", errMissingInput)
	}

	g, err := graph.LoadFile(cfg.Graph)
	if err != nil {
		return runner.Request{}, err
	}

	return runner.Request{
		Graph:           g,
		Start:           cfg.Start,
		Goal:            cfg.Goal,
		Strategy:        cfg.Strategy,
		DepthThreshold:  cfg.Thresholds.Depth,
		MemoryThreshold: cfg.Thresholds.Memory,
	}, nil
}

type searchOptions struct {
	inputFlags
	strategy string
	json     bool
}

func newSearchCmd(g *globalOptions) *cobra.Command {
	opts := searchOptions{}

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Find a path from start to goal with one strategy",
		Example: `  srsearch search -g graph.yaml -s A -t D
  srsearch search -g graph.json -s A -t D --strategy bfs --json
  srsearch search -c run.toml --depth-threshold 4`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			cfg := *g.cfg
			opts.merge(cmd, &cfg)
			if cmd.Flags().Changed("strategy") {
				cfg.Strategy = opts.strategy
			}

			prog := newProgress(logger)
			req, err := buildRequest(&cfg)
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Loaded %s with %d nodes and %d edges", cfg.Graph, len(req.Graph), req.Graph.EdgeCount()))

			rep, err := runner.New(nil, logger).Run(ctx, req)
			if err != nil {
				return err
			}

			if opts.json {
				return writeJSON(cmd.OutOrStdout(), rep)
			}
			printReport(cmd.OutOrStdout(), rep)

			return nil
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVar(&opts.strategy, "strategy", config.StrategySRS, "search strategy: dfs, bfs or srs")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print the report as JSON")

	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

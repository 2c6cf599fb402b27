package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/srsearch/internal/observability"
	"github.com/katalvlaran/srsearch/internal/runner"
)

type compareOptions struct {
	inputFlags
	metricsFile string
	json        bool
}

func newCompareCmd(g *globalOptions) *cobra.Command {
	opts := compareOptions{}

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run DFS, BFS and SRS on the same input and compare them",
		Long: `Runs plain DFS, plain BFS and then the self-reflective controller on the
same graph, start and goal, timing each run. Metrics for all three runs can be
written in Prometheus text format with --metrics-file.`,
		Example: `  srsearch compare -g graph.yaml -s A -t D
  srsearch compare -g graph.yaml -s A -t D --metrics-file metrics.prom`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			cfg := *g.cfg
			opts.merge(cmd, &cfg)

			req, err := buildRequest(&cfg)
			if err != nil {
				return err
			}

			rec := observability.NewRecorder()
			reports, err := runner.New(rec, logger).Compare(ctx, req)
			if err != nil {
				return err
			}

			if opts.metricsFile != "" {
				if err := writeMetrics(opts.metricsFile, rec); err != nil {
					return err
				}
				logger.Infof("Wrote metrics to %s", opts.metricsFile)
			}

			if opts.json {
				return writeJSON(cmd.OutOrStdout(), reports)
			}
			for _, rep := range reports {
				printReport(cmd.OutOrStdout(), rep)
			}

			return nil
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVar(&opts.metricsFile, "metrics-file", "", "write Prometheus metrics to this file")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print the reports as JSON")

	return cmd
}

func writeMetrics(path string, rec *observability.Recorder) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create metrics file: %w", err)
	}
	if err := rec.WriteText(f); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

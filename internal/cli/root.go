package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/srsearch/internal/config"
)

var (
	version = "dev" // semantic version (e.g., "v1.2.3")
	commit  string  // git commit SHA
	date    string  // build timestamp
)

// SetVersion sets the version information displayed by --version and the
// version command. main calls it with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// globalOptions carries the persistent flags shared by every subcommand.
type globalOptions struct {
	verbose    bool
	configPath string

	// cfg is loaded in PersistentPreRunE: Default() or the --config file.
	cfg *config.Config
}

// Execute runs the srsearch CLI against os.Stdout and os.Stderr.
// Cancelling ctx stops a running search between steps.
func Execute(ctx context.Context) error {
	return newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx)
}

// newRootCmd builds the command tree. Results go to out, logs to errOut.
func newRootCmd(out, errOut io.Writer) *cobra.Command {
	g := &globalOptions{}

	root := &cobra.Command{
		Use:          "srsearch",
		Short:        "srsearch finds paths with DFS, BFS or self-reflective search",
		Long:         `srsearch loads a directed graph and finds a path from a start node to a goal node. The srs strategy starts depth-first and hands over to breadth-first (and back) whenever the active engine crosses its depth or memory threshold.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if g.configPath != "" {
				loaded, err := config.Load(g.configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			g.cfg = cfg

			logger := newLogger(errOut, parseLevel(cfg.Log.Level, g.verbose))
			cmd.SetContext(withLogger(cmd.Context(), logger))

			return nil
		},
	}

	root.SetOut(out)
	root.SetErr(errOut)
	root.SetVersionTemplate(versionText())
	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&g.configPath, "config", "c", "", "TOML config file")

	root.AddCommand(newSearchCmd(g))
	root.AddCommand(newCompareCmd(g))
	root.AddCommand(newVersionCmd())

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), versionText())
		},
	}
}

func versionText() string {
	return fmt.Sprintf("srsearch %s\ncommit: %s\nbuilt: %s\n", version, commit, date)
}

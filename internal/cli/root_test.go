package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/srsearch/graph"
	"github.com/katalvlaran/srsearch/internal/config"
	"github.com/katalvlaran/srsearch/internal/runner"
)

// execute runs the CLI with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	root := newRootCmd(&out, &errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())

	return out.String(), errOut.String(), err
}

func TestSetVersion(t *testing.T) {
	SetVersion("1.0.0", "abc123", "2024-01-01")
	t.Cleanup(func() { SetVersion("dev", "", "") })

	if version != "1.0.0" {
		t.Errorf("version = %q, want %q", version, "1.0.0")
	}
	if commit != "abc123" {
		t.Errorf("commit = %q, want %q", commit, "abc123")
	}
	if date != "2024-01-01" {
		t.Errorf("date = %q, want %q", date, "2024-01-01")
	}

	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "srsearch 1.0.0\ncommit: abc123\nbuilt: 2024-01-01\n", out)
}

func TestSearch_Human(t *testing.T) {
	out, _, err := execute(t, "search", "-g", "testdata/diamond.yaml", "-s", "A", "-t", "D")
	require.NoError(t, err)

	assert.Contains(t, out, "SRS")
	assert.Contains(t, out, "A → B → D")
	assert.Contains(t, out, "(3 nodes, 2 edges)")
	assert.Contains(t, out, "switches")
}

func TestSearch_JSON(t *testing.T) {
	for _, strategy := range []string{config.StrategyDFS, config.StrategyBFS, config.StrategySRS} {
		t.Run(strategy, func(t *testing.T) {
			out, _, err := execute(t, "search", "-g", "testdata/diamond.yaml", "-s", "A", "-t", "D",
				"--strategy", strategy, "--json")
			require.NoError(t, err)

			var rep runner.Report
			require.NoError(t, json.Unmarshal([]byte(out), &rep))
			assert.Equal(t, strategy, rep.Strategy)
			assert.True(t, rep.Found)
			assert.Equal(t, graph.Path{"A", "B", "D"}, rep.Path)
		})
	}
}

func TestSearch_Unreachable(t *testing.T) {
	out, _, err := execute(t, "search", "-g", "testdata/diamond.yaml", "-s", "A", "-t", "E")
	require.NoError(t, err)
	assert.Contains(t, out, "no path from A to E")
}

func TestSearch_ConfigFile(t *testing.T) {
	out, _, err := execute(t, "search", "-c", "testdata/run.toml", "--json")
	require.NoError(t, err)

	var rep runner.Report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, config.StrategyBFS, rep.Strategy)
	assert.Equal(t, graph.Path{"A", "B", "D"}, rep.Path)

	// Flags win over the file.
	out, _, err = execute(t, "search", "-c", "testdata/run.toml", "--json", "--strategy", "dfs", "-t", "C")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, config.StrategyDFS, rep.Strategy)
	assert.Equal(t, graph.Path{"A", "C"}, rep.Path)
}

func TestSearch_VerboseLogsSwitch(t *testing.T) {
	out, errOut, err := execute(t, "search", "-v", "-g", "testdata/chain.json", "-s", "N0", "-t", "N5",
		"--depth-threshold", "2")
	require.NoError(t, err)

	assert.Contains(t, out, "N0 → N1 → N2 → N3 → N4 → N5")
	assert.Contains(t, errOut, "strategy switch")
}

func TestSearch_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"no graph", []string{"search", "-s", "A", "-t", "D"}, errMissingInput},
		{"no start", []string{"search", "-g", "testdata/diamond.yaml", "-t", "D"}, errMissingInput},
		{"no goal", []string{"search", "-g", "testdata/diamond.yaml", "-s", "A"}, errMissingInput},
		{"bad strategy", []string{"search", "-g", "testdata/diamond.yaml", "-s", "A", "-t", "D", "--strategy", "astar"}, config.ErrInvalid},
		{"negative threshold", []string{"search", "-g", "testdata/diamond.yaml", "-s", "A", "-t", "D", "--depth-threshold", "-1"}, config.ErrInvalid},
		{"unknown format", []string{"search", "-g", "testdata/run.toml.bak", "-s", "A", "-t", "D"}, graph.ErrUnknownFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, _, err := execute(t, "search", "-c", "testdata/missing.toml")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCompare(t *testing.T) {
	metrics := filepath.Join(t.TempDir(), "metrics.prom")

	out, _, err := execute(t, "compare", "-g", "testdata/diamond.yaml", "-s", "A", "-t", "D",
		"--metrics-file", metrics)
	require.NoError(t, err)
	assert.Contains(t, out, "DFS")
	assert.Contains(t, out, "BFS")
	assert.Contains(t, out, "SRS")

	data, err := os.ReadFile(metrics)
	require.NoError(t, err)
	assert.Contains(t, string(data), `srsearch_searches_total{outcome="found",strategy="dfs"} 1`)
	assert.Contains(t, string(data), `srsearch_searches_total{outcome="found",strategy="srs"} 1`)
}

func TestCompare_JSON(t *testing.T) {
	out, _, err := execute(t, "compare", "-g", "testdata/chain.json", "-s", "N0", "-t", "N5", "--json")
	require.NoError(t, err)

	var reports []runner.Report
	require.NoError(t, json.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 3)
	for _, rep := range reports {
		assert.True(t, rep.Found, rep.Strategy)
		assert.Equal(t, 6, rep.Path.Len(), rep.Strategy)
	}
}

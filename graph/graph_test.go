package graph_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/srsearch/graph"
)

func diamond() graph.Graph {
	return graph.Graph{
		"A": {"B", "C"},
		"B": {"D"},
		"C": {"D"},
		"D": {},
	}
}

func TestSuccessors_MissingNodeIsDeadEnd(t *testing.T) {
	g := diamond()
	assert.Equal(t, []string{"B", "C"}, g.Successors("A"))
	assert.Empty(t, g.Successors("Z"))

	var nilGraph graph.Graph
	assert.Empty(t, nilGraph.Successors("A"))
}

func TestHasNodeAndEdge(t *testing.T) {
	g := graph.Graph{"A": {"B"}}
	assert.True(t, g.HasNode("A"))
	assert.True(t, g.HasNode("B"), "successor-only node counts as a node")
	assert.False(t, g.HasNode("C"))
	assert.True(t, g.HasEdge("A", "B"))
	assert.False(t, g.HasEdge("B", "A"))
}

func TestNodesSortedAndEdgeCount(t *testing.T) {
	g := graph.Graph{"C": {"A", "A"}, "B": {"C"}}
	assert.Equal(t, []string{"A", "B", "C"}, g.Nodes())
	assert.Equal(t, 3, g.EdgeCount(), "duplicate edges are counted")
}

func TestPath_ExtendDoesNotAlias(t *testing.T) {
	base := graph.NewPath("A").Extend("B")
	left := base.Extend("C")
	right := base.Extend("D")

	assert.Equal(t, graph.Path{"A", "B", "C"}, left)
	assert.Equal(t, graph.Path{"A", "B", "D"}, right)
	assert.Equal(t, graph.Path{"A", "B"}, base)
	assert.Equal(t, 3, left.Len())
	assert.Equal(t, 2, left.Edges())
	assert.Equal(t, "C", left.Last())
	assert.Equal(t, "A -> B -> C", left.Pretty())
}

func TestPath_Empty(t *testing.T) {
	var p graph.Path
	assert.Equal(t, 0, p.Edges())
	assert.Equal(t, "", p.Last())
}

func TestValidPath(t *testing.T) {
	g := diamond()
	require.NoError(t, graph.ValidPath(g, graph.Path{"A", "B", "D"}, "A", "D"))
	assert.ErrorIs(t, graph.ValidPath(g, nil, "A", "D"), graph.ErrEmptyPath)
	assert.ErrorIs(t, graph.ValidPath(g, graph.Path{"B", "D"}, "A", "D"), graph.ErrWrongEndpoints)
	assert.ErrorIs(t, graph.ValidPath(g, graph.Path{"A", "D"}, "A", "D"), graph.ErrMissingEdge)
}

func TestBuilders(t *testing.T) {
	chain := graph.Chain(4)
	assert.Len(t, chain, 4)
	assert.Equal(t, []string{"N1"}, chain["N0"])
	assert.Empty(t, chain["N3"])
	assert.Empty(t, graph.Chain(0))

	tree := graph.BinaryTree(3)
	assert.Len(t, tree, 7)
	assert.Equal(t, []string{"T-2", "T-3"}, tree["T-1"])
	assert.Empty(t, tree["T-4"])
	assert.Empty(t, graph.BinaryTree(0))

	star := graph.Star(3)
	assert.Equal(t, []string{"S1", "S2", "S3"}, star["S0"])
	assert.Equal(t, 3, star.EdgeCount())
}

func TestDecode_Formats(t *testing.T) {
	cases := []struct {
		name   string
		format graph.Format
		input  string
	}{
		{"json", graph.FormatJSON, `{"A":["B","C"],"B":["D"],"C":["D"],"D":[]}`},
		{"yaml", graph.FormatYAML, "A: [B, C]\nB: [D]\nC: [D]\nD: []\n"},
		{"toml", graph.FormatTOML, "A = [\"B\", \"C\"]\nB = [\"D\"]\nC = [\"D\"]\nD = []\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := graph.Decode(strings.NewReader(tc.input), tc.format)
			require.NoError(t, err)
			assert.Equal(t, diamond(), g)
		})
	}
}

func TestDecode_NullSuccessorsBecomeEmpty(t *testing.T) {
	g, err := graph.Decode(strings.NewReader(`{"A":null}`), graph.FormatJSON)
	require.NoError(t, err)
	assert.NotNil(t, g["A"])
	assert.Empty(t, g["A"])
}

func TestDecode_Errors(t *testing.T) {
	_, err := graph.Decode(strings.NewReader(`{}`), graph.Format("xml"))
	assert.ErrorIs(t, err, graph.ErrUnknownFormat)

	_, err = graph.Decode(strings.NewReader(`{"A":["B",""]}`), graph.FormatJSON)
	assert.ErrorIs(t, err, graph.ErrEmptyNodeID)

	_, err = graph.Decode(strings.NewReader(`{"A":`), graph.FormatJSON)
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "g.yml")
	require.NoError(t, os.WriteFile(path, []byte("A: [B]\nB: []\n"), 0o644))

	g, err := graph.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, graph.Graph{"A": {"B"}, "B": {}}, g)

	_, err = graph.LoadFile(filepath.Join(dir, "g.txt"))
	assert.ErrorIs(t, err, graph.ErrUnknownFormat)

	_, err = graph.LoadFile(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

package graph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format names a supported graph file encoding.
type Format string

// Supported formats. Every format encodes a single table of
// node ID → list of successor IDs.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFromPath picks a Format from the file extension of path.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

// LoadFile reads and decodes the graph stored at path.
func LoadFile(path string) (Graph, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("graph: read %s: %w", path, err)
	}

	return Decode(bytes.NewReader(data), format)
}

// Decode reads a graph from r in the given format.
// A null successor list decodes as an empty one.
func Decode(r io.Reader, format Format) (Graph, error) {
	var g Graph
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&g); err != nil {
			return nil, fmt.Errorf("graph: decode json: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&g); err != nil && err != io.EOF {
			return nil, fmt.Errorf("graph: decode yaml: %w", err)
		}
	case FormatTOML:
		if _, err := toml.NewDecoder(r).Decode(&g); err != nil {
			return nil, fmt.Errorf("graph: decode toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if g == nil {
		g = Graph{}
	}

	for id, succ := range g {
		if id == "" {
			return nil, ErrEmptyNodeID
		}
		if succ == nil {
			g[id] = []string{}
		}
		for _, s := range succ {
			if s == "" {
				return nil, fmt.Errorf("%w: successor of %q", ErrEmptyNodeID, id)
			}
		}
	}

	return g, nil
}

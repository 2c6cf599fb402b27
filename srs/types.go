package srs

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/srsearch/bfs"
	"github.com/katalvlaran/srsearch/dfs"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("srs: invalid option supplied")

// Mode names the engine currently in control.
type Mode uint8

const (
	// ModeDFS means the depth-first engine is active. It is the initial mode.
	ModeDFS Mode = iota
	// ModeBFS means the breadth-first engine is active.
	ModeBFS
)

// String returns "DFS" or "BFS".
func (m Mode) String() string {
	if m == ModeBFS {
		return "BFS"
	}

	return "DFS"
}

// Other returns the opposite mode.
func (m Mode) Other() Mode {
	if m == ModeDFS {
		return ModeBFS
	}

	return ModeDFS
}

// MarshalText encodes the mode as its name.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// Option configures a Searcher.
type Option func(*Options)

// Options holds the thresholds handed to both engines plus controller hooks.
type Options struct {
	// DepthThreshold is passed to the DFS engine.
	DepthThreshold int

	// MemoryThreshold is passed to the BFS engine.
	MemoryThreshold int

	// Logger receives debug events for switches, hand-offs and termination.
	Logger *log.Logger

	// OnSwitch is called after every threshold-driven strategy switch.
	OnSwitch func(from, to Mode)

	err error
}

// DefaultOptions returns thresholds 10 and 50, a discarding logger and a
// no-op OnSwitch hook.
func DefaultOptions() Options {
	return Options{
		DepthThreshold:  dfs.DefaultDepthThreshold,
		MemoryThreshold: bfs.DefaultMemoryThreshold,
		Logger:          log.New(io.Discard),
		OnSwitch:        func(Mode, Mode) {},
	}
}

// WithDepthThreshold sets the DFS switch threshold (d >= 0).
func WithDepthThreshold(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: DepthThreshold cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.DepthThreshold = d
	}
}

// WithMemoryThreshold sets the BFS switch threshold (m >= 0).
func WithMemoryThreshold(m int) Option {
	return func(o *Options) {
		if m < 0 {
			o.err = fmt.Errorf("%w: MemoryThreshold cannot be negative (%d)", ErrOptionViolation, m)
			return
		}
		o.MemoryThreshold = m
	}
}

// WithLogger routes controller events to l. A nil logger is ignored.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnSwitch registers a hook run after each threshold-driven switch.
func WithOnSwitch(fn func(from, to Mode)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSwitch = fn
		}
	}
}

// Metrics reports both engines' counters and the controller state.
type Metrics struct {
	DFS dfs.Metrics `json:"dfs"`
	BFS bfs.Metrics `json:"bfs"`

	// Strategy is the engine in control when the snapshot was taken.
	Strategy Mode `json:"current_strategy"`

	// Switches counts threshold-driven strategy switches.
	Switches int `json:"switches"`

	// Steps counts controller iterations that reached an engine.
	Steps int `json:"steps"`
}

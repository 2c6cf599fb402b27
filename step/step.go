// Package step defines the single-step contract shared by the DFS and BFS
// engines and consumed by the self-reflective controller.
//
// An engine advances by exactly one frontier item per Step call and reports
// one of three outcomes:
//
//   - Pending: nothing decided yet, or the frontier was already empty.
//   - Found:   the goal was popped; Result.Path is the answer.
//   - Switch:  the engine's resource threshold was exceeded and control
//     should move to another engine.
//
// Pending never means "unreachable". Callers combine it with Exhausted to
// detect that an engine has nothing left to do.
package step

import (
	"github.com/katalvlaran/srsearch/graph"
)

// Outcome tags a step Result.
type Outcome uint8

const (
	// Pending means keep going; no path and no switch request.
	Pending Outcome = iota
	// Found means the goal was reached.
	Found
	// Switch means the engine exceeded its threshold.
	Switch
)

// String returns the lower-case outcome name.
func (o Outcome) String() string {
	switch o {
	case Pending:
		return "pending"
	case Found:
		return "found"
	case Switch:
		return "switch"
	default:
		return "unknown"
	}
}

// Result is the tagged outcome of one step. Path is set only for Found.
type Result struct {
	Outcome Outcome
	Path    graph.Path
}

// None returns a Pending result.
func None() Result { return Result{Outcome: Pending} }

// FoundPath returns a Found result carrying p.
func FoundPath(p graph.Path) Result { return Result{Outcome: Found, Path: p} }

// SwitchSignal returns a Switch result.
func SwitchSignal() Result { return Result{Outcome: Switch} }

// IsFound reports whether r carries a path.
func (r Result) IsFound() bool { return r.Outcome == Found }

// IsSwitch reports whether r asks for a strategy switch.
func (r Result) IsSwitch() bool { return r.Outcome == Switch }

// Engine is a search strategy that can be advanced one frontier item at a time.
type Engine interface {
	// Step pops one frontier item and reports the outcome.
	Step() Result

	// Exhausted reports whether the frontier is empty.
	Exhausted() bool

	// Explored returns how many frontier items have been popped so far.
	Explored() int
}

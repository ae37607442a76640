package pgref

import (
	"github.com/gclverify/ltlcheck/expr"
	"github.com/gclverify/ltlcheck/pg"
)

// Scenario names the built-in reference program graphs the CLI can
// select by name, standing in for GCL programs a real front end would
// parse (spec.md §1 Non-goals).
type Scenario string

const (
	// ScenarioSafetyHeld never changes n away from 0, so "[]{n = 0}"
	// holds.
	ScenarioSafetyHeld Scenario = "safety-held"
	// ScenarioSafetyViolated sets n to 1 on its first step and loops
	// forever after, so "[]{n = 0}" is violated.
	ScenarioSafetyViolated Scenario = "safety-violated"
	// ScenarioLivenessHeld counts n up to 5 then loops forever at 5,
	// so "<>{n = 5}" holds.
	ScenarioLivenessHeld Scenario = "liveness-held"
	// ScenarioLivenessViolated counts n by two (0, 2, 4, ..., 40) and
	// then loops forever at 40, never passing 5, so "<>{n = 5}" is
	// violated.
	ScenarioLivenessViolated Scenario = "liveness-violated"
	// ScenarioNext sets x to 1 on the first step and to 2 on the second,
	// then loops forever, so "()({x = 1})" holds of the initial state.
	ScenarioNext Scenario = "next"
	// ScenarioFlipFlop is two concurrent two-state processes that both
	// flip the shared variable p0 between 0 and 1 forever, used to
	// exercise interleaving.
	ScenarioFlipFlop Scenario = "flip-flop"
)

// Scenarios lists every built-in scenario name, in the fixed order the
// CLI presents them.
func Scenarios() []Scenario {
	return []Scenario{
		ScenarioSafetyHeld,
		ScenarioSafetyViolated,
		ScenarioLivenessHeld,
		ScenarioLivenessViolated,
		ScenarioNext,
		ScenarioFlipFlop,
	}
}

// Build constructs the program graph (or parallel program graph) for
// name, along with its initial memory. ok is false for an unrecognized
// name.
func Build(name Scenario) (pg.ProgramGraph, expr.Memory, bool) {
	switch name {
	case ScenarioSafetyHeld:
		return loopingCounter(0, 0), expr.Memory{"n": 0}, true
	case ScenarioSafetyViolated:
		return loopingCounter(1, 0), expr.Memory{"n": 0}, true
	case ScenarioLivenessHeld:
		return steppingCounter(1, 5), expr.Memory{"n": 0}, true
	case ScenarioLivenessViolated:
		return steppingCounter(2, -1), expr.Memory{"n": 0}, true
	case ScenarioNext:
		return nextDemo(), expr.Memory{"x": 0}, true
	default:
		return nil, nil, false
	}
}

// BuildParallel constructs ScenarioFlipFlop's two-process parallel
// program graph, along with its initial memory.
func BuildParallel() (pg.ParallelProgramGraph, expr.Memory, bool) {
	return flipFlop(), expr.Memory{"p0": 0}, true
}

// loopingCounter builds: Start --(n := first)--> q1 --(skip)--> q1 (self
// loop forever). first is assigned once, then nothing changes.
func loopingCounter(first int, initial int) *Graph {
	b := NewBuilder()
	start := b.NewNode("qStart")
	q1 := b.NewNode("q1")
	b.AddEdge(start, expr.Assign{Var: "n", Expr: expr.IntLit(first)}, q1)
	b.AddEdge(q1, pg.Skip{}, q1)
	return b.Build(start, q1)
}

// steppingCounter builds a chain Start -> q1 -> q2 -> ... incrementing n
// by step each time, looping forever at the last node. If target >= 0,
// the chain stops growing once n reaches target and self-loops there;
// otherwise it self-loops after a fixed number of steps without ever
// hitting a value equal to 5 when step does not divide it evenly.
func steppingCounter(step int, target int) *Graph {
	b := NewBuilder()
	start := b.NewNode("qStart")

	const maxSteps = 20
	prev := start
	n := 0
	for i := 0; i < maxSteps; i++ {
		next := b.NewNode("q")
		b.AddEdge(prev, expr.Assign{Var: "n", Expr: expr.IntLit(n + step)}, next)
		n += step
		prev = next
		if target >= 0 && n == target {
			break
		}
	}
	b.AddEdge(prev, pg.Skip{}, prev)
	return b.Build(start, prev)
}

// nextDemo builds Start --(x := 1)--> q1 --(x := 2)--> q2 --(skip)--> q2.
func nextDemo() *Graph {
	b := NewBuilder()
	start := b.NewNode("qStart")
	q1 := b.NewNode("q1")
	q2 := b.NewNode("q2")
	b.AddEdge(start, expr.Assign{Var: "x", Expr: expr.IntLit(1)}, q1)
	b.AddEdge(q1, expr.Assign{Var: "x", Expr: expr.IntLit(2)}, q2)
	b.AddEdge(q2, pg.Skip{}, q2)
	return b.Build(start, q2)
}

// flipProcess builds a two-state process Start <-> q1 that flips
// varName between 0 and 1 forever.
func flipProcess(varName string) *Graph {
	b := NewBuilder()
	start := b.NewNode("qStart")
	q1 := b.NewNode("q1")
	b.AddEdge(start, expr.Assign{Var: varName, Expr: expr.IntLit(1)}, q1)
	b.AddEdge(q1, expr.Assign{Var: varName, Expr: expr.IntLit(0)}, start)
	return b.Build(start, q1)
}

type parallel struct {
	processes []pg.ProgramGraph
}

func (p parallel) Processes() []pg.ProgramGraph { return p.processes }

func flipFlop() pg.ParallelProgramGraph {
	return parallel{processes: []pg.ProgramGraph{flipProcess("p0"), flipProcess("p0")}}
}

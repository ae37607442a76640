package product_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gclverify/ltlcheck/automaton/gba"
	"github.com/gclverify/ltlcheck/automaton/nba"
	"github.com/gclverify/ltlcheck/automaton/vwaa"
	"github.com/gclverify/ltlcheck/expr"
	"github.com/gclverify/ltlcheck/ltl"
	"github.com/gclverify/ltlcheck/pgref"
	"github.com/gclverify/ltlcheck/product"
)

func trueAutomaton(t *testing.T) *nba.NBA {
	t.Helper()
	w := vwaa.FromPNL(ltl.PTrue{})
	g := gba.FromVWAA(w)
	return nba.FromGBA(g)
}

func TestSingle_Initial(t *testing.T) {
	graph, mem, ok := pgref.Build(pgref.ScenarioSafetyHeld)
	require.True(t, ok)
	sys := product.Single(graph, expr.Evaluator{}, trueAutomaton(t))

	init := sys.Initial(mem)
	require.Len(t, init.Cfg.Nodes, 1)
	assert.Equal(t, graph.Start(), init.Cfg.Nodes[0])
}

func TestParallel_SuccessorsInterleave(t *testing.T) {
	graph, mem, ok := pgref.BuildParallel()
	require.True(t, ok)
	sys := product.Parallel(graph, expr.Evaluator{}, trueAutomaton(t))

	init := sys.Initial(mem)
	succs := sys.Successors(init.Cfg)
	// Each of the two processes has exactly one enabled edge from its
	// start node, and a step advances exactly one process at a time.
	assert.Len(t, succs, 2)
}

func TestSingle_TerminalSelfLoopRepeatsConfig(t *testing.T) {
	graph, mem, ok := pgref.Build(pgref.ScenarioSafetyHeld)
	require.True(t, ok)
	sys := product.Single(graph, expr.Evaluator{}, trueAutomaton(t))

	init := sys.Initial(mem)
	succs := sys.Successors(init.Cfg)
	require.Len(t, succs, 1)
	// After the first step the process is at its terminal, self-looping
	// node; a second step must return to the same configuration.
	again := sys.Successors(succs[0])
	require.Len(t, again, 1)
	assert.Equal(t, succs[0].Key(), again[0].Key())
}

func TestSystem_StepFiltersByLabel(t *testing.T) {
	graph, mem, ok := pgref.Build(pgref.ScenarioSafetyHeld)
	require.True(t, ok)
	sys := product.Single(graph, expr.Evaluator{}, trueAutomaton(t))

	init := sys.Initial(mem)
	steps := sys.Step(init)
	assert.NotEmpty(t, steps, "a universally-true automaton must accept every program step")
}

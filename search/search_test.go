package search_test

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
	"github.com/gclverify/ltlcheck/search"
)

func negatedAutomaton(t *testing.T, src string) *nba.NBA {
	t.Helper()
	surface, err := ltl.Parse(src, expr.ParseAtom)
	require.NoError(t, err)
	negated := ltl.SNot{F: surface}
	pnf := ltl.ToPNF(ltl.Reduce(negated))
	g := gba.FromVWAA(vwaa.FromPNL(pnf))
	gba.Simplify(g)
	a := nba.FromGBA(g)
	nba.Simplify(a)
	return a
}

func TestRun_FormulaHolds(t *testing.T) {
	graph, mem, ok := pgref.Build(pgref.ScenarioSafetyHeld)
	require.True(t, ok)
	a := negatedAutomaton(t, "[]({n = 0})")

	sys := product.Single(graph, expr.Evaluator{}, a)
	v := search.Run(sys, sys.Initial(mem), 100)
	_, holds := v.(search.FormulaHolds)
	assert.True(t, holds)
}

func TestRun_CycleFoundHasValidWitness(t *testing.T) {
	graph, mem, ok := pgref.Build(pgref.ScenarioSafetyViolated)
	require.True(t, ok)
	a := negatedAutomaton(t, "[]({n = 0})")

	sys := product.Single(graph, expr.Evaluator{}, a)
	v := search.Run(sys, sys.Initial(mem), 100)

	cf, ok := v.(search.CycleFound)
	require.True(t, ok)
	require.Greater(t, len(cf.Trace), cf.CycleStart)
	// The cycle's first and last state must coincide.
	first := cf.Trace[cf.CycleStart]
	last := cf.Trace[len(cf.Trace)-1]
	assert.Equal(t, first.Key(), last.Key())
}

func TestRun_DepthExceededWhenBoundTooTight(t *testing.T) {
	graph, mem, ok := pgref.Build(pgref.ScenarioLivenessHeld)
	require.True(t, ok)
	a := negatedAutomaton(t, "<>({n = 5})")

	sys := product.Single(graph, expr.Evaluator{}, a)
	v := search.Run(sys, sys.Initial(mem), 0)
	_, exceeded := v.(search.DepthExceeded)
	assert.True(t, exceeded)
}

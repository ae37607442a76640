package vwaa_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gclverify/ltlcheck/automaton/vwaa"
	"github.com/gclverify/ltlcheck/ltl"
)

type atom string

func (a atom) String() string { return string(a) }

func TestFromPNL_AtomicProposition(t *testing.T) {
	f := ltl.PAtomic{Expr: atom("a")}
	w := vwaa.FromPNL(f)

	require.Len(t, w.States, 1)
	require.Len(t, w.InitialStates, 1)
	assert.Equal(t, f.Key(), w.InitialStates[0].Key())
	assert.Empty(t, w.FinalStates)

	trans := w.Delta[f.Key()]
	require.Len(t, trans, 1)
	assert.True(t, trans[0].To.Formulas == nil && !trans[0].To.TT)
	assert.False(t, trans[0].Label.TT)
}

func TestFromPNL_UntilHasSelfLoopAndFinalState(t *testing.T) {
	a := ltl.PAtomic{Expr: atom("a")}
	b := ltl.PAtomic{Expr: atom("b")}
	f := ltl.PUntil{L: a, R: b}

	w := vwaa.FromPNL(f)
	require.Len(t, w.FinalStates, 1)
	assert.Equal(t, f.Key(), w.FinalStates[0].Key())

	trans := w.Delta[f.Key()]
	require.NotEmpty(t, trans)

	var sawSelfLoop bool
	for _, tr := range trans {
		if tr.To.Key() == f.Key() {
			sawSelfLoop = true
		}
	}
	assert.True(t, sawSelfLoop, "until must be able to defer to itself while its left side holds")
}

func TestFromPNL_NextOverOrOffersDisjointSingletonTargets(t *testing.T) {
	a := ltl.PAtomic{Expr: atom("a")}
	b := ltl.PAtomic{Expr: atom("b")}
	f := ltl.PNext{F: ltl.POr{L: a, R: b}}

	w := vwaa.FromPNL(f)
	trans := w.Delta[f.Key()]
	require.Len(t, trans, 2, "Next(a||b) must offer one transition per disjunct, not a single conjoined target")

	targets := make(map[string]bool, len(trans))
	for _, tr := range trans {
		assert.True(t, tr.Label.TT)
		assert.Len(t, tr.To.Formulas, 1, "each Next(a||b) target must be a singleton, not the whole bar() set conjoined")
		targets[tr.To.Key()] = true
	}
	assert.Len(t, targets, 2, "the two targets must be distinct alternatives, not duplicates of a merged one")
	assert.Contains(t, targets, ltl.CSingleton(a).Key())
	assert.Contains(t, targets, ltl.CSingleton(b).Key())
}

func TestCircleX_EmptyOperandAnnihilates(t *testing.T) {
	a := ltl.PAtomic{Expr: atom("a")}
	trans := vwaa.Delta1(a)
	assert.Empty(t, vwaa.CircleX(trans, nil))
	assert.Empty(t, vwaa.CircleX(nil, trans))
}

func TestCircleX_ConjoinsLabelsAndTargets(t *testing.T) {
	a := ltl.PAtomic{Expr: atom("a")}
	b := ltl.PAtomic{Expr: atom("b")}
	got := vwaa.CircleX(vwaa.Delta1(a), vwaa.Delta1(b))
	require.Len(t, got, 1)
	assert.Len(t, got[0].Label.Symbols, 2)
}

func TestDelta1_FalseHasNoTransitions(t *testing.T) {
	assert.Empty(t, vwaa.Delta1(ltl.PFalse{}))
}

func TestDelta1_TrueIsUniversalSink(t *testing.T) {
	trans := vwaa.Delta1(ltl.PTrue{})
	require.Len(t, trans, 1)
	assert.True(t, trans[0].Label.TT)
	assert.Equal(t, ltl.Conjunction{}.Key(), trans[0].To.Key())
}

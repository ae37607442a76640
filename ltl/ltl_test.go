package ltl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gclverify/ltlcheck/ltl"
)

// atom is a minimal ltl.BoolExpr for use across these tests: two atoms
// are the same atomic proposition iff their names are equal.
type atom string

func (a atom) String() string { return string(a) }

func TestReduce_Or(t *testing.T) {
	f := ltl.SOr{L: ltl.SAtomic{Expr: atom("a")}, R: ltl.SAtomic{Expr: atom("b")}}
	got := ltl.Reduce(f)
	want := ltl.RNot{F: ltl.RAnd{
		L: ltl.RNot{F: ltl.RAtomic{Expr: atom("a")}},
		R: ltl.RNot{F: ltl.RAtomic{Expr: atom("b")}},
	}}
	assert.Equal(t, want.String(), got.String())
}

func TestReduce_Eventually(t *testing.T) {
	f := ltl.SEventually{F: ltl.SAtomic{Expr: atom("a")}}
	got := ltl.Reduce(f)
	want := ltl.RUntil{L: ltl.RTrue{}, R: ltl.RAtomic{Expr: atom("a")}}
	assert.Equal(t, want.String(), got.String())
}

func TestToPNF_NegationDuality(t *testing.T) {
	// !!(a U b) reduces and PNF-normalizes back to the PNF of (a U b)
	// itself: double negation cancels (spec.md §4.1/§4.2 negation-duality
	// property).
	inner := ltl.SUntil{L: ltl.SAtomic{Expr: atom("a")}, R: ltl.SAtomic{Expr: atom("b")}}
	doubled := ltl.SNot{F: ltl.SNot{F: inner}}

	got := ltl.ToPNF(ltl.Reduce(doubled))
	want := ltl.ToPNF(ltl.Reduce(inner))
	assert.Equal(t, want.Key(), got.Key())
}

func TestToPNF_PushesNegationToAtoms(t *testing.T) {
	// !(a && Ob) normalizes to (!a || O!b): negation never sits above a
	// non-atomic connective in the result.
	f := ltl.SNot{F: ltl.SAnd{
		L: ltl.SAtomic{Expr: atom("a")},
		R: ltl.SNext{F: ltl.SAtomic{Expr: atom("b")}},
	}}
	got := ltl.ToPNF(ltl.Reduce(f))

	want := ltl.POr{
		L: ltl.PNegAtomic{Expr: atom("a")},
		R: ltl.PNext{F: ltl.PNegAtomic{Expr: atom("b")}},
	}
	assert.Equal(t, want.Key(), got.Key())
}

func TestBar_LeafIsSingleton(t *testing.T) {
	// An atomic proposition at the top level bars to itself, not the
	// empty set (see DESIGN.md's Bar() leaf-case note).
	f := ltl.PAtomic{Expr: atom("a")}
	got := ltl.Bar(f)
	require.Len(t, got, 1)
	assert.Equal(t, f.Key(), got[0].Key())
}

func TestBar_DistributesOverAndOr(t *testing.T) {
	a := ltl.PAtomic{Expr: atom("a")}
	b := ltl.PNegAtomic{Expr: atom("b")}
	f := ltl.PAnd{L: a, R: ltl.POr{L: a, R: b}}

	got := ltl.Bar(f)
	require.Len(t, got, 2)

	keys := map[string]bool{}
	for _, g := range got {
		keys[g.Key()] = true
	}
	assert.True(t, keys[a.Key()])
	assert.True(t, keys[b.Key()])
}

func TestTemporalSubformulas_ExcludesAndOr(t *testing.T) {
	a := ltl.PAtomic{Expr: atom("a")}
	b := ltl.PAtomic{Expr: atom("b")}
	f := ltl.PAnd{L: ltl.PUntil{L: a, R: b}, R: ltl.PNext{F: a}}

	subs := ltl.TemporalSubformulas(f)
	for _, s := range subs {
		switch s.(type) {
		case ltl.PAnd, ltl.POr:
			t.Fatalf("TemporalSubformulas must not include And/Or nodes, got %T", s)
		}
	}
	// a, b, (a U b), O(a) = 4 distinct temporal subformulas.
	assert.Len(t, subs, 4)
}

func TestUntilSubformulas_OnlyUntil(t *testing.T) {
	a := ltl.PAtomic{Expr: atom("a")}
	b := ltl.PAtomic{Expr: atom("b")}
	f := ltl.PAnd{
		L: ltl.PUntil{L: a, R: b},
		R: ltl.PRelease{L: a, R: b},
	}
	subs := ltl.UntilSubformulas(f)
	require.Len(t, subs, 1)
	_, ok := subs[0].(ltl.PUntil)
	assert.True(t, ok)
}

func TestSymbolConjunction_ConjunctAndSubset(t *testing.T) {
	sa := ltl.SingleSymbol(ltl.Symbol{Expr: atom("a")})
	sb := ltl.SingleSymbol(ltl.Symbol{Expr: atom("b")})

	both := sa.Conjunct(sb)
	assert.True(t, both.IsSubset(sa), "a&&b is at least as specific as a")
	assert.True(t, both.IsSubset(sb))
	assert.False(t, sa.IsSubset(both), "a alone is not as specific as a&&b")

	assert.True(t, sa.IsSubset(ltl.STT()), "everything is a subset of tt")
	assert.False(t, ltl.STT().IsSubset(sa), "tt is not a subset of a")
}

func TestConjunction_TTIsIdentity(t *testing.T) {
	c := ltl.CSingleton(ltl.PAtomic{Expr: atom("a")})
	assert.Equal(t, c.Key(), c.Conjunct(ltl.CTT()).Key())
	assert.Equal(t, c.Key(), ltl.CTT().Conjunct(c).Key())
}

func TestPowerSet_SizeAndTTMarker(t *testing.T) {
	elems := []ltl.PNL{ltl.PAtomic{Expr: atom("a")}, ltl.PAtomic{Expr: atom("b")}}
	set := ltl.PowerSet(elems)
	// 2^2 subsets plus the explicit TT marker.
	require.Len(t, set, 5)
	assert.True(t, set[len(set)-1].TT)
}

func TestParse_RoundTripsThroughReduceAndPNF(t *testing.T) {
	surface, err := ltl.Parse("[]({a} -> <>{b})", func(src string) (ltl.BoolExpr, error) {
		return atom(src), nil
	})
	require.NoError(t, err)
	require.NotNil(t, surface)

	pnf := ltl.ToPNF(ltl.Reduce(surface))
	require.NotNil(t, pnf)
}

func TestParse_RejectsGarbage(t *testing.T) {
	_, err := ltl.Parse("{a} &&", func(src string) (ltl.BoolExpr, error) {
		return atom(src), nil
	})
	require.Error(t, err)
	var perr *ltl.ParseError
	require.ErrorAs(t, err, &perr)
}

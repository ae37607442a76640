// Package vwaa builds a very weak alternating automaton from a PNL
// formula by structural recursion (spec.md §4.2). Its states are the
// formula's own temporal subformulas, and transitions target whole
// conjunctions of states — an alternating automaton lets a single
// transition require several successor obligations to hold
// simultaneously, which is what lets the GBA stage fold it down to an
// ordinary (non-alternating) automaton over sets of VWAA states.
package vwaa

import (
	"sort"

	"github.com/gclverify/ltlcheck/ltl"
)

// Transition is one outgoing edge of a VWAA state: taking it requires
// Label to hold on the current step, and leaves every formula in To as
// an outstanding obligation for the successor state.
type Transition struct {
	Label ltl.SymbolConjunction
	To    ltl.Conjunction
}

// VWAA is a very weak alternating automaton over PNL formulas.
type VWAA struct {
	States        []ltl.PNL                  // temporal subformulas of Formula, sorted by Key()
	Delta         map[string][]Transition     // keyed by state Key()
	InitialStates []ltl.PNL                   // bar(Formula)
	FinalStates   []ltl.PNL                   // until-subformulas of Formula
}

// FromPNL constructs the VWAA for f (spec.md §4.2).
func FromPNL(f ltl.PNL) *VWAA {
	states := ltl.TemporalSubformulas(f)
	delta := make(map[string][]Transition, len(states))
	for _, s := range states {
		delta[s.Key()] = findDelta(s)
	}
	return &VWAA{
		States:        states,
		Delta:         delta,
		InitialStates: ltl.Bar(f),
		FinalStates:   ltl.UntilSubformulas(f),
	}
}

// Delta1 returns the transitions for a single PNL formula, computed by
// the same structural recursion FromPNL uses for each of its states.
func Delta1(f ltl.PNL) []Transition {
	return findDelta(f)
}

func findDelta(f ltl.PNL) []Transition {
	switch f := f.(type) {
	case ltl.PTrue:
		return []Transition{{Label: ltl.STT(), To: ltl.Conjunction{}}}
	case ltl.PFalse:
		return nil
	case ltl.PAtomic:
		sym := ltl.Symbol{Expr: f.Expr, Negated: false}
		return []Transition{{Label: ltl.SingleSymbol(sym), To: ltl.Conjunction{}}}
	case ltl.PNegAtomic:
		sym := ltl.Symbol{Expr: f.Expr, Negated: true}
		return []Transition{{Label: ltl.SingleSymbol(sym), To: ltl.Conjunction{}}}
	case ltl.PAnd:
		return circleX(findDelta(f.L), findDelta(f.R))
	case ltl.POr:
		return union(findDelta(f.L), findDelta(f.R))
	case ltl.PNext:
		bar := ltl.Bar(f.F)
		out := make([]Transition, len(bar))
		for i, e := range bar {
			out[i] = Transition{Label: ltl.STT(), To: ltl.CSingleton(e)}
		}
		return out
	case ltl.PUntil:
		self := []Transition{{Label: ltl.STT(), To: ltl.CSingleton(f)}}
		return union(findDelta(f.R), circleX(findDelta(f.L), self))
	case ltl.PRelease:
		self := []Transition{{Label: ltl.STT(), To: ltl.CSingleton(f)}}
		return circleX(findDelta(f.R), union(findDelta(f.L), self))
	default:
		panic("vwaa: findDelta: unhandled PNL node")
	}
}

// CircleX exports the ⊗ combinator so automaton/gba can fold the
// transition sets of several conjunction members together the same way
// findDelta folds And's two operands.
func CircleX(a, b []Transition) []Transition { return circleX(a, b) }

// circleX is the ⊗ combinator of spec.md §4.2: the pairwise conjunction
// of every transition in a with every transition in b.
func circleX(a, b []Transition) []Transition {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	seen := make(map[string]Transition, len(a)*len(b))
	for _, ta := range a {
		for _, tb := range b {
			label := ta.Label.Conjunct(tb.Label)
			to := ta.To.Conjunct(tb.To)
			key := label.Key() + "|" + to.Key()
			seen[key] = Transition{Label: label, To: to}
		}
	}
	return sortedTransitions(seen)
}

func union(a, b []Transition) []Transition {
	seen := make(map[string]Transition, len(a)+len(b))
	for _, t := range a {
		seen[t.Label.Key()+"|"+t.To.Key()] = t
	}
	for _, t := range b {
		seen[t.Label.Key()+"|"+t.To.Key()] = t
	}
	return sortedTransitions(seen)
}

func sortedTransitions(m map[string]Transition) []Transition {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]Transition, len(keys))
	for i, k := range keys {
		out[i] = m[k]
	}
	return out
}

// Package gba builds a generalized Büchi automaton from a VWAA by a
// lazy reachable-state exploration (spec.md §4.3): the mathematical
// description is "fold the power set of VWAA states, then BFS-prune to
// what the initial state can reach", but since only reachable states
// ever survive the prune, this package discovers them directly by BFS
// from the initial conjunction outward, computing each one's transitions
// on demand from the VWAA's own per-state delta via the ⊗ combinator.
// The two constructions produce the same automaton; the lazy one never
// materializes the unreachable fraction of the power set.
package gba

import (
	"sort"

	"github.com/gclverify/ltlcheck/automaton/simplify"
	"github.com/gclverify/ltlcheck/automaton/vwaa"
	"github.com/gclverify/ltlcheck/internal/stategraph"
	"github.com/gclverify/ltlcheck/ltl"
)

// Edge is one GBA transition. AcceptFor[i] reports whether this
// transition belongs to the accepting set of the i-th entry of Until, as
// computed by acceptanceVector from the transition's label and target
// alone (the source conjunction is not consulted).
type Edge struct {
	Label     ltl.SymbolConjunction
	To        string
	AcceptFor []bool
}

// GBA is a generalized Büchi automaton over LTL conjunctions.
type GBA struct {
	Conjunctions map[string]ltl.Conjunction // state key -> content
	Order        []string                   // deterministic state enumeration
	Initial      string
	Delta        map[string][]Edge
	Until        []ltl.PNL // the Until subformulas indexing AcceptFor
}

// FromVWAA builds the GBA reachable from a's initial conjunction.
func FromVWAA(a *vwaa.VWAA) *GBA {
	initial := ltl.CFromSlice(a.InitialStates)
	g := &GBA{
		Conjunctions: map[string]ltl.Conjunction{initial.Key(): initial},
		Delta:        map[string][]Edge{},
		Initial:      initial.Key(),
		Until:        a.FinalStates,
	}

	deltaCache := make(map[string][]vwaa.Transition, len(a.States))
	for _, s := range a.States {
		deltaCache[s.Key()] = a.Delta[s.Key()]
	}

	graph := stategraph.New()
	queue := []string{initial.Key()}
	graph.AddVertex(initial.Key())

	for len(queue) > 0 {
		key := queue[0]
		queue = queue[1:]
		c := g.Conjunctions[key]

		trans := foldConjunction(c, deltaCache)
		edges := make([]Edge, 0, len(trans))
		for _, t := range trans {
			toKey := t.To.Key()
			if _, ok := g.Conjunctions[toKey]; !ok {
				g.Conjunctions[toKey] = t.To
				graph.AddVertex(toKey)
				queue = append(queue, toKey)
			}
			graph.AddEdge(key, toKey)
			edges = append(edges, Edge{
				Label:     t.Label,
				To:        toKey,
				AcceptFor: acceptanceVector(t.Label, t.To, a.FinalStates, deltaCache),
			})
		}
		g.Delta[key] = removeNonMinimal(edges, g.Conjunctions)
	}

	g.Order = graph.Vertices()
	return g
}

// foldConjunction computes δ(c) by ⊗-folding the per-member transition
// sets looked up in the VWAA's own delta table (spec.md §4.3 step 2).
// An empty conjunction maps to δ_VWAA(True), i.e. a self-loop on tt with
// no remaining obligations — the terminal "nothing left to prove" state.
func foldConjunction(c ltl.Conjunction, deltaCache map[string][]vwaa.Transition) []vwaa.Transition {
	if c.TT || len(c.Formulas) == 0 {
		return []vwaa.Transition{{Label: ltl.STT(), To: ltl.Conjunction{}}}
	}
	acc := deltaCache[c.Formulas[0].Key()]
	for _, f := range c.Formulas[1:] {
		acc = vwaa.CircleX(acc, deltaCache[f.Key()])
	}
	return acc
}

// acceptanceVector reports, for every Until subformula u, whether the
// transition (alpha, to) belongs to u's accepting set (spec.md §4.3 step
// 4): either u is absent from the target e', or some VWAA transition
// (beta, e'') out of u itself is at least as general as this one
// (alpha ⊆ beta), doesn't require u either (u ∉ e''), and e'' ⊆ e'. This
// depends only on the transition's label and target, never its source.
func acceptanceVector(alpha ltl.SymbolConjunction, to ltl.Conjunction, until []ltl.PNL, deltaCache map[string][]vwaa.Transition) []bool {
	out := make([]bool, len(until))
	for i, u := range until {
		if !containsFormula(to, u) {
			out[i] = true
			continue
		}
		for _, vt := range deltaCache[u.Key()] {
			if alpha.IsSubset(vt.Label) && !containsFormula(vt.To, u) && vt.To.IsSubset(to) {
				out[i] = true
				break
			}
		}
	}
	return out
}

func containsFormula(c ltl.Conjunction, f ltl.PNL) bool {
	if c.TT {
		return false
	}
	for _, g := range c.Formulas {
		if g.Key() == f.Key() {
			return true
		}
	}
	return false
}

// removeNonMinimal drops a transition (label, to) when another
// transition (label2, to2) from the same source dominates it: label is
// at least as restrictive as label2 (label2 fires whenever label does,
// i.e. label.IsSubset(label2)) and to2's remaining obligations are a
// subset of to's (spec.md §4.3 step 5 — fewer remaining obligations is
// the better outcome). Concretely, (label2, to2) makes (label, to)
// redundant when label.IsSubset(label2) and to2.IsSubset(to). Accepting
// set membership is not compared.
func removeNonMinimal(edges []Edge, conjunctions map[string]ltl.Conjunction) []Edge {
	keep := make([]bool, len(edges))
	for i := range edges {
		keep[i] = true
	}
	for i, ei := range edges {
		for j, ej := range edges {
			if i == j {
				continue
			}
			if ei.Label.Key() == ej.Label.Key() && ei.To == ej.To {
				continue
			}
			toI := conjunctions[ei.To]
			toJ := conjunctions[ej.To]
			if ei.Label.IsSubset(ej.Label) && toJ.IsSubset(toI) {
				keep[i] = false
				break
			}
		}
	}
	var out []Edge
	for i, e := range edges {
		if keep[i] {
			out = append(out, e)
		}
	}
	return out
}

// ---- simplify.Automaton[string] adapter ----

type label struct{ c ltl.SymbolConjunction }

func (l label) Key() string { return l.c.Key() }
func (l label) IsSubset(other simplify.SymbolSet) bool {
	return l.c.IsSubset(other.(label).c)
}

// Adapter exposes g through the simplify.Automaton[string] capability
// interface used by automaton/simplify.FixedPoint.
type Adapter struct{ G *GBA }

func (a Adapter) States() []string  { return a.G.Order }
func (a Adapter) Initial() []string { return []string{a.G.Initial} }

func (a Adapter) Transitions(s string) []simplify.Edge[string] {
	edges := a.G.Delta[s]
	out := make([]simplify.Edge[string], len(edges))
	for i, e := range edges {
		out[i] = simplify.Edge[string]{Label: label{e.Label}, To: e.To}
	}
	return out
}

// Fingerprint encodes accepting-set membership: two states only ever
// merge if they discharge exactly the same Until subformulas on their
// own outgoing transitions in the same pattern, captured here by the
// set of remaining (undischarged) obligations itself, which is exactly
// the Conjunction content.
func (a Adapter) Fingerprint(s string) string {
	return a.G.Conjunctions[s].Key()
}

// Dominates reports whether x has no more outstanding obligations than
// y (spec.md §4.3 step 5's reversed subset sense).
func (a Adapter) Dominates(x, y string) bool {
	return a.G.Conjunctions[x].IsSubset(a.G.Conjunctions[y])
}

func (a Adapter) Prune(keep map[string]bool) {
	g := a.G
	newOrder := make([]string, 0, len(g.Order))
	for _, s := range g.Order {
		if keep[s] {
			newOrder = append(newOrder, s)
		} else {
			delete(g.Conjunctions, s)
			delete(g.Delta, s)
		}
	}
	g.Order = newOrder
	for s, edges := range g.Delta {
		var filtered []Edge
		for _, e := range edges {
			if keep[e.To] {
				filtered = append(filtered, e)
			}
		}
		g.Delta[s] = filtered
	}
}

func (a Adapter) RewriteTransitions(s string, edges []simplify.Edge[string]) {
	out := make([]Edge, len(edges))
	for i, e := range edges {
		orig := findOrigEdge(a.G.Delta[s], e.Label.(label).c, e.To)
		out[i] = Edge{Label: e.Label.(label).c, To: e.To, AcceptFor: orig.AcceptFor}
	}
	a.G.Delta[s] = out
}

func findOrigEdge(edges []Edge, l ltl.SymbolConjunction, to string) Edge {
	for _, e := range edges {
		if e.Label.Key() == l.Key() && e.To == to {
			return e
		}
	}
	return Edge{}
}

func (a Adapter) MergeStates(winner string, losers []string) {
	g := a.G
	loserSet := make(map[string]bool, len(losers))
	for _, l := range losers {
		loserSet[l] = true
	}
	if loserSet[g.Initial] {
		g.Initial = winner
	}
	for s, edges := range g.Delta {
		if loserSet[s] {
			continue
		}
		for i, e := range edges {
			if loserSet[e.To] {
				edges[i].To = winner
			}
		}
		g.Delta[s] = dedupEdges(edges)
	}
	newOrder := make([]string, 0, len(g.Order))
	for _, s := range g.Order {
		if !loserSet[s] {
			newOrder = append(newOrder, s)
		}
	}
	g.Order = newOrder
	for _, l := range losers {
		delete(g.Conjunctions, l)
		delete(g.Delta, l)
	}
}

func dedupEdges(edges []Edge) []Edge {
	seen := make(map[string]Edge, len(edges))
	order := make([]string, 0, len(edges))
	for _, e := range edges {
		key := e.Label.Key() + "|" + e.To
		if _, ok := seen[key]; !ok {
			order = append(order, key)
		}
		seen[key] = e
	}
	sort.Strings(order)
	out := make([]Edge, len(order))
	for i, k := range order {
		out[i] = seen[k]
	}
	return out
}

// Simplify runs the shared fixed-point reduction over g in place.
func Simplify(g *GBA) {
	simplify.FixedPoint[string](Adapter{G: g})
}

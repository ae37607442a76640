// Package verify wires the full pipeline together (spec.md §6): parse
// (by the caller, via ltl.Parse), negate, reduce, normalize to PNF,
// build a VWAA, fold it into a GBA, simplify, degeneralize into an
// NBA, simplify again, then run the bounded nested DFS over the
// product of the program graph and the NBA.
package verify

import (
	"github.com/gclverify/ltlcheck/automaton/gba"
	"github.com/gclverify/ltlcheck/automaton/nba"
	"github.com/gclverify/ltlcheck/automaton/vwaa"
	"github.com/gclverify/ltlcheck/ltl"
	"github.com/gclverify/ltlcheck/pg"
	"github.com/gclverify/ltlcheck/product"
	"github.com/gclverify/ltlcheck/search"
)

// Result is the outcome of Verify: Holds is true iff the formula holds
// on every interleaved behavior of the program graph. Verdict carries
// the raw search.Verdict — a CycleFound witness when Holds is false, or
// a DepthExceeded when the search was inconclusive (callers that care
// about that distinction should type-switch on Verdict rather than
// trust Holds alone in that case).
type Result struct {
	Holds   bool
	Verdict search.Verdict
}

// Verify checks formula against a single-process program graph
// (VerifyParallel handles a pg.ParallelProgramGraph) starting from
// initialMemory, bounding the nested DFS to maxDepth transitions.
//
// The automaton built and searched is for the *negation* of formula:
// an accepting run of it is a behavior where formula fails, so a
// CycleFound verdict means the formula is violated and an exhausted
// search (FormulaHolds) means it holds everywhere.
func Verify(program pg.ProgramGraph, ev pg.Evaluator, formula ltl.Surface, initialMemory pg.Memory, maxDepth int) Result {
	a := buildAutomaton(formula)
	sys := product.Single(program, ev, a)
	return run(sys, initialMemory, maxDepth)
}

// VerifyParallel is Verify for an interleaving of several processes.
func VerifyParallel(program pg.ParallelProgramGraph, ev pg.Evaluator, formula ltl.Surface, initialMemory pg.Memory, maxDepth int) Result {
	a := buildAutomaton(formula)
	sys := product.Parallel(program, ev, a)
	return run(sys, initialMemory, maxDepth)
}

func buildAutomaton(formula ltl.Surface) *nba.NBA {
	negated := ltl.SNot{F: formula}
	reduced := ltl.Reduce(negated)
	pnf := ltl.ToPNF(reduced)

	w := vwaa.FromPNL(pnf)
	g := gba.FromVWAA(w)
	gba.Simplify(g)
	a := nba.FromGBA(g)
	nba.Simplify(a)
	return a
}

func run(sys *product.System, initialMemory pg.Memory, maxDepth int) Result {
	initial := sys.Initial(initialMemory)
	v := search.Run(sys, initial, maxDepth)
	switch v.(type) {
	case search.FormulaHolds:
		return Result{Holds: true, Verdict: v}
	default:
		return Result{Holds: false, Verdict: v}
	}
}

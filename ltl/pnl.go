package ltl

import (
	"fmt"
	"strings"

	"github.com/gclverify/ltlcheck/internal/oset"
)

// PNL is a positive-normal-form LTL formula (spec.md §3): negations
// appear only on atomic propositions. PNL formulas double as VWAA/GBA
// state content (spec.md §3 "VWAA", "GBA"), so every node exposes Key(),
// a canonical string used for hashing, equality and total ordering —
// structurally equal formulas always produce the same Key().
type PNL interface {
	fmt.Stringer
	pnlNode()
	// Key returns a canonical string uniquely identifying this formula's
	// structure; used as a map key and sort key throughout automaton/.
	Key() string
}

type PTrue struct{}
type PFalse struct{}
type PAtomic struct{ Expr BoolExpr }
type PNegAtomic struct{ Expr BoolExpr }
type PAnd struct{ L, R PNL }
type POr struct{ L, R PNL }
type PNext struct{ F PNL }
type PUntil struct{ L, R PNL }
type PRelease struct{ L, R PNL }

func (PTrue) pnlNode()      {}
func (PFalse) pnlNode()     {}
func (PAtomic) pnlNode()    {}
func (PNegAtomic) pnlNode() {}
func (PAnd) pnlNode()       {}
func (POr) pnlNode()        {}
func (PNext) pnlNode()      {}
func (PUntil) pnlNode()     {}
func (PRelease) pnlNode()   {}

func (PTrue) String() string        { return "tt" }
func (PFalse) String() string       { return "ff" }
func (f PAtomic) String() string    { return f.Expr.String() }
func (f PNegAtomic) String() string { return "!" + f.Expr.String() }
func (f PAnd) String() string       { return "(" + f.L.String() + " && " + f.R.String() + ")" }
func (f POr) String() string        { return "(" + f.L.String() + " || " + f.R.String() + ")" }
func (f PNext) String() string      { return "O" + f.F.String() }
func (f PUntil) String() string     { return "(" + f.L.String() + " U " + f.R.String() + ")" }
func (f PRelease) String() string   { return "(" + f.L.String() + " R " + f.R.String() + ")" }

// Leaf Keys reuse String() (atoms get a "+"/"-" sign prefix); composite
// nodes use a prefix notation over their children's Keys.
func (f PTrue) Key() string      { return f.String() }
func (f PFalse) Key() string     { return f.String() }
func (f PAtomic) Key() string    { return "+" + f.String() }
func (f PNegAtomic) Key() string { return "-" + f.String() }
func (f PAnd) Key() string       { return "A(" + f.L.Key() + "," + f.R.Key() + ")" }
func (f POr) Key() string        { return "O(" + f.L.Key() + "," + f.R.Key() + ")" }
func (f PNext) Key() string      { return "X(" + f.F.Key() + ")" }
func (f PUntil) Key() string     { return "U(" + f.L.Key() + "," + f.R.Key() + ")" }
func (f PRelease) Key() string   { return "R(" + f.L.Key() + "," + f.R.Key() + ")" }

// ToPNF applies the positive-normal-form rewrite rules of spec.md §4.1:
//
//	!!a        ≡ a
//	!(a && b)  ≡ !a || !b
//	!Xa        ≡ X!a
//	!(a U b)   ≡ !a R !b
//	!True      ≡ False
//	!Atomic(p) ≡ NegAtomic(p)
func ToPNF(f Reduced) PNL {
	switch f := f.(type) {
	case RTrue:
		return PTrue{}
	case RAtomic:
		return PAtomic{f.Expr}
	case RAnd:
		return PAnd{ToPNF(f.L), ToPNF(f.R)}
	case RNext:
		return PNext{ToPNF(f.F)}
	case RUntil:
		return PUntil{ToPNF(f.L), ToPNF(f.R)}
	case RNot:
		return pnfNeg(f.F)
	default:
		panic(fmt.Sprintf("ltl: ToPNF: unhandled Reduced node %T", f))
	}
}

// pnfNeg computes ToPNF(RNot{f}) by pushing the negation through f.
func pnfNeg(f Reduced) PNL {
	switch f := f.(type) {
	case RTrue:
		return PFalse{}
	case RAtomic:
		return PNegAtomic{f.Expr}
	case RNot:
		return ToPNF(f.F) // double negation cancels
	case RAnd:
		return POr{pnfNeg(f.L), pnfNeg(f.R)}
	case RNext:
		return PNext{pnfNeg(f.F)}
	case RUntil:
		return PRelease{pnfNeg(f.L), pnfNeg(f.R)}
	default:
		panic(fmt.Sprintf("ltl: ToPNF: unhandled Reduced node under negation %T", f))
	}
}

// TemporalSubformulas collects the VWAA "states" set of spec.md §4.2:
// every leaf (True/False/Atomic/NegAtomic) and every Next/Until/Release
// subformula of f, deduplicated by Key(). And/Or nodes are not
// themselves included — only their descendants are.
func TemporalSubformulas(f PNL) []PNL {
	acc := make(map[string]PNL)
	collectTemporal(f, acc)
	return sortedByKey(acc)
}

func collectTemporal(f PNL, acc map[string]PNL) {
	switch f := f.(type) {
	case PTrue:
		acc[f.Key()] = f
	case PFalse:
		acc[f.Key()] = f
	case PAtomic:
		acc[f.Key()] = f
	case PNegAtomic:
		acc[f.Key()] = f
	case PAnd:
		collectTemporal(f.L, acc)
		collectTemporal(f.R, acc)
	case POr:
		collectTemporal(f.L, acc)
		collectTemporal(f.R, acc)
	case PNext:
		acc[f.Key()] = f
		collectTemporal(f.F, acc)
	case PUntil:
		acc[f.Key()] = f
		collectTemporal(f.L, acc)
		collectTemporal(f.R, acc)
	case PRelease:
		acc[f.Key()] = f
		collectTemporal(f.L, acc)
		collectTemporal(f.R, acc)
	default:
		panic(fmt.Sprintf("ltl: TemporalSubformulas: unhandled PNL node %T", f))
	}
}

// UntilSubformulas collects every Until(·,·) subformula of f
// (spec.md §3 "final_states").
func UntilSubformulas(f PNL) []PNL {
	acc := make(map[string]PNL)
	collectUntil(f, acc)
	return sortedByKey(acc)
}

func collectUntil(f PNL, acc map[string]PNL) {
	switch f := f.(type) {
	case PTrue, PFalse, PAtomic, PNegAtomic:
		// no-op
	case PAnd:
		collectUntil(f.L, acc)
		collectUntil(f.R, acc)
	case POr:
		collectUntil(f.L, acc)
		collectUntil(f.R, acc)
	case PNext:
		collectUntil(f.F, acc)
	case PUntil:
		acc[f.Key()] = f
		collectUntil(f.L, acc)
		collectUntil(f.R, acc)
	case PRelease:
		collectUntil(f.L, acc)
		collectUntil(f.R, acc)
	default:
		panic(fmt.Sprintf("ltl: UntilSubformulas: unhandled PNL node %T", f))
	}
}

// Bar computes the co-conjunctive expansion of spec.md §4.2:
//
//	bar(a && b) = bar(a) ∪ bar(b)
//	bar(a || b) = bar(a) ∪ bar(b)
//	otherwise   = {φ}
//
// Unlike a naive reading of the published algorithm (which special-cases
// leaves to the empty set), spec.md's "otherwise bar(φ) = {φ}" clause
// covers True/False/Atomic/NegAtomic/Next/Until/Release alike: this is
// what makes the resulting automaton check an atomic proposition
// written at the top level of a formula on its very first step, instead
// of vacuously skipping it (see DESIGN.md).
func Bar(f PNL) []PNL {
	switch f := f.(type) {
	case PAnd:
		return unionByKey(Bar(f.L), Bar(f.R))
	case POr:
		return unionByKey(Bar(f.L), Bar(f.R))
	default:
		return []PNL{f}
	}
}

func sortedByKey(m map[string]PNL) []PNL {
	vals := make([]PNL, 0, len(m))
	for _, f := range m {
		vals = append(vals, f)
	}
	return oset.Sorted(vals, PNL.Key)
}

func unionByKey(a, b []PNL) []PNL {
	acc := make(map[string]PNL, len(a)+len(b))
	for _, f := range a {
		acc[f.Key()] = f
	}
	for _, f := range b {
		acc[f.Key()] = f
	}
	return sortedByKey(acc)
}

// keyJoin is a small helper for building composite Key()s elsewhere in
// package ltl and automaton/* from a sorted slice of formula keys.
func keyJoin(keys []string) string {
	return strings.Join(keys, "&")
}

package ltl

import "fmt"

// Surface is the full LTL surface syntax of spec.md §3: true, an atomic
// Boolean expression, and the unary/binary connectives a user can write,
// including the derived ones (Or, Implies, Iff, Xor, Eventually,
// Forever) that Reduce rewrites away.
//
// It is a sealed interface: the only implementations are the types in
// this file, each tagged by an unexported surfaceNode method so that no
// other package can satisfy it.
type Surface interface {
	fmt.Stringer
	surfaceNode()
}

// STrue is the formula "true".
type STrue struct{}

// SAtomic wraps an atomic Boolean expression over memory.
type SAtomic struct{ Expr BoolExpr }

// SNot is logical negation.
type SNot struct{ F Surface }

// SAnd is logical conjunction.
type SAnd struct{ L, R Surface }

// SOr is logical disjunction.
type SOr struct{ L, R Surface }

// SImplies is logical implication, right-associative in the surface
// grammar (spec.md §6).
type SImplies struct{ L, R Surface }

// SIff is logical biconditional.
type SIff struct{ L, R Surface }

// SXor is exclusive or.
type SXor struct{ L, R Surface }

// SNext is the temporal "next" operator, written `()`.
type SNext struct{ F Surface }

// SEventually is `<>`, "eventually".
type SEventually struct{ F Surface }

// SForever is `[]`, "forever"/"always".
type SForever struct{ F Surface }

// SUntil is the binary "until" operator.
type SUntil struct{ L, R Surface }

func (STrue) surfaceNode()       {}
func (SAtomic) surfaceNode()     {}
func (SNot) surfaceNode()        {}
func (SAnd) surfaceNode()        {}
func (SOr) surfaceNode()         {}
func (SImplies) surfaceNode()    {}
func (SIff) surfaceNode()        {}
func (SXor) surfaceNode()        {}
func (SNext) surfaceNode()       {}
func (SEventually) surfaceNode() {}
func (SForever) surfaceNode()    {}
func (SUntil) surfaceNode()      {}

func (STrue) String() string        { return "true" }
func (f SAtomic) String() string    { return "{" + f.Expr.String() + "}" }
func (f SNot) String() string       { return "!" + parenIfComposite(f.F) }
func (f SAnd) String() string       { return "(" + f.L.String() + " && " + f.R.String() + ")" }
func (f SOr) String() string        { return "(" + f.L.String() + " || " + f.R.String() + ")" }
func (f SImplies) String() string   { return "(" + f.L.String() + " -> " + f.R.String() + ")" }
func (f SIff) String() string       { return "(" + f.L.String() + " <-> " + f.R.String() + ")" }
func (f SXor) String() string       { return "(" + f.L.String() + " xor " + f.R.String() + ")" }
func (f SNext) String() string      { return "()" + parenIfComposite(f.F) }
func (f SEventually) String() string { return "<>" + parenIfComposite(f.F) }
func (f SForever) String() string   { return "[]" + parenIfComposite(f.F) }
func (f SUntil) String() string     { return "(" + f.L.String() + " U " + f.R.String() + ")" }

func parenIfComposite(f Surface) string {
	switch f.(type) {
	case STrue, SAtomic:
		return f.String()
	default:
		return "(" + f.String() + ")"
	}
}

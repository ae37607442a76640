package expr

import (
	"fmt"

	"github.com/gclverify/ltlcheck/pg"
)

// Evaluator implements pg.Evaluator over this package's BoolExpr/Arith
// reference language.
type Evaluator struct{}

// Eval reports whether e (a BoolExpr produced by ParseAtom)
// holds in mem. Any other concrete type, or an evaluation error (e.g.
// an undeclared variable), is treated conservatively as "does not
// hold" — a malformed or stale atomic proposition must never abort a
// search (spec.md §5).
func (Evaluator) Eval(e interface{ String() string }, mem pg.Memory) (bool, error) {
	be, ok := e.(BoolExpr)
	if !ok {
		return false, fmt.Errorf("expr: Eval: %T is not an expr.BoolExpr", e)
	}
	m, ok := mem.(Memory)
	if !ok {
		return false, fmt.Errorf("expr: Eval: %T is not an expr.Memory", mem)
	}
	return be.eval(m)
}

// Step applies action's effect to mem.
func (Evaluator) Step(action pg.Action, mem pg.Memory) (pg.Memory, error) {
	m, ok := mem.(Memory)
	if !ok {
		return nil, fmt.Errorf("expr: Step: %T is not an expr.Memory", mem)
	}
	switch a := action.(type) {
	case pg.Skip:
		return m, nil
	case Guard:
		return m, nil
	case Assign:
		v, err := a.Expr.value(m)
		if err != nil {
			return nil, err
		}
		return m.With(a.Var, v), nil
	default:
		return nil, fmt.Errorf("expr: Step: unsupported action type %T", action)
	}
}

package expr

import "fmt"

// Assign is a program-graph action `x := a`, implementing pg.Action.
type Assign struct {
	Var  string
	Expr Arith
}

func (a Assign) String() string {
	return a.Var + " := " + a.Expr.String()
}

// Guard is a program-graph action that is enabled only when Expr
// holds, and otherwise does not change memory — the GCL `B -> S`
// guarded-command test, modeled as its own action so it can appear on
// an edge by itself.
type Guard struct {
	Expr BoolExpr
}

func (g Guard) String() string { return g.Expr.String() }

// GuardCondition implements pg.Guarded.
func (g Guard) GuardCondition() interface{ String() string } { return g.Expr }

var _ fmt.Stringer = Assign{}

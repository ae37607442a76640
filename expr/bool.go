package expr

import "fmt"

// BoolExpr is the reference atomic-proposition language: implements
// ltl.BoolExpr via String(), and is evaluated against a Memory by
// Evaluator.Eval.
type BoolExpr interface {
	fmt.Stringer
	eval(m Memory) (bool, error)
}

// Arith is an integer-valued term: a variable, an integer literal, or
// a binary arithmetic operation.
type Arith interface {
	fmt.Stringer
	value(m Memory) (int, error)
}

type Var string

func (v Var) String() string { return string(v) }
func (v Var) value(m Memory) (int, error) {
	val, ok := m[string(v)]
	if !ok {
		return 0, fmt.Errorf("expr: Var.value: undeclared variable %q", string(v))
	}
	return val, nil
}

type IntLit int

func (n IntLit) String() string             { return fmt.Sprintf("%d", int(n)) }
func (n IntLit) value(Memory) (int, error) { return int(n), nil }

type ArithOp string

const (
	OpAdd ArithOp = "+"
	OpSub ArithOp = "-"
	OpMul ArithOp = "*"
)

type BinArith struct {
	Op   ArithOp
	L, R Arith
}

func (b BinArith) String() string {
	return "(" + b.L.String() + " " + string(b.Op) + " " + b.R.String() + ")"
}

func (b BinArith) value(m Memory) (int, error) {
	l, err := b.L.value(m)
	if err != nil {
		return 0, err
	}
	r, err := b.R.value(m)
	if err != nil {
		return 0, err
	}
	switch b.Op {
	case OpAdd:
		return l + r, nil
	case OpSub:
		return l - r, nil
	case OpMul:
		return l * r, nil
	default:
		return 0, fmt.Errorf("expr: BinArith.value: unknown operator %q", b.Op)
	}
}

// CompareOp is an integer comparison operator.
type CompareOp string

const (
	OpEq  CompareOp = "="
	OpNeq CompareOp = "!="
	OpLt  CompareOp = "<"
	OpLeq CompareOp = "<="
	OpGt  CompareOp = ">"
	OpGeq CompareOp = ">="
)

// Compare is an atomic proposition comparing two Arith terms.
type Compare struct {
	Op   CompareOp
	L, R Arith
}

func (c Compare) String() string {
	return c.L.String() + " " + string(c.Op) + " " + c.R.String()
}

func (c Compare) eval(m Memory) (bool, error) {
	l, err := c.L.value(m)
	if err != nil {
		return false, err
	}
	r, err := c.R.value(m)
	if err != nil {
		return false, err
	}
	switch c.Op {
	case OpEq:
		return l == r, nil
	case OpNeq:
		return l != r, nil
	case OpLt:
		return l < r, nil
	case OpLeq:
		return l <= r, nil
	case OpGt:
		return l > r, nil
	case OpGeq:
		return l >= r, nil
	default:
		return false, fmt.Errorf("expr: Compare.eval: unknown operator %q", c.Op)
	}
}

// Not, And and Or let a single `{ ... }` atom express small Boolean
// combinations of comparisons, e.g. "{n = 0 && m != 1}".
type Not struct{ F BoolExpr }

func (n Not) String() string { return "!(" + n.F.String() + ")" }
func (n Not) eval(m Memory) (bool, error) {
	v, err := n.F.eval(m)
	return !v, err
}

type And struct{ L, R BoolExpr }

func (a And) String() string { return "(" + a.L.String() + " && " + a.R.String() + ")" }
func (a And) eval(m Memory) (bool, error) {
	l, err := a.L.eval(m)
	if err != nil || !l {
		return false, err
	}
	return a.R.eval(m)
}

type Or struct{ L, R BoolExpr }

func (o Or) String() string { return "(" + o.L.String() + " || " + o.R.String() + ")" }
func (o Or) eval(m Memory) (bool, error) {
	l, err := o.L.eval(m)
	if err != nil {
		return false, err
	}
	if l {
		return true, nil
	}
	return o.R.eval(m)
}

type BoolLit bool

func (b BoolLit) String() string {
	if b {
		return "true"
	}
	return "false"
}
func (b BoolLit) eval(Memory) (bool, error) { return bool(b), nil }

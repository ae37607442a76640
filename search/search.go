// Package search implements bounded nested depth-first search over a
// product transition system (spec.md §5): an outer search finds
// Büchi-accepting states reachable from the initial state, and for
// each one an inner search looks for a cycle back to it. Since the
// product's NBA component comes from the *negated* formula, finding
// such an accepting cycle is a witness that the original formula is
// violated; finding none (having exhausted the reachable state space)
// means it holds.
package search

import "github.com/gclverify/ltlcheck/product"

// Verdict is the sealed result of a Run.
type Verdict interface {
	verdictNode()
}

// FormulaHolds means the outer search exhausted every reachable product
// state without finding an accepting cycle: the formula holds on every
// behavior of the program.
type FormulaHolds struct{}

// CycleFound means Trace[:CycleStart+1] reaches an accepting state and
// Trace[CycleStart:] is a cycle back to it — a lasso-shaped witness
// that the formula is violated.
type CycleFound struct {
	Trace      []product.State
	CycleStart int
}

// ViolatingStateReached is reserved for a future direct safety-violation
// short-circuit (detecting that no accepting cycle can possibly exist
// from a dead-end state without exploring it) — Run never produces it
// today; ordinary cycle detection already covers every scenario this
// module's verify pipeline exercises, since a safety violation shows up
// as an accepting self-loop or short cycle at the violating
// configuration once it has been degeneralized into the NBA.
type ViolatingStateReached struct{}

// DepthExceeded means the search hit maxDepth before resolving either
// way; the caller should treat this as inconclusive, not as a verdict.
type DepthExceeded struct{}

func (FormulaHolds) verdictNode()          {}
func (CycleFound) verdictNode()            {}
func (ViolatingStateReached) verdictNode() {}
func (DepthExceeded) verdictNode()         {}

// Run performs the bounded nested DFS from initial: the outer search
// never explores past maxDepth transitions from initial, and each inner
// search never explores past maxDepth transitions from its accepting
// seed.
func Run(system *product.System, initial product.State, maxDepth int) Verdict {
	r := &runner{system: system, maxDepth: maxDepth, outerVisited: map[string]bool{}}
	if r.outerDFS(initial, 0) {
		return r.result
	}
	return FormulaHolds{}
}

type runner struct {
	system       *product.System
	maxDepth     int
	outerVisited map[string]bool
	outerStack   []product.State
	result       Verdict
}

func (r *runner) outerDFS(s product.State, depth int) bool {
	if depth > r.maxDepth {
		r.result = DepthExceeded{}
		return true
	}
	if r.outerVisited[s.Key()] {
		return false
	}
	r.outerVisited[s.Key()] = true
	r.outerStack = append(r.outerStack, s)

	if r.system.Accepting(s) {
		cycle, found, exceeded := reachableCycle(r.system, s, r.maxDepth)
		if exceeded {
			r.result = DepthExceeded{}
			return true
		}
		if found {
			trace := append(append([]product.State(nil), r.outerStack...), cycle[1:]...)
			r.result = CycleFound{Trace: trace, CycleStart: len(r.outerStack) - 1}
			return true
		}
	}

	for _, succ := range r.system.Step(s) {
		if r.outerDFS(succ, depth+1) {
			return true
		}
	}

	r.outerStack = r.outerStack[:len(r.outerStack)-1]
	return false
}

// reachableCycle searches for a path from seed back to seed, using its
// own visited set (states the outer search has already seen are fair
// game here — only states visited within this particular inner search
// are excluded, per the standard nested-DFS discipline).
func reachableCycle(system *product.System, seed product.State, maxDepth int) (path []product.State, found bool, exceeded bool) {
	visited := map[string]bool{}
	path = []product.State{seed}

	var dfs func(cur product.State, depth int) bool
	dfs = func(cur product.State, depth int) bool {
		if depth > maxDepth {
			exceeded = true
			return false
		}
		for _, succ := range system.Step(cur) {
			if succ.Key() == seed.Key() {
				path = append(path, succ)
				return true
			}
			if visited[succ.Key()] {
				continue
			}
			visited[succ.Key()] = true
			path = append(path, succ)
			if dfs(succ, depth+1) {
				return true
			}
			path = path[:len(path)-1]
			if exceeded {
				return false
			}
		}
		return false
	}

	found = dfs(seed, 0)
	return path, found, exceeded
}

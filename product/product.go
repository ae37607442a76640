// Package product lazily builds the product transition system of a
// (possibly parallel) program graph and an NBA (spec.md §5): states are
// only ever computed on demand from Step, never materialized up front,
// since the full state space is potentially infinite (unbounded
// integer variables).
package product

import (
	"sort"
	"strconv"
	"strings"

	"github.com/gclverify/ltlcheck/automaton/nba"
	"github.com/gclverify/ltlcheck/ltl"
	"github.com/gclverify/ltlcheck/pg"
)

// Config is one program-side configuration: the current node of every
// process, plus the shared memory.
type Config struct {
	Nodes []pg.NodeID
	Mem   pg.Memory
}

// Key is a deterministic structural key for Config, used by search/ to
// detect revisited configurations.
func (c Config) Key() string {
	parts := make([]string, len(c.Nodes))
	for i, n := range c.Nodes {
		parts[i] = strconv.Itoa(int(n))
	}
	return strings.Join(parts, ",") + "|" + c.Mem.Key()
}

// State is one node of the product transition system: a program
// configuration paired with an NBA state.
type State struct {
	Cfg      Config
	NBAState string
}

// Key is a deterministic structural key for State.
func (s State) Key() string { return s.Cfg.Key() + "@" + s.NBAState }

// System couples a set of interleaved processes with the NBA of the
// (negated) formula under verification.
type System struct {
	Processes []pg.ProgramGraph
	Eval      pg.Evaluator
	Automaton *nba.NBA
}

// Single builds a System for one sequential program graph.
func Single(g pg.ProgramGraph, ev pg.Evaluator, a *nba.NBA) *System {
	return &System{Processes: []pg.ProgramGraph{g}, Eval: ev, Automaton: a}
}

// Parallel builds a System for an interleaving of several processes.
func Parallel(p pg.ParallelProgramGraph, ev pg.Evaluator, a *nba.NBA) *System {
	return &System{Processes: p.Processes(), Eval: ev, Automaton: a}
}

// Initial returns the system's single initial product state: every
// process at its Start node, combined with the NBA's initial state.
// (Step already checks outgoing-edge labels against the departing
// state's own memory, so there is no need to special-case the very
// first letter the way a one-step-ahead construction would.)
func (s *System) Initial(mem pg.Memory) State {
	nodes := make([]pg.NodeID, len(s.Processes))
	for i, p := range s.Processes {
		nodes[i] = p.Start()
	}
	return State{Cfg: Config{Nodes: nodes, Mem: mem}, NBAState: s.Automaton.Initial}
}

// configOption is one way a single process can move from its current
// node: either a genuine program edge, or — when the process has no
// enabled outgoing edge at all — a synthesized stutter step that
// leaves it in place, so a deadlocked process never blocks the other
// processes (or, for a single sequential program that has terminated,
// becomes a self-loop on the terminal configuration, which is the
// standard way of extending a finite computation to an infinite word
// for LTL purposes).
type configOption struct {
	action pg.Action
	to     pg.NodeID
}

func (s *System) processOptions(i int, node pg.NodeID, mem pg.Memory) []configOption {
	edges := s.Processes[i].Edges(node)
	var opts []configOption
	for _, e := range edges {
		if g, ok := e.Action.(pg.Guarded); ok {
			held, err := s.Eval.Eval(g.GuardCondition(), mem)
			if err != nil || !held {
				continue
			}
		}
		opts = append(opts, configOption{action: e.Action, to: e.To})
	}
	if len(opts) == 0 {
		return []configOption{{action: pg.Skip{}, to: node}}
	}
	return opts
}

// Successors returns every Config reachable from cfg in one
// interleaving step (exactly one process moves per step).
func (s *System) Successors(cfg Config) []Config {
	var out []Config
	for i := range s.Processes {
		for _, opt := range s.processOptions(i, cfg.Nodes[i], cfg.Mem) {
			newMem, err := s.Eval.Step(opt.action, cfg.Mem)
			if err != nil {
				continue
			}
			newNodes := append([]pg.NodeID(nil), cfg.Nodes...)
			newNodes[i] = opt.to
			out = append(out, Config{Nodes: newNodes, Mem: newMem})
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Key() < out[b].Key() })
	return out
}

// Step returns every product successor of ps: for each NBA edge out of
// ps.NBAState whose label is satisfied by ps.Cfg's memory, paired with
// every program successor of ps.Cfg.
func (s *System) Step(ps State) []State {
	var out []State
	for _, e := range s.Automaton.Delta[ps.NBAState] {
		if !symbolHolds(e.Label, ps.Cfg.Mem, s.Eval) {
			continue
		}
		for _, cfg := range s.Successors(ps.Cfg) {
			out = append(out, State{Cfg: cfg, NBAState: e.To})
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Key() < out[b].Key() })
	return out
}

// Accepting reports whether ps's NBA component is Büchi-accepting.
func (s *System) Accepting(ps State) bool {
	return s.Automaton.Accepting(ps.NBAState)
}

// symbolHolds interprets a symbol conjunction against mem. An
// evaluator error is treated as "does not hold" (spec.md §5): a
// malformed or stale atomic proposition must never abort the search.
func symbolHolds(label ltl.SymbolConjunction, mem pg.Memory, ev pg.Evaluator) bool {
	if label.TT {
		return true
	}
	for _, sym := range label.Symbols {
		held, err := ev.Eval(sym.Expr, mem)
		if err != nil {
			return false
		}
		if sym.Negated {
			held = !held
		}
		if !held {
			return false
		}
	}
	return true
}

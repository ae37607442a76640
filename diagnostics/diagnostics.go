// Package diagnostics renders a bounded snapshot of a product
// transition system for human inspection. It never participates in a
// verdict (package verify never imports it); it exists so a caller
// debugging why a formula failed can ask "what does the reachable state
// space actually look like, near the start?" without reimplementing the
// traversal package's BFS.
package diagnostics

import (
	"fmt"
	"strings"

	"github.com/gclverify/ltlcheck/internal/stategraph"
	"github.com/gclverify/ltlcheck/internal/traverse"
	"github.com/gclverify/ltlcheck/product"
)

// Report is a bounded materialization of a product.System's reachable
// states, rooted at one initial state.
type Report struct {
	Graph     *stategraph.Graph
	States    map[string]product.State
	Depths    map[string]int
	Order     []string
	Truncated bool // true if limit was hit before the frontier closed
}

// Materialize explores sys breadth-first from initial, stopping once
// limit distinct states have been discovered (the state space is
// potentially infinite, so some bound is mandatory for a CLI report).
func Materialize(sys *product.System, initial product.State, limit int) *Report {
	r := &Report{
		Graph:  stategraph.New(),
		States: map[string]product.State{initial.Key(): initial},
	}

	queue := []product.State{initial}
	visited := map[string]bool{initial.Key(): true}
	r.Graph.AddVertex(initial.Key())

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, succ := range sys.Step(cur) {
			r.Graph.AddEdge(cur.Key(), succ.Key())
			if visited[succ.Key()] {
				continue
			}
			if len(visited) >= limit {
				r.Truncated = true
				continue
			}
			visited[succ.Key()] = true
			r.States[succ.Key()] = succ
			queue = append(queue, succ)
		}
	}

	r.Depths = map[string]int{}
	order, err := traverse.BFS(r.Graph, []string{initial.Key()}, traverse.WithOnVisit(func(id string, depth int) {
		r.Depths[id] = depth
	}))
	if err == nil {
		r.Order = order
	}

	return r
}

// String renders the report as an indented, depth-ordered listing,
// suitable for direct CLI output.
func (r *Report) String() string {
	var b strings.Builder
	for _, id := range r.Order {
		s := r.States[id]
		fmt.Fprintf(&b, "%*s[%d] %s\n", r.Depths[id]*2, "", r.Depths[id], s.Key())
	}
	if r.Truncated {
		b.WriteString("... (truncated)\n")
	}
	return b.String()
}

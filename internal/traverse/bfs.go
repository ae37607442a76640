// Package traverse implements breadth-first exploration of a
// stategraph.Graph, configured in the functional-options idiom (see
// Option).
package traverse

import (
	"errors"

	"github.com/gclverify/ltlcheck/internal/stategraph"
)

// ErrGraphNil is returned when a nil *stategraph.Graph is passed to BFS.
var ErrGraphNil = errors.New("traverse: graph is nil")

// Option configures a BFS traversal.
type Option func(*options)

type options struct {
	onVisit func(id string, depth int)
}

// WithOnVisit installs a callback invoked once per vertex, in visitation
// order, with its BFS depth from the nearest root.
func WithOnVisit(fn func(id string, depth int)) Option {
	return func(o *options) { o.onVisit = fn }
}

// BFS explores g breadth-first from roots and returns every reachable
// vertex (including unreachable-but-listed roots) in visitation order.
// Roots are visited in the order given. Deterministic: g.Successors
// always returns a sorted slice, so two calls over the same graph and
// roots produce identical output.
func BFS(g *stategraph.Graph, roots []string, opts ...Option) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	visited := make(map[string]struct{}, len(roots))
	order := make([]string, 0, len(roots))
	queue := make([]struct {
		id    string
		depth int
	}, 0, len(roots))

	for _, r := range roots {
		if _, ok := visited[r]; ok {
			continue
		}
		visited[r] = struct{}{}
		queue = append(queue, struct {
			id    string
			depth int
		}{r, 0})
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		order = append(order, cur.id)
		if o.onVisit != nil {
			o.onVisit(cur.id, cur.depth)
		}

		succ, err := g.Successors(cur.id)
		if err != nil {
			// A vertex discovered only as an edge target that was never
			// separately registered still exists in the graph (AddEdge
			// auto-adds both endpoints), so this only fires for a root
			// the caller never added at all.
			continue
		}
		for _, next := range succ {
			if _, ok := visited[next]; ok {
				continue
			}
			visited[next] = struct{}{}
			queue = append(queue, struct {
				id    string
				depth int
			}{next, cur.depth + 1})
		}
	}

	return order, nil
}

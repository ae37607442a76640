// Package pgref provides a reference pg.ProgramGraph builder and a set
// of built-in scenarios used by the CLI and by this module's own tests
// (spec.md §1 Non-goals: this module never parses GCL itself — pgref
// stands in for a GCL front end by building program graphs directly).
package pgref

import (
	"sort"

	"github.com/gclverify/ltlcheck/pg"
)

// Graph is a reference pg.ProgramGraph: a fixed set of nodes and edges
// built once by Builder and never mutated afterwards.
type Graph struct {
	start NodeID
	end   NodeID
	nodes []pg.Node
	edges map[pg.NodeID][]pg.Edge
}

// NodeID is re-exported for readability at call sites; identical to
// pg.NodeID.
type NodeID = pg.NodeID

func (g *Graph) Start() NodeID { return g.start }
func (g *Graph) End() NodeID   { return g.end }

func (g *Graph) Edges(n NodeID) []pg.Edge {
	return g.edges[n]
}

func (g *Graph) Nodes() []pg.Node {
	return g.nodes
}

// Builder assembles a Graph one node/edge at a time, in the functional
// step-by-step style lvlath's core graph builder uses, adapted to
// program-graph construction: nodes are minted in call order, so two
// builds from the same sequence of calls always produce the same
// NodeIDs (spec.md's determinism requirement).
type Builder struct {
	nodes []pg.Node
	edges map[pg.NodeID][]pg.Edge
	next  pg.NodeID
}

// NewBuilder starts an empty program graph.
func NewBuilder() *Builder {
	return &Builder{edges: map[pg.NodeID][]pg.Edge{}}
}

// NewNode mints a fresh node labeled label and returns its ID.
func (b *Builder) NewNode(label string) NodeID {
	id := b.next
	b.next++
	b.nodes = append(b.nodes, pg.Node{ID: id, Label: label})
	return id
}

// AddEdge adds a from->to transition labeled by action.
func (b *Builder) AddEdge(from NodeID, action pg.Action, to NodeID) {
	b.edges[from] = append(b.edges[from], pg.Edge{From: from, Action: action, To: to})
}

// Build finalizes the graph with the given start and end nodes. Each
// node's outgoing edges are sorted by target ID, then by action
// string, so Edges() is deterministic regardless of AddEdge call order.
func (b *Builder) Build(start, end NodeID) *Graph {
	edges := make(map[pg.NodeID][]pg.Edge, len(b.edges))
	for n, es := range b.edges {
		cp := append([]pg.Edge(nil), es...)
		sort.Slice(cp, func(i, j int) bool {
			if cp[i].To != cp[j].To {
				return cp[i].To < cp[j].To
			}
			return cp[i].Action.String() < cp[j].Action.String()
		})
		edges[n] = cp
	}
	nodes := append([]pg.Node(nil), b.nodes...)
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID < nodes[j].ID })
	return &Graph{start: start, end: end, nodes: nodes, edges: edges}
}

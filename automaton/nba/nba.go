// Package nba degeneralizes a generalized Büchi automaton with k
// accepting sets F_0..F_{k-1} into an ordinary (single acceptance set)
// non-deterministic Büchi automaton with k+1 layers (spec.md §4.5). A
// state (q, j) tracks how many of the accepting sets, in order starting
// from the layer it is currently parked at, the run has just witnessed
// consecutively without a gap: taking a GBA transition in F_j advances
// the layer to j+1, taking one in F_j and F_{j+1} advances it to j+2,
// and so on, as far as the run of consecutive accepting sets reaches,
// up to the top layer k. A transition outside F_j leaves the layer
// where it is. Reaching layer k is acceptance — at that point the next
// transition restarts the chase from layer 0. With k=0 (no Until
// subformula to track) every state sits at the sole layer 0, which is
// also the top layer, so every state is accepting.
package nba

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/gclverify/ltlcheck/automaton/gba"
	"github.com/gclverify/ltlcheck/automaton/simplify"
	"github.com/gclverify/ltlcheck/ltl"
)

// Edge is one NBA transition.
type Edge struct {
	Label ltl.SymbolConjunction
	To    string
}

// NBA is a non-deterministic Büchi automaton over (GBA state, layer)
// pairs, flattened to string keys of the form "<gbaStateKey>#<layer>".
type NBA struct {
	Order      []string
	Initial    string
	Delta      map[string][]Edge
	TopLayer   int // k, the GBA's accepting-set count; layers range 0..=TopLayer
	gbaState   map[string]string          // nba key -> underlying GBA state key
	layerOf    map[string]int             // nba key -> layer
	obligation map[string]ltl.Conjunction // gba state key -> remaining obligations, for domination checks
}

func key(q string, j int) string { return q + "#" + strconv.Itoa(j) }

func splitKey(k string) (string, int) {
	i := strings.LastIndexByte(k, '#')
	j, _ := strconv.Atoi(k[i+1:])
	return k[:i], j
}

// Accepting reports whether s is a Büchi-accepting NBA state: its layer
// has reached the top layer (spec.md §4.5's "a state (q, top_layer) is
// accepting").
func (n *NBA) Accepting(s string) bool {
	return n.layerOf[s] == n.TopLayer
}

// FromGBA builds the NBA for g (spec.md §4.5).
func FromGBA(g *gba.GBA) *NBA {
	k := len(g.Until)

	n := &NBA{
		Delta:      map[string][]Edge{},
		TopLayer:   k,
		gbaState:   map[string]string{},
		layerOf:    map[string]int{},
		obligation: map[string]ltl.Conjunction{},
	}
	for s, c := range g.Conjunctions {
		n.obligation[s] = c
	}

	n.Initial = key(g.Initial, 0)
	visited := map[string]bool{n.Initial: true}
	n.gbaState[n.Initial] = g.Initial
	n.layerOf[n.Initial] = 0
	queue := []string{n.Initial}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		q, j := splitKey(cur)

		var edges []Edge
		for _, e := range g.Delta[q] {
			nj := nextLayer(e.AcceptFor, j, k)
			toKey := key(e.To, nj)
			if !visited[toKey] {
				visited[toKey] = true
				n.gbaState[toKey] = e.To
				n.layerOf[toKey] = nj
				queue = append(queue, toKey)
			}
			edges = append(edges, Edge{Label: e.Label, To: toKey})
		}
		n.Delta[cur] = edges
	}

	order := make([]string, 0, len(visited))
	for s := range visited {
		order = append(order, s)
	}
	sort.Strings(order)
	n.Order = order
	return n
}

// nextLayer implements spec.md §4.5's next(j, q, alpha, q', F): starting
// from j (or 0 if j is already the top layer), advance through as many
// consecutive accepting sets F_start, F_{start+1}, ... as this
// transition belongs to, stopping at the first gap or at the top layer
// k, whichever comes first.
func nextLayer(acc []bool, j, k int) int {
	start := j
	if j == k {
		start = 0
	}
	i := start
	for i < k && i < len(acc) && acc[i] {
		i++
	}
	return i
}

// ---- simplify.Automaton[string] adapter ----

type label struct{ c ltl.SymbolConjunction }

func (l label) Key() string { return l.c.Key() }
func (l label) IsSubset(other simplify.SymbolSet) bool {
	return l.c.IsSubset(other.(label).c)
}

// Adapter exposes n through the simplify.Automaton[string] interface.
type Adapter struct{ N *NBA }

func (a Adapter) States() []string  { return a.N.Order }
func (a Adapter) Initial() []string { return []string{a.N.Initial} }

func (a Adapter) Transitions(s string) []simplify.Edge[string] {
	edges := a.N.Delta[s]
	out := make([]simplify.Edge[string], len(edges))
	for i, e := range edges {
		out[i] = simplify.Edge[string]{Label: label{e.Label}, To: e.To}
	}
	return out
}

// Fingerprint mixes the layer (acceptance class) with the underlying
// GBA state's remaining obligations — states only merge when both
// match, so merging can never change which runs are accepted.
func (a Adapter) Fingerprint(s string) string {
	q := a.N.gbaState[s]
	return fmt.Sprintf("j=%d|%s", a.N.layerOf[s], a.N.obligation[q].Key())
}

// Dominates compares two states at the same layer by their underlying
// GBA obligation sets; states on different layers are never comparable
// since collapsing them could change acceptance.
func (a Adapter) Dominates(x, y string) bool {
	jx, jy := a.N.layerOf[x], a.N.layerOf[y]
	if jx != jy {
		return false
	}
	qx, qy := a.N.gbaState[x], a.N.gbaState[y]
	return a.N.obligation[qx].IsSubset(a.N.obligation[qy])
}

func (a Adapter) Prune(keep map[string]bool) {
	n := a.N
	newOrder := make([]string, 0, len(n.Order))
	for _, s := range n.Order {
		if keep[s] {
			newOrder = append(newOrder, s)
		} else {
			delete(n.Delta, s)
			delete(n.gbaState, s)
			delete(n.layerOf, s)
		}
	}
	n.Order = newOrder
	for s, edges := range n.Delta {
		var filtered []Edge
		for _, e := range edges {
			if keep[e.To] {
				filtered = append(filtered, e)
			}
		}
		n.Delta[s] = filtered
	}
}

func (a Adapter) RewriteTransitions(s string, edges []simplify.Edge[string]) {
	out := make([]Edge, len(edges))
	for i, e := range edges {
		out[i] = Edge{Label: e.Label.(label).c, To: e.To}
	}
	a.N.Delta[s] = out
}

func (a Adapter) MergeStates(winner string, losers []string) {
	n := a.N
	loserSet := make(map[string]bool, len(losers))
	for _, l := range losers {
		loserSet[l] = true
	}
	if loserSet[n.Initial] {
		n.Initial = winner
	}
	for s, edges := range n.Delta {
		if loserSet[s] {
			continue
		}
		for i, e := range edges {
			if loserSet[e.To] {
				edges[i].To = winner
			}
		}
		n.Delta[s] = dedupEdges(edges)
	}
	newOrder := make([]string, 0, len(n.Order))
	for _, s := range n.Order {
		if !loserSet[s] {
			newOrder = append(newOrder, s)
		}
	}
	n.Order = newOrder
	for _, l := range losers {
		delete(n.Delta, l)
		delete(n.gbaState, l)
		delete(n.layerOf, l)
	}
}

func dedupEdges(edges []Edge) []Edge {
	seen := make(map[string]Edge, len(edges))
	order := make([]string, 0, len(edges))
	for _, e := range edges {
		k := e.Label.Key() + "|" + e.To
		if _, ok := seen[k]; !ok {
			order = append(order, k)
		}
		seen[k] = e
	}
	sort.Strings(order)
	out := make([]Edge, len(order))
	for i, k := range order {
		out[i] = seen[k]
	}
	return out
}

// Simplify runs the shared fixed-point reduction over n in place.
func Simplify(n *NBA) {
	simplify.FixedPoint[string](Adapter{N: n})
}

package ltl

import "github.com/gclverify/ltlcheck/internal/oset"

// Conjunction is a GBA/NBA state: an LTL conjunction over PNL formulas
// (spec.md §3 "LTL conjunction"). TT is the explicit vacuous conjunction
// marker that PowerSet appends; it is distinct from (its Key is "TT"),
// but semantically equivalent to, a Conjunction with an empty Formulas
// slice — both route through δ_VWAA(True) during GBA construction
// (spec.md §4.3 step 2).
type Conjunction struct {
	TT       bool
	Formulas []PNL // sorted by Key(), deduplicated
}

// CTT is the explicit vacuous conjunction.
func CTT() Conjunction { return Conjunction{TT: true} }

// CSingleton builds the one-formula conjunction {f}.
func CSingleton(f PNL) Conjunction {
	return Conjunction{Formulas: []PNL{f}}
}

// CFromSlice builds a conjunction from an already-deduplicated set of
// formulas, sorting them by Key().
func CFromSlice(fs []PNL) Conjunction {
	if len(fs) == 0 {
		return Conjunction{}
	}
	m := make(map[string]PNL, len(fs))
	for _, f := range fs {
		m[f.Key()] = f
	}
	return Conjunction{Formulas: sortedByKey(m)}
}

func (c Conjunction) Key() string {
	if c.TT {
		return "TT"
	}
	keys := make([]string, len(c.Formulas))
	for i, f := range c.Formulas {
		keys[i] = f.Key()
	}
	return keyJoin(keys)
}

func (c Conjunction) String() string {
	if c.TT {
		return "tt"
	}
	if len(c.Formulas) == 0 {
		return "{}"
	}
	out := c.Formulas[0].String()
	for _, f := range c.Formulas[1:] {
		out += " && " + f.String()
	}
	return out
}

// Conjunct combines two LTL conjunctions into their union, with TT as
// identity (spec.md §4.3's conjunction of VWAA-state conjunctions).
func (c Conjunction) Conjunct(other Conjunction) Conjunction {
	if c.TT {
		return other
	}
	if other.TT {
		return c
	}
	merged := make(map[string]PNL, len(c.Formulas)+len(other.Formulas))
	for _, f := range c.Formulas {
		merged[f.Key()] = f
	}
	for _, f := range other.Formulas {
		merged[f.Key()] = f
	}
	return Conjunction{Formulas: sortedByKey(merged)}
}

// IsSubset reports whether c's formula set is contained in other's,
// used by the GBA non-minimal-transition domination order of spec.md
// §4.3 step 5. Only TT is a subset of TT; conversely TT is a subset of
// every other conjunction.
func (c Conjunction) IsSubset(other Conjunction) bool {
	if other.TT {
		return c.TT
	}
	if c.TT {
		return true
	}
	set := make(map[string]struct{}, len(other.Formulas))
	for _, f := range other.Formulas {
		set[f.Key()] = struct{}{}
	}
	for _, f := range c.Formulas {
		if _, ok := set[f.Key()]; !ok {
			return false
		}
	}
	return true
}

// Equal reports structural equality by Key().
func (c Conjunction) Equal(other Conjunction) bool {
	return c.Key() == other.Key()
}

// PowerSet enumerates every Conjunction over elems (spec.md §4.3 step 1
// "Q' = power set of VWAA states"), including the empty conjunction and
// the explicit TT marker, which PowerSet always appends last. elems must
// already exclude PTrue/PFalse — those are folded into the None/TT
// handling of δ construction rather than carried as state content.
//
// Deterministic: iterates subsets in the order induced by elems' index,
// smallest-popcount-first is not guaranteed, but the same elems slice
// always yields the same output slice.
func PowerSet(elems []PNL) []Conjunction {
	n := len(elems)
	if n > 20 {
		// Defensive bound: formulas this large are outside any realistic
		// GCL verification scenario and would exhaust memory regardless.
		panic("ltl: PowerSet: too many VWAA states for power-set construction")
	}
	out := make([]Conjunction, 0, 1<<uint(n)+1)
	for mask := 0; mask < (1 << uint(n)); mask++ {
		var subset []PNL
		for i := 0; i < n; i++ {
			if mask&(1<<uint(i)) != 0 {
				subset = append(subset, elems[i])
			}
		}
		out = append(out, CFromSlice(subset))
	}
	out = oset.Sorted(out, Conjunction.Key)
	out = append(out, CTT())
	return out
}

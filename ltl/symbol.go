package ltl

import "github.com/gclverify/ltlcheck/internal/oset"

// Symbol is a single literal of a VWAA transition label: an atomic
// proposition, either asserted or negated (spec.md §4.2 "delta").
type Symbol struct {
	Expr    BoolExpr
	Negated bool
}

// Key is Symbol's canonical, totally-ordered representation.
func (s Symbol) Key() string {
	if s.Negated {
		return "-" + s.Expr.String()
	}
	return "+" + s.Expr.String()
}

func (s Symbol) String() string {
	if s.Negated {
		return "!" + s.Expr.String()
	}
	return s.Expr.String()
}

// SymbolConjunction is a VWAA/GBA transition label: either TT (the
// vacuous label matching every step) or a non-empty, deduplicated,
// sorted conjunction of Symbols (spec.md §4.2).
type SymbolConjunction struct {
	TT      bool
	Symbols []Symbol // sorted by Key(), non-empty when !TT
}

// STT is the vacuous symbol conjunction, matching any step.
func STT() SymbolConjunction { return SymbolConjunction{TT: true} }

// SingleSymbol builds the one-literal conjunction {s}.
func SingleSymbol(s Symbol) SymbolConjunction {
	return SymbolConjunction{Symbols: []Symbol{s}}
}

func (c SymbolConjunction) Key() string {
	if c.TT {
		return "TT"
	}
	keys := make([]string, len(c.Symbols))
	for i, s := range c.Symbols {
		keys[i] = s.Key()
	}
	return keyJoin(keys)
}

func (c SymbolConjunction) String() string {
	if c.TT {
		return "tt"
	}
	parts := make([]string, len(c.Symbols))
	for i, s := range c.Symbols {
		parts[i] = s.String()
	}
	out := parts[0]
	for _, p := range parts[1:] {
		out += " && " + p
	}
	return out
}

// Conjunct combines two symbol conjunctions into their logical
// conjunction, with TT as identity (spec.md §4.2 "⊗" label combination).
func (c SymbolConjunction) Conjunct(other SymbolConjunction) SymbolConjunction {
	if c.TT {
		return other
	}
	if other.TT {
		return c
	}
	merged := make(map[string]Symbol, len(c.Symbols)+len(other.Symbols))
	for _, s := range c.Symbols {
		merged[s.Key()] = s
	}
	for _, s := range other.Symbols {
		merged[s.Key()] = s
	}
	return SymbolConjunction{Symbols: sortedSymbols(merged)}
}

func sortedSymbols(m map[string]Symbol) []Symbol {
	vals := make([]Symbol, 0, len(m))
	for _, s := range m {
		vals = append(vals, s)
	}
	return oset.Sorted(vals, Symbol.Key)
}

// IsSubset reports whether c is at least as specific as other: every
// literal other requires, c also requires. Every conjunction is a
// subset of TT, and TT is a subset only of TT, matching the "more-specific
// implies more-general" ordering of spec.md §4.3 step 4/5 ("α ⊆ β,
// symbol subset").
func (c SymbolConjunction) IsSubset(other SymbolConjunction) bool {
	if other.TT {
		return true
	}
	if c.TT {
		return false
	}
	return containsAllSymbols(c.Symbols, other.Symbols)
}

func containsAllSymbols(haystack, needles []Symbol) bool {
	set := make(map[string]struct{}, len(haystack))
	for _, s := range haystack {
		set[s.Key()] = struct{}{}
	}
	for _, s := range needles {
		if _, ok := set[s.Key()]; !ok {
			return false
		}
	}
	return true
}

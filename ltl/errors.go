package ltl

import "fmt"

// ParseError reports a lexical or syntactic error at a byte offset in
// the surface LTL source text (spec.md §6).
type ParseError struct {
	Pos int
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("ltl: parse error at %d: %s", e.Pos, e.Msg)
}

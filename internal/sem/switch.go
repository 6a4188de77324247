package sem

import "go/token"

// SwitchConstruct is one syntactic multi-way branch statement, lowered by
// the driver. It is read-only for the duration of one checker invocation
// and discarded after.
type SwitchConstruct struct {
	Discriminant Expr
	Clauses      []CaseClause

	Pos token.Pos
	End token.Pos
}

// LastClausePos returns the position of the last clause label, the spot
// where coverage diagnostics are attached. Zero clauses yield the construct
// position itself.
func (s *SwitchConstruct) LastClausePos() token.Pos {
	if len(s.Clauses) == 0 {
		return s.Pos
	}

	switch c := s.Clauses[len(s.Clauses)-1].(type) {
	case *ValueClause:
		return c.Pos
	case *DefaultClause:
		return c.Pos
	default:
		return s.Pos
	}
}

// ValueClause is one labeled branch matching a single value expression.
// Multi-value labels of the surface syntax are flattened into one
// ValueClause per expression by the driver.
type ValueClause struct {
	Value Expr
	Pos   token.Pos
}

// DefaultClause is the catch-all branch matching any value not otherwise
// matched.
type DefaultClause struct {
	Pos token.Pos
}

func (*SwitchConstruct) isNode()     {}
func (*ValueClause) isNode()         {}
func (*ValueClause) isCaseClause()   {}
func (*DefaultClause) isNode()       {}
func (*DefaultClause) isCaseClause() {}

package exhaust

import "github.com/semlint/caseful/internal/sem"

// collect extracts the matched-value set from the given clauses. The
// contract is all-or-nothing: the first case value outside the recognized
// constant shapes aborts the whole collection with ok == false, because a
// partial set could back a false "complete" verdict. Default clauses are the
// caller's business and never reach this point.
func collect(clauses []sem.CaseClause) (valueSet, bool) {
	matched := make(valueSet, len(clauses))

	for _, clause := range clauses {
		vc, ok := clause.(*sem.ValueClause)
		if !ok {
			continue
		}

		v, ok := matchedValueOf(vc.Value)
		if !ok {
			return nil, false
		}

		matched.add(v)
	}

	return matched, true
}

// matchedValueOf recognizes exactly three constant case-value shapes, first
// match wins: a true/false/null literal, a reference directly naming an
// enumeration member constant, and an explicit conversion wrapping such a
// reference (the boxed/widened constant label form).
func matchedValueOf(e sem.Expr) (MatchedValue, bool) {
	switch v := e.(type) {
	case *sem.Literal:
		switch v.Kind {
		case sem.LitTrue:
			return boolTrue(), true
		case sem.LitFalse:
			return boolFalse(), true
		case sem.LitNull:
			return nullValue(), true
		default:
			return MatchedValue{}, false
		}

	case *sem.FieldRef:
		return enumMemberOf(v)

	case *sem.Conversion:
		inner, ok := v.X.(*sem.FieldRef)
		if !ok {
			return MatchedValue{}, false
		}

		return enumMemberOf(inner)

	default:
		// Computed or otherwise non-constant case value. Static
		// completeness is undecidable from here on.
		return MatchedValue{}, false
	}
}

func enumMemberOf(ref *sem.FieldRef) (MatchedValue, bool) {
	if !ref.Const || ref.DeclType == nil || !ref.DeclType.IsEnum() {
		return MatchedValue{}, false
	}

	for _, m := range ref.DeclType.EnumMembers() {
		if m.Name() == ref.Name {
			return enumValue(m), true
		}
	}

	return MatchedValue{}, false
}

package exhaust

import "github.com/semlint/caseful/internal/sem"

// matchedKind enumerates the recognized matched-value shapes.
type matchedKind int

const (
	matchedBoolTrue matchedKind = iota + 1
	matchedBoolFalse
	matchedNull
	matchedEnumMember
)

// MatchedValue is one element of a value domain or of a collected case-value
// set. It is a comparable value type so plain map keys give set semantics;
// duplicate case values collapse for free.
type MatchedValue struct {
	kind matchedKind

	// sym is the member-constant symbol, set for matchedEnumMember only.
	// The symbol table owns member identity, so members of distinct
	// enumerations stay apart even when their simple names collide.
	sym sem.EnumMember
}

func boolTrue() MatchedValue  { return MatchedValue{kind: matchedBoolTrue} }
func boolFalse() MatchedValue { return MatchedValue{kind: matchedBoolFalse} }
func nullValue() MatchedValue { return MatchedValue{kind: matchedNull} }

func enumValue(m sem.EnumMember) MatchedValue {
	return MatchedValue{kind: matchedEnumMember, sym: m}
}

// valueSet is a plain set of matched values.
type valueSet map[MatchedValue]struct{}

func (s valueSet) add(v MatchedValue) {
	s[v] = struct{}{}
}

// containsAll reports whether every element of other is present in s.
func (s valueSet) containsAll(other valueSet) bool {
	for v := range other {
		if _, ok := s[v]; !ok {
			return false
		}
	}

	return true
}

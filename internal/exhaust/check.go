// Package exhaust decides whether a switch construct covers every statically
// possible value of its discriminant in the absence of a default clause.
//
// The check is deliberately conservative: whenever the discriminant cannot
// be typed, the type's value domain is not one of the recognized finite
// shapes, or any case value is non-constant, the verdict is Unknown and the
// caller stays silent. False negatives are preferred over false positives.
package exhaust

import (
	"github.com/semlint/caseful/internal/ident"
	"github.com/semlint/caseful/internal/sem"
)

// Check computes the coverage verdict for one switch construct.
//
// An empty clause sequence does not describe a real switch and indicates a
// bug in the caller, so it fails fast instead of abstaining.
func Check(sw *sem.SwitchConstruct) Verdict {
	if sw == nil || len(sw.Clauses) == 0 {
		panic("exhaust: switch construct must carry at least one clause")
	}

	// A default clause completes any switch. This is the common case and
	// short-circuits before any typing work.
	for _, clause := range sw.Clauses {
		if _, ok := clause.(*sem.DefaultClause); ok {
			return VerdictComplete
		}
	}

	d := ident.Resolve(sw.Discriminant)
	if d == nil {
		return VerdictUnknown
	}

	domain, ok := domainOf(d.Type)
	if !ok {
		return VerdictUnknown
	}

	matched, ok := collect(sw.Clauses)
	if !ok {
		return VerdictUnknown
	}

	if matched.containsAll(domain) {
		return VerdictComplete
	}

	return VerdictIncomplete
}

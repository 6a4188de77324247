// Package naming carries the simple name-predicate rules living next to the
// coverage core. They are direct pattern checks over identifier descriptors
// and keep no state of their own.
package naming

import (
	"strings"

	"github.com/semlint/caseful/internal/ident"
)

// ForbiddenTerms flags identifiers whose display name contains one of the
// configured terms. Matching is case-insensitive and substring-based, which
// is what these rules traditionally do: "data" catches both dataMode and
// rawData.
type ForbiddenTerms struct {
	terms []string
}

// NewForbiddenTerms is [ForbiddenTerms] constructor. Terms are normalized
// to lower case once.
func NewForbiddenTerms(terms []string) *ForbiddenTerms {
	normalized := make([]string, 0, len(terms))
	for _, t := range terms {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		normalized = append(normalized, t)
	}

	return &ForbiddenTerms{terms: normalized}
}

// Check returns the first forbidden term found in the descriptor's display
// name, or ok == false when the name is clean.
func (f *ForbiddenTerms) Check(d *ident.Descriptor) (string, bool) {
	if d == nil {
		return "", false
	}

	name := strings.ToLower(d.DisplayName)
	for _, t := range f.terms {
		if strings.Contains(name, t) {
			return t, true
		}
	}

	return "", false
}

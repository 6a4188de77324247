// Package caserules defines the canonical rule codes (CSF-series) enforced by caseful.
// Each rule represents a distinct verification invariant in the analysis pipeline.
//
// Rule numbering scheme:
//
//	000–099  Branch coverage rules
//	100–149  Identifier naming and wording rules
package caserules

import "fmt"

// Rule represents a caseful rule code (CSF-series).
type Rule int

const (
	ruleInvalid Rule = iota

	CSF000MissingCases
	CSF010SuppressedSwitch
	CSF100ForbiddenTerm
)

// String returns the canonical code and short name of the rule.
// Example: "CSF000: MissingCases"
func (r Rule) String() string {
	switch r {
	case CSF000MissingCases:
		return "CSF000: MissingCases"
	case CSF010SuppressedSwitch:
		return "CSF010: SuppressedSwitch"
	case CSF100ForbiddenTerm:
		return "CSF100: ForbiddenTerm"
	default:
		return fmt.Sprintf("rule-unknown(%d)", r)
	}
}

// Description returns the human-readable explanation of the rule.
func (r Rule) Description() string {
	switch r {
	case CSF000MissingCases:
		return "Switch over a finite value domain must cover every value or declare a default clause."
	case CSF010SuppressedSwitch:
		return "Switch coverage checking disabled by an ignore directive."
	case CSF100ForbiddenTerm:
		return "Identifier must not contain a forbidden term."
	default:
		return fmt.Sprintf("unknown-rule(%d)", r)
	}
}

// Canonical constructors — for readability and stable call sites.

func MissingCases() Rule     { return CSF000MissingCases }
func SuppressedSwitch() Rule { return CSF010SuppressedSwitch }
func ForbiddenTerm() Rule    { return CSF100ForbiddenTerm }

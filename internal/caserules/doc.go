// Package caserules defines the canonical CSF-series rule codes enforced by caseful.
//
// Each rule represents a verifiable invariant of branch-coverage or naming
// discipline. The CSF-series provides a stable numeric and textual identity
// for every rule, so violations can be reported, filtered, and suppressed
// consistently across analysis phases and output forms.
//
// # Purpose
//
// The caserules package is the single source of truth for all rule codes.
// It is used by:
//   - the analyzer (for classification of findings);
//   - the reporter (for consistent emission of diagnostics);
//   - the configuration layer (for per-rule severity overrides).
//
// # Structure
//
// Rule codes follow the format “CSF<NNN>: <Name>” and are grouped by
// functional area:
//
//	000–099  Branch coverage rules
//	100–149  Identifier naming and wording rules
//
// Example:
//
//	caserules.CSF000MissingCases.String()      → "CSF000: MissingCases"
//	caserules.CSF000MissingCases.Description() → "Switch over a finite value domain must cover every value or declare a default clause."
//
// # Notes
//
//   - Rule identifiers are stable; never renumber existing codes.
//   - New rules must take the next available CSF-range slot.
//   - Unknown or invalid codes render as "rule-unknown(N)".
package caserules

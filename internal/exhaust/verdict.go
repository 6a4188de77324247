package exhaust

import "fmt"

// Verdict is the tri-state outcome of an exhaustiveness check. Unknown means
// "could not prove either way" and must never produce a diagnostic; only
// Incomplete is reportable.
type Verdict int

const (
	verdictInvalid Verdict = iota

	VerdictComplete
	VerdictIncomplete
	VerdictUnknown
)

func (v Verdict) String() string {
	switch v {
	case VerdictComplete:
		return "complete"
	case VerdictIncomplete:
		return "incomplete"
	case VerdictUnknown:
		return "unknown"
	default:
		return fmt.Sprintf("invalid-verdict(%d)", v)
	}
}

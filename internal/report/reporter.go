// Package report provides the diagnostic sink shared by all analysis phases
// and a positional index used to attach suppression directives to the
// constructs they cover.
//
// The core checkers are pure functions; the Reporter here is the single
// piece of shared mutable state around them and is safe for concurrent
// writers, so the host may run one goroutine per analyzed construct.
package report

import (
	"fmt"
	"go/token"
	"sync"

	"github.com/semlint/caseful/internal/caserules"
)

// Reporter collects and classifies findings discovered during analysis.
type Reporter struct {
	mu      sync.Mutex
	reports []Report
}

// Report represents a single diagnostic entry.
type Report struct {
	Phase    Phase
	RuleCode caserules.Rule
	Pos      token.Pos
	Message  string
}

// Phase marks the analysis stage where a report was generated.
type Phase int

const (
	phaseInvalid Phase = iota
	PhaseLower         // lowering source into the semantic representation
	PhaseCheck         // coverage verdict computation
	PhaseStyle         // naming and wording collaborators
)

func (p Phase) String() string {
	switch p {
	case PhaseLower:
		return "lower"
	case PhaseCheck:
		return "check"
	case PhaseStyle:
		return "style"
	default:
		return fmt.Sprintf("unknown-phase(%d)", p)
	}
}

// PhaseReporter binds a Reporter to a fixed phase.
// It is used during an entire analysis pass to record rule violations
// without specifying the phase repeatedly.
type PhaseReporter struct {
	parent *Reporter
	phase  Phase
}

// Phase returns a pointer to a phase-bound reporter that automatically
// sets the given phase for all reports produced through it.
func (r *Reporter) Phase(p Phase) *PhaseReporter {
	return &PhaseReporter{parent: r, phase: p}
}

// Report adds a new record to the reporter.
func (r *Reporter) Report(rep Report) {
	r.mu.Lock()
	r.reports = append(r.reports, rep)
	r.mu.Unlock()
}

// Report records a new rule violation under the bound phase.
func (rp *PhaseReporter) Report(rule caserules.Rule, message string, pos token.Pos) {
	rp.parent.Report(Report{
		Phase:    rp.phase,
		RuleCode: rule,
		Message:  message,
		Pos:      pos,
	})
}

// Reports returns a snapshot of all collected records.
func (r *Reporter) Reports() []Report {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Report, len(r.reports))
	copy(out, r.reports)
	return out
}

// PrintSummary prints all collected reports in a compact, human-readable form.
func (r *Reporter) PrintSummary(fset *token.FileSet) {
	for _, rep := range r.Reports() {
		pos := fset.Position(rep.Pos)
		fmt.Printf("[%s] %s — %s (%s:%d)\n",
			rep.Phase,
			rep.RuleCode,
			rep.Message,
			pos.Filename,
			pos.Line)
	}
}

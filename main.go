package main

import (
	"fmt"
	"go/ast"
	"go/types"
	"strings"
	"sync"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/semlint/caseful/internal/caserules"
	"github.com/semlint/caseful/internal/exhaust"
	"github.com/semlint/caseful/internal/gobind"
	"github.com/semlint/caseful/internal/ident"
	"github.com/semlint/caseful/internal/naming"
	"github.com/semlint/caseful/internal/report"
	"github.com/semlint/caseful/internal/sem"
)

const doc = `caseful checks that a switch over a finite value domain covers every value or declares a default clause`

// ignoreDirective suppresses coverage checking for the switch statement
// whose span contains it, e.g. placed right after the opening brace.
const ignoreDirective = "//caseful:ignore"

// Analyzer is the main entry point for the linter.
var Analyzer = &analysis.Analyzer{
	Name: "caseful",
	Doc:  doc,
	Run:  run,
}

var flagConfig string

func init() {
	Analyzer.Flags.StringVar(&flagConfig, "config", "", "path to a YAML configuration `file`")
}

func main() {
	singlechecker.Main(Analyzer)
}

var (
	configOnce   sync.Once
	globalConfig *Config
	configErr    error
)

func run(pass *analysis.Pass) (any, error) {
	configOnce.Do(func() {
		globalConfig, configErr = LoadConfig(flagConfig)
	})
	if configErr != nil {
		return nil, fmt.Errorf("load configuration: %w", configErr)
	}

	var rep report.Reporter
	for _, file := range pass.Files {
		checkFile(globalConfig, &rep, pass.TypesInfo, file)
	}

	for _, r := range rep.Reports() {
		rule := r.RuleCode
		if rule == caserules.CSF010SuppressedSwitch {
			// Bookkeeping entry, not a finding.
			continue
		}
		if globalConfig.SeverityFor(rule) == SeverityOff {
			continue
		}

		pass.Report(analysis.Diagnostic{
			Pos:      r.Pos,
			Category: ruleCode(rule),
			Message:  fmt.Sprintf("%s — %s", rule, r.Message),
		})
	}

	return nil, nil
}

// checkFile runs the whole per-file pipeline: lower switch statements into
// the semantic representation, attribute ignore directives, compute coverage
// verdicts, and apply the naming collaborators. Findings go to rep; the
// function itself reports nothing to the pass, which keeps it testable
// without an analysis driver.
func checkFile(cfg *Config, rep *report.Reporter, info *types.Info, file *ast.File) {
	engine := gobind.NewEngine(info)
	for _, ref := range cfg.IgnoreEnumTypes {
		engine.IgnoreEnumType(ref)
	}

	constructs := engine.LowerFile(file)
	if len(constructs) == 0 {
		return
	}

	idx := report.NewIndex()
	for _, sw := range constructs {
		idx.Add(sw, sw.Pos, sw.End)
	}

	suppressed := scrapDirectives(file, idx, rep.Phase(report.PhaseLower))

	checkRep := rep.Phase(report.PhaseCheck)
	styleRep := rep.Phase(report.PhaseStyle)
	forbidden := naming.NewForbiddenTerms(cfg.ForbiddenTerms)

	for _, sw := range constructs {
		d := ident.Resolve(sw.Discriminant)

		if d != nil {
			if term, ok := forbidden.Check(d); ok {
				styleRep.Report(
					caserules.ForbiddenTerm(),
					fmt.Sprintf("identifier %q contains forbidden term %q", d.DisplayName, term),
					sw.Pos,
				)
			}
		}

		if suppressed[sw] {
			continue
		}

		if exhaust.Check(sw) != exhaust.VerdictIncomplete {
			// Complete and Unknown are both silent by design.
			continue
		}

		subject := "switch"
		if d != nil {
			subject = fmt.Sprintf("switch on %q", d.DisplayName)
		}
		checkRep.Report(
			caserules.MissingCases(),
			fmt.Sprintf("%s does not cover its full value domain and declares no default clause", subject),
			sw.LastClausePos(),
		)
	}
}

// scrapDirectives finds every ignore directive of the file and attributes it
// to the innermost lowered switch whose span contains it.
func scrapDirectives(file *ast.File, idx *report.Index, rep *report.PhaseReporter) map[*sem.SwitchConstruct]bool {
	suppressed := make(map[*sem.SwitchConstruct]bool)

	for _, group := range file.Comments {
		for _, comment := range group.List {
			if !strings.HasPrefix(comment.Text, ignoreDirective) {
				continue
			}

			sw, ok := idx.GetByPos(comment.Pos()).(*sem.SwitchConstruct)
			if !ok {
				// Directive outside any switch span. Nothing to suppress.
				continue
			}

			suppressed[sw] = true
			rep.Report(
				caserules.SuppressedSwitch(),
				"coverage checking disabled by directive",
				comment.Pos(),
			)
		}
	}

	return suppressed
}

// ruleCode extracts the bare "CSFNNN" code for use as a diagnostic category.
func ruleCode(r caserules.Rule) string {
	s := r.String()
	if i := strings.IndexByte(s, ':'); i >= 0 {
		return s[:i]
	}
	return s
}

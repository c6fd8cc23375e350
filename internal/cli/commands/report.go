package commands

import (
	"github.com/97gamjak/devops/pkg/check"
	"github.com/jedib0t/go-pretty/v6/table"
)

// reportEnvelope is the JSON shape of a check run.
type reportEnvelope struct {
	RunID        string           `json:"run_id"`
	FilesScanned int              `json:"files_scanned"`
	FilesPassed  int              `json:"files_passed"`
	Failed       bool             `json:"failed"`
	Violations   []violationEntry `json:"violations"`
	Skipped      []string         `json:"skipped,omitempty"`
}

type violationEntry struct {
	File   string `json:"file"`
	Rule   string `json:"rule"`
	Reason string `json:"reason"`
}

// renderReport writes a check report in the renderer's mode. Text
// mode groups outcomes by file and closes with a summary table;
// passing files only appear with --verbose.
func renderReport(cmdCtx *CommandContext, report *check.Report) error {
	r := cmdCtx.Renderer
	if r.JSONEnabled() {
		env := reportEnvelope{
			RunID:        report.RunID,
			FilesScanned: report.Files,
			FilesPassed:  report.FilesPassed(),
			Failed:       report.Failed(),
			Violations:   []violationEntry{},
			Skipped:      report.Skipped,
		}
		for _, o := range report.Violations() {
			env.Violations = append(env.Violations, violationEntry{
				File:   o.Path,
				Rule:   o.RuleID,
				Reason: o.Reason,
			})
		}
		return r.JSON(env)
	}

	styles := r.Styles()
	verbose := cmdCtx.Cfg.Verbose

	paths, grouped := report.ByFile()
	for _, path := range paths {
		outcomes := grouped[path]
		failed := false
		for _, o := range outcomes {
			if o.Status == check.StatusViolation {
				failed = true
				break
			}
		}
		if !failed && !verbose {
			continue
		}

		r.Println(styles.FilePath.Render(path))
		for _, o := range outcomes {
			if o.Status == check.StatusViolation {
				r.Printf("  %s  %s  %s\n",
					o.RuleID, styles.Error.Render("violation"), o.Reason)
			} else if verbose {
				r.Printf("  %s  %s\n", o.RuleID, styles.Success.Render("pass"))
			}
		}
	}

	for _, path := range report.Skipped {
		r.Printf("%s %s\n", styles.Muted.Render("skipped"), path)
	}

	renderSummary(cmdCtx, report)
	return nil
}

// renderSummary prints the closing counts: a table on a terminal, a
// single line otherwise.
func renderSummary(cmdCtx *CommandContext, report *check.Report) {
	r := cmdCtx.Renderer
	styles := r.Styles()

	if r.IsTTY() {
		t := table.NewWriter()
		t.SetOutputMirror(r.Writer())
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"Files scanned", "Violations", "Files passed"})
		t.AppendRow(table.Row{report.Files, report.ViolationCount(), report.FilesPassed()})
		t.Render()
	} else {
		r.Printf("%d files scanned, %d violations, %d files passed\n",
			report.Files, report.ViolationCount(), report.FilesPassed())
	}

	if !report.Failed() {
		r.Println(styles.Success.Render("✓"), "all checks passed")
	}
}

package harness

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Summary is the run-level rollup across all suites.
type Summary struct {
	Passed        int
	Failed        int
	KnownFailures int
	Skipped       int
}

// Summarize computes run-level totals from the (fully or partially executed)
// suite list.
func Summarize(suites []*TestSuite) Summary {
	var s Summary
	for _, suite := range suites {
		s.Passed += suite.Passed()
		s.Failed += suite.Failed()
		s.KnownFailures += suite.KnownFails()
		s.Skipped += suite.Skipped()
	}
	return s
}

// PassRate is passed/(passed+failed+known)*100 rounded to one decimal place,
// or 0 when nothing ran. Skips do not count against the rate.
func (s Summary) PassRate() float64 {
	run := s.Passed + s.Failed + s.KnownFailures
	if run == 0 {
		return 0
	}
	return math.Round(float64(s.Passed)/float64(run)*1000) / 10
}

// ExitCode is the harness process exit status: 1 iff the run saw any hard
// failure. Known failures and skips alone never fail the run.
func (s Summary) ExitCode() int {
	if s.Failed > 0 {
		return 1
	}
	return 0
}

// Reporter renders a finished run. The renderer is selected once at startup
// (human narrative vs. machine-readable document) and handed to the harness,
// rather than toggling global formatting state.
type Reporter interface {
	Report(suites []*TestSuite, summary Summary) error
}

type reportDocument struct {
	Summary reportSummary `json:"summary"`
	Suites  []reportSuite `json:"suites"`
}

type reportSummary struct {
	Passed        int     `json:"passed"`
	Failed        int     `json:"failed"`
	KnownFailures int     `json:"known_failures"`
	Skipped       int     `json:"skipped"`
	PassRate      float64 `json:"pass_rate"`
}

type reportSuite struct {
	Name          string       `json:"name"`
	Passed        int          `json:"passed"`
	Failed        int          `json:"failed"`
	KnownFailures int          `json:"known_failures"`
	Tests         []reportTest `json:"tests"`
}

type reportTest struct {
	Name   string `json:"name"`
	Result string `json:"result"`
	Notes  string `json:"notes"`
}

// JSONReporter writes the machine-readable report document, for CI callers.
type JSONReporter struct {
	Out io.Writer
}

func (r JSONReporter) Report(suites []*TestSuite, summary Summary) error {
	doc := reportDocument{
		Summary: reportSummary{
			Passed:        summary.Passed,
			Failed:        summary.Failed,
			KnownFailures: summary.KnownFailures,
			Skipped:       summary.Skipped,
			PassRate:      summary.PassRate(),
		},
		Suites: []reportSuite{},
	}
	for _, suite := range suites {
		rs := reportSuite{
			Name:          suite.Name,
			Passed:        suite.Passed(),
			Failed:        suite.Failed(),
			KnownFailures: suite.KnownFails(),
			Tests:         []reportTest{},
		}
		for _, t := range suite.Tests {
			rs.Tests = append(rs.Tests, reportTest{
				Name:   t.Name,
				Result: t.Result.Tag(),
				Notes:  t.Notes,
			})
		}
		doc.Suites = append(doc.Suites, rs)
	}

	enc := json.NewEncoder(r.Out)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// ConsoleReporter writes the final narrative summary: a banner, a per-suite
// results table and the overall pass rate.
type ConsoleReporter struct {
	Out io.Writer
}

func (r ConsoleReporter) Report(suites []*TestSuite, summary Summary) error {
	banner := color.New(color.FgBlue)
	fmt.Fprintln(r.Out)
	banner.Fprintln(r.Out, bannerRule)
	banner.Fprintln(r.Out, "                 FINAL RESULTS")
	banner.Fprintln(r.Out, bannerRule)
	fmt.Fprintln(r.Out)

	t := table.NewWriter()
	t.SetOutputMirror(r.Out)
	t.AppendHeader(table.Row{"Suite", "Passed", "Failed", "Known", "Skipped"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Passed", Align: text.AlignRight},
		{Name: "Failed", Align: text.AlignRight},
		{Name: "Known", Align: text.AlignRight},
		{Name: "Skipped", Align: text.AlignRight},
	})
	for _, suite := range suites {
		t.AppendRow(table.Row{suite.Name, suite.Passed(), suite.Failed(), suite.KnownFails(), suite.Skipped()})
	}
	t.AppendFooter(table.Row{"TOTAL", summary.Passed, summary.Failed, summary.KnownFailures, summary.Skipped})
	t.SetStyle(table.StyleLight)
	t.Render()

	if summary.Passed+summary.Failed+summary.KnownFailures > 0 {
		fmt.Fprintf(r.Out, "\n  Pass Rate: %.1f%%\n", summary.PassRate())
	}
	fmt.Fprintln(r.Out)
	return nil
}

const bannerRule = "========================================================"

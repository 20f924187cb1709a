package harness

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
)

// TestLogger receives progress callbacks while a run executes, so that a
// human watching the console sees results as they happen rather than only at
// the end. The final rollup is the Reporter's job, not the TestLogger's.
type TestLogger interface {
	RunStarted(subjectPath string, timeout time.Duration)
	SuiteStarted(suite *TestSuite)
	TestFinished(suite *TestSuite, test *TestCase)
	SuiteFinished(suite *TestSuite)
}

type nullTestLogger struct{}

func (nullTestLogger) RunStarted(string, time.Duration)   {}
func (nullTestLogger) SuiteStarted(*TestSuite)            {}
func (nullTestLogger) TestFinished(*TestSuite, *TestCase) {}
func (nullTestLogger) SuiteFinished(*TestSuite)           {}

// NullTestLogger returns a TestLogger that discards everything. Used when the
// machine-readable reporter is selected, since progress chatter would corrupt
// the document on stdout.
func NullTestLogger() TestLogger { return nullTestLogger{} }

// ConsoleTestLogger prints per-suite banners and counts, and with Verbose set
// a tagged line per test plus any failure notes.
type ConsoleTestLogger struct {
	Out     io.Writer
	Verbose bool
}

var (
	tagPass    = color.New(color.FgGreen).Sprint("PASS")
	tagFail    = color.New(color.FgRed).Sprint("FAIL")
	tagKnown   = color.New(color.FgYellow).Sprint("KNOWN")
	tagTimeout = color.New(color.FgYellow).Sprint("TIMEOUT")
	tagSkip    = color.New(color.FgYellow).Sprint("SKIP")
)

func (c *ConsoleTestLogger) RunStarted(subjectPath string, timeout time.Duration) {
	banner := color.New(color.FgBlue)
	banner.Fprintln(c.Out, bannerRule)
	banner.Fprintln(c.Out, "           NES EMULATOR TEST SUITE")
	banner.Fprintln(c.Out, bannerRule)
	fmt.Fprintf(c.Out, "\nEmulator: %s\n", subjectPath)
	fmt.Fprintf(c.Out, "Timeout:  %s per test\n", timeout)
}

func (c *ConsoleTestLogger) SuiteStarted(suite *TestSuite) {
	fmt.Fprintln(c.Out)
	color.New(color.FgBlue).Fprintf(c.Out, "=== %s ===\n", suite.Name)
	if c.Verbose && suite.Description != "" {
		fmt.Fprintf(c.Out, "    %s\n", suite.Description)
	}
}

func (c *ConsoleTestLogger) TestFinished(suite *TestSuite, test *TestCase) {
	if !c.Verbose {
		return
	}
	fmt.Fprintf(c.Out, "  %s %s\n", resultTag(test.Result), test.Name)
	if test.Result == ResultFail && test.Notes != "" {
		fmt.Fprintf(c.Out, "       Note: %s\n", test.Notes)
	}
}

func (c *ConsoleTestLogger) SuiteFinished(suite *TestSuite) {
	fmt.Fprintf(c.Out, "  %s | %s | %s | Skipped: %d\n",
		color.New(color.FgGreen).Sprintf("Passed: %d", suite.Passed()),
		color.New(color.FgRed).Sprintf("Failed: %d", suite.Failed()),
		color.New(color.FgYellow).Sprintf("Known: %d", suite.KnownFails()),
		suite.Skipped(),
	)
}

func resultTag(r ResultKind) string {
	switch r {
	case ResultPass:
		return tagPass
	case ResultFail:
		return tagFail
	case ResultKnownFail:
		return tagKnown
	case ResultTimeout:
		return tagTimeout
	case ResultSkip:
		return tagSkip
	}
	return "???"
}

package harness

import (
	"context"

	"github.com/rs/zerolog"
)

// Runner ties the pieces together: it resolves requested categories against
// the configuration, builds the suite list, executes every test strictly
// sequentially in declared order, and hands progress to the TestLogger.
// Per-test failures are local; nothing a subject program does can abort the
// run.
type Runner struct {
	Config     Config
	Categories map[string][]string // nil means DefaultCategories
	Executor   *Executor
	TestLogger TestLogger // nil means silent
	Logger     zerolog.Logger
}

// Run executes the suites selected by the given category tokens and returns
// the fully-populated suite list with its run-level summary. Every test in
// every returned suite has an assigned result.
func (r *Runner) Run(ctx context.Context, categories []string) ([]*TestSuite, Summary) {
	testLogger := r.TestLogger
	if testLogger == nil {
		testLogger = NullTestLogger()
	}

	names := ResolveCategories(categories, r.Categories, r.Config)
	suites := BuildSuites(r.Config, names)
	r.Logger.Debug().Strs("suites", names).Msg("Resolved test suites")

	for _, suite := range suites {
		testLogger.SuiteStarted(suite)
		for _, test := range suite.Tests {
			r.Executor.RunTest(ctx, test)
			testLogger.TestFinished(suite, test)
		}
		testLogger.SuiteFinished(suite)
	}

	return suites, Summarize(suites)
}

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/veloce-emu/romcheck/corpus"
	"github.com/veloce-emu/romcheck/harness"
	"github.com/veloce-emu/romcheck/subject"
)

func main() {
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:      "romcheck",
		Usage:     "Run the NES test ROM conformance suite against the veloce emulator",
		ArgsUsage: "[categories...]",
		Description: "Categories:\n" +
			"   cpu       CPU instruction and timing tests\n" +
			"   ppu       PPU rendering and timing tests\n" +
			"   mapper    Mapper-specific tests (MMC3, etc.)\n" +
			"   apu       Audio processing unit tests\n\n" +
			"Unrecognized categories matching a configured suite name select that suite directly.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Value: "test_config.json",
				Usage: "test suite configuration file (JSON or YAML)",
			},
			&cli.StringFlag{
				Name:  "corpus",
				Value: "nes-test-roms",
				Usage: "directory for the test ROM checkout",
			},
			&cli.StringFlag{
				Name:  "emulator",
				Usage: "path to the emulator binary (default: probe the build directory)",
			},
			&cli.StringFlag{
				Name:  "project-root",
				Value: ".",
				Usage: "project root used when probing for the emulator binary",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Value: harness.DefaultTimeout,
				Usage: "wall-clock budget per test",
			},
			&cli.BoolFlag{
				Name:  "keep",
				Usage: "keep the test ROM checkout after completion",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "show a result line for every test",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "write a machine-readable JSON report to stdout (for CI)",
			},
		},
		Action: run,
	}
}

func run(c *cli.Context) error {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if c.Bool("verbose") {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	logger := log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := harness.LoadConfig(c.String("config"))
	if err != nil {
		// Run-aborting: no suite definitions can be trusted.
		return cli.Exit(fmt.Sprintf("romcheck: %s", err), 1)
	}

	subjectPath, err := subject.Resolve(c.String("emulator"), c.String("project-root"))
	if err != nil {
		return cli.Exit(fmt.Sprintf("romcheck: %s", err), 1)
	}

	roms := &corpus.Manager{
		Dir:    c.String("corpus"),
		Keep:   c.Bool("keep"),
		Logger: logger,
	}
	if err := roms.Ensure(c.Context); err != nil {
		return cli.Exit(fmt.Sprintf("romcheck: %s", err), 1)
	}
	defer func() {
		if err := roms.Cleanup(); err != nil {
			logger.Warn().Err(err).Msg("Corpus cleanup failed")
		}
	}()

	timeout := c.Duration("timeout")

	var testLogger harness.TestLogger
	var reporter harness.Reporter
	if c.Bool("json") {
		testLogger = harness.NullTestLogger()
		reporter = harness.JSONReporter{Out: os.Stdout}
	} else {
		console := &harness.ConsoleTestLogger{Out: os.Stdout, Verbose: c.Bool("verbose")}
		console.RunStarted(subjectPath, timeout)
		testLogger = console
		reporter = harness.ConsoleReporter{Out: os.Stdout}
	}

	runner := &harness.Runner{
		Config: cfg,
		Executor: &harness.Executor{
			SubjectPath: subjectPath,
			CorpusRoot:  roms.Dir,
			Timeout:     timeout,
			Logger:      logger,
		},
		TestLogger: testLogger,
		Logger:     logger,
	}

	suites, summary := runner.Run(c.Context, c.Args().Slice())
	if err := reporter.Report(suites, summary); err != nil {
		return cli.Exit(fmt.Sprintf("romcheck: %s", err), 1)
	}
	if summary.ExitCode() != 0 {
		return cli.Exit("", 1)
	}
	return nil
}

package harness

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"al.essio.dev/pkg/shellescape"
	"github.com/rs/zerolog"
)

// DefaultTimeout is the wall-clock budget for one subject-program invocation.
const DefaultTimeout = 10 * time.Second

// terminationGrace bounds how long we wait for the subject program to die
// after its deadline expires.
const terminationGrace = time.Second

// NotFoundMarker is stored as a skipped test's output when its fixture is
// absent from the corpus.
const NotFoundMarker = "ROM not found"

// Executor runs the subject program against one fixture at a time. Each call
// blocks until the invocation finishes, times out, or fails to start; it
// never blocks past Timeout plus a fixed termination grace.
type Executor struct {
	SubjectPath string
	CorpusRoot  string
	Timeout     time.Duration // zero means DefaultTimeout
	Classifier  Classifier
	Logger      zerolog.Logger
}

// RunTest executes the test's fixture and stores the outcome on the test.
// Result, Output and ExitCode are assigned exactly once. A missing fixture is
// a Skip, not an error: partial corpus checkouts are normal. An invocation
// that cannot be started at all is a Fail with the launch error as output;
// it never aborts the surrounding suite.
func (e *Executor) RunTest(ctx context.Context, test *TestCase) ResultKind {
	fixture := filepath.Join(e.CorpusRoot, test.Path)
	if _, err := os.Stat(fixture); err != nil {
		test.Result = ResultSkip
		test.Output = NotFoundMarker
		return ResultSkip
	}

	timeout := e.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, e.SubjectPath, fixture)
	cmd.WaitDelay = terminationGrace
	var combined bytes.Buffer
	cmd.Stdout = &combined
	cmd.Stderr = &combined

	e.Logger.Debug().
		Str("test", test.Name).
		Str("command", shellescape.QuoteCommand([]string{e.SubjectPath, fixture})).
		Msg("Invoking subject program")

	err := cmd.Run()

	if runCtx.Err() == context.DeadlineExceeded {
		test.Result = ResultTimeout
		test.Output = fmt.Sprintf("Timeout after %s", timeout)
		e.Logger.Debug().Str("test", test.Name).Dur("budget", timeout).Msg("Subject program timed out")
		return ResultTimeout
	}

	test.Output = combined.String()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			test.ExitCode = exitErr.ExitCode()
		} else {
			test.Result = ResultFail
			test.Output = err.Error()
			e.Logger.Debug().Str("test", test.Name).Err(err).Msg("Subject program could not be run")
			return ResultFail
		}
	}

	test.Result = e.Classifier.Classify(test.Output, test.ExitCode, test.Expected)
	return test.Result
}

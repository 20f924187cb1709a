package harness

import (
	"strings"

	"github.com/acarl005/stripansi"
)

// Default marker sets, tuned to the conventions of the blargg-style test ROMs
// in the nes-test-roms collection: the ROMs self-report a verdict as text
// ("...Passed", "Result: 0", "Result: 3 FAILED") on the emulator's output.
var (
	DefaultPassMarkers = []string{"test passed", "result: 0", "passed"}
	DefaultFailMarkers = []string{"result: ", "failed", "error"}
)

// Classifier decides the final ResultKind for a completed invocation from its
// captured output and exit code. Zero-value fields fall back to the default
// marker sets.
type Classifier struct {
	PassMarkers []string
	FailMarkers []string
}

// Classify applies the marker heuristics in a fixed precedence order:
//
//  1. output contains a pass marker               -> Pass
//  2. output contains a fail marker               -> Fail (KnownFail if expected)
//  3. exit code is zero                           -> Pass
//  4. otherwise                                   -> Fail (KnownFail if expected)
//
// Matching is case-insensitive, with ANSI escape sequences stripped first
// since some emulators colorize their diagnostics. Textual evidence always
// wins over the exit code: the ROM's own self-report is more authoritative
// than the subject program's process status. If an output triggers both
// marker sets, the pass branch wins; that is the documented first-match
// behavior, not an oversight.
func (c Classifier) Classify(output string, exitCode int, expected Expectation) ResultKind {
	text := strings.ToLower(stripansi.Strip(output))

	if containsAny(text, c.passMarkers()) {
		return ResultPass
	}
	if containsAny(text, c.failMarkers()) {
		return expectedFailure(expected)
	}
	if exitCode == 0 {
		return ResultPass
	}
	return expectedFailure(expected)
}

func (c Classifier) passMarkers() []string {
	if c.PassMarkers != nil {
		return c.PassMarkers
	}
	return DefaultPassMarkers
}

func (c Classifier) failMarkers() []string {
	if c.FailMarkers != nil {
		return c.FailMarkers
	}
	return DefaultFailMarkers
}

func containsAny(text string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(text, m) {
			return true
		}
	}
	return false
}

func expectedFailure(expected Expectation) ResultKind {
	if expected == ExpectKnownFail {
		return ResultKnownFail
	}
	return ResultFail
}

package harness

// ResultKind is the closed set of outcomes for a single fixture run. A test's
// result is the zero value until the Executor assigns one, and is assigned
// exactly once per run.
type ResultKind string

const (
	ResultPass      ResultKind = "pass"
	ResultFail      ResultKind = "fail"
	ResultTimeout   ResultKind = "timeout"
	ResultSkip      ResultKind = "skip"
	ResultKnownFail ResultKind = "known_fail"
)

// Tag returns the lowercase taxonomy tag used in machine-readable reports,
// or "unknown" for a test that was never executed.
func (r ResultKind) Tag() string {
	if r == "" {
		return "unknown"
	}
	return string(r)
}

// Expectation is a test's declared expectation: it decides whether an observed
// failure is a regression (Fail) or an accepted shortcoming (KnownFail).
type Expectation string

const (
	ExpectPass      Expectation = "pass"
	ExpectKnownFail Expectation = "known_fail"
)

// TestCase is one fixture run against the subject program. Name is derived
// from the fixture's base filename; Path is relative to the corpus root.
// Result, Output and ExitCode are populated by the Executor.
type TestCase struct {
	Name     string
	Path     string
	Expected Expectation
	Notes    string

	Result   ResultKind
	Output   string
	ExitCode int
}

// TestSuite is a named, ordered collection of test cases. The declared order
// is both execution order and report order.
type TestSuite struct {
	Name        string
	Description string
	Priority    string
	Tests       []*TestCase
}

func (s *TestSuite) count(k ResultKind) int {
	n := 0
	for _, t := range s.Tests {
		if t.Result == k {
			n++
		}
	}
	return n
}

// Passed returns the number of tests in the suite whose result is Pass.
// Counts are computed from the test list on every call rather than cached,
// so they are valid at any point during a run.
func (s *TestSuite) Passed() int { return s.count(ResultPass) }

// Failed returns the number of tests whose result is Fail.
func (s *TestSuite) Failed() int { return s.count(ResultFail) }

// KnownFails returns the number of tests whose result is KnownFail.
func (s *TestSuite) KnownFails() int { return s.count(ResultKnownFail) }

// Skipped returns the number of tests whose result is Skip.
func (s *TestSuite) Skipped() int { return s.count(ResultSkip) }

package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func makeSuite(results ...ResultKind) *TestSuite {
	s := &TestSuite{Name: "suite"}
	for i, r := range results {
		s.Tests = append(s.Tests, &TestCase{Name: string(rune('a' + i)), Result: r})
	}
	return s
}

func TestSuiteCountsAreDerivedFromTests(t *testing.T) {
	s := makeSuite(ResultPass, ResultPass, ResultFail, ResultKnownFail, ResultSkip)
	assert.Equal(t, 2, s.Passed())
	assert.Equal(t, 1, s.Failed())
	assert.Equal(t, 1, s.KnownFails())
	assert.Equal(t, 1, s.Skipped())
}

func TestSuiteCountsBeforeExecutionAreZero(t *testing.T) {
	s := &TestSuite{Tests: []*TestCase{{Name: "a"}, {Name: "b"}}}
	assert.Zero(t, s.Passed())
	assert.Zero(t, s.Failed())
	assert.Zero(t, s.KnownFails())
	assert.Zero(t, s.Skipped())
}

func TestResultKindTag(t *testing.T) {
	assert.Equal(t, "pass", ResultPass.Tag())
	assert.Equal(t, "known_fail", ResultKnownFail.Tag())
	assert.Equal(t, "unknown", ResultKind("").Tag())
}

func TestSummarizeAcrossSuites(t *testing.T) {
	suites := []*TestSuite{
		makeSuite(ResultPass, ResultFail),
		makeSuite(ResultPass, ResultKnownFail, ResultSkip),
	}
	sum := Summarize(suites)
	assert.Equal(t, Summary{Passed: 2, Failed: 1, KnownFailures: 1, Skipped: 1}, sum)
}

func TestPassRateRoundsToOneDecimal(t *testing.T) {
	sum := Summary{Passed: 1, Failed: 1, KnownFailures: 1}
	assert.Equal(t, 33.3, sum.PassRate())

	sum = Summary{Passed: 2, Failed: 1}
	assert.Equal(t, 66.7, sum.PassRate())
}

func TestPassRateSkipsDoNotCount(t *testing.T) {
	sum := Summary{Passed: 1, Skipped: 9}
	assert.Equal(t, 100.0, sum.PassRate())
}

func TestPassRateZeroWhenNothingRan(t *testing.T) {
	assert.Equal(t, 0.0, Summary{Skipped: 3}.PassRate())
	assert.Equal(t, 0.0, Summary{}.PassRate())
}

func TestExitCodeOnlyHardFailuresCount(t *testing.T) {
	assert.Equal(t, 0, Summary{}.ExitCode())
	assert.Equal(t, 0, Summary{Passed: 5, KnownFailures: 2, Skipped: 3}.ExitCode())
	assert.Equal(t, 1, Summary{Failed: 1}.ExitCode())
}

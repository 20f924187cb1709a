package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyPassMarkersWinRegardlessOfExitCode(t *testing.T) {
	var c Classifier
	assert.Equal(t, ResultPass, c.Classify("...Test Passed...", 1, ExpectPass))
	assert.Equal(t, ResultPass, c.Classify("Result: 0", 1, ExpectPass))
	assert.Equal(t, ResultPass, c.Classify("PASSED", 255, ExpectPass))
}

func TestClassifyIsCaseInsensitive(t *testing.T) {
	var c Classifier
	assert.Equal(t, ResultPass, c.Classify("TEST PASSED", 0, ExpectPass))
	assert.Equal(t, ResultFail, c.Classify("FAILED #2", 0, ExpectPass))
}

func TestClassifyFailureMarkers(t *testing.T) {
	var c Classifier
	assert.Equal(t, ResultFail, c.Classify("Result: 3 FAILED", 0, ExpectPass))
	assert.Equal(t, ResultKnownFail, c.Classify("Result: 3 FAILED", 0, ExpectKnownFail))
	assert.Equal(t, ResultFail, c.Classify("error: sprite overflow", 0, ExpectPass))
}

func TestClassifyFailureTextOverridesZeroExitCode(t *testing.T) {
	var c Classifier
	assert.Equal(t, ResultFail, c.Classify("something failed", 0, ExpectPass))
}

func TestClassifyFallsBackToExitCode(t *testing.T) {
	var c Classifier
	assert.Equal(t, ResultPass, c.Classify("no verdict printed", 0, ExpectPass))
	assert.Equal(t, ResultFail, c.Classify("no verdict printed", 1, ExpectPass))
	assert.Equal(t, ResultKnownFail, c.Classify("no verdict printed", 1, ExpectKnownFail))
	assert.Equal(t, ResultPass, c.Classify("", 0, ExpectPass))
}

func TestClassifyOverlappingMarkersPassBranchWins(t *testing.T) {
	// Both marker sets match; the documented first-match order means the
	// pass branch decides.
	var c Classifier
	assert.Equal(t, ResultPass, c.Classify("passed 10, failed 2", 1, ExpectPass))
}

func TestClassifyStripsAnsiEscapes(t *testing.T) {
	var c Classifier
	assert.Equal(t, ResultPass, c.Classify("\x1b[32mPassed\x1b[0m", 1, ExpectPass))
	assert.Equal(t, ResultFail, c.Classify("\x1b[31mFailed\x1b[0m", 0, ExpectPass))
}

func TestClassifyCustomMarkerSets(t *testing.T) {
	c := Classifier{
		PassMarkers: []string{"all good"},
		FailMarkers: []string{"broken"},
	}
	assert.Equal(t, ResultPass, c.Classify("ALL GOOD", 1, ExpectPass))
	assert.Equal(t, ResultFail, c.Classify("broken", 0, ExpectPass))
	// The defaults no longer apply once custom sets are given.
	assert.Equal(t, ResultFail, c.Classify("test passed", 1, ExpectPass))
}

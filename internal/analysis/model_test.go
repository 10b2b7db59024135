package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClone_DeepCopy(t *testing.T) {
	t.Parallel()
	original := sampleResult()
	clone := original.Clone()

	require.Equal(t, original, clone)

	// Mutating the clone must not reach the original.
	clone.Breakdown.Factual.Reason = "changed"
	clone.Result.Sources[0].Title = "changed"
	clone.ImageSignals.Indicators[0] = "changed"
	clone.WebPresence.Observation = "changed"

	assert.NotEqual(t, "changed", original.Breakdown.Factual.Reason)
	assert.NotEqual(t, "changed", original.Result.Sources[0].Title)
	assert.NotEqual(t, "changed", original.ImageSignals.Indicators[0])
	assert.NotEqual(t, "changed", original.WebPresence.Observation)
}

func TestClone_NilSections(t *testing.T) {
	t.Parallel()
	original := AnalysisResult{Score: 10, Summary: "Minimal."}
	clone := original.Clone()

	assert.Equal(t, original, clone)
	assert.Nil(t, clone.Breakdown)
	assert.Nil(t, clone.Result)
}

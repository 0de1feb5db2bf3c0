package cruncher

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSurveyReportsBothAlgorithms(t *testing.T) {
	data := bytes.Repeat([]byte("spirvcruncher spirvcruncher spirvcruncher "), 64)

	results := Survey(data)
	require.Len(t, results, 2)

	seen := map[string]bool{}
	for _, r := range results {
		seen[r.Algorithm] = true
		require.NoError(t, r.Err, "%s should not fail on compressible data", r.Algorithm)
		assert.NotZero(t, r.CompressedSize, "%s: expected a non-zero compressed size", r.Algorithm)
		assert.Less(t, r.CompressedSize, len(data), "%s should compress repeated data", r.Algorithm)
	}
	assert.True(t, seen["zstd"] && seen["lz4"], "expected both zstd and lz4 results, got %v", seen)
}

func TestSurveyDoesNotMutateInput(t *testing.T) {
	data := []byte("a small SPIR-V-shaped buffer for testing purposes")
	original := append([]byte(nil), data...)

	Survey(data)

	assert.Equal(t, original, data, "Survey must not mutate its input")
}

package bench

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarizeMichelson(t *testing.T) {
	assert := assert.New(t)
	s := Summarize(TraceScene(DefaultMichelsonLayout().Bench(), DefaultTraceConfig()))

	assert.Equal(11, s.Segments)
	assert.Equal(2, s.Escaped)
	assert.Equal(4, s.MaxDepth)
	assert.Equal(map[string]int{MichelsonSourceID: 11}, s.PerSource)
	assert.InDelta(0.5, s.EscapedIntensity[MichelsonSourceID], 1e-9)
	assert.Equal(1.0, s.PeakIntensity)
	assert.Greater(s.PathLength, 40.0)
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	assert.Zero(t, s.Segments)
	assert.Zero(t, s.PathLength)
	assert.Empty(t, s.PerSource)
}

func TestSummarizePathLength(t *testing.T) {
	segments := []TraceSegment{
		{Start: V(0, 0, 0), End: V(3, 4, 0), Intensity: 0.5, SourceElementID: "a"},
		{Start: V(3, 4, 0), End: V(3, 4, 10), Intensity: 0.25, Depth: 1, SourceElementID: "a"},
		{Start: V(0, 0, 0), End: V(0, 0, 5000), Intensity: 1, Escaped: true, SourceElementID: "b"},
	}
	s := Summarize(segments)
	assert.InDelta(t, 15, s.PathLength, 1e-12)
	assert.Equal(t, 1, s.Escaped)
	assert.Equal(t, 1, s.MaxDepth)
	assert.Equal(t, map[string]int{"a": 2, "b": 1}, s.PerSource)
}

func TestOpticalDensity(t *testing.T) {
	assert.InDelta(t, 0, OpticalDensity(1), 1e-12)
	assert.InDelta(t, 1, OpticalDensity(0.1), 1e-12)
	assert.InDelta(t, 3, OpticalDensity(0.001), 1e-12)
	assert.True(t, math.IsInf(OpticalDensity(0), 1))
}

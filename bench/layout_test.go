package bench

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMichelsonLayout(t *testing.T) {
	l := DefaultMichelsonLayout()
	l.Center = V(100, 0, 50)
	elements := l.Elements()
	assert.Len(t, elements, 5)

	ids := make([]string, len(elements))
	for i, e := range elements {
		ids[i] = e.ID
	}
	assert.Equal(t, []string{MichelsonSourceID, MichelsonSplitterID, MichelsonArmXID, MichelsonArmZID, MichelsonDetectorID}, ids)

	assert.InDelta(t, 0, elements[0].WorldBoundsCenter().Sub(V(100, 0, 40)).Length(), 1e-9)
	assert.InDelta(t, 0, elements[2].WorldBoundsCenter().Sub(V(106, 0, 50)).Length(), 1e-9)
	assert.InDelta(t, 0, elements[4].WorldBoundsCenter().Sub(V(94, 0, 50)).Length(), 1e-9)
	assert.Equal(t, 0.5, elements[1].Optics.Reflectivity)
	assert.Equal(t, Absorber, elements[4].Type)
}

func TestMichelsonPathDifference(t *testing.T) {
	l := DefaultMichelsonLayout()
	assert.Zero(t, l.PathDifference())
	l.ArmX = 7.5
	assert.InDelta(t, 3, l.PathDifference(), 1e-12)
}

func TestMichelsonTracesFromAnyCenter(t *testing.T) {
	l := DefaultMichelsonLayout()
	l.Center = V(-30, 5, 12)
	segments := TraceScene(l.Bench(), DefaultTraceConfig())
	assert.Len(t, segments, 11)
}

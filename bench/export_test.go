package bench

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fogleman/pt/pt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorToHex(t *testing.T) {
	assert.Equal(t, "#FF0000", ColorToHex(Red))
	assert.Equal(t, "#00FF80", ColorToHex(pt.Color{R: -1, G: 2, B: 0.5}))
}

func TestBeamToJSON(t *testing.T) {
	b := BeamToJSON(Beam{Intensity: 0.1, Color: Red})
	require.NotNil(t, b.Attenuation)
	assert.InDelta(t, -10, *b.Attenuation, 1e-9)

	dark := BeamToJSON(Beam{})
	assert.Nil(t, dark.Attenuation)
}

func TestSaveBenchToJSON(t *testing.T) {
	b := DefaultMichelsonLayout().Bench()
	segments := TraceScene(b, DefaultTraceConfig())
	path := filepath.Join(t.TempDir(), "bench.json")
	require.NoError(t, SaveBenchToJSON(path, b, Summarize(segments)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var decoded struct {
		Elements []ElementJSON `json:"elements"`
		Beams    []BeamJSON    `json:"beams"`
		Summary  SummaryJSON   `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Len(t, decoded.Elements, 5)
	assert.Equal(t, "splitter", decoded.Elements[1].Type)
	assert.Len(t, decoded.Beams, 11)
	assert.Equal(t, 11, decoded.Summary.Segments)
	assert.Equal(t, 2, decoded.Summary.Escaped)
}

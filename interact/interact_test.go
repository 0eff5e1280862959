package interact

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/damnltd/opticsketch-sub000/bench"
)

func michelson(t *testing.T) ([]bench.TraceSegment, bench.View) {
	t.Helper()
	b := bench.DefaultMichelsonLayout().Bench()
	segments := bench.TraceScene(b, bench.DefaultTraceConfig())
	require.NotEmpty(t, segments)
	return segments, bench.View{Bench: b, XSize: 200, YSize: 150, Plane: bench.PlanView(), Margin: 10}
}

func TestItemText(t *testing.T) {
	segments, _ := michelson(t)
	first := item{index: 0, segment: segments[0]}
	assert.Contains(t, first.Title(), "#0 laser")
	assert.Contains(t, first.Title(), "I=1.000")
	assert.Contains(t, first.Description(), "depth 0")
	assert.Equal(t, "laser", first.FilterValue())

	escaped := item{index: 4, segment: segments[4]}
	assert.Contains(t, escaped.Title(), "escaped")
}

func TestUpdateRendersSelection(t *testing.T) {
	segments, view := michelson(t)
	out := filepath.Join(t.TempDir(), "selected.png")
	m := newModel(segments, view, out)
	assert.Len(t, m.list.Items(), len(segments))

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	got := updated.(model)
	assert.NoError(t, got.err)
	assert.Equal(t, 0, got.selected)
	assert.Equal(t, bench.MichelsonSourceID, got.view.HighlightSource)
	assert.FileExists(t, out)
}

func TestCtrlCQuits(t *testing.T) {
	segments, view := michelson(t)
	m := newModel(segments, view, filepath.Join(t.TempDir(), "selected.png"))
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

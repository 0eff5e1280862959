package interact

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/damnltd/opticsketch-sub000/bench"
)

var docStyle = lipgloss.NewStyle().Margin(1, 2)

type item struct {
	index   int
	segment bench.TraceSegment
}

func (i item) Title() string {
	status := fmt.Sprintf("%.1f mm", i.segment.Length())
	if i.segment.Escaped {
		status = "escaped"
	}
	return fmt.Sprintf("#%d %s  I=%.3f  %s", i.index, i.segment.SourceElementID, i.segment.Intensity, status)
}

func (i item) Description() string {
	s, e := i.segment.Start, i.segment.End
	return fmt.Sprintf("depth %d  (%.1f, %.1f, %.1f) -> (%.1f, %.1f, %.1f)", i.segment.Depth, s.X, s.Y, s.Z, e.X, e.Y, e.Z)
}

func (i item) FilterValue() string {
	return i.segment.SourceElementID
}

type model struct {
	list     list.Model
	view     bench.View
	out      string
	selected int
	err      error
}

func newModel(segments []bench.TraceSegment, view bench.View, out string) model {
	items := make([]list.Item, len(segments))
	for i, s := range segments {
		items[i] = item{index: i, segment: s}
	}
	m := model{
		list:     list.New(items, list.NewDefaultDelegate(), 0, 0),
		view:     view,
		out:      out,
		selected: -1,
	}
	m.list.Title = fmt.Sprintf("Traced segments (%d)", len(segments))
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	if i := m.list.Index(); i != m.selected {
		m.selected = i
		m.err = m.renderSelection()
	}
	return m, cmd
}

// renderSelection redraws the bench with the selected segment's source highlighted.
func (m *model) renderSelection() error {
	selected, ok := m.list.SelectedItem().(item)
	if !ok {
		return nil
	}
	m.view.HighlightSource = selected.segment.SourceElementID
	return m.view.SavePNG(m.out)
}

func (m model) View() string {
	if m.err != nil {
		return docStyle.Render(m.list.View() + "\n" + m.err.Error())
	}
	return docStyle.Render(m.list.View())
}

// Interact opens a list of traced segments. Moving the selection re-renders
// view to out with the selected segment's source highlighted.
func Interact(segments []bench.TraceSegment, view bench.View, out string) error {
	p := tea.NewProgram(newModel(segments, view, out), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running beam browser: %w", err)
	}
	return nil
}

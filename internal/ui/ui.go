package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/koki-develop/imgascii/internal/ascii"
)

type Option struct {
	Title string
	Art   string
}

func Start(opt *Option) error {
	m := newModel(opt)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}

	return nil
}

var _ tea.Model = &model{}

type model struct {
	title string
	lines []string
	width int

	state    modelState
	viewport viewport.Model
}

func newModel(opt *Option) *model {
	lines := ascii.Lines(opt.Art)
	w := 0
	for _, line := range lines {
		w = max(w, len(line))
	}

	return &model{
		title: opt.Title,
		lines: lines,
		width: w,
		state: modelStateLoading,
	}
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) View() string {
	switch m.state {
	case modelStateLoading:
		return m.loadingView()
	case modelStateViewing:
		return m.viewport.View() + "\n" + m.helpView()
	}

	return ""
}

func (m *model) loadingView() string {
	return "loading..."
}

// artView centers the art horizontally in a window of the given width.
func (m *model) artView(windowWidth int) string {
	leftPad := strings.Repeat(" ", max(0, (windowWidth-m.width)/2))
	b := new(strings.Builder)
	for i, line := range m.lines {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(leftPad)
		b.WriteString(line)
	}

	return b.String()
}

func (m *model) helpView() string {
	b := new(strings.Builder)
	b.WriteString(color.New(color.BgGreen, color.FgBlack).Sprintf(" %s ", m.title))
	b.WriteString(" ↑/↓ scroll  q quit")
	if !m.viewport.AtBottom() {
		b.WriteString(color.New(color.Faint).Sprintf("  %3.f%%", m.viewport.ScrollPercent()*100))
	}

	return b.String()
}

type modelState string

const (
	modelStateLoading modelState = "loading"
	modelStateViewing modelState = "viewing"
)

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		// one row is kept for the help line
		height := max(1, msg.Height-1)
		if m.state == modelStateLoading {
			m.viewport = viewport.New(msg.Width, height)
			m.state = modelStateViewing
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
		m.viewport.SetContent(m.artView(msg.Width))
		return m, nil
	}

	if m.state != modelStateViewing {
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

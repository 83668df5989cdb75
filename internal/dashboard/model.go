// Package dashboard renders a full-screen, tabbed view of repository
// state. It is a pure presentation loop: nothing here invokes the
// commit workflow, and the tab content is representative rather than
// live. The model carries all of its state explicitly so a future
// integration can feed it fresh data on every tick.
package dashboard

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tickInterval bounds how long the loop waits for input before
// redrawing.
const tickInterval = 250 * time.Millisecond

type tickMsg time.Time

// Tab is a named pane in the navigation list.
type Tab struct {
	Title string
	Body  string
}

// Model is the bubbletea model for the dashboard screen.
type Model struct {
	branch   string
	tabs     []Tab
	selected int
	width    int
	height   int
	styles   *Styles
}

func NewModel(branch string, tabs []Tab) Model {
	return Model{
		branch: branch,
		tabs:   tabs,
		styles: newStyles(),
	}
}

// Selected returns the index of the active tab.
func (m Model) Selected() int {
	return m.selected
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.selected = (m.selected + 1) % len(m.tabs)
		case "shift+tab":
			m.selected = (m.selected - 1 + len(m.tabs)) % len(m.tabs)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		// No background work between ticks; redraw and rearm.
		return m, tick()
	}

	return m, nil
}

// Run starts the dashboard on the alternate screen and blocks until
// the user quits. Bubbletea restores the terminal on every exit path,
// including errors.
func Run(branch string) error {
	p := tea.NewProgram(NewModel(branch, DefaultTabs()), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

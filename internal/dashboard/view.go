package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles holds the lipgloss styles for every screen region.
type Styles struct {
	header      lipgloss.Style
	tabActive   lipgloss.Style
	tabInactive lipgloss.Style
	nav         lipgloss.Style
	panel       lipgloss.Style
	footer      lipgloss.Style
}

func newStyles() *Styles {
	return &Styles{
		header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Bold(true).
			Padding(0, 1),
		tabActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Bold(true).
			Padding(0, 1),
		tabInactive: lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")).
			Padding(0, 1),
		nav: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Width(18).
			Padding(0, 1),
		panel: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		footer: lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")).
			Italic(true).
			Padding(0, 1),
	}
}

func (m Model) View() string {
	header := m.styles.header.Render(fmt.Sprintf("gitship dashboard — branch: %s", m.branch))

	var nav strings.Builder
	for i, tab := range m.tabs {
		style := m.styles.tabInactive
		if i == m.selected {
			style = m.styles.tabActive
		}
		nav.WriteString(style.Render(tab.Title))
		nav.WriteString("\n")
	}

	panelWidth := m.width - 24
	if panelWidth < 20 {
		panelWidth = 20
	}
	panel := m.styles.panel.Width(panelWidth).Render(m.tabs[m.selected].Body)

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.styles.nav.Render(strings.TrimRight(nav.String(), "\n")),
		panel,
	)

	footer := m.styles.footer.Render("tab/shift+tab: switch view • q: quit")

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

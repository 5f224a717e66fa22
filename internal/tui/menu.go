package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

var menuEntries = []struct {
	label   string
	section AppState
}{
	{"API Keys", StateKeys},
	{"Usage", StateUsage},
	{"Documentation", StateDocs},
}

func NewMenu() *MenuModel {
	return &MenuModel{}
}

func (m *MenuModel) Update(msg tea.Msg) (*MenuModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(menuEntries)-1 {
			m.cursor++
		}
	case "enter":
		return m, func() tea.Msg {
			return EnterSectionMsg{section: menuEntries[m.cursor].section}
		}
	}

	return m, nil
}

func (m *MenuModel) View() string {
	var b strings.Builder

	b.WriteString(logo)
	if m.username != "" {
		b.WriteString(titleStyle.Render(fmt.Sprintf("  Welcome, %s", m.username)))
	}
	b.WriteString("\n")

	for i, entry := range menuEntries {
		if i == m.cursor {
			b.WriteString(menuItemSelectedStyle.Render("> "+entry.label) + "\n")
		} else {
			b.WriteString(menuItemStyle.Render("  "+entry.label) + "\n")
		}
	}

	b.WriteString(helpStyle.Render("  ↑/↓: move · enter: open · ctrl+c: quit"))
	return b.String()
}

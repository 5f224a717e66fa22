package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"codeberg.org/serika/portal/internal/serika"
)

func NewApp(client *serika.Client) *Model {
	return &Model{
		state:  StateLogin,
		client: client,
		login:  NewLogin(),
		menu:   NewMenu(),
		keys:   NewKeys(),
		usage:  NewUsage(),
		docs:   NewDocs(),
	}
}

func (m *Model) Init() tea.Cmd {
	return m.login.Init()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "esc":
			// esc backs out to the menu from any section
			if m.state == StateKeys || m.state == StateUsage || m.state == StateDocs {
				m.err = nil
				m.state = StateMenu
				return m, nil
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.docs.Resize(msg.Width, msg.Height)

	case ErrorMsg:
		m.err = msg.err
		m.login.busy = false
		m.keys.busy = false
		m.usage.busy = false
		return m, nil

	case LoginDoneMsg:
		m.err = nil
		m.state = StateMenu
		m.menu.username = msg.user.Username
		return m, nil

	case EnterSectionMsg:
		m.err = nil
		switch msg.section {
		case StateKeys:
			m.state = StateKeys
			return m, m.keys.Enter(m.client)
		case StateUsage:
			m.state = StateUsage
			return m, m.usage.Enter(m.client)
		case StateDocs:
			m.state = StateDocs
			return m, m.docs.Enter()
		}
		return m, nil

	case KeyMutatedMsg:
		return m, loadKeysCmd(m.client)
	}

	switch m.state {
	case StateLogin:
		var cmd tea.Cmd
		m.login, cmd = m.login.Update(msg, m.client)
		return m, cmd

	case StateMenu:
		var cmd tea.Cmd
		m.menu, cmd = m.menu.Update(msg)
		return m, cmd

	case StateKeys:
		var cmd tea.Cmd
		m.keys, cmd = m.keys.Update(msg, m.client)
		return m, cmd

	case StateUsage:
		var cmd tea.Cmd
		m.usage, cmd = m.usage.Update(msg)
		return m, cmd

	case StateDocs:
		var cmd tea.Cmd
		m.docs, cmd = m.docs.Update(msg)
		return m, cmd

	default:
		return m, nil
	}
}

func (m *Model) View() string {
	var body string

	switch m.state {
	case StateLogin:
		body = m.login.View()
	case StateMenu:
		body = m.menu.View()
	case StateKeys:
		body = m.keys.View()
	case StateUsage:
		body = m.usage.View()
	case StateDocs:
		body = m.docs.View()
	default:
		body = "Unknown state"
	}

	if m.err != nil {
		body += "\n" + errorStyle.Render(fmt.Sprintf("  Error: %v", m.err))
	}

	return body
}

// sent by the menu when a section is chosen
type EnterSectionMsg struct {
	section AppState
}

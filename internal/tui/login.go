package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"codeberg.org/serika/portal/internal/serika"
)

func NewLogin() *LoginModel {
	email := textinput.New()
	email.Placeholder = "email"
	email.Focus()
	email.CharLimit = 128

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'
	password.CharLimit = 128

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &LoginModel{
		email:    email,
		password: password,
		spinner:  sp,
	}
}

func (l *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (l *LoginModel) Update(msg tea.Msg, client *serika.Client) (*LoginModel, tea.Cmd) {
	if l.busy {
		var cmd tea.Cmd
		l.spinner, cmd = l.spinner.Update(msg)
		return l, cmd
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "shift+tab", "up", "down":
			l.focused = (l.focused + 1) % 2
			if l.focused == 0 {
				l.email.Focus()
				l.password.Blur()
			} else {
				l.password.Focus()
				l.email.Blur()
			}
			return l, nil

		case "enter":
			email := strings.TrimSpace(l.email.Value())
			password := l.password.Value()
			if email == "" || password == "" {
				l.status = "email and password are required"
				return l, nil
			}

			l.busy = true
			l.status = ""
			return l, tea.Batch(l.spinner.Tick, loginCmd(client, email, password))
		}
	}

	var cmds [2]tea.Cmd
	l.email, cmds[0] = l.email.Update(msg)
	l.password, cmds[1] = l.password.Update(msg)
	return l, tea.Batch(cmds[0], cmds[1])
}

func (l *LoginModel) View() string {
	var b strings.Builder

	b.WriteString(logo)
	b.WriteString(titleStyle.Render("  Sign in to serika.dev"))
	b.WriteString("\n\n  ")
	b.WriteString(l.email.View())
	b.WriteString("\n  ")
	b.WriteString(l.password.View())
	b.WriteString("\n")

	if l.busy {
		b.WriteString("\n  " + l.spinner.View() + infoStyle.Render(" signing in…"))
	}
	if l.status != "" {
		b.WriteString("\n  " + errorStyle.Render(l.status))
	}

	b.WriteString("\n" + helpStyle.Render("  tab: switch field · enter: sign in · ctrl+c: quit"))
	return b.String()
}

package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"codeberg.org/serika/portal/internal/serika"
)

func NewUsage() *UsageModel {
	return &UsageModel{}
}

func (u *UsageModel) Enter(client *serika.Client) tea.Cmd {
	u.busy = true
	u.usage = nil
	return loadUsageCmd(client)
}

func (u *UsageModel) Update(msg tea.Msg) (*UsageModel, tea.Cmd) {
	if loaded, ok := msg.(UsageLoadedMsg); ok {
		u.busy = false
		usage := loaded.usage
		u.usage = &usage
	}
	return u, nil
}

func (u *UsageModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("  Usage"))
	b.WriteString("\n")

	if u.busy {
		b.WriteString("  " + infoStyle.Render("loading…") + "\n")
		return b.String()
	}

	if u.usage == nil {
		b.WriteString(helpStyle.Render("  esc: back"))
		return b.String()
	}

	s := u.usage.Summary
	b.WriteString(fmt.Sprintf("  %s %d\n", labelStyle.Render("Total tokens:"), s.TotalTokens))
	b.WriteString(fmt.Sprintf("  %s %d\n", labelStyle.Render("Total images:"), s.TotalImages))
	b.WriteString(fmt.Sprintf("  %s $%.4f\n", labelStyle.Render("Total cost:  "), s.TotalCost))

	if len(u.usage.ByEndpoint) > 0 {
		b.WriteString("\n")
		for _, row := range u.usage.ByEndpoint {
			b.WriteString(fmt.Sprintf("  %s  %d requests · $%.4f\n",
				labelStyle.Render(row.Endpoint), row.TotalRequests, row.TotalCost))
		}
	}

	b.WriteString(helpStyle.Render("  esc: back"))
	return b.String()
}

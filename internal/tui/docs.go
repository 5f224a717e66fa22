package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"codeberg.org/serika/portal/internal/docs"
)

func NewDocs() *DocsModel {
	var slugs []string
	for _, section := range docs.Sections() {
		slugs = append(slugs, section.Slug)
	}

	return &DocsModel{
		viewport: viewport.New(80, 24),
		sections: slugs,
	}
}

func (d *DocsModel) Enter() tea.Cmd {
	d.render()
	return nil
}

func (d *DocsModel) Resize(width, height int) {
	d.viewport.Width = width
	d.viewport.Height = height - 4
	d.ready = true
	d.render()
}

func (d *DocsModel) Update(msg tea.Msg) (*DocsModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "left", "h":
			if d.section > 0 {
				d.section--
				d.render()
			}
			return d, nil
		case "right", "l":
			if d.section < len(d.sections)-1 {
				d.section++
				d.render()
			}
			return d, nil
		}
	}

	var cmd tea.Cmd
	d.viewport, cmd = d.viewport.Update(msg)
	return d, cmd
}

func (d *DocsModel) render() {
	if len(d.sections) == 0 {
		return
	}

	section, ok := docs.BySlug(d.sections[d.section])
	if !ok {
		return
	}

	rendered, err := glamour.Render("# "+section.Title+"\n\n"+section.Body, "dark")
	if err != nil {
		rendered = section.Body
	}

	d.viewport.SetContent(rendered)
	d.viewport.GotoTop()
}

func (d *DocsModel) View() string {
	var b strings.Builder

	var tabs []string
	for i, slug := range d.sections {
		if i == d.section {
			tabs = append(tabs, menuItemSelectedStyle.Render(slug))
		} else {
			tabs = append(tabs, menuItemStyle.Render(slug))
		}
	}

	b.WriteString("\n" + strings.Join(tabs, " ") + "\n")
	b.WriteString(d.viewport.View())
	b.WriteString(helpStyle.Render("  ←/→: section · ↑/↓: scroll · esc: back"))
	return b.String()
}

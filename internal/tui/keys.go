package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"codeberg.org/serika/portal/internal/serika"
)

func NewKeys() *KeysModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	nameIn := textinput.New()
	nameIn.Placeholder = "key name"
	nameIn.CharLimit = 64

	return &KeysModel{
		spinner: sp,
		nameIn:  nameIn,
	}
}

// Enter starts a fresh fetch when the section is opened.
func (k *KeysModel) Enter(client *serika.Client) tea.Cmd {
	k.busy = true
	k.status = ""
	k.minted = ""
	return tea.Batch(k.spinner.Tick, loadKeysCmd(client))
}

func (k *KeysModel) Update(msg tea.Msg, client *serika.Client) (*KeysModel, tea.Cmd) {
	switch msg := msg.(type) {
	case KeysLoadedMsg:
		k.busy = false
		k.keys = msg.keys
		if k.cursor >= len(k.keys) {
			k.cursor = 0
		}
		return k, nil

	case KeyMintedMsg:
		k.busy = false
		// the plaintext is shown once and never fetchable again
		k.minted = msg.key.Key
		k.mintedID = msg.key.ID
		return k, loadKeysCmd(client)

	case spinner.TickMsg:
		if k.busy {
			var cmd tea.Cmd
			k.spinner, cmd = k.spinner.Update(msg)
			return k, cmd
		}
		return k, nil

	case tea.KeyMsg:
		if k.naming {
			return k.updateNaming(msg, client)
		}
		return k.updateList(msg, client)
	}

	return k, nil
}

func (k *KeysModel) updateNaming(msg tea.KeyMsg, client *serika.Client) (*KeysModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		k.naming = false
		k.nameIn.Reset()
		return k, nil

	case "enter":
		name := strings.TrimSpace(k.nameIn.Value())
		if name == "" {
			k.status = "name must not be empty"
			return k, nil
		}

		k.naming = false
		k.busy = true
		k.status = ""
		k.nameIn.Reset()
		return k, tea.Batch(k.spinner.Tick, createKeyCmd(client, name))
	}

	var cmd tea.Cmd
	k.nameIn, cmd = k.nameIn.Update(msg)
	return k, cmd
}

func (k *KeysModel) updateList(msg tea.KeyMsg, client *serika.Client) (*KeysModel, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if k.cursor > 0 {
			k.cursor--
		}
	case "down", "j":
		if k.cursor < len(k.keys)-1 {
			k.cursor++
		}
	case "n":
		k.naming = true
		k.minted = ""
		k.nameIn.Focus()
		return k, textinput.Blink
	case "r":
		if key, ok := k.selected(); ok {
			k.busy = true
			return k, tea.Batch(k.spinner.Tick, regenerateKeyCmd(client, key.ID))
		}
	case "t":
		if key, ok := k.selected(); ok {
			k.busy = true
			return k, tea.Batch(k.spinner.Tick, toggleKeyCmd(client, key))
		}
	case "x":
		if key, ok := k.selected(); ok {
			k.busy = true
			return k, tea.Batch(k.spinner.Tick, deleteKeyCmd(client, key.ID))
		}
	}

	return k, nil
}

func (k *KeysModel) selected() (serika.APIKey, bool) {
	if len(k.keys) == 0 || k.cursor >= len(k.keys) {
		return serika.APIKey{}, false
	}
	return k.keys[k.cursor], true
}

func (k *KeysModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("  API Keys"))
	b.WriteString("\n")

	if k.busy {
		b.WriteString("  " + k.spinner.View() + infoStyle.Render(" working…") + "\n")
	}

	if k.naming {
		b.WriteString("\n  " + labelStyle.Render("New key name:") + " " + k.nameIn.View() + "\n")
		b.WriteString(helpStyle.Render("  enter: create · esc: cancel"))
		return b.String()
	}

	if len(k.keys) == 0 && !k.busy {
		b.WriteString("\n  " + infoStyle.Render("No API keys yet. Press n to create one.") + "\n")
	}

	for i, key := range k.keys {
		cursor := "  "
		if i == k.cursor {
			cursor = menuItemSelectedStyle.Render(">")
		}

		state := activeStyle.Render("active")
		if !key.Active {
			state = disabledStyle.Render("disabled")
		}

		b.WriteString(fmt.Sprintf("%s %s  %s  %s\n",
			cursor,
			labelStyle.Render(key.Name),
			state,
			infoStyle.Render(fmt.Sprintf("%d tokens · %d images", key.TotalTokens, key.TotalImages)),
		))
	}

	if k.minted != "" {
		b.WriteString("\n" + mintedStyle.Render("key: "+k.minted) + "\n")
		b.WriteString(infoStyle.Render("  copy it now, it will not be shown again") + "\n")
	}

	if k.status != "" {
		b.WriteString("\n  " + errorStyle.Render(k.status) + "\n")
	}

	b.WriteString(helpStyle.Render("  n: new · r: regenerate · t: enable/disable · x: delete · esc: back"))
	return b.String()
}

package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"codeberg.org/serika/portal/internal/serika"
)

const requestTimeout = 30 * time.Second

func withTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), requestTimeout)
}

func loginCmd(client *serika.Client, email, password string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()

		resp, err := client.Login(ctx, email, password)
		if err != nil {
			return ErrorMsg{err}
		}

		msg := LoginDoneMsg{}
		if resp.User != nil {
			msg.user = *resp.User
		}
		return msg
	}
}

func loadKeysCmd(client *serika.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()

		keys, err := client.ListKeys(ctx)
		if err != nil {
			return ErrorMsg{err}
		}
		return KeysLoadedMsg{keys: keys}
	}
}

func createKeyCmd(client *serika.Client, name string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()

		key, err := client.CreateKey(ctx, name)
		if err != nil {
			return ErrorMsg{err}
		}
		return KeyMintedMsg{key: *key}
	}
}

func regenerateKeyCmd(client *serika.Client, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()

		key, err := client.RegenerateKey(ctx, id)
		if err != nil {
			return ErrorMsg{err}
		}
		return KeyMintedMsg{key: *key}
	}
}

func toggleKeyCmd(client *serika.Client, key serika.APIKey) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()

		var err error
		if key.Active {
			err = client.DisableKey(ctx, key.ID)
		} else {
			err = client.EnableKey(ctx, key.ID)
		}
		if err != nil {
			return ErrorMsg{err}
		}
		return KeyMutatedMsg{}
	}
}

func deleteKeyCmd(client *serika.Client, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()

		if err := client.DeleteKey(ctx, id); err != nil {
			return ErrorMsg{err}
		}
		return KeyMutatedMsg{}
	}
}

func loadUsageCmd(client *serika.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout()
		defer cancel()

		usage, err := client.Usage(ctx, serika.UsageOptions{})
		if err != nil {
			return ErrorMsg{err}
		}
		return UsageLoadedMsg{usage: *usage}
	}
}

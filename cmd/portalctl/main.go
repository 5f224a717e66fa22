package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"codeberg.org/serika/portal/internal/credentials"
	"codeberg.org/serika/portal/internal/serika"
	"codeberg.org/serika/portal/internal/tui"
)

func main() {
	baseURL := os.Getenv("SERIKA_API_URL")
	if baseURL == "" {
		baseURL = "https://beta-api.serika.dev"
	}
	baseURL = strings.TrimRight(baseURL, "/")

	// credentials live in memory for the lifetime of the session
	store := credentials.NewMemoryStore()
	if key := os.Getenv("SERIKA_API_KEY"); key != "" {
		store.SetAPIKey(key)
	}

	client := serika.NewClient(baseURL, store)

	app := tui.NewApp(client)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Printf("error running portalctl: %v\n", err)
		os.Exit(1)
	}
}

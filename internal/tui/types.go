package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"codeberg.org/serika/portal/internal/serika"
)

// represents the current state of the TUI
type AppState int

const (
	StateLogin AppState = iota
	StateMenu
	StateKeys
	StateUsage
	StateDocs
)

// main TUI application model
type Model struct {
	state  AppState
	width  int
	height int
	err    error

	client *serika.Client

	login *LoginModel
	menu  *MenuModel
	keys  *KeysModel
	usage *UsageModel
	docs  *DocsModel
}

// sent when an operation fails
type ErrorMsg struct {
	err error
}

// sent after a successful login
type LoginDoneMsg struct {
	user serika.User
}

// sent when the key list has been fetched
type KeysLoadedMsg struct {
	keys []serika.APIKey
}

// sent after create/regenerate, carries the one-time plaintext
type KeyMintedMsg struct {
	key serika.APIKey
}

// sent after enable/disable/delete, triggers a list refresh
type KeyMutatedMsg struct{}

// sent when usage has been fetched
type UsageLoadedMsg struct {
	usage serika.UsageResponse
}

// login form
type LoginModel struct {
	email    textinput.Model
	password textinput.Model
	focused  int
	busy     bool
	spinner  spinner.Model
	status   string
}

// section picker shown after login
type MenuModel struct {
	cursor   int
	username string
}

// key management view
type KeysModel struct {
	keys     []serika.APIKey
	cursor   int
	busy     bool
	spinner  spinner.Model
	status   string
	naming   bool
	nameIn   textinput.Model
	minted   string
	mintedID string
}

// usage report view
type UsageModel struct {
	usage  *serika.UsageResponse
	busy   bool
	status string
}

// documentation reader
type DocsModel struct {
	viewport viewport.Model
	sections []string
	section  int
	ready    bool
}

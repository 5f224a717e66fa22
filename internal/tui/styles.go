package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	colorWhite     = lipgloss.Color("#FFFFFF")
	colorLightGray = lipgloss.Color("#CCCCCC")
	colorGray      = lipgloss.Color("#888888")
	colorDarkGray  = lipgloss.Color("#444444")
	colorPurple    = lipgloss.Color("#7c5cff")
	colorGreen     = lipgloss.Color("#3ddc84")
	colorRed       = lipgloss.Color("#ff5c5c")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite).
			MarginTop(1).
			MarginBottom(1)

	menuItemStyle = lipgloss.NewStyle().
			Foreground(colorLightGray).
			PaddingLeft(2)

	menuItemSelectedStyle = lipgloss.NewStyle().
				Foreground(colorPurple).
				Bold(true).
				PaddingLeft(2)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorLightGray)

	activeStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	disabledStyle = lipgloss.NewStyle().
			Foreground(colorGray).
			Italic(true)

	mintedStyle = lipgloss.NewStyle().
			Foreground(colorGreen).
			Bold(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(colorGreen).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(colorGray).
			Italic(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorDarkGray).
			Italic(true).
			MarginTop(1)
)

const logo = `
  ███████╗███████╗██████╗ ██╗██╗  ██╗ █████╗
  ██╔════╝██╔════╝██╔══██╗██║██║ ██╔╝██╔══██╗
  ███████╗█████╗  ██████╔╝██║█████╔╝ ███████║
  ╚════██║██╔══╝  ██╔══██╗██║██╔═██╗ ██╔══██║
  ███████║███████╗██║  ██║██║██║  ██╗██║  ██║
  ╚══════╝╚══════╝╚═╝  ╚═╝╚═╝╚═╝  ╚═╝╚═╝  ╚═╝
`

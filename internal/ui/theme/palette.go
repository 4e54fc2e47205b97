package theme

import "github.com/charmbracelet/lipgloss"

var (
	Base    = lipgloss.Color("#14171f")
	Panel   = lipgloss.Color("#1b1f2a")
	Surface = lipgloss.Color("#2a2f3d")
	Border  = lipgloss.Color("#3b4254")
	Text    = lipgloss.Color("#d8dee9")
	Subtext = lipgloss.Color("#8b93a7")
	Mint    = lipgloss.Color("#7ee8a2")
	Sky     = lipgloss.Color("#6cc3f0")
	Coral   = lipgloss.Color("#f28779")
	Amber   = lipgloss.Color("#f2c179")

	App = lipgloss.NewStyle().
		Background(Base).
		Foreground(Text).
		Padding(1, 2)

	Pane = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Background(Panel).
		Foreground(Text).
		Padding(1)

	PaneActive = Pane.BorderForeground(Mint)

	Title   = lipgloss.NewStyle().Foreground(Sky).Bold(true)
	Muted   = lipgloss.NewStyle().Foreground(Subtext)
	Hot     = lipgloss.NewStyle().Foreground(Amber).Bold(true)
	Good    = lipgloss.NewStyle().Foreground(Mint)
	Bad     = lipgloss.NewStyle().Foreground(Coral).Bold(true)
	Checked = lipgloss.NewStyle().Foreground(Mint).Bold(true)
)

package cli

import "github.com/charmbracelet/lipgloss"

var (
	nameStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#5FAFD7")).Bold(true)
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#00D787")).Bold(true)
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C6C6C")).Italic(true)
	couplingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF87D7")).Bold(true)
	tensionStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF005F"))
	shiftStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#5FAFD7"))
)

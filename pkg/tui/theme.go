package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha 调色板的子集
const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorLavender lipgloss.Color = "#b4befe"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorRed      lipgloss.Color = "#f38ba8"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface0 lipgloss.Color = "#313244"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorPink)
	cardStyle    = lipgloss.NewStyle().Foreground(colorSubtext0).PaddingLeft(2)
	focusedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorText).Background(colorSurface0).
			BorderStyle(lipgloss.ThickBorder()).BorderLeft(true).BorderForeground(colorLavender).PaddingLeft(1)
	authorStyle = lipgloss.NewStyle().Foreground(colorOverlay0)
	detailStyle = lipgloss.NewStyle().Foreground(colorText)
	helpStyle   = lipgloss.NewStyle().Foreground(colorOverlay0)
	searchStyle = lipgloss.NewStyle().Foreground(colorYellow)
	okStyle     = lipgloss.NewStyle().Foreground(colorGreen)
	errStyle    = lipgloss.NewStyle().Foreground(colorRed)
)

package report

import "github.com/charmbracelet/lipgloss"

var (
	colorHeading = lipgloss.AdaptiveColor{Light: "#0f172a", Dark: "#f1f5f9"}
	colorAccent  = lipgloss.AdaptiveColor{Light: "#2563eb", Dark: "#60a5fa"}
	colorDim     = lipgloss.AdaptiveColor{Light: "#94a3b8", Dark: "#64748b"}
)

var (
	styleTitle   = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	styleSection = lipgloss.NewStyle().Foreground(colorHeading).Bold(true)
	styleRule    = lipgloss.NewStyle().Foreground(colorDim)
	styleValue   = lipgloss.NewStyle().Foreground(colorAccent)
)

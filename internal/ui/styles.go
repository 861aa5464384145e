package ui

import "github.com/charmbracelet/lipgloss"

// Lipgloss Styles
var (
	DocStyle    = lipgloss.NewStyle().Margin(1, 2)
	TitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true).Render
	BoxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	PromptStyle = lipgloss.NewStyle().MarginTop(1)
	ErrorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	HelpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	// 记牌器张数配色：没有了 / 快没了 / 还多
	GoneStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Strikethrough(true)
	LowStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	ManyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

package app

import (
	"charm.land/lipgloss/v2"
)

// Color palette — calm, reading-friendly
var (
	colPrimary = lipgloss.Color("#38BDF8") // Sky
	colAccent  = lipgloss.Color("#FBBF24") // Amber
	colSuccess = lipgloss.Color("#34D399") // Emerald
	colError   = lipgloss.Color("#FB7185") // Rose
	colText    = lipgloss.Color("#E2E8F0") // Slate light
	colDim     = lipgloss.Color("#64748B") // Slate
	colBorder  = lipgloss.Color("#334155") // Slate dark
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colPrimary)

	dimStyle = lipgloss.NewStyle().
			Foreground(colDim)

	bodyStyle = lipgloss.NewStyle().
			Foreground(colText)

	sentenceStyle = lipgloss.NewStyle().
			Foreground(colText).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colBorder).
			Padding(0, 2)

	kindStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colAccent)

	optionKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colPrimary)

	meaningStyle = lipgloss.NewStyle().
			Foreground(colDim).
			Italic(true)

	xpStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(colSuccess)

	errorStyle = lipgloss.NewStyle().
			Foreground(colError)
)

package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"roster/internal/services"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62"))

	labelStyle   = lipgloss.NewStyle().Width(12).Foreground(lipgloss.Color("245"))
	focusedStyle = lipgloss.NewStyle().Width(12).Foreground(lipgloss.Color("62")).Bold(true)

	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("62")).Bold(true)
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	statusDone       = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	statusInProgress = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))

	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func styleForStatus(status string) lipgloss.Style {
	if status == services.StatusCompleted {
		return statusDone
	}
	return statusInProgress
}

func tableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	// the progress table is display only
	styles.Selected = lipgloss.NewStyle()
	return styles
}

// barWidth sizes the task progress bar to half the table
func barWidth(tableWidth int) int {
	return max(tableWidth/2, 20)
}

// progressColumns splits width across the report columns
func progressColumns(width int) []table.Column {
	if width < 40 {
		width = 40
	}
	employee := width / 4
	task := width * 3 / 10
	kind := width / 6
	return []table.Column{
		{Title: "Employee", Width: employee},
		{Title: "Task", Width: task},
		{Title: "Kind", Width: kind},
		{Title: "Progress", Width: width - employee - task - kind},
	}
}

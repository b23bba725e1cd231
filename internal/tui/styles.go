package tui

import (
	"github.com/charmbracelet/lipgloss"

	"daily-task-manager/internal/model"
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	tabStyle       = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("245"))
	activeTabStyle = tabStyle.Bold(true).Foreground(lipgloss.Color("231")).Background(lipgloss.Color("#7D56F4"))
	sectionStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginTop(1)
	cursorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	doneStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Strikethrough(true)
	overdueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	dimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	dragStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)

	badgeBase = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("231"))
	badges    = map[int]lipgloss.Style{
		model.PriorityLow:    badgeBase.Background(lipgloss.Color("66")),
		model.PriorityNormal: badgeBase.Background(lipgloss.Color("31")),
		model.PriorityHigh:   badgeBase.Background(lipgloss.Color("172")),
		model.PriorityUrgent: badgeBase.Background(lipgloss.Color("160")),
	}
)

func priorityBadge(p *int) string {
	if p == nil {
		return ""
	}
	style, ok := badges[*p]
	if !ok {
		return ""
	}
	return style.Render(model.PriorityLabel(p))
}

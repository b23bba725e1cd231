package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"daily-task-manager/internal/tasklist"
)

var sectionTitles = map[tasklist.Section]string{
	tasklist.SectionToday:  "Today",
	tasklist.SectionFuture: "Upcoming",
	tasklist.SectionNoDue:  "No due date",
}

func (m Model) View() string {
	var b strings.Builder
	board := m.ctrl.Board()

	metrics := board.Metrics()
	b.WriteString(titleStyle.Render("Daily Tasks " + board.Today()))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  %d/%d done (%d%%)", metrics.Done, metrics.Total, metrics.CompletionRate)))
	b.WriteString("\n\n")

	tabs := make([]string, len(tabNames))
	for i, name := range tabNames {
		if Tab(i) == m.tab {
			tabs[i] = activeTabStyle.Render(name)
		} else {
			tabs[i] = tabStyle.Render(name)
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n")

	if m.loading {
		b.WriteString("\nLoading...\n")
		return b.String()
	}

	rows := m.rows()
	if len(rows) == 0 {
		b.WriteString(dimStyle.Render("\nNothing here.") + "\n")
	}

	_, dragID, dragging := board.Dragging()
	var current tasklist.Section = "-"
	for i, r := range rows {
		if m.tab == TabActive && r.section != current {
			current = r.section
			b.WriteString(sectionStyle.Render(sectionTitles[r.section]) + "\n")
		}
		b.WriteString(m.renderRow(i, r, dragging && r.task.ID == dragID))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch m.mode {
	case modeAdd:
		b.WriteString("New task: " + m.input + "█\n")
	case modeRename:
		b.WriteString("Rename: " + m.input + "█\n")
	}
	if m.err != nil {
		b.WriteString(errorStyle.Render("Error: "+m.err.Error()) + "\n")
	} else if m.status != "" {
		b.WriteString(dimStyle.Render(m.status) + "\n")
	}
	b.WriteString(dimStyle.Render("tab switch · j/k move · space toggle · a add · r rename · d delete · g routines · m reorder · q quit"))
	return b.String()
}

func (m Model) renderRow(i int, r row, dragged bool) string {
	prefix := "  "
	if i == m.cursor {
		prefix = cursorStyle.Render("> ")
	}

	check := "[ ]"
	title := r.task.Title
	if r.task.IsDone() {
		check = "[x]"
		title = doneStyle.Render(title)
	}
	if dragged {
		title = dragStyle.Render("≡ " + r.task.Title)
	}

	parts := []string{prefix + check, title}
	if badge := priorityBadge(r.task.Priority); badge != "" {
		parts = append(parts, badge)
	}
	due := r.task.Due()
	switch {
	case due == "":
	case !r.task.IsDone() && due < m.ctrl.Board().Today():
		parts = append(parts, overdueStyle.Render("overdue "+due))
	default:
		parts = append(parts, dimStyle.Render(due))
	}
	return strings.Join(parts, " ")
}

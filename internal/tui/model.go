// Package tui renders the task board in the terminal.
package tui

import (
	"context"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"daily-task-manager/internal/model"
	"daily-task-manager/internal/task"
	"daily-task-manager/internal/tasklist"
)

// Tab is one of the board's top-level views.
type Tab int

const (
	TabActive Tab = iota
	TabCarryOver
	TabCompleted
)

var tabNames = []string{"Active", "Carry-over", "Completed"}

type inputMode int

const (
	modeNormal inputMode = iota
	modeAdd
	modeRename
)

// row is one selectable line. Section is empty for rows that cannot be
// reordered.
type row struct {
	section tasklist.Section
	task    model.Task
}

type loadedMsg struct{ err error }

type doneMsg struct {
	status string
	err    error
}

// Model is the bubbletea model for the board.
type Model struct {
	ctx  context.Context
	ctrl *tasklist.Controller

	tab    Tab
	cursor int

	mode     inputMode
	input    string
	renameID string

	loading bool
	status  string
	err     error
}

func New(ctx context.Context, ctrl *tasklist.Controller) Model {
	return Model{ctx: ctx, ctrl: ctrl, loading: true}
}

func (m Model) Init() tea.Cmd {
	return m.load
}

func (m Model) load() tea.Msg {
	return loadedMsg{err: m.ctrl.Load(m.ctx)}
}

// rows lists the selectable tasks of the current tab in display order.
func (m Model) rows() []row {
	s := m.ctrl.Board().Sections()
	var out []row
	switch m.tab {
	case TabActive:
		for _, sec := range []tasklist.Section{tasklist.SectionToday, tasklist.SectionFuture, tasklist.SectionNoDue} {
			for _, t := range s.Get(sec) {
				out = append(out, row{section: sec, task: t})
			}
		}
	case TabCarryOver:
		for _, t := range s.CarryOver {
			out = append(out, row{task: t})
		}
	case TabCompleted:
		for _, t := range s.Completed {
			out = append(out, row{task: t})
		}
	}
	return out
}

func (m Model) selected() (row, bool) {
	rows := m.rows()
	if m.cursor < 0 || m.cursor >= len(rows) {
		return row{}, false
	}
	return rows[m.cursor], true
}

func (m *Model) clampCursor() {
	n := len(m.rows())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		m.clampCursor()
		return m, nil
	case doneMsg:
		m.err = msg.err
		if msg.err == nil {
			m.status = msg.status
		}
		m.clampCursor()
		return m, nil
	case tea.KeyMsg:
		if m.mode != modeNormal {
			return m.updateInput(msg)
		}
		return m.updateNormal(msg)
	}
	return m, nil
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	board := m.ctrl.Board()

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "tab":
		board.CancelDrag()
		m.tab = (m.tab + 1) % Tab(len(tabNames))
		m.cursor = 0

	case "j", "down":
		if m.cursor < len(m.rows())-1 {
			m.cursor++
			m.dragOver()
		}

	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
			m.dragOver()
		}

	case "esc":
		board.CancelDrag()
		m.status = ""
		m.err = nil

	case "m":
		r, ok := m.selected()
		if !ok || r.section == "" {
			return m, nil
		}
		if _, _, dragging := board.Dragging(); dragging {
			board.Drop(r.section, r.task.ID)
			m.cursor = m.indexOf(r.task.ID)
			m.status = "Moved"
			return m, nil
		}
		board.DragStart(r.section, r.task.ID)
		m.status = "Moving: j/k to place, m to drop, esc to cancel"

	case " ", "space":
		if r, ok := m.selected(); ok {
			return m, m.run(func(ctx context.Context) (string, error) {
				t, err := m.ctrl.Toggle(ctx, r.task.ID)
				return "Marked " + string(t.Status), err
			})
		}

	case "d":
		if r, ok := m.selected(); ok {
			return m, m.run(func(ctx context.Context) (string, error) {
				return "Deleted", m.ctrl.Delete(ctx, r.task.ID)
			})
		}

	case "g":
		return m, m.run(func(ctx context.Context) (string, error) {
			tasks, err := m.ctrl.GenerateRoutines(ctx)
			return pluralTasks(len(tasks)) + " generated", err
		})

	case "a":
		m.mode = modeAdd
		m.input = ""

	case "r":
		if r, ok := m.selected(); ok {
			m.mode = modeRename
			m.renameID = r.task.ID
			m.input = r.task.Title
		}
	}
	return m, nil
}

// dragOver previews the drag at the cursor's new position.
func (m *Model) dragOver() {
	section, id, dragging := m.ctrl.Board().Dragging()
	if !dragging {
		return
	}
	r, ok := m.selected()
	if !ok || r.section != section {
		return
	}
	if m.ctrl.Board().DragOver(section, r.task.ID) {
		m.cursor = m.indexOf(id)
	}
}

func (m Model) indexOf(id string) int {
	for i, r := range m.rows() {
		if r.task.ID == id {
			return i
		}
	}
	return 0
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = modeNormal
		m.input = ""
		return m, nil
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyBackspace:
		if r := []rune(m.input); len(r) > 0 {
			m.input = string(r[:len(r)-1])
		}
		return m, nil
	case tea.KeySpace:
		m.input += " "
		return m, nil
	case tea.KeyRunes:
		m.input += string(msg.Runes)
		return m, nil
	case tea.KeyEnter:
		title := strings.TrimSpace(m.input)
		mode, id := m.mode, m.renameID
		m.mode = modeNormal
		m.input = ""
		if title == "" {
			return m, nil
		}
		if mode == modeRename {
			return m, m.run(func(ctx context.Context) (string, error) {
				_, err := m.ctrl.Rename(ctx, id, title)
				return "Renamed", err
			})
		}
		return m, m.run(func(ctx context.Context) (string, error) {
			_, err := m.ctrl.Create(ctx, task.CreateInput{Title: title, DueDate: m.ctrl.Board().Today()})
			return "Added", err
		})
	}
	return m, nil
}

func (m Model) run(fn func(ctx context.Context) (string, error)) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		status, err := fn(ctx)
		return doneMsg{status: status, err: err}
	}
}

func pluralTasks(n int) string {
	if n == 1 {
		return "1 task"
	}
	return strconv.Itoa(n) + " tasks"
}

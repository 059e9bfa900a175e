package update

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/mytodo/internal/model"
	"github.com/sandeepkv93/mytodo/internal/query"
)

func (m Model) handleListKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "tab":
		m.cycleFocus(1)
	case "shift+tab":
		m.cycleFocus(-1)
	case m.Keys.Quit:
		m.Quitting = true
		return m, tea.Quit
	case m.Keys.Palette:
		m.Palette.Active = true
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Focus()
		m.Status = StatusBar{Text: "command palette active"}
	case m.Keys.Help:
		m.HelpVisible = !m.HelpVisible
		if m.HelpVisible {
			m.Status = StatusBar{Text: "help shown"}
		} else {
			m.Status = StatusBar{Text: "help hidden"}
		}
	case m.Keys.All:
		m = m.selectTab(query.TabAll)
	case m.Keys.Todo:
		m = m.selectTab(query.TabTodo)
	case m.Keys.Completed:
		m = m.selectTab(query.TabCompleted)
	case m.Keys.Down, "down":
		if m.Cursor < len(m.Visible.Items)-1 {
			m.Cursor++
		}
	case m.Keys.Up, "up":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case m.Keys.Toggle:
		if t, ok := m.selected(); ok {
			m = m.toggleComplete(t.Name)
		}
	case m.Keys.Edit:
		if t, ok := m.selected(); ok {
			m = m.beginEdit(t.Name)
		}
	case m.Keys.Delete:
		if t, ok := m.selected(); ok {
			m = m.requestDelete(t.Name)
		}
	case m.Keys.PrevPage:
		if m.Query.Page > 1 {
			m = m.selectPage(m.Query.Page - 1)
		}
	case m.Keys.NextPage:
		if m.Query.Page < m.Visible.TotalPages {
			m = m.selectPage(m.Query.Page + 1)
		}
	case m.Keys.Theme:
		m = m.toggleTheme()
	}
	return m, nil
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "y", "enter":
		return m.confirmDelete()
	case "n", "esc":
		return m.cancelDelete()
	}
	return m
}

func (m Model) selected() (model.Task, bool) {
	if m.Cursor < 0 || m.Cursor >= len(m.Visible.Items) {
		return model.Task{}, false
	}
	return m.Visible.Items[m.Cursor], true
}

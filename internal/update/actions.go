package update

import (
	"errors"
	"fmt"

	"github.com/sandeepkv93/mytodo/internal/model"
	"github.com/sandeepkv93/mytodo/internal/query"
)

func (m Model) addTask(name, description string) Model {
	_, err := m.Store.Add(m.ctx, name, description)
	m, ok := m.afterMutation(err, toastAdded)
	if ok {
		m = m.clearForm()
	}
	return m
}

func (m Model) beginEdit(name string) Model {
	t, err := m.Store.BeginEdit(name)
	if err != nil {
		m.showError(err)
		return m
	}
	m.EditingID = t.ID
	m.nameInput.SetValue(t.Name)
	m.descInput.SetValue(t.Description)
	m.Focus = FocusName
	m.applyFocus()
	m.Status = StatusBar{Text: fmt.Sprintf("editing %s", t.Name)}
	return m
}

func (m Model) saveEdit(id, name, description string) Model {
	_, err := m.Store.EditByID(m.ctx, id, name, description)
	m, ok := m.afterMutation(err, toastEdited)
	if ok {
		m = m.clearForm()
	}
	return m
}

func (m Model) requestDelete(name string) Model {
	m.Confirm = ConfirmState{
		Active:  true,
		Target:  name,
		Title:   deleteTitle,
		Message: deleteMessage,
	}
	return m
}

func (m Model) confirmDelete() Model {
	if !m.Confirm.Active {
		return m
	}
	target := m.Confirm.Target
	m.Confirm = ConfirmState{}
	if m.EditingID != "" {
		if t, ok := m.Store.FindByID(m.EditingID); ok && t.Name == target {
			m = m.clearForm()
		}
	}
	_, err := m.Store.Delete(m.ctx, target)
	m, _ = m.afterMutation(err, toastDeleted)
	return m
}

func (m Model) cancelDelete() Model {
	m.Confirm = ConfirmState{}
	m.Status = StatusBar{Text: "delete cancelled"}
	return m
}

func (m Model) toggleComplete(name string) Model {
	_, err := m.Store.ToggleComplete(m.ctx, name)
	m, _ = m.afterMutation(err, "")
	if err == nil {
		if t, ok := m.Store.Find(name); ok {
			state := "todo"
			if t.Completed {
				state = "completed"
			}
			m.Status = StatusBar{Text: fmt.Sprintf("%s marked %s", t.Name, state)}
		}
	}
	return m
}

func (m Model) selectTab(tab query.Tab) Model {
	m.Query.SelectTab(tab)
	m.Cursor = 0
	m.refresh()
	return m
}

// setSearch narrows the list without touching the page; a search that
// shrinks the result below the current page shows an empty page.
func (m Model) setSearch(text string) Model {
	m.Query.SetSearch(text)
	m.refresh()
	return m
}

func (m Model) selectPage(page int) Model {
	m.Query.SetPage(page)
	m.Cursor = 0
	m.refresh()
	return m
}

func (m Model) toggleTheme() Model {
	m.DarkMode = !m.DarkMode
	mode := "light"
	if m.DarkMode {
		mode = "dark"
	}
	m.Status = StatusBar{Text: fmt.Sprintf("theme: %s", mode)}
	return m
}

// afterMutation refreshes the view and reports the outcome. A persistence
// failure still counts as applied: the change lives in memory and the user
// gets a warning instead of an error.
func (m Model) afterMutation(err error, success string) (Model, bool) {
	m.refresh()
	switch {
	case err == nil:
		if success != "" {
			m.Status = StatusBar{Text: success}
			m.notify("Success", success, "info")
		}
		return m, true
	case errors.Is(err, model.ErrPersistence):
		m.LastError = err
		text := "changes not saved: " + err.Error()
		if success != "" {
			text = success + "; " + text
		}
		m.Status = StatusBar{Text: text, Warning: true}
		m.notify("Warning", text, "warn")
		m.logger.Debug("mutation kept in memory", "err", err)
		return m, true
	default:
		m.showError(err)
		return m, false
	}
}

func (m *Model) showError(err error) {
	m.LastError = err
	text := toastText(err)
	m.Status = StatusBar{Text: text, IsError: true}
	m.notify("Error", text, "error")
}

func toastText(err error) string {
	switch {
	case errors.Is(err, model.ErrValidation):
		return toastEmpty
	case errors.Is(err, model.ErrDuplicate):
		return toastDuplicate
	case errors.Is(err, model.ErrCompleted):
		return toastCompleted
	default:
		return err.Error()
	}
}

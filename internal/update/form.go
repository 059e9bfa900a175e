package update

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleFormKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "tab":
		m.cycleFocus(1)
	case "shift+tab":
		m.cycleFocus(-1)
	case "enter":
		m = m.submitForm()
	case "esc":
		if m.EditingID != "" {
			m = m.cancelEdit()
			m.Status = StatusBar{Text: "edit cancelled"}
			return m
		}
		m.Focus = FocusList
		m.applyFocus()
	default:
		if m.Focus == FocusName {
			m.nameInput = typeInto(m.nameInput, msg)
		} else {
			m.descInput = typeInto(m.descInput, msg)
		}
	}
	return m
}

func (m Model) handleSearchKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "tab":
		m.cycleFocus(1)
	case "shift+tab":
		m.cycleFocus(-1)
	case "enter", "esc":
		m.Focus = FocusList
		m.applyFocus()
	default:
		m.searchInput = typeInto(m.searchInput, msg)
		m = m.setSearch(m.searchInput.Value())
	}
	return m
}

// submitForm adds a task, or saves the one being edited.
func (m Model) submitForm() Model {
	name := m.nameInput.Value()
	desc := m.descInput.Value()
	if m.EditingID != "" {
		return m.saveEdit(m.EditingID, name, desc)
	}
	return m.addTask(name, desc)
}

func (m Model) clearForm() Model {
	m.nameInput.SetValue("")
	m.descInput.SetValue("")
	m.EditingID = ""
	return m
}

func (m Model) cancelEdit() Model {
	m = m.clearForm()
	m.Focus = FocusName
	m.applyFocus()
	return m
}

func (m *Model) cycleFocus(step int) {
	idx := 0
	for i, f := range focusOrder {
		if f == m.Focus {
			idx = i
			break
		}
	}
	idx = (idx + step + len(focusOrder)) % len(focusOrder)
	m.Focus = focusOrder[idx]
	m.applyFocus()
}

func (m *Model) applyFocus() {
	m.nameInput.Blur()
	m.descInput.Blur()
	m.searchInput.Blur()
	switch m.Focus {
	case FocusName:
		m.nameInput.Focus()
	case FocusDescription:
		m.descInput.Focus()
	case FocusSearch:
		m.searchInput.Focus()
	}
}

// typeInto feeds msg to a focused input so text lands at the cursor.
func typeInto(in textinput.Model, msg tea.KeyMsg) textinput.Model {
	in, _ = in.Update(msg)
	return in
}

package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/mytodo/internal/commands"
	"github.com/sandeepkv93/mytodo/internal/query"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m = m.closePalette()
		m.Status = StatusBar{Text: "command palette closed"}
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		m = m.executePaletteCommand()
	default:
		m.commandInput = typeInto(m.commandInput, msg)
		m.Palette.Input = m.commandInput.Value()
	}
	return m
}

func (m Model) closePalette() Model {
	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Blur()
	return m
}

func (m Model) executePaletteCommand() Model {
	cmd, err := commands.Parse(m.Palette.Input)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m.closePalette()
	}

	// Handlers report store outcomes through m.Status themselves; the
	// returned message is only used for view-state commands.
	res, err := commands.Execute(cmd, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			m = m.addTask(a.Name, a.Description)
			return commands.Result{}, nil
		},
		Edit: func(e commands.EditArgs) (commands.Result, error) {
			t, err := m.Store.BeginEdit(e.Target)
			if err != nil {
				m.showError(err)
				return commands.Result{}, nil
			}
			m = m.saveEdit(t.ID, e.Name, e.Description)
			return commands.Result{}, nil
		},
		Delete: func(a commands.TargetArgs) (commands.Result, error) {
			if _, ok := m.Store.Find(a.Name); !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("no task named %q", a.Name)}
			}
			m = m.requestDelete(a.Name)
			return commands.Result{}, nil
		},
		Done: func(a commands.TargetArgs) (commands.Result, error) {
			if _, ok := m.Store.Find(a.Name); !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("no task named %q", a.Name)}
			}
			m = m.toggleComplete(a.Name)
			return commands.Result{}, nil
		},
		Search: func(s commands.SearchArgs) (commands.Result, error) {
			m.searchInput.SetValue(s.Text)
			m = m.setSearch(s.Text)
			return commands.Result{Message: fmt.Sprintf("search: %q", s.Text)}, nil
		},
		Tab: func(t commands.TabArgs) (commands.Result, error) {
			tab, err := query.ParseTab(t.Tab)
			if err != nil {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: err.Error()}
			}
			m = m.selectTab(tab)
			return commands.Result{Message: fmt.Sprintf("tab: %s", tab)}, nil
		},
		Page: func(p commands.PageArgs) (commands.Result, error) {
			m = m.selectPage(p.Page)
			return commands.Result{Message: fmt.Sprintf("page: %d", p.Page)}, nil
		},
		Theme: func() (commands.Result, error) {
			m = m.toggleTheme()
			return commands.Result{}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.notify("Command Failed", err.Error(), "error")
	} else if res.Message != "" {
		m.Status = StatusBar{Text: res.Message}
	}
	return m.closePalette()
}

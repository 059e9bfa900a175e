package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/mytodo/internal/query"
	"github.com/sandeepkv93/mytodo/internal/views"
)

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		if typed.Width > 60 {
			m.detailViewport.Width = typed.Width - 62
		}
		if typed.Height > 12 {
			m.detailViewport.Height = typed.Height - 12
		}
		return m, nil
	case tea.KeyMsg:
		if typed.String() == "ctrl+c" {
			m.Quitting = true
			return m, tea.Quit
		}
		if m.Confirm.Active {
			return m.handleConfirmKey(typed), nil
		}
		if m.Palette.Active {
			return m.handlePaletteKey(typed), nil
		}
		switch m.Focus {
		case FocusName, FocusDescription:
			return m.handleFormKey(typed), nil
		case FocusSearch:
			return m.handleSearchKey(typed), nil
		default:
			return m.handleListKey(typed)
		}
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		m.notify("Status", typed.Text, levelFromError(typed.IsError))
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
			m.notify("Error", typed.Err.Error(), "error")
		}
		return m, nil
	case AddTaskMsg:
		return m.addTask(typed.Name, typed.Description), nil
	case BeginEditMsg:
		return m.beginEdit(typed.Name), nil
	case SaveEditMsg:
		return m.saveEdit(typed.ID, typed.Name, typed.Description), nil
	case RequestDeleteMsg:
		return m.requestDelete(typed.Name), nil
	case ConfirmDeleteMsg:
		return m.confirmDelete(), nil
	case CancelDeleteMsg:
		return m.cancelDelete(), nil
	case ToggleCompleteMsg:
		return m.toggleComplete(typed.Name), nil
	case SelectTabMsg:
		return m.selectTab(typed.Tab), nil
	case SearchChangedMsg:
		m.searchInput.SetValue(typed.Text)
		return m.setSearch(typed.Text), nil
	case SelectPageMsg:
		return m.selectPage(typed.Page), nil
	case ToggleThemeMsg:
		return m.toggleTheme(), nil
	}
	return m, nil
}

func (m Model) View() string {
	if m.Quitting {
		return ""
	}
	theme := views.NewTheme(m.DarkMode)

	status := ""
	level := "info"
	if m.Status.Text != "" {
		switch {
		case m.Status.IsError:
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
			level = "error"
		case m.Status.Warning:
			status = fmt.Sprintf("status: warning: %s", m.Status.Text)
			level = "warn"
		default:
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	overlay := ""
	if m.Confirm.Active {
		overlay = views.RenderConfirmDialog(theme, views.ConfirmDialogData{
			Title:   m.Confirm.Title,
			Message: m.Confirm.Message,
		})
	}

	return views.RenderApp(theme, views.AppData{
		Header:       m.header(),
		LeftPane:     m.renderLeftPane(theme),
		RightPane:    m.renderRightPane(theme),
		Overlay:      overlay,
		StatusLine:   status,
		StatusLevel:  level,
		Notification: m.renderNotificationsView(),
		Footer: fmt.Sprintf("keys: tab focus | %s/%s/%s tabs | %s/%s move | space done | %s edit | %s delete | %s%s page | %s theme | %s cmd | %s help | %s quit",
			m.Keys.All, m.Keys.Todo, m.Keys.Completed, m.Keys.Down, m.Keys.Up, m.Keys.Edit, m.Keys.Delete,
			m.Keys.PrevPage, m.Keys.NextPage, m.Keys.Theme, m.Keys.Palette, m.Keys.Help, m.Keys.Quit),
	})
}

func (m Model) header() string {
	return fmt.Sprintf("mytodo | tab: %s | page: %d/%d | tasks: %d | focus: %s",
		m.Query.Tab, m.Query.Page, m.Visible.TotalPages, len(m.Tasks), m.Focus)
}

// refresh recomputes the visible page from the store and keeps the cursor
// inside it.
func (m *Model) refresh() {
	if m.Store != nil {
		m.Tasks = m.Store.Tasks()
	}
	m.Visible = query.Apply(m.Tasks, m.Query.Params())
	if m.Cursor >= len(m.Visible.Items) {
		m.Cursor = len(m.Visible.Items) - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
}

func levelFromError(isErr bool) string {
	if isErr {
		return "error"
	}
	return "info"
}

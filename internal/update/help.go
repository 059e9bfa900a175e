package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"

	"github.com/sandeepkv93/mytodo/internal/views"
)

type KeyBinding struct {
	Key    string
	Action string
}

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	return m.renderHelpView()
}

func (m Model) renderHelpView() string {
	bindings := m.helpBindings()
	var plain []string
	for _, kb := range m.focusBindings() {
		plain = append(plain, fmt.Sprintf("- %s: %s", kb.Key, kb.Action))
	}
	return views.RenderHelpPanel(views.HelpPanelData{
		Focus:    string(m.Focus),
		Bindings: plain,
		HelpView: m.helpModel.View(helpKeyMap{
			short: bindings,
			full:  [][]key.Binding{bindings},
		}),
	})
}

func (m Model) globalBindings() []KeyBinding {
	return []KeyBinding{
		{Key: "tab", Action: "next field"},
		{Key: "shift+tab", Action: "previous field"},
		{Key: "ctrl+c", Action: "quit app"},
	}
}

func (m Model) focusBindings() []KeyBinding {
	switch m.Focus {
	case FocusName, FocusDescription:
		action := "add task"
		if m.EditingID != "" {
			action = "save task"
		}
		return []KeyBinding{
			{Key: "enter", Action: action},
			{Key: "esc", Action: "cancel edit / go to list"},
		}
	case FocusSearch:
		return []KeyBinding{
			{Key: "type", Action: "filter by name"},
			{Key: "enter/esc", Action: "back to list"},
		}
	default:
		return []KeyBinding{
			{Key: m.Keys.All + "/" + m.Keys.Todo + "/" + m.Keys.Completed, Action: "all / todo / completed"},
			{Key: m.Keys.Down + "/" + m.Keys.Up, Action: "move cursor"},
			{Key: "space", Action: "toggle complete"},
			{Key: m.Keys.Edit, Action: "edit task"},
			{Key: m.Keys.Delete, Action: "delete task"},
			{Key: m.Keys.PrevPage + "/" + m.Keys.NextPage, Action: "previous / next page"},
			{Key: m.Keys.Theme, Action: "toggle theme"},
			{Key: m.Keys.Palette, Action: "open command palette"},
			{Key: m.Keys.Help, Action: "toggle help panel"},
			{Key: m.Keys.Quit, Action: "quit app"},
		}
	}
}

func (m Model) helpBindings() []key.Binding {
	out := make([]key.Binding, 0, len(m.globalBindings())+len(m.focusBindings()))
	for _, kb := range m.globalBindings() {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	for _, kb := range m.focusBindings() {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	return out
}

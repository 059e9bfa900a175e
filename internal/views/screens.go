package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type FormData struct {
	NameView        string
	DescriptionView string
	Editing         bool
}

type TaskRowData struct {
	Name        string
	Description string
	Stamp       string
	Completed   bool
	Edited      bool
	Selected    bool
}

type TaskDetailData struct {
	Name        string
	Stamp       string
	Completed   bool
	Edited      bool
	Description string
}

type ConfirmDialogData struct {
	Title   string
	Message string
}

type HelpPanelData struct {
	Focus    string
	Bindings []string
	HelpView string
}

func RenderForm(t Theme, data FormData) string {
	action := "[enter] Add"
	if data.Editing {
		action = "[enter] Save  [esc] cancel edit"
	}
	var b strings.Builder
	b.WriteString(t.Header.Render("My Todo List") + "\n")
	b.WriteString(data.NameView + "\n")
	b.WriteString(data.DescriptionView + "\n")
	b.WriteString(t.Footer.Render(action))
	return b.String()
}

func RenderTabs(t Theme, tabs []string, active string) string {
	parts := make([]string, 0, len(tabs))
	for i, tab := range tabs {
		label := fmt.Sprintf("%d:%s", i+1, tab)
		if tab == active {
			parts = append(parts, t.ActiveTab.Render("["+label+"]"))
			continue
		}
		parts = append(parts, t.Tab.Render(" "+label+" "))
	}
	return strings.Join(parts, " ")
}

func RenderTaskList(t Theme, rows []TaskRowData) string {
	if len(rows) == 0 {
		return t.Muted.Render("no tasks")
	}
	var b strings.Builder
	for i, row := range rows {
		if i > 0 {
			b.WriteString("\n")
		}
		cursor := "  "
		if row.Selected {
			cursor = "> "
		}
		check := "[ ]"
		if row.Completed {
			check = "[x]"
		}
		name := row.Name
		desc := row.Description
		switch {
		case row.Completed:
			name = t.Done.Render(name)
			desc = t.Done.Render(desc)
		case row.Selected:
			name = t.Selected.Render(name)
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, check, name))
		b.WriteString("      " + desc + "\n")
		meta := t.Muted.Render(row.Stamp)
		if row.Edited {
			meta += " " + t.Edited.Render("(Edited)")
		}
		if row.Completed {
			meta += " " + t.Completed.Render("(Completed)")
		}
		b.WriteString("      " + meta)
	}
	return b.String()
}

// RenderPager lists every page number with the current one bracketed.
func RenderPager(t Theme, current, total int) string {
	if total <= 0 {
		return ""
	}
	parts := make([]string, 0, total)
	for page := 1; page <= total; page++ {
		if page == current {
			parts = append(parts, t.ActiveTab.Render(fmt.Sprintf("[%d]", page)))
			continue
		}
		parts = append(parts, fmt.Sprintf(" %d ", page))
	}
	return "pages: " + strings.Join(parts, "")
}

func RenderTaskDetail(t Theme, data TaskDetailData) string {
	if data.Name == "" {
		return "details:\n" + t.Muted.Render("(no selection)")
	}
	var b strings.Builder
	b.WriteString("details:\n")
	b.WriteString(t.Header.Render(data.Name) + "\n")
	status := "todo"
	if data.Completed {
		status = "completed"
	}
	b.WriteString(fmt.Sprintf("status: %s\n", status))
	b.WriteString(fmt.Sprintf("created: %s\n", data.Stamp))
	if data.Edited {
		b.WriteString(t.Edited.Render("(Edited)") + "\n")
	}
	if data.Completed {
		b.WriteString(t.Muted.Render("Can't edit Completed task") + "\n")
	}
	b.WriteString(data.Description)
	return strings.TrimRight(b.String(), "\n")
}

func RenderConfirmDialog(t Theme, data ConfirmDialogData) string {
	title := data.Title
	if title == "" {
		title = "Confirm"
	}
	message := data.Message
	if message == "" {
		message = "Are you sure you want to continue?"
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		t.Header.Render(title),
		"",
		message,
		"",
		"[y] Confirm   [n] Cancel",
	)
	return t.Dialog.Render(body)
}

func RenderHelpPanel(data HelpPanelData) string {
	var b strings.Builder
	b.WriteString("help:\n")
	b.WriteString(fmt.Sprintf("focus: %s\n", data.Focus))
	for _, kb := range data.Bindings {
		b.WriteString(kb + "\n")
	}
	if data.HelpView != "" {
		b.WriteString(data.HelpView)
	}
	return strings.TrimSpace(b.String())
}

func RenderCommandPalette(active bool, inputView string) string {
	if !active {
		return ""
	}
	return "command:\n" + inputView + "\n" +
		"add NAME | DESC, edit TASK | NAME | DESC, delete NAME, done NAME,\n" +
		"search TEXT, tab all|todo|completed, page N, theme"
}

func RenderNotification(level, body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	return fmt.Sprintf("[%s] %s", strings.ToUpper(level), body)
}
